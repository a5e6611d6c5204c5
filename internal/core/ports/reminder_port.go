package ports

import (
	"context"

	"github.com/mototrack/mototrack_service/internal/core/domain"

	"github.com/google/uuid"
)

// ReminderFilter narrows reminder listings by completion state.
type ReminderFilter string

const (
	FilterPending   ReminderFilter = "pending"
	FilterCompleted ReminderFilter = "completed"
	FilterAll       ReminderFilter = "all"
)

type ReminderRepository interface {
	CreateReminder(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error)
	GetReminderByID(ctx context.Context, reminderID, userID uuid.UUID) (*domain.Reminder, error)

	// ListReminders orders incomplete before complete, then ascending due
	// date with nulls last, then High > Medium > Low priority.
	ListReminders(ctx context.Context, userID uuid.UUID, bikeID *uuid.UUID, filter ReminderFilter) ([]*domain.Reminder, error)

	UpdateReminder(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error)
	CompleteReminder(ctx context.Context, reminderID, userID uuid.UUID) error
	DeleteReminder(ctx context.Context, reminderID, userID uuid.UUID) error
}

type ReminderService interface {
	CreateReminder(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error)
	GetReminderByID(ctx context.Context, reminderID string, userID uuid.UUID) (*domain.Reminder, error)
	ListReminders(ctx context.Context, userID uuid.UUID, bikeID *uuid.UUID, filter ReminderFilter) ([]*domain.Reminder, error)
	UpdateReminder(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error)
	CompleteReminder(ctx context.Context, reminderID string, userID uuid.UUID) error
	DeleteReminder(ctx context.Context, reminderID string, userID uuid.UUID) error
}
