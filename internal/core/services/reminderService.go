package services

import (
	"context"
	"fmt"

	"github.com/mototrack/mototrack_service/internal/core/domain"
	"github.com/mototrack/mototrack_service/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ReminderService struct {
	reminderRepo ports.ReminderRepository
	bikeRepo     ports.BikeRepository
	logger       ports.LoggerPort
	validate     *validator.Validate
}

func NewReminderService(
	reminderRepo ports.ReminderRepository,
	bikeRepo ports.BikeRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *ReminderService {
	return &ReminderService{
		reminderRepo: reminderRepo,
		bikeRepo:     bikeRepo,
		logger:       logger,
		validate:     validate,
	}
}

func (s *ReminderService) CreateReminder(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error) {
	if err := s.validate.Struct(reminder); err != nil {
		s.logger.Error("Reminder validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if _, err := s.bikeRepo.GetBikeByID(ctx, reminder.BikeID, reminder.UserID); err != nil {
		return nil, err
	}

	if reminder.ReminderID == uuid.Nil {
		reminder.ReminderID = uuid.New()
	}

	created, err := s.reminderRepo.CreateReminder(ctx, reminder)
	if err != nil {
		s.logger.Error("Failed to create reminder", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": reminder.BikeID,
			"user_id": reminder.UserID,
		})
		return nil, err
	}

	s.logger.Info("Reminder created successfully", map[string]interface{}{
		"reminder_id": created.ReminderID,
		"bike_id":     created.BikeID,
	})

	return created, nil
}

func (s *ReminderService) GetReminderByID(ctx context.Context, reminderID string, userID uuid.UUID) (*domain.Reminder, error) {
	reminderUUID, err := uuid.Parse(reminderID)
	if err != nil {
		return nil, fmt.Errorf("invalid reminder ID: %w", err)
	}

	reminder, err := s.reminderRepo.GetReminderByID(ctx, reminderUUID, userID)
	if err != nil {
		s.logger.Error("Failed to get reminder", map[string]interface{}{
			"error":       err.Error(),
			"reminder_id": reminderID,
		})
		return nil, err
	}
	return reminder, nil
}

func (s *ReminderService) ListReminders(ctx context.Context, userID uuid.UUID, bikeID *uuid.UUID, filter ports.ReminderFilter) ([]*domain.Reminder, error) {
	reminders, err := s.reminderRepo.ListReminders(ctx, userID, bikeID, filter)
	if err != nil {
		s.logger.Error("Failed to list reminders", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
		})
		return nil, err
	}
	return reminders, nil
}

func (s *ReminderService) UpdateReminder(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error) {
	if err := s.validate.Struct(reminder); err != nil {
		s.logger.Error("Reminder validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	updated, err := s.reminderRepo.UpdateReminder(ctx, reminder)
	if err != nil {
		s.logger.Error("Failed to update reminder", map[string]interface{}{
			"error":       err.Error(),
			"reminder_id": reminder.ReminderID,
		})
		return nil, err
	}

	s.logger.Info("Reminder updated successfully", map[string]interface{}{
		"reminder_id": reminder.ReminderID,
	})
	return updated, nil
}

func (s *ReminderService) CompleteReminder(ctx context.Context, reminderID string, userID uuid.UUID) error {
	reminderUUID, err := uuid.Parse(reminderID)
	if err != nil {
		return fmt.Errorf("invalid reminder ID: %w", err)
	}

	if err := s.reminderRepo.CompleteReminder(ctx, reminderUUID, userID); err != nil {
		s.logger.Error("Failed to complete reminder", map[string]interface{}{
			"error":       err.Error(),
			"reminder_id": reminderID,
		})
		return err
	}

	s.logger.Info("Reminder marked as completed", map[string]interface{}{
		"reminder_id": reminderID,
	})
	return nil
}

func (s *ReminderService) DeleteReminder(ctx context.Context, reminderID string, userID uuid.UUID) error {
	reminderUUID, err := uuid.Parse(reminderID)
	if err != nil {
		return fmt.Errorf("invalid reminder ID: %w", err)
	}

	if err := s.reminderRepo.DeleteReminder(ctx, reminderUUID, userID); err != nil {
		s.logger.Error("Failed to delete reminder", map[string]interface{}{
			"error":       err.Error(),
			"reminder_id": reminderID,
		})
		return err
	}

	s.logger.Info("Reminder deleted successfully", map[string]interface{}{
		"reminder_id": reminderID,
	})
	return nil
}
