package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReminderType string

const (
	ReminderService             ReminderType = "Service"
	ReminderInsurance           ReminderType = "Insurance"
	ReminderPollutionCheck      ReminderType = "Pollution Check"
	ReminderRegistrationRenewal ReminderType = "Registration Renewal"
	ReminderTireChange          ReminderType = "Tire Change"
	ReminderChainLubrication    ReminderType = "Chain Lubrication"
	ReminderCustom              ReminderType = "Custom"
)

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Urgency classifies how soon a reminder needs attention. Ordered from least
// to most urgent so the more urgent of two axes can be taken with a compare.
type Urgency int

const (
	Upcoming Urgency = iota
	DueSoon
	DueToday
	Overdue
	Completed
)

func (u Urgency) String() string {
	switch u {
	case Upcoming:
		return "upcoming"
	case DueSoon:
		return "due-soon"
	case DueToday:
		return "due-today"
	case Overdue:
		return "overdue"
	case Completed:
		return "completed"
	}
	return "unknown"
}

// UrgencyConfig carries the warning thresholds. Passed in explicitly so the
// projector stays a pure function of its inputs.
type UrgencyConfig struct {
	WarningWindowDays int
	OdometerWindowKM  int
}

func DefaultUrgencyConfig() UrgencyConfig {
	return UrgencyConfig{WarningWindowDays: 7, OdometerWindowKM: 500}
}

// swagger:model domain.Reminder
type Reminder struct {
	ReminderID    uuid.UUID    `json:"reminder_id"`
	BikeID        uuid.UUID    `json:"bike_id" validate:"required"`
	UserID        uuid.UUID    `json:"user_id"`
	ReminderType  ReminderType `json:"reminder_type" validate:"required"`
	Title         string       `json:"title" validate:"required,max=150"`
	Description   string       `json:"description,omitempty" validate:"max=500"`
	DueDate       *time.Time   `json:"due_date,omitempty"`
	DueOdometer   *int         `json:"due_odometer,omitempty"`
	Priority      Priority     `json:"priority" validate:"required,oneof=Low Medium High"`
	IsCompleted   bool         `json:"is_completed"`
	CompletedDate *time.Time   `json:"completed_date,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}

// DaysLeft returns whole calendar days between today and the due date,
// negative when the date has passed. Both dates are rebuilt at midnight UTC
// so every day is exactly 24 hours and DST-shortened days cannot skew the
// count.
func (r *Reminder) DaysLeft(now time.Time) *int {
	if r.DueDate == nil {
		return nil
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	due := time.Date(r.DueDate.Year(), r.DueDate.Month(), r.DueDate.Day(), 0, 0, 0, 0, time.UTC)
	days := int(due.Sub(today).Hours() / 24)
	return &days
}

// Classify projects the reminder onto an urgency level. Date and odometer
// axes are evaluated independently and the more urgent one wins; completed
// reminders are always Completed.
func (r *Reminder) Classify(now time.Time, currentOdometer int, cfg UrgencyConfig) Urgency {
	if r.IsCompleted {
		return Completed
	}

	urgency := Upcoming

	if days := r.DaysLeft(now); days != nil {
		switch {
		case *days < 0:
			urgency = Overdue
		case *days == 0:
			urgency = DueToday
		case *days <= cfg.WarningWindowDays:
			urgency = DueSoon
		}
	}

	if r.DueOdometer != nil {
		kmLeft := *r.DueOdometer - currentOdometer
		switch {
		case kmLeft <= 0:
			urgency = Overdue
		case kmLeft <= cfg.OdometerWindowKM && urgency < DueSoon:
			urgency = DueSoon
		}
	}

	return urgency
}
