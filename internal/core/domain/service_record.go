package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// swagger:model domain.ServiceRecord
type ServiceRecord struct {
	ServiceID       uuid.UUID  `json:"service_id"`
	BikeID          uuid.UUID  `json:"bike_id" validate:"required"`
	UserID          uuid.UUID  `json:"user_id"`
	ServiceDate     time.Time  `json:"service_date" validate:"required"`
	OdometerReading int        `json:"odometer_reading" validate:"min=0"`
	ServiceType     string     `json:"service_type" validate:"required,max=100"`
	ServiceCenter   string     `json:"service_center,omitempty" validate:"max=150"`
	ServiceCost     float64    `json:"service_cost" validate:"min=0"`
	PartsReplaced   string     `json:"parts_replaced,omitempty" validate:"max=500"`
	NextServiceKM   *int       `json:"next_service_km,omitempty"`
	NextServiceDate *time.Time `json:"next_service_date,omitempty"`
	Description     string     `json:"description,omitempty" validate:"max=500"`
	InvoiceNumber   string     `json:"invoice_number,omitempty" validate:"max=50"`
	CreatedAt       time.Time  `json:"created_at"`
}

// NextServiceReminder derives the follow-up reminder for a service visit.
// Returns nil when neither a next date nor a next odometer was given.
func (s *ServiceRecord) NextServiceReminder() *Reminder {
	if s.NextServiceDate == nil && s.NextServiceKM == nil {
		return nil
	}
	return &Reminder{
		ReminderID:   uuid.New(),
		BikeID:       s.BikeID,
		UserID:       s.UserID,
		ReminderType: ReminderService,
		Title:        "Next Service Due - " + s.ServiceType,
		Description:  fmt.Sprintf("Service reminder based on last service on %s", s.ServiceDate.Format("02 Jan 2006")),
		DueDate:      s.NextServiceDate,
		DueOdometer:  s.NextServiceKM,
		Priority:     PriorityMedium,
	}
}
