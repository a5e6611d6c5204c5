package domain

import (
	"time"

	"github.com/google/uuid"
)

type TripPurpose string

const (
	Commute  TripPurpose = "Commute"
	Leisure  TripPurpose = "Leisure"
	Touring  TripPurpose = "Touring"
	Business TripPurpose = "Business"
	Other    TripPurpose = "Other"
)

// swagger:model domain.Trip
type Trip struct {
	TripID        uuid.UUID   `json:"trip_id"`
	BikeID        uuid.UUID   `json:"bike_id" validate:"required"`
	UserID        uuid.UUID   `json:"user_id"`
	TripDate      time.Time   `json:"trip_date" validate:"required"`
	StartOdometer int         `json:"start_odometer" validate:"min=0"`
	EndOdometer   int         `json:"end_odometer" validate:"min=0"`
	Distance      int         `json:"distance"`
	StartLocation string      `json:"start_location,omitempty" validate:"max=150"`
	EndLocation   string      `json:"end_location,omitempty" validate:"max=150"`
	TripPurpose   TripPurpose `json:"trip_purpose" validate:"required,oneof=Commute Leisure Touring Business Other"`
	Notes         string      `json:"notes,omitempty" validate:"max=500"`
	CreatedAt     time.Time   `json:"created_at"`
}

// Validate rejects trips whose end odometer does not advance past the start.
// Runs before any write so a bad trip never mutates the bike.
func (t *Trip) Validate() error {
	if t.EndOdometer <= t.StartOdometer {
		return ErrEndBeforeStart
	}
	return nil
}
