package domain

import (
	"time"

	"github.com/google/uuid"
)

// swagger:model domain.Bike
type Bike struct {
	BikeID             uuid.UUID  `json:"bike_id"`
	UserID             uuid.UUID  `json:"user_id"`
	BikeName           string     `json:"bike_name" validate:"required,max=100"`
	Manufacturer       string     `json:"manufacturer,omitempty" validate:"max=100"`
	Model              string     `json:"model,omitempty" validate:"max=100"`
	Year               int        `json:"year,omitempty" validate:"omitempty,min=1900,max=2100"`
	RegistrationNumber string     `json:"registration_number,omitempty" validate:"max=20"`
	EngineCapacity     int        `json:"engine_capacity,omitempty" validate:"min=0"`
	PurchaseDate       *time.Time `json:"purchase_date,omitempty"`
	PurchasePrice      float64    `json:"purchase_price,omitempty" validate:"min=0"`
	CurrentOdometer    int        `json:"current_odometer" validate:"min=0"`
	InitialOdometer    int        `json:"initial_odometer" validate:"min=0"`
	FuelTankCapacity   float64    `json:"fuel_tank_capacity,omitempty" validate:"min=0"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// TotalDistanceDriven is the distance covered since tracking started.
// earliestReading is the smallest odometer value seen across fuel logs and
// trip starts; pass nil when the bike has no history yet. A negative result
// means the stored readings are inconsistent and is returned as-is so callers
// can surface it.
func (b *Bike) TotalDistanceDriven(earliestReading *int) int {
	return b.CurrentOdometer - b.BaselineOdometer(earliestReading)
}

// BaselineOdometer picks the starting point for distance tracking: the stored
// initial odometer when set, otherwise the earliest recorded reading,
// otherwise the current odometer (no history, zero distance).
func (b *Bike) BaselineOdometer(earliestReading *int) int {
	if b.InitialOdometer > 0 {
		return b.InitialOdometer
	}
	if earliestReading != nil {
		return *earliestReading
	}
	return b.CurrentOdometer
}
