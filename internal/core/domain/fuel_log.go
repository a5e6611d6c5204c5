package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type FuelType string

const (
	Petrol   FuelType = "Petrol"
	Diesel   FuelType = "Diesel"
	Electric FuelType = "Electric"
)

// swagger:model domain.FuelLog
type FuelLog struct {
	FuelID          uuid.UUID `json:"fuel_id"`
	BikeID          uuid.UUID `json:"bike_id" validate:"required"`
	UserID          uuid.UUID `json:"user_id"`
	FillDate        time.Time `json:"fill_date" validate:"required"`
	OdometerReading int       `json:"odometer_reading" validate:"min=0"`
	FuelQuantity    float64   `json:"fuel_quantity" validate:"required,gt=0"`
	FuelCost        float64   `json:"fuel_cost" validate:"min=0"`
	PricePerLiter   float64   `json:"price_per_liter" validate:"min=0"`
	FuelType        FuelType  `json:"fuel_type" validate:"required,oneof=Petrol Diesel Electric"`
	IsFullTank      bool      `json:"is_full_tank"`
	FuelStation     string    `json:"fuel_station,omitempty" validate:"max=150"`
	Mileage         *float64  `json:"mileage,omitempty"`
	Notes           string    `json:"notes,omitempty" validate:"max=500"`
	CreatedAt       time.Time `json:"created_at"`
}

// MileageForFill computes the fuel efficiency attributed to the previous
// fill: distance covered since prev divided by the fuel put in at prev,
// rounded to two decimals. Returns nil when there is no previous fill, the
// distance is not positive, or the previous quantity is not positive.
// A nil result is absence of data, not an error.
func MileageForFill(prev *FuelLog, newReading int) *float64 {
	if prev == nil {
		return nil
	}
	distance := newReading - prev.OdometerReading
	if distance <= 0 || prev.FuelQuantity <= 0 {
		return nil
	}
	mileage := math.Round(float64(distance)/prev.FuelQuantity*100) / 100
	return &mileage
}
