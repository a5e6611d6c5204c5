package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBikeTotalDistanceDriven(t *testing.T) {
	t.Run("initial odometer takes precedence", func(t *testing.T) {
		bike := &Bike{CurrentOdometer: 8000, InitialOdometer: 5000}
		assert.Equal(t, 3000, bike.TotalDistanceDriven(intPtr(6000)))
	})

	t.Run("falls back to earliest recorded reading", func(t *testing.T) {
		bike := &Bike{CurrentOdometer: 8000}
		assert.Equal(t, 2000, bike.TotalDistanceDriven(intPtr(6000)))
	})

	t.Run("no history means zero distance", func(t *testing.T) {
		bike := &Bike{CurrentOdometer: 8000}
		assert.Equal(t, 0, bike.TotalDistanceDriven(nil))
	})

	t.Run("inconsistent readings surface as negative", func(t *testing.T) {
		bike := &Bike{CurrentOdometer: 4000, InitialOdometer: 5000}
		assert.Equal(t, -1000, bike.TotalDistanceDriven(nil))
	})
}

func TestTripValidate(t *testing.T) {
	t.Run("end must advance past start", func(t *testing.T) {
		trip := &Trip{StartOdometer: 5150, EndOdometer: 5100}
		assert.ErrorIs(t, trip.Validate(), ErrEndBeforeStart)
		assert.ErrorIs(t, trip.Validate(), ErrValidation)
	})

	t.Run("equal readings rejected", func(t *testing.T) {
		trip := &Trip{StartOdometer: 5100, EndOdometer: 5100}
		assert.ErrorIs(t, trip.Validate(), ErrEndBeforeStart)
	})

	t.Run("forward trip accepted", func(t *testing.T) {
		trip := &Trip{StartOdometer: 5000, EndOdometer: 5180}
		assert.NoError(t, trip.Validate())
	})
}

func TestBikeReportComputeCostPerKM(t *testing.T) {
	t.Run("zero distance leaves cost per km unset", func(t *testing.T) {
		report := &BikeReport{Fuel: FuelStats{TotalCost: 500}}
		report.ComputeCostPerKM()
		assert.Nil(t, report.CostPerKM)
	})

	t.Run("combines fuel and service cost", func(t *testing.T) {
		report := &BikeReport{
			TotalDistance: 1000,
			Fuel:          FuelStats{TotalCost: 1500},
			Service:       ServiceStats{TotalCost: 500},
		}
		report.ComputeCostPerKM()
		if assert.NotNil(t, report.CostPerKM) {
			assert.Equal(t, 2.0, *report.CostPerKM)
		}
	})
}
