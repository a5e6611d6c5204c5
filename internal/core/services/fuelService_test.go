package services

import (
	"context"
	"testing"
	"time"

	"github.com/mototrack/mototrack_service/internal/core/domain"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFuelLog(bikeID, userID uuid.UUID, reading int, quantity float64) *domain.FuelLog {
	return &domain.FuelLog{
		BikeID:          bikeID,
		UserID:          userID,
		FillDate:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		OdometerReading: reading,
		FuelQuantity:    quantity,
		FuelType:        domain.Petrol,
	}
}

func TestCreateFuelLogFirstFill(t *testing.T) {
	userID := uuid.New()
	bike := &domain.Bike{BikeID: uuid.New(), UserID: userID, CurrentOdometer: 0}
	bikeRepo := newFakeBikeRepo(bike)
	fuelRepo := &fakeFuelRepo{}
	svc := NewFuelLogService(fuelRepo, bikeRepo, nopLogger{}, validator.New(), newMemCache())

	created, err := svc.CreateFuelLog(context.Background(), newFuelLog(bike.BikeID, userID, 5000, 10))
	require.NoError(t, err)

	assert.Nil(t, created.Mileage)
	assert.NotEqual(t, uuid.Nil, created.FuelID)
	require.Len(t, bikeRepo.advanceCalls, 1)
	assert.Equal(t, 5000, bikeRepo.advanceCalls[0].reading)
	assert.Equal(t, 5000, bike.CurrentOdometer)
}

func TestCreateFuelLogComputesMileageFromPreviousFill(t *testing.T) {
	userID := uuid.New()
	bike := &domain.Bike{BikeID: uuid.New(), UserID: userID, CurrentOdometer: 5000}
	bikeRepo := newFakeBikeRepo(bike)
	fuelRepo := &fakeFuelRepo{prev: &domain.FuelLog{OdometerReading: 5000, FuelQuantity: 10}}
	svc := NewFuelLogService(fuelRepo, bikeRepo, nopLogger{}, validator.New(), newMemCache())

	created, err := svc.CreateFuelLog(context.Background(), newFuelLog(bike.BikeID, userID, 5150, 8))
	require.NoError(t, err)

	require.NotNil(t, created.Mileage)
	assert.Equal(t, 15.0, *created.Mileage)
	assert.Equal(t, 5150, bike.CurrentOdometer)
}

func TestCreateFuelLogBackdatedReadingKeepsOdometer(t *testing.T) {
	userID := uuid.New()
	bike := &domain.Bike{BikeID: uuid.New(), UserID: userID, CurrentOdometer: 6000}
	bikeRepo := newFakeBikeRepo(bike)
	fuelRepo := &fakeFuelRepo{prev: &domain.FuelLog{OdometerReading: 5000, FuelQuantity: 10}}
	svc := NewFuelLogService(fuelRepo, bikeRepo, nopLogger{}, validator.New(), newMemCache())

	created, err := svc.CreateFuelLog(context.Background(), newFuelLog(bike.BikeID, userID, 5500, 9))
	require.NoError(t, err)

	// The fill is saved with its mileage, but the high-water mark stays.
	require.NotNil(t, created.Mileage)
	assert.Equal(t, 50.0, *created.Mileage)
	assert.Equal(t, 6000, bike.CurrentOdometer)
}

func TestCreateFuelLogRejectsZeroQuantity(t *testing.T) {
	userID := uuid.New()
	bike := &domain.Bike{BikeID: uuid.New(), UserID: userID}
	bikeRepo := newFakeBikeRepo(bike)
	fuelRepo := &fakeFuelRepo{}
	svc := NewFuelLogService(fuelRepo, bikeRepo, nopLogger{}, validator.New(), newMemCache())

	_, err := svc.CreateFuelLog(context.Background(), newFuelLog(bike.BikeID, userID, 5000, 0))
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, fuelRepo.created)
	assert.Empty(t, bikeRepo.advanceCalls)
}

func TestCreateFuelLogForeignBike(t *testing.T) {
	owner := uuid.New()
	bike := &domain.Bike{BikeID: uuid.New(), UserID: owner}
	bikeRepo := newFakeBikeRepo(bike)
	fuelRepo := &fakeFuelRepo{}
	svc := NewFuelLogService(fuelRepo, bikeRepo, nopLogger{}, validator.New(), newMemCache())

	_, err := svc.CreateFuelLog(context.Background(), newFuelLog(bike.BikeID, uuid.New(), 5000, 10))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, fuelRepo.created)
}
