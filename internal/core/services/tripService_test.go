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

func newTrip(bikeID, userID uuid.UUID, start, end int) *domain.Trip {
	return &domain.Trip{
		BikeID:        bikeID,
		UserID:        userID,
		TripDate:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		StartOdometer: start,
		EndOdometer:   end,
		TripPurpose:   domain.Commute,
	}
}

func TestCreateTripComputesDistanceAndAdvancesOdometer(t *testing.T) {
	userID := uuid.New()
	bike := &domain.Bike{BikeID: uuid.New(), UserID: userID, CurrentOdometer: 5000}
	bikeRepo := newFakeBikeRepo(bike)
	tripRepo := &fakeTripRepo{}
	svc := NewTripService(tripRepo, bikeRepo, nopLogger{}, validator.New(), newMemCache())

	created, err := svc.CreateTrip(context.Background(), newTrip(bike.BikeID, userID, 5000, 5180))
	require.NoError(t, err)

	assert.Equal(t, 180, created.Distance)
	require.Len(t, bikeRepo.advanceCalls, 1)
	assert.Equal(t, 5180, bikeRepo.advanceCalls[0].reading)
	assert.Equal(t, 5180, bike.CurrentOdometer)
}

func TestCreateTripRejectsBackwardRange(t *testing.T) {
	userID := uuid.New()
	bike := &domain.Bike{BikeID: uuid.New(), UserID: userID, CurrentOdometer: 5000}
	bikeRepo := newFakeBikeRepo(bike)
	tripRepo := &fakeTripRepo{}
	svc := NewTripService(tripRepo, bikeRepo, nopLogger{}, validator.New(), newMemCache())

	_, err := svc.CreateTrip(context.Background(), newTrip(bike.BikeID, userID, 5150, 5100))
	assert.ErrorIs(t, err, domain.ErrEndBeforeStart)

	// Nothing was written and the odometer never moved.
	assert.Empty(t, tripRepo.created)
	assert.Empty(t, bikeRepo.advanceCalls)
	assert.Equal(t, 5000, bike.CurrentOdometer)
}

func TestCreateTripBackdatedKeepsOdometer(t *testing.T) {
	userID := uuid.New()
	bike := &domain.Bike{BikeID: uuid.New(), UserID: userID, CurrentOdometer: 6000}
	bikeRepo := newFakeBikeRepo(bike)
	tripRepo := &fakeTripRepo{}
	svc := NewTripService(tripRepo, bikeRepo, nopLogger{}, validator.New(), newMemCache())

	created, err := svc.CreateTrip(context.Background(), newTrip(bike.BikeID, userID, 5000, 5200))
	require.NoError(t, err)

	assert.Equal(t, 200, created.Distance)
	assert.Equal(t, 6000, bike.CurrentOdometer)
}
