package services

import (
	"context"
	"testing"

	"github.com/mototrack/mototrack_service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBikeReportSingleBike(t *testing.T) {
	userID := uuid.New()
	bike := &domain.Bike{BikeID: uuid.New(), UserID: userID, CurrentOdometer: 8000, InitialOdometer: 5000}
	bikeRepo := newFakeBikeRepo(bike)
	reportRepo := &fakeReportRepo{
		fuel:    domain.FuelStats{TotalFuel: 40, TotalCost: 4000, TotalFills: 5},
		service: domain.ServiceStats{TotalCost: 2000, TotalServices: 2},
	}
	svc := NewReportService(reportRepo, bikeRepo, nopLogger{}, newMemCache())

	report, err := svc.BikeReport(context.Background(), userID, &bike.BikeID)
	require.NoError(t, err)

	assert.Equal(t, 3000, report.TotalDistance)
	assert.False(t, report.DistanceAnomaly)
	assert.Equal(t, 5, report.Fuel.TotalFills)
	require.NotNil(t, report.CostPerKM)
	assert.Equal(t, 2.0, *report.CostPerKM)
}

func TestBikeReportFlagsNegativeDistance(t *testing.T) {
	userID := uuid.New()
	bike := &domain.Bike{BikeID: uuid.New(), UserID: userID, CurrentOdometer: 4000, InitialOdometer: 5000}
	bikeRepo := newFakeBikeRepo(bike)
	svc := NewReportService(&fakeReportRepo{}, bikeRepo, nopLogger{}, newMemCache())

	report, err := svc.BikeReport(context.Background(), userID, &bike.BikeID)
	require.NoError(t, err)

	// Reported as-is, never clamped.
	assert.Equal(t, -1000, report.TotalDistance)
	assert.True(t, report.DistanceAnomaly)
	assert.Nil(t, report.CostPerKM)
}

func TestBikeReportGarageWide(t *testing.T) {
	userID := uuid.New()
	reportRepo := &fakeReportRepo{sumOdometers: 12500}
	svc := NewReportService(reportRepo, newFakeBikeRepo(), nopLogger{}, newMemCache())

	report, err := svc.BikeReport(context.Background(), userID, nil)
	require.NoError(t, err)
	assert.Equal(t, 12500, report.TotalDistance)
}

func TestBikeReportForeignBike(t *testing.T) {
	owner := uuid.New()
	bike := &domain.Bike{BikeID: uuid.New(), UserID: owner, CurrentOdometer: 8000}
	bikeRepo := newFakeBikeRepo(bike)
	svc := NewReportService(&fakeReportRepo{}, bikeRepo, nopLogger{}, newMemCache())

	_, err := svc.BikeReport(context.Background(), uuid.New(), &bike.BikeID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBikeReportServedFromCache(t *testing.T) {
	userID := uuid.New()
	bike := &domain.Bike{BikeID: uuid.New(), UserID: userID, CurrentOdometer: 8000, InitialOdometer: 5000}
	bikeRepo := newFakeBikeRepo(bike)
	cache := newMemCache()
	svc := NewReportService(&fakeReportRepo{}, bikeRepo, nopLogger{}, cache)

	first, err := svc.BikeReport(context.Background(), userID, &bike.BikeID)
	require.NoError(t, err)

	// A later odometer change is invisible until the cache is invalidated.
	bike.CurrentOdometer = 9000
	second, err := svc.BikeReport(context.Background(), userID, &bike.BikeID)
	require.NoError(t, err)
	assert.Equal(t, first.TotalDistance, second.TotalDistance)
}
