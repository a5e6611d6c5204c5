package services

import (
	"context"
	"fmt"

	"github.com/mototrack/mototrack_service/internal/core/domain"
	"github.com/mototrack/mototrack_service/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type TripService struct {
	tripRepo ports.TripRepository
	bikeRepo ports.BikeRepository
	logger   ports.LoggerPort
	validate *validator.Validate
	cache    ports.CachePort
}

func NewTripService(
	tripRepo ports.TripRepository,
	bikeRepo ports.BikeRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *TripService {
	return &TripService{
		tripRepo: tripRepo,
		bikeRepo: bikeRepo,
		logger:   logger,
		validate: validate,
		cache:    cache,
	}
}

// CreateTrip validates the odometer range before any write, stores the trip
// with its derived distance and advances the bike's odometer. The odometer
// write uses the same conditional rule as fuel fills, so a backdated trip
// can never lower the high-water mark.
func (s *TripService) CreateTrip(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	if err := s.validate.Struct(trip); err != nil {
		s.logger.Error("Trip validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if err := trip.Validate(); err != nil {
		s.logger.Warn("Trip rejected", map[string]interface{}{
			"error":          err.Error(),
			"bike_id":        trip.BikeID,
			"start_odometer": trip.StartOdometer,
			"end_odometer":   trip.EndOdometer,
		})
		return nil, err
	}

	if _, err := s.bikeRepo.GetBikeByID(ctx, trip.BikeID, trip.UserID); err != nil {
		return nil, err
	}

	if trip.TripID == uuid.Nil {
		trip.TripID = uuid.New()
	}
	trip.Distance = trip.EndOdometer - trip.StartOdometer

	created, err := s.tripRepo.CreateTrip(ctx, trip)
	if err != nil {
		s.logger.Error("Failed to create trip", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": trip.BikeID,
			"user_id": trip.UserID,
		})
		return nil, err
	}

	if err := s.bikeRepo.AdvanceOdometer(ctx, trip.BikeID, trip.UserID, trip.EndOdometer); err != nil {
		s.logger.Error("Failed to advance bike odometer", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": trip.BikeID,
			"reading": trip.EndOdometer,
		})
		return nil, err
	}

	s.invalidateBike(ctx, trip.BikeID, trip.UserID)

	s.logger.Info("Trip created successfully", map[string]interface{}{
		"trip_id":  created.TripID,
		"bike_id":  created.BikeID,
		"distance": created.Distance,
	})

	return created, nil
}

func (s *TripService) GetTripByID(ctx context.Context, tripID string, userID uuid.UUID) (*domain.Trip, error) {
	tripUUID, err := uuid.Parse(tripID)
	if err != nil {
		return nil, fmt.Errorf("invalid trip ID: %w", err)
	}

	trip, err := s.tripRepo.GetTripByID(ctx, tripUUID, userID)
	if err != nil {
		s.logger.Error("Failed to get trip", map[string]interface{}{
			"error":   err.Error(),
			"trip_id": tripID,
		})
		return nil, err
	}
	return trip, nil
}

func (s *TripService) ListTrips(ctx context.Context, userID uuid.UUID, bikeID *uuid.UUID) ([]*domain.Trip, error) {
	trips, err := s.tripRepo.ListTrips(ctx, userID, bikeID)
	if err != nil {
		s.logger.Error("Failed to list trips", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
		})
		return nil, err
	}
	return trips, nil
}

func (s *TripService) UpdateTrip(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	if err := s.validate.Struct(trip); err != nil {
		s.logger.Error("Trip validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if err := trip.Validate(); err != nil {
		return nil, err
	}

	trip.Distance = trip.EndOdometer - trip.StartOdometer

	updated, err := s.tripRepo.UpdateTrip(ctx, trip)
	if err != nil {
		s.logger.Error("Failed to update trip", map[string]interface{}{
			"error":   err.Error(),
			"trip_id": trip.TripID,
		})
		return nil, err
	}

	s.invalidateBike(ctx, trip.BikeID, trip.UserID)

	s.logger.Info("Trip updated successfully", map[string]interface{}{
		"trip_id": trip.TripID,
	})
	return updated, nil
}

func (s *TripService) DeleteTrip(ctx context.Context, tripID string, userID uuid.UUID) error {
	tripUUID, err := uuid.Parse(tripID)
	if err != nil {
		return fmt.Errorf("invalid trip ID: %w", err)
	}

	trip, err := s.tripRepo.GetTripByID(ctx, tripUUID, userID)
	if err != nil {
		return err
	}

	if err := s.tripRepo.DeleteTrip(ctx, tripUUID, userID); err != nil {
		s.logger.Error("Failed to delete trip", map[string]interface{}{
			"error":   err.Error(),
			"trip_id": tripID,
		})
		return err
	}

	s.invalidateBike(ctx, trip.BikeID, userID)

	s.logger.Info("Trip deleted successfully", map[string]interface{}{
		"trip_id": tripID,
	})
	return nil
}

func (s *TripService) invalidateBike(ctx context.Context, bikeID, userID uuid.UUID) {
	for _, key := range []string{bikeCacheKey(bikeID), reportCacheKey(userID, &bikeID), reportCacheKey(userID, nil)} {
		if err := s.cache.Delete(ctx, key); err != nil {
			s.logger.Warn("Failed to invalidate cache", map[string]interface{}{
				"error": err.Error(),
				"key":   key,
			})
		}
	}
}
