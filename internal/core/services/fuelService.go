package services

import (
	"context"
	"fmt"

	"github.com/mototrack/mototrack_service/internal/core/domain"
	"github.com/mototrack/mototrack_service/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type FuelLogService struct {
	fuelRepo ports.FuelLogRepository
	bikeRepo ports.BikeRepository
	logger   ports.LoggerPort
	validate *validator.Validate
	cache    ports.CachePort
}

func NewFuelLogService(
	fuelRepo ports.FuelLogRepository,
	bikeRepo ports.BikeRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *FuelLogService {
	return &FuelLogService{
		fuelRepo: fuelRepo,
		bikeRepo: bikeRepo,
		logger:   logger,
		validate: validate,
		cache:    cache,
	}
}

// CreateFuelLog records a fill, attributes mileage to the previous fill and
// advances the bike's odometer high-water mark. Mileage stays nil on the
// first fill or when the history gives nothing to compare against.
func (s *FuelLogService) CreateFuelLog(ctx context.Context, log *domain.FuelLog) (*domain.FuelLog, error) {
	if err := s.validate.Struct(log); err != nil {
		s.logger.Error("Fuel log validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	// Ownership check before any write.
	if _, err := s.bikeRepo.GetBikeByID(ctx, log.BikeID, log.UserID); err != nil {
		return nil, err
	}

	prev, err := s.fuelRepo.PreviousFill(ctx, log.BikeID, log.OdometerReading)
	if err != nil {
		s.logger.Error("Failed to look up previous fill", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": log.BikeID,
		})
		return nil, err
	}
	log.Mileage = domain.MileageForFill(prev, log.OdometerReading)

	if log.FuelID == uuid.Nil {
		log.FuelID = uuid.New()
	}

	created, err := s.fuelRepo.CreateFuelLog(ctx, log)
	if err != nil {
		s.logger.Error("Failed to create fuel log", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": log.BikeID,
			"user_id": log.UserID,
		})
		return nil, err
	}

	// Conditional write: the stored odometer never decreases, even when
	// the new reading is behind the current high-water mark.
	if err := s.bikeRepo.AdvanceOdometer(ctx, log.BikeID, log.UserID, log.OdometerReading); err != nil {
		s.logger.Error("Failed to advance bike odometer", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": log.BikeID,
			"reading": log.OdometerReading,
		})
		return nil, err
	}

	s.invalidateBike(ctx, log.BikeID, log.UserID)

	fields := map[string]interface{}{
		"fuel_id": created.FuelID,
		"bike_id": created.BikeID,
		"reading": created.OdometerReading,
	}
	if created.Mileage != nil {
		fields["mileage"] = *created.Mileage
	}
	s.logger.Info("Fuel log created successfully", fields)

	return created, nil
}

func (s *FuelLogService) GetFuelLogByID(ctx context.Context, fuelID string, userID uuid.UUID) (*domain.FuelLog, error) {
	fuelUUID, err := uuid.Parse(fuelID)
	if err != nil {
		return nil, fmt.Errorf("invalid fuel log ID: %w", err)
	}

	log, err := s.fuelRepo.GetFuelLogByID(ctx, fuelUUID, userID)
	if err != nil {
		s.logger.Error("Failed to get fuel log", map[string]interface{}{
			"error":   err.Error(),
			"fuel_id": fuelID,
		})
		return nil, err
	}
	return log, nil
}

func (s *FuelLogService) ListFuelLogs(ctx context.Context, userID uuid.UUID, bikeID *uuid.UUID) ([]*domain.FuelLog, error) {
	logs, err := s.fuelRepo.ListFuelLogs(ctx, userID, bikeID)
	if err != nil {
		s.logger.Error("Failed to list fuel logs", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
		})
		return nil, err
	}
	return logs, nil
}

func (s *FuelLogService) UpdateFuelLog(ctx context.Context, log *domain.FuelLog) (*domain.FuelLog, error) {
	if err := s.validate.Struct(log); err != nil {
		s.logger.Error("Fuel log validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	updated, err := s.fuelRepo.UpdateFuelLog(ctx, log)
	if err != nil {
		s.logger.Error("Failed to update fuel log", map[string]interface{}{
			"error":   err.Error(),
			"fuel_id": log.FuelID,
		})
		return nil, err
	}

	s.invalidateBike(ctx, log.BikeID, log.UserID)

	s.logger.Info("Fuel log updated successfully", map[string]interface{}{
		"fuel_id": log.FuelID,
	})
	return updated, nil
}

func (s *FuelLogService) DeleteFuelLog(ctx context.Context, fuelID string, userID uuid.UUID) error {
	fuelUUID, err := uuid.Parse(fuelID)
	if err != nil {
		return fmt.Errorf("invalid fuel log ID: %w", err)
	}

	log, err := s.fuelRepo.GetFuelLogByID(ctx, fuelUUID, userID)
	if err != nil {
		return err
	}

	if err := s.fuelRepo.DeleteFuelLog(ctx, fuelUUID, userID); err != nil {
		s.logger.Error("Failed to delete fuel log", map[string]interface{}{
			"error":   err.Error(),
			"fuel_id": fuelID,
		})
		return err
	}

	s.invalidateBike(ctx, log.BikeID, userID)

	s.logger.Info("Fuel log deleted successfully", map[string]interface{}{
		"fuel_id": fuelID,
	})
	return nil
}

func (s *FuelLogService) invalidateBike(ctx context.Context, bikeID, userID uuid.UUID) {
	for _, key := range []string{bikeCacheKey(bikeID), reportCacheKey(userID, &bikeID), reportCacheKey(userID, nil)} {
		if err := s.cache.Delete(ctx, key); err != nil {
			s.logger.Warn("Failed to invalidate cache", map[string]interface{}{
				"error": err.Error(),
				"key":   key,
			})
		}
	}
}
