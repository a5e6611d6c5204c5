package services

import (
	"context"
	"fmt"

	"github.com/mototrack/mototrack_service/internal/core/domain"
	"github.com/mototrack/mototrack_service/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ServiceRecordService struct {
	serviceRepo  ports.ServiceRecordRepository
	reminderRepo ports.ReminderRepository
	bikeRepo     ports.BikeRepository
	logger       ports.LoggerPort
	validate     *validator.Validate
	cache        ports.CachePort
}

func NewServiceRecordService(
	serviceRepo ports.ServiceRecordRepository,
	reminderRepo ports.ReminderRepository,
	bikeRepo ports.BikeRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *ServiceRecordService {
	return &ServiceRecordService{
		serviceRepo:  serviceRepo,
		reminderRepo: reminderRepo,
		bikeRepo:     bikeRepo,
		logger:       logger,
		validate:     validate,
		cache:        cache,
	}
}

// CreateServiceRecord stores the visit and, when a next service date or
// odometer was given, spawns the derived reminder. The odometer reading is
// kept for history only; service visits never move current_odometer.
func (s *ServiceRecordService) CreateServiceRecord(ctx context.Context, record *domain.ServiceRecord) (*domain.ServiceRecord, error) {
	if err := s.validate.Struct(record); err != nil {
		s.logger.Error("Service record validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if _, err := s.bikeRepo.GetBikeByID(ctx, record.BikeID, record.UserID); err != nil {
		return nil, err
	}

	if record.ServiceID == uuid.Nil {
		record.ServiceID = uuid.New()
	}

	created, err := s.serviceRepo.CreateServiceRecord(ctx, record)
	if err != nil {
		s.logger.Error("Failed to create service record", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": record.BikeID,
			"user_id": record.UserID,
		})
		return nil, err
	}

	if reminder := created.NextServiceReminder(); reminder != nil {
		if _, err := s.reminderRepo.CreateReminder(ctx, reminder); err != nil {
			// The visit itself is saved; losing the derived reminder is
			// reported but not fatal.
			s.logger.Warn("Failed to create next-service reminder", map[string]interface{}{
				"error":      err.Error(),
				"service_id": created.ServiceID,
			})
		} else {
			s.logger.Info("Next-service reminder created", map[string]interface{}{
				"service_id":  created.ServiceID,
				"reminder_id": reminder.ReminderID,
			})
		}
	}

	s.invalidateReports(ctx, record.BikeID, record.UserID)

	s.logger.Info("Service record created successfully", map[string]interface{}{
		"service_id": created.ServiceID,
		"bike_id":    created.BikeID,
	})

	return created, nil
}

func (s *ServiceRecordService) GetServiceRecordByID(ctx context.Context, serviceID string, userID uuid.UUID) (*domain.ServiceRecord, error) {
	serviceUUID, err := uuid.Parse(serviceID)
	if err != nil {
		return nil, fmt.Errorf("invalid service record ID: %w", err)
	}

	record, err := s.serviceRepo.GetServiceRecordByID(ctx, serviceUUID, userID)
	if err != nil {
		s.logger.Error("Failed to get service record", map[string]interface{}{
			"error":      err.Error(),
			"service_id": serviceID,
		})
		return nil, err
	}
	return record, nil
}

func (s *ServiceRecordService) ListServiceRecords(ctx context.Context, userID uuid.UUID, bikeID *uuid.UUID) ([]*domain.ServiceRecord, error) {
	records, err := s.serviceRepo.ListServiceRecords(ctx, userID, bikeID)
	if err != nil {
		s.logger.Error("Failed to list service records", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
		})
		return nil, err
	}
	return records, nil
}

func (s *ServiceRecordService) UpdateServiceRecord(ctx context.Context, record *domain.ServiceRecord) (*domain.ServiceRecord, error) {
	if err := s.validate.Struct(record); err != nil {
		s.logger.Error("Service record validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	updated, err := s.serviceRepo.UpdateServiceRecord(ctx, record)
	if err != nil {
		s.logger.Error("Failed to update service record", map[string]interface{}{
			"error":      err.Error(),
			"service_id": record.ServiceID,
		})
		return nil, err
	}

	s.invalidateReports(ctx, record.BikeID, record.UserID)

	s.logger.Info("Service record updated successfully", map[string]interface{}{
		"service_id": record.ServiceID,
	})
	return updated, nil
}

func (s *ServiceRecordService) DeleteServiceRecord(ctx context.Context, serviceID string, userID uuid.UUID) error {
	serviceUUID, err := uuid.Parse(serviceID)
	if err != nil {
		return fmt.Errorf("invalid service record ID: %w", err)
	}

	record, err := s.serviceRepo.GetServiceRecordByID(ctx, serviceUUID, userID)
	if err != nil {
		return err
	}

	if err := s.serviceRepo.DeleteServiceRecord(ctx, serviceUUID, userID); err != nil {
		s.logger.Error("Failed to delete service record", map[string]interface{}{
			"error":      err.Error(),
			"service_id": serviceID,
		})
		return err
	}

	s.invalidateReports(ctx, record.BikeID, userID)

	s.logger.Info("Service record deleted successfully", map[string]interface{}{
		"service_id": serviceID,
	})
	return nil
}

func (s *ServiceRecordService) invalidateReports(ctx context.Context, bikeID, userID uuid.UUID) {
	for _, key := range []string{reportCacheKey(userID, &bikeID), reportCacheKey(userID, nil)} {
		if err := s.cache.Delete(ctx, key); err != nil {
			s.logger.Warn("Failed to invalidate cache", map[string]interface{}{
				"error": err.Error(),
				"key":   key,
			})
		}
	}
}
