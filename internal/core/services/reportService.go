package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mototrack/mototrack_service/internal/core/domain"
	"github.com/mototrack/mototrack_service/internal/core/ports"

	"github.com/google/uuid"
)

const (
	reportCacheTTL    = 5 * time.Minute
	monthlyFuelMonths = 12
)

type ReportService struct {
	reportRepo ports.ReportRepository
	bikeRepo   ports.BikeRepository
	logger     ports.LoggerPort
	cache      ports.CachePort
}

func NewReportService(
	reportRepo ports.ReportRepository,
	bikeRepo ports.BikeRepository,
	logger ports.LoggerPort,
	cache ports.CachePort,
) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		bikeRepo:   bikeRepo,
		logger:     logger,
		cache:      cache,
	}
}

func reportCacheKey(userID uuid.UUID, bikeID *uuid.UUID) string {
	if bikeID != nil {
		return fmt.Sprintf("report:%s:%s", userID, bikeID)
	}
	return fmt.Sprintf("report:%s:all", userID)
}

// BikeReport assembles the dashboard/report projection for one bike, or for
// the whole garage when bikeID is nil. Total distance is odometer based;
// a negative total is reported as-is with the anomaly flag set.
func (s *ReportService) BikeReport(ctx context.Context, userID uuid.UUID, bikeID *uuid.UUID) (*domain.BikeReport, error) {
	cacheKey := reportCacheKey(userID, bikeID)
	if cachedData, err := s.cache.Get(ctx, cacheKey); err == nil {
		var cached domain.BikeReport
		if err := json.Unmarshal(cachedData, &cached); err == nil {
			return &cached, nil
		}
	}

	report := &domain.BikeReport{}

	if bikeID != nil {
		bike, err := s.bikeRepo.GetBikeByID(ctx, *bikeID, userID)
		if err != nil {
			return nil, err
		}
		earliest, err := s.bikeRepo.EarliestReading(ctx, *bikeID)
		if err != nil {
			return nil, err
		}
		report.TotalDistance = bike.TotalDistanceDriven(earliest)
	} else {
		total, err := s.reportRepo.SumOdometerDistance(ctx, userID)
		if err != nil {
			return nil, err
		}
		report.TotalDistance = total
	}

	if report.TotalDistance < 0 {
		report.DistanceAnomaly = true
		s.logger.Warn("Negative total distance, odometer readings inconsistent", map[string]interface{}{
			"user_id":        userID,
			"total_distance": report.TotalDistance,
		})
	}

	fuel, err := s.reportRepo.FuelStats(ctx, userID, bikeID)
	if err != nil {
		return nil, err
	}
	report.Fuel = *fuel

	service, err := s.reportRepo.ServiceStats(ctx, userID, bikeID)
	if err != nil {
		return nil, err
	}
	report.Service = *service

	trips, err := s.reportRepo.TripStats(ctx, userID, bikeID)
	if err != nil {
		return nil, err
	}
	report.Trips = *trips

	monthly, err := s.reportRepo.MonthlyFuel(ctx, userID, bikeID, monthlyFuelMonths)
	if err != nil {
		return nil, err
	}
	report.MonthlyFuel = monthly

	purposes, err := s.reportRepo.TripPurposes(ctx, userID, bikeID)
	if err != nil {
		return nil, err
	}
	report.TripPurposes = purposes

	report.ComputeCostPerKM()

	if data, err := json.Marshal(report); err == nil {
		if err := s.cache.Set(ctx, cacheKey, data, reportCacheTTL); err != nil {
			s.logger.Warn("Failed to cache report", map[string]interface{}{
				"error": err.Error(),
				"key":   cacheKey,
			})
		}
	}

	return report, nil
}
