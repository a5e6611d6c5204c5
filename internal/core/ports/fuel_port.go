package ports

import (
	"context"

	"github.com/mototrack/mototrack_service/internal/core/domain"

	"github.com/google/uuid"
)

type FuelLogRepository interface {
	CreateFuelLog(ctx context.Context, log *domain.FuelLog) (*domain.FuelLog, error)
	GetFuelLogByID(ctx context.Context, fuelID, userID uuid.UUID) (*domain.FuelLog, error)
	ListFuelLogs(ctx context.Context, userID uuid.UUID, bikeID *uuid.UUID) ([]*domain.FuelLog, error)
	UpdateFuelLog(ctx context.Context, log *domain.FuelLog) (*domain.FuelLog, error)
	DeleteFuelLog(ctx context.Context, fuelID, userID uuid.UUID) error

	// PreviousFill returns the bike's fuel log with the largest odometer
	// reading strictly below beforeReading, or nil when none exists.
	PreviousFill(ctx context.Context, bikeID uuid.UUID, beforeReading int) (*domain.FuelLog, error)
}

type FuelLogService interface {
	CreateFuelLog(ctx context.Context, log *domain.FuelLog) (*domain.FuelLog, error)
	GetFuelLogByID(ctx context.Context, fuelID string, userID uuid.UUID) (*domain.FuelLog, error)
	ListFuelLogs(ctx context.Context, userID uuid.UUID, bikeID *uuid.UUID) ([]*domain.FuelLog, error)
	UpdateFuelLog(ctx context.Context, log *domain.FuelLog) (*domain.FuelLog, error)
	DeleteFuelLog(ctx context.Context, fuelID string, userID uuid.UUID) error
}
