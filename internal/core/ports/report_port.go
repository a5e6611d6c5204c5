package ports

import (
	"context"

	"github.com/mototrack/mototrack_service/internal/core/domain"

	"github.com/google/uuid"
)

type ReportRepository interface {
	FuelStats(ctx context.Context, userID uuid.UUID, bikeID *uuid.UUID) (*domain.FuelStats, error)
	ServiceStats(ctx context.Context, userID uuid.UUID, bikeID *uuid.UUID) (*domain.ServiceStats, error)
	TripStats(ctx context.Context, userID uuid.UUID, bikeID *uuid.UUID) (*domain.TripStats, error)
	MonthlyFuel(ctx context.Context, userID uuid.UUID, bikeID *uuid.UUID, months int) ([]domain.MonthlyFuel, error)
	TripPurposes(ctx context.Context, userID uuid.UUID, bikeID *uuid.UUID) ([]domain.TripPurposeStat, error)

	// SumOdometerDistance sums current_odometer - initial_odometer over all
	// of the user's bikes, for garage-wide reports.
	SumOdometerDistance(ctx context.Context, userID uuid.UUID) (int, error)
}

type ReportService interface {
	BikeReport(ctx context.Context, userID uuid.UUID, bikeID *uuid.UUID) (*domain.BikeReport, error)
}
