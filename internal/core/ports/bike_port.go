package ports

import (
	"context"

	"github.com/mototrack/mototrack_service/internal/core/domain"

	"github.com/google/uuid"
)

type BikeRepository interface {
	CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error)
	GetBikeByID(ctx context.Context, bikeID, userID uuid.UUID) (*domain.Bike, error)
	GetBikesByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Bike, error)
	UpdateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error)
	DeleteBike(ctx context.Context, bikeID, userID uuid.UUID) error

	// AdvanceOdometer raises the bike's current odometer to reading, as a
	// single conditional statement that never lowers the stored value.
	AdvanceOdometer(ctx context.Context, bikeID, userID uuid.UUID, reading int) error

	// EarliestReading returns the smallest odometer value across the bike's
	// fuel logs and trip starts, or nil when the bike has no history.
	EarliestReading(ctx context.Context, bikeID uuid.UUID) (*int, error)
}

type BikeService interface {
	CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error)
	GetBikeByID(ctx context.Context, bikeID string, userID uuid.UUID) (*domain.Bike, error)
	GetBikesByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Bike, error)
	UpdateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error)
	DeleteBike(ctx context.Context, bikeID string, userID uuid.UUID) error
}
