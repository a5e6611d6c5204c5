package ports

import (
	"context"

	"github.com/mototrack/mototrack_service/internal/core/domain"

	"github.com/google/uuid"
)

type TripRepository interface {
	CreateTrip(ctx context.Context, trip *domain.Trip) (*domain.Trip, error)
	GetTripByID(ctx context.Context, tripID, userID uuid.UUID) (*domain.Trip, error)
	ListTrips(ctx context.Context, userID uuid.UUID, bikeID *uuid.UUID) ([]*domain.Trip, error)
	UpdateTrip(ctx context.Context, trip *domain.Trip) (*domain.Trip, error)
	DeleteTrip(ctx context.Context, tripID, userID uuid.UUID) error
}

type TripService interface {
	CreateTrip(ctx context.Context, trip *domain.Trip) (*domain.Trip, error)
	GetTripByID(ctx context.Context, tripID string, userID uuid.UUID) (*domain.Trip, error)
	ListTrips(ctx context.Context, userID uuid.UUID, bikeID *uuid.UUID) ([]*domain.Trip, error)
	UpdateTrip(ctx context.Context, trip *domain.Trip) (*domain.Trip, error)
	DeleteTrip(ctx context.Context, tripID string, userID uuid.UUID) error
}
