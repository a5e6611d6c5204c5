package ports

import (
	"context"

	"github.com/mototrack/mototrack_service/internal/core/domain"

	"github.com/google/uuid"
)

type ServiceRecordRepository interface {
	CreateServiceRecord(ctx context.Context, record *domain.ServiceRecord) (*domain.ServiceRecord, error)
	GetServiceRecordByID(ctx context.Context, serviceID, userID uuid.UUID) (*domain.ServiceRecord, error)
	ListServiceRecords(ctx context.Context, userID uuid.UUID, bikeID *uuid.UUID) ([]*domain.ServiceRecord, error)
	UpdateServiceRecord(ctx context.Context, record *domain.ServiceRecord) (*domain.ServiceRecord, error)
	DeleteServiceRecord(ctx context.Context, serviceID, userID uuid.UUID) error
}

type ServiceRecordService interface {
	CreateServiceRecord(ctx context.Context, record *domain.ServiceRecord) (*domain.ServiceRecord, error)
	GetServiceRecordByID(ctx context.Context, serviceID string, userID uuid.UUID) (*domain.ServiceRecord, error)
	ListServiceRecords(ctx context.Context, userID uuid.UUID, bikeID *uuid.UUID) ([]*domain.ServiceRecord, error)
	UpdateServiceRecord(ctx context.Context, record *domain.ServiceRecord) (*domain.ServiceRecord, error)
	DeleteServiceRecord(ctx context.Context, serviceID string, userID uuid.UUID) error
}
