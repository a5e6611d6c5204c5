package services

import (
	"context"
	"testing"
	"time"

	"github.com/mototrack/mototrack_service/internal/core/domain"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServiceRecord(bikeID, userID uuid.UUID) *domain.ServiceRecord {
	return &domain.ServiceRecord{
		BikeID:      bikeID,
		UserID:      userID,
		ServiceDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		ServiceType: "General Service",
	}
}

func TestCreateServiceRecordSpawnsNextServiceReminder(t *testing.T) {
	userID := uuid.New()
	bike := &domain.Bike{BikeID: uuid.New(), UserID: userID, CurrentOdometer: 5200}
	bikeRepo := newFakeBikeRepo(bike)
	serviceRepo := &fakeServiceRepo{}
	reminderRepo := &fakeReminderRepo{}
	svc := NewServiceRecordService(serviceRepo, reminderRepo, bikeRepo, nopLogger{}, validator.New(), newMemCache())

	record := newServiceRecord(bike.BikeID, userID)
	record.OdometerReading = 5200
	nextKM := 8200
	record.NextServiceKM = &nextKM

	created, err := svc.CreateServiceRecord(context.Background(), record)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ServiceID)

	require.Len(t, reminderRepo.created, 1)
	reminder := reminderRepo.created[0]
	assert.Equal(t, "Next Service Due - General Service", reminder.Title)
	assert.Equal(t, domain.ReminderService, reminder.ReminderType)
	require.NotNil(t, reminder.DueOdometer)
	assert.Equal(t, 8200, *reminder.DueOdometer)

	// Service visits record history only, the odometer never moves.
	assert.Empty(t, bikeRepo.advanceCalls)
	assert.Equal(t, 5200, bike.CurrentOdometer)
}

func TestCreateServiceRecordWithoutNextServiceSkipsReminder(t *testing.T) {
	userID := uuid.New()
	bike := &domain.Bike{BikeID: uuid.New(), UserID: userID}
	bikeRepo := newFakeBikeRepo(bike)
	serviceRepo := &fakeServiceRepo{}
	reminderRepo := &fakeReminderRepo{}
	svc := NewServiceRecordService(serviceRepo, reminderRepo, bikeRepo, nopLogger{}, validator.New(), newMemCache())

	_, err := svc.CreateServiceRecord(context.Background(), newServiceRecord(bike.BikeID, userID))
	require.NoError(t, err)
	assert.Empty(t, reminderRepo.created)
}

func TestCreateServiceRecordSurvivesReminderFailure(t *testing.T) {
	userID := uuid.New()
	bike := &domain.Bike{BikeID: uuid.New(), UserID: userID}
	bikeRepo := newFakeBikeRepo(bike)
	serviceRepo := &fakeServiceRepo{}
	reminderRepo := &fakeReminderRepo{failing: true}
	svc := NewServiceRecordService(serviceRepo, reminderRepo, bikeRepo, nopLogger{}, validator.New(), newMemCache())

	record := newServiceRecord(bike.BikeID, userID)
	nextDate := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	record.NextServiceDate = &nextDate

	created, err := svc.CreateServiceRecord(context.Background(), record)
	require.NoError(t, err)
	assert.Len(t, serviceRepo.created, 1)
	assert.NotEqual(t, uuid.Nil, created.ServiceID)
}
