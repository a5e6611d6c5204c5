package services

import (
	"context"
	"errors"
	"time"

	"github.com/mototrack/mototrack_service/internal/core/domain"
	"github.com/mototrack/mototrack_service/internal/core/ports"

	"github.com/google/uuid"
)

type nopLogger struct{}

func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

var errCacheMiss = errors.New("cache miss")

type memCache struct {
	data map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string][]byte)}
}

func (c *memCache) Get(_ context.Context, key string) ([]byte, error) {
	value, ok := c.data[key]
	if !ok {
		return nil, errCacheMiss
	}
	return value, nil
}

func (c *memCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.data[key] = value
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	delete(c.data, key)
	return nil
}

// ctxRecordingCache remembers the context of the last lookup.
type ctxRecordingCache struct {
	*memCache
	lastCtx context.Context
}

func (c *ctxRecordingCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.lastCtx = ctx
	return c.memCache.Get(ctx, key)
}

type advanceCall struct {
	bikeID  uuid.UUID
	reading int
}

type fakeBikeRepo struct {
	bikes        map[uuid.UUID]*domain.Bike
	earliest     map[uuid.UUID]*int
	advanceCalls []advanceCall
}

func newFakeBikeRepo(bikes ...*domain.Bike) *fakeBikeRepo {
	repo := &fakeBikeRepo{
		bikes:    make(map[uuid.UUID]*domain.Bike),
		earliest: make(map[uuid.UUID]*int),
	}
	for _, bike := range bikes {
		repo.bikes[bike.BikeID] = bike
	}
	return repo
}

func (r *fakeBikeRepo) CreateBike(_ context.Context, bike *domain.Bike) (*domain.Bike, error) {
	r.bikes[bike.BikeID] = bike
	return bike, nil
}

func (r *fakeBikeRepo) GetBikeByID(_ context.Context, bikeID, userID uuid.UUID) (*domain.Bike, error) {
	bike, ok := r.bikes[bikeID]
	if !ok || bike.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return bike, nil
}

func (r *fakeBikeRepo) GetBikesByUserID(_ context.Context, userID uuid.UUID) ([]*domain.Bike, error) {
	var bikes []*domain.Bike
	for _, bike := range r.bikes {
		if bike.UserID == userID {
			bikes = append(bikes, bike)
		}
	}
	return bikes, nil
}

func (r *fakeBikeRepo) UpdateBike(_ context.Context, bike *domain.Bike) (*domain.Bike, error) {
	existing, ok := r.bikes[bike.BikeID]
	if !ok || existing.UserID != bike.UserID {
		return nil, domain.ErrNotFound
	}
	r.bikes[bike.BikeID] = bike
	return bike, nil
}

func (r *fakeBikeRepo) DeleteBike(_ context.Context, bikeID, userID uuid.UUID) error {
	bike, ok := r.bikes[bikeID]
	if !ok || bike.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.bikes, bikeID)
	return nil
}

// AdvanceOdometer mirrors the conditional UPDATE: the stored value only
// moves forward.
func (r *fakeBikeRepo) AdvanceOdometer(_ context.Context, bikeID, userID uuid.UUID, reading int) error {
	r.advanceCalls = append(r.advanceCalls, advanceCall{bikeID: bikeID, reading: reading})
	bike, ok := r.bikes[bikeID]
	if !ok || bike.UserID != userID {
		return nil
	}
	if reading > bike.CurrentOdometer {
		bike.CurrentOdometer = reading
	}
	return nil
}

func (r *fakeBikeRepo) EarliestReading(_ context.Context, bikeID uuid.UUID) (*int, error) {
	return r.earliest[bikeID], nil
}

type fakeFuelRepo struct {
	prev    *domain.FuelLog
	created []*domain.FuelLog
}

func (r *fakeFuelRepo) CreateFuelLog(_ context.Context, log *domain.FuelLog) (*domain.FuelLog, error) {
	r.created = append(r.created, log)
	return log, nil
}

func (r *fakeFuelRepo) GetFuelLogByID(_ context.Context, fuelID, userID uuid.UUID) (*domain.FuelLog, error) {
	for _, log := range r.created {
		if log.FuelID == fuelID && log.UserID == userID {
			return log, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeFuelRepo) ListFuelLogs(_ context.Context, userID uuid.UUID, _ *uuid.UUID) ([]*domain.FuelLog, error) {
	return r.created, nil
}

func (r *fakeFuelRepo) UpdateFuelLog(_ context.Context, log *domain.FuelLog) (*domain.FuelLog, error) {
	return log, nil
}

func (r *fakeFuelRepo) DeleteFuelLog(_ context.Context, _, _ uuid.UUID) error {
	return nil
}

func (r *fakeFuelRepo) PreviousFill(_ context.Context, _ uuid.UUID, beforeReading int) (*domain.FuelLog, error) {
	if r.prev != nil && r.prev.OdometerReading < beforeReading {
		return r.prev, nil
	}
	return nil, nil
}

type fakeTripRepo struct {
	created []*domain.Trip
}

func (r *fakeTripRepo) CreateTrip(_ context.Context, trip *domain.Trip) (*domain.Trip, error) {
	r.created = append(r.created, trip)
	return trip, nil
}

func (r *fakeTripRepo) GetTripByID(_ context.Context, tripID, userID uuid.UUID) (*domain.Trip, error) {
	for _, trip := range r.created {
		if trip.TripID == tripID && trip.UserID == userID {
			return trip, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeTripRepo) ListTrips(_ context.Context, _ uuid.UUID, _ *uuid.UUID) ([]*domain.Trip, error) {
	return r.created, nil
}

func (r *fakeTripRepo) UpdateTrip(_ context.Context, trip *domain.Trip) (*domain.Trip, error) {
	return trip, nil
}

func (r *fakeTripRepo) DeleteTrip(_ context.Context, _, _ uuid.UUID) error {
	return nil
}

type fakeServiceRepo struct {
	created []*domain.ServiceRecord
}

func (r *fakeServiceRepo) CreateServiceRecord(_ context.Context, record *domain.ServiceRecord) (*domain.ServiceRecord, error) {
	r.created = append(r.created, record)
	return record, nil
}

func (r *fakeServiceRepo) GetServiceRecordByID(_ context.Context, serviceID, userID uuid.UUID) (*domain.ServiceRecord, error) {
	for _, record := range r.created {
		if record.ServiceID == serviceID && record.UserID == userID {
			return record, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeServiceRepo) ListServiceRecords(_ context.Context, _ uuid.UUID, _ *uuid.UUID) ([]*domain.ServiceRecord, error) {
	return r.created, nil
}

func (r *fakeServiceRepo) UpdateServiceRecord(_ context.Context, record *domain.ServiceRecord) (*domain.ServiceRecord, error) {
	return record, nil
}

func (r *fakeServiceRepo) DeleteServiceRecord(_ context.Context, _, _ uuid.UUID) error {
	return nil
}

type fakeReminderRepo struct {
	created []*domain.Reminder
	failing bool
}

func (r *fakeReminderRepo) CreateReminder(_ context.Context, reminder *domain.Reminder) (*domain.Reminder, error) {
	if r.failing {
		return nil, errors.New("reminder store unavailable")
	}
	r.created = append(r.created, reminder)
	return reminder, nil
}

func (r *fakeReminderRepo) GetReminderByID(_ context.Context, reminderID, userID uuid.UUID) (*domain.Reminder, error) {
	for _, reminder := range r.created {
		if reminder.ReminderID == reminderID && reminder.UserID == userID {
			return reminder, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeReminderRepo) ListReminders(_ context.Context, _ uuid.UUID, _ *uuid.UUID, _ ports.ReminderFilter) ([]*domain.Reminder, error) {
	return r.created, nil
}

func (r *fakeReminderRepo) UpdateReminder(_ context.Context, reminder *domain.Reminder) (*domain.Reminder, error) {
	return reminder, nil
}

func (r *fakeReminderRepo) CompleteReminder(_ context.Context, reminderID, userID uuid.UUID) error {
	for _, reminder := range r.created {
		if reminder.ReminderID == reminderID && reminder.UserID == userID {
			reminder.IsCompleted = true
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeReminderRepo) DeleteReminder(_ context.Context, _, _ uuid.UUID) error {
	return nil
}

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*domain.User)}
	for _, user := range users {
		repo.users[user.Email] = user
	}
	return repo
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	r.users[user.Email] = user
	return user, nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, userID uuid.UUID) (*domain.User, error) {
	for _, user := range r.users {
		if user.UserID == userID {
			return user, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

type fakeTokens struct{}

func (fakeTokens) IssueToken(*domain.User) (string, error) {
	return "test-token", nil
}

func (fakeTokens) VerifyToken(string) (*domain.TokenPayload, error) {
	return nil, errors.New("not implemented")
}

type fakeReportRepo struct {
	fuel         domain.FuelStats
	service      domain.ServiceStats
	trips        domain.TripStats
	monthly      []domain.MonthlyFuel
	purposes     []domain.TripPurposeStat
	sumOdometers int
}

func (r *fakeReportRepo) FuelStats(_ context.Context, _ uuid.UUID, _ *uuid.UUID) (*domain.FuelStats, error) {
	fuel := r.fuel
	return &fuel, nil
}

func (r *fakeReportRepo) ServiceStats(_ context.Context, _ uuid.UUID, _ *uuid.UUID) (*domain.ServiceStats, error) {
	service := r.service
	return &service, nil
}

func (r *fakeReportRepo) TripStats(_ context.Context, _ uuid.UUID, _ *uuid.UUID) (*domain.TripStats, error) {
	trips := r.trips
	return &trips, nil
}

func (r *fakeReportRepo) MonthlyFuel(_ context.Context, _ uuid.UUID, _ *uuid.UUID, _ int) ([]domain.MonthlyFuel, error) {
	return r.monthly, nil
}

func (r *fakeReportRepo) TripPurposes(_ context.Context, _ uuid.UUID, _ *uuid.UUID) ([]domain.TripPurposeStat, error) {
	return r.purposes, nil
}

func (r *fakeReportRepo) SumOdometerDistance(_ context.Context, _ uuid.UUID) (int, error) {
	return r.sumOdometers, nil
}
