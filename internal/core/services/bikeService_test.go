package services

import (
	"context"
	"testing"

	"github.com/mototrack/mototrack_service/internal/core/domain"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBikeSetsInitialOdometerFromCurrent(t *testing.T) {
	bikeRepo := newFakeBikeRepo()
	svc := NewBikeService(bikeRepo, nopLogger{}, validator.New(), newMemCache())

	created, err := svc.CreateBike(context.Background(), &domain.Bike{
		UserID:          uuid.New(),
		BikeName:        "Classic 350",
		CurrentOdometer: 5000,
	})
	require.NoError(t, err)

	assert.Equal(t, 5000, created.InitialOdometer)
	assert.NotEqual(t, uuid.Nil, created.BikeID)
}

func TestCreateBikeKeepsExplicitInitialOdometer(t *testing.T) {
	bikeRepo := newFakeBikeRepo()
	svc := NewBikeService(bikeRepo, nopLogger{}, validator.New(), newMemCache())

	created, err := svc.CreateBike(context.Background(), &domain.Bike{
		UserID:          uuid.New(),
		BikeName:        "Classic 350",
		CurrentOdometer: 5000,
		InitialOdometer: 3000,
	})
	require.NoError(t, err)

	assert.Equal(t, 3000, created.InitialOdometer)
}

func TestGetBikeByIDCachesAndChecksOwnership(t *testing.T) {
	userID := uuid.New()
	bike := &domain.Bike{BikeID: uuid.New(), UserID: userID, BikeName: "Classic 350", CurrentOdometer: 5000}
	bikeRepo := newFakeBikeRepo(bike)
	cache := newMemCache()
	svc := NewBikeService(bikeRepo, nopLogger{}, validator.New(), cache)

	got, err := svc.GetBikeByID(context.Background(), bike.BikeID.String(), userID)
	require.NoError(t, err)
	assert.Equal(t, bike.BikeID, got.BikeID)

	// The entry is cached now; a different user still gets nothing.
	_, cached := cache.data[bikeCacheKey(bike.BikeID)]
	assert.True(t, cached)
	_, err = svc.GetBikeByID(context.Background(), bike.BikeID.String(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetBikeByIDPassesRequestContextToCache(t *testing.T) {
	userID := uuid.New()
	bike := &domain.Bike{BikeID: uuid.New(), UserID: userID, BikeName: "Classic 350", CurrentOdometer: 5000}
	cache := &ctxRecordingCache{memCache: newMemCache()}
	svc := NewBikeService(newFakeBikeRepo(bike), nopLogger{}, validator.New(), cache)

	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "request-scoped")

	_, err := svc.GetBikeByID(ctx, bike.BikeID.String(), userID)
	require.NoError(t, err)
	require.NotNil(t, cache.lastCtx)
	assert.Equal(t, "request-scoped", cache.lastCtx.Value(ctxKey{}))
}

func TestGetBikeByIDInvalidUUID(t *testing.T) {
	svc := NewBikeService(newFakeBikeRepo(), nopLogger{}, validator.New(), newMemCache())

	_, err := svc.GetBikeByID(context.Background(), "not-a-uuid", uuid.New())
	assert.Error(t, err)
}

func TestCreateReminderForeignBike(t *testing.T) {
	owner := uuid.New()
	bike := &domain.Bike{BikeID: uuid.New(), UserID: owner}
	bikeRepo := newFakeBikeRepo(bike)
	reminderRepo := &fakeReminderRepo{}
	svc := NewReminderService(reminderRepo, bikeRepo, nopLogger{}, validator.New())

	_, err := svc.CreateReminder(context.Background(), &domain.Reminder{
		BikeID:       bike.BikeID,
		UserID:       uuid.New(),
		ReminderType: domain.ReminderInsurance,
		Title:        "Insurance renewal",
		Priority:     domain.PriorityHigh,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, reminderRepo.created)
}
