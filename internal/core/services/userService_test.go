package services

import (
	"context"
	"testing"

	"github.com/mototrack/mototrack_service/internal/core/domain"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterAndLogin(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo, fakeTokens{}, nopLogger{}, validator.New())

	user, err := svc.Register(context.Background(), "Ravi Kumar", "ravi@example.com", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, domain.AppUser, user.Role)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "s3cretpass", user.PasswordHash)

	loggedIn, token, err := svc.Login(context.Background(), "ravi@example.com", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, user.UserID, loggedIn.UserID)
	assert.Equal(t, "test-token", token)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), fakeTokens{}, nopLogger{}, validator.New())

	_, err := svc.Register(context.Background(), "Ravi Kumar", "ravi@example.com", "short")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	userRepo := newFakeUserRepo(&domain.User{
		UserID: uuid.New(),
		Name:   "Existing",
		Email:  "ravi@example.com",
		Role:   domain.AppUser,
	})
	svc := NewUserService(userRepo, fakeTokens{}, nopLogger{}, validator.New())

	_, err := svc.Register(context.Background(), "Ravi Kumar", "ravi@example.com", "s3cretpass")
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("rightpass1"), bcrypt.DefaultCost)
	require.NoError(t, err)
	userRepo := newFakeUserRepo(&domain.User{
		UserID:       uuid.New(),
		Name:         "Ravi Kumar",
		Email:        "ravi@example.com",
		PasswordHash: string(hash),
		Role:         domain.AppUser,
	})
	svc := NewUserService(userRepo, fakeTokens{}, nopLogger{}, validator.New())

	_, _, err = svc.Login(context.Background(), "ravi@example.com", "wrongpass1")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUnknownEmailDoesNotLeak(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), fakeTokens{}, nopLogger{}, validator.New())

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever1")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
