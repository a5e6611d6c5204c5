package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers both records that do not exist and records owned
	// by another user, so nothing leaks about foreign rows.
	ErrNotFound = errors.New("record not found")

	// ErrValidation marks input rejected before any write.
	ErrValidation = errors.New("validation error")

	ErrEndBeforeStart = fmt.Errorf("%w: end odometer must be greater than start odometer", ErrValidation)

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
