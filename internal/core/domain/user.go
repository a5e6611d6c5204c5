package domain

import (
	"time"

	"github.com/google/uuid"
)

// swagger:model domain.User
type User struct {
	UserID       uuid.UUID `json:"user_id"`
	Name         string    `json:"name" validate:"required,max=100"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
