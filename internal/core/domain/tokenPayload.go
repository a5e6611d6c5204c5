package domain

import (
	"github.com/google/uuid"
)

// UserRole gates what an authenticated caller may do. Regular accounts are
// AppUser; Admin exists for operational tooling.
type UserRole string

const (
	Admin   UserRole = "admin"
	AppUser UserRole = "appuser"
)

// TokenPayload is the verified content of an access token. ID identifies the
// token itself, UserID the account it was issued to.
type TokenPayload struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Role   UserRole
}
