package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Common errors used by repository/use cases
var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email is already in use")
	ErrInvalidCredentials = errors.New("email or password is wrong")
	ErrInvalidRefresh     = errors.New("refresh token invalid")
	ErrTokenMismatch      = errors.New("stored refresh token mismatch")
)

// ProfilePatch carries the mutable profile fields for Update. Nil fields are
// left untouched.
type ProfilePatch struct {
	Name         *string
	Email        *string
	PasswordHash *string
	Theme        *string
	AvatarURL    *string
}

// UserRepository abstracts persistence concerns from the domain layer.
// Implementations may be in-memory, SQL, NoSQL, etc.
type UserRepository interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)

	// SetSessionTokens stores a freshly minted pair unconditionally (login).
	SetSessionTokens(ctx context.Context, id uuid.UUID, access, refresh string) error

	// RotateSessionTokens replaces the stored pair only while the stored
	// refresh token still equals prevRefresh. A rotated-out or cleared token
	// loses with ErrTokenMismatch, which closes the window between two
	// concurrent refreshes racing over the same anchor.
	RotateSessionTokens(ctx context.Context, id uuid.UUID, prevRefresh, access, refresh string) error

	// ClearSessionTokens nulls both tokens. Clearing an already cleared pair
	// is not an error.
	ClearSessionTokens(ctx context.Context, id uuid.UUID) error

	Update(ctx context.Context, id uuid.UUID, patch ProfilePatch) (User, error)
}
