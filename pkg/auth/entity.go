package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is the domain entity holding identity and the current session record.
// AccessToken/RefreshToken are nil together (logged out) or set together
// (active session); the stored refresh token is the rotation anchor.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Theme        string
	AvatarURL    string

	// ConfirmationToken is set at registration and emailed to the user.
	// There is no consumption endpoint yet; login is not gated on it.
	ConfirmationToken *string

	AccessToken  *string
	RefreshToken *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PublicView is the client-facing projection of a User. It never carries the
// password hash, tokens, or timestamps.
type PublicView struct {
	ID        uuid.UUID `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Theme     string    `json:"theme"`
	AvatarURL string    `json:"avatarURL"`
}

func (u User) PublicView() PublicView {
	return PublicView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Theme:     u.Theme,
		AvatarURL: u.AvatarURL,
	}
}
