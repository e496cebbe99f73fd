package auth

import "context"

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenIssuer abstracts session token minting and refresh validation (e.g.
// JWT). It allows use cases to stay framework-agnostic.
type TokenIssuer interface {
	Mint(ctx context.Context, userID string) (TokenPair, error)

	// ParseRefresh verifies signature and expiry of a presented refresh
	// token and returns the embedded user id.
	ParseRefresh(tokenString string) (string, error)
}
