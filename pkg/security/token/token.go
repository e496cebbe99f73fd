// Package token mints and validates the paired session tokens: a short-lived
// access token for per-request authorization and a long-lived refresh token
// used only to obtain a new pair. Each class is signed with its own secret so
// a leaked access key cannot forge refresh tokens.
package token

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/msilviu/taskpro/pkg/auth"
)

// ErrInvalidToken covers bad signatures, wrong signing methods, and expired
// tokens alike; callers are not told which.
var ErrInvalidToken = errors.New("invalid or expired token")

// Keys holds the two signing secrets, injected explicitly at startup.
type Keys struct {
	Access  []byte
	Refresh []byte
}

// Claims includes the registered claims plus the user identifier.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

type Issuer struct {
	keys       Keys
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewIssuer(keys Keys, issuer string, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{keys: keys, issuer: issuer, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// Mint produces a signed access/refresh pair carrying the user id. The caller
// is responsible for persisting both tokens on the user record.
func (i *Issuer) Mint(ctx context.Context, userID string) (auth.TokenPair, error) {
	access, err := i.sign(userID, i.keys.Access, i.accessTTL)
	if err != nil {
		return auth.TokenPair{}, err
	}
	refresh, err := i.sign(userID, i.keys.Refresh, i.refreshTTL)
	if err != nil {
		return auth.TokenPair{}, err
	}
	return auth.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (i *Issuer) sign(userID string, key []byte, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			// The jti makes every mint unique: iat/exp have second
			// granularity, and an identical re-mint would re-arm a
			// rotated-out refresh token.
			ID:        uuid.NewString(),
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

// ParseAccess validates an access token and returns the embedded user id.
func (i *Issuer) ParseAccess(tokenString string) (string, error) {
	return parse(tokenString, i.keys.Access)
}

// ParseRefresh validates a refresh token and returns the embedded user id.
// An access token presented here fails the signature check because the keys
// differ per class.
func (i *Issuer) ParseRefresh(tokenString string) (string, error) {
	return parse(tokenString, i.keys.Refresh)
}

func parse(tokenString string, key []byte) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}
