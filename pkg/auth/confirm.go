package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const confirmationTokenBytes = 32

// NewConfirmationToken returns a fresh one-time confirmation secret: 32
// random bytes hex-encoded to 64 printable characters. Uniqueness is
// probabilistic; tokens are not checked against existing ones.
func NewConfirmationToken() (string, error) {
	buf := make([]byte, confirmationTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
