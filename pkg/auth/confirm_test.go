package auth

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfirmationToken(t *testing.T) {
	token, err := NewConfirmationToken()
	require.NoError(t, err)
	assert.Len(t, token, 64)

	_, err = hex.DecodeString(token)
	assert.NoError(t, err)
}

func TestNewConfirmationTokenDiffers(t *testing.T) {
	a, err := NewConfirmationToken()
	require.NoError(t, err)
	b, err := NewConfirmationToken()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
