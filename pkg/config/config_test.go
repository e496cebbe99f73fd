package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("ACCESS_TOKEN_KEY", "access-secret")
	t.Setenv("REFRESH_TOKEN_KEY", "refresh-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshTokenTTL)
	assert.Equal(t, "taskpro-api", cfg.TokenIssuer)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9000")
	t.Setenv("ACCESS_TOKEN_TTL", "5m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 5*time.Minute, cfg.AccessTokenTTL)
}

func TestLoadRequiresSigningKeys(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_KEY", "")
	t.Setenv("REFRESH_TOKEN_KEY", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsSharedKey(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_KEY", "same")
	t.Setenv("REFRESH_TOKEN_KEY", "same")

	_, err := Load()
	require.Error(t, err)
}
