package token

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKeys() Keys {
	return Keys{Access: []byte("access-key"), Refresh: []byte("refresh-key")}
}

func TestMintAndParse(t *testing.T) {
	issuer := NewIssuer(testKeys(), "taskpro-test", 10*time.Minute, 7*24*time.Hour)

	pair, err := issuer.Mint(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	uid, err := issuer.ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", uid)

	uid, err = issuer.ParseRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", uid)
}

func TestMintIsUniquePerCall(t *testing.T) {
	issuer := NewIssuer(testKeys(), "taskpro-test", 10*time.Minute, 7*24*time.Hour)

	// Back-to-back mints land in the same wall-clock second; the pairs must
	// still differ or a rotated-out refresh token would match the new anchor.
	first, err := issuer.Mint(context.Background(), "user-1")
	require.NoError(t, err)
	second, err := issuer.Mint(context.Background(), "user-1")
	require.NoError(t, err)

	assert.NotEqual(t, first.AccessToken, second.AccessToken)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
}

func TestTokenClassesAreNotInterchangeable(t *testing.T) {
	issuer := NewIssuer(testKeys(), "taskpro-test", 10*time.Minute, 7*24*time.Hour)
	pair, err := issuer.Mint(context.Background(), "user-1")
	require.NoError(t, err)

	_, err = issuer.ParseRefresh(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.ParseAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpired(t *testing.T) {
	issuer := NewIssuer(testKeys(), "taskpro-test", -time.Minute, -time.Minute)
	pair, err := issuer.Mint(context.Background(), "user-1")
	require.NoError(t, err)

	_, err = issuer.ParseAccess(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = issuer.ParseRefresh(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsForeignKey(t *testing.T) {
	issuer := NewIssuer(testKeys(), "taskpro-test", 10*time.Minute, 10*time.Minute)
	other := NewIssuer(Keys{Access: []byte("other-a"), Refresh: []byte("other-r")}, "taskpro-test", 10*time.Minute, 10*time.Minute)

	pair, err := other.Mint(context.Background(), "user-1")
	require.NoError(t, err)

	_, err = issuer.ParseAccess(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	issuer := NewIssuer(testKeys(), "taskpro-test", 10*time.Minute, 10*time.Minute)
	for _, input := range []string{"", "abc", "a.b.c"} {
		_, err := issuer.ParseAccess(input)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
