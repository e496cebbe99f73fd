package token

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(t *testing.T, issuer *Issuer) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/protected", RequireAccess(issuer), func(c *fiber.Ctx) error {
		id := c.Locals(LocalUserID).(uuid.UUID)
		return c.JSON(fiber.Map{"userId": id.String()})
	})
	return app
}

func TestRequireAccessAllowsValidToken(t *testing.T) {
	issuer := NewIssuer(testKeys(), "taskpro-test", 10*time.Minute, time.Hour)
	app := newProtectedApp(t, issuer)

	userID := uuid.New()
	pair, err := issuer.Mint(context.Background(), userID.String())
	require.NoError(t, err)

	for _, header := range []string{"Bearer " + pair.AccessToken, pair.AccessToken} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
}

func TestRequireAccessRejects(t *testing.T) {
	issuer := NewIssuer(testKeys(), "taskpro-test", 10*time.Minute, time.Hour)
	app := newProtectedApp(t, issuer)

	pair, err := issuer.Mint(context.Background(), uuid.New().String())
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"garbage", "Bearer nonsense"},
		{"refresh token instead of access", "Bearer " + pair.RefreshToken},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestRequireAccessRejectsNonUUIDSubject(t *testing.T) {
	issuer := NewIssuer(testKeys(), "taskpro-test", 10*time.Minute, time.Hour)
	app := newProtectedApp(t, issuer)

	pair, err := issuer.Mint(context.Background(), "not-a-uuid")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
