package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"roster/config"
	"roster/internal/domain/entity"
	"roster/internal/domain/service"
	"roster/internal/infra/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTokenService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return tokenService
}

// expiredToken signs a token with the shared secret but a past expiry.
func expiredToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()

	claims := &service.Claims{
		UserID: userID,
		Role:   entity.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	return signed
}

func invokeAuthenticate(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := NewAuthMiddleware(newTokenService(t)).Authenticate(func(c echo.Context) error {
		reached = true

		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	return rec, c, reached
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	t.Run("valid token reaches the handler with the caller set", func(t *testing.T) {
		t.Parallel()

		tokenService := newTokenService(t)
		userID := uuid.New()
		token, err := tokenService.Generate(userID, entity.RoleAdmin)
		require.NoError(t, err)

		_, c, reached := invokeAuthenticate(t, "Bearer "+token)
		assert.True(t, reached)

		caller, ok := CallerFromContext(c)
		require.True(t, ok)
		assert.Equal(t, userID, caller.UserID)
		assert.Equal(t, entity.RoleAdmin, caller.Role)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		t.Parallel()

		rec, _, reached := invokeAuthenticate(t, "")
		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-bearer scheme is rejected", func(t *testing.T) {
		t.Parallel()

		rec, _, reached := invokeAuthenticate(t, "Basic abc123")
		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		t.Parallel()

		rec, _, reached := invokeAuthenticate(t, "Bearer not.a.token")
		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		t.Parallel()

		rec, _, reached := invokeAuthenticate(t, "Bearer "+expiredToken(t, uuid.New()))
		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	invoke := func(t *testing.T, role any, required entity.Role) (*httptest.ResponseRecorder, bool) {
		t.Helper()

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if role != nil {
			c.Set(keyRole, role)
		}

		reached := false
		handler := NewAuthMiddleware(newTokenService(t)).RequireRole(required)(func(c echo.Context) error {
			reached = true

			return c.NoContent(http.StatusOK)
		})
		require.NoError(t, handler(c))

		return rec, reached
	}

	t.Run("matching role passes", func(t *testing.T) {
		t.Parallel()

		rec, reached := invoke(t, entity.RoleAdmin, entity.RoleAdmin)
		assert.True(t, reached)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("mismatching role is forbidden", func(t *testing.T) {
		t.Parallel()

		rec, reached := invoke(t, entity.RoleUser, entity.RoleAdmin)
		assert.False(t, reached)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing role information is forbidden", func(t *testing.T) {
		t.Parallel()

		rec, reached := invoke(t, nil, entity.RoleAdmin)
		assert.False(t, reached)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestCallerFromContext(t *testing.T) {
	t.Parallel()

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := CallerFromContext(c)
	assert.False(t, ok)
}
