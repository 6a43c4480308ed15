// Package middleware contains the echo middleware for the HTTP delivery.
package middleware

import (
	"strings"

	"roster/internal/delivery/http/response"
	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/service"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys for the authenticated caller, set by Authenticate.
const (
	keyUserID = "userID"
	keyRole   = "role"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the caller's
// identity and role on the context. Missing, malformed, forged and expired
// tokens all short-circuit with 401 and the handler never runs.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), domainerrors.ErrUnauthenticated.Message())
		}

		c.Set(keyUserID, claims.UserID)
		c.Set(keyRole, claims.Role)

		return next(c)
	}
}

// RequireRole is a middleware factory that gates a route on an exact role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(keyRole).(entity.Role)
			if !ok {
				return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), "Permission denied: role information missing")
			}

			if role != requiredRole {
				return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

// CallerFromContext rebuilds the authenticated caller stored by Authenticate.
func CallerFromContext(c echo.Context) (usecase.Caller, bool) {
	userID, okID := c.Get(keyUserID).(uuid.UUID)
	role, okRole := c.Get(keyRole).(entity.Role)
	if !okID || !okRole {
		return usecase.Caller{}, false
	}

	return usecase.Caller{UserID: userID, Role: role}, true
}
