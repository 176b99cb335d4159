// Package middleware contains the echo middleware for the HTTP delivery.
package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"postboard/internal/delivery/http/response"
	"postboard/internal/domain/entity"
	"postboard/internal/usecase"
)

// KeyCurrentUser is the echo context key under which the resolved user is stored.
const KeyCurrentUser = "currentUser"

// AuthMiddleware resolves the bearer token on incoming requests to a user.
type AuthMiddleware struct {
	identity usecase.IdentityUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identity usecase.IdentityUsecase) *AuthMiddleware {
	return &AuthMiddleware{identity: identity}
}

// Authenticate validates the bearer token and stores the resolved user on the
// context. Every failure mode returns the same uniform unauthorized response.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Could not validate credentials")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Could not validate credentials")
		}

		user, err := m.identity.Resolve(c.Request().Context(), tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Could not validate credentials")
		}

		c.Set(KeyCurrentUser, user)

		return next(c)
	}
}

// CurrentUser extracts the authenticated user placed on the context by
// Authenticate. The boolean is false when the middleware did not run.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(KeyCurrentUser).(*entity.User)

	return user, ok
}
