package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"store-rating-service/app/domain"
	"store-rating-service/app/port"
)

// Context keys set by the auth middleware
const (
	ContextKeyIdentity     = "identity"
	ContextKeySessionToken = "session_token"
)

// AuthMiddleware feeds each request's session token through the
// resolver and stores the outcome on the request context. Resolution
// never fails a request by itself; gating is the guard's job.
type AuthMiddleware struct {
	resolver port.SessionResolver
	logger   *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(resolver port.SessionResolver, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		resolver: resolver,
		logger:   logger,
	}
}

// Resolve runs identity resolution for every request, authenticated or
// not. Handlers downstream read the identity (possibly nil) from the
// context.
func (m *AuthMiddleware) Resolve() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := m.extractSessionToken(c)
			c.Set(ContextKeySessionToken, token)

			identity := m.resolver.Resolve(c.Request().Context(), token)
			if identity != nil {
				c.Set(ContextKeyIdentity, identity)
			}

			return next(c)
		}
	}
}

// RequireAuth rejects requests that did not resolve to an identity
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if IdentityFrom(c) == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}

// extractSessionToken pulls the session token from the Authorization
// bearer header or the X-Session-Token header.
func (m *AuthMiddleware) extractSessionToken(c echo.Context) string {
	auth := c.Request().Header.Get("Authorization")
	if auth != "" {
		if strings.HasPrefix(auth, "Bearer ") {
			return strings.TrimPrefix(auth, "Bearer ")
		}
		return auth
	}

	return c.Request().Header.Get("X-Session-Token")
}

// IdentityFrom returns the resolved identity for the request, or nil
func IdentityFrom(c echo.Context) *domain.Identity {
	identity, _ := c.Get(ContextKeyIdentity).(*domain.Identity)
	return identity
}

// SessionTokenFrom returns the session token for the request, possibly empty
func SessionTokenFrom(c echo.Context) string {
	token, _ := c.Get(ContextKeySessionToken).(string)
	return token
}
