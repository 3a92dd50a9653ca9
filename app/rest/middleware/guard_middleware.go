package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"store-rating-service/app/domain"
	"store-rating-service/app/guard"
)

// GuardMiddleware adapts the guard's pure decision core to Echo. Every
// request is re-evaluated from the identity the auth middleware
// resolved; no decision is terminal.
//
// Redirect decisions become JSON errors carrying the target section, so
// an API client can navigate the same way a rendered page would:
// unauthenticated callers are pointed at the login section, wrong-role
// callers at their own role's home, never at login.
type GuardMiddleware struct {
	logger *slog.Logger
}

// NewGuardMiddleware creates a new guard middleware
func NewGuardMiddleware(logger *slog.Logger) *GuardMiddleware {
	return &GuardMiddleware{logger: logger}
}

// Require gates the group behind a role requirement
func (m *GuardMiddleware) Require(requirement domain.RoleRequirement) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := IdentityFrom(c)

			// Resolution completed during this request, so the guard
			// never sees a pending state here.
			decision := guard.Evaluate(false, identity, requirement)

			switch decision.Outcome {
			case guard.OutcomeAllow:
				return next(c)

			case guard.OutcomeRedirect:
				if decision.State == guard.StateUnauthenticated {
					return c.JSON(http.StatusUnauthorized, map[string]interface{}{
						"error":    "authentication required",
						"code":     "UNAUTHORIZED",
						"redirect": decision.Target,
					})
				}

				m.logger.Info("role mismatch",
					"role", identity.Role,
					"redirect", decision.Target,
					"path", c.Request().URL.Path)
				return c.JSON(http.StatusForbidden, map[string]interface{}{
					"error":    "insufficient privileges",
					"code":     "FORBIDDEN",
					"redirect": decision.Target,
				})

			default:
				return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
					"error": "identity resolution pending",
					"code":  "RESOLUTION_PENDING",
				})
			}
		}
	}
}

// RequireAdmin gates the group behind the admin role
func (m *GuardMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return m.Require(domain.RequireRole(domain.RoleAdmin))
}

// RequireOwner gates the group behind the store-owner role
func (m *GuardMiddleware) RequireOwner() echo.MiddlewareFunc {
	return m.Require(domain.RequireRole(domain.RoleOwner))
}

// RequireAuthenticated gates the group behind any valid identity
func (m *GuardMiddleware) RequireAuthenticated() echo.MiddlewareFunc {
	return m.Require(domain.RequireAuthenticated())
}
