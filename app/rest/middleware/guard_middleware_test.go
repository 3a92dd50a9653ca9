package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"store-rating-service/app/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func guardIdentity(t *testing.T, role domain.Role) *domain.Identity {
	t.Helper()
	identity, err := domain.NewIdentity(uuid.New(), "guard@example.com", "Guard", "", role)
	require.NoError(t, err)
	return identity
}

func runGuarded(t *testing.T, mw echo.MiddlewareFunc, identity *domain.Identity) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/metrics", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity != nil {
		c.Set(ContextKeyIdentity, identity)
	}

	handler := mw(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(c))
	return rec
}

func TestGuard_AllowsMatchingRole(t *testing.T) {
	guard := NewGuardMiddleware(testLogger())
	rec := runGuarded(t, guard.RequireAdmin(), guardIdentity(t, domain.RoleAdmin))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestGuard_AnonymousRedirectsToLogin(t *testing.T) {
	guard := NewGuardMiddleware(testLogger())
	rec := runGuarded(t, guard.RequireAdmin(), nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.LoginPath, resp["redirect"])
}

func TestGuard_WrongRoleRedirectsToOwnHomeNotLogin(t *testing.T) {
	tests := []struct {
		name     string
		role     domain.Role
		expected string
	}{
		{"normal user sent to app home", domain.RoleUser, domain.HomePathUser},
		{"owner sent to owner home", domain.RoleOwner, domain.HomePathOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard := NewGuardMiddleware(testLogger())
			rec := runGuarded(t, guard.RequireAdmin(), guardIdentity(t, tt.role))

			require.Equal(t, http.StatusForbidden, rec.Code)

			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expected, resp["redirect"])
			assert.NotEqual(t, domain.LoginPath, resp["redirect"])
		})
	}
}

func TestGuard_AdminBlockedFromOwnerSection(t *testing.T) {
	guard := NewGuardMiddleware(testLogger())
	rec := runGuarded(t, guard.RequireOwner(), guardIdentity(t, domain.RoleAdmin))

	require.Equal(t, http.StatusForbidden, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.HomePathAdmin, resp["redirect"])
}

func TestGuard_AnyAuthenticatedAcceptsEveryRole(t *testing.T) {
	guard := NewGuardMiddleware(testLogger())

	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleOwner, domain.RoleUser} {
		rec := runGuarded(t, guard.RequireAuthenticated(), guardIdentity(t, role))
		assert.Equal(t, http.StatusOK, rec.Code, "role %s", role)
	}

	rec := runGuarded(t, guard.RequireAuthenticated(), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
