package guard

import (
	"testing"

	"store-rating-service/app/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityWithRole(t *testing.T, role domain.Role) *domain.Identity {
	t.Helper()
	identity, err := domain.NewIdentity(uuid.New(), "guard@example.com", "Guard Test Identity Name", "2 Guard Lane", role)
	require.NoError(t, err)
	return identity
}

func TestEvaluate_LoadingRendersNothing(t *testing.T) {
	decision := Evaluate(true, nil, domain.RequireRole(domain.RoleAdmin))

	assert.Equal(t, StateLoading, decision.State)
	assert.Equal(t, OutcomePending, decision.Outcome)
	assert.Empty(t, decision.Target)
}

func TestEvaluate_UnauthenticatedRedirectsToLogin(t *testing.T) {
	decision := Evaluate(false, nil, domain.RequireAuthenticated())

	assert.Equal(t, StateUnauthenticated, decision.State)
	assert.Equal(t, OutcomeRedirect, decision.Outcome)
	assert.Equal(t, domain.LoginPath, decision.Target)
}

func TestEvaluate_DecisionTable(t *testing.T) {
	tests := []struct {
		name        string
		role        domain.Role
		requirement domain.RoleRequirement
		wantState   State
		wantTarget  string
	}{
		{
			name:        "admin on admin section",
			role:        domain.RoleAdmin,
			requirement: domain.RequireRole(domain.RoleAdmin),
			wantState:   StateAuthorized,
		},
		{
			name:        "owner on owner section",
			role:        domain.RoleOwner,
			requirement: domain.RequireRole(domain.RoleOwner),
			wantState:   StateAuthorized,
		},
		{
			name:        "user on user section",
			role:        domain.RoleUser,
			requirement: domain.RequireRole(domain.RoleUser),
			wantState:   StateAuthorized,
		},
		{
			name:        "user on admin section goes to user home",
			role:        domain.RoleUser,
			requirement: domain.RequireRole(domain.RoleAdmin),
			wantState:   StateWrongRole,
			wantTarget:  "/app",
		},
		{
			name:        "owner on admin section goes to owner home",
			role:        domain.RoleOwner,
			requirement: domain.RequireRole(domain.RoleAdmin),
			wantState:   StateWrongRole,
			wantTarget:  "/owner",
		},
		{
			name:        "admin on user section goes to admin home",
			role:        domain.RoleAdmin,
			requirement: domain.RequireRole(domain.RoleUser),
			wantState:   StateWrongRole,
			wantTarget:  "/admin",
		},
		{
			name:        "owner on user section goes to owner home",
			role:        domain.RoleOwner,
			requirement: domain.RequireRole(domain.RoleUser),
			wantState:   StateWrongRole,
			wantTarget:  "/owner",
		},
		{
			name:        "admin on owner section goes to admin home",
			role:        domain.RoleAdmin,
			requirement: domain.RequireRole(domain.RoleOwner),
			wantState:   StateWrongRole,
			wantTarget:  "/admin",
		},
		{
			name:        "user on owner section goes to user home",
			role:        domain.RoleUser,
			requirement: domain.RequireRole(domain.RoleOwner),
			wantState:   StateWrongRole,
			wantTarget:  "/app",
		},
		{
			name:        "any authenticated requirement accepts user",
			role:        domain.RoleUser,
			requirement: domain.RequireAuthenticated(),
			wantState:   StateAuthorized,
		},
		{
			name:        "any authenticated requirement accepts admin",
			role:        domain.RoleAdmin,
			requirement: domain.RequireAuthenticated(),
			wantState:   StateAuthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity := identityWithRole(t, tt.role)

			decision := Evaluate(false, identity, tt.requirement)

			assert.Equal(t, tt.wantState, decision.State)
			if tt.wantState == StateAuthorized {
				assert.Equal(t, OutcomeAllow, decision.Outcome)
			} else {
				assert.Equal(t, OutcomeRedirect, decision.Outcome)
				assert.Equal(t, tt.wantTarget, decision.Target)
				// Wrong role never falls back to login
				assert.NotEqual(t, domain.LoginPath, decision.Target)
			}
		})
	}
}

func TestEvaluate_UnknownRoleTreatedAsUnauthenticated(t *testing.T) {
	identity := identityWithRole(t, domain.RoleUser)
	identity.Role = "SUPERVISOR"

	decision := Evaluate(false, identity, domain.RequireRole(domain.RoleAdmin))

	assert.Equal(t, StateUnauthenticated, decision.State)
	assert.Equal(t, domain.LoginPath, decision.Target)
}

func TestEvaluate_ReEvaluatesAfterSignOut(t *testing.T) {
	identity := identityWithRole(t, domain.RoleAdmin)
	requirement := domain.RequireRole(domain.RoleAdmin)

	authorized := Evaluate(false, identity, requirement)
	require.Equal(t, StateAuthorized, authorized.State)

	// Identity cleared while the protected section is open: the next
	// evaluation must transition again instead of sticking.
	after := Evaluate(false, nil, requirement)
	assert.Equal(t, StateUnauthenticated, after.State)
	assert.Equal(t, domain.LoginPath, after.Target)
}
