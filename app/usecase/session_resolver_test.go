package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"store-rating-service/app/domain"
	mock_port "store-rating-service/app/mocks"
	"store-rating-service/app/utils/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type resolverFixture struct {
	resolver *SessionResolverUseCase
	platform *mock_port.MockIdentityPlatform
	users    *mock_port.MockUserRepository
	cache    *mock_port.MockFallbackCache
}

func newResolverFixture(t *testing.T) *resolverFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	platform := mock_port.NewMockIdentityPlatform(ctrl)
	users := mock_port.NewMockUserRepository(ctrl)
	cache := mock_port.NewMockFallbackCache(ctrl)

	testLogger, err := logger.New("error")
	require.NoError(t, err)

	return &resolverFixture{
		resolver: NewSessionResolver(platform, users, cache, testLogger),
		platform: platform,
		users:    users,
		cache:    cache,
	}
}

func resolverIdentity(t *testing.T, role domain.Role) *domain.Identity {
	t.Helper()

	identity, err := domain.NewIdentity(
		uuid.New(),
		"resolver-test@example.com",
		"Resolver Test Account Holder",
		"1 Resolution Road",
		role,
	)
	require.NoError(t, err)
	return identity
}

func validSession(identityID uuid.UUID) *domain.Session {
	return &domain.Session{
		Token:      "token-1",
		IdentityID: identityID,
		Active:     true,
		ExpiresAt:  time.Now().Add(time.Hour),
	}
}

func TestResolve_PrimaryWinsAndClearsFallback(t *testing.T) {
	f := newResolverFixture(t)
	identity := resolverIdentity(t, domain.RoleUser)

	f.platform.EXPECT().
		SessionFromToken(gomock.Any(), "token-1").
		Return(validSession(identity.ID), nil)
	f.users.EXPECT().
		GetByID(gomock.Any(), identity.ID).
		Return(identity, nil)
	// A successful primary resolution must delete the fallback copy so
	// the two sources are never trusted simultaneously.
	f.cache.EXPECT().Clear().Return(nil)

	got := f.resolver.Resolve(context.Background(), "token-1")
	require.NotNil(t, got)
	assert.Equal(t, identity.ID, got.ID)
	assert.False(t, f.resolver.Loading())
	assert.Equal(t, got, f.resolver.Current())
}

func TestResolve_NoTokenFallsBackToCache(t *testing.T) {
	f := newResolverFixture(t)
	identity := resolverIdentity(t, domain.RoleOwner)

	payload, err := json.Marshal(identity)
	require.NoError(t, err)

	f.cache.EXPECT().Load().Return(payload, true, nil)

	got := f.resolver.Resolve(context.Background(), "")
	require.NotNil(t, got)
	assert.Equal(t, identity.ID, got.ID)
	assert.Equal(t, domain.RoleOwner, got.Role)
}

func TestResolve_ExpiredSessionFallsBackToCache(t *testing.T) {
	f := newResolverFixture(t)
	identity := resolverIdentity(t, domain.RoleUser)

	payload, err := json.Marshal(identity)
	require.NoError(t, err)

	f.platform.EXPECT().
		SessionFromToken(gomock.Any(), "stale").
		Return(nil, domain.ErrSessionExpired)
	f.cache.EXPECT().Load().Return(payload, true, nil)

	got := f.resolver.Resolve(context.Background(), "stale")
	require.NotNil(t, got)
	assert.Equal(t, identity.ID, got.ID)
}

func TestResolve_CorruptCacheDeletedAndNil(t *testing.T) {
	f := newResolverFixture(t)

	f.cache.EXPECT().Load().Return([]byte("{not json"), true, nil)
	f.cache.EXPECT().Clear().Return(nil)

	got := f.resolver.Resolve(context.Background(), "")
	assert.Nil(t, got)
	assert.False(t, f.resolver.Loading())
}

func TestResolve_CacheEntryWithUnknownRoleDeleted(t *testing.T) {
	f := newResolverFixture(t)

	payload := []byte(`{"id":"` + uuid.NewString() + `","email":"x@example.com","role":"SUPERVISOR"}`)
	f.cache.EXPECT().Load().Return(payload, true, nil)
	f.cache.EXPECT().Clear().Return(nil)

	got := f.resolver.Resolve(context.Background(), "")
	assert.Nil(t, got)
}

func TestResolve_ProfileMissingTreatedAsUnauthenticated(t *testing.T) {
	f := newResolverFixture(t)
	identityID := uuid.New()

	f.platform.EXPECT().
		SessionFromToken(gomock.Any(), "token-1").
		Return(validSession(identityID), nil)
	f.users.EXPECT().
		GetByID(gomock.Any(), identityID).
		Return(nil, domain.ErrProfileNotFound)
	f.cache.EXPECT().Load().Return(nil, false, nil)

	got := f.resolver.Resolve(context.Background(), "token-1")
	assert.Nil(t, got)
}

func TestResolve_Idempotent(t *testing.T) {
	f := newResolverFixture(t)
	identity := resolverIdentity(t, domain.RoleUser)

	f.platform.EXPECT().
		SessionFromToken(gomock.Any(), "token-1").
		Return(validSession(identity.ID), nil).
		Times(2)
	f.users.EXPECT().
		GetByID(gomock.Any(), identity.ID).
		Return(identity, nil).
		Times(2)
	f.cache.EXPECT().Clear().Return(nil).Times(2)

	first := f.resolver.Resolve(context.Background(), "token-1")
	second := f.resolver.Resolve(context.Background(), "token-1")
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, second, f.resolver.Current())
}

func TestOnPlatformAuthEvent_SignedOutClearsEverything(t *testing.T) {
	f := newResolverFixture(t)
	identity := resolverIdentity(t, domain.RoleAdmin)

	f.cache.EXPECT().Store(gomock.Any()).Return(nil)
	f.resolver.OnLocalAuthEvent(domain.SignedIn(identity))
	require.NotNil(t, f.resolver.Current())

	f.cache.EXPECT().Clear().Return(nil)
	f.resolver.OnPlatformAuthEvent(context.Background(), domain.AuthEventSignedOut, "token-1")

	// The nil identity must be observable immediately, before any
	// downstream guard decision runs.
	assert.Nil(t, f.resolver.Current())
	assert.False(t, f.resolver.Loading())
}

func TestOnPlatformAuthEvent_AbsentSessionTreatedAsSignOut(t *testing.T) {
	f := newResolverFixture(t)

	f.cache.EXPECT().Clear().Return(nil)
	f.resolver.OnPlatformAuthEvent(context.Background(), domain.AuthEventSignedIn, "")

	assert.Nil(t, f.resolver.Current())
	assert.False(t, f.resolver.Loading())
}

func TestOnPlatformAuthEvent_SignedInReResolves(t *testing.T) {
	f := newResolverFixture(t)
	identity := resolverIdentity(t, domain.RoleUser)

	f.platform.EXPECT().
		SessionFromToken(gomock.Any(), "token-1").
		Return(validSession(identity.ID), nil)
	f.users.EXPECT().
		GetByID(gomock.Any(), identity.ID).
		Return(identity, nil)
	f.cache.EXPECT().Clear().Return(nil)

	f.resolver.OnPlatformAuthEvent(context.Background(), domain.AuthEventSignedIn, "token-1")
	require.NotNil(t, f.resolver.Current())
	assert.Equal(t, identity.ID, f.resolver.Current().ID)
}

func TestOnLocalAuthEvent_SignedInSetsDirectlyAndSnapshots(t *testing.T) {
	f := newResolverFixture(t)
	identity := resolverIdentity(t, domain.RoleOwner)

	var stored []byte
	f.cache.EXPECT().Store(gomock.Any()).DoAndReturn(func(payload []byte) error {
		stored = payload
		return nil
	})

	f.resolver.OnLocalAuthEvent(domain.SignedIn(identity))

	// Identity taken at face value, no platform or repository call
	assert.Equal(t, identity, f.resolver.Current())
	assert.False(t, f.resolver.Loading())

	var snapshot domain.Identity
	require.NoError(t, json.Unmarshal(stored, &snapshot))
	assert.Equal(t, identity.ID, snapshot.ID)
}

func TestOnLocalAuthEvent_SignedOut(t *testing.T) {
	f := newResolverFixture(t)
	identity := resolverIdentity(t, domain.RoleUser)

	f.cache.EXPECT().Store(gomock.Any()).Return(nil)
	f.resolver.OnLocalAuthEvent(domain.SignedIn(identity))

	f.resolver.OnLocalAuthEvent(domain.SignedOut())
	assert.Nil(t, f.resolver.Current())
}

func TestOnLocalAuthEvent_SignedInWithoutIdentityIgnored(t *testing.T) {
	f := newResolverFixture(t)

	f.resolver.OnLocalAuthEvent(domain.AuthChange{Event: domain.AuthEventSignedIn})
	assert.Nil(t, f.resolver.Current())
	// First resolution has not happened, loading stays up
	assert.True(t, f.resolver.Loading())
}

func TestLoading_StartsTrueDropsAfterFirstResolution(t *testing.T) {
	f := newResolverFixture(t)
	assert.True(t, f.resolver.Loading())

	f.cache.EXPECT().Load().Return(nil, false, nil)
	f.resolver.Resolve(context.Background(), "")

	assert.False(t, f.resolver.Loading())
}
