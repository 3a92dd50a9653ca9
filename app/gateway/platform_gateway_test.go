package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"store-rating-service/app/domain"
	mock_port "store-rating-service/app/mocks"
	"store-rating-service/app/port"
	"store-rating-service/app/utils/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestGateway(t *testing.T) (*PlatformGateway, *mock_port.MockPlatformClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mock_port.NewMockPlatformClient(ctrl)

	testLogger, err := logger.New("error")
	require.NoError(t, err)

	return NewPlatformGateway(client, testLogger), client
}

func TestPlatformGateway_CreateIdentity(t *testing.T) {
	gw, client := newTestGateway(t)
	identityID := uuid.New()

	req := port.CreateIdentityRequest{
		Email:    "owner@example.com",
		Password: "Str0ng!pass",
		Name:     "Gateway Test Account Owner",
		Role:     domain.RoleOwner,
	}

	client.EXPECT().
		CreateIdentity(gomock.Any(), req).
		Return(identityID, nil)

	got, err := gw.CreateIdentity(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, identityID, got)
}

func TestPlatformGateway_CreateIdentity_Exists(t *testing.T) {
	gw, client := newTestGateway(t)

	client.EXPECT().
		CreateIdentity(gomock.Any(), gomock.Any()).
		Return(uuid.Nil, domain.ErrIdentityExists)

	_, err := gw.CreateIdentity(context.Background(), port.CreateIdentityRequest{Email: "dup@example.com"})
	assert.ErrorIs(t, err, domain.ErrIdentityExists)
}

func TestPlatformGateway_PasswordLogin_InvalidCredentials(t *testing.T) {
	gw, client := newTestGateway(t)

	client.EXPECT().
		PasswordLogin(gomock.Any(), "user@example.com", "wrong").
		Return(nil, domain.ErrInvalidCredentials)

	_, err := gw.PasswordLogin(context.Background(), "user@example.com", "wrong")
	// The sentinel must survive the gateway so handlers can map it to 401
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestPlatformGateway_PasswordLogin(t *testing.T) {
	gw, client := newTestGateway(t)
	identityID := uuid.New()

	session := &domain.Session{
		Token:      "session-token-abc",
		IdentityID: identityID,
		Active:     true,
		ExpiresAt:  time.Now().Add(time.Hour),
	}

	client.EXPECT().
		PasswordLogin(gomock.Any(), "user@example.com", "Str0ng!pass").
		Return(session, nil)

	got, err := gw.PasswordLogin(context.Background(), "user@example.com", "Str0ng!pass")
	require.NoError(t, err)
	assert.Equal(t, identityID, got.IdentityID)
	assert.Equal(t, "session-token-abc", got.Token)
}

func TestPlatformGateway_SessionFromToken_Expired(t *testing.T) {
	gw, client := newTestGateway(t)

	client.EXPECT().
		SessionFromToken(gomock.Any(), "stale-token").
		Return(nil, domain.ErrSessionExpired)

	_, err := gw.SessionFromToken(context.Background(), "stale-token")
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestPlatformGateway_SessionFromToken_WrapsUnknownErrors(t *testing.T) {
	gw, client := newTestGateway(t)

	client.EXPECT().
		SessionFromToken(gomock.Any(), "token").
		Return(nil, errors.New("connection reset"))

	_, err := gw.SessionFromToken(context.Background(), "token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session check")
}

func TestPlatformGateway_RevokeSession(t *testing.T) {
	gw, client := newTestGateway(t)

	client.EXPECT().
		RevokeSession(gomock.Any(), "token").
		Return(nil)

	assert.NoError(t, gw.RevokeSession(context.Background(), "token"))
}
