package usecase

import (
	"context"
	"errors"
	"testing"

	"store-rating-service/app/domain"
	mock_port "store-rating-service/app/mocks"
	"store-rating-service/app/port"
	"store-rating-service/app/utils/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type userFixture struct {
	usecase  *UserUseCase
	users    *mock_port.MockUserRepository
	stores   *mock_port.MockStoreRepository
	ratings  *mock_port.MockRatingRepository
	platform *mock_port.MockIdentityPlatform
}

func newUserFixture(t *testing.T) *userFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	users := mock_port.NewMockUserRepository(ctrl)
	stores := mock_port.NewMockStoreRepository(ctrl)
	ratings := mock_port.NewMockRatingRepository(ctrl)
	platform := mock_port.NewMockIdentityPlatform(ctrl)

	testLogger, err := logger.New("error")
	require.NoError(t, err)

	return &userFixture{
		usecase:  NewUserUseCase(users, stores, ratings, platform, testLogger),
		users:    users,
		stores:   stores,
		ratings:  ratings,
		platform: platform,
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	f := newUserFixture(t)
	id := uuid.New()

	f.users.EXPECT().
		GetByID(gomock.Any(), id).
		Return(nil, domain.ErrProfileNotFound)

	_, err := f.usecase.GetProfile(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestListUsers_ClampsPagination(t *testing.T) {
	f := newUserFixture(t)

	f.users.EXPECT().
		List(gomock.Any(), 50, 0).
		Return(nil, nil)

	_, err := f.usecase.ListUsers(context.Background(), -1, -5)
	assert.NoError(t, err)
}

func TestCreateUserByAdmin_RequiresExplicitRole(t *testing.T) {
	f := newUserFixture(t)

	_, err := f.usecase.CreateUserByAdmin(context.Background(), port.SignUpRequest{
		Email:    "new@example.com",
		Password: "Str0ng!pass",
		Name:     "Admin Created Account Holder",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateUserByAdmin_Provisions(t *testing.T) {
	f := newUserFixture(t)
	identityID := uuid.New()

	f.platform.EXPECT().
		CreateIdentity(gomock.Any(), gomock.Any()).
		Return(identityID, nil)
	f.users.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil)

	identity, err := f.usecase.CreateUserByAdmin(context.Background(), port.SignUpRequest{
		Email:    "owner@example.com",
		Password: "Str0ng!pass",
		Name:     "Admin Created Account Holder",
		Address:  "9 Admin Avenue",
		Role:     domain.RoleOwner,
	})
	require.NoError(t, err)
	assert.Equal(t, identityID, identity.ID)
	assert.Equal(t, domain.RoleOwner, identity.Role)
}

func TestCreateUserByAdmin_ProfileFailureCleansUp(t *testing.T) {
	f := newUserFixture(t)
	identityID := uuid.New()

	f.platform.EXPECT().
		CreateIdentity(gomock.Any(), gomock.Any()).
		Return(identityID, nil)
	f.users.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(errors.New("insert failed"))
	f.platform.EXPECT().
		DeleteIdentity(gomock.Any(), identityID).
		Return(nil)

	_, err := f.usecase.CreateUserByAdmin(context.Background(), port.SignUpRequest{
		Email:    "owner@example.com",
		Password: "Str0ng!pass",
		Name:     "Admin Created Account Holder",
		Role:     domain.RoleOwner,
	})
	require.Error(t, err)
}

func TestDeleteUser_RemovesBothHalves(t *testing.T) {
	f := newUserFixture(t)
	id := uuid.New()

	gomock.InOrder(
		f.users.EXPECT().Delete(gomock.Any(), id).Return(nil),
		f.platform.EXPECT().DeleteIdentity(gomock.Any(), id).Return(nil),
	)

	assert.NoError(t, f.usecase.DeleteUser(context.Background(), id))
}

func TestDeleteUser_PlatformFailureSurfaces(t *testing.T) {
	f := newUserFixture(t)
	id := uuid.New()

	f.users.EXPECT().Delete(gomock.Any(), id).Return(nil)
	f.platform.EXPECT().DeleteIdentity(gomock.Any(), id).Return(errors.New("unreachable"))

	err := f.usecase.DeleteUser(context.Background(), id)
	require.Error(t, err)

	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, domain.ErrCodePartialProvisioning, authErr.Code)
}

func TestDashboardMetrics(t *testing.T) {
	f := newUserFixture(t)

	f.users.EXPECT().Count(gomock.Any()).Return(12, nil)
	f.stores.EXPECT().Count(gomock.Any()).Return(4, nil)
	f.ratings.EXPECT().Count(gomock.Any()).Return(37, nil)

	metrics, err := f.usecase.DashboardMetrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, metrics.Users)
	assert.Equal(t, 4, metrics.Stores)
	assert.Equal(t, 37, metrics.Ratings)
}
