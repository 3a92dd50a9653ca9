package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"store-rating-service/app/domain"
	mock_port "store-rating-service/app/mocks"
	"store-rating-service/app/port"
	"store-rating-service/app/rest/middleware"
)

func TestMe_ReturnsFreshProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mock_port.NewMockUserUsecase(ctrl)
	handler := NewUserHandler(mockUsers, testLogger())

	identity := testIdentity(domain.RoleUser)
	mockUsers.EXPECT().GetProfile(gomock.Any(), identity.ID).Return(identity, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyIdentity, identity)

	require.NoError(t, handler.Me(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestMe_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewUserHandler(mock_port.NewMockUserUsecase(ctrl), testLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Me(c))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateUser_RequiresExplicitRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No CreateUserByAdmin expectation: missing role fails validation.
	mockUsers := mock_port.NewMockUserUsecase(ctrl)
	handler := NewUserHandler(mockUsers, testLogger())

	e := echo.New()
	req, rec := postJSON("/v1/admin/users",
		`{"email":"bob@example.com","password":"Secret!pass","name":"Robert Bobson Example Jr"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateUser_OwnerRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mock_port.NewMockUserUsecase(ctrl)
	handler := NewUserHandler(mockUsers, testLogger())

	identity := testIdentity(domain.RoleOwner)
	mockUsers.EXPECT().
		CreateUserByAdmin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req port.SignUpRequest) (*domain.Identity, error) {
			assert.Equal(t, domain.RoleOwner, req.Role)
			return identity, nil
		})

	e := echo.New()
	req, rec := postJSON("/v1/admin/users",
		`{"email":"bob@example.com","password":"Secret!pass","name":"Robert Bobson Example Jr","role":"OWNER"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateUser_PartialProvisioningSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mock_port.NewMockUserUsecase(ctrl)
	handler := NewUserHandler(mockUsers, testLogger())

	orphanID := uuid.New()
	provisioningErr := domain.NewAuthError(
		domain.ErrCodePartialProvisioning,
		"profile provisioning failed for platform identity "+orphanID.String(),
		assertAnError{})

	mockUsers.EXPECT().
		CreateUserByAdmin(gomock.Any(), gomock.Any()).
		Return(nil, provisioningErr)

	e := echo.New()
	req, rec := postJSON("/v1/admin/users",
		`{"email":"bob@example.com","password":"Secret!pass","name":"Robert Bobson Example Jr","role":"USER"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.ErrCodePartialProvisioning, resp.Code)
}

func TestDeleteUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mock_port.NewMockUserUsecase(ctrl)
	handler := NewUserHandler(mockUsers, testLogger())

	userID := uuid.New()
	mockUsers.EXPECT().DeleteUser(gomock.Any(), userID).Return(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/admin/users/:id")
	c.SetParamNames("id")
	c.SetParamValues(userID.String())

	require.NoError(t, handler.Delete(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteUser_BadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewUserHandler(mock_port.NewMockUserUsecase(ctrl), testLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/admin/users/:id")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, handler.Delete(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mock_port.NewMockUserUsecase(ctrl)
	handler := NewUserHandler(mockUsers, testLogger())

	mockUsers.EXPECT().
		DashboardMetrics(gomock.Any()).
		Return(&domain.DashboardMetrics{Users: 10, Stores: 4, Ratings: 31}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/metrics", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Metrics(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.DashboardMetrics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 10, resp.Users)
	assert.Equal(t, 31, resp.Ratings)
}

// assertAnError is a trivial error used as a provisioning cause
type assertAnError struct{}

func (assertAnError) Error() string { return "provisioning cause" }
