package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"store-rating-service/app/domain"
	"store-rating-service/app/port"
	"store-rating-service/app/rest/middleware"
	apperrors "store-rating-service/app/utils/errors"
	"store-rating-service/app/utils/validator"
)

// UserHandler handles profile access and admin user management
type UserHandler struct {
	userUsecase port.UserUsecase
	validator   *validator.Validator
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUsecase port.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator.New(),
		logger:      logger,
	}
}

// CreateUserRequest is the admin user creation body. Unlike self
// sign-up, the role is explicit and required.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
	Name     string `json:"name" validate:"required,min=20,max=60"`
	Address  string `json:"address" validate:"max=400"`
	Role     string `json:"role" validate:"required,user_role"`
}

// Me returns the caller's own profile
func (h *UserHandler) Me(c echo.Context) error {
	ctx := c.Request().Context()

	identity := middleware.IdentityFrom(c)
	if identity == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "authentication required",
			Code:  string(apperrors.ErrCodeUnauthorized),
		})
	}

	// Re-read from the repository so the response reflects any profile
	// change since this request's identity was resolved.
	profile, err := h.userUsecase.GetProfile(ctx, identity.ID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, profile)
}

// List returns a page of user profiles. Admin only.
func (h *UserHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	users, err := h.userUsecase.ListUsers(ctx, limit, offset)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, users)
}

// Get returns one user profile by ID. Admin only.
func (h *UserHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid user ID",
			Code:  string(apperrors.ErrCodeInvalidInput),
		})
	}

	profile, err := h.userUsecase.GetProfile(ctx, id)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, profile)
}

// Create provisions a user with an explicit role. Admin only.
func (h *UserHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return respondBindError(c)
	}
	if err := h.validator.Validate(req); err != nil {
		return respondError(c, h.logger, err)
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid role",
			Code:  string(apperrors.ErrCodeInvalidInput),
		})
	}

	identity, err := h.userUsecase.CreateUserByAdmin(ctx, port.SignUpRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Address:  req.Address,
		Role:     role,
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}

	h.logger.Info("user created by admin", "user_id", identity.ID, "role", identity.Role)
	return c.JSON(http.StatusCreated, identity)
}

// Delete removes a user's profile and platform identity. Admin only.
func (h *UserHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid user ID",
			Code:  string(apperrors.ErrCodeInvalidInput),
		})
	}

	if err := h.userUsecase.DeleteUser(ctx, id); err != nil {
		return respondError(c, h.logger, err)
	}

	h.logger.Info("user deleted", "user_id", id)
	return c.JSON(http.StatusOK, SuccessResponse{Message: "user deleted"})
}

// Metrics returns the admin dashboard totals
func (h *UserHandler) Metrics(c echo.Context) error {
	ctx := c.Request().Context()

	metrics, err := h.userUsecase.DashboardMetrics(ctx)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, metrics)
}
