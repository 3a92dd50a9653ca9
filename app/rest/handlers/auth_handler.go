package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"store-rating-service/app/domain"
	"store-rating-service/app/notify"
	"store-rating-service/app/port"
	"store-rating-service/app/rest/middleware"
	apperrors "store-rating-service/app/utils/errors"
	"store-rating-service/app/utils/validator"
)

// AuthHandler handles sign-up, login, logout and session introspection.
// Sign-in and sign-out outcomes are fed into the change notifier
// explicitly; nothing here dispatches through an ambient side-channel.
type AuthHandler struct {
	authUsecase port.AuthUsecase
	notifier    *notify.Notifier
	validator   *validator.Validator
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase port.AuthUsecase, notifier *notify.Notifier, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		notifier:    notifier,
		validator:   validator.New(),
		logger:      logger,
	}
}

// SignUpRequest is the self-service registration body. Role is
// optional and defaults to the normal user role.
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
	Name     string `json:"name" validate:"required,min=20,max=60"`
	Address  string `json:"address" validate:"max=400"`
	Role     string `json:"role" validate:"omitempty,user_role"`
}

// LoginRequest is the password login body
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the session token and the resolved identity
type LoginResponse struct {
	SessionToken string           `json:"session_token"`
	ExpiresAt    string           `json:"expires_at,omitempty"`
	Identity     *domain.Identity `json:"identity"`
}

// SessionResponse reports the caller's resolved identity
type SessionResponse struct {
	Authenticated bool             `json:"authenticated"`
	Identity      *domain.Identity `json:"identity,omitempty"`
}

// SignUp provisions a new user: platform identity first, profile row
// second.
func (h *AuthHandler) SignUp(c echo.Context) error {
	ctx := c.Request().Context()

	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		return respondBindError(c)
	}
	if err := h.validator.Validate(req); err != nil {
		return respondError(c, h.logger, err)
	}

	identity, err := h.authUsecase.SignUp(ctx, port.SignUpRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Address:  req.Address,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		h.logger.Warn("sign-up failed", "email", req.Email, "error", err)
		return respondError(c, h.logger, err)
	}

	h.logger.Info("user signed up", "user_id", identity.ID, "role", identity.Role)
	return c.JSON(http.StatusCreated, identity)
}

// Login authenticates against the platform and broadcasts the signed-in
// transition.
func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return respondBindError(c)
	}
	if err := h.validator.Validate(req); err != nil {
		return respondError(c, h.logger, err)
	}

	result, err := h.authUsecase.Login(ctx, req.Email, req.Password)
	if err != nil {
		// A valid credential with no profile row is still a failed
		// login from the caller's point of view. Keep the response
		// indistinguishable from a wrong password.
		if errors.Is(err, domain.ErrProfileNotFound) {
			h.logger.Warn("login resolved to orphaned platform identity", "email", req.Email)
			return c.JSON(http.StatusUnauthorized, ErrorResponse{
				Error: "invalid credentials",
				Code:  string(apperrors.ErrCodeInvalidCredentials),
			})
		}
		h.logger.Info("login failed", "error", err)
		return respondError(c, h.logger, err)
	}

	h.notifier.EmitSignedIn(result.Identity)

	h.logger.Info("user logged in", "user_id", result.Identity.ID, "role", result.Identity.Role)

	resp := LoginResponse{
		SessionToken: result.Session.Token,
		Identity:     result.Identity,
	}
	if !result.Session.ExpiresAt.IsZero() {
		resp.ExpiresAt = result.Session.ExpiresAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return c.JSON(http.StatusOK, resp)
}

// Logout revokes the platform session and broadcasts the signed-out
// transition. Local state is cleared even when revocation fails.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	token := middleware.SessionTokenFrom(c)

	err := h.authUsecase.Logout(ctx, token)

	// The signed-out transition is not gated on revocation succeeding:
	// observers must drop the identity regardless.
	h.notifier.EmitSignedOut()

	if err != nil {
		h.logger.Error("session revocation failed", "error", err)
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "logged out"})
}

// Session reports the identity the resolver produced for this request
func (h *AuthHandler) Session(c echo.Context) error {
	identity := middleware.IdentityFrom(c)
	if identity == nil {
		return c.JSON(http.StatusUnauthorized, SessionResponse{Authenticated: false})
	}

	return c.JSON(http.StatusOK, SessionResponse{
		Authenticated: true,
		Identity:      identity,
	})
}
