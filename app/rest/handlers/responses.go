package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"store-rating-service/app/domain"
	apperrors "store-rating-service/app/utils/errors"
	"store-rating-service/app/utils/validator"
)

// ErrorResponse is the uniform error body
type ErrorResponse struct {
	Error   string      `json:"error"`
	Code    string      `json:"code"`
	Details interface{} `json:"details,omitempty"`
}

// SuccessResponse is the uniform success body for operations without a
// resource payload
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// respondError maps domain and validation errors onto HTTP responses.
// Credential failures stay generic on purpose: the body never reveals
// whether the email exists or the password was wrong.
func respondError(c echo.Context, logger *slog.Logger, err error) error {
	var valErr *validator.ValidationError
	if errors.As(err, &valErr) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Code:    string(apperrors.ErrCodeValidationFailed),
			Details: valErr.Errors,
		})
	}

	var authErr *domain.AuthError
	if errors.As(err, &authErr) && authErr.Code == domain.ErrCodePartialProvisioning {
		logger.Error("partial provisioning", "error", err)
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "account provisioning incomplete",
			Code:    domain.ErrCodePartialProvisioning,
			Details: authErr.Message,
		})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "invalid credentials",
			Code:  string(apperrors.ErrCodeInvalidCredentials),
		})

	case errors.Is(err, domain.ErrSessionExpired),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "authentication required",
			Code:  string(apperrors.ErrCodeUnauthorized),
		})

	case errors.Is(err, domain.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{
			Error: "access denied",
			Code:  string(apperrors.ErrCodeForbidden),
		})

	case errors.Is(err, domain.ErrProfileNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "profile not found",
			Code:  string(apperrors.ErrCodeProfileNotFound),
		})

	case errors.Is(err, domain.ErrStoreNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "store not found",
			Code:  string(apperrors.ErrCodeStoreNotFound),
		})

	case errors.Is(err, domain.ErrIdentityExists):
		return c.JSON(http.StatusConflict, ErrorResponse{
			Error: "user already exists",
			Code:  string(apperrors.ErrCodeUserExists),
		})

	case errors.Is(err, domain.ErrInvalidRatingValue):
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid rating value",
			Code:    string(apperrors.ErrCodeInvalidRating),
			Details: err.Error(),
		})

	case errors.Is(err, domain.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid input",
			Code:    string(apperrors.ErrCodeInvalidInput),
			Details: err.Error(),
		})

	case errors.Is(err, domain.ErrPlatformUnavailable):
		logger.Error("identity platform unavailable", "error", err)
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error: "identity platform unavailable",
			Code:  string(apperrors.ErrCodePlatformError),
		})
	}

	if appErr, ok := apperrors.AsAppError(err); ok {
		logger.Error("request failed", "code", appErr.Code, "error", err)
		return c.JSON(appErr.StatusCode, ErrorResponse{
			Error:   appErr.Message,
			Code:    string(appErr.Code),
			Details: appErr.Details,
		})
	}

	logger.Error("request failed", "error", err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error: "internal server error",
		Code:  string(apperrors.ErrCodeInternalError),
	})
}

// respondBindError reports a body that could not be parsed
func respondBindError(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "invalid request format",
		Code:    string(apperrors.ErrCodeBadRequest),
		Details: "request body could not be parsed as JSON",
	})
}
