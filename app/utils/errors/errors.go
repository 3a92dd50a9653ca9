package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode represents specific error types
type ErrorCode string

const (
	// Authentication and authorization errors
	ErrCodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden          ErrorCode = "FORBIDDEN"
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeSessionExpired     ErrorCode = "SESSION_EXPIRED"
	ErrCodeSessionNotFound    ErrorCode = "SESSION_NOT_FOUND"

	// Provisioning errors
	ErrCodeProfileNotFound     ErrorCode = "PROFILE_NOT_FOUND"
	ErrCodeUserExists          ErrorCode = "USER_EXISTS"
	ErrCodePartialProvisioning ErrorCode = "PARTIAL_PROVISIONING"

	// Store and rating errors
	ErrCodeStoreNotFound ErrorCode = "STORE_NOT_FOUND"
	ErrCodeInvalidRating ErrorCode = "INVALID_RATING"

	// Validation errors
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidInput     ErrorCode = "INVALID_INPUT"

	// System errors
	ErrCodeInternalError  ErrorCode = "INTERNAL_ERROR"
	ErrCodeDatabaseError  ErrorCode = "DATABASE_ERROR"
	ErrCodePlatformError  ErrorCode = "PLATFORM_ERROR"
	ErrCodeConfigError    ErrorCode = "CONFIG_ERROR"

	// Rate limiting
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"

	// Generic errors
	ErrCodeBadRequest ErrorCode = "BAD_REQUEST"
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"
	ErrCodeConflict   ErrorCode = "CONFLICT"
)

// AppError represents an application error with additional context
type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetails adds details to the error
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: getHTTPStatusCode(code),
	}
}

// Newf creates a new AppError with formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:       code,
		Message:    fmt.Sprintf(format, args...),
		StatusCode: getHTTPStatusCode(code),
	}
}

// Wrap wraps an existing error with AppError
func Wrap(code ErrorCode, message string, cause error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: getHTTPStatusCode(code),
		Cause:      cause,
	}
}

// AsAppError converts an error to AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// GetHTTPStatusCode gets the HTTP status code for an error
func GetHTTPStatusCode(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// getHTTPStatusCode maps error codes to HTTP status codes
func getHTTPStatusCode(code ErrorCode) int {
	switch code {
	case ErrCodeUnauthorized, ErrCodeInvalidCredentials, ErrCodeSessionExpired, ErrCodeSessionNotFound:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeProfileNotFound, ErrCodeStoreNotFound, ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUserExists, ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeValidationFailed, ErrCodeInvalidInput, ErrCodeInvalidRating, ErrCodeBadRequest, ErrCodePartialProvisioning:
		return http.StatusBadRequest
	case ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case ErrCodePlatformError:
		return http.StatusServiceUnavailable
	case ErrCodeInternalError, ErrCodeDatabaseError, ErrCodeConfigError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Predefined common errors
var (
	ErrUnauthorized       = New(ErrCodeUnauthorized, "authentication required")
	ErrForbidden          = New(ErrCodeForbidden, "access denied")
	ErrInvalidCredentials = New(ErrCodeInvalidCredentials, "invalid credentials")
	ErrProfileNotFound    = New(ErrCodeProfileNotFound, "profile not found")
	ErrUserExists         = New(ErrCodeUserExists, "user already exists")
	ErrStoreNotFound      = New(ErrCodeStoreNotFound, "store not found")
	ErrValidationFailed   = New(ErrCodeValidationFailed, "validation failed")
	ErrInternalError      = New(ErrCodeInternalError, "internal server error")
	ErrPlatformError      = New(ErrCodePlatformError, "identity platform error")
	ErrRateLimitExceeded  = New(ErrCodeRateLimitExceeded, "rate limit exceeded")
)

// NewNotFound creates a not found error with context
func NewNotFound(resource string) *AppError {
	return Newf(ErrCodeNotFound, "%s not found", resource)
}

// NewValidationError creates a validation error with details
func NewValidationError(details string) *AppError {
	return New(ErrCodeValidationFailed, "validation failed").WithDetails(details)
}

// NewPartialProvisioning creates a partial provisioning error naming
// the orphaned platform identity
func NewPartialProvisioning(identityID string, cause error) *AppError {
	return Wrap(ErrCodePartialProvisioning,
		fmt.Sprintf("profile provisioning failed for platform identity %s", identityID),
		cause)
}

// NewDatabaseError creates a database error with cause
func NewDatabaseError(cause error) *AppError {
	return Wrap(ErrCodeDatabaseError, "database operation failed", cause)
}

// NewPlatformError creates an identity platform error with cause
func NewPlatformError(cause error) *AppError {
	return Wrap(ErrCodePlatformError, "identity platform error", cause)
}
