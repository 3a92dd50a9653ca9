package domain

import "errors"

// Authentication and provisioning errors
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")

	// Resolution errors
	ErrProfileNotFound = errors.New("profile not found")
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")

	// Provisioning errors
	ErrIdentityExists      = errors.New("identity already exists")
	ErrPartialProvisioning = errors.New("partial provisioning")

	// Store and rating errors
	ErrStoreNotFound      = errors.New("store not found")
	ErrRatingNotFound     = errors.New("rating not found")
	ErrInvalidRatingValue = errors.New("invalid rating value")

	// Platform errors
	ErrPlatformUnavailable = errors.New("identity platform unavailable")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
)

// AuthError represents authentication-related errors with additional context
type AuthError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AuthError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}

// NewAuthError creates a new authentication error
func NewAuthError(code, message string, cause error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common auth error codes
const (
	ErrCodeInvalidCredentials  = "INVALID_CREDENTIALS"
	ErrCodeSessionExpired      = "SESSION_EXPIRED"
	ErrCodeUnauthorized        = "UNAUTHORIZED"
	ErrCodeForbidden           = "FORBIDDEN"
	ErrCodeProfileNotFound     = "PROFILE_NOT_FOUND"
	ErrCodePartialProvisioning = "PARTIAL_PROVISIONING"
	ErrCodePlatformError       = "PLATFORM_ERROR"
	ErrCodeInternal            = "INTERNAL_ERROR"
)
