package kratos

import (
	"fmt"
	"net/http"
	"strings"

	"store-rating-service/app/domain"

	kratosclient "github.com/ory/kratos-client-go"
)

// transformPlatformError maps Kratos API failures onto domain errors.
// Credential failures collapse into ErrInvalidCredentials regardless of
// whether the account exists, so the response never leaks which half of
// the pair was wrong.
func (a *PlatformAdapter) transformPlatformError(err error, httpResp *http.Response, operation string) error {
	if kratosErr, ok := err.(*kratosclient.GenericOpenAPIError); ok {
		if classified := classifyErrorBody(string(kratosErr.Body()), operation); classified != nil {
			return classified
		}
	}

	if httpResp != nil {
		return transformHTTPStatus(httpResp.StatusCode, operation, err)
	}

	// No response at all: the platform is unreachable
	return fmt.Errorf("%w: %s: %v", domain.ErrPlatformUnavailable, operation, err)
}

// transformHTTPStatus maps an HTTP status to a domain error, biased by
// the operation that produced it.
func transformHTTPStatus(statusCode int, operation string, originalErr error) error {
	switch statusCode {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		if operation == "login_flow_submit" {
			return domain.ErrInvalidCredentials
		}
		return domain.NewAuthError(domain.ErrCodeInternal,
			fmt.Sprintf("platform rejected %s request", operation), originalErr)

	case http.StatusUnauthorized:
		if operation == "session_check" {
			return domain.ErrSessionExpired
		}
		return domain.ErrInvalidCredentials

	case http.StatusForbidden:
		return domain.ErrForbidden

	case http.StatusNotFound:
		if operation == "session_check" || operation == "revoke_session" {
			return domain.ErrSessionNotFound
		}
		return domain.NewAuthError(domain.ErrCodeInternal,
			fmt.Sprintf("platform resource not found during %s", operation), originalErr)

	case http.StatusConflict:
		return domain.ErrIdentityExists

	case http.StatusGone:
		// Expired self-service flow; the caller simply retries the login
		return domain.ErrInvalidCredentials

	case http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %s returned %d", domain.ErrPlatformUnavailable, operation, statusCode)

	default:
		return domain.NewAuthError(domain.ErrCodeInternal,
			fmt.Sprintf("platform %s failed with status %d", operation, statusCode), originalErr)
	}
}

// classifyErrorBody inspects the error body for the handful of cases a
// status code alone cannot distinguish. Returns nil when the body adds
// nothing over the status.
func classifyErrorBody(body, operation string) error {
	bodyLower := strings.ToLower(body)

	if containsAny(bodyLower, []string{"already exists", "already registered", "duplicate"}) {
		return domain.ErrIdentityExists
	}

	if containsAny(bodyLower, []string{"invalid credentials", "wrong password", "credentials are invalid", "login failed"}) {
		return domain.ErrInvalidCredentials
	}

	if operation == "session_check" &&
		containsAny(bodyLower, []string{"session not found", "invalid session", "no active session"}) {
		return domain.ErrSessionNotFound
	}

	if containsAny(bodyLower, []string{"session expired", "session has expired"}) {
		return domain.ErrSessionExpired
	}

	return nil
}

// containsAny checks if the text contains any of the given substrings
func containsAny(text string, substrings []string) bool {
	for _, substring := range substrings {
		if strings.Contains(text, substring) {
			return true
		}
	}
	return false
}

// getHTTPStatus returns HTTP status from response for logging
func getHTTPStatus(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}
