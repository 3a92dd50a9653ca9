package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session is the platform-managed proof of authentication. The platform
// is the primary source of truth for identity resolution; at most one
// active session exists per client context and it references exactly one
// identity by id.
type Session struct {
	Token      string    `json:"-"`
	IdentityID uuid.UUID `json:"identity_id"`
	Active     bool      `json:"active"`
	ExpiresAt  time.Time `json:"expires_at"`
	IssuedAt   time.Time `json:"issued_at"`
}

// NewSession creates a session with validation
func NewSession(token string, identityID uuid.UUID, expiresAt time.Time) (*Session, error) {
	if token == "" {
		return nil, fmt.Errorf("session token is required")
	}
	if identityID == (uuid.UUID{}) {
		return nil, fmt.Errorf("identity ID is required")
	}

	return &Session{
		Token:      token,
		IdentityID: identityID,
		Active:     true,
		ExpiresAt:  expiresAt,
		IssuedAt:   time.Now(),
	}, nil
}

// IsExpired returns true if the session has expired
func (s *Session) IsExpired() bool {
	if s.ExpiresAt.IsZero() {
		return false
	}
	return time.Now().After(s.ExpiresAt)
}

// IsValid returns true if the session is active and not expired
func (s *Session) IsValid() bool {
	return s.Active && !s.IsExpired()
}

// RoleRequirement is a declarative role constraint attached to a
// protected section. The zero value means "any authenticated identity".
type RoleRequirement struct {
	Role Role
}

// RequireRole builds a requirement for a single role
func RequireRole(role Role) RoleRequirement {
	return RoleRequirement{Role: role}
}

// RequireAuthenticated builds a requirement satisfied by any identity
func RequireAuthenticated() RoleRequirement {
	return RoleRequirement{}
}

// Any returns true if the requirement accepts any authenticated identity
func (r RoleRequirement) Any() bool {
	return r.Role == ""
}

// SatisfiedBy returns true if the identity's role meets the requirement
func (r RoleRequirement) SatisfiedBy(identity *Identity) bool {
	if identity == nil {
		return false
	}
	if r.Any() {
		return identity.Role.IsValid()
	}
	return identity.Role == r.Role
}
