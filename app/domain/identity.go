package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role represents the role of an identity
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleOwner Role = "OWNER"
	RoleUser  Role = "USER"
)

// Home paths per role. A protected section redirects mismatched
// identities here instead of the login page.
const (
	HomePathAdmin = "/admin"
	HomePathOwner = "/owner"
	HomePathUser  = "/app"
	LoginPath     = "/login"
)

// IsValid returns true if the role is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleOwner, RoleUser:
		return true
	}
	return false
}

// HomePath returns the landing section for the role.
// Unknown roles fall back to the login page.
func (r Role) HomePath() string {
	switch r {
	case RoleAdmin:
		return HomePathAdmin
	case RoleOwner:
		return HomePathOwner
	case RoleUser:
		return HomePathUser
	default:
		return LoginPath
	}
}

// ParseRole parses a role string, accepting any casing
func ParseRole(s string) (Role, error) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !role.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return role, nil
}

// Identity represents the resolved authenticated user profile.
// It is created server-side during provisioning and is read-only on
// resolution paths; clients never mutate it locally.
type Identity struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewIdentity creates a new identity with validation.
// Role defaults to the least-privileged role when empty.
func NewIdentity(id uuid.UUID, email, name, address string, role Role) (*Identity, error) {
	if id == (uuid.UUID{}) {
		return nil, fmt.Errorf("identity ID is required")
	}

	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email format: %w", err)
	}

	if role == "" {
		role = RoleUser
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now()

	return &Identity{
		ID:        id,
		Name:      name,
		Email:     email,
		Address:   address,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ChangeRole changes the identity's role with validation
func (i *Identity) ChangeRole(role Role) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	i.Role = role
	i.UpdatedAt = time.Now()
	return nil
}

// UpdateProfile updates the mutable profile fields
func (i *Identity) UpdateProfile(name, address string) {
	i.Name = name
	i.Address = address
	i.UpdatedAt = time.Now()
}

// IsAdmin returns true if the identity has the admin role
func (i *Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// IsOwner returns true if the identity has the store-owner role
func (i *Identity) IsOwner() bool {
	return i.Role == RoleOwner
}
