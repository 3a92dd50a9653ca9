package port

//go:generate mockgen -source=platform_port.go -destination=../mocks/mock_platform_port.go

import (
	"context"

	"store-rating-service/app/domain"

	"github.com/google/uuid"
)

// CreateIdentityRequest carries the credential half of provisioning.
// The profile half (name, address, role) lives in the users table and
// is written through UserRepository.
type CreateIdentityRequest struct {
	Email    string
	Password string
	Name     string
	Role     domain.Role
}

// PlatformClient defines the driver-level surface of the hosted
// identity platform. Implemented by the Kratos adapter.
type PlatformClient interface {
	CreateIdentity(ctx context.Context, req CreateIdentityRequest) (uuid.UUID, error)
	DeleteIdentity(ctx context.Context, identityID uuid.UUID) error
	PasswordLogin(ctx context.Context, email, password string) (*domain.Session, error)
	SessionFromToken(ctx context.Context, token string) (*domain.Session, error)
	RevokeSession(ctx context.Context, token string) error
	HealthCheck(ctx context.Context) error
}

// IdentityPlatform defines the platform surface the usecases and the
// session resolver depend on. The gateway implements it as an
// anti-corruption layer over PlatformClient, mapping platform failures
// to domain errors.
type IdentityPlatform interface {
	CreateIdentity(ctx context.Context, req CreateIdentityRequest) (uuid.UUID, error)
	DeleteIdentity(ctx context.Context, identityID uuid.UUID) error
	PasswordLogin(ctx context.Context, email, password string) (*domain.Session, error)
	SessionFromToken(ctx context.Context, token string) (*domain.Session, error)
	RevokeSession(ctx context.Context, token string) error
}
