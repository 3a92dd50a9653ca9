package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"store-rating-service/app/domain"
	"store-rating-service/app/port"

	"github.com/google/uuid"
)

// PlatformGateway implements port.IdentityPlatform.
// It acts as an anti-corruption layer between the domain and the hosted
// identity platform: domain errors pass through untouched, everything
// else gets wrapped with the failed operation.
type PlatformGateway struct {
	client port.PlatformClient
	logger *slog.Logger
}

// NewPlatformGateway creates a new PlatformGateway instance
func NewPlatformGateway(client port.PlatformClient, logger *slog.Logger) *PlatformGateway {
	return &PlatformGateway{
		client: client,
		logger: logger.With("component", "platform_gateway"),
	}
}

// CreateIdentity provisions a platform identity and returns its id
func (g *PlatformGateway) CreateIdentity(ctx context.Context, req port.CreateIdentityRequest) (uuid.UUID, error) {
	g.logger.Info("creating platform identity", "email", req.Email)

	identityID, err := g.client.CreateIdentity(ctx, req)
	if err != nil {
		g.logger.Error("failed to create platform identity", "email", req.Email, "error", err)
		return uuid.Nil, passthroughOrWrap(err, "create identity")
	}

	g.logger.Info("platform identity created", "identity_id", identityID)
	return identityID, nil
}

// DeleteIdentity removes a platform identity
func (g *PlatformGateway) DeleteIdentity(ctx context.Context, identityID uuid.UUID) error {
	g.logger.Info("deleting platform identity", "identity_id", identityID)

	if err := g.client.DeleteIdentity(ctx, identityID); err != nil {
		g.logger.Error("failed to delete platform identity", "identity_id", identityID, "error", err)
		return passthroughOrWrap(err, "delete identity")
	}

	return nil
}

// PasswordLogin authenticates against the platform
func (g *PlatformGateway) PasswordLogin(ctx context.Context, email, password string) (*domain.Session, error) {
	g.logger.Info("authenticating against platform", "email", email)

	session, err := g.client.PasswordLogin(ctx, email, password)
	if err != nil {
		// Credential failures are routine, not errors worth alerting on
		if errors.Is(err, domain.ErrInvalidCredentials) {
			g.logger.Info("authentication rejected", "email", email)
		} else {
			g.logger.Error("platform authentication failed", "email", email, "error", err)
		}
		return nil, passthroughOrWrap(err, "password login")
	}

	g.logger.Info("authentication succeeded", "identity_id", session.IdentityID)
	return session, nil
}

// SessionFromToken resolves a token to the session it names
func (g *PlatformGateway) SessionFromToken(ctx context.Context, token string) (*domain.Session, error) {
	session, err := g.client.SessionFromToken(ctx, token)
	if err != nil {
		return nil, passthroughOrWrap(err, "session check")
	}

	return session, nil
}

// RevokeSession invalidates the session behind the token
func (g *PlatformGateway) RevokeSession(ctx context.Context, token string) error {
	if err := g.client.RevokeSession(ctx, token); err != nil {
		g.logger.Warn("failed to revoke platform session", "error", err)
		return passthroughOrWrap(err, "revoke session")
	}

	g.logger.Info("platform session revoked")
	return nil
}

// passthroughOrWrap keeps domain sentinel errors intact so callers can
// branch on them, and wraps anything else with the operation name.
func passthroughOrWrap(err error, operation string) error {
	for _, sentinel := range []error{
		domain.ErrInvalidCredentials,
		domain.ErrSessionNotFound,
		domain.ErrSessionExpired,
		domain.ErrIdentityExists,
		domain.ErrPlatformUnavailable,
		domain.ErrForbidden,
	} {
		if errors.Is(err, sentinel) {
			return err
		}
	}

	var authErr *domain.AuthError
	if errors.As(err, &authErr) {
		return err
	}

	return fmt.Errorf("failed to %s: %w", operation, err)
}
