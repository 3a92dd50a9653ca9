package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"store-rating-service/app/domain"
	"store-rating-service/app/port"
)

// AuthUseCase implements sign-up, login and logout. Credentials live in
// the identity platform only; the local users table holds the profile
// half (name, address, role) keyed by the platform identity id.
type AuthUseCase struct {
	platform port.IdentityPlatform
	users    port.UserRepository
	cache    port.FallbackCache
	logger   *slog.Logger
}

// NewAuthUseCase creates a new AuthUseCase instance
func NewAuthUseCase(
	platform port.IdentityPlatform,
	users port.UserRepository,
	cache port.FallbackCache,
	logger *slog.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		platform: platform,
		users:    users,
		cache:    cache,
		logger:   logger.With("component", "auth_usecase"),
	}
}

// SignUp provisions the platform identity first, then the profile row.
// Either half failing fails the whole operation. When the profile half
// fails, the already-created platform identity is deleted so no orphan
// survives; if that cleanup also fails the error names the orphan.
func (uc *AuthUseCase) SignUp(ctx context.Context, req port.SignUpRequest) (*domain.Identity, error) {
	role := req.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: invalid role %q", domain.ErrInvalidInput, req.Role)
	}

	uc.logger.Info("provisioning new account", "email", req.Email, "role", role)

	identityID, err := uc.platform.CreateIdentity(ctx, port.CreateIdentityRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     role,
	})
	if err != nil {
		return nil, err
	}

	identity, err := domain.NewIdentity(identityID, req.Email, req.Name, req.Address, role)
	if err != nil {
		if cleanupErr := uc.platform.DeleteIdentity(ctx, identityID); cleanupErr != nil {
			uc.logger.Error("orphaned platform identity could not be cleaned up",
				"identity_id", identityID, "error", cleanupErr)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if err := uc.users.Create(ctx, identity); err != nil {
		uc.logger.Error("profile creation failed after platform identity was created",
			"identity_id", identityID, "error", err)

		if cleanupErr := uc.platform.DeleteIdentity(ctx, identityID); cleanupErr != nil {
			uc.logger.Error("orphaned platform identity could not be cleaned up",
				"identity_id", identityID, "error", cleanupErr)
			return nil, domain.NewAuthError(domain.ErrCodePartialProvisioning,
				fmt.Sprintf("profile creation failed and platform identity %s could not be removed", identityID),
				errors.Join(err, cleanupErr))
		}

		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	uc.logger.Info("account provisioned", "identity_id", identityID, "role", role)
	return identity, nil
}

// Login authenticates against the platform and loads the profile row.
// All credential failures collapse into ErrInvalidCredentials so the
// response never reveals whether the email exists.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*port.SignInResult, error) {
	session, err := uc.platform.PasswordLogin(ctx, email, password)
	if err != nil {
		return nil, err
	}

	identity, err := uc.users.GetByID(ctx, session.IdentityID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			uc.logger.Warn("login succeeded but profile row is missing",
				"identity_id", session.IdentityID)
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load profile after login: %w", err)
	}

	uc.logger.Info("login completed", "identity_id", identity.ID, "role", identity.Role)

	return &port.SignInResult{
		Identity: identity,
		Session:  session,
	}, nil
}

// Logout clears the fallback cache unconditionally, then revokes the
// platform session. Cache clearing is not gated on the revocation
// succeeding: a network failure must not leave a cached identity behind.
func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	if err := uc.cache.Clear(); err != nil {
		uc.logger.Warn("failed to clear fallback cache on logout", "error", err)
	}

	if token == "" {
		return nil
	}

	if err := uc.platform.RevokeSession(ctx, token); err != nil {
		// A session the platform no longer knows is already logged out
		if errors.Is(err, domain.ErrSessionNotFound) || errors.Is(err, domain.ErrSessionExpired) {
			return nil
		}
		return err
	}

	return nil
}
