package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"store-rating-service/app/domain"
	"store-rating-service/app/port"

	"github.com/google/uuid"
)

// UserUseCase implements profile reads and admin user management
type UserUseCase struct {
	users    port.UserRepository
	stores   port.StoreRepository
	ratings  port.RatingRepository
	platform port.IdentityPlatform
	logger   *slog.Logger
}

// NewUserUseCase creates a new UserUseCase instance
func NewUserUseCase(
	users port.UserRepository,
	stores port.StoreRepository,
	ratings port.RatingRepository,
	platform port.IdentityPlatform,
	logger *slog.Logger,
) *UserUseCase {
	return &UserUseCase{
		users:    users,
		stores:   stores,
		ratings:  ratings,
		platform: platform,
		logger:   logger.With("component", "user_usecase"),
	}
}

// GetProfile fetches a profile row by identity id
func (uc *UserUseCase) GetProfile(ctx context.Context, id uuid.UUID) (*domain.Identity, error) {
	return uc.users.GetByID(ctx, id)
}

// ListUsers returns profile rows for the admin user list
func (uc *UserUseCase) ListUsers(ctx context.Context, limit, offset int) ([]*domain.Identity, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.users.List(ctx, limit, offset)
}

// CreateUserByAdmin provisions an account like sign-up but with an
// explicit role chosen by the admin. The same dual-provisioning rules
// apply: either half failing fails the whole operation and the
// platform identity never outlives a failed profile insert silently.
func (uc *UserUseCase) CreateUserByAdmin(ctx context.Context, req port.SignUpRequest) (*domain.Identity, error) {
	if req.Role == "" {
		return nil, fmt.Errorf("%w: role is required for admin-created accounts", domain.ErrInvalidInput)
	}
	if !req.Role.IsValid() {
		return nil, fmt.Errorf("%w: invalid role %q", domain.ErrInvalidInput, req.Role)
	}

	uc.logger.Info("admin provisioning account", "email", req.Email, "role", req.Role)

	identityID, err := uc.platform.CreateIdentity(ctx, port.CreateIdentityRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		return nil, err
	}

	identity, err := domain.NewIdentity(identityID, req.Email, req.Name, req.Address, req.Role)
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
				err)
		}

		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return identity, nil
}

// DeleteUser removes the profile row and the platform identity
func (uc *UserUseCase) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := uc.users.Delete(ctx, id); err != nil {
		return err
	}

	if err := uc.platform.DeleteIdentity(ctx, id); err != nil {
		uc.logger.Error("profile deleted but platform identity removal failed",
			"identity_id", id, "error", err)
		return domain.NewAuthError(domain.ErrCodePartialProvisioning,
			fmt.Sprintf("profile removed but platform identity %s remains", id), err)
	}

	uc.logger.Info("user deleted", "identity_id", id)
	return nil
}

// DashboardMetrics returns the admin dashboard totals
func (uc *UserUseCase) DashboardMetrics(ctx context.Context) (*domain.DashboardMetrics, error) {
	users, err := uc.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	stores, err := uc.stores.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count stores: %w", err)
	}

	ratings, err := uc.ratings.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count ratings: %w", err)
	}

	return &domain.DashboardMetrics{
		Users:   users,
		Stores:  stores,
		Ratings: ratings,
	}, nil
}
