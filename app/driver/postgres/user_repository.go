package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"store-rating-service/app/domain"
	"store-rating-service/app/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserRepository implements port.UserRepository for PostgreSQL. Profile
// rows share their primary key with the platform identity id.
type UserRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db DatabaseIface, logger *slog.Logger) port.UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger.With("component", "user_repository"),
	}
}

const userColumns = `id, email, name, address, role, created_at, updated_at`

// Create inserts a new profile row
func (r *UserRepository) Create(ctx context.Context, identity *domain.Identity) error {
	query := `
		INSERT INTO users (id, email, name, address, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		identity.ID,
		identity.Email,
		identity.Name,
		identity.Address,
		string(identity.Role),
		identity.CreatedAt,
		identity.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("failed to create profile", "user_id", identity.ID, "error", err)
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

// Upsert inserts a profile row or replaces it on id conflict
func (r *UserRepository) Upsert(ctx context.Context, identity *domain.Identity) error {
	query := `
		INSERT INTO users (id, email, name, address, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			name = EXCLUDED.name,
			address = EXCLUDED.address,
			role = EXCLUDED.role,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.Exec(ctx, query,
		identity.ID,
		identity.Email,
		identity.Name,
		identity.Address,
		string(identity.Role),
		identity.CreatedAt,
		identity.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("failed to upsert profile", "user_id", identity.ID, "error", err)
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	return nil
}

// GetByID fetches a profile row by identity id
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Identity, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	identity, err := r.scanIdentity(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile by id: %w", err)
	}

	return identity, nil
}

// GetByEmail fetches a profile row by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	identity, err := r.scanIdentity(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile by email: %w", err)
	}

	return identity, nil
}

// List returns profile rows ordered by creation time
func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]*domain.Identity, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var identities []*domain.Identity
	for rows.Next() {
		identity, err := r.scanIdentity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile row: %w", err)
		}
		identities = append(identities, identity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profile rows: %w", err)
	}

	return identities, nil
}

// Delete removes a profile row
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrProfileNotFound
	}

	return nil
}

// Count returns the total number of profile rows
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count profiles: %w", err)
	}
	return count, nil
}

func (r *UserRepository) scanIdentity(row pgx.Row) (*domain.Identity, error) {
	var identity domain.Identity
	var role string

	err := row.Scan(
		&identity.ID,
		&identity.Email,
		&identity.Name,
		&identity.Address,
		&role,
		&identity.CreatedAt,
		&identity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	identity.Role = domain.Role(role)
	return &identity, nil
}
