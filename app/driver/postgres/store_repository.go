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

// StoreRepository implements port.StoreRepository for PostgreSQL.
// Aggregates come from the store_avg_ratings view maintained by the
// database, not computed here.
type StoreRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewStoreRepository creates a new PostgreSQL store repository
func NewStoreRepository(db DatabaseIface, logger *slog.Logger) port.StoreRepository {
	return &StoreRepository{
		db:     db,
		logger: logger.With("component", "store_repository"),
	}
}

// Create inserts a new store
func (r *StoreRepository) Create(ctx context.Context, store *domain.Store) error {
	query := `
		INSERT INTO stores (id, name, email, address, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		store.ID,
		store.Name,
		store.Email,
		store.Address,
		store.OwnerID,
		store.CreatedAt,
		store.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("failed to create store", "store_id", store.ID, "error", err)
		return fmt.Errorf("failed to create store: %w", err)
	}

	return nil
}

// GetByID fetches a store by id
func (r *StoreRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Store, error) {
	query := `
		SELECT id, name, email, address, owner_id, created_at, updated_at
		FROM stores WHERE id = $1`

	var store domain.Store
	err := r.db.QueryRow(ctx, query, id).Scan(
		&store.ID,
		&store.Name,
		&store.Email,
		&store.Address,
		&store.OwnerID,
		&store.CreatedAt,
		&store.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStoreNotFound
		}
		return nil, fmt.Errorf("failed to get store: %w", err)
	}

	return &store, nil
}

// ListWithRatings returns all stores joined with their aggregate rating
// row. When forUser is set, each row also carries that user's own
// rating of the store.
func (r *StoreRepository) ListWithRatings(ctx context.Context, forUser *uuid.UUID) ([]*domain.StoreWithRating, error) {
	query := `
		SELECT
			s.id, s.name, s.email, s.address, s.owner_id, s.created_at, s.updated_at,
			COALESCE(v.avg_rating, 0), COALESCE(v.rating_count, 0),
			ur.value
		FROM stores s
		LEFT JOIN store_avg_ratings v ON v.store_id = s.id
		LEFT JOIN ratings ur ON ur.store_id = s.id AND ur.user_id = $1
		ORDER BY s.name`

	rows, err := r.db.Query(ctx, query, forUser)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	defer rows.Close()

	return scanStoresWithRatings(rows)
}

// ListByOwner returns the stores an owner holds, with aggregates
func (r *StoreRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.StoreWithRating, error) {
	query := `
		SELECT
			s.id, s.name, s.email, s.address, s.owner_id, s.created_at, s.updated_at,
			COALESCE(v.avg_rating, 0), COALESCE(v.rating_count, 0),
			NULL::INTEGER
		FROM stores s
		LEFT JOIN store_avg_ratings v ON v.store_id = s.id
		WHERE s.owner_id = $1
		ORDER BY s.name`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores by owner: %w", err)
	}
	defer rows.Close()

	return scanStoresWithRatings(rows)
}

// Count returns the total number of stores
func (r *StoreRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM stores`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count stores: %w", err)
	}
	return count, nil
}

func scanStoresWithRatings(rows pgx.Rows) ([]*domain.StoreWithRating, error) {
	var stores []*domain.StoreWithRating
	for rows.Next() {
		var store domain.StoreWithRating
		err := rows.Scan(
			&store.ID,
			&store.Name,
			&store.Email,
			&store.Address,
			&store.OwnerID,
			&store.CreatedAt,
			&store.UpdatedAt,
			&store.AvgRating,
			&store.RatingCount,
			&store.UserRating,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan store row: %w", err)
		}
		stores = append(stores, &store)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating store rows: %w", err)
	}

	return stores, nil
}
