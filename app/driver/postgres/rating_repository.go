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

// RatingRepository implements port.RatingRepository for PostgreSQL
type RatingRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewRatingRepository creates a new PostgreSQL rating repository
func NewRatingRepository(db DatabaseIface, logger *slog.Logger) port.RatingRepository {
	return &RatingRepository{
		db:     db,
		logger: logger.With("component", "rating_repository"),
	}
}

// Upsert inserts a rating or replaces the existing (user, store) rating
func (r *RatingRepository) Upsert(ctx context.Context, rating *domain.Rating) (*domain.Rating, error) {
	query := `
		INSERT INTO ratings (id, user_id, store_id, value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, store_id) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at
		RETURNING id, user_id, store_id, value, created_at, updated_at`

	var stored domain.Rating
	err := r.db.QueryRow(ctx, query,
		rating.ID,
		rating.UserID,
		rating.StoreID,
		rating.Value,
		rating.CreatedAt,
		rating.UpdatedAt,
	).Scan(
		&stored.ID,
		&stored.UserID,
		&stored.StoreID,
		&stored.Value,
		&stored.CreatedAt,
		&stored.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("failed to upsert rating",
			"user_id", rating.UserID,
			"store_id", rating.StoreID,
			"error", err)
		return nil, fmt.Errorf("failed to upsert rating: %w", err)
	}

	return &stored, nil
}

// GetAggregate fetches one row of the store_avg_ratings view
func (r *RatingRepository) GetAggregate(ctx context.Context, storeID uuid.UUID) (*domain.StoreAggregate, error) {
	query := `SELECT store_id, avg_rating, rating_count FROM store_avg_ratings WHERE store_id = $1`

	var agg domain.StoreAggregate
	err := r.db.QueryRow(ctx, query, storeID).Scan(&agg.StoreID, &agg.AvgRating, &agg.RatingCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// No ratings yet: the view has no row for the store
			return &domain.StoreAggregate{StoreID: storeID}, nil
		}
		return nil, fmt.Errorf("failed to get store aggregate: %w", err)
	}

	return &agg, nil
}

// ListByStores returns all ratings across the given stores
func (r *RatingRepository) ListByStores(ctx context.Context, storeIDs []uuid.UUID) ([]*domain.Rating, error) {
	if len(storeIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, user_id, store_id, value, created_at, updated_at
		FROM ratings WHERE store_id = ANY($1)
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, storeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings by stores: %w", err)
	}
	defer rows.Close()

	return scanRatings(rows)
}

// ListByUser returns a user's ratings, newest first
func (r *RatingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Rating, error) {
	query := `
		SELECT id, user_id, store_id, value, created_at, updated_at
		FROM ratings WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings by user: %w", err)
	}
	defer rows.Close()

	return scanRatings(rows)
}

// Count returns the total number of ratings
func (r *RatingRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM ratings`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count ratings: %w", err)
	}
	return count, nil
}

func scanRatings(rows pgx.Rows) ([]*domain.Rating, error) {
	var ratings []*domain.Rating
	for rows.Next() {
		var rating domain.Rating
		err := rows.Scan(
			&rating.ID,
			&rating.UserID,
			&rating.StoreID,
			&rating.Value,
			&rating.CreatedAt,
			&rating.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rating row: %w", err)
		}
		ratings = append(ratings, &rating)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rating rows: %w", err)
	}

	return ratings, nil
}
