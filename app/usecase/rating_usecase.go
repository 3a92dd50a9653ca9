package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"store-rating-service/app/domain"
	"store-rating-service/app/port"

	"github.com/google/uuid"
)

// RatingUseCase implements rating submission. The value bound is
// checked before any persistence attempt, and the store must exist.
type RatingUseCase struct {
	ratings port.RatingRepository
	stores  port.StoreRepository
	logger  *slog.Logger
}

// NewRatingUseCase creates a new RatingUseCase instance
func NewRatingUseCase(ratings port.RatingRepository, stores port.StoreRepository, logger *slog.Logger) *RatingUseCase {
	return &RatingUseCase{
		ratings: ratings,
		stores:  stores,
		logger:  logger.With("component", "rating_usecase"),
	}
}

// SubmitRating stores or replaces the caller's rating of a store and
// returns the stored rating with the refreshed aggregate row.
func (uc *RatingUseCase) SubmitRating(ctx context.Context, userID, storeID uuid.UUID, value int) (*domain.Rating, *domain.StoreAggregate, error) {
	// Bound check comes first: an out-of-range value must never reach
	// the database.
	rating, err := domain.NewRating(userID, storeID, value)
	if err != nil {
		return nil, nil, err
	}

	if _, err := uc.stores.GetByID(ctx, storeID); err != nil {
		return nil, nil, err
	}

	stored, err := uc.ratings.Upsert(ctx, rating)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to store rating: %w", err)
	}

	aggregate, err := uc.ratings.GetAggregate(ctx, storeID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to refresh store aggregate: %w", err)
	}

	uc.logger.Info("rating submitted",
		"user_id", userID,
		"store_id", storeID,
		"value", value,
		"avg_rating", aggregate.AvgRating)

	return stored, aggregate, nil
}

// ListUserRatings returns the caller's ratings, newest first
func (uc *RatingUseCase) ListUserRatings(ctx context.Context, userID uuid.UUID) ([]*domain.Rating, error) {
	ratings, err := uc.ratings.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	return ratings, nil
}
