package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"store-rating-service/app/domain"
	"store-rating-service/app/port"

	"github.com/google/uuid"
)

// StoreUseCase implements store browsing, creation and owner analytics
type StoreUseCase struct {
	stores  port.StoreRepository
	ratings port.RatingRepository
	logger  *slog.Logger
}

// NewStoreUseCase creates a new StoreUseCase instance
func NewStoreUseCase(stores port.StoreRepository, ratings port.RatingRepository, logger *slog.Logger) *StoreUseCase {
	return &StoreUseCase{
		stores:  stores,
		ratings: ratings,
		logger:  logger.With("component", "store_usecase"),
	}
}

// ListStores returns all stores with their aggregate rating. For an
// authenticated caller, each row also carries that caller's own rating.
func (uc *StoreUseCase) ListStores(ctx context.Context, forUser *uuid.UUID) ([]*domain.StoreWithRating, error) {
	stores, err := uc.stores.ListWithRatings(ctx, forUser)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	return stores, nil
}

// CreateStore registers a new store, optionally bound to an owner
func (uc *StoreUseCase) CreateStore(ctx context.Context, name, email, address string, ownerID *uuid.UUID) (*domain.Store, error) {
	store, err := domain.NewStore(name, email, address, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if err := uc.stores.Create(ctx, store); err != nil {
		return nil, err
	}

	uc.logger.Info("store created", "store_id", store.ID, "name", store.Name)
	return store, nil
}

// OwnerAnalytics summarizes the ratings across the stores an owner
// holds: the stores themselves, every rating against them, and totals.
func (uc *StoreUseCase) OwnerAnalytics(ctx context.Context, ownerID uuid.UUID) (*domain.OwnerAnalytics, error) {
	stores, err := uc.stores.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list owner stores: %w", err)
	}

	storeIDs := make([]uuid.UUID, 0, len(stores))
	for _, store := range stores {
		storeIDs = append(storeIDs, store.ID)
	}

	ratings, err := uc.ratings.ListByStores(ctx, storeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list owner ratings: %w", err)
	}

	analytics := &domain.OwnerAnalytics{
		Stores:      stores,
		Ratings:     ratings,
		StoreCount:  len(stores),
		RatingCount: len(ratings),
	}

	if len(ratings) > 0 {
		var sum int
		for _, rating := range ratings {
			sum += rating.Value
		}
		analytics.AvgRating = float64(sum) / float64(len(ratings))
	}

	return analytics, nil
}
