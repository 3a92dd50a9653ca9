package port

//go:generate mockgen -source=repository_port.go -destination=../mocks/mock_repository_port.go

import (
	"context"

	"store-rating-service/app/domain"

	"github.com/google/uuid"
)

// UserRepository defines profile-row data access. Profile rows share
// their primary key with the platform identity id.
type UserRepository interface {
	Create(ctx context.Context, identity *domain.Identity) error
	Upsert(ctx context.Context, identity *domain.Identity) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Identity, error)
	GetByEmail(ctx context.Context, email string) (*domain.Identity, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Identity, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

// StoreRepository defines store data access
type StoreRepository interface {
	Create(ctx context.Context, store *domain.Store) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Store, error)
	ListWithRatings(ctx context.Context, forUser *uuid.UUID) ([]*domain.StoreWithRating, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.StoreWithRating, error)
	Count(ctx context.Context) (int, error)
}

// RatingRepository defines rating data access. Upsert replaces an
// existing (user, store) rating; aggregates come from the
// store_avg_ratings view maintained by the database.
type RatingRepository interface {
	Upsert(ctx context.Context, rating *domain.Rating) (*domain.Rating, error)
	GetAggregate(ctx context.Context, storeID uuid.UUID) (*domain.StoreAggregate, error)
	ListByStores(ctx context.Context, storeIDs []uuid.UUID) ([]*domain.Rating, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Rating, error)
	Count(ctx context.Context) (int, error)
}
