package domain

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
)

// Rating bounds enforced before any persistence attempt
const (
	MinRatingValue = 1
	MaxRatingValue = 5
)

// Store represents a rateable store
type Store struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Address   string     `json:"address"`
	OwnerID   *uuid.UUID `json:"owner_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewStore creates a new store with validation
func NewStore(name, email, address string, ownerID *uuid.UUID) (*Store, error) {
	if name == "" {
		return nil, fmt.Errorf("store name is required")
	}
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, fmt.Errorf("invalid email format: %w", err)
		}
	}

	now := time.Now()

	return &Store{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Address:   address,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// StoreWithRating is a store joined with its aggregate rating row and,
// when resolved for an authenticated caller, that caller's own rating.
type StoreWithRating struct {
	Store
	AvgRating   float64 `json:"avg_rating"`
	RatingCount int     `json:"rating_count"`
	UserRating  *int    `json:"user_rating,omitempty"`
}

// Rating represents a single user's 1-5 star rating of a store.
// A user has at most one rating per store; resubmission replaces it.
type Rating struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	StoreID   uuid.UUID `json:"store_id"`
	Value     int       `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewRating creates a rating with validation
func NewRating(userID, storeID uuid.UUID, value int) (*Rating, error) {
	if userID == (uuid.UUID{}) {
		return nil, fmt.Errorf("user ID is required")
	}
	if storeID == (uuid.UUID{}) {
		return nil, fmt.Errorf("store ID is required")
	}
	if err := ValidateRatingValue(value); err != nil {
		return nil, err
	}

	now := time.Now()

	return &Rating{
		ID:        uuid.New(),
		UserID:    userID,
		StoreID:   storeID,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ValidateRatingValue checks the 1-5 bound
func ValidateRatingValue(value int) error {
	if value < MinRatingValue || value > MaxRatingValue {
		return fmt.Errorf("%w: rating value must be between %d and %d",
			ErrInvalidRatingValue, MinRatingValue, MaxRatingValue)
	}
	return nil
}

// StoreAggregate mirrors one row of the store_avg_ratings view
type StoreAggregate struct {
	StoreID     uuid.UUID `json:"store_id"`
	AvgRating   float64   `json:"avg_rating"`
	RatingCount int       `json:"rating_count"`
}

// OwnerAnalytics summarizes ratings across the stores an owner holds
type OwnerAnalytics struct {
	Stores      []*StoreWithRating `json:"stores"`
	Ratings     []*Rating          `json:"ratings"`
	StoreCount  int                `json:"store_count"`
	RatingCount int                `json:"rating_count"`
	AvgRating   float64            `json:"avg_rating"`
}

// DashboardMetrics holds the admin dashboard totals
type DashboardMetrics struct {
	Users   int `json:"users"`
	Stores  int `json:"stores"`
	Ratings int `json:"ratings"`
}
