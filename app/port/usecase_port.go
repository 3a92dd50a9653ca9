package port

//go:generate mockgen -source=usecase_port.go -destination=../mocks/mock_usecase_port.go

import (
	"context"

	"store-rating-service/app/domain"

	"github.com/google/uuid"
)

// SignUpRequest carries a full provisioning request: the credential
// half goes to the platform, the profile half to the users table.
type SignUpRequest struct {
	Email    string
	Password string
	Name     string
	Address  string
	Role     domain.Role // defaults to USER when empty
}

// SignInResult is returned by AuthUsecase.Login for the caller to feed
// into the change notifier explicitly.
type SignInResult struct {
	Identity *domain.Identity
	Session  *domain.Session
}

// AuthUsecase defines the authentication business logic interface
type AuthUsecase interface {
	SignUp(ctx context.Context, req SignUpRequest) (*domain.Identity, error)
	Login(ctx context.Context, email, password string) (*SignInResult, error)
	Logout(ctx context.Context, token string) error
}

// SessionResolver produces the current identity (or nil) from the
// primary platform session with the fallback cache as secondary source.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) *domain.Identity
	OnPlatformAuthEvent(ctx context.Context, event domain.AuthEventType, token string)
	OnLocalAuthEvent(change domain.AuthChange)
	Loading() bool
	Current() *domain.Identity
}

// StoreUsecase defines store browsing and management logic
type StoreUsecase interface {
	ListStores(ctx context.Context, forUser *uuid.UUID) ([]*domain.StoreWithRating, error)
	CreateStore(ctx context.Context, name, email, address string, ownerID *uuid.UUID) (*domain.Store, error)
	OwnerAnalytics(ctx context.Context, ownerID uuid.UUID) (*domain.OwnerAnalytics, error)
}

// RatingUsecase defines rating submission logic
type RatingUsecase interface {
	SubmitRating(ctx context.Context, userID, storeID uuid.UUID, value int) (*domain.Rating, *domain.StoreAggregate, error)
	ListUserRatings(ctx context.Context, userID uuid.UUID) ([]*domain.Rating, error)
}

// UserUsecase defines profile and admin user management logic
type UserUsecase interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*domain.Identity, error)
	ListUsers(ctx context.Context, limit, offset int) ([]*domain.Identity, error)
	CreateUserByAdmin(ctx context.Context, req SignUpRequest) (*domain.Identity, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	DashboardMetrics(ctx context.Context) (*domain.DashboardMetrics, error)
}
