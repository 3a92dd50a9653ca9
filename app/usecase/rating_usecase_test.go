package usecase

import (
	"context"
	"testing"

	"store-rating-service/app/domain"
	mock_port "store-rating-service/app/mocks"
	"store-rating-service/app/utils/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type ratingFixture struct {
	usecase *RatingUseCase
	ratings *mock_port.MockRatingRepository
	stores  *mock_port.MockStoreRepository
}

func newRatingFixture(t *testing.T) *ratingFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	ratings := mock_port.NewMockRatingRepository(ctrl)
	stores := mock_port.NewMockStoreRepository(ctrl)

	testLogger, err := logger.New("error")
	require.NoError(t, err)

	return &ratingFixture{
		usecase: NewRatingUseCase(ratings, stores, testLogger),
		ratings: ratings,
		stores:  stores,
	}
}

func TestSubmitRating_Success(t *testing.T) {
	f := newRatingFixture(t)
	userID := uuid.New()
	storeID := uuid.New()

	f.stores.EXPECT().
		GetByID(gomock.Any(), storeID).
		Return(&domain.Store{ID: storeID, Name: "Corner Shop"}, nil)
	f.ratings.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rating *domain.Rating) (*domain.Rating, error) {
			assert.Equal(t, 4, rating.Value)
			return rating, nil
		})
	f.ratings.EXPECT().
		GetAggregate(gomock.Any(), storeID).
		Return(&domain.StoreAggregate{StoreID: storeID, AvgRating: 4, RatingCount: 1}, nil)

	rating, aggregate, err := f.usecase.SubmitRating(context.Background(), userID, storeID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, rating.Value)
	assert.Equal(t, 1, aggregate.RatingCount)
}

func TestSubmitRating_OutOfRangeRejectedBeforePersistence(t *testing.T) {
	f := newRatingFixture(t)

	// No repository expectations: values outside 1-5 must never reach
	// the database.
	for _, value := range []int{0, 6, -1, 100} {
		_, _, err := f.usecase.SubmitRating(context.Background(), uuid.New(), uuid.New(), value)
		assert.ErrorIs(t, err, domain.ErrInvalidRatingValue, "value %d", value)
	}
}

func TestSubmitRating_UnknownStore(t *testing.T) {
	f := newRatingFixture(t)
	storeID := uuid.New()

	f.stores.EXPECT().
		GetByID(gomock.Any(), storeID).
		Return(nil, domain.ErrStoreNotFound)

	_, _, err := f.usecase.SubmitRating(context.Background(), uuid.New(), storeID, 3)
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}

func TestListUserRatings(t *testing.T) {
	f := newRatingFixture(t)
	userID := uuid.New()

	rating, err := domain.NewRating(userID, uuid.New(), 5)
	require.NoError(t, err)

	f.ratings.EXPECT().
		ListByUser(gomock.Any(), userID).
		Return([]*domain.Rating{rating}, nil)

	got, err := f.usecase.ListUserRatings(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 5, got[0].Value)
}
