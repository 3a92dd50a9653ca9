package postgres

import (
	"context"
	"testing"
	"time"

	"store-rating-service/app/domain"
	"store-rating-service/app/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestStoreRepository(t *testing.T) (*StoreRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("error")
	require.NoError(t, err)

	repo := NewStoreRepository(mockDB, testLogger).(*StoreRepository)
	return repo, mockDB
}

func createTestStore(t *testing.T, ownerID *uuid.UUID) *domain.Store {
	t.Helper()

	store, err := domain.NewStore("Corner Shop", "shop@example.com", "2 High St", ownerID)
	require.NoError(t, err)
	return store
}

func TestStoreRepository_Create(t *testing.T) {
	repo, mockDB := createTestStoreRepository(t)
	defer mockDB.Close()

	ownerID := uuid.New()
	store := createTestStore(t, &ownerID)

	mockDB.ExpectExec("INSERT INTO stores").
		WithArgs(store.ID, store.Name, store.Email, store.Address,
			store.OwnerID, store.CreatedAt, store.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), store)
	assert.NoError(t, err)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestStoreRepository_GetByID(t *testing.T) {
	repo, mockDB := createTestStoreRepository(t)
	defer mockDB.Close()

	storeID := uuid.New()
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "name", "email", "address", "owner_id", "created_at", "updated_at"}).
		AddRow(storeID, "Corner Shop", "shop@example.com", "2 High St", (*uuid.UUID)(nil), now, now)

	mockDB.ExpectQuery("SELECT id, name, email, address, owner_id, created_at, updated_at").
		WithArgs(storeID).
		WillReturnRows(rows)

	store, err := repo.GetByID(context.Background(), storeID)
	require.NoError(t, err)
	assert.Equal(t, storeID, store.ID)
	assert.Equal(t, "Corner Shop", store.Name)
	assert.Nil(t, store.OwnerID)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestStoreRepository_GetByID_NotFound(t *testing.T) {
	repo, mockDB := createTestStoreRepository(t)
	defer mockDB.Close()

	storeID := uuid.New()

	mockDB.ExpectQuery("SELECT id, name, email, address, owner_id, created_at, updated_at").
		WithArgs(storeID).
		WillReturnError(pgx.ErrNoRows)

	store, err := repo.GetByID(context.Background(), storeID)
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
	assert.Nil(t, store)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestStoreRepository_ListWithRatings(t *testing.T) {
	repo, mockDB := createTestStoreRepository(t)
	defer mockDB.Close()

	userID := uuid.New()
	storeID := uuid.New()
	now := time.Now()
	three := 3

	columns := []string{"id", "name", "email", "address", "owner_id", "created_at", "updated_at",
		"avg_rating", "rating_count", "value"}
	rows := pgxmock.NewRows(columns).
		AddRow(storeID, "Corner Shop", "", "", (*uuid.UUID)(nil), now, now, 4.25, 8, &three).
		AddRow(uuid.New(), "Other Shop", "", "", (*uuid.UUID)(nil), now, now, 0.0, 0, (*int)(nil))

	mockDB.ExpectQuery("FROM stores s").
		WithArgs(&userID).
		WillReturnRows(rows)

	stores, err := repo.ListWithRatings(context.Background(), &userID)
	require.NoError(t, err)
	require.Len(t, stores, 2)

	assert.Equal(t, 4.25, stores[0].AvgRating)
	assert.Equal(t, 8, stores[0].RatingCount)
	require.NotNil(t, stores[0].UserRating)
	assert.Equal(t, 3, *stores[0].UserRating)

	// Never-rated store shows zero aggregate and no caller rating.
	assert.Equal(t, 0.0, stores[1].AvgRating)
	assert.Equal(t, 0, stores[1].RatingCount)
	assert.Nil(t, stores[1].UserRating)

	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestStoreRepository_ListByOwner(t *testing.T) {
	repo, mockDB := createTestStoreRepository(t)
	defer mockDB.Close()

	ownerID := uuid.New()
	storeID := uuid.New()
	now := time.Now()

	columns := []string{"id", "name", "email", "address", "owner_id", "created_at", "updated_at",
		"avg_rating", "rating_count", "value"}
	rows := pgxmock.NewRows(columns).
		AddRow(storeID, "Owner Shop", "", "", &ownerID, now, now, 3.5, 2, (*int)(nil))

	mockDB.ExpectQuery("WHERE s.owner_id").
		WithArgs(ownerID).
		WillReturnRows(rows)

	stores, err := repo.ListByOwner(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, storeID, stores[0].ID)
	assert.Equal(t, 3.5, stores[0].AvgRating)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestStoreRepository_Count(t *testing.T) {
	repo, mockDB := createTestStoreRepository(t)
	defer mockDB.Close()

	mockDB.ExpectQuery("SELECT COUNT").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, count)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
