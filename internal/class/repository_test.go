package class

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func setupClassMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func classRows(booked, capacity int) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "name", "description", "image", "trainer_name", "trainer_email",
		"price_cents", "currency", "max_capacity", "booked_count", "difficulty",
		"category", "active", "created_at", "updated_at",
	}).AddRow(1, "Power Yoga", "desc", "", "Jane", "jane@example.com",
		4999, "usd", capacity, booked, "beginner", "yoga", true, now, now)
}

func TestGetByID(t *testing.T) {
	repo, mock, close := setupClassMock(t)
	defer close()

	mock.ExpectQuery("SELECT (.+) FROM classes WHERE id = \\$1").
		WithArgs(1).
		WillReturnRows(classRows(3, 10))

	class, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Power Yoga", class.Name)
	require.Equal(t, 3, class.BookedCount)
	require.Equal(t, 10, class.MaxCapacity)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, close := setupClassMock(t)
	defer close()

	mock.ExpectQuery("SELECT (.+) FROM classes WHERE id = \\$1").
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	class, err := repo.GetByID(context.Background(), 99)
	require.ErrorIs(t, err, ErrClassNotFound)
	require.Nil(t, class)
}

func TestIncrementBooked_Guarded(t *testing.T) {
	repo, mock, close := setupClassMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE classes")).
		WithArgs(1).
		WillReturnRows(classRows(4, 10))

	class, err := repo.IncrementBooked(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 4, class.BookedCount)
}

func TestIncrementBooked_Full(t *testing.T) {
	repo, mock, close := setupClassMock(t)
	defer close()

	// No row matches when booked_count has reached max_capacity.
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE classes")).
		WithArgs(1).
		WillReturnError(sql.ErrNoRows)

	class, err := repo.IncrementBooked(context.Background(), 1)
	require.ErrorIs(t, err, ErrClassFull)
	require.Nil(t, class)
}

func TestUpdate(t *testing.T) {
	repo, mock, close := setupClassMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE classes")).
		WithArgs("Power Yoga", "desc", "", int64(4999), 10, "beginner", "yoga", 1).
		WillReturnRows(classRows(3, 10))

	class, err := repo.Update(context.Background(), 1, UpdateClassRequest{
		Name:        "Power Yoga",
		Description: "desc",
		PriceCents:  4999,
		MaxCapacity: 10,
		Difficulty:  "beginner",
		Category:    "yoga",
	})
	require.NoError(t, err)
	require.Equal(t, 10, class.MaxCapacity)
}

func TestUpdate_CapacityBelowBookedCount(t *testing.T) {
	repo, mock, close := setupClassMock(t)
	defer close()

	// Shrinking max_capacity under booked_count violates the table's
	// check constraint; the violation maps to a caller-facing error
	// instead of leaking a raw pq error.
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE classes")).
		WithArgs("Power Yoga", "", "", int64(4999), 2, "beginner", "yoga", 1).
		WillReturnError(&pq.Error{Code: "23514", Constraint: "classes_capacity_check"})

	class, err := repo.Update(context.Background(), 1, UpdateClassRequest{
		Name:        "Power Yoga",
		PriceCents:  4999,
		MaxCapacity: 2,
		Difficulty:  "beginner",
		Category:    "yoga",
	})
	require.ErrorIs(t, err, ErrCapacityBelowBooked)
	require.Nil(t, class)
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, close := setupClassMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE classes")).
		WithArgs("Power Yoga", "", "", int64(4999), 10, "beginner", "yoga", 99).
		WillReturnError(sql.ErrNoRows)

	class, err := repo.Update(context.Background(), 99, UpdateClassRequest{
		Name:        "Power Yoga",
		PriceCents:  4999,
		MaxCapacity: 10,
		Difficulty:  "beginner",
		Category:    "yoga",
	})
	require.ErrorIs(t, err, ErrClassNotFound)
	require.Nil(t, class)
}

func TestList_FiltersAndSort(t *testing.T) {
	repo, mock, close := setupClassMock(t)
	defer close()

	mock.ExpectQuery("SELECT (.+) FROM classes WHERE active = TRUE AND category = \\$1 AND difficulty = \\$2 ORDER BY price_cents ASC LIMIT \\$3 OFFSET \\$4").
		WithArgs("yoga", "beginner", 20, 0).
		WillReturnRows(classRows(3, 10))

	classes, err := repo.List(context.Background(), ListFilter{
		ActiveOnly: true,
		Category:   "yoga",
		Difficulty: "beginner",
		SortBy:     "price_asc",
		Limit:      20,
	})
	require.NoError(t, err)
	require.Len(t, classes, 1)
}

func TestDeactivate(t *testing.T) {
	repo, mock, close := setupClassMock(t)
	defer close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE classes SET active = FALSE")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Deactivate(context.Background(), 1)
	require.NoError(t, err)
}

func TestDeactivate_NotFound(t *testing.T) {
	repo, mock, close := setupClassMock(t)
	defer close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE classes SET active = FALSE")).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Deactivate(context.Background(), 99)
	require.ErrorIs(t, err, ErrClassNotFound)
}
