package newsletter

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupSubscriberMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func subscriberRows(active bool) *sqlmock.Rows {
	now := time.Now()
	var unsubscribedAt *time.Time
	if !active {
		unsubscribedAt = &now
	}
	return sqlmock.NewRows([]string{
		"id", "email", "name", "is_active", "subscribed_at", "unsubscribed_at",
	}).AddRow(1, "jane@example.com", "Jane", active, now, unsubscribedAt)
}

func TestFindByEmail(t *testing.T) {
	repo, mock, close := setupSubscriberMock(t)
	defer close()

	mock.ExpectQuery("SELECT (.+) FROM newsletter_subscribers WHERE email = \\$1").
		WithArgs("jane@example.com").
		WillReturnRows(subscriberRows(true))

	sub, err := repo.FindByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	require.Equal(t, "jane@example.com", sub.Email)
	require.True(t, sub.IsActive)
}

func TestFindByEmail_NotFound(t *testing.T) {
	repo, mock, close := setupSubscriberMock(t)
	defer close()

	mock.ExpectQuery("SELECT (.+) FROM newsletter_subscribers WHERE email = \\$1").
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	sub, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, ErrSubscriberNotFound)
	require.Nil(t, sub)
}

func TestCreateSubscriber(t *testing.T) {
	repo, mock, close := setupSubscriberMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO newsletter_subscribers")).
		WithArgs("jane@example.com", "Jane").
		WillReturnRows(subscriberRows(true))

	sub, err := repo.Create(context.Background(), "jane@example.com", "Jane")
	require.NoError(t, err)
	require.True(t, sub.IsActive)
}

func TestReactivate(t *testing.T) {
	repo, mock, close := setupSubscriberMock(t)
	defer close()

	// Resubscribing flips the existing row back instead of inserting a
	// duplicate email.
	mock.ExpectQuery(regexp.QuoteMeta("SET is_active = TRUE, name = $2, subscribed_at = NOW(), unsubscribed_at = NULL")).
		WithArgs("jane@example.com", "Jane").
		WillReturnRows(subscriberRows(true))

	sub, err := repo.Reactivate(context.Background(), "jane@example.com", "Jane")
	require.NoError(t, err)
	require.True(t, sub.IsActive)
	require.Nil(t, sub.UnsubscribedAt)
}

func TestReactivate_NotFound(t *testing.T) {
	repo, mock, close := setupSubscriberMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE newsletter_subscribers")).
		WithArgs("nobody@example.com", "").
		WillReturnError(sql.ErrNoRows)

	sub, err := repo.Reactivate(context.Background(), "nobody@example.com", "")
	require.ErrorIs(t, err, ErrSubscriberNotFound)
	require.Nil(t, sub)
}

func TestDeactivate_Guarded(t *testing.T) {
	repo, mock, close := setupSubscriberMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE email = $1 AND is_active = TRUE")).
		WithArgs("jane@example.com").
		WillReturnRows(subscriberRows(false))

	sub, err := repo.Deactivate(context.Background(), "jane@example.com")
	require.NoError(t, err)
	require.False(t, sub.IsActive)
	require.NotNil(t, sub.UnsubscribedAt)
}

func TestDeactivate_AlreadyInactive(t *testing.T) {
	repo, mock, close := setupSubscriberMock(t)
	defer close()

	// The is_active guard means an inactive row matches nothing.
	mock.ExpectQuery(regexp.QuoteMeta("WHERE email = $1 AND is_active = TRUE")).
		WithArgs("jane@example.com").
		WillReturnError(sql.ErrNoRows)

	sub, err := repo.Deactivate(context.Background(), "jane@example.com")
	require.ErrorIs(t, err, ErrSubscriberNotFound)
	require.Nil(t, sub)
}

func TestListSubscribers_ActiveOnly(t *testing.T) {
	repo, mock, close := setupSubscriberMock(t)
	defer close()

	mock.ExpectQuery("SELECT (.+) FROM newsletter_subscribers WHERE is_active = TRUE ORDER BY subscribed_at DESC LIMIT \\$1 OFFSET \\$2").
		WithArgs(100, 0).
		WillReturnRows(subscriberRows(true))

	subs, err := repo.List(context.Background(), true, 0, 0)
	require.NoError(t, err)
	require.Len(t, subs, 1)
}
