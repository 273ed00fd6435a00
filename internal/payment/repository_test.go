package payment

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

func setupPaymentMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func paymentRows(status string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "user_email", "user_name", "trainer_email", "class_id", "class_name",
		"package_name", "price_cents", "currency", "payment_intent_id", "status",
		"refund_id", "refunded_at", "created_at",
	}).AddRow(1, "user@example.com", "User", "trainer@example.com", 1, "Power Yoga",
		"Gold", 4999, "usd", "pi_123", status, nil, nil, now)
}

func TestCreatePayment(t *testing.T) {
	repo, mock, close := setupPaymentMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payments")).
		WithArgs("user@example.com", "User", "trainer@example.com", 1, "Power Yoga",
			"Gold", int64(4999), "usd", "pi_123", StatusCompleted).
		WillReturnRows(paymentRows("completed"))

	payment, err := repo.Create(context.Background(), ConfirmPaymentRequest{
		UserEmail:       "user@example.com",
		UserName:        "User",
		TrainerEmail:    "trainer@example.com",
		ClassID:         1,
		ClassName:       "Power Yoga",
		PackageName:     "Gold",
		PriceCents:      4999,
		Currency:        "usd",
		PaymentIntentID: "pi_123",
	}, StatusCompleted)

	require.NoError(t, err)
	require.Equal(t, StatusCompleted, payment.Status)
	require.Equal(t, "pi_123", payment.PaymentIntentID)
}

func TestCreatePayment_DuplicateIntent(t *testing.T) {
	repo, mock, close := setupPaymentMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payments")).
		WillReturnError(&pq.Error{Code: "23505"})

	payment, err := repo.Create(context.Background(), ConfirmPaymentRequest{
		PaymentIntentID: "pi_123",
	}, StatusCompleted)

	require.ErrorIs(t, err, ErrDuplicateIntent)
	require.Nil(t, payment)
}

func TestGetPaymentByID_NotFound(t *testing.T) {
	repo, mock, close := setupPaymentMock(t)
	defer close()

	mock.ExpectQuery("SELECT (.+) FROM payments WHERE id = \\$1").
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	payment, err := repo.GetByID(context.Background(), 99)
	require.ErrorIs(t, err, ErrPaymentNotFound)
	require.Nil(t, payment)
}

func TestMarkRefunded(t *testing.T) {
	repo, mock, close := setupPaymentMock(t)
	defer close()

	now := time.Now()
	refundID := "re_456"
	rows := sqlmock.NewRows([]string{
		"id", "user_email", "user_name", "trainer_email", "class_id", "class_name",
		"package_name", "price_cents", "currency", "payment_intent_id", "status",
		"refund_id", "refunded_at", "created_at",
	}).AddRow(1, "user@example.com", "User", "trainer@example.com", 1, "Power Yoga",
		"Gold", 4999, "usd", "pi_123", "refunded", refundID, now, now)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE payments")).
		WithArgs(1, "re_456").
		WillReturnRows(rows)

	payment, err := repo.MarkRefunded(context.Background(), 1, "re_456")
	require.NoError(t, err)
	require.Equal(t, StatusRefunded, payment.Status)
	require.NotNil(t, payment.RefundID)
	require.Equal(t, "re_456", *payment.RefundID)
}

func TestMarkRefunded_AlreadyRefunded(t *testing.T) {
	repo, mock, close := setupPaymentMock(t)
	defer close()

	// Guard clause matches no row when the record is already refunded.
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE payments")).
		WithArgs(1, "re_456").
		WillReturnError(sql.ErrNoRows)

	payment, err := repo.MarkRefunded(context.Background(), 1, "re_456")
	require.ErrorIs(t, err, ErrAlreadyRefunded)
	require.Nil(t, payment)
}

func TestListByEmail(t *testing.T) {
	repo, mock, close := setupPaymentMock(t)
	defer close()

	mock.ExpectQuery("SELECT (.+) FROM payments WHERE user_email = \\$1").
		WithArgs("user@example.com").
		WillReturnRows(paymentRows("completed"))

	payments, err := repo.ListByEmail(context.Background(), "user@example.com")
	require.NoError(t, err)
	require.Len(t, payments, 1)
	require.Equal(t, "user@example.com", payments[0].UserEmail)
}
