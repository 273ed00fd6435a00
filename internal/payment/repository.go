package payment

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrDuplicateIntent = errors.New("payment intent already recorded")
	ErrAlreadyRefunded = errors.New("payment already refunded")
)

const paymentColumns = `id, user_email, user_name, trainer_email, class_id, class_name,
	package_name, price_cents, currency, payment_intent_id, status, refund_id,
	refunded_at, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, req ConfirmPaymentRequest, status PaymentStatus) (*Payment, error) {
	query := `
		INSERT INTO payments (user_email, user_name, trainer_email, class_id, class_name,
			package_name, price_cents, currency, payment_intent_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + paymentColumns

	currency := req.Currency
	if currency == "" {
		currency = "usd"
	}

	var payment Payment
	err := r.db.GetContext(ctx, &payment, query,
		req.UserEmail, req.UserName, req.TrainerEmail, req.ClassID, req.ClassName,
		req.PackageName, req.PriceCents, currency, req.PaymentIntentID, status,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrDuplicateIntent
		}
		return nil, err
	}

	return &payment, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	var payment Payment
	err := r.db.GetContext(ctx, &payment, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	return &payment, nil
}

func (r *repository) ListByEmail(ctx context.Context, email string) ([]Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE user_email = $1
		ORDER BY created_at DESC`

	var payments []Payment
	err := r.db.SelectContext(ctx, &payments, query, email)
	if err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *repository) ListAll(ctx context.Context, limit, offset int) ([]Payment, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT ` + paymentColumns + `
		FROM payments
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	var payments []Payment
	err := r.db.SelectContext(ctx, &payments, query, limit, offset)
	if err != nil {
		return nil, err
	}

	return payments, nil
}

// MarkRefunded is guarded in SQL so a concurrent double refund cannot flip
// the record twice.
func (r *repository) MarkRefunded(ctx context.Context, id int, refundID string) (*Payment, error) {
	query := `
		UPDATE payments
		SET status = 'refunded', refund_id = $2, refunded_at = NOW()
		WHERE id = $1 AND status != 'refunded'
		RETURNING ` + paymentColumns

	var payment Payment
	err := r.db.GetContext(ctx, &payment, query, id, refundID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAlreadyRefunded
		}
		return nil, err
	}

	return &payment, nil
}
