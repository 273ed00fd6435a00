package dashboard

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// GetStats runs the totals as one scalar-subquery row rather than a dozen
// round trips.
func (r *repository) GetStats(ctx context.Context) (*Stats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users) AS total_users,
			(SELECT COUNT(*) FROM users WHERE role = 'trainer') AS total_trainers,
			(SELECT COUNT(*) FROM users WHERE status = 'pending') AS pending_applications,
			(SELECT COUNT(*) FROM classes) AS total_classes,
			(SELECT COUNT(*) FROM classes WHERE active = TRUE) AS active_classes,
			(SELECT COALESCE(SUM(booked_count), 0) FROM classes) AS total_bookings,
			(SELECT COUNT(*) FROM payments) AS total_payments,
			(SELECT COALESCE(SUM(price_cents), 0) FROM payments WHERE status = 'completed') AS revenue_cents,
			(SELECT COUNT(*) FROM payments WHERE status = 'refunded') AS total_refunds,
			(SELECT COUNT(*) FROM forum_posts) AS total_forum_posts,
			(SELECT COUNT(*) FROM reviews) AS total_reviews,
			(SELECT COUNT(*) FROM newsletter_subscribers WHERE is_active = TRUE) AS active_subscribers
	`

	var stats Stats
	err := r.db.GetContext(ctx, &stats, query)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *repository) GetRecentPayments(ctx context.Context, limit int) ([]RecentPayment, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT id, user_email, class_name, price_cents, status, created_at
		FROM payments
		ORDER BY created_at DESC
		LIMIT $1
	`

	var payments []RecentPayment
	err := r.db.SelectContext(ctx, &payments, query, limit)
	if err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *repository) GetTopClasses(ctx context.Context, limit int) ([]TopClass, error) {
	if limit <= 0 {
		limit = 5
	}

	query := `
		SELECT id, name, booked_count, max_capacity
		FROM classes
		WHERE active = TRUE
		ORDER BY booked_count DESC
		LIMIT $1
	`

	var classes []TopClass
	err := r.db.SelectContext(ctx, &classes, query, limit)
	if err != nil {
		return nil, err
	}

	return classes, nil
}
