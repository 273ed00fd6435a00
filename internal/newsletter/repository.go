package newsletter

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrSubscriberNotFound = errors.New("subscriber not found")

const subscriberColumns = `id, email, name, is_active, subscribed_at, unsubscribed_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Subscriber, error) {
	query := `SELECT ` + subscriberColumns + ` FROM newsletter_subscribers WHERE email = $1`

	var sub Subscriber
	err := r.db.GetContext(ctx, &sub, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSubscriberNotFound
		}
		return nil, err
	}

	return &sub, nil
}

func (r *repository) Create(ctx context.Context, email, name string) (*Subscriber, error) {
	query := `
		INSERT INTO newsletter_subscribers (email, name)
		VALUES ($1, $2)
		RETURNING ` + subscriberColumns

	var sub Subscriber
	err := r.db.GetContext(ctx, &sub, query, email, name)
	if err != nil {
		return nil, err
	}

	return &sub, nil
}

// Reactivate flips an unsubscribed row back to active instead of inserting
// a second row for the same email.
func (r *repository) Reactivate(ctx context.Context, email, name string) (*Subscriber, error) {
	query := `
		UPDATE newsletter_subscribers
		SET is_active = TRUE, name = $2, subscribed_at = NOW(), unsubscribed_at = NULL
		WHERE email = $1
		RETURNING ` + subscriberColumns

	var sub Subscriber
	err := r.db.GetContext(ctx, &sub, query, email, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSubscriberNotFound
		}
		return nil, err
	}

	return &sub, nil
}

func (r *repository) Deactivate(ctx context.Context, email string) (*Subscriber, error) {
	query := `
		UPDATE newsletter_subscribers
		SET is_active = FALSE, unsubscribed_at = NOW()
		WHERE email = $1 AND is_active = TRUE
		RETURNING ` + subscriberColumns

	var sub Subscriber
	err := r.db.GetContext(ctx, &sub, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSubscriberNotFound
		}
		return nil, err
	}

	return &sub, nil
}

func (r *repository) List(ctx context.Context, activeOnly bool, limit, offset int) ([]Subscriber, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `SELECT ` + subscriberColumns + ` FROM newsletter_subscribers`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY subscribed_at DESC LIMIT $1 OFFSET $2`

	var subs []Subscriber
	err := r.db.SelectContext(ctx, &subs, query, limit, offset)
	if err != nil {
		return nil, err
	}

	return subs, nil
}
