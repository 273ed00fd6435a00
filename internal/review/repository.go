package review

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrReviewNotFound = errors.New("review not found")

const reviewColumns = `id, reviewer_id, reviewer_name, reviewer_photo, class_id,
	rating, body, verified, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, reviewerID int, reviewerName, reviewerPhoto string, req CreateReviewRequest) (*Review, error) {
	query := `
		INSERT INTO reviews (reviewer_id, reviewer_name, reviewer_photo, class_id, rating, body)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + reviewColumns

	var review Review
	err := r.db.GetContext(ctx, &review, query,
		reviewerID, reviewerName, reviewerPhoto, req.ClassID, req.Rating, req.Body)
	if err != nil {
		return nil, err
	}

	return &review, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`

	var review Review
	err := r.db.GetContext(ctx, &review, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	return &review, nil
}

// List puts verified reviews first, newest within each group.
func (r *repository) List(ctx context.Context, limit, offset int) ([]Review, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + reviewColumns + `
		FROM reviews
		ORDER BY verified DESC, created_at DESC
		LIMIT $1 OFFSET $2`

	var reviews []Review
	err := r.db.SelectContext(ctx, &reviews, query, limit, offset)
	if err != nil {
		return nil, err
	}

	return reviews, nil
}

func (r *repository) SetVerified(ctx context.Context, id int, verified bool) (*Review, error) {
	query := `UPDATE reviews SET verified = $2, updated_at = NOW()
		WHERE id = $1 RETURNING ` + reviewColumns

	var review Review
	err := r.db.GetContext(ctx, &review, query, id, verified)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	return &review, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrReviewNotFound
	}

	return nil
}
