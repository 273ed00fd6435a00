package forum

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

var ErrPostNotFound = errors.New("forum post not found")

const postColumns = `id, author_id, author_name, author_role, title, body,
	class_id, pinned, hidden, votes, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, authorID int, authorName, authorRole string, req CreatePostRequest) (*Post, error) {
	query := `
		INSERT INTO forum_posts (author_id, author_name, author_role, title, body, class_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + postColumns

	var post Post
	err := r.db.GetContext(ctx, &post, query,
		authorID, authorName, authorRole, req.Title, req.Body, req.ClassID)
	if err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Post, error) {
	query := `SELECT ` + postColumns + ` FROM forum_posts WHERE id = $1`

	var post Post
	err := r.db.GetContext(ctx, &post, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	return &post, nil
}

// List returns posts pinned-first, newest within each group. Hidden posts
// only show up for moderators.
func (r *repository) List(ctx context.Context, includeHidden bool, limit, offset int) ([]Post, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + postColumns + ` FROM forum_posts`
	if !includeHidden {
		query += ` WHERE hidden = FALSE`
	}
	query += ` ORDER BY pinned DESC, created_at DESC LIMIT $1 OFFSET $2`

	var posts []Post
	err := r.db.SelectContext(ctx, &posts, query, limit, offset)
	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *repository) Update(ctx context.Context, id int, req UpdatePostRequest) (*Post, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{id}
	argPos := 2

	if req.Title != nil {
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", argPos))
		args = append(args, *req.Title)
		argPos++
	}
	if req.Body != nil {
		setClauses = append(setClauses, fmt.Sprintf("body = $%d", argPos))
		args = append(args, *req.Body)
		argPos++
	}

	query := `UPDATE forum_posts SET ` + strings.Join(setClauses, ", ") +
		` WHERE id = $1 RETURNING ` + postColumns

	var post Post
	err := r.db.GetContext(ctx, &post, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	return &post, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM forum_posts WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrPostNotFound
	}

	return nil
}

func (r *repository) SetPinned(ctx context.Context, id int, pinned bool) (*Post, error) {
	return r.setFlag(ctx, id, "pinned", pinned)
}

func (r *repository) SetHidden(ctx context.Context, id int, hidden bool) (*Post, error) {
	return r.setFlag(ctx, id, "hidden", hidden)
}

func (r *repository) setFlag(ctx context.Context, id int, column string, value bool) (*Post, error) {
	query := `UPDATE forum_posts SET ` + column + ` = $2, updated_at = NOW()
		WHERE id = $1 RETURNING ` + postColumns

	var post Post
	err := r.db.GetContext(ctx, &post, query, id, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	return &post, nil
}

func (r *repository) AddVote(ctx context.Context, id, delta int) (*Post, error) {
	query := `UPDATE forum_posts SET votes = votes + $2, updated_at = NOW()
		WHERE id = $1 RETURNING ` + postColumns

	var post Post
	err := r.db.GetContext(ctx, &post, query, id, delta)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	return &post, nil
}
