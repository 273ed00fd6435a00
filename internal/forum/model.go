package forum

import "time"

// Post is a community forum entry. Author fields are denormalized at
// creation time so listings do not join against users.
type Post struct {
	ID         int       `db:"id" json:"id"`
	AuthorID   int       `db:"author_id" json:"author_id"`
	AuthorName string    `db:"author_name" json:"author_name"`
	AuthorRole string    `db:"author_role" json:"author_role"`
	Title      string    `db:"title" json:"title"`
	Body       string    `db:"body" json:"body"`
	ClassID    *int      `db:"class_id" json:"class_id,omitempty"`
	Pinned     bool      `db:"pinned" json:"pinned"`
	Hidden     bool      `db:"hidden" json:"hidden"`
	Votes      int       `db:"votes" json:"votes"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

type CreatePostRequest struct {
	Title   string `json:"title" binding:"required,min=3,max=200"`
	Body    string `json:"body" binding:"required,min=1"`
	ClassID *int   `json:"class_id,omitempty"`
}

type UpdatePostRequest struct {
	Title *string `json:"title,omitempty" binding:"omitempty,min=3,max=200"`
	Body  *string `json:"body,omitempty" binding:"omitempty,min=1"`
}

type VoteRequest struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}
