package review

import "time"

type Review struct {
	ID            int       `db:"id" json:"id"`
	ReviewerID    int       `db:"reviewer_id" json:"reviewer_id"`
	ReviewerName  string    `db:"reviewer_name" json:"reviewer_name"`
	ReviewerPhoto string    `db:"reviewer_photo" json:"reviewer_photo,omitempty"`
	ClassID       *int      `db:"class_id" json:"class_id,omitempty"`
	Rating        int       `db:"rating" json:"rating"`
	Body          string    `db:"body" json:"body"`
	Verified      bool      `db:"verified" json:"verified"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

type CreateReviewRequest struct {
	ClassID *int   `json:"class_id,omitempty"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Body    string `json:"body" binding:"required,min=1,max=2000"`
}
