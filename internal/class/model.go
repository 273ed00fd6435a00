package class

import "time"

type Class struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Description  string    `db:"description" json:"description"`
	Image        string    `db:"image" json:"image"`
	TrainerName  string    `db:"trainer_name" json:"trainer_name"`
	TrainerEmail string    `db:"trainer_email" json:"trainer_email"`
	PriceCents   int64     `db:"price_cents" json:"price_cents"`
	Currency     string    `db:"currency" json:"currency"`
	MaxCapacity  int       `db:"max_capacity" json:"max_capacity"`
	BookedCount  int       `db:"booked_count" json:"booked_count"`
	Difficulty   string    `db:"difficulty" json:"difficulty"`
	Category     string    `db:"category" json:"category"`
	Active       bool      `db:"active" json:"active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type CreateClassRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	TrainerName  string `json:"trainer_name" binding:"required"`
	TrainerEmail string `json:"trainer_email" binding:"required,email"`
	PriceCents   int64  `json:"price_cents" binding:"min=0"`
	Currency     string `json:"currency"`
	MaxCapacity  int    `json:"max_capacity" binding:"required,min=1"`
	Difficulty   string `json:"difficulty" binding:"omitempty,oneof=beginner intermediate advanced"`
	Category     string `json:"category"`
}

type UpdateClassRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	PriceCents  int64  `json:"price_cents" binding:"min=0"`
	MaxCapacity int    `json:"max_capacity" binding:"required,min=1"`
	Difficulty  string `json:"difficulty" binding:"omitempty,oneof=beginner intermediate advanced"`
	Category    string `json:"category"`
}

// ListFilter is built from query params and translated into WHERE/ORDER BY.
type ListFilter struct {
	Category     string
	Difficulty   string
	TrainerEmail string
	Search       string
	ActiveOnly   bool
	SortBy       string
	Limit        int
	Offset       int
}

type ClassWithAvailability struct {
	Class
	Available int  `json:"available"`
	IsFull    bool `json:"is_full"`
}
