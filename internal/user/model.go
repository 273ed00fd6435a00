package user

import (
	"time"

	"github.com/lib/pq"
)

const (
	RoleMember  = "member"
	RoleTrainer = "trainer"
	RoleAdmin   = "admin"

	StatusActive   = "active"
	StatusPending  = "pending"
	StatusRejected = "rejected"
	StatusInactive = "inactive"
)

type User struct {
	ID           int            `db:"id" json:"id"`
	Name         string         `db:"name" json:"name"`
	Email        string         `db:"email" json:"email"`
	PasswordHash string         `db:"password_hash" json:"-"`
	Role         string         `db:"role" json:"role"`
	Status       string         `db:"status" json:"status"`
	Photo        string         `db:"photo" json:"photo"`
	Skills       pq.StringArray `db:"skills" json:"skills"`
	Feedback     string         `db:"feedback" json:"feedback,omitempty"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}

// TrainerSlot is an availability sub-record owned by a trainer.
type TrainerSlot struct {
	ID        int       `db:"id" json:"id"`
	TrainerID int       `db:"trainer_id" json:"trainer_id"`
	SlotName  string    `db:"slot_name" json:"slot_name"`
	Day       string    `db:"day" json:"day"`
	StartTime string    `db:"start_time" json:"start_time"`
	EndTime   string    `db:"end_time" json:"end_time"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Photo    string `json:"photo"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

type ApplyTrainerRequest struct {
	Skills []string `json:"skills" binding:"required,min=1"`
}

type RejectRequest struct {
	Feedback string `json:"feedback" binding:"required"`
}

type CreateSlotRequest struct {
	SlotName  string `json:"slot_name" binding:"required"`
	Day       string `json:"day" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}
