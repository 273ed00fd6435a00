package newsletter

import "time"

type Subscriber struct {
	ID             int        `db:"id" json:"id"`
	Email          string     `db:"email" json:"email"`
	Name           string     `db:"name" json:"name,omitempty"`
	IsActive       bool       `db:"is_active" json:"is_active"`
	SubscribedAt   time.Time  `db:"subscribed_at" json:"subscribed_at"`
	UnsubscribedAt *time.Time `db:"unsubscribed_at" json:"unsubscribed_at,omitempty"`
}

type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name,omitempty" binding:"omitempty,max=100"`
}

type UnsubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}
