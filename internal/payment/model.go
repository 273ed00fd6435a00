package payment

import "time"

type PaymentStatus string

const (
	StatusPending   PaymentStatus = "pending"
	StatusCompleted PaymentStatus = "completed"
	StatusFailed    PaymentStatus = "failed"
	StatusRefunded  PaymentStatus = "refunded"
)

type Payment struct {
	ID              int           `db:"id" json:"id"`
	UserEmail       string        `db:"user_email" json:"userEmail"`
	UserName        string        `db:"user_name" json:"userName"`
	TrainerEmail    string        `db:"trainer_email" json:"trainerEmail"`
	ClassID         int           `db:"class_id" json:"classId"`
	ClassName       string        `db:"class_name" json:"className"`
	PackageName     string        `db:"package_name" json:"packageName"`
	PriceCents      int64         `db:"price_cents" json:"priceCents"`
	Currency        string        `db:"currency" json:"currency"`
	PaymentIntentID string        `db:"payment_intent_id" json:"paymentIntentId"`
	Status          PaymentStatus `db:"status" json:"status"`
	RefundID        *string       `db:"refund_id" json:"refundId,omitempty"`
	RefundedAt      *time.Time    `db:"refunded_at" json:"refundedAt,omitempty"`
	CreatedAt       time.Time     `db:"created_at" json:"createdAt"`
}

type CreateIntentRequest struct {
	AmountCents int64  `json:"amount" binding:"required,min=1"`
	Currency    string `json:"currency" binding:"required"`
}

type ConfirmPaymentRequest struct {
	UserEmail       string `json:"userEmail" binding:"required,email"`
	UserName        string `json:"userName"`
	TrainerEmail    string `json:"trainerEmail"`
	ClassID         int    `json:"classId" binding:"required"`
	ClassName       string `json:"className"`
	PackageName     string `json:"packageName"`
	PriceCents      int64  `json:"packagePrice" binding:"min=0"`
	Currency        string `json:"currency"`
	PaymentIntentID string `json:"paymentIntentId" binding:"required"`
}
