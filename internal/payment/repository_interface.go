package payment

import "context"

type Repository interface {
	Create(ctx context.Context, req ConfirmPaymentRequest, status PaymentStatus) (*Payment, error)
	GetByID(ctx context.Context, id int) (*Payment, error)
	ListByEmail(ctx context.Context, email string) ([]Payment, error)
	ListAll(ctx context.Context, limit, offset int) ([]Payment, error)
	MarkRefunded(ctx context.Context, id int, refundID string) (*Payment, error)
}
