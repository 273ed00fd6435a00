package dashboard

import "context"

type Repository interface {
	GetStats(ctx context.Context) (*Stats, error)
	GetRecentPayments(ctx context.Context, limit int) ([]RecentPayment, error)
	GetTopClasses(ctx context.Context, limit int) ([]TopClass, error)
}
