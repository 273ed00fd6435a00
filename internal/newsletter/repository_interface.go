package newsletter

import "context"

type Repository interface {
	FindByEmail(ctx context.Context, email string) (*Subscriber, error)
	Create(ctx context.Context, email, name string) (*Subscriber, error)
	Reactivate(ctx context.Context, email, name string) (*Subscriber, error)
	Deactivate(ctx context.Context, email string) (*Subscriber, error)
	List(ctx context.Context, activeOnly bool, limit, offset int) ([]Subscriber, error)
}
