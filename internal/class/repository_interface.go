package class

import "context"

type Repository interface {
	Create(ctx context.Context, req CreateClassRequest) (*Class, error)
	GetByID(ctx context.Context, id int) (*Class, error)
	List(ctx context.Context, filter ListFilter) ([]Class, error)
	Update(ctx context.Context, id int, req UpdateClassRequest) (*Class, error)
	Deactivate(ctx context.Context, id int) error
	IncrementBooked(ctx context.Context, id int) (*Class, error)
}
