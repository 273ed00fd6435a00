package class

import (
	"context"
	"errors"
)

var (
	ErrCapacityExceeded = errors.New("class capacity exceeded")
	ErrClassInactive    = errors.New("class is not active")
)

type Service interface {
	CreateClass(ctx context.Context, req CreateClassRequest) (*Class, error)
	GetClass(ctx context.Context, id int) (*Class, error)
	ListClasses(ctx context.Context, filter ListFilter) ([]ClassWithAvailability, error)
	UpdateClass(ctx context.Context, id int, req UpdateClassRequest) (*Class, error)
	DeleteClass(ctx context.Context, id int) error
	CheckCapacity(ctx context.Context, id, requested int) error
	BookClass(ctx context.Context, id int) (*Class, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateClass(ctx context.Context, req CreateClassRequest) (*Class, error) {
	return s.repo.Create(ctx, req)
}

func (s *service) GetClass(ctx context.Context, id int) (*Class, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListClasses(ctx context.Context, filter ListFilter) ([]ClassWithAvailability, error) {
	classes, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]ClassWithAvailability, 0, len(classes))
	for _, c := range classes {
		available := c.MaxCapacity - c.BookedCount
		if available < 0 {
			available = 0
		}
		result = append(result, ClassWithAvailability{
			Class:     c,
			Available: available,
			IsFull:    c.BookedCount >= c.MaxCapacity,
		})
	}

	return result, nil
}

func (s *service) UpdateClass(ctx context.Context, id int, req UpdateClassRequest) (*Class, error) {
	return s.repo.Update(ctx, id, req)
}

func (s *service) DeleteClass(ctx context.Context, id int) error {
	return s.repo.Deactivate(ctx, id)
}

// CheckCapacity reads the current counter and fails when the requested seats
// would not fit. The later increment is a separate write; the check is
// best-effort, not a reservation.
func (s *service) CheckCapacity(ctx context.Context, id, requested int) error {
	if requested <= 0 {
		requested = 1
	}

	class, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !class.Active {
		return ErrClassInactive
	}

	if class.BookedCount+requested > class.MaxCapacity {
		return ErrCapacityExceeded
	}

	return nil
}

func (s *service) BookClass(ctx context.Context, id int) (*Class, error) {
	if err := s.CheckCapacity(ctx, id, 1); err != nil {
		return nil, err
	}

	class, err := s.repo.IncrementBooked(ctx, id)
	if err != nil {
		if errors.Is(err, ErrClassFull) {
			return nil, ErrCapacityExceeded
		}
		return nil, err
	}

	return class, nil
}
