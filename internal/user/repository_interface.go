package user

import "context"

type Repository interface {
	Create(ctx context.Context, name, email, passwordHash, photo, role string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, limit, offset int) ([]User, error)
	Delete(ctx context.Context, id int) error

	SetApplicationPending(ctx context.Context, id int, skills []string) (*User, error)
	ApproveTrainer(ctx context.Context, id int) (*User, error)
	RejectTrainer(ctx context.Context, id int, feedback string) (*User, error)

	CreateSlot(ctx context.Context, trainerID int, req CreateSlotRequest) (*TrainerSlot, error)
	ListSlotsByTrainer(ctx context.Context, trainerID int) ([]TrainerSlot, error)
	GetSlotByID(ctx context.Context, id int) (*TrainerSlot, error)
	DeleteSlot(ctx context.Context, id int) error
}
