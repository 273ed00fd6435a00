package forum

import "context"

type Repository interface {
	Create(ctx context.Context, authorID int, authorName, authorRole string, req CreatePostRequest) (*Post, error)
	GetByID(ctx context.Context, id int) (*Post, error)
	List(ctx context.Context, includeHidden bool, limit, offset int) ([]Post, error)
	Update(ctx context.Context, id int, req UpdatePostRequest) (*Post, error)
	Delete(ctx context.Context, id int) error
	SetPinned(ctx context.Context, id int, pinned bool) (*Post, error)
	SetHidden(ctx context.Context, id int, hidden bool) (*Post, error)
	AddVote(ctx context.Context, id, delta int) (*Post, error)
}
