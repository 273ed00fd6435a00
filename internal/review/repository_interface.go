package review

import "context"

type Repository interface {
	Create(ctx context.Context, reviewerID int, reviewerName, reviewerPhoto string, req CreateReviewRequest) (*Review, error)
	GetByID(ctx context.Context, id int) (*Review, error)
	List(ctx context.Context, limit, offset int) ([]Review, error)
	SetVerified(ctx context.Context, id int, verified bool) (*Review, error)
	Delete(ctx context.Context, id int) error
}
