package review

import (
	"context"

	"github.com/imran-binhasan/fitstat-server/internal/user"
)

type Service interface {
	CreateReview(ctx context.Context, reviewerID int, req CreateReviewRequest) (*Review, error)
	ListReviews(ctx context.Context, limit, offset int) ([]Review, error)
	VerifyReview(ctx context.Context, reviewID int, verified bool) (*Review, error)
	DeleteReview(ctx context.Context, reviewID int) error
}

type service struct {
	repo  Repository
	users user.Service
}

func NewService(repo Repository, users user.Service) Service {
	return &service{repo: repo, users: users}
}

func (s *service) CreateReview(ctx context.Context, reviewerID int, req CreateReviewRequest) (*Review, error) {
	reviewer, err := s.users.GetByID(ctx, reviewerID)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, reviewer.ID, reviewer.Name, reviewer.Photo, req)
}

func (s *service) ListReviews(ctx context.Context, limit, offset int) ([]Review, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *service) VerifyReview(ctx context.Context, reviewID int, verified bool) (*Review, error) {
	return s.repo.SetVerified(ctx, reviewID, verified)
}

func (s *service) DeleteReview(ctx context.Context, reviewID int) error {
	return s.repo.Delete(ctx, reviewID)
}
