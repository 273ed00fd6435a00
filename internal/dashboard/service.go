package dashboard

import "context"

type Service interface {
	GetOverview(ctx context.Context) (*Overview, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetOverview(ctx context.Context) (*Overview, error) {
	stats, err := s.repo.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	recentPayments, err := s.repo.GetRecentPayments(ctx, 10)
	if err != nil {
		return nil, err
	}

	topClasses, err := s.repo.GetTopClasses(ctx, 5)
	if err != nil {
		return nil, err
	}

	return &Overview{
		Stats:          *stats,
		RecentPayments: recentPayments,
		TopClasses:     topClasses,
	}, nil
}
