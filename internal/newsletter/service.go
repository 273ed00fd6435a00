package newsletter

import (
	"context"
	"errors"

	"github.com/imran-binhasan/fitstat-server/internal/email"
	"github.com/imran-binhasan/fitstat-server/internal/logger"
	"github.com/imran-binhasan/fitstat-server/internal/metrics"
)

var (
	ErrAlreadySubscribed   = errors.New("email already subscribed")
	ErrAlreadyUnsubscribed = errors.New("email already unsubscribed")
)

type Service interface {
	Subscribe(ctx context.Context, req SubscribeRequest) (*Subscriber, error)
	Unsubscribe(ctx context.Context, subscriberEmail string) (*Subscriber, error)
	ListSubscribers(ctx context.Context, activeOnly bool, limit, offset int) ([]Subscriber, error)
}

type service struct {
	repo         Repository
	emailService *email.Service
}

func NewService(repo Repository, emailService *email.Service) Service {
	return &service{repo: repo, emailService: emailService}
}

// Subscribe keys on the unique email: an unknown address gets a fresh row,
// an inactive one is reactivated in place, an active one conflicts.
func (s *service) Subscribe(ctx context.Context, req SubscribeRequest) (*Subscriber, error) {
	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, ErrSubscriberNotFound) {
		return nil, err
	}

	if existing != nil {
		if existing.IsActive {
			return nil, ErrAlreadySubscribed
		}

		sub, err := s.repo.Reactivate(ctx, req.Email, req.Name)
		if err != nil {
			return nil, err
		}

		metrics.RecordNewsletter("resubscribed")
		return sub, nil
	}

	sub, err := s.repo.Create(ctx, req.Email, req.Name)
	if err != nil {
		return nil, err
	}

	metrics.RecordNewsletter("subscribed")

	if s.emailService != nil {
		if err := s.emailService.SendNewsletterWelcome(ctx, sub.Email, sub.Name); err != nil {
			logger.Errorf("Failed to queue welcome email for %s: %v", sub.Email, err)
		}
	}

	return sub, nil
}

func (s *service) Unsubscribe(ctx context.Context, subscriberEmail string) (*Subscriber, error) {
	existing, err := s.repo.FindByEmail(ctx, subscriberEmail)
	if err != nil {
		return nil, err
	}

	if !existing.IsActive {
		return nil, ErrAlreadyUnsubscribed
	}

	sub, err := s.repo.Deactivate(ctx, subscriberEmail)
	if err != nil {
		return nil, err
	}

	metrics.RecordNewsletter("unsubscribed")
	return sub, nil
}

func (s *service) ListSubscribers(ctx context.Context, activeOnly bool, limit, offset int) ([]Subscriber, error) {
	return s.repo.List(ctx, activeOnly, limit, offset)
}
