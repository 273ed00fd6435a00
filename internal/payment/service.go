package payment

import (
	"context"
	"errors"

	"github.com/imran-binhasan/fitstat-server/internal/class"
	"github.com/imran-binhasan/fitstat-server/internal/email"
	"github.com/imran-binhasan/fitstat-server/internal/logger"
	"github.com/imran-binhasan/fitstat-server/internal/metrics"
)

// MinChargeCents is the gateway minimum charge in minor units.
const MinChargeCents = 50

var (
	ErrAmountTooSmall     = errors.New("amount must be at least 50 minor units")
	ErrIntentNotSucceeded = errors.New("payment intent has not succeeded")
)

type Service interface {
	CreateIntent(ctx context.Context, req CreateIntentRequest) (*Intent, error)
	ConfirmPayment(ctx context.Context, req ConfirmPaymentRequest) (*Payment, error)
	RefundPayment(ctx context.Context, paymentID int) (*Payment, error)
	GetPaymentsByEmail(ctx context.Context, userEmail string) ([]Payment, error)
	GetAllPayments(ctx context.Context, limit, offset int) ([]Payment, error)
}

type service struct {
	repo         Repository
	gateway      Gateway
	classes      class.Service
	emailService *email.Service
}

func NewService(repo Repository, gateway Gateway, classes class.Service, emailService *email.Service) Service {
	return &service{
		repo:         repo,
		gateway:      gateway,
		classes:      classes,
		emailService: emailService,
	}
}

func (s *service) CreateIntent(ctx context.Context, req CreateIntentRequest) (*Intent, error) {
	if req.AmountCents < MinChargeCents {
		return nil, ErrAmountTooSmall
	}

	return s.gateway.CreateIntent(ctx, req.AmountCents, req.Currency)
}

// ConfirmPayment validates capacity and the gateway intent, persists the
// payment, then bumps the class counter. The last two are independent writes;
// a failed increment leaves a completed payment behind, which is logged.
func (s *service) ConfirmPayment(ctx context.Context, req ConfirmPaymentRequest) (*Payment, error) {
	if err := s.classes.CheckCapacity(ctx, req.ClassID, 1); err != nil {
		return nil, err
	}

	intent, err := s.gateway.GetIntent(ctx, req.PaymentIntentID)
	if err != nil {
		return nil, err
	}

	if intent.Status != IntentStatusSucceeded {
		return nil, ErrIntentNotSucceeded
	}

	payment, err := s.repo.Create(ctx, req, StatusCompleted)
	if err != nil {
		return nil, err
	}

	if _, err := s.classes.BookClass(ctx, req.ClassID); err != nil {
		logger.Errorf("Payment %d recorded but booking counter increment failed for class %d: %v",
			payment.ID, req.ClassID, err)
	}

	metrics.RecordPayment(string(StatusCompleted), payment.PriceCents)

	if s.emailService != nil {
		if err := s.emailService.SendPaymentConfirmation(
			ctx, payment.UserEmail, payment.UserName,
			payment.ClassName, payment.PackageName,
			payment.PriceCents, payment.Currency,
		); err != nil {
			logger.Errorf("Failed to queue payment confirmation for %s: %v", payment.UserEmail, err)
		}
	}

	return payment, nil
}

// RefundPayment refuses already-refunded records before any gateway call.
// The class booking counter is deliberately left untouched.
func (s *service) RefundPayment(ctx context.Context, paymentID int) (*Payment, error) {
	payment, err := s.repo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if payment.Status == StatusRefunded {
		return nil, ErrAlreadyRefunded
	}

	refundID, err := s.gateway.Refund(ctx, payment.PaymentIntentID)
	if err != nil {
		return nil, err
	}

	refunded, err := s.repo.MarkRefunded(ctx, paymentID, refundID)
	if err != nil {
		return nil, err
	}

	metrics.RecordRefund()
	return refunded, nil
}

func (s *service) GetPaymentsByEmail(ctx context.Context, userEmail string) ([]Payment, error) {
	return s.repo.ListByEmail(ctx, userEmail)
}

func (s *service) GetAllPayments(ctx context.Context, limit, offset int) ([]Payment, error) {
	return s.repo.ListAll(ctx, limit, offset)
}
