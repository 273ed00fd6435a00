package user

import (
	"context"
	"errors"

	"github.com/imran-binhasan/fitstat-server/internal/auth"
	"github.com/imran-binhasan/fitstat-server/internal/email"
	"github.com/imran-binhasan/fitstat-server/internal/logger"
	"github.com/imran-binhasan/fitstat-server/internal/metrics"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyTrainer     = errors.New("user is already a trainer")
	ErrApplicationPending = errors.New("application already pending")
	ErrNotPending         = errors.New("user has no pending application")
	ErrNotSlotOwner       = errors.New("slot belongs to another trainer")
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, string, string, error)
	Login(ctx context.Context, req LoginRequest) (*User, string, string, error)
	GetByID(ctx context.Context, userID int) (*User, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, *User, error)
	ForgotPassword(ctx context.Context, userEmail string) error

	ApplyForTrainer(ctx context.Context, userID int, req ApplyTrainerRequest) (*User, error)
	ApproveApplication(ctx context.Context, userID int) (*User, error)
	RejectApplication(ctx context.Context, userID int, feedback string) (*User, error)

	ListUsers(ctx context.Context, limit, offset int) ([]User, error)
	DeleteUser(ctx context.Context, userID int) error

	CreateSlot(ctx context.Context, trainerID int, req CreateSlotRequest) (*TrainerSlot, error)
	GetTrainerSlots(ctx context.Context, trainerID int) ([]TrainerSlot, error)
	DeleteSlot(ctx context.Context, trainerID, slotID int) error
}

type service struct {
	repo         Repository
	jwtSecret    string
	emailService *email.Service
}

func NewService(repo Repository, jwtSecret string, emailService *email.Service) Service {
	return &service{
		repo:         repo,
		jwtSecret:    jwtSecret,
		emailService: emailService,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, string, string, error) {
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, "", "", err
	}
	if exists {
		return nil, "", "", ErrEmailExists
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", "", err
	}

	user, err := s.repo.Create(ctx, req.Name, req.Email, passwordHash, req.Photo, RoleMember)
	if err != nil {
		return nil, "", "", err
	}

	accessToken, refreshToken, err := auth.GenerateTokens(
		user.ID, user.Email, user.Role, s.jwtSecret, s.jwtSecret)
	if err != nil {
		return nil, "", "", err
	}

	return user, accessToken, refreshToken, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*User, string, string, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, refreshToken, err := auth.GenerateTokens(
		user.ID, user.Email, user.Role, s.jwtSecret, s.jwtSecret)
	if err != nil {
		return nil, "", "", err
	}

	return user, accessToken, refreshToken, nil
}

func (s *service) GetByID(ctx context.Context, userID int) (*User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, *User, error) {
	_, claims, err := auth.RefreshAccessToken(refreshToken, s.jwtSecret, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	user, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		return "", nil, err
	}

	newAccessToken, err := auth.GenerateAccessToken(user.ID, user.Email, user.Role, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	return newAccessToken, user, nil
}

// ForgotPassword records the request without issuing a reset token. The
// response is identical whether or not the email exists.
func (s *service) ForgotPassword(ctx context.Context, userEmail string) error {
	exists, err := s.repo.EmailExists(ctx, userEmail)
	if err != nil {
		return err
	}

	if exists {
		logger.Infof("Password reset requested for %s", userEmail)
	} else {
		logger.Infof("Password reset requested for unknown email %s", userEmail)
	}

	return nil
}

func (s *service) ApplyForTrainer(ctx context.Context, userID int, req ApplyTrainerRequest) (*User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Role == RoleTrainer {
		return nil, ErrAlreadyTrainer
	}

	if user.Status == StatusPending {
		return nil, ErrApplicationPending
	}

	updated, err := s.repo.SetApplicationPending(ctx, userID, req.Skills)
	if err != nil {
		return nil, err
	}

	metrics.RecordTrainerApplication("submitted")
	return updated, nil
}

func (s *service) ApproveApplication(ctx context.Context, userID int) (*User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Status != StatusPending {
		return nil, ErrNotPending
	}

	approved, err := s.repo.ApproveTrainer(ctx, userID)
	if err != nil {
		return nil, err
	}

	metrics.RecordTrainerApplication("approved")

	if s.emailService != nil {
		if err := s.emailService.SendTrainerApproval(ctx, approved.Email, approved.Name); err != nil {
			logger.Errorf("Failed to queue approval email for %s: %v", approved.Email, err)
		}
	}

	return approved, nil
}

func (s *service) RejectApplication(ctx context.Context, userID int, feedback string) (*User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Status != StatusPending {
		return nil, ErrNotPending
	}

	rejected, err := s.repo.RejectTrainer(ctx, userID, feedback)
	if err != nil {
		return nil, err
	}

	metrics.RecordTrainerApplication("rejected")

	if s.emailService != nil {
		if err := s.emailService.SendTrainerRejection(ctx, rejected.Email, rejected.Name, feedback); err != nil {
			logger.Errorf("Failed to queue rejection email for %s: %v", rejected.Email, err)
		}
	}

	return rejected, nil
}

func (s *service) ListUsers(ctx context.Context, limit, offset int) ([]User, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *service) DeleteUser(ctx context.Context, userID int) error {
	return s.repo.Delete(ctx, userID)
}

func (s *service) CreateSlot(ctx context.Context, trainerID int, req CreateSlotRequest) (*TrainerSlot, error) {
	return s.repo.CreateSlot(ctx, trainerID, req)
}

func (s *service) GetTrainerSlots(ctx context.Context, trainerID int) ([]TrainerSlot, error) {
	return s.repo.ListSlotsByTrainer(ctx, trainerID)
}

func (s *service) DeleteSlot(ctx context.Context, trainerID, slotID int) error {
	slot, err := s.repo.GetSlotByID(ctx, slotID)
	if err != nil {
		return err
	}

	if slot.TrainerID != trainerID {
		return ErrNotSlotOwner
	}

	return s.repo.DeleteSlot(ctx, slotID)
}
