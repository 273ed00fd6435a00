package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/imran-binhasan/fitstat-server/internal/user"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, reviewerID int, reviewerName, reviewerPhoto string, req CreateReviewRequest) (*Review, error) {
	args := m.Called(ctx, reviewerID, reviewerName, reviewerPhoto, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Review), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int) (*Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Review), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, limit, offset int) ([]Review, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Review), args.Error(1)
}

func (m *MockRepository) SetVerified(ctx context.Context, id int, verified bool) (*Review, error) {
	args := m.Called(ctx, id, verified)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Review), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserService stubs user.Service; only GetByID matters here.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req user.RegisterRequest) (*user.User, string, string, error) {
	return nil, "", "", nil
}

func (m *MockUserService) Login(ctx context.Context, req user.LoginRequest) (*user.User, string, string, error) {
	return nil, "", "", nil
}

func (m *MockUserService) GetByID(ctx context.Context, userID int) (*user.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserService) RefreshToken(ctx context.Context, refreshToken string) (string, *user.User, error) {
	return "", nil, nil
}

func (m *MockUserService) ForgotPassword(ctx context.Context, userEmail string) error {
	return nil
}

func (m *MockUserService) ApplyForTrainer(ctx context.Context, userID int, req user.ApplyTrainerRequest) (*user.User, error) {
	return nil, nil
}

func (m *MockUserService) ApproveApplication(ctx context.Context, userID int) (*user.User, error) {
	return nil, nil
}

func (m *MockUserService) RejectApplication(ctx context.Context, userID int, feedback string) (*user.User, error) {
	return nil, nil
}

func (m *MockUserService) ListUsers(ctx context.Context, limit, offset int) ([]user.User, error) {
	return nil, nil
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID int) error {
	return nil
}

func (m *MockUserService) CreateSlot(ctx context.Context, trainerID int, req user.CreateSlotRequest) (*user.TrainerSlot, error) {
	return nil, nil
}

func (m *MockUserService) GetTrainerSlots(ctx context.Context, trainerID int) ([]user.TrainerSlot, error) {
	return nil, nil
}

func (m *MockUserService) DeleteSlot(ctx context.Context, trainerID, slotID int) error {
	return nil
}

func TestService_CreateReview(t *testing.T) {
	t.Run("denormalizes reviewer onto the review", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockUsers := new(MockUserService)

		req := CreateReviewRequest{Rating: 5, Body: "Great class"}

		mockUsers.On("GetByID", mock.Anything, 7).Return(&user.User{
			ID: 7, Name: "Jane", Photo: "photo.jpg",
		}, nil)
		mockRepo.On("Create", mock.Anything, 7, "Jane", "photo.jpg", req).Return(&Review{
			ID: 1, ReviewerID: 7, ReviewerName: "Jane", Rating: 5,
		}, nil)

		service := NewService(mockRepo, mockUsers)
		review, err := service.CreateReview(context.Background(), 7, req)

		assert.NoError(t, err)
		assert.Equal(t, "Jane", review.ReviewerName)
		assert.False(t, review.Verified)
		mockRepo.AssertExpectations(t)
		mockUsers.AssertExpectations(t)
	})

	t.Run("unknown reviewer fails without inserting", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockUsers := new(MockUserService)
		mockUsers.On("GetByID", mock.Anything, 7).Return(nil, user.ErrUserNotFound)

		service := NewService(mockRepo, mockUsers)
		review, err := service.CreateReview(context.Background(), 7, CreateReviewRequest{Rating: 4, Body: "ok"})

		assert.Equal(t, user.ErrUserNotFound, err)
		assert.Nil(t, review)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_VerifyReview(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("SetVerified", mock.Anything, 1, true).Return(&Review{ID: 1, Verified: true}, nil)

	service := NewService(mockRepo, new(MockUserService))
	review, err := service.VerifyReview(context.Background(), 1, true)

	assert.NoError(t, err)
	assert.True(t, review.Verified)
	mockRepo.AssertExpectations(t)
}
