package user

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockService mocks Service for handler tests. Methods the handlers under
// test never reach are stubbed out.
type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, req RegisterRequest) (*User, string, string, error) {
	return nil, "", "", nil
}

func (m *MockService) Login(ctx context.Context, req LoginRequest) (*User, string, string, error) {
	return nil, "", "", nil
}

func (m *MockService) GetByID(ctx context.Context, userID int) (*User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockService) RefreshToken(ctx context.Context, refreshToken string) (string, *User, error) {
	return "", nil, nil
}

func (m *MockService) ForgotPassword(ctx context.Context, userEmail string) error {
	return nil
}

func (m *MockService) ApplyForTrainer(ctx context.Context, userID int, req ApplyTrainerRequest) (*User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockService) ApproveApplication(ctx context.Context, userID int) (*User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockService) RejectApplication(ctx context.Context, userID int, feedback string) (*User, error) {
	args := m.Called(ctx, userID, feedback)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockService) ListUsers(ctx context.Context, limit, offset int) ([]User, error) {
	return nil, nil
}

func (m *MockService) DeleteUser(ctx context.Context, userID int) error {
	return nil
}

func (m *MockService) CreateSlot(ctx context.Context, trainerID int, req CreateSlotRequest) (*TrainerSlot, error) {
	return nil, nil
}

func (m *MockService) GetTrainerSlots(ctx context.Context, trainerID int) ([]TrainerSlot, error) {
	return nil, nil
}

func (m *MockService) DeleteSlot(ctx context.Context, trainerID, slotID int) error {
	return nil
}

func setupUserRouter(service Service, middleware ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(service)

	r := gin.New()
	r.Use(middleware...)
	r.POST("/users/apply", handler.ApplyForTrainer)
	r.POST("/admin/users/:id/approve", handler.ApproveApplication)
	r.POST("/admin/users/:id/reject", handler.RejectApplication)
	return r
}

func asMember(userID int) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("user_email", "member@example.com")
		c.Set("user_role", RoleMember)
	}
}

func doJSON(r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_ApplyForTrainer(t *testing.T) {
	applyReq := ApplyTrainerRequest{Skills: []string{"yoga", "pilates"}}

	t.Run("moves member into pending", func(t *testing.T) {
		service := new(MockService)
		service.On("ApplyForTrainer", mock.Anything, 5, applyReq).Return(&User{
			ID: 5, Role: RoleMember, Status: StatusPending,
		}, nil)

		w := doJSON(setupUserRouter(service, asMember(5)), "/users/apply", applyReq)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), StatusPending)
		service.AssertExpectations(t)
	})

	t.Run("pending application conflicts on reapply", func(t *testing.T) {
		service := new(MockService)
		service.On("ApplyForTrainer", mock.Anything, 5, applyReq).Return(nil, ErrApplicationPending)

		w := doJSON(setupUserRouter(service, asMember(5)), "/users/apply", applyReq)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "already pending")
	})

	t.Run("existing trainer conflicts", func(t *testing.T) {
		service := new(MockService)
		service.On("ApplyForTrainer", mock.Anything, 5, applyReq).Return(nil, ErrAlreadyTrainer)

		w := doJSON(setupUserRouter(service, asMember(5)), "/users/apply", applyReq)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unauthenticated request rejected", func(t *testing.T) {
		service := new(MockService)

		w := doJSON(setupUserRouter(service), "/users/apply", applyReq)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		service.AssertNotCalled(t, "ApplyForTrainer", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty skills fail binding", func(t *testing.T) {
		service := new(MockService)

		w := doJSON(setupUserRouter(service, asMember(5)), "/users/apply", ApplyTrainerRequest{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		service.AssertNotCalled(t, "ApplyForTrainer", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHandler_ApproveApplication(t *testing.T) {
	t.Run("promotes pending applicant", func(t *testing.T) {
		service := new(MockService)
		service.On("ApproveApplication", mock.Anything, 5).Return(&User{
			ID: 5, Role: RoleTrainer, Status: StatusActive,
		}, nil)

		w := doJSON(setupUserRouter(service), "/admin/users/5/approve", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		service.AssertExpectations(t)
	})

	t.Run("no pending application conflicts", func(t *testing.T) {
		service := new(MockService)
		service.On("ApproveApplication", mock.Anything, 5).Return(nil, ErrNotPending)

		w := doJSON(setupUserRouter(service), "/admin/users/5/approve", nil)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unknown user returns 404", func(t *testing.T) {
		service := new(MockService)
		service.On("ApproveApplication", mock.Anything, 99).Return(nil, ErrUserNotFound)

		w := doJSON(setupUserRouter(service), "/admin/users/99/approve", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_RejectApplication(t *testing.T) {
	t.Run("rejects with feedback", func(t *testing.T) {
		service := new(MockService)
		service.On("RejectApplication", mock.Anything, 5, "Not enough experience").Return(&User{
			ID: 5, Role: RoleMember, Status: StatusRejected, Feedback: "Not enough experience",
		}, nil)

		w := doJSON(setupUserRouter(service), "/admin/users/5/reject",
			RejectRequest{Feedback: "Not enough experience"})

		assert.Equal(t, http.StatusOK, w.Code)
		service.AssertExpectations(t)
	})

	t.Run("no pending application conflicts", func(t *testing.T) {
		service := new(MockService)
		service.On("RejectApplication", mock.Anything, 5, "nope").Return(nil, ErrNotPending)

		w := doJSON(setupUserRouter(service), "/admin/users/5/reject", RejectRequest{Feedback: "nope"})

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("missing feedback fails binding", func(t *testing.T) {
		service := new(MockService)

		w := doJSON(setupUserRouter(service), "/admin/users/5/reject", RejectRequest{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		service.AssertNotCalled(t, "RejectApplication", mock.Anything, mock.Anything, mock.Anything)
	})
}
