package class

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

// MockService is a mock implementation of Service
type MockService struct {
	mock.Mock
}

func (m *MockService) CreateClass(ctx context.Context, req CreateClassRequest) (*Class, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Class), args.Error(1)
}

func (m *MockService) GetClass(ctx context.Context, id int) (*Class, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Class), args.Error(1)
}

func (m *MockService) ListClasses(ctx context.Context, filter ListFilter) ([]ClassWithAvailability, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ClassWithAvailability), args.Error(1)
}

func (m *MockService) UpdateClass(ctx context.Context, id int, req UpdateClassRequest) (*Class, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Class), args.Error(1)
}

func (m *MockService) DeleteClass(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockService) CheckCapacity(ctx context.Context, id, requested int) error {
	args := m.Called(ctx, id, requested)
	return args.Error(0)
}

func (m *MockService) BookClass(ctx context.Context, id int) (*Class, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Class), args.Error(1)
}

func setupClassRouter(service Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(service)

	r := gin.New()
	r.PATCH("/classes/:id/book", handler.BookClass)
	r.PUT("/admin/classes/:id", handler.UpdateClass)
	return r
}

func updateReq() UpdateClassRequest {
	return UpdateClassRequest{
		Name:        "Power Yoga",
		PriceCents:  4999,
		MaxCapacity: 5,
		Difficulty:  "beginner",
		Category:    "yoga",
	}
}

func TestHandler_BookClass(t *testing.T) {
	t.Run("booking increments the counter", func(t *testing.T) {
		service := new(MockService)
		service.On("BookClass", mock.Anything, 1).Return(&Class{ID: 1, BookedCount: 4, MaxCapacity: 10}, nil)

		r := setupClassRouter(service)
		req := httptest.NewRequest(http.MethodPatch, "/classes/1/book", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		service.AssertExpectations(t)
	})

	t.Run("full class rejected as bad request", func(t *testing.T) {
		service := new(MockService)
		service.On("BookClass", mock.Anything, 1).Return(nil, ErrCapacityExceeded)

		r := setupClassRouter(service)
		req := httptest.NewRequest(http.MethodPatch, "/classes/1/book", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "capacity")
	})

	t.Run("unknown class returns 404", func(t *testing.T) {
		service := new(MockService)
		service.On("BookClass", mock.Anything, 99).Return(nil, ErrClassNotFound)

		r := setupClassRouter(service)
		req := httptest.NewRequest(http.MethodPatch, "/classes/99/book", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_UpdateClass(t *testing.T) {
	t.Run("updates class fields", func(t *testing.T) {
		service := new(MockService)
		service.On("UpdateClass", mock.Anything, 1, updateReq()).Return(&Class{
			ID: 1, Name: "Power Yoga", MaxCapacity: 5,
		}, nil)

		body, _ := json.Marshal(updateReq())
		r := setupClassRouter(service)
		req := httptest.NewRequest(http.MethodPut, "/admin/classes/1", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		service.AssertExpectations(t)
	})

	t.Run("capacity below booked count rejected as bad request", func(t *testing.T) {
		service := new(MockService)
		service.On("UpdateClass", mock.Anything, 1, updateReq()).Return(nil, ErrCapacityBelowBooked)

		body, _ := json.Marshal(updateReq())
		r := setupClassRouter(service)
		req := httptest.NewRequest(http.MethodPut, "/admin/classes/1", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "booked count")
	})

	t.Run("unknown class returns 404", func(t *testing.T) {
		service := new(MockService)
		service.On("UpdateClass", mock.Anything, 99, updateReq()).Return(nil, ErrClassNotFound)

		body, _ := json.Marshal(updateReq())
		r := setupClassRouter(service)
		req := httptest.NewRequest(http.MethodPut, "/admin/classes/99", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
