package handlers_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/baharkarakas/points-backend/internal/api/handlers"
	"github.com/baharkarakas/points-backend/internal/models"
)

type mockPointService struct{ mock.Mock }

func (m *mockPointService) Charge(ctx context.Context, userID, amount int64) (models.UserPoint, error) {
	args := m.Called(ctx, userID, amount)
	return args.Get(0).(models.UserPoint), args.Error(1)
}

func (m *mockPointService) Use(ctx context.Context, userID, amount int64) (models.UserPoint, error) {
	args := m.Called(ctx, userID, amount)
	return args.Get(0).(models.UserPoint), args.Error(1)
}

func (m *mockPointService) GetPoint(ctx context.Context, userID int64) (models.UserPoint, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(models.UserPoint), args.Error(1)
}

func (m *mockPointService) GetHistories(ctx context.Context, userID int64) ([]models.PointHistory, error) {
	args := m.Called(ctx, userID)
	hs, _ := args.Get(0).([]models.PointHistory)
	return hs, args.Error(1)
}

func serve(h *handlers.PointsHandler, method, path, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Route("/point", h.Routes)
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestCharge(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Success", func(t *testing.T) {
		svc := new(mockPointService)
		svc.On("Charge", mock.Anything, int64(3), int64(250)).Return(models.UserPoint{ID: 3, Point: 250}, nil)

		rr := serve(handlers.NewPointsHandler(svc, log), http.MethodPatch, "/point/3/charge", `{"amount": 250}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"id":3,"point":250,"updateMillis":0}`, rr.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		svc := new(mockPointService)
		svc.On("Charge", mock.Anything, int64(3), int64(250)).Return(models.UserPoint{}, errors.New("db down"))

		rr := serve(handlers.NewPointsHandler(svc, log), http.MethodPatch, "/point/3/charge", "250")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), "internal_error")
		assert.NotContains(t, rr.Body.String(), "db down")
		svc.AssertExpectations(t)
	})

	t.Run("Invalid Amount", func(t *testing.T) {
		svc := new(mockPointService)

		rr := serve(handlers.NewPointsHandler(svc, log), http.MethodPatch, "/point/3/charge", "abc")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		svc.AssertNotCalled(t, "Charge", mock.Anything, mock.Anything, mock.Anything)
	})
}
