package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/points-backend/internal/api/httpx"
	"github.com/baharkarakas/points-backend/internal/api/validate"
	"github.com/baharkarakas/points-backend/internal/middleware"
	"github.com/baharkarakas/points-backend/internal/models"
	"github.com/baharkarakas/points-backend/internal/services"
)

const maxBodyBytes = 1 << 10

// PointService is what the point routes need from the service layer.
type PointService interface {
	Charge(ctx context.Context, userID, amount int64) (models.UserPoint, error)
	Use(ctx context.Context, userID, amount int64) (models.UserPoint, error)
	GetPoint(ctx context.Context, userID int64) (models.UserPoint, error)
	GetHistories(ctx context.Context, userID int64) ([]models.PointHistory, error)
}

var _ PointService = (*services.PointService)(nil)

type PointsHandler struct {
	svc PointService
	log *slog.Logger
}

func NewPointsHandler(svc PointService, log *slog.Logger) *PointsHandler {
	return &PointsHandler{svc: svc, log: log}
}

// Routes mounts the handler under /point.
func (h *PointsHandler) Routes(r chi.Router) {
	r.Get("/{id}", h.GetPoint)
	r.Get("/{id}/histories", h.GetHistories)
	r.Patch("/{id}/charge", h.Charge)
	r.Patch("/{id}/use", h.Use)
}

func (h *PointsHandler) GetPoint(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}
	up, err := h.svc.GetPoint(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, up)
}

func (h *PointsHandler) GetHistories(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}
	hs, err := h.svc.GetHistories(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, hs)
}

func (h *PointsHandler) Charge(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.svc.Charge)
}

func (h *PointsHandler) Use(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.svc.Use)
}

func (h *PointsHandler) mutate(w http.ResponseWriter, r *http.Request, op func(context.Context, int64, int64) (models.UserPoint, error)) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		httpx.WriteInvalid(w, validate.Errs{{Field: "body", Msg: "unreadable"}})
		return
	}
	amount, ef := validate.Amount(body)
	if err := validate.Collect(ef); err != nil {
		httpx.WriteInvalid(w, err)
		return
	}

	up, err := op(r.Context(), id, amount)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, up)
}

func (h *PointsHandler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ef := validate.PositiveInt("id", chi.URLParam(r, "id"))
	if err := validate.Collect(ef); err != nil {
		httpx.WriteInvalid(w, err)
		return 0, false
	}
	return id, true
}

func (h *PointsHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrNoHistory):
		httpx.WriteError(w, http.StatusNotFound, services.Reason(err), err.Error(), nil)
	case services.IsRejection(err):
		httpx.WriteError(w, http.StatusUnprocessableEntity, services.Reason(err), err.Error(), nil)
	default:
		h.log.Error("point request failed",
			"request_id", middleware.RequestIDFrom(r.Context()),
			"path", r.URL.Path,
			"err", err,
		)
		httpx.WriteError(w, http.StatusInternalServerError, httpx.CodeInternal, "internal error", nil)
	}
}
