package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/baharkarakas/points-backend/internal/api/handlers"
	"github.com/baharkarakas/points-backend/internal/api/httpx"
	"github.com/baharkarakas/points-backend/internal/config"
	"github.com/baharkarakas/points-backend/internal/metrics"
	"github.com/baharkarakas/points-backend/internal/middleware"
)

func NewRouter(cfg config.Config, log *slog.Logger, ps handlers.PointService) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.NewStructuredLogger(log),
		middleware.Recover,
		middleware.HTTPMetrics,
		middleware.RateLimit(cfg.RateRPS),
	)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteError(w, http.StatusNotFound, "not_found", "route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed", nil)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	r.Route("/point", handlers.NewPointsHandler(ps, log).Routes)

	return r
}
