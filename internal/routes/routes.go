package routes

import (
	"log/slog"
	"time"

	"github.com/CodMatt/ascenda-hotel-sub000/internal/config"
	handlers "github.com/CodMatt/ascenda-hotel-sub000/internal/http"
	mid "github.com/CodMatt/ascenda-hotel-sub000/internal/middleware"
	"github.com/CodMatt/ascenda-hotel-sub000/internal/obs"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func GetRoutes(h *handlers.Handler, metrics *obs.Metrics, logger *slog.Logger, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()
	// Useful built-in middlewares
	r.Use(middleware.RealIP)    // proper client IP extraction
	r.Use(middleware.RequestID) // sets request ID header
	r.Use(middleware.Recoverer) // built-in recoverer to avoid panics taking server down

	// our custom middlewares: cors, metrics, logging & timeout
	r.Use(mid.CORSHandler(cfg.AllowedOrigins))
	r.Use(mid.MetricsMiddleware(metrics))
	r.Use(mid.LoggingMiddleware(logger))
	r.Use(mid.TimeoutMiddleware(requestBudget(cfg)))

	// endpoints
	r.Get("/search", h.Search)
	r.Get("/healthz", h.Healthz)
	r.Get("/metrics", metrics.Handler().ServeHTTP)

	return r
}

// requestBudget leaves headroom above the worst-case polling window so a
// misconfigured timeout does not cut off a still-valid search.
func requestBudget(cfg *config.Config) time.Duration {
	worst := time.Duration(cfg.PollMaxAttempts)*(cfg.PollDelay+cfg.UpstreamTimeout) + cfg.UpstreamTimeout
	if cfg.RequestTimeout > worst {
		return cfg.RequestTimeout
	}
	return worst
}
