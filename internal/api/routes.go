package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zapponejosh/prophecy-cycles/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET  /health
//	GET  /metrics                          (X-API-Key when configured)
//	GET  /api/v1/cycles                    ?tradition=X (repeatable)
//	GET  /api/v1/cycles/{id}
//	GET  /api/v1/cycles/year/{year}
//	GET  /api/v1/traditions
//	GET  /api/v1/traditions/{id}
//	GET  /api/v1/timeline                  ?zoom=N&step=K
//	POST /api/v1/timeline/positions        ?zoom=N&step=K
//	GET  /api/v1/timeline/related/{year}
//	GET  /api/v1/convergence
//	GET  /api/v1/comparison                ?tradition=X (repeatable)
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RequestIDMiddleware(),
		RecoveryMiddleware(),
		LoggingMiddleware(logger),
		CORSMiddleware(),
		MetricsMiddleware(),
	)

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	// ==========================================================================
	// Operational routes
	// ==========================================================================
	r.Get("/health", handlers.HealthCheck)
	r.With(AuthMiddleware(cfg)).Handle("/metrics", promhttp.Handler())

	// ==========================================================================
	// Catalog routes (public, read-only)
	// ==========================================================================
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/cycles", func(r chi.Router) {
			r.Get("/", handlers.ListCycles)
			r.Get("/year/{year}", handlers.GetCyclesAtYear)
			r.Get("/{id}", handlers.GetCycle)
		})

		r.Route("/traditions", func(r chi.Router) {
			r.Get("/", handlers.ListTraditions)
			r.Get("/{id}", handlers.GetTradition)
		})

		r.Route("/timeline", func(r chi.Router) {
			r.Get("/", handlers.GetTimeline)
			r.Post("/positions", handlers.ComputePositions)
			r.Get("/related/{year}", handlers.GetRelatedCycles)
		})

		r.Get("/convergence", handlers.GetConvergence)
		r.Get("/comparison", handlers.GetComparison)
	})

	return r
}
