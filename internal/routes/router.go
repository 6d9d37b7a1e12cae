package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"openskies/airfield/internal/api"
	"openskies/airfield/internal/logging"
	"openskies/airfield/internal/middleware"
)

// RegisterRoutes assembles the chi router with the global middleware
// stack and every API route.
func RegisterRoutes(deps *api.Dependencies) http.Handler {

	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RateLimitMiddleware)
	r.Use(middleware.MetricsMiddleware(deps.Metrics))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthCheck", api.HealthCheckHandler(deps.SqlxDB, deps.Redis, deps.Airports, deps.UpSince))

	RegisterAPIRoutes(r, deps)

	logging.Info("Router initialized")

	return r
}
