package routes

import (
	"github.com/go-chi/chi/v5"

	"openskies/airfield/internal/api"
	"openskies/airfield/internal/middleware"
)

// RegisterAPIRoutes registers the airport, user, and session routes.
// Airport routes are public, matching the original surface; only
// /login is gated, by basic auth.
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies) {

	// Airport collection
	r.Get("/airports", api.ListAirportsHandler(deps.Airports))
	r.Get("/airports/pages", api.ListAirportPageHandler(deps.Airports))
	r.Get("/airports/{icao}", api.GetAirportHandler(deps.Airports))
	r.Post("/airports", api.CreateAirportHandler(deps.Airports, deps.Metrics))
	r.Put("/airports/{icao}", api.UpdateAirportHandler(deps.Airports, deps.Metrics))
	r.Delete("/airports/{icao}", api.DeleteAirportHandler(deps.Airports, deps.Metrics))

	// Sessions
	r.Group(func(login chi.Router) {
		login.Use(middleware.BasicAuthMiddleware(deps.Authorizer, deps.LoginEvents, deps.Metrics))
		login.Post("/login", api.LoginHandler(deps.Sessions, deps.Signer, deps.Metrics))
	})
	r.Get("/logout", api.LogoutHandler(deps.Sessions, deps.Signer))

	// Users
	r.Post("/users", api.CreateUserHandler(deps.Users))
	r.Get("/users/{id}", api.GetUserHandler(deps.Users))
}
