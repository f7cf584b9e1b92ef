package server

import (
	"github.com/go-chi/chi/v5"

	"github.com/pokeknower/pokeknower/internal/server/handlers"
)

// registerRoutes registers all HTTP routes.
func (s *Server) registerRoutes(api *handlers.API, health *handlers.HealthManager) {
	s.router.Get("/health", health.HealthHandler)
	s.router.Get("/health/live", health.LivenessHandler)
	s.router.Get("/health/ready", health.ReadinessHandler)

	s.router.Get("/version", handlers.VersionHandler)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/search", api.Search)
		r.Get("/pokemon/{identifier}", api.Pokemon)
		r.Get("/types", api.TypesHandler)
		r.Get("/random", api.Random)
		r.Get("/pokemon-of-the-day", api.OfTheDay)
		r.Get("/stats", api.Stats)
		r.Post("/compare", api.Compare)
		r.Post("/predict", api.Predict)

		r.Get("/quiz/question", api.QuizQuestion)
		r.Post("/quiz/submit", api.QuizSubmit)
		r.Get("/quiz/leaderboard", api.QuizLeaderboard)
	})
}
