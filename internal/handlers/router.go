package handlers

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes mounts the full HTTP surface.
func (h *Handler) Routes(allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/players", h.GetPlayers)
		r.Post("/players", h.CreatePlayer)

		r.Post("/matches", h.SubmitMatch)
		r.Get("/matches", h.GetMatches)

		r.Post("/teams/balance", h.BalanceTeams)

		r.Route("/stats", func(r chi.Router) {
			r.Get("/rivalries", h.GetRivalries)
			r.Get("/synergies", h.GetSynergies)
			r.Get("/trend", h.GetTrend)
			r.Get("/summary", h.GetSummary)
		})
	})

	return r
}
