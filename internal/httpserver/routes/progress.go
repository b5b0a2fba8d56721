package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/selahapp/selah/internal/httpserver/deps"
	"github.com/selahapp/selah/internal/httpserver/handlers"
)

func init() { Register(registerProgress) }

func registerProgress(r chi.Router, d deps.Deps) {
	r.Get("/api/plans", handlers.ListPlans(d))
	r.Route("/api/progress/{plan}", func(r chi.Router) {
		r.Get("/", handlers.GetProgress(d))
		r.Post("/chapters", handlers.MarkChapter(d))
		r.Post("/finish", handlers.FinishPlan(d))
	})
}
