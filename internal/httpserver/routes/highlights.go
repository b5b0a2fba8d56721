package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/selahapp/selah/internal/httpserver/deps"
	"github.com/selahapp/selah/internal/httpserver/handlers"
)

func init() { Register(registerHighlights) }

func registerHighlights(r chi.Router, d deps.Deps) {
	r.Route("/api/highlights", func(r chi.Router) {
		r.Get("/", handlers.ListHighlights(d))
		r.Post("/", handlers.AddHighlight(d))
		r.Delete("/{id}", handlers.RemoveHighlight(d))
	})
}
