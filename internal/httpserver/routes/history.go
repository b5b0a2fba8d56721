package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/selahapp/selah/internal/httpserver/deps"
	"github.com/selahapp/selah/internal/httpserver/handlers"
)

func init() { Register(registerHistory) }

func registerHistory(r chi.Router, d deps.Deps) {
	r.Route("/api/search-history", func(r chi.Router) {
		r.Get("/", handlers.ListSearchHistory(d))
		r.Post("/", handlers.AddSearchQuery(d))
		r.Delete("/", handlers.ClearSearchHistory(d))
	})
}
