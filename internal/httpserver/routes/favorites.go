package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/selahapp/selah/internal/httpserver/deps"
	"github.com/selahapp/selah/internal/httpserver/handlers"
)

func init() { Register(registerFavorites) }

func registerFavorites(r chi.Router, d deps.Deps) {
	r.Route("/api/favorites", func(r chi.Router) {
		r.Get("/", handlers.ListFavorites(d))
		r.Post("/", handlers.AddFavorite(d))
		r.Post("/toggle", handlers.ToggleFavorite(d))
		r.Delete("/{book}/{chapter}/{verse}", handlers.RemoveFavorite(d))
	})
}
