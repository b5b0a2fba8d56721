package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/selahapp/selah/internal/httpserver/deps"
	"github.com/selahapp/selah/internal/httpserver/handlers"
)

func init() { Register(registerSettings) }

func registerSettings(r chi.Router, d deps.Deps) {
	r.Route("/api/settings", func(r chi.Router) {
		r.Get("/", handlers.GetSettings(d))
		r.Put("/", handlers.SaveSettings(d))
	})
}
