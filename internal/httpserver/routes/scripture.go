package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/selahapp/selah/internal/httpserver/deps"
	"github.com/selahapp/selah/internal/httpserver/handlers"
)

func init() { Register(registerScripture) }

func registerScripture(r chi.Router, d deps.Deps) {
	r.Get("/api/scripture/{book}/{chapter}", handlers.GetChapter(d))
}
