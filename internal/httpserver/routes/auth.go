package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/selahapp/selah/internal/httpserver/deps"
	"github.com/selahapp/selah/internal/httpserver/handlers"
)

func init() { Register(registerAuth) }

func registerAuth(r chi.Router, d deps.Deps) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", handlers.SignUp(d))
		r.Post("/signin", handlers.SignIn(d))
		r.Post("/signout", handlers.SignOut(d))
		r.Get("/me", handlers.Me(d))
	})
}
