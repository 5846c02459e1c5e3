// Package http assembles the tracker's local API. Every ledger route sits
// behind the session middleware; only login is open.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/stash/internal/http/bills"
	"github.com/MrJamesThe3rd/stash/internal/http/goals"
	sessionapi "github.com/MrJamesThe3rd/stash/internal/http/session"
	"github.com/MrJamesThe3rd/stash/internal/http/spending"
	"github.com/MrJamesThe3rd/stash/internal/http/unallocated"
	"github.com/MrJamesThe3rd/stash/internal/session"
)

func New(
	sessions *session.Manager,
	sessionV1 *sessionapi.Handler,
	goalsV1 *goals.Handler,
	spendingV1 *spending.Handler,
	billsV1 *bills.Handler,
	unallocatedV1 *unallocated.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/session", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			sessionV1.Routes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(sessions.Middleware)

			r.Route("/goals", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				goalsV1.Routes(r)
			})

			r.Route("/spending", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				spendingV1.Routes(r)
			})

			r.Route("/bills", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				billsV1.Routes(r)
			})

			r.Route("/unallocated", func(r chi.Router) {
				unallocatedV1.Routes(r)
			})
		})
	})

	return router
}
