package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/daylist/daylist-api/internal/api/middleware"
	"github.com/daylist/daylist-api/internal/api/shared"
)

// setupRouter builds the chi router: public auth endpoints, the JWT-protected
// task endpoints, and a health check.
func (app *application) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.TraceMiddleware)
	r.Use(chimiddleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", app.authHandler.Register)
			r.Post("/login", app.authHandler.Login)
			r.Post("/refresh", app.authHandler.RefreshToken)
		})

		r.Group(func(r chi.Router) {
			r.Use(app.authMiddleware.Authenticate)

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", app.taskHandler.ListTasks)
				r.Post("/", app.taskHandler.CreateTask)
				r.Put("/{id}", app.taskHandler.UpdateTask)
				r.Post("/{id}/complete", app.taskHandler.CompleteTask)
				r.Delete("/{id}", app.taskHandler.DeleteTask)
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}
