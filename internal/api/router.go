package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/meenakannan/portfolio-api/internal/api/handlers"
	"github.com/meenakannan/portfolio-api/internal/api/httpx"
	"github.com/meenakannan/portfolio-api/internal/config"
	"github.com/meenakannan/portfolio-api/internal/metrics"
	"github.com/meenakannan/portfolio-api/internal/middleware"
	"github.com/meenakannan/portfolio-api/internal/services"
)

func NewRouter(cfg config.Config, ps *services.ProjectService, bs *services.BlogService, cs *services.ContactService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover(cfg.Env), middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Handle("/metrics", metrics.Handler())

	projects := handlers.NewProjectsHandler(ps)
	blog := handlers.NewBlogHandler(bs)
	contact := handlers.NewContactHandler(cs)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health(cfg.Env))

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", projects.List)
			r.Post("/", projects.Create)
			r.Get("/{id}", projects.Get)
			r.Put("/{id}", projects.Update)
			r.Delete("/{id}", projects.Delete)
		})

		r.Route("/blog", func(r chi.Router) {
			r.Get("/", blog.List)
			r.Post("/", blog.Create)
			r.Get("/{slug}", blog.GetBySlug)
			r.Put("/{id}", blog.Update)
			r.Delete("/{id}", blog.Delete)
			r.Post("/{id}/like", blog.Like)
		})

		r.Route("/contact", func(r chi.Router) {
			r.Post("/", contact.Create)
			r.Get("/", contact.List)
			r.Patch("/{id}/status", contact.UpdateStatus)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteError(w, http.StatusNotFound, "Route not found")
	})

	return r
}
