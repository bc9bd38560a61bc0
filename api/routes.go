package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes registers the project API. There is no authentication layer.
func setupRoutes(r chi.Router, handlers *routeHandlers, requestLogging func(http.Handler) http.Handler) {
	r.Get("/healthz", handlers.healthHandler.health())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/projects", func(r chi.Router) {
		r.Use(requestLogging)

		r.Get("/", handlers.projectHandler.getAllProjects())
		r.Post("/", handlers.projectHandler.createProject())
		r.Get("/slug/{slug}", handlers.projectHandler.getProjectBySlug())
		r.Get("/{projectID}", handlers.projectHandler.getProject())
		r.Put("/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/{projectID}", handlers.projectHandler.deleteProject())
	})
}
