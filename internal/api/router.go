package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/HelioOssola/cep-distance/internal/api/handlers"
	"github.com/HelioOssola/cep-distance/internal/platform/metrics"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root: handlers stay unaware of
// concrete adapters.
func NewRouter(h *handlers.RecordHandler, reg *metrics.Registry) http.Handler {
	r := chi.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(observeMiddleware(reg))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", handlers.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/distance-by-postal-code", h.Create)

	r.Route("/records", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/export", h.Export)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.UpdateNotes)
		r.Delete("/{id}", h.Delete)
	})

	return r
}
