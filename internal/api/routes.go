package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the JSON endpoints. apiMW wraps only the /api group.
func RegisterRoutes(mux chi.Router, h *Handlers, apiMW ...func(http.Handler) http.Handler) {
	mux.Get("/healthz", h.Health)
	mux.Get("/version", h.Version)

	mux.Route("/api", func(r chi.Router) {
		r.Use(apiMW...)
		r.Post("/chat", h.Chat)
		r.Get("/models", h.ListModels)
	})
}
