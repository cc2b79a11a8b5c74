package profile

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the profile router. Every operation requires a session.
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)
	r.Get("/me", h.Get)
	r.Put("/me", h.Update)

	return r
}
