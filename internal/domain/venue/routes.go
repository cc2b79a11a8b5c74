package venue

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/holidaze/holidaze-api/internal/middleware"
)

// Routes returns the venue router. Browsing is public; mutations require a
// venue manager session. The availability handler is mounted here so the
// calendar lives under the venue it belongs to.
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler, availability http.HandlerFunc) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Get("/{id}/availability", availability)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(middleware.RequireVenueManager())
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	return r
}
