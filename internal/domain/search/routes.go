package search

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the search session router. Searching is public, as venue
// browsing is.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/sessions", h.CreateSession)
	r.Get("/sessions/{id}", h.GetSnapshot)
	r.Delete("/sessions/{id}", h.DeleteSession)

	r.Put("/sessions/{id}/term", h.SetTerm)
	r.Put("/sessions/{id}/price", h.SetPrice)
	r.Put("/sessions/{id}/page", h.SetPage)
	r.Post("/sessions/{id}/clear", h.ClearSearch)

	r.Get("/sessions/{id}/ws", h.Stream)

	return r
}
