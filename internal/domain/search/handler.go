package search

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/holidaze/holidaze-api/internal/pkg/noroff"
	"github.com/holidaze/holidaze-api/internal/pkg/response"
	"github.com/holidaze/holidaze-api/internal/pkg/validator"
)

// VenueLister seeds a new session with the full venue list.
type VenueLister interface {
	List(ctx context.Context) ([]noroff.Venue, error)
}

// Config holds the engine tuning for new sessions.
type Config struct {
	Debounce time.Duration
	Timeout  time.Duration
}

// Handler handles search session HTTP requests.
type Handler struct {
	store    *Store
	venues   VenueLister
	searcher Searcher
	cfg      Config
	upgrader websocket.Upgrader
}

// NewHandler creates a search handler.
func NewHandler(store *Store, venues VenueLister, searcher Searcher, cfg Config, allowedOrigins []string) *Handler {
	origins := map[string]struct{}{}
	for _, o := range allowedOrigins {
		origins[o] = struct{}{}
	}

	return &Handler{
		store:    store,
		venues:   venues,
		searcher: searcher,
		cfg:      cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				_, ok := origins[origin]
				return ok
			},
		},
	}
}

// CreateSession handles POST /api/v1/search/sessions
// Seeds a new engine with the full venue list (the "page mount" fetch).
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	venues, err := h.venues.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("search session seed failed")
		response.BadGateway(w, "Could not load venues")
		return
	}

	engine := NewEngine(h.searcher, h.cfg.Debounce, h.cfg.Timeout)
	engine.SetAllVenues(venues)
	id := h.store.Create(engine)

	response.Created(w, CreateSessionResponse{
		SessionID: id.String(),
		Snapshot:  engine.Snapshot(),
	})
}

// GetSnapshot handles GET /api/v1/search/sessions/{id}
func (h *Handler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	engine, ok := h.engineFor(w, r)
	if !ok {
		return
	}

	snap := engine.Snapshot()
	response.WithMeta(w, snap, snapshotMeta(snap))
}

// DeleteSession handles DELETE /api/v1/search/sessions/{id}
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid session ID")
		return
	}

	if err := h.store.Delete(id); err != nil {
		response.NotFound(w, "Search session not found")
		return
	}

	response.NoContent(w)
}

// SetTerm handles PUT /api/v1/search/sessions/{id}/term
func (h *Handler) SetTerm(w http.ResponseWriter, r *http.Request) {
	engine, ok := h.engineFor(w, r)
	if !ok {
		return
	}

	var req TermRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	engine.SetSearchTerm(req.Term)
	response.OK(w, engine.Snapshot())
}

// SetPrice handles PUT /api/v1/search/sessions/{id}/price
func (h *Handler) SetPrice(w http.ResponseWriter, r *http.Request) {
	engine, ok := h.engineFor(w, r)
	if !ok {
		return
	}

	var req PriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	engine.SetFilterPrice(req.MaxPrice)
	response.OK(w, engine.Snapshot())
}

// SetPage handles PUT /api/v1/search/sessions/{id}/page
// Out-of-range pages are clamped, never rejected.
func (h *Handler) SetPage(w http.ResponseWriter, r *http.Request) {
	engine, ok := h.engineFor(w, r)
	if !ok {
		return
	}

	var req PageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	scrolled := engine.GoToPage(req.Page)
	response.OK(w, PageResponse{
		Snapshot:    engine.Snapshot(),
		ScrollToTop: scrolled,
	})
}

// ClearSearch handles POST /api/v1/search/sessions/{id}/clear
func (h *Handler) ClearSearch(w http.ResponseWriter, r *http.Request) {
	engine, ok := h.engineFor(w, r)
	if !ok {
		return
	}

	engine.ClearSearch()
	response.OK(w, engine.Snapshot())
}

// Stream handles GET /api/v1/search/sessions/{id}/ws
// Streams a snapshot on every engine state change so the client re-renders
// the way the reactive web UI did.
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid session ID")
		return
	}
	engine, err := h.store.Get(id)
	if err != nil {
		response.NotFound(w, "Search session not found")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	snapshots, unsubscribe := engine.Subscribe()
	defer unsubscribe()

	// Reader: only used to observe the close.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	defer conn.Close()

	// Send the current state first so the client starts consistent.
	if err := conn.WriteJSON(engine.Snapshot()); err != nil {
		return
	}

	ping := time.NewTicker(30 * time.Second)
	defer ping.Stop()

	for {
		select {
		case <-done:
			return
		case snap, ok := <-snapshots:
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteJSON(snap); err != nil {
				return
			}
		case <-ping.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// engineFor resolves the session ID path param, writing the error response
// on failure.
func (h *Handler) engineFor(w http.ResponseWriter, r *http.Request) (*Engine, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid session ID")
		return nil, false
	}

	engine, err := h.store.Get(id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			response.NotFound(w, "Search session not found")
		} else {
			response.InternalError(w)
		}
		return nil, false
	}
	return engine, true
}

func snapshotMeta(snap Snapshot) response.Meta {
	return response.Meta{
		Total:        snap.ResultCount,
		Page:         snap.Page,
		PerPage:      PageSize,
		Pages:        snap.TotalPages,
		HasNext:      snap.Page < snap.TotalPages,
		HasPrev:      snap.Page > 1,
		ActiveSearch: snap.ActiveSearch,
	}
}
