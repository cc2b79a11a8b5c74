package venue

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/holidaze/holidaze-api/internal/middleware"
	"github.com/holidaze/holidaze-api/internal/pkg/noroff"
	"github.com/holidaze/holidaze-api/internal/pkg/response"
	"github.com/holidaze/holidaze-api/internal/pkg/validator"
)

// Handler handles venue HTTP requests.
type Handler struct {
	service *Service
}

// NewHandler creates a venue handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/v1/venues
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	venues, err := h.service.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("venue list failed")
		response.BadGateway(w, "Could not load venues")
		return
	}

	response.OK(w, venues)
}

// GetByID handles GET /api/v1/venues/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	v, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrVenueNotFound) {
			response.NotFound(w, "Venue not found")
			return
		}
		log.Error().Err(err).Str("venue_id", id).Msg("venue fetch failed")
		response.BadGateway(w, "Could not load venue")
		return
	}

	response.OK(w, v)
}

// Create handles POST /api/v1/venues
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if sess == nil {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	var req CreateVenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	v, err := h.service.Create(r.Context(), sess.UpstreamToken, req)
	if err != nil {
		h.writeUpstreamError(w, err, "venue create failed")
		return
	}

	response.Created(w, v)
}

// Update handles PUT /api/v1/venues/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if sess == nil {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	var req UpdateVenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	id := chi.URLParam(r, "id")
	v, err := h.service.Update(r.Context(), sess.UpstreamToken, id, req)
	if err != nil {
		if errors.Is(err, ErrVenueNotFound) {
			response.NotFound(w, "Venue not found")
			return
		}
		h.writeUpstreamError(w, err, "venue update failed")
		return
	}

	response.OK(w, v)
}

// Delete handles DELETE /api/v1/venues/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if sess == nil {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), sess.UpstreamToken, id); err != nil {
		if errors.Is(err, ErrVenueNotFound) {
			response.NotFound(w, "Venue not found")
			return
		}
		h.writeUpstreamError(w, err, "venue delete failed")
		return
	}

	response.NoContent(w)
}

// writeUpstreamError maps upstream API errors onto our envelope. Client
// mistakes (4xx from upstream) pass the upstream message through; anything
// else is a gateway failure.
func (h *Handler) writeUpstreamError(w http.ResponseWriter, err error, msg string) {
	var apiErr *noroff.APIError
	if errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
		if apiErr.Status == http.StatusForbidden {
			response.Forbidden(w, apiErr.Message)
			return
		}
		response.BadRequest(w, apiErr.Message)
		return
	}

	log.Error().Err(err).Msg(msg)
	response.BadGateway(w, "Upstream venue API unavailable")
}
