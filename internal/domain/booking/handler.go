package booking

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/holidaze/holidaze-api/internal/domain/venue"
	"github.com/holidaze/holidaze-api/internal/middleware"
	"github.com/holidaze/holidaze-api/internal/pkg/noroff"
	"github.com/holidaze/holidaze-api/internal/pkg/response"
	"github.com/holidaze/holidaze-api/internal/pkg/validator"
)

// Handler handles booking HTTP requests.
type Handler struct {
	service *Service
}

// NewHandler creates a booking handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /api/v1/bookings
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if sess == nil {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	b, err := h.service.Create(r.Context(), sess.UpstreamToken, req)
	if err != nil {
		h.writeBookingError(w, err, "booking create failed")
		return
	}

	response.Created(w, b)
}

// Update handles PUT /api/v1/bookings/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if sess == nil {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	var req UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	id := chi.URLParam(r, "id")
	b, err := h.service.Update(r.Context(), sess.UpstreamToken, id, req)
	if err != nil {
		h.writeBookingError(w, err, "booking update failed")
		return
	}

	response.OK(w, b)
}

// Delete handles DELETE /api/v1/bookings/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if sess == nil {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), sess.UpstreamToken, id); err != nil {
		h.writeBookingError(w, err, "booking delete failed")
		return
	}

	response.NoContent(w)
}

func (h *Handler) writeBookingError(w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, ErrInvalidDateRange):
		response.BadRequest(w, err.Error())
	case errors.Is(err, ErrTooManyGuests):
		response.BadRequest(w, err.Error())
	case errors.Is(err, ErrDatesUnavailable):
		response.Conflict(w, err.Error())
	case errors.Is(err, ErrBookingNotFound):
		response.NotFound(w, "Booking not found")
	case errors.Is(err, venue.ErrVenueNotFound):
		response.NotFound(w, "Venue not found")
	default:
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
		response.BadGateway(w, "Upstream booking API unavailable")
	}
}
