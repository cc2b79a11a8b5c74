package profile

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/holidaze/holidaze-api/internal/middleware"
	"github.com/holidaze/holidaze-api/internal/pkg/noroff"
	"github.com/holidaze/holidaze-api/internal/pkg/response"
	"github.com/holidaze/holidaze-api/internal/pkg/validator"
)

// Handler handles profile HTTP requests. Profiles are always resolved from
// the session; there is no lookup of arbitrary profiles.
type Handler struct {
	service *Service
}

// NewHandler creates a profile handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Get handles GET /api/v1/profiles/me
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if sess == nil {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	p, err := h.service.Get(r.Context(), sess.UpstreamToken, sess.ProfileName)
	if err != nil {
		if errors.Is(err, noroff.ErrNotFound) {
			response.NotFound(w, "Profile not found")
			return
		}
		log.Error().Err(err).Str("profile", sess.ProfileName).Msg("profile fetch failed")
		response.BadGateway(w, "Could not load profile")
		return
	}

	response.OK(w, p)
}

// Update handles PUT /api/v1/profiles/me
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if sess == nil {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	p, err := h.service.Update(r.Context(), sess.UpstreamToken, sess.ProfileName, req)
	if err != nil {
		var apiErr *noroff.APIError
		if errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
			response.BadRequest(w, apiErr.Message)
			return
		}
		log.Error().Err(err).Str("profile", sess.ProfileName).Msg("profile update failed")
		response.BadGateway(w, "Could not update profile")
		return
	}

	response.OK(w, p)
}
