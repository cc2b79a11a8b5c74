package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/holidaze/holidaze-api/internal/middleware"
	"github.com/holidaze/holidaze-api/internal/pkg/response"
	"github.com/holidaze/holidaze-api/internal/pkg/validator"
)

// Handler handles auth HTTP requests.
type Handler struct {
	service *Service
}

// NewHandler creates an auth handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register handles POST /api/v1/auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	profile, err := h.service.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			response.Conflict(w, "Profile already exists")
			return
		}
		log.Error().Err(err).Msg("register failed")
		response.BadGateway(w, "Registration is temporarily unavailable")
		return
	}

	response.Created(w, profile)
}

// Login handles POST /api/v1/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	result, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Unauthorized(w, "Invalid email or password")
			return
		}
		log.Error().Err(err).Msg("login failed")
		response.BadGateway(w, "Login is temporarily unavailable")
		return
	}

	response.OK(w, result)
}

// Logout handles POST /api/v1/auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if sess == nil {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	if err := h.service.Logout(r.Context(), sess.ID); err != nil {
		log.Error().Err(err).Msg("logout failed")
		response.InternalError(w)
		return
	}

	response.NoContent(w)
}

// Session handles GET /api/v1/auth/session
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if sess == nil {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	response.OK(w, SessionProfile{
		Name:         sess.ProfileName,
		Email:        sess.Email,
		Avatar:       sess.Avatar,
		Banner:       sess.Banner,
		VenueManager: sess.VenueManager,
	})
}
