package auth

import "github.com/holidaze/holidaze-api/internal/pkg/noroff"

// RegisterRequest creates a new profile on the upstream API.
type RegisterRequest struct {
	Name         string `json:"name" validate:"required,min=3,max=20,profile_name"`
	Email        string `json:"email" validate:"required,email,noroff_email"`
	Password     string `json:"password" validate:"required,min=8"`
	VenueManager bool   `json:"venue_manager"`
}

// LoginRequest authenticates against the upstream API.
type LoginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"remember_me"`
}

// SessionProfile is the profile slice exposed to the client after login.
type SessionProfile struct {
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Avatar       *noroff.Media `json:"avatar,omitempty"`
	Banner       *noroff.Media `json:"banner,omitempty"`
	VenueManager bool          `json:"venue_manager"`
}

// LoginResponse carries the session token and the logged-in profile.
type LoginResponse struct {
	Token   string         `json:"token"`
	Profile SessionProfile `json:"profile"`
}
