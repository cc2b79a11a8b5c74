package profile

import (
	"context"

	"github.com/holidaze/holidaze-api/internal/pkg/noroff"
)

// API is the slice of the upstream client the profile service uses.
type API interface {
	GetProfile(ctx context.Context, token, name string) (*noroff.Profile, error)
	UpdateProfile(ctx context.Context, token, name string, payload noroff.ProfilePayload) (*noroff.Profile, error)
}

// Service reads and updates the logged-in user's profile.
type Service struct {
	api API
}

// NewService creates a profile service.
func NewService(api API) *Service {
	return &Service{api: api}
}

// Get fetches a profile including its bookings and venues.
func (s *Service) Get(ctx context.Context, token, name string) (*noroff.Profile, error) {
	return s.api.GetProfile(ctx, token, name)
}

// Update changes a profile's editable fields.
func (s *Service) Update(ctx context.Context, token, name string, req UpdateProfileRequest) (*noroff.Profile, error) {
	return s.api.UpdateProfile(ctx, token, name, req.ToPayload())
}
