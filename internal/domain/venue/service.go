package venue

import (
	"context"
	"errors"
	"fmt"

	"github.com/holidaze/holidaze-api/internal/pkg/noroff"
)

// API is the slice of the upstream client the venue service needs.
// Declared here so tests can substitute a fake.
type API interface {
	GetAllVenues(ctx context.Context) ([]noroff.Venue, error)
	SearchVenues(ctx context.Context, term string) ([]noroff.Venue, error)
	GetVenueByID(ctx context.Context, id string) (*noroff.Venue, error)
	CreateVenue(ctx context.Context, token string, payload noroff.VenuePayload) (*noroff.Venue, error)
	UpdateVenue(ctx context.Context, token, id string, payload noroff.VenuePayload) (*noroff.Venue, error)
	DeleteVenue(ctx context.Context, token, id string) error
}

// Service proxies venue operations to the upstream API with a cache in
// front of the read paths.
type Service struct {
	api   API
	cache Cache
}

// NewService creates a venue service.
func NewService(api API, cache Cache) *Service {
	return &Service{api: api, cache: cache}
}

// List returns the full venue list, newest first, cache-aside.
func (s *Service) List(ctx context.Context) ([]noroff.Venue, error) {
	if venues, ok := s.cache.GetList(ctx); ok {
		return venues, nil
	}

	venues, err := s.api.GetAllVenues(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch venues: %w", err)
	}

	s.cache.SetList(ctx, venues)
	return venues, nil
}

// Search runs an upstream full-text search. Results are not cached: the
// search engine owns per-term result state and stale-response suppression.
func (s *Service) Search(ctx context.Context, term string) ([]noroff.Venue, error) {
	venues, err := s.api.SearchVenues(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("venue search failed: %w", err)
	}
	return venues, nil
}

// GetByID returns a single venue with its bookings and owner.
func (s *Service) GetByID(ctx context.Context, id string) (*noroff.Venue, error) {
	if v, ok := s.cache.GetDetail(ctx, id); ok {
		return v, nil
	}

	v, err := s.api.GetVenueByID(ctx, id)
	if err != nil {
		if errors.Is(err, noroff.ErrNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("failed to fetch venue %s: %w", id, err)
	}

	s.cache.SetDetail(ctx, v)
	return v, nil
}

// Create creates a venue on behalf of a venue manager and invalidates the
// cached list so the new venue shows up immediately.
func (s *Service) Create(ctx context.Context, token string, req CreateVenueRequest) (*noroff.Venue, error) {
	v, err := s.api.CreateVenue(ctx, token, req.ToPayload())
	if err != nil {
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}

	s.cache.InvalidateList(ctx)
	return v, nil
}

// Update updates a venue and drops both cache entries touching it.
func (s *Service) Update(ctx context.Context, token, id string, req UpdateVenueRequest) (*noroff.Venue, error) {
	v, err := s.api.UpdateVenue(ctx, token, id, req.ToPayload())
	if err != nil {
		if errors.Is(err, noroff.ErrNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("failed to update venue %s: %w", id, err)
	}

	s.cache.InvalidateList(ctx)
	s.cache.InvalidateDetail(ctx, id)
	return v, nil
}

// Delete removes a venue and drops its cache entries.
func (s *Service) Delete(ctx context.Context, token, id string) error {
	if err := s.api.DeleteVenue(ctx, token, id); err != nil {
		if errors.Is(err, noroff.ErrNotFound) {
			return ErrVenueNotFound
		}
		return fmt.Errorf("failed to delete venue %s: %w", id, err)
	}

	s.cache.InvalidateList(ctx)
	s.cache.InvalidateDetail(ctx, id)
	return nil
}

// InvalidateDetail drops a venue's cached detail. Called by the booking
// service after a successful booking mutation so availability is refreshed.
func (s *Service) InvalidateDetail(ctx context.Context, id string) {
	s.cache.InvalidateDetail(ctx, id)
}
