package booking

import (
	"context"
	"errors"
	"time"

	"github.com/holidaze/holidaze-api/internal/domain/availability"
	"github.com/holidaze/holidaze-api/internal/pkg/noroff"
)

// API is the slice of the upstream client the booking service uses.
type API interface {
	CreateBooking(ctx context.Context, token string, payload noroff.BookingPayload) (*noroff.Booking, error)
	UpdateBooking(ctx context.Context, token, id string, payload noroff.BookingPayload) (*noroff.Booking, error)
	DeleteBooking(ctx context.Context, token, id string) error
}

// VenueService provides the venue lookups a booking needs and the cache
// hook to drop stale availability after a mutation.
type VenueService interface {
	GetByID(ctx context.Context, id string) (*noroff.Venue, error)
	InvalidateDetail(ctx context.Context, id string)
}

// Service validates and forwards booking operations.
type Service struct {
	api    API
	venues VenueService
}

// NewService creates a booking service.
func NewService(api API, venues VenueService) *Service {
	return &Service{api: api, venues: venues}
}

// Create books a venue after checking the requested range against the
// venue's capacity and existing bookings.
func (s *Service) Create(ctx context.Context, token string, req CreateBookingRequest) (*noroff.Booking, error) {
	from, to, err := req.Dates()
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	if to.Before(from) {
		return nil, ErrInvalidDateRange
	}

	v, err := s.venues.GetByID(ctx, req.VenueID)
	if err != nil {
		return nil, err
	}
	if req.Guests > v.MaxGuests {
		return nil, ErrTooManyGuests
	}
	if availability.RangeOverlapsBookings(from, to, v.Bookings) {
		return nil, ErrDatesUnavailable
	}

	b, err := s.api.CreateBooking(ctx, token, req.ToPayload(from, to))
	if err != nil {
		return nil, err
	}

	s.venues.InvalidateDetail(ctx, req.VenueID)
	return b, nil
}

// Update changes the dates or guest count of an existing booking. Only the
// fields present in the request are sent upstream.
func (s *Service) Update(ctx context.Context, token, id string, req UpdateBookingRequest) (*noroff.Booking, error) {
	var payload noroff.BookingPayload
	var from, to time.Time

	if req.DateFrom != nil {
		parsed, err := parseDate(*req.DateFrom)
		if err != nil {
			return nil, ErrInvalidDateRange
		}
		from = parsed
		payload.DateFrom = &from
	}
	if req.DateTo != nil {
		parsed, err := parseDate(*req.DateTo)
		if err != nil {
			return nil, ErrInvalidDateRange
		}
		to = parsed
		payload.DateTo = &to
	}
	if req.DateFrom != nil && req.DateTo != nil && to.Before(from) {
		return nil, ErrInvalidDateRange
	}
	payload.Guests = req.Guests

	b, err := s.api.UpdateBooking(ctx, token, id, payload)
	if err != nil {
		return nil, mapUpstreamNotFound(err)
	}

	if b.Venue != nil {
		s.venues.InvalidateDetail(ctx, b.Venue.ID)
	}
	return b, nil
}

// Delete cancels a booking.
func (s *Service) Delete(ctx context.Context, token, id string) error {
	if err := s.api.DeleteBooking(ctx, token, id); err != nil {
		return mapUpstreamNotFound(err)
	}
	return nil
}

func mapUpstreamNotFound(err error) error {
	if errors.Is(err, noroff.ErrNotFound) {
		return ErrBookingNotFound
	}
	return err
}
