package booking

import (
	"time"

	"github.com/holidaze/holidaze-api/internal/pkg/noroff"
)

// CreateBookingRequest is the payload for booking a venue.
type CreateBookingRequest struct {
	VenueID  string `json:"venue_id" validate:"required"`
	DateFrom string `json:"date_from" validate:"required"`
	DateTo   string `json:"date_to" validate:"required"`
	Guests   int    `json:"guests" validate:"required,gte=1"`
}

// UpdateBookingRequest changes the dates or guest count of an existing booking.
type UpdateBookingRequest struct {
	DateFrom *string `json:"date_from,omitempty"`
	DateTo   *string `json:"date_to,omitempty"`
	Guests   *int    `json:"guests,omitempty" validate:"omitempty,gte=1"`
}

// parseDate accepts a plain date or a full RFC 3339 timestamp. Clients send
// both depending on how the picker serialized the value.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// Dates parses and returns the requested stay range.
func (r CreateBookingRequest) Dates() (from, to time.Time, err error) {
	from, err = parseDate(r.DateFrom)
	if err != nil {
		return
	}
	to, err = parseDate(r.DateTo)
	return
}

// ToPayload converts the request to the upstream wire format.
func (r CreateBookingRequest) ToPayload(from, to time.Time) noroff.BookingPayload {
	return noroff.BookingPayload{
		DateFrom: &from,
		DateTo:   &to,
		Guests:   &r.Guests,
		VenueID:  r.VenueID,
	}
}
