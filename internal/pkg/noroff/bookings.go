package noroff

import (
	"context"
	"net/http"
	"net/url"
)

// CreateBooking reserves a venue for the token's customer.
func (c *Client) CreateBooking(ctx context.Context, token string, payload BookingPayload) (*Booking, error) {
	var out struct {
		Data Booking `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/holidaze/bookings", token, payload, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// UpdateBooking changes the dates or guest count of an existing booking.
func (c *Client) UpdateBooking(ctx context.Context, token, id string, payload BookingPayload) (*Booking, error) {
	var out struct {
		Data Booking `json:"data"`
	}
	if err := c.do(ctx, http.MethodPut, "/holidaze/bookings/"+url.PathEscape(id), token, payload, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// DeleteBooking cancels a booking.
func (c *Client) DeleteBooking(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/holidaze/bookings/"+url.PathEscape(id), token, nil, nil)
}
