package noroff

import (
	"context"
	"net/http"
	"net/url"
)

// GetAllVenues returns the full venue list, newest first.
func (c *Client) GetAllVenues(ctx context.Context) ([]Venue, error) {
	var out struct {
		Data []Venue `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/holidaze/venues?sort=created&sortOrder=desc", "", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// SearchVenues runs a full-text venue search for the given term.
func (c *Client) SearchVenues(ctx context.Context, term string) ([]Venue, error) {
	var out struct {
		Data []Venue `json:"data"`
	}
	path := "/holidaze/venues/search?q=" + url.QueryEscape(term)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// GetVenueByID returns a single venue including its bookings and owner.
func (c *Client) GetVenueByID(ctx context.Context, id string) (*Venue, error) {
	var out struct {
		Data Venue `json:"data"`
	}
	path := "/holidaze/venues/" + url.PathEscape(id) + "?_bookings=true&_owner=true"
	if err := c.do(ctx, http.MethodGet, path, "", nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// CreateVenue creates a venue on behalf of the token's venue manager.
func (c *Client) CreateVenue(ctx context.Context, token string, payload VenuePayload) (*Venue, error) {
	var out struct {
		Data Venue `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/holidaze/venues", token, payload, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// UpdateVenue updates an existing venue.
func (c *Client) UpdateVenue(ctx context.Context, token, id string, payload VenuePayload) (*Venue, error) {
	var out struct {
		Data Venue `json:"data"`
	}
	if err := c.do(ctx, http.MethodPut, "/holidaze/venues/"+url.PathEscape(id), token, payload, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// DeleteVenue removes a venue.
func (c *Client) DeleteVenue(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/holidaze/venues/"+url.PathEscape(id), token, nil, nil)
}
