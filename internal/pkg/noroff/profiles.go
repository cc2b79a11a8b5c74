package noroff

import (
	"context"
	"net/http"
	"net/url"
)

// GetProfile returns a profile including its bookings and venues.
func (c *Client) GetProfile(ctx context.Context, token, name string) (*Profile, error) {
	var out struct {
		Data Profile `json:"data"`
	}
	path := "/holidaze/profiles/" + url.PathEscape(name) + "?_bookings=true&_venues=true"
	if err := c.do(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// UpdateProfile updates bio, avatar, banner, or the venue manager flag.
func (c *Client) UpdateProfile(ctx context.Context, token, name string, payload ProfilePayload) (*Profile, error) {
	var out struct {
		Data Profile `json:"data"`
	}
	if err := c.do(ctx, http.MethodPut, "/holidaze/profiles/"+url.PathEscape(name), token, payload, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}
