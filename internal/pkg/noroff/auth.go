package noroff

import (
	"context"
	"net/http"
)

// Register creates a new Holidaze account.
func (c *Client) Register(ctx context.Context, reg Registration) (*Profile, error) {
	var out struct {
		Data Profile `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", reg, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// Login authenticates against the Holidaze API and returns the account
// with its upstream access token.
func (c *Client) Login(ctx context.Context, creds Credentials) (*Account, error) {
	var out struct {
		Data Account `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login?_holidaze=true", "", creds, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}
