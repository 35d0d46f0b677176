package api

import (
	"context"
	"net/http"
)

// Dashboard returns the balance/stats/recent-transactions aggregate.
func (c *Client) Dashboard(ctx context.Context) (Dashboard, error) {
	var out Dashboard
	err := c.do(ctx, http.MethodGet, "/users/dashboard", nil, nil, &out)
	return out, err
}

// UpdateProfile writes the editable profile fields and returns the updated
// user object for re-caching.
func (c *Client) UpdateProfile(ctx context.Context, req ProfileUpdate) (User, error) {
	var out User
	err := c.do(ctx, http.MethodPut, "/users/profile", nil, req, &out)
	return out, err
}
