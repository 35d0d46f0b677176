package api

import (
	"context"
	"net/http"
)

// Settings returns the public fee/limit configuration and the payment
// method directory.
func (c *Client) Settings(ctx context.Context) (Settings, error) {
	var out Settings
	err := c.do(ctx, http.MethodGet, "/settings", nil, nil, &out)
	return out, err
}
