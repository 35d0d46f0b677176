package api

import (
	"context"
	"net/http"
)

// Register creates a new account. The account stays pending until an admin
// approves it; the server's acknowledgement message is returned as-is.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (MessageResponse, error) {
	var out MessageResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &out)
	return out, err
}

// Login exchanges credentials for a bearer token and the user object.
func (c *Client) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	var out LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &out)
	return out, err
}

// AdminLogin is the admin-console variant of Login.
func (c *Client) AdminLogin(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	var out LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/admin/login", nil, req, &out)
	return out, err
}

// Me returns the current user for the active token.
func (c *Client) Me(ctx context.Context) (User, error) {
	var out User
	err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &out)
	return out, err
}
