package api

import (
	"context"
	"net/http"
)

// Plans lists the investment plans available for purchase.
func (c *Client) Plans(ctx context.Context) ([]InvestmentPlan, error) {
	var out []InvestmentPlan
	err := c.do(ctx, http.MethodGet, "/investment-plans", nil, nil, &out)
	return out, err
}

// CreateInvestment places an amount against a plan. The server owns all
// balance and bounds checks; the client only pre-validates range hints.
func (c *Client) CreateInvestment(ctx context.Context, req InvestmentRequest) (Investment, error) {
	var out Investment
	err := c.do(ctx, http.MethodPost, "/investments", nil, req, &out)
	return out, err
}

// Investments lists the current user's placements.
func (c *Client) Investments(ctx context.Context) ([]Investment, error) {
	var out []Investment
	err := c.do(ctx, http.MethodGet, "/investments", nil, nil, &out)
	return out, err
}
