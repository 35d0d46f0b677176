package api

import (
	"context"
	"net/http"
)

// CreateDeposit submits a deposit request for admin approval.
func (c *Client) CreateDeposit(ctx context.Context, req DepositRequest) (Transaction, error) {
	var out Transaction
	err := c.do(ctx, http.MethodPost, "/deposits", nil, req, &out)
	return out, err
}

// CreateWithdrawal submits a withdrawal request. The response echoes the
// withdrawal fee the server applied.
func (c *Client) CreateWithdrawal(ctx context.Context, req WithdrawalRequest) (WithdrawalResponse, error) {
	var out WithdrawalResponse
	err := c.do(ctx, http.MethodPost, "/withdrawals", nil, req, &out)
	return out, err
}

// Transactions lists the current user's full transaction history.
func (c *Client) Transactions(ctx context.Context) ([]Transaction, error) {
	var out []Transaction
	err := c.do(ctx, http.MethodGet, "/transactions", nil, nil, &out)
	return out, err
}
