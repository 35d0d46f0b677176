package api

import (
	"context"
	"net/http"
	"net/url"
)

// AdminDashboard returns the platform-wide summary counters.
func (c *Client) AdminDashboard(ctx context.Context) (AdminDashboard, error) {
	var out AdminDashboard
	err := c.do(ctx, http.MethodGet, "/admin/dashboard", nil, nil, &out)
	return out, err
}

// AdminUsers lists users, optionally filtered by status.
func (c *Client) AdminUsers(ctx context.Context, status UserStatus) ([]User, error) {
	var q url.Values
	if status != "" {
		q = url.Values{"status": {string(status)}}
	}
	var out []User
	err := c.do(ctx, http.MethodGet, "/admin/users", q, nil, &out)
	return out, err
}

// ApproveUser activates a pending account.
func (c *Client) ApproveUser(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodPut, "/admin/users/"+userID+"/approve", nil, nil, nil)
}

// RejectUser rejects a pending account.
func (c *Client) RejectUser(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodPut, "/admin/users/"+userID+"/reject", nil, nil, nil)
}

// UpdateUser edits a user's fields as an admin.
func (c *Client) UpdateUser(ctx context.Context, userID string, req AdminUserUpdate) (User, error) {
	var out User
	err := c.do(ctx, http.MethodPut, "/admin/users/"+userID, nil, req, &out)
	return out, err
}

// AdjustBalance applies an add/subtract/set adjustment to one of a user's
// balances. The server records it as an admin_adjustment transaction.
func (c *Client) AdjustBalance(ctx context.Context, userID string, req BalanceAdjustment) error {
	return c.do(ctx, http.MethodPost, "/admin/users/"+userID+"/balance", nil, req, nil)
}

// AdminTransactions lists transactions filtered by type and/or status.
func (c *Client) AdminTransactions(ctx context.Context, txType TransactionType, status TransactionStatus) ([]Transaction, error) {
	q := url.Values{}
	if txType != "" {
		q.Set("type", string(txType))
	}
	if status != "" {
		q.Set("status", string(status))
	}
	var out []Transaction
	err := c.do(ctx, http.MethodGet, "/admin/transactions", q, nil, &out)
	return out, err
}

// ApproveTransaction approves a pending deposit or withdrawal.
func (c *Client) ApproveTransaction(ctx context.Context, txID string) error {
	return c.do(ctx, http.MethodPut, "/admin/transactions/"+txID+"/approve", nil, nil, nil)
}

// RejectTransaction rejects a pending transaction with an optional reason.
func (c *Client) RejectTransaction(ctx context.Context, txID, reason string) error {
	var q url.Values
	if reason != "" {
		q = url.Values{"reason": {reason}}
	}
	return c.do(ctx, http.MethodPut, "/admin/transactions/"+txID+"/reject", q, nil, nil)
}

// UpdateWithdrawalStatus moves an approved withdrawal to a new status,
// e.g. completed once the payout is sent.
func (c *Client) UpdateWithdrawalStatus(ctx context.Context, txID string, status TransactionStatus) error {
	q := url.Values{"status": {string(status)}}
	return c.do(ctx, http.MethodPut, "/admin/transactions/"+txID+"/status", q, nil, nil)
}

// UpdateSettings writes the platform settings.
func (c *Client) UpdateSettings(ctx context.Context, s Settings) error {
	return c.do(ctx, http.MethodPut, "/admin/settings", nil, s, nil)
}

// AdminInvestments lists all investments across users.
func (c *Client) AdminInvestments(ctx context.Context) ([]Investment, error) {
	var out []Investment
	err := c.do(ctx, http.MethodGet, "/admin/investments", nil, nil, &out)
	return out, err
}
