package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Referrals returns the referral code, totals and the commission tree rows.
func (c *Client) Referrals(ctx context.Context) (ReferralSummary, error) {
	var out ReferralSummary
	err := c.do(ctx, http.MethodGet, "/referrals", nil, nil, &out)
	return out, err
}

// ReferralLink builds the shareable registration link for a referral code.
// Format: <server>/register?ref=<code>.
func ReferralLink(serverURL, code string) string {
	return fmt.Sprintf("%s/register?ref=%s", serverURL, url.QueryEscape(code))
}
