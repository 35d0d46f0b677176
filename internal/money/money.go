// Package money formats server-provided amounts for display. No balance
// arithmetic happens here or anywhere else in the client; amounts always
// come from the API.
package money

import (
	"fmt"
	"strings"

	"vaulterm/internal/api"
)

// FormatBRL renders an amount in Brazilian convention: R$ 1.234,56.
func FormatBRL(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := fmt.Sprintf("%.2f", amount)
	intPart, fracPart, _ := strings.Cut(s, ".")

	var sb strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte('.')
		}
		sb.WriteRune(r)
	}

	out := "R$ " + sb.String() + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// FormatSigned prefixes the amount with + or - depending on whether the
// transaction type credits or debits the account, mirroring the history
// view of the original client.
func FormatSigned(t api.TransactionType, amount float64) string {
	switch t {
	case api.TxDeposit, api.TxProfit, api.TxReferralBonus:
		return "+" + FormatBRL(amount)
	default:
		return "-" + FormatBRL(amount)
	}
}

// Percent returns completed/total as a whole-number percentage, clamped to
// [0, 100]. A zero total reads as 0%.
func Percent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	p := completed * 100 / total
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
