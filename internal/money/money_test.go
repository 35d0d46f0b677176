package money

import (
	"testing"

	"vaulterm/internal/api"
)

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{9.9, "R$ 9,90"},
		{100, "R$ 100,00"},
		{1234.56, "R$ 1.234,56"},
		{1234567.89, "R$ 1.234.567,89"},
		{-50.5, "-R$ 50,50"},
	}
	for _, tc := range cases {
		if got := FormatBRL(tc.in); got != tc.want {
			t.Errorf("FormatBRL(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatSigned(t *testing.T) {
	cases := []struct {
		typ  api.TransactionType
		want string
	}{
		{api.TxDeposit, "+R$ 100,00"},
		{api.TxProfit, "+R$ 100,00"},
		{api.TxReferralBonus, "+R$ 100,00"},
		{api.TxWithdrawal, "-R$ 100,00"},
		{api.TxInvestment, "-R$ 100,00"},
		{api.TxAdminAdjustment, "-R$ 100,00"},
	}
	for _, tc := range cases {
		if got := FormatSigned(tc.typ, 100); got != tc.want {
			t.Errorf("FormatSigned(%s, 100) = %q, want %q", tc.typ, got, tc.want)
		}
	}
}

func TestPercent(t *testing.T) {
	cases := []struct {
		completed, total, want int
	}{
		{0, 10, 0},
		{5, 10, 50},
		{10, 10, 100},
		{15, 10, 100},
		{-1, 10, 0},
		{3, 0, 0},
	}
	for _, tc := range cases {
		if got := Percent(tc.completed, tc.total); got != tc.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", tc.completed, tc.total, got, tc.want)
		}
	}
}
