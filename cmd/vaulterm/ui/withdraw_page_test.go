package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaulterm/internal/api"
)

func newLoadedWithdrawPage(t *testing.T, svc *fakeService) *withdrawPage {
	t.Helper()
	p := newWithdrawPage(testDeps(t, svc))
	p.Init()
	next, _ := p.Update(withdrawDataMsg{settings: svc.settings, dashboard: svc.dashboard})
	return next.(*withdrawPage)
}

func TestWithdrawBelowMinimumBlocks(t *testing.T) {
	svc := &fakeService{
		settings:  api.Settings{MinWithdrawal: 50, WithdrawalFee: 5, WithdrawalFeeMethod: api.FeeRequireDeposit},
		dashboard: api.Dashboard{Balance: api.Balance{AvailableForWithdrawal: 1000}},
	}
	p := newLoadedWithdrawPage(t, svc)

	p = typeText(t, p, "10").(*withdrawPage)
	next, _ := pressEnter(p)
	p = next.(*withdrawPage)

	assert.Equal(t, wdStepAmount, p.Step())
	assert.Empty(t, svc.withdrawals)
}

func TestWithdrawAboveBalanceBlocks(t *testing.T) {
	svc := &fakeService{
		settings:  api.Settings{MinWithdrawal: 50, WithdrawalFeeMethod: api.FeeRequireDeposit},
		dashboard: api.Dashboard{Balance: api.Balance{AvailableForWithdrawal: 200}},
	}
	p := newLoadedWithdrawPage(t, svc)

	p = typeText(t, p, "500").(*withdrawPage)
	next, _ := pressEnter(p)
	p = next.(*withdrawPage)

	assert.Equal(t, wdStepAmount, p.Step())
	assert.Equal(t, "Valor máximo: R$ 200,00", p.errText)
	assert.Empty(t, svc.withdrawals)
}

func TestWithdrawFeeStepRequiresProof(t *testing.T) {
	svc := &fakeService{
		settings:  api.Settings{MinWithdrawal: 50, WithdrawalFee: 5, WithdrawalFeeMethod: api.FeeRequireDeposit},
		dashboard: api.Dashboard{Balance: api.Balance{AvailableForWithdrawal: 1000}},
	}
	p := newLoadedWithdrawPage(t, svc)

	p = typeText(t, p, "500").(*withdrawPage)
	next, _ := pressEnter(p)
	p = next.(*withdrawPage)
	require.Equal(t, wdStepMethod, p.Step())

	next, _ = pressEnter(p)
	p = next.(*withdrawPage)
	require.Equal(t, wdStepFee, p.Step(), "require_deposit must add the fee step")

	// No proof, no progress.
	next, _ = pressEnter(p)
	p = next.(*withdrawPage)
	assert.Equal(t, wdStepFee, p.Step())
	assert.NotEmpty(t, p.errText)

	p = typeText(t, p, "fee-proof-1").(*withdrawPage)
	next, _ = pressEnter(p)
	p = next.(*withdrawPage)
	require.Equal(t, wdStepConfirm, p.Step())

	next, cmd := pressEnter(p)
	p = next.(*withdrawPage)
	require.NotNil(t, cmd)
	done, ok := cmd().(withdrawDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)

	require.Len(t, svc.withdrawals, 1)
	assert.Equal(t, 500.0, svc.withdrawals[0].Amount)
	assert.Equal(t, "fee-proof-1", svc.withdrawals[0].FeePaymentProof)
}

func TestWithdrawDeductFromBalanceSkipsFeeStep(t *testing.T) {
	svc := &fakeService{
		settings:  api.Settings{MinWithdrawal: 50, WithdrawalFee: 5, WithdrawalFeeMethod: api.FeeDeductFromBalance},
		dashboard: api.Dashboard{Balance: api.Balance{AvailableForWithdrawal: 1000}},
	}
	p := newLoadedWithdrawPage(t, svc)

	p = typeText(t, p, "500").(*withdrawPage)
	next, _ := pressEnter(p)
	p = next.(*withdrawPage)
	require.Equal(t, wdStepMethod, p.Step())

	next, _ = pressEnter(p)
	p = next.(*withdrawPage)
	assert.Equal(t, wdStepConfirm, p.Step(), "deduct_from_balance must skip the fee step")

	_, cmd := pressEnter(p)
	require.NotNil(t, cmd)
	done := cmd().(withdrawDoneMsg)
	require.NoError(t, done.err)

	require.Len(t, svc.withdrawals, 1)
	assert.Empty(t, svc.withdrawals[0].FeePaymentProof)
}

func TestWithdrawZeroBalanceBlocks(t *testing.T) {
	svc := &fakeService{
		settings:  api.Settings{MinWithdrawal: 50, WithdrawalFeeMethod: api.FeeRequireDeposit},
		dashboard: api.Dashboard{Balance: api.Balance{AvailableForWithdrawal: 0}},
	}
	p := newLoadedWithdrawPage(t, svc)

	p = typeText(t, p, "500").(*withdrawPage)
	next, _ := pressEnter(p)
	p = next.(*withdrawPage)

	assert.Equal(t, wdStepAmount, p.Step(), "an empty balance must not let the wizard advance")
	assert.Equal(t, "Valor máximo: R$ 0,00", p.errText)
	assert.Empty(t, svc.withdrawals)
}

func TestWithdrawFeeIsFlatAmount(t *testing.T) {
	svc := &fakeService{
		settings:  api.Settings{MinWithdrawal: 50, WithdrawalFee: 500, WithdrawalFeeMethod: api.FeeRequireDeposit},
		dashboard: api.Dashboard{Balance: api.Balance{AvailableForWithdrawal: 1000}},
	}
	p := newLoadedWithdrawPage(t, svc)

	p = typeText(t, p, "200").(*withdrawPage)
	next, _ := pressEnter(p)
	p = next.(*withdrawPage)
	next, _ = pressEnter(p)
	p = next.(*withdrawPage)
	require.Equal(t, wdStepFee, p.Step())

	// The fee is the configured BRL amount, not a percentage of the request.
	assert.Contains(t, p.View(), "R$ 500,00")
	assert.NotContains(t, p.View(), "R$ 1.000,00")
}
