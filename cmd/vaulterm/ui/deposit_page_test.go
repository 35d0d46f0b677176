package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaulterm/internal/api"
)

func typeText(t *testing.T, p page, text string) page {
	t.Helper()
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return p
}

func pressEnter(p page) (page, tea.Cmd) {
	return p.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func newLoadedDepositPage(t *testing.T, svc *fakeService) *depositPage {
	t.Helper()
	p := newDepositPage(testDeps(t, svc))
	p.Init()
	next, _ := p.Update(depositSettingsMsg{settings: svc.settings})
	return next.(*depositPage)
}

func TestDepositBelowMinimumBlocksBeforeNetwork(t *testing.T) {
	svc := &fakeService{settings: api.Settings{MinDeposit: 100, MaxDeposit: 50000}}
	p := newLoadedDepositPage(t, svc)

	p = typeText(t, p, "50").(*depositPage)
	next, _ := pressEnter(p)
	p = next.(*depositPage)

	assert.Equal(t, depStepAmount, p.Step())
	assert.Equal(t, "Valor mínimo: R$ 100,00", p.errText)
	assert.Empty(t, svc.deposits, "invalid amount must not reach the network")
}

func TestDepositAboveMaximumBlocks(t *testing.T) {
	svc := &fakeService{settings: api.Settings{MinDeposit: 100, MaxDeposit: 1000}}
	p := newLoadedDepositPage(t, svc)

	p = typeText(t, p, "5000").(*depositPage)
	next, _ := pressEnter(p)
	p = next.(*depositPage)

	assert.Equal(t, depStepAmount, p.Step())
	assert.Empty(t, svc.deposits)
}

func TestDepositFullWizard(t *testing.T) {
	svc := &fakeService{settings: api.Settings{MinDeposit: 100, MaxDeposit: 50000}}
	p := newLoadedDepositPage(t, svc)

	// amount -> method
	p = typeText(t, p, "150,50").(*depositPage)
	next, _ := pressEnter(p)
	p = next.(*depositPage)
	require.Equal(t, depStepMethod, p.Step())

	// method -> details (PIX, the default cursor)
	next, _ = pressEnter(p)
	p = next.(*depositPage)
	require.Equal(t, depStepDetails, p.Step())

	// details -> confirm
	p = typeText(t, p, "comprovante-123").(*depositPage)
	next, _ = pressEnter(p)
	p = next.(*depositPage)
	require.Equal(t, depStepConfirm, p.Step())

	// confirm submits
	next, cmd := pressEnter(p)
	p = next.(*depositPage)
	require.NotNil(t, cmd)
	msg := cmd()
	done, ok := msg.(depositDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)

	require.Len(t, svc.deposits, 1)
	assert.Equal(t, 150.50, svc.deposits[0].Amount)
	assert.Equal(t, api.MethodPIX, svc.deposits[0].PaymentMethod)
	assert.Equal(t, "comprovante-123", svc.deposits[0].PaymentProof)

	// success resets the wizard
	next, _ = p.Update(done)
	p = next.(*depositPage)
	assert.Equal(t, depStepAmount, p.Step())
	assert.Contains(t, p.okText, "depósito")
}

func TestDepositEscGoesBackOneStep(t *testing.T) {
	svc := &fakeService{settings: api.Settings{MinDeposit: 10, MaxDeposit: 0}}
	p := newLoadedDepositPage(t, svc)

	p = typeText(t, p, "100").(*depositPage)
	next, _ := pressEnter(p)
	p = next.(*depositPage)
	require.Equal(t, depStepMethod, p.Step())

	next, _ = p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	p = next.(*depositPage)
	assert.Equal(t, depStepAmount, p.Step())
}
