package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaulterm/internal/api"
)

func newLoadedInvestPage(t *testing.T, svc *fakeService, plans []api.InvestmentPlan) *investPage {
	t.Helper()
	p := newInvestPage(testDeps(t, svc))
	p.Init()
	next, _ := p.Update(investDataMsg{plans: plans, dashboard: svc.dashboard})
	return next.(*investPage)
}

func TestInvestAmountOutsidePlanRangeBlocks(t *testing.T) {
	plan := api.InvestmentPlan{ID: "p1", Name: "Starter", MinAmount: 100, MaxAmount: 999}
	svc := &fakeService{}
	p := newLoadedInvestPage(t, svc, []api.InvestmentPlan{plan})

	// Select the plan, enter amount-entry mode.
	next, _ := pressEnter(p)
	p = next.(*investPage)
	require.NotNil(t, p.selected)

	p = typeText(t, p, "50").(*investPage)
	next, cmd := pressEnter(p)
	p = next.(*investPage)

	assert.Nil(t, cmd)
	assert.Equal(t, "Valor mínimo: R$ 100,00", p.errText)
	assert.Empty(t, svc.investments, "out-of-range amount must not reach the network")
}

func TestInvestValidAmountSubmits(t *testing.T) {
	plan := api.InvestmentPlan{ID: "p1", Name: "Starter", MinAmount: 100, MaxAmount: 999}
	svc := &fakeService{}
	p := newLoadedInvestPage(t, svc, []api.InvestmentPlan{plan})

	next, _ := pressEnter(p)
	p = next.(*investPage)
	require.NotNil(t, p.selected)

	p = typeText(t, p, "250").(*investPage)
	next, cmd := pressEnter(p)
	p = next.(*investPage)
	require.NotNil(t, cmd)

	done, ok := cmd().(investDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)

	require.Len(t, svc.investments, 1)
	assert.Equal(t, "p1", svc.investments[0].PlanID)
	assert.Equal(t, 250.0, svc.investments[0].Amount)
}

func TestInvestEscCancelsAmountEntry(t *testing.T) {
	plan := api.InvestmentPlan{ID: "p1", Name: "Starter", MinAmount: 1, MaxAmount: 10}
	p := newLoadedInvestPage(t, &fakeService{}, []api.InvestmentPlan{plan})

	next, _ := pressEnter(p)
	p = next.(*investPage)
	require.NotNil(t, p.selected)

	next, _ = p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	p = next.(*investPage)
	assert.Nil(t, p.selected)
}
