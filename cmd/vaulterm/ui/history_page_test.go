package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaulterm/internal/api"
)

func TestHistoryTypeFilter(t *testing.T) {
	txns := []api.Transaction{
		{ID: "1", Type: api.TxDeposit, Amount: 100},
		{ID: "2", Type: api.TxWithdrawal, Amount: 50},
		{ID: "3", Type: api.TxDeposit, Amount: 200},
		{ID: "4", Type: api.TxProfit, Amount: 10},
	}

	p := newHistoryPage(testDeps(t, &fakeService{}))
	p.Init()
	next, _ := p.Update(historyLoadedMsg{txns: txns})
	p = next.(*historyPage)

	assert.Len(t, p.filtered(), 4, "default filter shows everything")

	// tab cycles to the deposit filter first.
	next, _ = p.Update(tea.KeyMsg{Type: tea.KeyTab})
	p = next.(*historyPage)
	got := p.filtered()
	require.Len(t, got, 2)
	for _, txn := range got {
		assert.Equal(t, api.TxDeposit, txn.Type)
	}

	next, _ = p.Update(tea.KeyMsg{Type: tea.KeyTab})
	p = next.(*historyPage)
	require.Len(t, p.filtered(), 1)
	assert.Equal(t, api.TxWithdrawal, p.filtered()[0].Type)
}
