package ui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"vaulterm/internal/api"
	"vaulterm/internal/money"
)

// Type filter cycle for the history view. Empty means all.
var historyFilters = []api.TransactionType{
	"",
	api.TxDeposit,
	api.TxWithdrawal,
	api.TxInvestment,
	api.TxProfit,
	api.TxReferralBonus,
}

// historyPage lists the full transaction ledger with a client-side type
// filter. Amounts are signed by type: money in with +, money out with -.
type historyPage struct {
	deps Deps

	txns   []api.Transaction
	loaded bool
	filter int

	errText string
}

type historyLoadedMsg struct {
	txns []api.Transaction
	err  error
}

func newHistoryPage(deps Deps) *historyPage {
	return &historyPage{deps: deps}
}

func (p *historyPage) Init() tea.Cmd {
	p.errText = ""
	deps := p.deps
	return func() tea.Msg {
		txns, err := deps.Client.Transactions(context.Background())
		return historyLoadedMsg{txns: txns, err: err}
	}
}

func (p *historyPage) SetSize(int, int) {}

func (p *historyPage) filtered() []api.Transaction {
	want := historyFilters[p.filter]
	if want == "" {
		return p.txns
	}
	out := make([]api.Transaction, 0, len(p.txns))
	for _, t := range p.txns {
		if t.Type == want {
			out = append(out, t)
		}
	}
	return out
}

func (p *historyPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, sessionGuard(msg.err)
		}
		p.txns = msg.txns
		p.loaded = true

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return p, Navigate(PageDashboard)
		case "r":
			return p, p.Init()
		case "tab", "f":
			p.filter = (p.filter + 1) % len(historyFilters)
		case "shift+tab":
			p.filter = (p.filter + len(historyFilters) - 1) % len(historyFilters)
		}
	}
	return p, nil
}

func filterLabel(t api.TransactionType) string {
	if t == "" {
		return "Todas"
	}
	return txTypeLabel(t)
}

func (p *historyPage) View() string {
	s := p.deps.Styles
	var sb strings.Builder

	sb.WriteString(s.Header.Render("Histórico de Transações"))
	sb.WriteString("\n\n")

	if p.errText != "" {
		sb.WriteString(s.Error.Render(p.errText) + "\n\n")
	}
	if !p.loaded {
		sb.WriteString(s.Muted.Render("Carregando...") + "\n")
		return sb.String()
	}

	var tabs []string
	for i, f := range historyFilters {
		label := filterLabel(f)
		if i == p.filter {
			tabs = append(tabs, s.Badge.Render(label))
		} else {
			tabs = append(tabs, s.Muted.Render(label))
		}
	}
	sb.WriteString(strings.Join(tabs, "  "))
	sb.WriteString("\n\n")

	table := NewSimpleTable("", "Data", "Tipo", "Valor", "Status", "Obs.")
	table.Empty = "Nenhuma transação encontrada"
	for _, t := range p.filtered() {
		note := t.Notes
		if r := []rune(note); len(r) > 32 {
			note = string(r[:29]) + "..."
		}
		table.AddRow(
			t.CreatedAt.Format("02/01/2006 15:04"),
			txTypeLabel(t.Type),
			money.FormatSigned(t.Type, t.Amount),
			string(t.Status),
			note,
		)
	}
	sb.WriteString(table.View(s))

	sb.WriteString(s.Help.Render("tab filtrar por tipo · r atualizar · esc voltar"))
	return sb.String()
}
