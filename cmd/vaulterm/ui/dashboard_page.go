package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vaulterm/internal/api"
	"vaulterm/internal/money"
)

// dashboardPage is the authenticated landing view and the navigation hub:
// balance cards, stats, recent transactions and the menu to every other
// user page.
type dashboardPage struct {
	deps Deps

	data    api.Dashboard
	loaded  bool
	errText string

	cursor int
	width  int
}

type dashboardLoadedMsg struct {
	data api.Dashboard
	err  error
}

var dashboardMenu = []struct {
	label string
	page  Page
}{
	{"Investimentos", PageInvest},
	{"Depositar", PageDeposit},
	{"Sacar", PageWithdraw},
	{"Indicações", PageReferrals},
	{"Histórico", PageHistory},
	{"Meu Perfil", PageProfile},
}

func newDashboardPage(deps Deps) *dashboardPage {
	return &dashboardPage{deps: deps}
}

func (p *dashboardPage) Init() tea.Cmd {
	p.errText = ""
	deps := p.deps
	return func() tea.Msg {
		data, err := deps.Client.Dashboard(context.Background())
		return dashboardLoadedMsg{data: data, err: err}
	}
}

func (p *dashboardPage) SetSize(w, _ int) { p.width = w }

func (p *dashboardPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, sessionGuard(msg.err)
		}
		p.data = msg.data
		p.loaded = true

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if p.cursor > 0 {
				p.cursor--
			}
		case "down", "j":
			if p.cursor < len(dashboardMenu)-1 {
				p.cursor++
			}
		case "enter":
			return p, Navigate(dashboardMenu[p.cursor].page)
		case "r":
			return p, p.Init()
		case "q":
			// Logout: drop the session and return to login.
			p.deps.Session.Clear()
			p.loaded = false
			return p, Navigate(PageLogin)
		}
	}
	return p, nil
}

func (p *dashboardPage) balanceCards() string {
	s := p.deps.Styles
	b := p.data.Balance

	card := func(label string, value string, style lipgloss.Style) string {
		return s.Card.Render(s.Muted.Render(label) + "\n" + style.Render(value))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("Saldo Total", money.FormatBRL(b.BRLBalance), s.Money),
		card("Investido", money.FormatBRL(b.TotalInvested), s.Bold),
		card("Lucro", money.FormatBRL(b.TotalReturns), s.Success),
		card("Indicações", money.FormatBRL(b.ReferralBonus), s.Info),
	)
}

func (p *dashboardPage) View() string {
	s := p.deps.Styles
	var sb strings.Builder

	sb.WriteString(s.Header.Render("Bem-vindo!"))
	sb.WriteString("\n")
	if u, ok := p.deps.Session.User(); ok {
		sb.WriteString(s.Muted.Render("Conta: " + u.Email))
		sb.WriteString("\n\n")
	}

	if p.errText != "" {
		sb.WriteString(s.Error.Render(p.errText) + "\n\n")
	}
	if !p.loaded {
		sb.WriteString(s.Muted.Render("Carregando...") + "\n")
		return sb.String()
	}

	sb.WriteString(p.balanceCards())
	sb.WriteString("\n\n")

	sb.WriteString(s.Title.Render("Estatísticas"))
	sb.WriteString(fmt.Sprintf("\n  Investimentos Ativos: %s\n  Total de Indicações:  %s\n\n",
		s.Bold.Render(fmt.Sprintf("%d", p.data.Stats.ActiveInvestments)),
		s.Bold.Render(fmt.Sprintf("%d", p.data.Stats.TotalReferrals)),
	))

	recent := NewSimpleTable("Transações Recentes", "Tipo", "Valor", "Status")
	recent.Empty = "Nenhuma transação ainda"
	for i, txn := range p.data.RecentTransactions {
		if i == 5 {
			break
		}
		recent.AddRow(txTypeLabel(txn.Type), money.FormatSigned(txn.Type, txn.Amount), string(txn.Status))
	}
	sb.WriteString(recent.View(s))
	sb.WriteString("\n")

	sb.WriteString(s.Title.Render("Menu"))
	sb.WriteString("\n")
	for i, item := range dashboardMenu {
		if i == p.cursor {
			sb.WriteString(s.Selected.Render(item.label))
		} else {
			sb.WriteString("  " + s.Body.Render(item.label))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(s.Help.Render("↑/↓ navegar · enter abrir · r atualizar · q sair da conta · ctrl+c fechar"))
	return sb.String()
}

// txTypeLabel translates transaction types for display.
func txTypeLabel(t api.TransactionType) string {
	switch t {
	case api.TxDeposit:
		return "Depósito"
	case api.TxWithdrawal:
		return "Saque"
	case api.TxInvestment:
		return "Investimento"
	case api.TxProfit:
		return "Lucro"
	case api.TxReferralBonus:
		return "Bônus de Indicação"
	case api.TxAdminAdjustment:
		return "Ajuste Admin"
	}
	return string(t)
}
