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

// adminDashboardPage is the admin landing view: platform totals plus the
// menu into the management pages.
type adminDashboardPage struct {
	deps Deps

	data    api.AdminDashboard
	loaded  bool
	errText string

	cursor int
}

type adminDashboardLoadedMsg struct {
	data api.AdminDashboard
	err  error
}

var adminMenu = []struct {
	label string
	page  Page
}{
	{"Usuários", PageAdminUsers},
	{"Transações", PageAdminTransactions},
	{"Configurações", PageAdminSettings},
}

func newAdminDashboardPage(deps Deps) *adminDashboardPage {
	return &adminDashboardPage{deps: deps}
}

func (p *adminDashboardPage) Init() tea.Cmd {
	p.errText = ""
	deps := p.deps
	return func() tea.Msg {
		data, err := deps.Client.AdminDashboard(context.Background())
		return adminDashboardLoadedMsg{data: data, err: err}
	}
}

func (p *adminDashboardPage) SetSize(int, int) {}

func (p *adminDashboardPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case adminDashboardLoadedMsg:
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
			if p.cursor < len(adminMenu)-1 {
				p.cursor++
			}
		case "enter":
			return p, Navigate(adminMenu[p.cursor].page)
		case "r":
			return p, p.Init()
		case "q":
			p.deps.Session.Clear()
			p.loaded = false
			return p, Navigate(PageLogin)
		}
	}
	return p, nil
}

func (p *adminDashboardPage) View() string {
	s := p.deps.Styles
	var sb strings.Builder

	sb.WriteString(s.Header.Render("Painel Administrativo"))
	sb.WriteString("\n\n")

	if p.errText != "" {
		sb.WriteString(s.Error.Render(p.errText) + "\n\n")
	}
	if !p.loaded {
		sb.WriteString(s.Muted.Render("Carregando...") + "\n")
		return sb.String()
	}

	d := p.data
	card := func(label, value string) string {
		return s.Card.Render(s.Muted.Render(label) + "\n" + s.Bold.Render(value))
	}

	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		card("Usuários", fmt.Sprintf("%d", d.Users.Total)),
		card("Pendentes", fmt.Sprintf("%d", d.Users.Pending)),
		card("Ativos", fmt.Sprintf("%d", d.Users.Active)),
		card("Suspensos", fmt.Sprintf("%d", d.Users.Suspended)),
	))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		card("Investimentos Ativos", fmt.Sprintf("%d", d.Investments.Active)),
		card("Volume Investido", money.FormatBRL(d.Investments.TotalAmount)),
		card("Total Depositado", money.FormatBRL(d.Transactions.TotalDeposited)),
		card("Total Sacado", money.FormatBRL(d.Transactions.TotalWithdrawn)),
	))
	sb.WriteString("\n\n")

	if pending := d.Transactions.PendingDeposits + d.Transactions.PendingWithdrawals; pending > 0 {
		sb.WriteString(s.Warning.Render(fmt.Sprintf(
			"Aguardando aprovação: %d depósitos, %d saques",
			d.Transactions.PendingDeposits, d.Transactions.PendingWithdrawals)))
		sb.WriteString("\n\n")
	}

	sb.WriteString(s.Title.Render("Gerenciar"))
	sb.WriteString("\n")
	for i, item := range adminMenu {
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
