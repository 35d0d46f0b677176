package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"vaulterm/internal/api"
	"vaulterm/internal/money"
	"vaulterm/internal/validate"
)

// investPage lists the available plans and the user's placements, and
// drives the purchase flow: pick a plan, enter an amount within the plan's
// bounds, confirm. The bounds check is a range hint; the server validates
// the real balance.
type investPage struct {
	deps Deps

	plans       []api.InvestmentPlan
	investments []api.Investment
	balance     api.Balance
	loaded      bool

	cursor   int
	selected *api.InvestmentPlan
	amount   textinput.Model

	busy    bool
	errText string
	okText  string
}

type investDataMsg struct {
	plans       []api.InvestmentPlan
	investments []api.Investment
	dashboard   api.Dashboard
	err         error
}

type investDoneMsg struct {
	err error
}

func newInvestPage(deps Deps) *investPage {
	amount := textinput.New()
	amount.Placeholder = "0,00"
	amount.CharLimit = 16
	return &investPage{deps: deps, amount: amount}
}

// Init fetches plans, placements and the balance concurrently. The three
// requests are independent; the page renders once all have settled.
func (p *investPage) Init() tea.Cmd {
	p.errText = ""
	p.okText = ""
	p.selected = nil
	p.busy = false
	return p.refresh()
}

func (p *investPage) SetSize(int, int) {}

func (p *investPage) submit() tea.Cmd {
	plan := p.selected
	v, errText := validate.Amount(p.amount.Value(), plan.MinAmount, plan.MaxAmount)
	if errText != "" {
		p.errText = errText
		return nil
	}

	p.busy = true
	p.errText = ""
	deps := p.deps
	req := api.InvestmentRequest{PlanID: plan.ID, Amount: v}
	return func() tea.Msg {
		_, err := deps.Client.CreateInvestment(context.Background(), req)
		return investDoneMsg{err: err}
	}
}

func (p *investPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case investDataMsg:
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, sessionGuard(msg.err)
		}
		p.plans = msg.plans
		p.investments = msg.investments
		p.balance = msg.dashboard.Balance
		p.loaded = true
		if p.cursor >= len(p.plans) {
			p.cursor = 0
		}

	case investDoneMsg:
		p.busy = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, sessionGuard(msg.err)
		}
		p.okText = "Investimento criado com sucesso!"
		p.selected = nil
		p.amount.SetValue("")
		return p, p.refresh()

	case tea.KeyMsg:
		if p.busy {
			return p, nil
		}
		if p.selected != nil {
			return p.updateAmountEntry(msg)
		}
		switch msg.String() {
		case "esc":
			return p, Navigate(PageDashboard)
		case "up", "k":
			if p.cursor > 0 {
				p.cursor--
			}
		case "down", "j":
			if p.cursor < len(p.plans)-1 {
				p.cursor++
			}
		case "enter":
			if len(p.plans) > 0 {
				plan := p.plans[p.cursor]
				p.selected = &plan
				p.errText = ""
				p.okText = ""
				p.amount.SetValue("")
				p.amount.Focus()
				return p, textinput.Blink
			}
		case "r":
			return p, p.Init()
		}
	}
	return p, nil
}

// refresh reloads the data without resetting the success banner.
func (p *investPage) refresh() tea.Cmd {
	deps := p.deps
	return func() tea.Msg {
		var msg investDataMsg
		g, ctx := errgroup.WithContext(context.Background())
		g.Go(func() (err error) {
			msg.plans, err = deps.Client.Plans(ctx)
			return err
		})
		g.Go(func() (err error) {
			msg.investments, err = deps.Client.Investments(ctx)
			return err
		})
		g.Go(func() (err error) {
			msg.dashboard, err = deps.Client.Dashboard(ctx)
			return err
		})
		msg.err = g.Wait()
		return msg
	}
}

func (p *investPage) updateAmountEntry(msg tea.KeyMsg) (page, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		p.selected = nil
		p.errText = ""
		return p, nil
	case tea.KeyEnter:
		return p, p.submit()
	}
	var cmd tea.Cmd
	p.amount, cmd = p.amount.Update(msg)
	return p, cmd
}

func (p *investPage) View() string {
	s := p.deps.Styles
	var sb strings.Builder

	sb.WriteString(s.Header.Render("Investimentos"))
	sb.WriteString("\n\n")

	if p.okText != "" {
		sb.WriteString(s.Success.Render(p.okText) + "\n\n")
	}
	if p.errText != "" {
		sb.WriteString(s.Error.Render(p.errText) + "\n\n")
	}
	if !p.loaded {
		sb.WriteString(s.Muted.Render("Carregando...") + "\n")
		return sb.String()
	}

	if p.selected != nil {
		p.viewAmountEntry(&sb)
		return sb.String()
	}

	sb.WriteString(s.Title.Render("Planos Disponíveis"))
	sb.WriteString("\n")
	for i, plan := range p.plans {
		line := fmt.Sprintf("%s  (%s – %s, bloqueio %dh)",
			plan.Name, money.FormatBRL(plan.MinAmount), money.FormatBRL(plan.MaxAmount), plan.LockHours)
		if plan.Popular {
			line += "  " + s.Primary.Render("★ POPULAR")
		}
		if i == p.cursor {
			sb.WriteString(s.Selected.Render(line))
		} else {
			sb.WriteString("  " + s.Body.Render(line))
		}
		sb.WriteString("\n")
	}
	if len(p.plans) == 0 {
		sb.WriteString(s.Muted.Render("  Nenhum plano disponível") + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString(s.Title.Render("Meus Investimentos"))
	sb.WriteString("\n")
	if len(p.investments) == 0 {
		sb.WriteString(s.Muted.Render("  Você ainda não tem investimentos ativos") + "\n")
	}
	for _, inv := range p.investments {
		pct := money.Percent(inv.CompletedCycles, inv.TotalCycles)
		sb.WriteString(fmt.Sprintf("  %s  %s  lucro %s  ciclos %d/%d (%d%%)  %s\n",
			s.Bold.Render(inv.PlanName),
			money.FormatBRL(inv.Amount),
			s.Success.Render(money.FormatBRL(inv.TotalProfit)),
			inv.CompletedCycles, inv.TotalCycles, pct,
			s.StatusBadge(string(inv.Status)),
		))
		if inv.Status == api.InvestmentActive {
			sb.WriteString("  " + progressBar(pct, 30, s) + "\n")
		}
	}

	sb.WriteString(s.Help.Render("↑/↓ escolher plano · enter investir · r atualizar · esc voltar"))
	return sb.String()
}

func (p *investPage) viewAmountEntry(sb *strings.Builder) {
	s := p.deps.Styles
	plan := p.selected

	sb.WriteString(s.Title.Render("Novo Investimento — " + plan.Name))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Saldo Disponível: %s\n", s.Money.Render(money.FormatBRL(p.balance.AvailableForWithdrawal))))
	sb.WriteString(fmt.Sprintf("Faixa do plano:   %s – %s\n\n",
		money.FormatBRL(plan.MinAmount), money.FormatBRL(plan.MaxAmount)))
	sb.WriteString(s.Muted.Render("Valor do Investimento"))
	sb.WriteString("\n" + p.amount.View() + "\n")
	if p.busy {
		sb.WriteString(s.Muted.Render("Investindo...") + "\n")
	}
	sb.WriteString(s.Help.Render("enter confirmar · esc cancelar"))
}

// progressBar renders a fixed-width cycle progress bar.
func progressBar(pct, width int, s Styles) string {
	filled := pct * width / 100
	return s.Primary.Render(strings.Repeat("█", filled)) +
		s.Muted.Render(strings.Repeat("░", width-filled))
}
