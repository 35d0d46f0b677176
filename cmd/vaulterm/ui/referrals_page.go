package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"vaulterm/internal/api"
	"vaulterm/internal/money"
)

// Commission rates per referral level, mirrored from the platform rules
// for display. The server computes the actual payouts.
var referralLevels = []struct {
	level int
	rate  string
}{
	{1, "10%"},
	{2, "5%"},
	{3, "3%"},
	{4, "2%"},
	{5, "1%"},
}

// referralsPage shows the user's referral code and link, the commission
// table and the accumulated network.
type referralsPage struct {
	deps Deps

	summary api.ReferralSummary
	loaded  bool

	errText  string
	copyNote string
}

type referralsLoadedMsg struct {
	summary api.ReferralSummary
	err     error
}

func newReferralsPage(deps Deps) *referralsPage {
	return &referralsPage{deps: deps}
}

func (p *referralsPage) Init() tea.Cmd {
	p.errText = ""
	p.copyNote = ""
	deps := p.deps
	return func() tea.Msg {
		summary, err := deps.Client.Referrals(context.Background())
		return referralsLoadedMsg{summary: summary, err: err}
	}
}

func (p *referralsPage) SetSize(int, int) {}

func (p *referralsPage) link() string {
	return api.ReferralLink(p.deps.ServerURL, p.summary.ReferralCode)
}

func (p *referralsPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case referralsLoadedMsg:
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, sessionGuard(msg.err)
		}
		p.summary = msg.summary
		p.loaded = true

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return p, Navigate(PageDashboard)
		case "r":
			return p, p.Init()
		case "c":
			if !p.loaded {
				return p, nil
			}
			if err := clipboard.WriteAll(p.link()); err != nil {
				p.copyNote = "Não foi possível copiar: " + err.Error()
			} else {
				p.copyNote = "Link copiado!"
			}
		}
	}
	return p, nil
}

func (p *referralsPage) View() string {
	s := p.deps.Styles
	var sb strings.Builder

	sb.WriteString(s.Header.Render("Programa de Indicações"))
	sb.WriteString("\n\n")

	if p.errText != "" {
		sb.WriteString(s.Error.Render(p.errText) + "\n\n")
	}
	if !p.loaded {
		sb.WriteString(s.Muted.Render("Carregando...") + "\n")
		return sb.String()
	}

	sb.WriteString(s.Card.Render(
		s.Muted.Render("Seu código") + "  " + s.Primary.Render(p.summary.ReferralCode) + "\n" +
			s.Muted.Render("Seu link  ") + "  " + s.Body.Render(p.link()),
	))
	sb.WriteString("\n")
	if p.copyNote != "" {
		sb.WriteString(s.Success.Render(p.copyNote) + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Total de indicados: %s    Comissão acumulada: %s\n\n",
		s.Bold.Render(fmt.Sprintf("%d", p.summary.TotalReferrals)),
		s.Money.Render(money.FormatBRL(p.summary.TotalCommission)),
	))

	rates := NewSimpleTable("Comissões por Nível", "Nível", "Comissão")
	for _, l := range referralLevels {
		rates.AddRow(fmt.Sprintf("%d", l.level), l.rate)
	}
	sb.WriteString(rates.View(s))
	sb.WriteString("\n")

	network := NewSimpleTable("Minha Rede", "Nível", "Status", "Comissão")
	network.Empty = "Você ainda não indicou ninguém"
	for _, ref := range p.summary.Referrals {
		network.AddRow(
			fmt.Sprintf("%d", ref.Level),
			ref.Status,
			money.FormatBRL(ref.TotalCommission),
		)
	}
	sb.WriteString(network.View(s))

	sb.WriteString(s.Help.Render("c copiar link · r atualizar · esc voltar"))
	return sb.String()
}
