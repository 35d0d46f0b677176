package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"vaulterm/internal/api"
	"vaulterm/internal/validate"
)

const (
	profFullName = iota
	profPhone
	profCPF
	profPixKey
	profUSDTWallet
	profFieldCount
)

// profilePage shows the account data and lets the user edit the fields
// the server accepts on PUT /users/profile. Email, username and balances
// are read-only here.
type profilePage struct {
	deps Deps

	user   api.User
	loaded bool

	editing bool
	inputs  []textinput.Model
	focus   int

	busy    bool
	errText string
	okText  string
}

type profileLoadedMsg struct {
	user api.User
	err  error
}

type profileSavedMsg struct {
	user api.User
	err  error
}

func newProfilePage(deps Deps) *profilePage {
	placeholders := []string{
		"Nome completo", "(11) 99999-9999", "000.000.000-00",
		"chave PIX", "carteira USDT (TRC20)",
	}
	inputs := make([]textinput.Model, profFieldCount)
	for i, ph := range placeholders {
		ti := textinput.New()
		ti.Placeholder = ph
		ti.CharLimit = 120
		inputs[i] = ti
	}
	return &profilePage{deps: deps, inputs: inputs}
}

func (p *profilePage) Init() tea.Cmd {
	p.errText = ""
	p.okText = ""
	p.editing = false
	p.busy = false
	deps := p.deps
	return func() tea.Msg {
		user, err := deps.Client.Me(context.Background())
		return profileLoadedMsg{user: user, err: err}
	}
}

func (p *profilePage) SetSize(int, int) {}

func (p *profilePage) startEdit() tea.Cmd {
	p.editing = true
	p.okText = ""
	p.errText = ""
	p.inputs[profFullName].SetValue(p.user.FullName)
	p.inputs[profPhone].SetValue(p.user.Phone)
	p.inputs[profCPF].SetValue(p.user.CPF)
	p.inputs[profPixKey].SetValue(p.user.PixKey)
	p.inputs[profUSDTWallet].SetValue(p.user.USDTWallet)
	p.setFocus(0)
	return textinput.Blink
}

func (p *profilePage) setFocus(i int) {
	p.focus = (i + profFieldCount) % profFieldCount
	for j := range p.inputs {
		if j == p.focus {
			p.inputs[j].Focus()
		} else {
			p.inputs[j].Blur()
		}
	}
}

func (p *profilePage) submit() tea.Cmd {
	if msg := validate.Required(p.inputs[profFullName].Value(), "Nome completo"); msg != "" {
		p.errText = msg
		return nil
	}

	p.busy = true
	p.errText = ""
	deps := p.deps
	req := api.ProfileUpdate{
		FullName:   strings.TrimSpace(p.inputs[profFullName].Value()),
		Phone:      strings.TrimSpace(p.inputs[profPhone].Value()),
		CPF:        strings.TrimSpace(p.inputs[profCPF].Value()),
		PixKey:     strings.TrimSpace(p.inputs[profPixKey].Value()),
		USDTWallet: strings.TrimSpace(p.inputs[profUSDTWallet].Value()),
	}
	return func() tea.Msg {
		user, err := deps.Client.UpdateProfile(context.Background(), req)
		return profileSavedMsg{user: user, err: err}
	}
}

func (p *profilePage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, sessionGuard(msg.err)
		}
		p.user = msg.user
		p.loaded = true

	case profileSavedMsg:
		p.busy = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, sessionGuard(msg.err)
		}
		p.user = msg.user
		p.editing = false
		p.okText = "Perfil atualizado com sucesso!"
		// Keep the cached session copy current so other views see the
		// new data without refetching.
		if err := p.deps.Session.UpdateUser(msg.user); err != nil {
			p.errText = err.Error()
		}

	case tea.KeyMsg:
		if p.busy {
			return p, nil
		}
		if p.editing {
			return p.handleEditKey(msg)
		}
		switch msg.String() {
		case "esc":
			return p, Navigate(PageDashboard)
		case "e":
			return p, p.startEdit()
		case "r":
			return p, p.Init()
		}
	}
	return p, nil
}

func (p *profilePage) handleEditKey(msg tea.KeyMsg) (page, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		p.editing = false
		p.errText = ""
		return p, nil
	case tea.KeyEnter:
		if p.focus < profFieldCount-1 {
			p.setFocus(p.focus + 1)
			return p, nil
		}
		return p, p.submit()
	case tea.KeyTab, tea.KeyDown:
		p.setFocus(p.focus + 1)
		return p, nil
	case tea.KeyShiftTab, tea.KeyUp:
		p.setFocus(p.focus - 1)
		return p, nil
	}
	var cmd tea.Cmd
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
	return p, cmd
}

func (p *profilePage) View() string {
	s := p.deps.Styles
	var sb strings.Builder

	sb.WriteString(s.Header.Render("Meu Perfil"))
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

	if p.editing {
		labels := []string{"Nome Completo", "Telefone", "CPF", "Chave PIX", "Carteira USDT"}
		for i, label := range labels {
			sb.WriteString(s.Muted.Render(label))
			sb.WriteString("\n" + p.inputs[i].View() + "\n")
		}
		if p.busy {
			sb.WriteString(s.Muted.Render("Salvando...") + "\n")
		}
		sb.WriteString(s.Help.Render("enter avançar/salvar · tab navegar · esc cancelar"))
		return sb.String()
	}

	u := p.user
	field := func(label, value string) {
		if value == "" {
			value = "—"
		}
		sb.WriteString(fmt.Sprintf("  %-16s %s\n", label, s.Bold.Render(value)))
	}

	sb.WriteString(s.Title.Render("Dados da Conta"))
	sb.WriteString("\n")
	field("Nome", u.FullName)
	field("Usuário", u.Username)
	field("Email", u.Email)
	field("País", u.Country)
	field("Telefone", u.Phone)
	field("CPF", u.CPF)
	sb.WriteString("\n")

	sb.WriteString(s.Title.Render("Recebimento"))
	sb.WriteString("\n")
	field("Chave PIX", u.PixKey)
	field("Carteira USDT", u.USDTWallet)
	sb.WriteString("\n")

	sb.WriteString(s.Title.Render("Conta"))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %-16s %s\n", "Status", s.StatusBadge(string(u.Status))))
	kyc := fmt.Sprintf("%d%%", u.KYCPercentage)
	if u.KYCVerified {
		kyc += " " + s.Success.Render("verificado")
	}
	sb.WriteString(fmt.Sprintf("  %-16s %s\n", "KYC", kyc))
	field("Código", u.ReferralCode)
	field("Membro desde", u.MemberSince.Format("02/01/2006"))

	sb.WriteString(s.Help.Render("e editar · r atualizar · esc voltar"))
	return sb.String()
}
