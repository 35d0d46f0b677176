package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"vaulterm/internal/api"
	"vaulterm/internal/validate"
)

// registerPage is the account-creation form. The password checks run
// locally and block submission; everything else is the server's call. The
// new account stays pending until an admin approves it.
type registerPage struct {
	deps Deps

	inputs []textinput.Model
	focus  int

	busy    bool
	errText string
	okText  string
}

const (
	regFullName = iota
	regUsername
	regEmail
	regPassword
	regConfirm
	regCountry
	regReferral
	regFieldCount
)

type registerDoneMsg struct {
	resp api.MessageResponse
	err  error
}

func newRegisterPage(deps Deps) *registerPage {
	labels := []struct {
		placeholder string
		echo        textinput.EchoMode
	}{
		{"Nome completo", textinput.EchoNormal},
		{"usuario", textinput.EchoNormal},
		{"email@exemplo.com", textinput.EchoNormal},
		{"senha (mín. 6 caracteres)", textinput.EchoPassword},
		{"confirme a senha", textinput.EchoPassword},
		{"Brasil", textinput.EchoNormal},
		{"código de indicação (opcional)", textinput.EchoNormal},
	}

	inputs := make([]textinput.Model, regFieldCount)
	for i, l := range labels {
		ti := textinput.New()
		ti.Placeholder = l.placeholder
		ti.EchoMode = l.echo
		ti.CharLimit = 120
		inputs[i] = ti
	}
	inputs[regCountry].SetValue("Brasil")
	inputs[regFullName].Focus()

	return &registerPage{deps: deps, inputs: inputs}
}

func (p *registerPage) Init() tea.Cmd {
	p.busy = false
	p.errText = ""
	p.okText = ""
	return textinput.Blink
}

func (p *registerPage) SetSize(int, int) {}

func (p *registerPage) setFocus(i int) {
	p.focus = (i + regFieldCount) % regFieldCount
	for j := range p.inputs {
		if j == p.focus {
			p.inputs[j].Focus()
		} else {
			p.inputs[j].Blur()
		}
	}
}

// validateLocal runs the pre-submission checks. Returns "" when the form
// may be sent.
func (p *registerPage) validateLocal() string {
	if msg := validate.Required(p.inputs[regFullName].Value(), "Nome completo"); msg != "" {
		return msg
	}
	if msg := validate.Required(p.inputs[regUsername].Value(), "Nome de usuário"); msg != "" {
		return msg
	}
	if msg := validate.Email(p.inputs[regEmail].Value()); msg != "" {
		return msg
	}
	return validate.Password(p.inputs[regPassword].Value(), p.inputs[regConfirm].Value())
}

func (p *registerPage) submit() tea.Cmd {
	if msg := p.validateLocal(); msg != "" {
		p.errText = msg
		return nil
	}

	p.busy = true
	p.errText = ""
	deps := p.deps
	req := api.RegisterRequest{
		FullName:     strings.TrimSpace(p.inputs[regFullName].Value()),
		Username:     strings.TrimSpace(p.inputs[regUsername].Value()),
		Email:        strings.TrimSpace(p.inputs[regEmail].Value()),
		Password:     p.inputs[regPassword].Value(),
		Country:      strings.TrimSpace(p.inputs[regCountry].Value()),
		ReferralCode: strings.TrimSpace(p.inputs[regReferral].Value()),
	}
	return func() tea.Msg {
		resp, err := deps.Client.Register(context.Background(), req)
		return registerDoneMsg{resp: resp, err: err}
	}
}

func (p *registerPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case registerDoneMsg:
		p.busy = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, nil
		}
		p.okText = msg.resp.Message

	case tea.KeyMsg:
		if p.busy {
			return p, nil
		}
		switch msg.Type {
		case tea.KeyEsc:
			return p, Navigate(PageLogin)
		case tea.KeyEnter:
			if p.okText != "" {
				return p, Navigate(PageLogin)
			}
			if p.focus < regFieldCount-1 {
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
	}

	var cmd tea.Cmd
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
	return p, cmd
}

func (p *registerPage) View() string {
	s := p.deps.Styles
	var sb strings.Builder

	sb.WriteString(s.Header.Render("VAULTERM — Criar Nova Conta"))
	sb.WriteString("\n\n")

	labels := []string{
		"Nome Completo", "Nome de Usuário", "Email", "Senha",
		"Confirmar Senha", "País", "Código de Indicação",
	}
	for i, label := range labels {
		sb.WriteString(s.Muted.Render(label))
		sb.WriteString("\n" + p.inputs[i].View() + "\n")
	}
	sb.WriteString("\n")

	if p.okText != "" {
		sb.WriteString(s.Success.Render(p.okText) + "\n")
		sb.WriteString(s.Muted.Render("Pressione enter para ir ao login.") + "\n")
	}
	if p.errText != "" {
		sb.WriteString(s.Error.Render(p.errText) + "\n")
	}
	if p.busy {
		sb.WriteString(s.Muted.Render("Cadastrando...") + "\n")
	}

	sb.WriteString(s.Help.Render("enter avançar/enviar · esc voltar ao login"))
	return sb.String()
}
