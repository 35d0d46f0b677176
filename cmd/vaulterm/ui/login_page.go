package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"vaulterm/internal/api"
	"vaulterm/internal/validate"
)

// loginPage handles both the user login and the admin-console login; the
// two differ only in endpoint and landing page.
type loginPage struct {
	deps  Deps
	admin bool

	email    textinput.Model
	password textinput.Model
	focus    int

	busy    bool
	errText string
	width   int
}

type loginDoneMsg struct {
	resp  api.LoginResponse
	err   error
	admin bool
}

func newLoginPage(deps Deps, admin bool) *loginPage {
	email := textinput.New()
	email.Placeholder = "email@exemplo.com"
	email.CharLimit = 120
	email.Focus()

	password := textinput.New()
	password.Placeholder = "senha"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 120

	return &loginPage{deps: deps, admin: admin, email: email, password: password}
}

func (p *loginPage) Init() tea.Cmd {
	p.busy = false
	p.errText = ""
	p.password.SetValue("")
	p.focus = 0
	p.email.Focus()
	p.password.Blur()
	return textinput.Blink
}

func (p *loginPage) SetSize(w, _ int) { p.width = w }

func (p *loginPage) submit() tea.Cmd {
	email := strings.TrimSpace(p.email.Value())
	password := p.password.Value()

	if msg := validate.Email(email); msg != "" {
		p.errText = msg
		return nil
	}
	if msg := validate.Required(password, "Senha"); msg != "" {
		p.errText = msg
		return nil
	}

	p.busy = true
	p.errText = ""
	deps := p.deps
	admin := p.admin
	return func() tea.Msg {
		req := api.LoginRequest{Email: email, Password: password}
		var resp api.LoginResponse
		var err error
		if admin {
			resp, err = deps.Client.AdminLogin(context.Background(), req)
		} else {
			resp, err = deps.Client.Login(context.Background(), req)
		}
		return loginDoneMsg{resp: resp, err: err, admin: admin}
	}
}

func (p *loginPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		if msg.admin != p.admin {
			return p, nil
		}
		p.busy = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, nil
		}
		if err := p.deps.Session.Save(msg.resp.Token, msg.resp.User); err != nil {
			p.errText = err.Error()
			return p, nil
		}
		if msg.resp.User.IsAdmin {
			return p, Navigate(PageAdminDashboard)
		}
		return p, Navigate(PageDashboard)

	case tea.KeyMsg:
		if p.busy {
			return p, nil
		}
		switch msg.Type {
		case tea.KeyEnter:
			if p.focus == 0 {
				p.nextField()
				return p, nil
			}
			return p, p.submit()
		case tea.KeyTab, tea.KeyDown:
			p.nextField()
			return p, nil
		case tea.KeyShiftTab, tea.KeyUp:
			p.nextField()
			return p, nil
		case tea.KeyCtrlR:
			if !p.admin {
				return p, Navigate(PageRegister)
			}
		case tea.KeyCtrlA:
			if p.admin {
				return p, Navigate(PageLogin)
			}
			return p, Navigate(PageAdminLogin)
		}
	}

	var cmd tea.Cmd
	if p.focus == 0 {
		p.email, cmd = p.email.Update(msg)
	} else {
		p.password, cmd = p.password.Update(msg)
	}
	return p, cmd
}

func (p *loginPage) nextField() {
	p.focus = (p.focus + 1) % 2
	if p.focus == 0 {
		p.email.Focus()
		p.password.Blur()
	} else {
		p.password.Focus()
		p.email.Blur()
	}
}

func (p *loginPage) View() string {
	s := p.deps.Styles
	var sb strings.Builder

	if p.admin {
		sb.WriteString(s.Header.Render("VAULTERM — Painel Administrativo"))
	} else {
		sb.WriteString(s.Header.Render("VAULTERM — Entrar"))
	}
	sb.WriteString("\n\n")

	sb.WriteString(s.Muted.Render("Email"))
	sb.WriteString("\n" + p.email.View() + "\n\n")
	sb.WriteString(s.Muted.Render("Senha"))
	sb.WriteString("\n" + p.password.View() + "\n\n")

	if p.errText != "" {
		sb.WriteString(s.Error.Render(p.errText) + "\n\n")
	}
	if p.busy {
		sb.WriteString(s.Muted.Render("Entrando...") + "\n")
	}

	if p.admin {
		sb.WriteString(s.Help.Render("enter entrar · ctrl+a login de usuário · ctrl+c sair"))
	} else {
		sb.WriteString(s.Help.Render("enter entrar · ctrl+r cadastrar · ctrl+a admin · ctrl+c sair"))
	}
	return sb.String()
}
