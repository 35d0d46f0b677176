package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"vaulterm/internal/api"
	"vaulterm/internal/money"
	"vaulterm/internal/validate"
)

// Status filter cycle for the user list. Empty means all.
var userStatusFilters = []api.UserStatus{
	"",
	api.UserPending,
	api.UserActive,
	api.UserSuspended,
	api.UserRejected,
}

var adjustmentTypes = []string{"add", "subtract", "set"}

var balanceTypes = []struct {
	key   string
	label string
}{
	{"brl_balance", "Saldo Total"},
	{"available_for_withdrawal", "Disponível para Saque"},
	{"referral_bonus", "Bônus de Indicação"},
}

// adminUsersPage manages accounts: approve/reject pending registrations,
// suspend and reactivate, and adjust balances through a small form.
type adminUsersPage struct {
	deps Deps

	users  []api.User
	loaded bool
	filter int
	cursor int

	// balance adjustment form state
	adjusting   bool
	adjustUser  api.User
	adjustType  int
	balanceType int
	amountInput textinput.Model
	notesInput  textinput.Model
	adjustFocus int // 0 amount, 1 notes

	busy    bool
	errText string
	okText  string
}

type adminUsersLoadedMsg struct {
	users []api.User
	err   error
}

type adminUserActionMsg struct {
	note string
	err  error
}

func newAdminUsersPage(deps Deps) *adminUsersPage {
	amount := textinput.New()
	amount.Placeholder = "0,00"
	amount.CharLimit = 16

	notes := textinput.New()
	notes.Placeholder = "motivo do ajuste"
	notes.CharLimit = 240

	return &adminUsersPage{deps: deps, amountInput: amount, notesInput: notes}
}

func (p *adminUsersPage) Init() tea.Cmd {
	p.errText = ""
	p.okText = ""
	p.adjusting = false
	p.busy = false
	return p.reload()
}

func (p *adminUsersPage) SetSize(int, int) {}

func (p *adminUsersPage) reload() tea.Cmd {
	deps := p.deps
	status := userStatusFilters[p.filter]
	return func() tea.Msg {
		users, err := deps.Client.AdminUsers(context.Background(), status)
		return adminUsersLoadedMsg{users: users, err: err}
	}
}

func (p *adminUsersPage) selectedUser() (api.User, bool) {
	if len(p.users) == 0 || p.cursor >= len(p.users) {
		return api.User{}, false
	}
	return p.users[p.cursor], true
}

// action wraps a user operation in the busy/reload cycle.
func (p *adminUsersPage) action(note string, fn func(ctx context.Context) error) tea.Cmd {
	p.busy = true
	p.errText = ""
	return func() tea.Msg {
		err := fn(context.Background())
		return adminUserActionMsg{note: note, err: err}
	}
}

func (p *adminUsersPage) submitAdjustment() tea.Cmd {
	v, errText := validate.Amount(p.amountInput.Value(), 0, 0)
	if errText != "" {
		p.errText = errText
		return nil
	}

	deps := p.deps
	userID := p.adjustUser.ID
	req := api.BalanceAdjustment{
		AdjustmentType: adjustmentTypes[p.adjustType],
		BalanceType:    balanceTypes[p.balanceType].key,
		Amount:         v,
		Notes:          strings.TrimSpace(p.notesInput.Value()),
	}
	return p.action("Saldo ajustado com sucesso!", func(ctx context.Context) error {
		return deps.Client.AdjustBalance(ctx, userID, req)
	})
}

func (p *adminUsersPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case adminUsersLoadedMsg:
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, sessionGuard(msg.err)
		}
		p.users = msg.users
		p.loaded = true
		if p.cursor >= len(p.users) {
			p.cursor = 0
		}

	case adminUserActionMsg:
		p.busy = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, sessionGuard(msg.err)
		}
		p.okText = msg.note
		p.adjusting = false
		return p, p.reload()

	case tea.KeyMsg:
		if p.busy {
			return p, nil
		}
		if p.adjusting {
			return p.handleAdjustKey(msg)
		}
		return p.handleListKey(msg)
	}
	return p, nil
}

func (p *adminUsersPage) handleListKey(msg tea.KeyMsg) (page, tea.Cmd) {
	deps := p.deps
	switch msg.String() {
	case "esc":
		return p, Navigate(PageAdminDashboard)
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.users)-1 {
			p.cursor++
		}
	case "tab", "f":
		p.filter = (p.filter + 1) % len(userStatusFilters)
		p.cursor = 0
		p.loaded = false
		return p, p.reload()
	case "r":
		return p, p.reload()
	case "a":
		if u, ok := p.selectedUser(); ok && u.Status == api.UserPending {
			return p, p.action("Usuário aprovado!", func(ctx context.Context) error {
				return deps.Client.ApproveUser(ctx, u.ID)
			})
		}
	case "x":
		if u, ok := p.selectedUser(); ok && u.Status == api.UserPending {
			return p, p.action("Usuário rejeitado.", func(ctx context.Context) error {
				return deps.Client.RejectUser(ctx, u.ID)
			})
		}
	case "s":
		if u, ok := p.selectedUser(); ok && u.Status == api.UserActive {
			return p, p.action("Usuário suspenso.", func(ctx context.Context) error {
				_, err := deps.Client.UpdateUser(ctx, u.ID, api.AdminUserUpdate{Status: api.UserSuspended})
				return err
			})
		}
	case "t":
		if u, ok := p.selectedUser(); ok && u.Status == api.UserSuspended {
			return p, p.action("Usuário reativado!", func(ctx context.Context) error {
				_, err := deps.Client.UpdateUser(ctx, u.ID, api.AdminUserUpdate{Status: api.UserActive})
				return err
			})
		}
	case "b":
		if u, ok := p.selectedUser(); ok {
			p.adjusting = true
			p.adjustUser = u
			p.adjustType = 0
			p.balanceType = 0
			p.adjustFocus = 0
			p.errText = ""
			p.okText = ""
			p.amountInput.SetValue("")
			p.notesInput.SetValue("")
			p.amountInput.Focus()
			p.notesInput.Blur()
			return p, textinput.Blink
		}
	}
	return p, nil
}

func (p *adminUsersPage) handleAdjustKey(msg tea.KeyMsg) (page, tea.Cmd) {
	switch msg.String() {
	case "esc":
		p.adjusting = false
		p.errText = ""
		return p, nil
	case "left", "right":
		if msg.String() == "right" {
			p.adjustType = (p.adjustType + 1) % len(adjustmentTypes)
		} else {
			p.adjustType = (p.adjustType + len(adjustmentTypes) - 1) % len(adjustmentTypes)
		}
		return p, nil
	case "ctrl+b":
		p.balanceType = (p.balanceType + 1) % len(balanceTypes)
		return p, nil
	case "tab", "shift+tab", "up", "down":
		p.adjustFocus = 1 - p.adjustFocus
		if p.adjustFocus == 0 {
			p.amountInput.Focus()
			p.notesInput.Blur()
		} else {
			p.notesInput.Focus()
			p.amountInput.Blur()
		}
		return p, nil
	case "enter":
		return p, p.submitAdjustment()
	}
	var cmd tea.Cmd
	if p.adjustFocus == 0 {
		p.amountInput, cmd = p.amountInput.Update(msg)
	} else {
		p.notesInput, cmd = p.notesInput.Update(msg)
	}
	return p, cmd
}

func userStatusFilterLabel(st api.UserStatus) string {
	switch st {
	case "":
		return "Todos"
	case api.UserPending:
		return "Pendentes"
	case api.UserActive:
		return "Ativos"
	case api.UserSuspended:
		return "Suspensos"
	case api.UserRejected:
		return "Rejeitados"
	}
	return string(st)
}

func adjustmentTypeLabel(t string) string {
	switch t {
	case "add":
		return "Adicionar"
	case "subtract":
		return "Subtrair"
	case "set":
		return "Definir"
	}
	return t
}

func (p *adminUsersPage) View() string {
	s := p.deps.Styles
	var sb strings.Builder

	sb.WriteString(s.Header.Render("Gerenciar Usuários"))
	sb.WriteString("\n\n")

	if p.okText != "" {
		sb.WriteString(s.Success.Render(p.okText) + "\n\n")
	}
	if p.errText != "" {
		sb.WriteString(s.Error.Render(p.errText) + "\n\n")
	}

	if p.adjusting {
		return p.viewAdjustForm(&sb)
	}

	var tabs []string
	for i, f := range userStatusFilters {
		label := userStatusFilterLabel(f)
		if i == p.filter {
			tabs = append(tabs, s.Badge.Render(label))
		} else {
			tabs = append(tabs, s.Muted.Render(label))
		}
	}
	sb.WriteString(strings.Join(tabs, "  "))
	sb.WriteString("\n\n")

	if !p.loaded {
		sb.WriteString(s.Muted.Render("Carregando...") + "\n")
		return sb.String()
	}

	if len(p.users) == 0 {
		sb.WriteString(s.Muted.Render("Nenhum usuário encontrado") + "\n")
	}
	for i, u := range p.users {
		line := fmt.Sprintf("%-24s %-28s %s  saldo %s",
			u.FullName, u.Email, s.StatusBadge(string(u.Status)), money.FormatBRL(u.BRLBalance))
		if i == p.cursor {
			sb.WriteString(s.Selected.Render(line))
		} else {
			sb.WriteString("  " + s.Body.Render(line))
		}
		sb.WriteString("\n")
	}
	if p.busy {
		sb.WriteString(s.Muted.Render("Processando...") + "\n")
	}

	sb.WriteString(s.Help.Render("a aprovar · x rejeitar · s suspender · t reativar · b ajustar saldo · tab filtrar · esc voltar"))
	return sb.String()
}

func (p *adminUsersPage) viewAdjustForm(sb *strings.Builder) string {
	s := p.deps.Styles

	sb.WriteString(s.Title.Render("Ajustar Saldo — " + p.adjustUser.FullName))
	sb.WriteString("\n\n")

	sb.WriteString(s.Muted.Render("Operação (←/→): "))
	for i, t := range adjustmentTypes {
		label := adjustmentTypeLabel(t)
		if i == p.adjustType {
			sb.WriteString(s.Badge.Render(label))
		} else {
			sb.WriteString(s.Muted.Render(label))
		}
		sb.WriteString(" ")
	}
	sb.WriteString("\n")

	sb.WriteString(s.Muted.Render("Saldo (ctrl+b): "))
	sb.WriteString(s.Bold.Render(balanceTypes[p.balanceType].label))
	sb.WriteString("\n\n")

	sb.WriteString(s.Muted.Render("Valor"))
	sb.WriteString("\n" + p.amountInput.View() + "\n")
	sb.WriteString(s.Muted.Render("Observações"))
	sb.WriteString("\n" + p.notesInput.View() + "\n")

	if p.busy {
		sb.WriteString(s.Muted.Render("Aplicando...") + "\n")
	}
	sb.WriteString(s.Help.Render("enter aplicar · tab alternar campo · esc cancelar"))
	return sb.String()
}
