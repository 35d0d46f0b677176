package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"vaulterm/internal/api"
	"vaulterm/internal/money"
)

var adminTxTypeFilters = []api.TransactionType{
	"",
	api.TxDeposit,
	api.TxWithdrawal,
}

var adminTxStatusFilters = []api.TransactionStatus{
	api.TxPending,
	api.TxApproved,
	api.TxRejected,
	api.TxCompleted,
	"",
}

// adminTransactionsPage is the approval queue: deposits and withdrawals
// filtered by type and status, with approve, reject-with-reason and
// mark-completed actions.
type adminTransactionsPage struct {
	deps Deps

	txns   []api.Transaction
	loaded bool

	typeFilter   int
	statusFilter int
	cursor       int

	// reject sub-mode collects the reason before the request is sent
	rejecting   bool
	rejectTx    api.Transaction
	reasonInput textinput.Model

	busy    bool
	errText string
	okText  string
}

type adminTxnsLoadedMsg struct {
	txns []api.Transaction
	err  error
}

type adminTxnActionMsg struct {
	note string
	err  error
}

func newAdminTransactionsPage(deps Deps) *adminTransactionsPage {
	reason := textinput.New()
	reason.Placeholder = "motivo da rejeição"
	reason.CharLimit = 240
	return &adminTransactionsPage{deps: deps, reasonInput: reason}
}

func (p *adminTransactionsPage) Init() tea.Cmd {
	p.errText = ""
	p.okText = ""
	p.rejecting = false
	p.busy = false
	return p.reload()
}

func (p *adminTransactionsPage) SetSize(int, int) {}

func (p *adminTransactionsPage) reload() tea.Cmd {
	deps := p.deps
	txType := adminTxTypeFilters[p.typeFilter]
	status := adminTxStatusFilters[p.statusFilter]
	return func() tea.Msg {
		txns, err := deps.Client.AdminTransactions(context.Background(), txType, status)
		return adminTxnsLoadedMsg{txns: txns, err: err}
	}
}

func (p *adminTransactionsPage) selectedTxn() (api.Transaction, bool) {
	if len(p.txns) == 0 || p.cursor >= len(p.txns) {
		return api.Transaction{}, false
	}
	return p.txns[p.cursor], true
}

func (p *adminTransactionsPage) action(note string, fn func(ctx context.Context) error) tea.Cmd {
	p.busy = true
	p.errText = ""
	return func() tea.Msg {
		err := fn(context.Background())
		return adminTxnActionMsg{note: note, err: err}
	}
}

func (p *adminTransactionsPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case adminTxnsLoadedMsg:
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, sessionGuard(msg.err)
		}
		p.txns = msg.txns
		p.loaded = true
		if p.cursor >= len(p.txns) {
			p.cursor = 0
		}

	case adminTxnActionMsg:
		p.busy = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, sessionGuard(msg.err)
		}
		p.okText = msg.note
		p.rejecting = false
		return p, p.reload()

	case tea.KeyMsg:
		if p.busy {
			return p, nil
		}
		if p.rejecting {
			return p.handleRejectKey(msg)
		}
		return p.handleListKey(msg)
	}
	return p, nil
}

func (p *adminTransactionsPage) handleListKey(msg tea.KeyMsg) (page, tea.Cmd) {
	deps := p.deps
	switch msg.String() {
	case "esc":
		return p, Navigate(PageAdminDashboard)
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.txns)-1 {
			p.cursor++
		}
	case "tab":
		p.typeFilter = (p.typeFilter + 1) % len(adminTxTypeFilters)
		p.cursor = 0
		p.loaded = false
		return p, p.reload()
	case "f":
		p.statusFilter = (p.statusFilter + 1) % len(adminTxStatusFilters)
		p.cursor = 0
		p.loaded = false
		return p, p.reload()
	case "r":
		return p, p.reload()
	case "a":
		if t, ok := p.selectedTxn(); ok && t.Status == api.TxPending {
			return p, p.action("Transação aprovada!", func(ctx context.Context) error {
				return deps.Client.ApproveTransaction(ctx, t.ID)
			})
		}
	case "x":
		if t, ok := p.selectedTxn(); ok && t.Status == api.TxPending {
			p.rejecting = true
			p.rejectTx = t
			p.errText = ""
			p.okText = ""
			p.reasonInput.SetValue("")
			p.reasonInput.Focus()
			return p, textinput.Blink
		}
	case "c":
		// Withdrawals move approved -> completed once the payout is sent.
		if t, ok := p.selectedTxn(); ok && t.Type == api.TxWithdrawal && t.Status == api.TxApproved {
			return p, p.action("Saque marcado como concluído!", func(ctx context.Context) error {
				return deps.Client.UpdateWithdrawalStatus(ctx, t.ID, api.TxCompleted)
			})
		}
	}
	return p, nil
}

func (p *adminTransactionsPage) handleRejectKey(msg tea.KeyMsg) (page, tea.Cmd) {
	deps := p.deps
	switch msg.Type {
	case tea.KeyEsc:
		p.rejecting = false
		return p, nil
	case tea.KeyEnter:
		reason := strings.TrimSpace(p.reasonInput.Value())
		if reason == "" {
			p.errText = "Informe o motivo da rejeição"
			return p, nil
		}
		txID := p.rejectTx.ID
		return p, p.action("Transação rejeitada.", func(ctx context.Context) error {
			return deps.Client.RejectTransaction(ctx, txID, reason)
		})
	}
	var cmd tea.Cmd
	p.reasonInput, cmd = p.reasonInput.Update(msg)
	return p, cmd
}

func txStatusFilterLabel(st api.TransactionStatus) string {
	switch st {
	case "":
		return "Todas"
	case api.TxPending:
		return "Pendentes"
	case api.TxApproved:
		return "Aprovadas"
	case api.TxRejected:
		return "Rejeitadas"
	case api.TxCompleted:
		return "Concluídas"
	}
	return string(st)
}

func (p *adminTransactionsPage) View() string {
	s := p.deps.Styles
	var sb strings.Builder

	sb.WriteString(s.Header.Render("Gerenciar Transações"))
	sb.WriteString("\n\n")

	if p.okText != "" {
		sb.WriteString(s.Success.Render(p.okText) + "\n\n")
	}
	if p.errText != "" {
		sb.WriteString(s.Error.Render(p.errText) + "\n\n")
	}

	if p.rejecting {
		sb.WriteString(s.Title.Render(fmt.Sprintf("Rejeitar %s de %s",
			txTypeLabel(p.rejectTx.Type), money.FormatBRL(p.rejectTx.Amount))))
		sb.WriteString("\n\n")
		sb.WriteString(s.Muted.Render("Motivo"))
		sb.WriteString("\n" + p.reasonInput.View() + "\n")
		if p.busy {
			sb.WriteString(s.Muted.Render("Enviando...") + "\n")
		}
		sb.WriteString(s.Help.Render("enter rejeitar · esc cancelar"))
		return sb.String()
	}

	var typeTabs []string
	for i, f := range adminTxTypeFilters {
		label := filterLabel(f)
		if f == "" {
			label = "Todas"
		}
		if i == p.typeFilter {
			typeTabs = append(typeTabs, s.Badge.Render(label))
		} else {
			typeTabs = append(typeTabs, s.Muted.Render(label))
		}
	}
	var statusTabs []string
	for i, f := range adminTxStatusFilters {
		label := txStatusFilterLabel(f)
		if i == p.statusFilter {
			statusTabs = append(statusTabs, s.Badge.Render(label))
		} else {
			statusTabs = append(statusTabs, s.Muted.Render(label))
		}
	}
	sb.WriteString("Tipo:   " + strings.Join(typeTabs, "  ") + "\n")
	sb.WriteString("Status: " + strings.Join(statusTabs, "  ") + "\n\n")

	if !p.loaded {
		sb.WriteString(s.Muted.Render("Carregando...") + "\n")
		return sb.String()
	}

	if len(p.txns) == 0 {
		sb.WriteString(s.Muted.Render("Nenhuma transação encontrada") + "\n")
	}
	for i, t := range p.txns {
		line := fmt.Sprintf("%s  %-20s %12s  %s",
			t.CreatedAt.Format("02/01 15:04"),
			txTypeLabel(t.Type),
			money.FormatBRL(t.Amount),
			s.StatusBadge(string(t.Status)))
		if t.PaymentProof != "" {
			line += "  " + s.Muted.Render("comprovante: "+t.PaymentProof)
		}
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

	sb.WriteString(s.Help.Render("a aprovar · x rejeitar · c concluir saque · tab tipo · f status · esc voltar"))
	return sb.String()
}
