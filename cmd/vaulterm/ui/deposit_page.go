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

// Deposit wizard steps. Linear, no persistence: going back is allowed,
// nothing is sent until the confirm step.
const (
	depStepAmount = iota
	depStepMethod
	depStepDetails
	depStepConfirm
)

// depositPage drives the deposit request flow. The amount is checked
// against the configured min/max before the wizard advances — below-minimum
// input never reaches the network.
type depositPage struct {
	deps Deps

	settings api.Settings
	loaded   bool

	step         int
	amountInput  textinput.Model
	amount       float64
	methodCursor int
	proofInput   textinput.Model
	notesInput   textinput.Model
	detailFocus  int // 0 proof, 1 notes

	busy    bool
	errText string
	okText  string
}

type depositSettingsMsg struct {
	settings api.Settings
	err      error
}

type depositDoneMsg struct {
	txn api.Transaction
	err error
}

var depositMethods = []struct {
	method api.PaymentMethod
	label  string
	hint   string
}{
	{api.MethodPIX, "PIX", "Pagamento instantâneo"},
	{api.MethodUSDT, "USDT (TRC20)", "Criptomoeda"},
	{api.MethodBybitUID, "Bybit UID", "Transferência Bybit"},
}

func newDepositPage(deps Deps) *depositPage {
	amount := textinput.New()
	amount.Placeholder = "0,00"
	amount.CharLimit = 16

	proof := textinput.New()
	proof.Placeholder = "link ou código do comprovante (opcional)"
	proof.CharLimit = 240

	notes := textinput.New()
	notes.Placeholder = "observações (opcional)"
	notes.CharLimit = 240

	return &depositPage{deps: deps, amountInput: amount, proofInput: proof, notesInput: notes}
}

func (p *depositPage) Init() tea.Cmd {
	p.step = depStepAmount
	p.errText = ""
	p.okText = ""
	p.busy = false
	p.amountInput.SetValue("")
	p.proofInput.SetValue("")
	p.notesInput.SetValue("")
	p.amountInput.Focus()
	deps := p.deps
	return tea.Batch(textinput.Blink, func() tea.Msg {
		settings, err := deps.Client.Settings(context.Background())
		return depositSettingsMsg{settings: settings, err: err}
	})
}

func (p *depositPage) SetSize(int, int) {}

// Step returns the current wizard step, for tests.
func (p *depositPage) Step() int { return p.step }

// advanceFromAmount validates the amount against the platform limits and
// only then moves to the method step.
func (p *depositPage) advanceFromAmount() {
	v, errText := validate.Amount(p.amountInput.Value(), p.settings.MinDeposit, p.settings.MaxDeposit)
	if errText != "" {
		p.errText = errText
		return
	}
	p.amount = v
	p.errText = ""
	p.step = depStepMethod
}

func (p *depositPage) submit() tea.Cmd {
	p.busy = true
	p.errText = ""
	deps := p.deps
	req := api.DepositRequest{
		Amount:        p.amount,
		PaymentMethod: depositMethods[p.methodCursor].method,
		PaymentProof:  strings.TrimSpace(p.proofInput.Value()),
		Notes:         strings.TrimSpace(p.notesInput.Value()),
	}
	return func() tea.Msg {
		txn, err := deps.Client.CreateDeposit(context.Background(), req)
		return depositDoneMsg{txn: txn, err: err}
	}
}

func (p *depositPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case depositSettingsMsg:
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, sessionGuard(msg.err)
		}
		p.settings = msg.settings
		p.loaded = true

	case depositDoneMsg:
		p.busy = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, sessionGuard(msg.err)
		}
		p.okText = "Solicitação de depósito enviada! Aguarde aprovação do administrador."
		p.step = depStepAmount
		p.amountInput.SetValue("")
		p.proofInput.SetValue("")
		p.notesInput.SetValue("")
		p.amountInput.Focus()

	case tea.KeyMsg:
		if p.busy {
			return p, nil
		}
		return p.handleKey(msg)
	}
	return p, nil
}

func (p *depositPage) handleKey(msg tea.KeyMsg) (page, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		if p.step == depStepAmount {
			return p, Navigate(PageDashboard)
		}
		p.step--
		p.errText = ""
		return p, nil
	}

	switch p.step {
	case depStepAmount:
		if msg.Type == tea.KeyEnter {
			p.advanceFromAmount()
			return p, nil
		}
		var cmd tea.Cmd
		p.amountInput, cmd = p.amountInput.Update(msg)
		return p, cmd

	case depStepMethod:
		switch msg.String() {
		case "up", "k":
			if p.methodCursor > 0 {
				p.methodCursor--
			}
		case "down", "j":
			if p.methodCursor < len(depositMethods)-1 {
				p.methodCursor++
			}
		case "enter":
			p.step = depStepDetails
			p.detailFocus = 0
			p.proofInput.Focus()
			p.notesInput.Blur()
			return p, textinput.Blink
		}
		return p, nil

	case depStepDetails:
		switch msg.Type {
		case tea.KeyTab, tea.KeyDown, tea.KeyUp, tea.KeyShiftTab:
			p.detailFocus = 1 - p.detailFocus
			if p.detailFocus == 0 {
				p.proofInput.Focus()
				p.notesInput.Blur()
			} else {
				p.notesInput.Focus()
				p.proofInput.Blur()
			}
			return p, nil
		case tea.KeyEnter:
			p.step = depStepConfirm
			return p, nil
		}
		var cmd tea.Cmd
		if p.detailFocus == 0 {
			p.proofInput, cmd = p.proofInput.Update(msg)
		} else {
			p.notesInput, cmd = p.notesInput.Update(msg)
		}
		return p, cmd

	case depStepConfirm:
		if msg.Type == tea.KeyEnter {
			return p, p.submit()
		}
	}
	return p, nil
}

// paymentDetails renders the platform's receiving account for the chosen
// method, from the settings payment directory.
func (p *depositPage) paymentDetails() string {
	s := p.deps.Styles
	pm := p.settings.PaymentMethods
	var sb strings.Builder

	switch depositMethods[p.methodCursor].method {
	case api.MethodPIX:
		sb.WriteString(fmt.Sprintf("  CPF:   %s\n", s.Bold.Render(orLoading(pm.PixCPF))))
		sb.WriteString(fmt.Sprintf("  Banco: %s\n", s.Bold.Render(orLoading(pm.PixBank))))
		sb.WriteString(fmt.Sprintf("  Nome:  %s\n", s.Bold.Render(orLoading(pm.PixName))))
	case api.MethodUSDT:
		sb.WriteString(fmt.Sprintf("  Carteira USDT (TRC20): %s\n", s.Bold.Render(orLoading(pm.USDTWalletTRC20))))
		sb.WriteString(s.Warning.Render("  Use apenas a rede TRC20. Outras redes resultarão em perda de fundos!") + "\n")
	case api.MethodBybitUID:
		sb.WriteString(fmt.Sprintf("  Bybit UID: %s\n", s.Bold.Render(orLoading(pm.BybitUID))))
	}
	return sb.String()
}

func orLoading(v string) string {
	if v == "" {
		return "—"
	}
	return v
}

func (p *depositPage) View() string {
	s := p.deps.Styles
	var sb strings.Builder

	sb.WriteString(s.Header.Render("Depositar"))
	sb.WriteString("\n")
	sb.WriteString(s.Muted.Render(fmt.Sprintf("Passo %d de 4", p.step+1)))
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

	switch p.step {
	case depStepAmount:
		sb.WriteString(s.Title.Render("Valor do Depósito"))
		sb.WriteString("\n")
		sb.WriteString(s.Muted.Render(fmt.Sprintf("Mín: %s | Máx: %s",
			money.FormatBRL(p.settings.MinDeposit), money.FormatBRL(p.settings.MaxDeposit))))
		sb.WriteString("\n" + p.amountInput.View() + "\n")
		sb.WriteString(s.Help.Render("enter avançar · esc voltar ao painel"))

	case depStepMethod:
		sb.WriteString(s.Title.Render("Método de Pagamento"))
		sb.WriteString("\n")
		for i, m := range depositMethods {
			line := fmt.Sprintf("%s — %s", m.label, m.hint)
			if i == p.methodCursor {
				sb.WriteString(s.Selected.Render(line))
			} else {
				sb.WriteString("  " + s.Body.Render(line))
			}
			sb.WriteString("\n")
		}
		sb.WriteString(s.Help.Render("↑/↓ escolher · enter avançar · esc voltar"))

	case depStepDetails:
		sb.WriteString(s.Title.Render("Detalhes do Pagamento"))
		sb.WriteString("\n")
		sb.WriteString(p.paymentDetails())
		sb.WriteString("\n")
		sb.WriteString(s.Muted.Render("Comprovante de Pagamento"))
		sb.WriteString("\n" + p.proofInput.View() + "\n")
		sb.WriteString(s.Muted.Render("Observações"))
		sb.WriteString("\n" + p.notesInput.View() + "\n")
		sb.WriteString(s.Help.Render("tab alternar campo · enter avançar · esc voltar"))

	case depStepConfirm:
		sb.WriteString(s.Title.Render("Confirmar Depósito"))
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("  Valor:  %s\n", s.Money.Render(money.FormatBRL(p.amount))))
		sb.WriteString(fmt.Sprintf("  Método: %s\n", s.Bold.Render(depositMethods[p.methodCursor].label)))
		if proof := strings.TrimSpace(p.proofInput.Value()); proof != "" {
			sb.WriteString(fmt.Sprintf("  Comprovante: %s\n", proof))
		}
		if p.busy {
			sb.WriteString(s.Muted.Render("  Enviando...") + "\n")
		}
		sb.WriteString(s.Help.Render("enter solicitar depósito · esc voltar"))
	}

	return sb.String()
}
