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

// Withdrawal wizard steps. The fee step only exists when the platform
// collects the fee via a separate deposit; with deduct_from_balance the
// wizard jumps straight from method to confirm.
const (
	wdStepAmount = iota
	wdStepMethod
	wdStepFee
	wdStepConfirm
)

// withdrawPage drives the withdrawal request flow. The ceiling is the
// user's available-for-withdrawal balance, the floor the configured
// minimum; both block progression before any request is made.
type withdrawPage struct {
	deps Deps

	settings api.Settings
	balance  api.Balance
	loaded   bool

	step         int
	amountInput  textinput.Model
	amount       float64
	methodCursor int
	feeProof     textinput.Model

	busy    bool
	errText string
	okText  string
	feeNote string // server-echoed fee after submission
}

type withdrawDataMsg struct {
	settings  api.Settings
	dashboard api.Dashboard
	err       error
}

type withdrawDoneMsg struct {
	resp api.WithdrawalResponse
	err  error
}

var withdrawMethods = []struct {
	method api.PaymentMethod
	label  string
}{
	{api.MethodPIX, "PIX (chave cadastrada no perfil)"},
	{api.MethodUSDT, "USDT (carteira cadastrada no perfil)"},
}

func newWithdrawPage(deps Deps) *withdrawPage {
	amount := textinput.New()
	amount.Placeholder = "0,00"
	amount.CharLimit = 16

	proof := textinput.New()
	proof.Placeholder = "comprovante do pagamento da taxa"
	proof.CharLimit = 240

	return &withdrawPage{deps: deps, amountInput: amount, feeProof: proof}
}

func (p *withdrawPage) Init() tea.Cmd {
	p.step = wdStepAmount
	p.errText = ""
	p.okText = ""
	p.feeNote = ""
	p.busy = false
	p.amountInput.SetValue("")
	p.feeProof.SetValue("")
	p.amountInput.Focus()
	deps := p.deps
	return tea.Batch(textinput.Blink, func() tea.Msg {
		var msg withdrawDataMsg
		g, ctx := errgroup.WithContext(context.Background())
		g.Go(func() (err error) {
			msg.settings, err = deps.Client.Settings(ctx)
			return err
		})
		g.Go(func() (err error) {
			msg.dashboard, err = deps.Client.Dashboard(ctx)
			return err
		})
		msg.err = g.Wait()
		return msg
	})
}

func (p *withdrawPage) SetSize(int, int) {}

// Step returns the current wizard step, for tests.
func (p *withdrawPage) Step() int { return p.step }

func (p *withdrawPage) advanceFromAmount() {
	v, errText := validate.Amount(p.amountInput.Value(), p.settings.MinWithdrawal, 0)
	if errText != "" {
		p.errText = errText
		return
	}
	// The available balance is a hard ceiling even when it is zero.
	if v > p.balance.AvailableForWithdrawal {
		p.errText = fmt.Sprintf("Valor máximo: %s", money.FormatBRL(p.balance.AvailableForWithdrawal))
		return
	}
	p.amount = v
	p.errText = ""
	p.step = wdStepMethod
}

// advanceFromMethod skips the fee step entirely when the fee is deducted
// from the balance.
func (p *withdrawPage) advanceFromMethod() tea.Cmd {
	if p.settings.FeeStepRequired() {
		p.step = wdStepFee
		p.feeProof.Focus()
		return textinput.Blink
	}
	p.step = wdStepConfirm
	return nil
}

func (p *withdrawPage) advanceFromFee() {
	if strings.TrimSpace(p.feeProof.Value()) == "" {
		p.errText = "Informe o comprovante do pagamento da taxa"
		return
	}
	p.errText = ""
	p.step = wdStepConfirm
}

func (p *withdrawPage) submit() tea.Cmd {
	p.busy = true
	p.errText = ""
	deps := p.deps
	req := api.WithdrawalRequest{
		Amount:          p.amount,
		PaymentMethod:   withdrawMethods[p.methodCursor].method,
		FeePaymentProof: strings.TrimSpace(p.feeProof.Value()),
	}
	return func() tea.Msg {
		resp, err := deps.Client.CreateWithdrawal(context.Background(), req)
		return withdrawDoneMsg{resp: resp, err: err}
	}
}

func (p *withdrawPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case withdrawDataMsg:
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, sessionGuard(msg.err)
		}
		p.settings = msg.settings
		p.balance = msg.dashboard.Balance
		p.loaded = true

	case withdrawDoneMsg:
		p.busy = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, sessionGuard(msg.err)
		}
		p.okText = msg.resp.Message
		p.feeNote = fmt.Sprintf("Taxa aplicada: %s", money.FormatBRL(msg.resp.WithdrawalFee))
		p.step = wdStepAmount
		p.amountInput.SetValue("")
		p.feeProof.SetValue("")
		p.amountInput.Focus()

	case tea.KeyMsg:
		if p.busy {
			return p, nil
		}
		return p.handleKey(msg)
	}
	return p, nil
}

func (p *withdrawPage) handleKey(msg tea.KeyMsg) (page, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		switch p.step {
		case wdStepAmount:
			return p, Navigate(PageDashboard)
		case wdStepConfirm:
			if !p.settings.FeeStepRequired() {
				p.step = wdStepMethod
				return p, nil
			}
			p.step = wdStepFee
		default:
			p.step--
		}
		p.errText = ""
		return p, nil
	}

	switch p.step {
	case wdStepAmount:
		if msg.Type == tea.KeyEnter {
			p.advanceFromAmount()
			return p, nil
		}
		var cmd tea.Cmd
		p.amountInput, cmd = p.amountInput.Update(msg)
		return p, cmd

	case wdStepMethod:
		switch msg.String() {
		case "up", "k":
			if p.methodCursor > 0 {
				p.methodCursor--
			}
		case "down", "j":
			if p.methodCursor < len(withdrawMethods)-1 {
				p.methodCursor++
			}
		case "enter":
			return p, p.advanceFromMethod()
		}
		return p, nil

	case wdStepFee:
		if msg.Type == tea.KeyEnter {
			p.advanceFromFee()
			return p, nil
		}
		var cmd tea.Cmd
		p.feeProof, cmd = p.feeProof.Update(msg)
		return p, cmd

	case wdStepConfirm:
		if msg.Type == tea.KeyEnter {
			return p, p.submit()
		}
	}
	return p, nil
}

func (p *withdrawPage) totalSteps() int {
	if p.settings.FeeStepRequired() {
		return 4
	}
	return 3
}

func (p *withdrawPage) stepNumber() int {
	n := p.step + 1
	if !p.settings.FeeStepRequired() && p.step == wdStepConfirm {
		n--
	}
	return n
}

func (p *withdrawPage) View() string {
	s := p.deps.Styles
	var sb strings.Builder

	sb.WriteString(s.Header.Render("Sacar"))
	sb.WriteString("\n")
	sb.WriteString(s.Muted.Render(fmt.Sprintf("Passo %d de %d", p.stepNumber(), p.totalSteps())))
	sb.WriteString("\n\n")

	if p.okText != "" {
		sb.WriteString(s.Success.Render(p.okText) + "\n")
		if p.feeNote != "" {
			sb.WriteString(s.Muted.Render(p.feeNote) + "\n")
		}
		sb.WriteString("\n")
	}
	if p.errText != "" {
		sb.WriteString(s.Error.Render(p.errText) + "\n\n")
	}
	if !p.loaded {
		sb.WriteString(s.Muted.Render("Carregando...") + "\n")
		return sb.String()
	}

	switch p.step {
	case wdStepAmount:
		sb.WriteString(s.Title.Render("Valor do Saque"))
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Disponível para saque: %s\n", s.Money.Render(money.FormatBRL(p.balance.AvailableForWithdrawal))))
		sb.WriteString(s.Muted.Render(fmt.Sprintf("Mínimo: %s | Taxa: %s (%s)",
			money.FormatBRL(p.settings.MinWithdrawal), money.FormatBRL(p.settings.WithdrawalFee), feeMethodLabel(p.settings.WithdrawalFeeMethod))))
		sb.WriteString("\n" + p.amountInput.View() + "\n")
		sb.WriteString(s.Help.Render("enter avançar · esc voltar ao painel"))

	case wdStepMethod:
		sb.WriteString(s.Title.Render("Método de Recebimento"))
		sb.WriteString("\n")
		for i, m := range withdrawMethods {
			if i == p.methodCursor {
				sb.WriteString(s.Selected.Render(m.label))
			} else {
				sb.WriteString("  " + s.Body.Render(m.label))
			}
			sb.WriteString("\n")
		}
		sb.WriteString(s.Help.Render("↑/↓ escolher · enter avançar · esc voltar"))

	case wdStepFee:
		sb.WriteString(s.Title.Render("Pagamento da Taxa"))
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("A taxa de saque de %s deve ser paga via depósito antes da liberação.\n",
			s.Bold.Render(money.FormatBRL(p.settings.WithdrawalFee))))
		sb.WriteString("\n")
		sb.WriteString(s.Muted.Render("Comprovante do Pagamento da Taxa"))
		sb.WriteString("\n" + p.feeProof.View() + "\n")
		sb.WriteString(s.Help.Render("enter avançar · esc voltar"))

	case wdStepConfirm:
		sb.WriteString(s.Title.Render("Confirmar Saque"))
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("  Valor:  %s\n", s.Money.Render(money.FormatBRL(p.amount))))
		sb.WriteString(fmt.Sprintf("  Taxa:   %s\n", money.FormatBRL(p.settings.WithdrawalFee)))
		sb.WriteString(fmt.Sprintf("  Método: %s\n", s.Bold.Render(withdrawMethods[p.methodCursor].label)))
		if !p.settings.FeeStepRequired() {
			sb.WriteString(s.Muted.Render("  A taxa será descontada do saldo.") + "\n")
		}
		if p.busy {
			sb.WriteString(s.Muted.Render("  Enviando...") + "\n")
		}
		sb.WriteString(s.Help.Render("enter solicitar saque · esc voltar"))
	}

	return sb.String()
}

func feeMethodLabel(method string) string {
	if method == api.FeeDeductFromBalance {
		return "descontada do saldo"
	}
	return "paga via depósito"
}
