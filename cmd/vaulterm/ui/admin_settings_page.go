package ui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"vaulterm/internal/api"
)

const (
	setWithdrawalFee = iota
	setMinDeposit
	setMaxDeposit
	setMinWithdrawal
	setPixCPF
	setPixBank
	setPixName
	setUSDTWallet
	setUSDTWalletBEP20
	setBybitUID
	setWhatsapp
	setFieldCount
)

// adminSettingsPage edits the platform fee/limit configuration and the
// payment directory shown to users during deposits.
type adminSettingsPage struct {
	deps Deps

	settings api.Settings
	loaded   bool

	inputs    []textinput.Model
	focus     int
	feeMethod string

	busy    bool
	errText string
	okText  string
}

type adminSettingsLoadedMsg struct {
	settings api.Settings
	err      error
}

type adminSettingsSavedMsg struct {
	err error
}

func newAdminSettingsPage(deps Deps) *adminSettingsPage {
	placeholders := []string{
		"taxa de saque (R$)", "depósito mínimo", "depósito máximo", "saque mínimo",
		"CPF da chave PIX", "banco PIX", "nome do titular PIX",
		"carteira USDT (TRC20)", "carteira USDT (BEP20)", "Bybit UID", "WhatsApp de suporte",
	}
	inputs := make([]textinput.Model, setFieldCount)
	for i, ph := range placeholders {
		ti := textinput.New()
		ti.Placeholder = ph
		ti.CharLimit = 120
		inputs[i] = ti
	}
	return &adminSettingsPage{deps: deps, inputs: inputs}
}

func (p *adminSettingsPage) Init() tea.Cmd {
	p.errText = ""
	p.okText = ""
	p.busy = false
	deps := p.deps
	return func() tea.Msg {
		settings, err := deps.Client.Settings(context.Background())
		return adminSettingsLoadedMsg{settings: settings, err: err}
	}
}

func (p *adminSettingsPage) SetSize(int, int) {}

func (p *adminSettingsPage) fill(s api.Settings) {
	p.settings = s
	p.feeMethod = s.WithdrawalFeeMethod
	if p.feeMethod == "" {
		p.feeMethod = api.FeeRequireDeposit
	}
	num := func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	p.inputs[setWithdrawalFee].SetValue(num(s.WithdrawalFee))
	p.inputs[setMinDeposit].SetValue(num(s.MinDeposit))
	p.inputs[setMaxDeposit].SetValue(num(s.MaxDeposit))
	p.inputs[setMinWithdrawal].SetValue(num(s.MinWithdrawal))
	p.inputs[setPixCPF].SetValue(s.PaymentMethods.PixCPF)
	p.inputs[setPixBank].SetValue(s.PaymentMethods.PixBank)
	p.inputs[setPixName].SetValue(s.PaymentMethods.PixName)
	p.inputs[setUSDTWallet].SetValue(s.PaymentMethods.USDTWalletTRC20)
	p.inputs[setUSDTWalletBEP20].SetValue(s.PaymentMethods.USDTWalletBEP20)
	p.inputs[setBybitUID].SetValue(s.PaymentMethods.BybitUID)
	p.inputs[setWhatsapp].SetValue(s.PaymentMethods.WhatsappSupport)
	p.setFocus(0)
}

func (p *adminSettingsPage) setFocus(i int) {
	p.focus = (i + setFieldCount) % setFieldCount
	for j := range p.inputs {
		if j == p.focus {
			p.inputs[j].Focus()
		} else {
			p.inputs[j].Blur()
		}
	}
}

// parseNumber accepts both comma and dot decimals, matching the user-side
// amount fields.
func parseNumber(input string) (float64, error) {
	input = strings.TrimSpace(strings.ReplaceAll(input, ",", "."))
	return strconv.ParseFloat(input, 64)
}

func (p *adminSettingsPage) submit() tea.Cmd {
	numbers := []struct {
		idx   int
		label string
	}{
		{setWithdrawalFee, "Taxa de saque"},
		{setMinDeposit, "Depósito mínimo"},
		{setMaxDeposit, "Depósito máximo"},
		{setMinWithdrawal, "Saque mínimo"},
	}
	s := p.settings
	s.WithdrawalFeeMethod = p.feeMethod
	dsts := []*float64{&s.WithdrawalFee, &s.MinDeposit, &s.MaxDeposit, &s.MinWithdrawal}
	for i, n := range numbers {
		v, err := parseNumber(p.inputs[n.idx].Value())
		if err != nil || v < 0 {
			p.errText = n.label + ": valor inválido"
			return nil
		}
		*dsts[i] = v
	}
	if s.MaxDeposit > 0 && s.MinDeposit > s.MaxDeposit {
		p.errText = "Depósito mínimo não pode exceder o máximo"
		return nil
	}
	s.PaymentMethods.PixCPF = strings.TrimSpace(p.inputs[setPixCPF].Value())
	s.PaymentMethods.PixBank = strings.TrimSpace(p.inputs[setPixBank].Value())
	s.PaymentMethods.PixName = strings.TrimSpace(p.inputs[setPixName].Value())
	s.PaymentMethods.USDTWalletTRC20 = strings.TrimSpace(p.inputs[setUSDTWallet].Value())
	s.PaymentMethods.USDTWalletBEP20 = strings.TrimSpace(p.inputs[setUSDTWalletBEP20].Value())
	s.PaymentMethods.BybitUID = strings.TrimSpace(p.inputs[setBybitUID].Value())
	s.PaymentMethods.WhatsappSupport = strings.TrimSpace(p.inputs[setWhatsapp].Value())

	p.busy = true
	p.errText = ""
	p.settings = s
	deps := p.deps
	return func() tea.Msg {
		return adminSettingsSavedMsg{err: deps.Client.UpdateSettings(context.Background(), s)}
	}
}

func (p *adminSettingsPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case adminSettingsLoadedMsg:
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, sessionGuard(msg.err)
		}
		p.fill(msg.settings)
		p.loaded = true
		return p, textinput.Blink

	case adminSettingsSavedMsg:
		p.busy = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, sessionGuard(msg.err)
		}
		p.okText = "Configurações salvas!"

	case tea.KeyMsg:
		if p.busy {
			return p, nil
		}
		switch msg.Type {
		case tea.KeyEsc:
			return p, Navigate(PageAdminDashboard)
		case tea.KeyEnter:
			if p.focus < setFieldCount-1 {
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
		case tea.KeyCtrlF:
			if p.feeMethod == api.FeeRequireDeposit {
				p.feeMethod = api.FeeDeductFromBalance
			} else {
				p.feeMethod = api.FeeRequireDeposit
			}
			return p, nil
		case tea.KeyCtrlS:
			return p, p.submit()
		}
		var cmd tea.Cmd
		p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *adminSettingsPage) View() string {
	s := p.deps.Styles
	var sb strings.Builder

	sb.WriteString(s.Header.Render("Configurações da Plataforma"))
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

	sb.WriteString(s.Muted.Render("Cobrança da taxa de saque (ctrl+f): "))
	sb.WriteString(s.Bold.Render(feeMethodLabel(p.feeMethod)))
	sb.WriteString("\n\n")

	labels := []string{
		"Taxa de Saque (R$)", "Depósito Mínimo", "Depósito Máximo", "Saque Mínimo",
		"PIX — CPF", "PIX — Banco", "PIX — Nome",
		"Carteira USDT (TRC20)", "Carteira USDT (BEP20)", "Bybit UID", "WhatsApp de Suporte",
	}
	for i, label := range labels {
		sb.WriteString(s.Muted.Render(label))
		sb.WriteString("\n" + p.inputs[i].View() + "\n")
	}

	if p.busy {
		sb.WriteString(s.Muted.Render("Salvando...") + "\n")
	}
	sb.WriteString(s.Help.Render("enter próximo/salvar · ctrl+s salvar · ctrl+f alternar cobrança · esc voltar"))
	return sb.String()
}
