// Package validate holds the pre-submission form checks. These exist to
// stop obviously bad input before a network call is made; the server stays
// authoritative for everything.
package validate

import (
	"fmt"
	"strconv"
	"strings"

	"vaulterm/internal/money"
)

const minPasswordLen = 6

// Amount parses a user-entered amount and checks it against [min, max].
// Pass max <= 0 to skip the upper bound. The returned message is ready for
// display; it is empty on success.
func Amount(input string, min, max float64) (float64, string) {
	input = strings.TrimSpace(strings.ReplaceAll(input, ",", "."))
	if input == "" {
		return 0, "Informe um valor"
	}
	v, err := strconv.ParseFloat(input, 64)
	if err != nil || v <= 0 {
		return 0, "Valor inválido"
	}
	if v < min {
		return 0, fmt.Sprintf("Valor mínimo: %s", money.FormatBRL(min))
	}
	if max > 0 && v > max {
		return 0, fmt.Sprintf("Valor máximo: %s", money.FormatBRL(max))
	}
	return v, ""
}

// Required checks that a field is non-blank.
func Required(value, field string) string {
	if strings.TrimSpace(value) == "" {
		return fmt.Sprintf("%s é obrigatório", field)
	}
	return ""
}

// Password checks the local password rules used at registration.
func Password(password, confirm string) string {
	if len(password) < minPasswordLen {
		return fmt.Sprintf("A senha deve ter pelo menos %d caracteres", minPasswordLen)
	}
	if password != confirm {
		return "As senhas não coincidem"
	}
	return ""
}

// Email does a shape check only. Real validation is the server's problem.
func Email(email string) string {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || !strings.Contains(email[at:], ".") {
		return "Email inválido"
	}
	return ""
}
