package ui

import (
	"strings"
	"testing"
)

func TestSimpleTableRendersRows(t *testing.T) {
	table := NewSimpleTable("Histórico", "Tipo", "Valor")
	table.AddRow("Depósito", "+R$ 100,00")
	table.AddRow("Saque", "-R$ 50,00")

	out := table.View(NewStyles(DarkTheme()))
	for _, want := range []string{"Histórico", "Tipo", "Valor", "Depósito", "+R$ 100,00", "Saque"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSimpleTableEmptyMessage(t *testing.T) {
	table := NewSimpleTable("Rede", "Nível", "Comissão")
	table.Empty = "Nenhum indicado ainda"

	out := table.View(NewStyles(DarkTheme()))
	if !strings.Contains(out, "Nenhum indicado ainda") {
		t.Errorf("empty table must show the placeholder, got:\n%s", out)
	}
	if strings.Contains(out, "Nível") {
		t.Errorf("empty table must not render headers, got:\n%s", out)
	}
}
