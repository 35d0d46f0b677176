package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmount(t *testing.T) {
	t.Run("accepts comma decimals", func(t *testing.T) {
		v, msg := Amount("150,50", 100, 1000)
		assert.Empty(t, msg)
		assert.Equal(t, 150.50, v)
	})

	t.Run("accepts dot decimals", func(t *testing.T) {
		v, msg := Amount("150.50", 100, 1000)
		assert.Empty(t, msg)
		assert.Equal(t, 150.50, v)
	})

	t.Run("blank", func(t *testing.T) {
		_, msg := Amount("   ", 0, 0)
		assert.Equal(t, "Informe um valor", msg)
	})

	t.Run("garbage", func(t *testing.T) {
		_, msg := Amount("abc", 0, 0)
		assert.Equal(t, "Valor inválido", msg)
	})

	t.Run("zero and negative rejected", func(t *testing.T) {
		_, msg := Amount("0", 0, 0)
		assert.Equal(t, "Valor inválido", msg)
		_, msg = Amount("-5", 0, 0)
		assert.Equal(t, "Valor inválido", msg)
	})

	t.Run("below minimum", func(t *testing.T) {
		_, msg := Amount("99,99", 100, 0)
		assert.Equal(t, "Valor mínimo: R$ 100,00", msg)
	})

	t.Run("above maximum", func(t *testing.T) {
		_, msg := Amount("1001", 100, 1000)
		assert.Equal(t, "Valor máximo: R$ 1.000,00", msg)
	})

	t.Run("zero max means unbounded", func(t *testing.T) {
		v, msg := Amount("99999", 1, 0)
		assert.Empty(t, msg)
		assert.Equal(t, 99999.0, v)
	})
}

func TestRequired(t *testing.T) {
	assert.Equal(t, "Nome é obrigatório", Required("", "Nome"))
	assert.Equal(t, "Nome é obrigatório", Required("   ", "Nome"))
	assert.Empty(t, Required("x", "Nome"))
}

func TestPassword(t *testing.T) {
	assert.Equal(t, "A senha deve ter pelo menos 6 caracteres", Password("12345", "12345"))
	assert.Equal(t, "As senhas não coincidem", Password("123456", "654321"))
	assert.Empty(t, Password("123456", "123456"))
}

func TestEmail(t *testing.T) {
	assert.Empty(t, Email("user@example.com"))
	assert.Equal(t, "Email inválido", Email("userexample.com"))
	assert.Equal(t, "Email inválido", Email("@example.com"))
	assert.Equal(t, "Email inválido", Email("user@"))
	assert.Equal(t, "Email inválido", Email("user@nodot"))
}
