package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeFor(t *testing.T) {
	assert.False(t, ThemeFor("light").IsDark)
	assert.True(t, ThemeFor("dark").IsDark)
}

func TestDetectThemeFromColorFGBG(t *testing.T) {
	t.Setenv("COLORFGBG", "0;15")
	assert.False(t, DetectTheme().IsDark, "bright background means light theme")

	t.Setenv("COLORFGBG", "15;0")
	assert.True(t, DetectTheme().IsDark)

	t.Setenv("COLORFGBG", "")
	assert.True(t, DetectTheme().IsDark, "dark wins when unset")
}

func TestStatusBadgeUppercases(t *testing.T) {
	s := NewStyles(DarkTheme())
	assert.Contains(t, s.StatusBadge("pending"), "PENDING")
	assert.Contains(t, s.StatusBadge("active"), "ACTIVE")
}
