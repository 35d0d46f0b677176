// Package ui implements the interactive terminal interface: a page router
// plus one page per view of the platform, styled with lipgloss.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. The platform front end is gold-on-dark; the light theme
// flips to dark-on-paper for bright terminals.
var (
	// Light mode
	lightForeground = lipgloss.Color("#1a1a2e")
	lightPrimary    = lipgloss.Color("#b8860b")
	lightAccent     = lipgloss.Color("#2e7d32")
	lightMuted      = lipgloss.Color("#6b7280")
	lightBorder     = lipgloss.Color("#d1d5db")

	// Dark mode
	darkForeground = lipgloss.Color("#f2f2f2")
	darkPrimary    = lipgloss.Color("#f0b90b")
	darkAccent     = lipgloss.Color("#66bb6a")
	darkMuted      = lipgloss.Color("#8b93a7")
	darkBorder     = lipgloss.Color("#2a3850")

	// Semantic colors, shared by both modes
	colorSuccess = lipgloss.Color("#66bb6a")
	colorWarning = lipgloss.Color("#ffc107")
	colorError   = lipgloss.Color("#e53935")
	colorInfo    = lipgloss.Color("#2196f3")
)

// Theme holds the current color scheme.
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Foreground: lightForeground,
		Primary:    lightPrimary,
		Accent:     lightAccent,
		Muted:      lightMuted,
		Border:     lightBorder,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Foreground: darkForeground,
		Primary:    darkPrimary,
		Accent:     darkAccent,
		Muted:      darkMuted,
		Border:     darkBorder,
		IsDark:     true,
	}
}

// ThemeFor resolves a configured theme name; "auto" (or anything else)
// falls back to terminal detection.
func ThemeFor(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	default:
		return DetectTheme()
	}
}

// DetectTheme guesses the terminal background from COLORFGBG. Dark wins on
// ambiguity: most terminals running a trading client are dark.
func DetectTheme() Theme {
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) >= 2 {
			if bgIdx, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
				if bgIdx >= 7 && bgIdx != 8 {
					return LightTheme()
				}
			}
		}
	}
	return DarkTheme()
}

// Styles bundles the lipgloss styles the pages share.
type Styles struct {
	Theme Theme

	Header  lipgloss.Style // page titles
	Title   lipgloss.Style // section titles
	Body    lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Primary lipgloss.Style
	Money   lipgloss.Style // highlighted amounts

	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	Card     lipgloss.Style // bordered boxes for balances, forms
	Selected lipgloss.Style // highlighted list/menu row
	Badge    lipgloss.Style // status pills
	Help     lipgloss.Style // key hints footer
}

// NewStyles builds the style set for a theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Theme: t,

		Header:  lipgloss.NewStyle().Bold(true).Foreground(t.Primary).MarginBottom(1),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(t.Foreground),
		Body:    lipgloss.NewStyle().Foreground(t.Foreground),
		Bold:    lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(t.Muted),
		Primary: lipgloss.NewStyle().Foreground(t.Primary),
		Money:   lipgloss.NewStyle().Bold(true).Foreground(t.Primary),

		Success: lipgloss.NewStyle().Foreground(colorSuccess),
		Warning: lipgloss.NewStyle().Foreground(colorWarning),
		Error:   lipgloss.NewStyle().Foreground(colorError),
		Info:    lipgloss.NewStyle().Foreground(colorInfo),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(t.Primary).SetString("> "),
		Badge:    lipgloss.NewStyle().Bold(true),
		Help:     lipgloss.NewStyle().Foreground(t.Muted).MarginTop(1),
	}
}

// DefaultStyles returns styles for the detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// StatusBadge renders a status string with its conventional color.
func (s Styles) StatusBadge(status string) string {
	var st lipgloss.Style
	switch status {
	case "active", "approved", "completed":
		st = s.Success
	case "pending":
		st = s.Warning
	case "rejected", "suspended", "cancelled":
		st = s.Error
	default:
		st = s.Muted
	}
	return st.Bold(true).Render(strings.ToUpper(status))
}
