// Package ui renders the terminal surface: the neon theme, panels, tables
// and the quota bars.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Neon palette. The upstream app skins its console output in a cyberpunk
// scheme; these are the closest ANSI-256-safe equivalents.
var (
	NeonCyan    = lipgloss.Color("#00f6ff")
	NeonMagenta = lipgloss.Color("#ff00d4")
	NeonGreen   = lipgloss.Color("#39ff14")
	NeonOrange  = lipgloss.Color("#ff9f1c")
	NeonRed     = lipgloss.Color("#ff3b3b")
	NeonYellow  = lipgloss.Color("#ffe66d")
	DimGray     = lipgloss.Color("#5c6773")
	OffWhite    = lipgloss.Color("#e8e8e8")
	DeepBlue    = lipgloss.Color("#0b1026")
)

// Theme holds the color scheme.
type Theme struct {
	Foreground lipgloss.Color
	Background lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Good       lipgloss.Color
	Warn       lipgloss.Color
	Bad        lipgloss.Color
}

// NeonTheme is the default dark theme.
func NeonTheme() Theme {
	return Theme{
		Foreground: OffWhite,
		Background: DeepBlue,
		Primary:    NeonCyan,
		Accent:     NeonMagenta,
		Muted:      DimGray,
		Good:       NeonGreen,
		Warn:       NeonOrange,
		Bad:        NeonRed,
	}
}

// Styles holds the styled components.
type Styles struct {
	Theme Theme

	// Text
	Title    lipgloss.Style
	Header   lipgloss.Style
	Key      lipgloss.Style
	Value    lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style
	Disabled lipgloss.Style

	// Status
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	// Quota bar tiers, healthiest first. TierFull is the >=100% band,
	// TierLow the alarm band.
	TierFull lipgloss.Style
	TierHigh lipgloss.Style
	TierMid  lipgloss.Style
	TierLow  lipgloss.Style

	Divider lipgloss.Style
	Badge   lipgloss.Style
}

// NewStyles builds the component styles for a theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Header: lipgloss.NewStyle().
			Foreground(theme.Background).
			Background(theme.Primary).
			Padding(0, 1).
			Bold(true),

		Key: lipgloss.NewStyle().
			Foreground(theme.Accent),

		Value: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Disabled: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Strikethrough(true),

		Success: lipgloss.NewStyle().
			Foreground(theme.Good).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warn).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(theme.Bad).
			Bold(true),

		TierFull: lipgloss.NewStyle().Foreground(theme.Primary),
		TierHigh: lipgloss.NewStyle().Foreground(theme.Good),
		TierMid:  lipgloss.NewStyle().Foreground(NeonYellow),
		TierLow:  lipgloss.NewStyle().Foreground(theme.Bad),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Badge: lipgloss.NewStyle().
			Foreground(theme.Background).
			Background(theme.Accent).
			Padding(0, 1).
			Bold(true),
	}
}

// DefaultStyles returns the neon theme styles.
func DefaultStyles() Styles {
	return NewStyles(NeonTheme())
}

// RenderDivider draws a horizontal rule.
func (s Styles) RenderDivider(width int) string {
	if width < 1 {
		width = 1
	}
	return s.Divider.Render(strings.Repeat("─", width))
}
