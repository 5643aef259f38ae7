package ui

import (
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	barFillGlyph  = "▒"
	barEmptyGlyph = "░"
)

// TerminalWidth reports the terminal column count, from COLUMNS when set,
// 80 otherwise.
func TerminalWidth() int {
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if n, err := strconv.Atoi(cols); err == nil && n > 0 {
			return n
		}
	}
	return 80
}

// BarWidth derives a bar width from the terminal width: the reserved margin
// (labels, percent suffix, panel chrome) is subtracted and the remainder
// clamped to [min, max].
func BarWidth(termWidth, min, max, reserved int) int {
	w := termWidth - reserved
	if w < min {
		return min
	}
	if w > max {
		return max
	}
	return w
}

// barCells computes the filled cell count and the rounded percentage.
// ok is false when total <= 0 and no meaningful bar exists.
func barCells(remaining, total int64, width int) (filled, pct int, ok bool) {
	if total <= 0 {
		return 0, 0, false
	}
	r := remaining
	if r < 0 {
		r = 0
	}
	if r > total {
		r = total
	}
	frac := float64(r) / float64(total)
	return int(math.Round(frac * float64(width))), int(math.Round(frac * 100)), true
}

// RenderBar draws a package-view quota bar. The tier boundaries are the
// user-facing quota health signal: full at 100%, then 50% and 20% steps down
// to the alarm tier.
func RenderBar(s Styles, remaining, total int64, width int) string {
	filled, pct, ok := barCells(remaining, total, width)
	if !ok {
		return emptyBar(s, width)
	}
	var tier lipgloss.Style
	switch {
	case pct >= 100:
		tier = s.TierFull
	case pct >= 50:
		tier = s.TierHigh
	case pct >= 20:
		tier = s.TierMid
	default:
		tier = s.TierLow
	}
	return renderCells(s, tier, filled, width, pct)
}

// RenderProfileBar draws the dashboard's overall-usage bar. Its banding is
// coarser than the package bar: healthy from 56% up, warning down to 20%,
// alarm below.
func RenderProfileBar(s Styles, remaining, total int64, width int) string {
	filled, pct, ok := barCells(remaining, total, width)
	if !ok {
		return emptyBar(s, width)
	}
	var tier lipgloss.Style
	switch {
	case pct >= 56:
		tier = s.TierHigh
	case pct >= 20:
		tier = s.TierMid
	default:
		tier = s.TierLow
	}
	return renderCells(s, tier, filled, width, pct)
}

// RenderFullBar draws a completely filled bar, used for unlimited benefits
// where no meaningful fraction exists.
func RenderFullBar(s Styles, width int) string {
	return renderCells(s, s.TierFull, width, width, 100)
}

func renderCells(s Styles, tier lipgloss.Style, filled, width, pct int) string {
	if filled > width {
		filled = width
	}
	bar := tier.Render(strings.Repeat(barFillGlyph, filled)) +
		s.Muted.Render(strings.Repeat(barEmptyGlyph, width-filled))
	return bar + " " + strconv.Itoa(pct) + "%"
}

func emptyBar(s Styles, width int) string {
	return s.Muted.Render(strings.Repeat(barEmptyGlyph, width)) + " N/A"
}
