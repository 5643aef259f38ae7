package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBarWidth(t *testing.T) {
	assert.Equal(t, 20, BarWidth(80, 12, 48, 60), "remainder inside bounds")
	assert.Equal(t, 12, BarWidth(60, 12, 48, 60), "clamped to minimum")
	assert.Equal(t, 48, BarWidth(200, 12, 48, 60), "clamped to maximum")
	assert.Equal(t, 40, BarWidth(80, 12, 60, 40), "profile geometry")
}

func TestBarCells(t *testing.T) {
	filled, pct, ok := barCells(50, 100, 20)
	assert.True(t, ok)
	assert.Equal(t, 10, filled)
	assert.Equal(t, 50, pct)

	filled, pct, ok = barCells(1, 3, 10)
	assert.True(t, ok)
	assert.Equal(t, 3, filled, "fraction rounds, not truncates")
	assert.Equal(t, 33, pct)

	filled, pct, ok = barCells(-5, 100, 20)
	assert.True(t, ok)
	assert.Equal(t, 0, filled, "negative remaining clamps to empty")
	assert.Equal(t, 0, pct)

	filled, pct, ok = barCells(250, 100, 20)
	assert.True(t, ok)
	assert.Equal(t, 20, filled, "overshoot clamps to full")
	assert.Equal(t, 100, pct)

	_, _, ok = barCells(10, 0, 20)
	assert.False(t, ok, "zero total has no bar")
}

func TestRenderBar(t *testing.T) {
	s := DefaultStyles()

	t.Run("fill and percent suffix", func(t *testing.T) {
		out := RenderBar(s, 50, 100, 10)
		assert.Contains(t, out, strings.Repeat(barFillGlyph, 5))
		assert.Contains(t, out, strings.Repeat(barEmptyGlyph, 5))
		assert.Contains(t, out, " 50%")
	})

	t.Run("zero total renders N/A", func(t *testing.T) {
		out := RenderBar(s, 10, 0, 10)
		assert.Contains(t, out, strings.Repeat(barEmptyGlyph, 10))
		assert.Contains(t, out, "N/A")
		assert.NotContains(t, out, "%")
	})

	t.Run("full bar has no empty cells", func(t *testing.T) {
		out := RenderBar(s, 100, 100, 10)
		assert.Contains(t, out, strings.Repeat(barFillGlyph, 10))
		assert.NotContains(t, out, barEmptyGlyph)
		assert.Contains(t, out, " 100%")
	})
}

func TestRenderFullBar(t *testing.T) {
	out := RenderFullBar(DefaultStyles(), 8)
	assert.Contains(t, out, strings.Repeat(barFillGlyph, 8))
	assert.Contains(t, out, " 100%")
}

func TestPackageBarTiers(t *testing.T) {
	s := DefaultStyles()
	cases := []struct {
		name      string
		remaining int64
		want      int
	}{
		{"full at 100", 100, 100},
		{"high at exactly 50", 50, 50},
		{"mid at exactly 20", 20, 20},
		{"alarm below 20", 19, 19},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, pct, ok := barCells(tc.remaining, 100, 20)
			assert.True(t, ok)
			assert.Equal(t, tc.want, pct)
			assert.Contains(t, RenderBar(s, tc.remaining, 100, 20), "%")
		})
	}
}

func TestProfileBarBoundaries(t *testing.T) {
	s := DefaultStyles()
	for _, remaining := range []int64{56, 55, 20, 19} {
		out := RenderProfileBar(s, remaining, 100, 20)
		assert.Contains(t, out, "%")
	}
}

func TestTerminalWidth(t *testing.T) {
	t.Setenv("COLUMNS", "120")
	assert.Equal(t, 120, TerminalWidth())

	t.Setenv("COLUMNS", "not-a-number")
	assert.Equal(t, 80, TerminalWidth())

	t.Setenv("COLUMNS", "")
	assert.Equal(t, 80, TerminalWidth())
}
