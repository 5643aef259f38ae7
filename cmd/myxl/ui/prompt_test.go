package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestPromptValue(t *testing.T) {
	m := NewPromptModel("Family code", "uuid", DefaultStyles())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("XL123")})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})

	prompt := next.(PromptModel)
	assert.Equal(t, "XL123", prompt.Value())
	assert.False(t, prompt.Cancelled())
}

func TestPromptCancel(t *testing.T) {
	m := NewPromptModel("Family code", "uuid", DefaultStyles())
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, next.(PromptModel).Cancelled())
}

func TestPromptView(t *testing.T) {
	m := NewPromptModel("Family code", "uuid", DefaultStyles())
	assert.Contains(t, m.View(), "Family code")
}
