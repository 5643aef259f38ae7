package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PromptModel is a one-line text prompt. After the program exits, Value()
// holds the entered text and Cancelled() reports an escape.
type PromptModel struct {
	field     textinput.Model
	styles    Styles
	label     string
	cancelled bool
	done      bool
}

// NewPromptModel creates a prompt with the given label and placeholder.
func NewPromptModel(label, placeholder string, styles Styles) PromptModel {
	field := textinput.New()
	field.Placeholder = placeholder
	field.Prompt = "> "
	field.Focus()
	field.CharLimit = 256
	return PromptModel{
		field:  field,
		styles: styles,
		label:  label,
	}
}

// Value returns the entered text.
func (m PromptModel) Value() string {
	return m.field.Value()
}

// Cancelled reports whether the prompt was dismissed without input.
func (m PromptModel) Cancelled() bool {
	return m.cancelled
}

func (m PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	return m, cmd
}

func (m PromptModel) View() string {
	if m.done {
		return ""
	}
	return m.styles.Key.Render(m.label) + "\n" + m.field.View() + "\n"
}
