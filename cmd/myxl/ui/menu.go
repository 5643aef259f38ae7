package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// MenuItem is one selectable entry.
type MenuItem struct {
	Label    string
	Disabled bool
}

// MenuModel is a vertical single-choice picker. Run it with tea.NewProgram;
// after the program exits, Choice() reports the selected index or -1 when
// the user cancelled.
type MenuModel struct {
	title    string
	items    []MenuItem
	styles   Styles
	cursor   int
	choice   int
	quitting bool
}

// NewMenuModel creates a picker over the given items.
func NewMenuModel(title string, items []MenuItem, styles Styles) MenuModel {
	m := MenuModel{
		title:  title,
		items:  items,
		styles: styles,
		choice: -1,
	}
	m.cursor = m.nextEnabled(-1, 1)
	return m
}

// Choice returns the selected item index, -1 when cancelled.
func (m MenuModel) Choice() int {
	return m.choice
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		m.cursor = m.nextEnabled(m.cursor, -1)
	case "down", "j":
		m.cursor = m.nextEnabled(m.cursor, 1)
	case "enter":
		if m.cursor >= 0 {
			m.choice = m.cursor
		}
		m.quitting = true
		return m, tea.Quit
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render(m.title))
	sb.WriteString("\n\n")
	for i, item := range m.items {
		marker := "  "
		label := item.Label
		switch {
		case item.Disabled:
			label = m.styles.Disabled.Render(label)
		case i == m.cursor:
			marker = m.styles.Key.Render("> ")
			label = m.styles.Bold.Render(label)
		default:
			label = m.styles.Value.Render(label)
		}
		sb.WriteString(marker + label + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render("↑/↓ move · enter select · q quit"))
	sb.WriteString("\n")
	return sb.String()
}

// nextEnabled steps the cursor in the given direction, skipping disabled
// entries, without wrapping past the list ends.
func (m MenuModel) nextEnabled(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(m.items); i += dir {
		if !m.items[i].Disabled {
			return i
		}
	}
	return from
}
