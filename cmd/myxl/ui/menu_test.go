package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestMenuSelection(t *testing.T) {
	items := []MenuItem{{Label: "My Packages"}, {Label: "Buy Package"}, {Label: "Accounts"}}
	m := NewMenuModel("Main Menu", items, DefaultStyles())

	next, _ := m.Update(keyPress("down"))
	next, _ = next.Update(keyPress("enter"))

	menu := next.(MenuModel)
	assert.Equal(t, 1, menu.Choice())
}

func TestMenuCancel(t *testing.T) {
	m := NewMenuModel("Main Menu", []MenuItem{{Label: "A"}}, DefaultStyles())
	next, _ := m.Update(keyPress("esc"))
	assert.Equal(t, -1, next.(MenuModel).Choice())
}

func TestMenuSkipsDisabled(t *testing.T) {
	items := []MenuItem{{Label: "A"}, {Label: "B", Disabled: true}, {Label: "C"}}
	m := NewMenuModel("Menu", items, DefaultStyles())

	next, _ := m.Update(keyPress("down"))
	next, _ = next.Update(keyPress("enter"))
	assert.Equal(t, 2, next.(MenuModel).Choice(), "disabled entry is skipped")
}

func TestMenuCursorStaysInBounds(t *testing.T) {
	m := NewMenuModel("Menu", []MenuItem{{Label: "only"}}, DefaultStyles())
	next, _ := m.Update(keyPress("up"))
	next, _ = next.Update(keyPress("down"))
	next, _ = next.Update(keyPress("enter"))
	assert.Equal(t, 0, next.(MenuModel).Choice())
}

func TestMenuViewMarksCursor(t *testing.T) {
	m := NewMenuModel("Menu", []MenuItem{{Label: "First"}, {Label: "Second"}}, DefaultStyles())
	view := m.View()
	assert.Contains(t, view, "Menu")
	assert.Contains(t, view, "First")
	assert.Contains(t, view, ">")
}
