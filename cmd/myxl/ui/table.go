package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SimpleTable renders static tabular data: benefit lists, package options,
// stored accounts.
type SimpleTable struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// NewSimpleTable creates an empty table with the given title and headers.
func NewSimpleTable(title string, headers []string) *SimpleTable {
	return &SimpleTable{
		Title:   title,
		Headers: headers,
		Rows:    make([][]string, 0),
	}
}

// AddRow appends one row.
func (t *SimpleTable) AddRow(row ...string) {
	t.Rows = append(t.Rows, row)
}

// View renders the table. An empty table renders to nothing.
func (t *SimpleTable) View(styles Styles) string {
	if len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder
	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}

	colWidths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(colWidths) {
				if w := lipgloss.Width(cell); w > colWidths[i] {
					colWidths[i] = w
				}
			}
		}
	}
	for i := range colWidths {
		colWidths[i] += 2
	}

	headerStyle := styles.Bold.Padding(0, 1)
	rowStyle := styles.Value.Padding(0, 1)
	sepStyle := styles.Muted

	for i, h := range t.Headers {
		sb.WriteString(headerStyle.Width(colWidths[i]).Render(h))
		if i < len(t.Headers)-1 {
			sb.WriteString(sepStyle.Render("|"))
		}
	}
	sb.WriteString("\n")

	totalWidth := len(t.Headers) - 1
	for _, w := range colWidths {
		totalWidth += w
	}
	sb.WriteString(sepStyle.Render(strings.Repeat("-", totalWidth)) + "\n")

	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(colWidths) {
				sb.WriteString(rowStyle.Width(colWidths[i]).Render(cell))
				if i < len(row)-1 {
					sb.WriteString(sepStyle.Render("|"))
				}
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// KeyValuePanel renders aligned key/value rows under an optional title,
// used for package detail and account views.
type KeyValuePanel struct {
	Title string
	rows  [][2]string
}

// NewKeyValuePanel creates an empty panel.
func NewKeyValuePanel(title string) *KeyValuePanel {
	return &KeyValuePanel{Title: title}
}

// Add appends one key/value row.
func (p *KeyValuePanel) Add(key, value string) {
	p.rows = append(p.rows, [2]string{key, value})
}

// View renders the panel with keys right-padded to a common width.
func (p *KeyValuePanel) View(styles Styles) string {
	if len(p.rows) == 0 {
		return ""
	}

	keyWidth := 0
	for _, row := range p.rows {
		if w := lipgloss.Width(row[0]); w > keyWidth {
			keyWidth = w
		}
	}

	var sb strings.Builder
	if p.Title != "" {
		sb.WriteString(styles.Title.Render(p.Title))
		sb.WriteString("\n")
	}
	keyStyle := styles.Key.Width(keyWidth + 2)
	for _, row := range p.rows {
		sb.WriteString(keyStyle.Render(row[0]))
		sb.WriteString(styles.Value.Render(row[1]))
		sb.WriteString("\n")
	}
	return sb.String()
}
