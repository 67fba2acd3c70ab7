// Package historypanel renders the conversion history overlay. Destructive
// actions are not performed here: delete and clear are surfaced as request
// messages so the orchestrator can ask for confirmation first.
package historypanel

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pavannsshetty7022/abbrevify/internal/history"
	"github.com/pavannsshetty7022/abbrevify/internal/ui/styles"
)

// DeleteRequestedMsg asks the orchestrator to delete one entry (after
// confirmation).
type DeleteRequestedMsg struct {
	ID int64
}

// ClearRequestedMsg asks the orchestrator to clear the whole history (after
// confirmation).
type ClearRequestedMsg struct{}

// CloseMsg is sent when the panel is dismissed.
type CloseMsg struct{}

const boxWidth = 64
const maxVisible = 6

// Model is the history panel state.
type Model struct {
	entries []history.Entry
	cursor  int
	width   int
	height  int
}

// New creates a history panel showing the given entries, newest first.
func New(entries []history.Entry) Model {
	return Model{entries: entries}
}

// SetEntries refreshes the list after a mutation, clamping the cursor.
func (m Model) SetEntries(entries []history.Entry) Model {
	m.entries = entries
	if m.cursor >= len(entries) {
		m.cursor = len(entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m
}

// SetSize records viewport dimensions for overlay centering.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// Selected returns the entry under the cursor.
func (m Model) Selected() (history.Entry, bool) {
	if len(m.entries) == 0 || m.cursor >= len(m.entries) {
		return history.Entry{}, false
	}
	return m.entries[m.cursor], true
}

// Update handles navigation and emits request messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "j", "down":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "d":
		if entry, ok := m.Selected(); ok {
			id := entry.ID
			return m, func() tea.Msg { return DeleteRequestedMsg{ID: id} }
		}
	case "c":
		if len(m.entries) > 0 {
			return m, func() tea.Msg { return ClearRequestedMsg{} }
		}
	case "esc", "q":
		return m, func() tea.Msg { return CloseMsg{} }
	}
	return m, nil
}

// View renders the panel box.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Conversion History"))
	b.WriteString("\n")
	b.WriteString(styles.SubtleStyle.Render(strings.Repeat("─", boxWidth-2)))
	b.WriteString("\n")

	if len(m.entries) == 0 {
		b.WriteString(styles.SubtleStyle.Render("Your conversion history is empty."))
	} else {
		start, end := window(m.cursor, len(m.entries))
		for i := start; i < end; i++ {
			b.WriteString(m.renderEntry(i))
			if i < end-1 {
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.SubtleStyle.Render("j/k move · d delete · c clear all · esc close"))
	return styles.BoxStyle.Width(boxWidth).Render(b.String())
}

// window returns the slice bounds keeping the cursor visible.
func window(cursor, total int) (int, int) {
	if total <= maxVisible {
		return 0, total
	}
	start := cursor - maxVisible/2
	if start < 0 {
		start = 0
	}
	if start+maxVisible > total {
		start = total - maxVisible
	}
	return start, start + maxVisible
}

func (m Model) renderEntry(i int) string {
	entry := m.entries[i]

	stamp := entry.Timestamp
	if parsed, err := time.Parse(time.RFC3339, entry.Timestamp); err == nil {
		stamp = parsed.Local().Format("2006-01-02 15:04")
	}
	header := styles.SubtleStyle.Render(fmt.Sprintf("%s (%s)", stamp, entry.Mode))
	lines := header + "\n" +
		"  In:  " + truncate(entry.Input, boxWidth-10) + "\n" +
		"  Out: " + truncate(entry.Output, boxWidth-10)

	if i == m.cursor {
		return styles.SelectionStyle.Render("> ") + lines
	}
	return "  " + lines
}

func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	return s[:max-1] + "…"
}

// Overlay centers the panel within the viewport.
func (m Model) Overlay(bg string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.View())
}
