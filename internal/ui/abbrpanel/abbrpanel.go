// Package abbrpanel renders the custom abbreviations overlay: a sorted list
// with an inline two-field add form. Mutations are surfaced as request
// messages; the orchestrator owns the registry.
package abbrpanel

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pavannsshetty7022/abbrevify/internal/ui/styles"
)

// AddRequestedMsg asks the orchestrator to add an abbreviation.
type AddRequestedMsg struct {
	Key       string
	Expansion string
}

// RemoveRequestedMsg asks the orchestrator to remove an abbreviation.
type RemoveRequestedMsg struct {
	Key string
}

// CloseMsg is sent when the panel is dismissed.
type CloseMsg struct{}

const boxWidth = 56
const maxVisible = 8

// Model is the abbreviation panel state.
type Model struct {
	keys      []string
	snapshot  map[string]string
	cursor    int
	adding    bool
	keyInput  textinput.Model
	valInput  textinput.Model
	onKey     bool // Which form field is focused; true = abbreviation
	width     int
	height    int
}

// New creates the panel from the sorted key list and the current table.
func New(keys []string, snapshot map[string]string) Model {
	keyInput := textinput.New()
	keyInput.Placeholder = "Abbreviation (e.g., BTW)"
	keyInput.Prompt = ""
	keyInput.Width = 24
	keyInput.CharLimit = 32

	valInput := textinput.New()
	valInput.Placeholder = "Full Text (e.g., By the way)"
	valInput.Prompt = ""
	valInput.Width = 36
	valInput.CharLimit = 120

	return Model{
		keys:     keys,
		snapshot: snapshot,
		keyInput: keyInput,
		valInput: valInput,
		onKey:    true,
	}
}

// SetEntries refreshes the list after a mutation, clamping the cursor.
func (m Model) SetEntries(keys []string, snapshot map[string]string) Model {
	m.keys = keys
	m.snapshot = snapshot
	if m.cursor >= len(keys) {
		m.cursor = len(keys) - 1
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

// Adding reports whether the add form is open.
func (m Model) Adding() bool { return m.adding }

// Update handles navigation, the add form, and emits request messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.adding {
		return m.updateForm(keyMsg)
	}

	switch keyMsg.String() {
	case "j", "down":
		if m.cursor < len(m.keys)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "a":
		m.adding = true
		m.onKey = true
		m.keyInput.SetValue("")
		m.valInput.SetValue("")
		m.keyInput.Focus()
		m.valInput.Blur()
		return m, textinput.Blink
	case "d":
		if m.cursor < len(m.keys) {
			key := m.keys[m.cursor]
			return m, func() tea.Msg { return RemoveRequestedMsg{Key: key} }
		}
	case "esc", "q":
		return m, func() tea.Msg { return CloseMsg{} }
	}
	return m, nil
}

func (m Model) updateForm(keyMsg tea.KeyMsg) (Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.adding = false
		m.keyInput.Blur()
		m.valInput.Blur()
		return m, nil
	case "tab", "shift+tab":
		m.onKey = !m.onKey
		if m.onKey {
			m.keyInput.Focus()
			m.valInput.Blur()
		} else {
			m.valInput.Focus()
			m.keyInput.Blur()
		}
		return m, textinput.Blink
	case "enter":
		key := m.keyInput.Value()
		expansion := m.valInput.Value()
		m.adding = false
		m.keyInput.Blur()
		m.valInput.Blur()
		return m, func() tea.Msg { return AddRequestedMsg{Key: key, Expansion: expansion} }
	}

	var cmd tea.Cmd
	if m.onKey {
		m.keyInput, cmd = m.keyInput.Update(keyMsg)
	} else {
		m.valInput, cmd = m.valInput.Update(keyMsg)
	}
	return m, cmd
}

// View renders the panel box.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Custom Abbreviations"))
	b.WriteString("\n")
	b.WriteString(styles.SubtleStyle.Render(strings.Repeat("─", boxWidth-2)))
	b.WriteString("\n")

	if len(m.keys) == 0 {
		b.WriteString(styles.SubtleStyle.Render("You haven't added any custom abbreviations yet."))
		b.WriteString("\n")
	} else {
		start, end := window(m.cursor, len(m.keys))
		for i := start; i < end; i++ {
			key := m.keys[i]
			line := styles.LabelStyle.Render(strings.ToUpper(key)) +
				styles.SubtleStyle.Render(" → ") + m.snapshot[key]
			if i == m.cursor && !m.adding {
				b.WriteString(styles.SelectionStyle.Render("> ") + line)
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	if m.adding {
		b.WriteString("\n")
		b.WriteString(styles.LabelStyle.Render("Add New"))
		b.WriteString("\n")
		b.WriteString(m.renderField("Abbreviation:", m.keyInput.View(), m.onKey))
		b.WriteString("\n")
		b.WriteString(m.renderField("Full Text:   ", m.valInput.View(), !m.onKey))
		b.WriteString("\n")
		b.WriteString(styles.SubtleStyle.Render("tab switch field · enter add · esc cancel"))
	} else {
		b.WriteString("\n")
		b.WriteString(styles.SubtleStyle.Render("j/k move · a add · d remove · esc close"))
	}

	return styles.BoxStyle.Width(boxWidth).Render(b.String())
}

func (m Model) renderField(label, input string, focused bool) string {
	marker := "  "
	if focused {
		marker = styles.SelectionStyle.Render("> ")
	}
	return marker + styles.SubtleStyle.Render(label) + " " + input
}

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

// Overlay centers the panel within the viewport.
func (m Model) Overlay(bg string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.View())
}
