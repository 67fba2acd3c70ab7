// Package statspanel renders the usage statistics overlay.
package statspanel

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pavannsshetty7022/abbrevify/internal/stats"
	"github.com/pavannsshetty7022/abbrevify/internal/ui/styles"
)

// CloseMsg is sent when the panel is dismissed.
type CloseMsg struct{}

const boxWidth = 40

// Model is the statistics panel state.
type Model struct {
	counters stats.Counters
	width    int
	height   int
}

// New creates the panel showing the given counters.
func New(counters stats.Counters) Model {
	return Model{counters: counters}
}

// SetSize records viewport dimensions for overlay centering.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// Update dismisses the panel on esc/q/enter.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "q", "enter":
			return m, func() tea.Msg { return CloseMsg{} }
		}
	}
	return m, nil
}

// View renders the panel box.
func (m Model) View() string {
	rows := []struct {
		label string
		value int
	}{
		{"Total Conversions", m.counters.TotalConversions},
		{"SMS to Full", m.counters.SmsToFullCount},
		{"Full to SMS", m.counters.FullToSmsCount},
		{"Grammar Checks", m.counters.GrammarCheckCount},
		{"Plagiarism Checks", m.counters.PlagiarismCheckCount},
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Usage Statistics"))
	b.WriteString("\n")
	b.WriteString(styles.SubtleStyle.Render(strings.Repeat("─", boxWidth-2)))
	b.WriteString("\n")
	for _, row := range rows {
		// Pad before styling, so the escape codes don't count against width.
		label := fmt.Sprintf("%-22s", row.label+":")
		b.WriteString(styles.LabelStyle.Render(label))
		b.WriteString(" ")
		b.WriteString(styles.AccentStyle.Render(fmt.Sprintf("%d", row.value)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.SubtleStyle.Render("esc close"))
	return styles.BoxStyle.Width(boxWidth).Render(b.String())
}

// Overlay centers the panel within the viewport.
func (m Model) Overlay(bg string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.View())
}
