// Package modal implements the single-slot dialog presenter. At most one
// dialog is visible at a time; showing a new one replaces the current
// content, last caller wins. Two primitives are built on it: a
// dismiss-only alert and a Yes/No confirmation that resolves exactly once
// per showing.
package modal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pavannsshetty7022/abbrevify/internal/ui/styles"
)

// Kind selects the dialog flavor.
type Kind int

const (
	KindAlert Kind = iota
	KindConfirm
)

// Result reports how the visible dialog resolved.
type Result int

const (
	ResultNone      Result = iota // Still open or not visible
	ResultDismissed               // Alert acknowledged
	ResultConfirmed               // Confirm answered Yes
	ResultDeclined                // Confirm answered No or dismissed
)

const boxWidth = 52

// Model is the dialog state.
type Model struct {
	kind    Kind
	title   string
	message string
	visible bool
	onYes   bool // Confirm button focus; true = Yes
	width   int
	height  int
}

// New returns a hidden modal.
func New() Model {
	return Model{}
}

// ShowAlert replaces any visible dialog with an informational one.
func (m *Model) ShowAlert(message string) {
	m.kind = KindAlert
	m.title = "Alert"
	m.message = message
	m.visible = true
}

// ShowConfirm replaces any visible dialog with a Yes/No question.
// Focus starts on No so a stray Enter does not destroy anything.
func (m *Model) ShowConfirm(message string) {
	m.kind = KindConfirm
	m.title = "Confirm"
	m.message = message
	m.visible = true
	m.onYes = false
}

// Hide dismisses the dialog without resolving it.
func (m *Model) Hide() {
	m.visible = false
}

// IsVisible reports whether a dialog is currently displayed.
func (m Model) IsVisible() bool {
	return m.visible
}

// SetSize records viewport dimensions for overlay centering.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update processes key input for the visible dialog. Each showing resolves
// at most once: the first terminal keypress hides the dialog and returns the
// corresponding Result.
func (m Model) Update(msg tea.Msg) (Model, Result) {
	if !m.visible {
		return m, ResultNone
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, ResultNone
	}

	if m.kind == KindAlert {
		switch keyMsg.String() {
		case "enter", "esc", "q":
			m.visible = false
			return m, ResultDismissed
		}
		return m, ResultNone
	}

	// Confirm dialog.
	switch keyMsg.String() {
	case "left", "right", "tab", "h", "l":
		m.onYes = !m.onYes
	case "y":
		m.visible = false
		return m, ResultConfirmed
	case "n":
		m.visible = false
		return m, ResultDeclined
	case "enter":
		m.visible = false
		if m.onYes {
			return m, ResultConfirmed
		}
		return m, ResultDeclined
	case "esc":
		// Dismissal counts as a No.
		m.visible = false
		return m, ResultDeclined
	}
	return m, ResultNone
}

// View renders the dialog box without positioning.
func (m Model) View() string {
	title := styles.TitleStyle.Render(m.title)
	divider := styles.SubtleStyle.Render(strings.Repeat("─", boxWidth-2))
	message := lipgloss.NewStyle().Width(boxWidth - 4).Render(m.message)

	body := title + "\n" + divider + "\n" + message
	if m.kind == KindConfirm {
		body += "\n\n" + m.renderButtons()
	} else {
		body += "\n\n" + styles.SubtleStyle.Render("press enter to dismiss")
	}

	return styles.BoxStyle.Width(boxWidth).Render(body)
}

func (m Model) renderButtons() string {
	yes := styles.ButtonStyle.Render("[ Yes ]")
	no := styles.ButtonStyle.Render("[ No ]")
	if m.onYes {
		yes = styles.SelectionStyle.Padding(0, 2).Render("[ Yes ]")
	} else {
		no = styles.SelectionStyle.Padding(0, 2).Render("[ No ]")
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, no, "  ", yes)
}

// Overlay centers the dialog within the viewport, on top of the background.
func (m Model) Overlay(bg string) string {
	if !m.visible {
		return bg
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.View())
}
