package converter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pavannsshetty7022/abbrevify/internal/service"
	"github.com/pavannsshetty7022/abbrevify/internal/ui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	b.WriteString(styles.LabelStyle.Render(m.inputLabel()))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	b.WriteString(m.renderButtons())
	b.WriteString("\n\n")

	b.WriteString(styles.LabelStyle.Render("Output:"))
	b.WriteString("\n")
	b.WriteString(m.renderOutput())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	base := lipgloss.NewStyle().Padding(1, 2).Render(b.String())

	switch {
	case m.dialog.IsVisible():
		return m.dialog.Overlay(base)
	case m.overlay == overlayHistory:
		return m.historyPanel.Overlay(base)
	case m.overlay == overlayAbbrevs:
		return m.abbrPanel.Overlay(base)
	case m.overlay == overlayStats:
		return m.statsPanel.Overlay(base)
	}
	return base
}

func (m Model) renderHeader() string {
	title := styles.TitleStyle.Render("Abbrevify")

	smsToFull := styles.SubtleStyle.Render("SMS → Full")
	fullToSms := styles.SubtleStyle.Render("Full → SMS")
	if m.mode == service.ModeSmsToFull {
		smsToFull = styles.SelectionStyle.Render("[SMS → Full]")
	} else {
		fullToSms = styles.SelectionStyle.Render("[Full → SMS]")
	}
	modeSwitch := smsToFull + styles.SubtleStyle.Render(" · ") + fullToSms

	header := title + "   " + modeSwitch
	if m.deps.User != nil {
		header += "   " + styles.SubtleStyle.Render(m.deps.User.FullName)
	}
	return header
}

func (m Model) inputLabel() string {
	if m.mode == service.ModeSmsToFull {
		return "Enter SMS abbreviation:"
	}
	return "Enter full text:"
}

func (m Model) renderButtons() string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		m.renderButton(service.ActionConvert, "Convert", "Converting..."),
		" ",
		m.renderButton(service.ActionGrammar, "Grammar Check", "Checking..."),
		" ",
		m.renderButton(service.ActionPlagiarism, "Plagiarism Check", "Checking..."),
	)
}

func (m Model) renderButton(action service.Action, label, busyLabel string) string {
	style := styles.ButtonStyle
	if m.busy[action] {
		style = styles.ButtonBusy
		label = m.spin.View() + busyLabel
	}
	return style.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderColor).
		Render(label)
}

func (m Model) renderOutput() string {
	width := m.width - 6
	if width > 80 {
		width = 80
	}
	if width < 20 {
		width = 40
	}

	output := m.output
	if output == "" {
		output = styles.SubtleStyle.Render("(output will appear here)")
	}
	return styles.BoxStyle.Width(width).Render(output)
}

func (m Model) renderFooter() string {
	parts := []string{
		m.keys.Convert.Help().Key + " " + m.keys.Convert.Help().Desc,
		m.keys.Grammar.Help().Key + " " + m.keys.Grammar.Help().Desc,
		m.keys.Plagiarism.Help().Key + " " + m.keys.Plagiarism.Help().Desc,
		m.keys.ToggleMode.Help().Key + " " + m.keys.ToggleMode.Help().Desc,
		m.keys.History.Help().Key + " " + m.keys.History.Help().Desc,
		m.keys.Abbrevs.Help().Key + " " + m.keys.Abbrevs.Help().Desc,
		m.keys.Stats.Help().Key + " " + m.keys.Stats.Help().Desc,
		m.keys.Quit.Help().Key + " " + m.keys.Quit.Help().Desc,
	}
	return styles.SubtleStyle.Render(strings.Join(parts, " · "))
}
