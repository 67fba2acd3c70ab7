// Package styles centralizes colors and lipgloss styles. Styles are
// package-level vars rebuilt when the theme changes so every component picks
// up the active preset.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme holds the color palette for one preset.
type Theme struct {
	Primary   lipgloss.Color // Main text
	Secondary lipgloss.Color // De-emphasized text
	Accent    lipgloss.Color // Highlights, focused controls
	Border    lipgloss.Color
	Danger    lipgloss.Color
	Busy      lipgloss.Color
}

var darkTheme = Theme{
	Primary:   lipgloss.Color("#E6E6E6"),
	Secondary: lipgloss.Color("#8A8A8A"),
	Accent:    lipgloss.Color("#73F59F"),
	Border:    lipgloss.Color("#444444"),
	Danger:    lipgloss.Color("#FF5F5F"),
	Busy:      lipgloss.Color("#F5D573"),
}

var lightTheme = Theme{
	Primary:   lipgloss.Color("#1A1A1A"),
	Secondary: lipgloss.Color("#6B6B6B"),
	Accent:    lipgloss.Color("#00875F"),
	Border:    lipgloss.Color("#AAAAAA"),
	Danger:    lipgloss.Color("#D70000"),
	Busy:      lipgloss.Color("#AF8700"),
}

// Color constants rebuilt by ApplyTheme.
var (
	PrimaryColor   lipgloss.Color
	SecondaryColor lipgloss.Color
	AccentColor    lipgloss.Color
	BorderColor    lipgloss.Color
	DangerColor    lipgloss.Color
	SpinnerColor   lipgloss.Color
)

// Shared styles rebuilt by ApplyTheme.
var (
	TitleStyle     lipgloss.Style
	LabelStyle     lipgloss.Style
	SubtleStyle    lipgloss.Style
	AccentStyle    lipgloss.Style
	DangerStyle    lipgloss.Style
	BoxStyle       lipgloss.Style
	ButtonStyle    lipgloss.Style
	ButtonBusy     lipgloss.Style
	ButtonActive   lipgloss.Style
	SelectionStyle lipgloss.Style
)

func init() {
	ApplyTheme("dark")
}

// ApplyTheme switches the active palette and rebuilds all styles.
// Unknown names fall back to dark.
func ApplyTheme(name string) {
	theme := darkTheme
	if name == "light" {
		theme = lightTheme
	}

	PrimaryColor = theme.Primary
	SecondaryColor = theme.Secondary
	AccentColor = theme.Accent
	BorderColor = theme.Border
	DangerColor = theme.Danger
	SpinnerColor = theme.Busy

	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.Accent)
	LabelStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)
	SubtleStyle = lipgloss.NewStyle().Foreground(theme.Secondary)
	AccentStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	DangerStyle = lipgloss.NewStyle().Foreground(theme.Danger)
	BoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)
	ButtonStyle = lipgloss.NewStyle().
		Foreground(theme.Primary).
		Padding(0, 2)
	ButtonBusy = lipgloss.NewStyle().
		Foreground(theme.Busy).
		Faint(true).
		Padding(0, 2)
	ButtonActive = lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Padding(0, 2)
	SelectionStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.Accent)
}
