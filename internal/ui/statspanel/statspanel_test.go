package statspanel

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/pavannsshetty7022/abbrevify/internal/stats"
)

func TestView_ShowsAllCounters(t *testing.T) {
	m := New(stats.Counters{
		TotalConversions:     10,
		SmsToFullCount:       4,
		FullToSmsCount:       3,
		GrammarCheckCount:    2,
		PlagiarismCheckCount: 1,
	})

	view := m.View()
	require.Contains(t, view, "Usage Statistics")
	require.Contains(t, view, "Total Conversions")
	require.Contains(t, view, "10")
	require.Contains(t, view, "Plagiarism Checks")
}

func TestDismissKeys_EmitClose(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyEscape},
		{Type: tea.KeyEnter},
		{Type: tea.KeyRunes, Runes: []rune("q")},
	} {
		m := New(stats.Counters{})
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd)
		require.Equal(t, CloseMsg{}, cmd())
	}
}
