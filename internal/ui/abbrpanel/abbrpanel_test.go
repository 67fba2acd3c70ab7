package abbrpanel

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAddForm_SubmitEmitsRequest(t *testing.T) {
	m := New(nil, nil)

	m, _ = m.Update(key("a"))
	require.True(t, m.Adding())

	m, _ = m.Update(key("btw"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(key("by the way"))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.False(t, m.Adding())
	require.NotNil(t, cmd)
	require.Equal(t, AddRequestedMsg{Key: "btw", Expansion: "by the way"}, cmd())
}

func TestAddForm_EscapeCancelsWithoutRequest(t *testing.T) {
	m := New(nil, nil)

	m, _ = m.Update(key("a"))
	m, _ = m.Update(key("btw"))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})

	require.False(t, m.Adding())
	require.Nil(t, cmd)
}

func TestRemove_EmitsRequestForSelectedKey(t *testing.T) {
	m := New([]string{"brb", "btw"}, map[string]string{"brb": "be right back", "btw": "by the way"})
	m, _ = m.Update(key("j"))

	_, cmd := m.Update(key("d"))
	require.NotNil(t, cmd)
	require.Equal(t, RemoveRequestedMsg{Key: "btw"}, cmd())
}

func TestRemove_NoRequestWhenEmpty(t *testing.T) {
	m := New(nil, nil)
	_, cmd := m.Update(key("d"))
	require.Nil(t, cmd)
}

func TestEscape_EmitsCloseFromBrowseMode(t *testing.T) {
	m := New(nil, nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	require.NotNil(t, cmd)
	require.Equal(t, CloseMsg{}, cmd())
}

func TestView_EmptyState(t *testing.T) {
	m := New(nil, nil)
	require.Contains(t, m.View(), "You haven't added any custom abbreviations yet.")
}

func TestSetEntries_ClampsCursor(t *testing.T) {
	m := New([]string{"a", "b", "c"}, map[string]string{"a": "1", "b": "2", "c": "3"})
	m, _ = m.Update(key("j"))
	m, _ = m.Update(key("j"))

	m = m.SetEntries([]string{"a"}, map[string]string{"a": "1"})
	_, cmd := m.Update(key("d"))
	require.NotNil(t, cmd)
	require.Equal(t, RemoveRequestedMsg{Key: "a"}, cmd())
}
