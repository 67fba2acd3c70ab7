package abbrev

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	return Load(filepath.Join(t.TempDir(), "abbreviations.json"))
}

func TestAdd_NormalizesKeyToLowercase(t *testing.T) {
	r := newTestRegistry(t)

	require.NoError(t, r.Add("BTW", "by the way"))

	expansion, ok := r.Lookup("btw")
	require.True(t, ok)
	require.Equal(t, "by the way", expansion)
}

func TestAdd_LookupIsCaseInsensitive(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Add("btw", "by the way"))

	for _, key := range []string{"btw", "BTW", "Btw"} {
		expansion, ok := r.Lookup(key)
		require.True(t, ok, "lookup %q", key)
		require.Equal(t, "by the way", expansion)
	}
}

func TestAdd_DuplicateKeyLastWriteWins(t *testing.T) {
	r := newTestRegistry(t)

	require.NoError(t, r.Add("BTW", "by the way"))
	require.NoError(t, r.Add("btw", "between"))

	require.Equal(t, 1, r.Len())
	expansion, ok := r.Lookup("btw")
	require.True(t, ok)
	require.Equal(t, "between", expansion)
}

func TestAdd_TrimsWhitespace(t *testing.T) {
	r := newTestRegistry(t)

	require.NoError(t, r.Add("  l8r  ", "  later  "))

	expansion, ok := r.Lookup("l8r")
	require.True(t, ok)
	require.Equal(t, "later", expansion)
}

func TestAdd_RejectsEmptyFields(t *testing.T) {
	r := newTestRegistry(t)

	tests := []struct {
		name      string
		key       string
		expansion string
	}{
		{"empty key", "", "later"},
		{"whitespace key", "   ", "later"},
		{"empty expansion", "l8r", ""},
		{"whitespace expansion", "l8r", "   "},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, r.Add(tc.key, tc.expansion), ErrEmptyField)
		})
	}
	require.Equal(t, 0, r.Len())
}

func TestRemove_DeletesByNormalizedKey(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Add("btw", "by the way"))

	require.NoError(t, r.Remove("BTW"))

	_, ok := r.Lookup("btw")
	require.False(t, ok)
}

func TestRemove_AbsentKeyIsNoop(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Add("btw", "by the way"))

	require.NoError(t, r.Remove("nope"))
	require.Equal(t, 1, r.Len())
}

func TestSnapshot_ReturnsIndependentCopy(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Add("btw", "by the way"))

	snap := r.Snapshot()
	snap["btw"] = "mutated"
	snap["new"] = "entry"

	expansion, ok := r.Lookup("btw")
	require.True(t, ok)
	require.Equal(t, "by the way", expansion)
	require.Equal(t, 1, r.Len())
}

func TestKeys_SortedLexicographically(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Add("ttyl", "talk to you later"))
	require.NoError(t, r.Add("brb", "be right back"))
	require.NoError(t, r.Add("l8r", "later"))

	require.Equal(t, []string{"brb", "l8r", "ttyl"}, r.Keys())
}

func TestLoad_RoundtripAcrossRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abbreviations.json")

	r := Load(path)
	require.NoError(t, r.Add("btw", "by the way"))
	require.NoError(t, r.Add("l8r", "later"))

	reloaded := Load(path)
	require.Equal(t, r.Snapshot(), reloaded.Snapshot())
}
