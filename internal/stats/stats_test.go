package stats

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pavannsshetty7022/abbrevify/internal/service"
)

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	return Load(filepath.Join(t.TempDir(), "stats.json"))
}

func sumOfLeaves(c Counters) int {
	return c.SmsToFullCount + c.FullToSmsCount + c.GrammarCheckCount + c.PlagiarismCheckCount
}

func TestRecordAction_ConvertFollowsCapturedMode(t *testing.T) {
	tr := newTestTracker(t)

	require.NoError(t, tr.RecordAction(service.ActionConvert, service.ModeSmsToFull))
	require.NoError(t, tr.RecordAction(service.ActionConvert, service.ModeFullToSms))
	require.NoError(t, tr.RecordAction(service.ActionConvert, service.ModeSmsToFull))

	c := tr.Counters()
	require.Equal(t, 2, c.SmsToFullCount)
	require.Equal(t, 1, c.FullToSmsCount)
	require.Equal(t, 3, c.TotalConversions)
}

func TestRecordAction_GrammarAndPlagiarism(t *testing.T) {
	tr := newTestTracker(t)

	require.NoError(t, tr.RecordAction(service.ActionGrammar, service.ModeSmsToFull))
	require.NoError(t, tr.RecordAction(service.ActionPlagiarism, service.ModeFullToSms))

	c := tr.Counters()
	require.Equal(t, 1, c.GrammarCheckCount)
	require.Equal(t, 1, c.PlagiarismCheckCount)
	require.Equal(t, 0, c.SmsToFullCount)
	require.Equal(t, 0, c.FullToSmsCount)
	require.Equal(t, 2, c.TotalConversions)
}

func TestRecordAction_TotalEqualsSumOfLeaves(t *testing.T) {
	tr := newTestTracker(t)

	sequence := []struct {
		action service.Action
		mode   service.Mode
	}{
		{service.ActionConvert, service.ModeSmsToFull},
		{service.ActionGrammar, service.ModeSmsToFull},
		{service.ActionConvert, service.ModeFullToSms},
		{service.ActionPlagiarism, service.ModeSmsToFull},
		{service.ActionConvert, service.ModeSmsToFull},
		{service.ActionGrammar, service.ModeFullToSms},
	}
	for _, step := range sequence {
		require.NoError(t, tr.RecordAction(step.action, step.mode))
		c := tr.Counters()
		require.Equal(t, sumOfLeaves(c), c.TotalConversions)
	}
}

func TestRecordAction_UnknownActionIsNoop(t *testing.T) {
	tr := newTestTracker(t)

	require.NoError(t, tr.RecordAction(service.Action("bogus"), service.ModeSmsToFull))

	require.Equal(t, Counters{}, tr.Counters())
}

func TestLoad_RoundtripAcrossRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")

	tr := Load(path)
	require.NoError(t, tr.RecordAction(service.ActionConvert, service.ModeSmsToFull))
	require.NoError(t, tr.RecordAction(service.ActionGrammar, service.ModeSmsToFull))

	reloaded := Load(path)
	require.Equal(t, tr.Counters(), reloaded.Counters())
}
