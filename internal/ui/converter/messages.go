package converter

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pavannsshetty7022/abbrevify/internal/service"
)

// Processor issues one processing request. Satisfied by *service.Client;
// tests substitute a stub.
type Processor interface {
	Process(ctx context.Context, req service.Request) (*service.Response, error)
}

// processResultMsg carries the outcome of one remote action. The mode and
// input are the values captured when the request was issued, so history
// entries and counters reflect what the user actually submitted even if the
// mode was toggled while the request was in flight.
type processResultMsg struct {
	action service.Action
	mode   service.Mode
	input  string
	resp   *service.Response
	err    error
}

// processCmd issues exactly one request for the given action.
func processCmd(proc Processor, action service.Action, mode service.Mode, input string, snapshot map[string]string) tea.Cmd {
	return func() tea.Msg {
		resp, err := proc.Process(context.Background(), service.Request{
			Text:                input,
			Action:              action,
			Mode:                mode,
			CustomAbbreviations: snapshot,
		})
		return processResultMsg{action: action, mode: mode, input: input, resp: resp, err: err}
	}
}
