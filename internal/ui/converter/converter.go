// Package converter implements the main screen: input and output surfaces,
// the three remote actions with per-control busy states, the mode toggle,
// and the overlay panels. It owns the three persisted collections and is the
// only place that mutates them.
package converter

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pavannsshetty7022/abbrevify/internal/abbrev"
	"github.com/pavannsshetty7022/abbrevify/internal/auth"
	"github.com/pavannsshetty7022/abbrevify/internal/config"
	"github.com/pavannsshetty7022/abbrevify/internal/history"
	"github.com/pavannsshetty7022/abbrevify/internal/log"
	"github.com/pavannsshetty7022/abbrevify/internal/service"
	"github.com/pavannsshetty7022/abbrevify/internal/stats"
	"github.com/pavannsshetty7022/abbrevify/internal/ui/abbrpanel"
	"github.com/pavannsshetty7022/abbrevify/internal/ui/historypanel"
	"github.com/pavannsshetty7022/abbrevify/internal/ui/modal"
	"github.com/pavannsshetty7022/abbrevify/internal/ui/statspanel"
	"github.com/pavannsshetty7022/abbrevify/internal/ui/styles"
)

// processingMarker is shown on the output surface while a request is in
// flight.
const processingMarker = "Processing..."

const connectivityAlert = "There was an error connecting to the server."

// overlayKind selects which panel, if any, covers the main screen.
type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayHistory
	overlayAbbrevs
	overlayStats
)

// pendingKind is the destructive action parked while its confirmation
// dialog is open.
type pendingKind int

const (
	pendingNone pendingKind = iota
	pendingDeleteEntry
	pendingClearHistory
)

// Deps wires the orchestrator to its collaborators.
type Deps struct {
	Processor Processor
	History   *history.Log
	Abbrevs   *abbrev.Registry
	Stats     *stats.Tracker

	// ConfigPath is where the theme preference is persisted. Empty disables
	// persistence (tests).
	ConfigPath string
	Theme      string
	User       *auth.User
}

// Model is the main screen state.
type Model struct {
	deps Deps
	keys keyMap

	mode   service.Mode
	input  textarea.Model
	output string
	busy   map[service.Action]bool
	spin   spinner.Model
	theme  string

	dialog    modal.Model
	pending   pendingKind
	pendingID int64

	overlay      overlayKind
	historyPanel historypanel.Model
	abbrPanel    abbrpanel.Model
	statsPanel   statspanel.Model

	width  int
	height int
}

// New creates the main screen model.
func New(deps Deps) Model {
	styles.ApplyTheme(deps.Theme)

	input := textarea.New()
	input.ShowLineNumbers = false
	input.SetHeight(4)
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.SpinnerColor)

	m := Model{
		deps:   deps,
		keys:   defaultKeyMap(),
		mode:   service.ModeSmsToFull,
		input:  input,
		busy:   make(map[service.Action]bool),
		spin:   s,
		theme:  deps.Theme,
		dialog: modal.New(),
	}
	m.refreshPlaceholder()
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Mode returns the current conversion direction.
func (m Model) Mode() service.Mode { return m.mode }

// Output returns the current output surface content.
func (m Model) Output() string { return m.output }

// Busy reports whether the given action has a request in flight.
func (m Model) Busy(action service.Action) bool { return m.busy[action] }

// DialogVisible reports whether a dialog currently covers the screen.
func (m Model) DialogVisible() bool { return m.dialog.IsVisible() }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case spinner.TickMsg:
		if !m.anyBusy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case processResultMsg:
		return m.handleProcessResult(msg)

	case historypanel.DeleteRequestedMsg:
		m.pending = pendingDeleteEntry
		m.pendingID = msg.ID
		m.dialog.ShowConfirm("Are you sure you want to delete this conversion from history?")
		return m, nil

	case historypanel.ClearRequestedMsg:
		m.pending = pendingClearHistory
		m.dialog.ShowConfirm("Are you sure you want to clear all conversion history?")
		return m, nil

	case historypanel.CloseMsg, abbrpanel.CloseMsg, statspanel.CloseMsg:
		m.overlay = overlayNone
		return m, nil

	case abbrpanel.AddRequestedMsg:
		return m.handleAddAbbreviation(msg), nil

	case abbrpanel.RemoveRequestedMsg:
		if err := m.deps.Abbrevs.Remove(msg.Key); err != nil {
			log.Warn(log.CatStore, "failed to remove abbreviation", "key", msg.Key, "error", err)
		}
		m.abbrPanel = m.abbrPanel.SetEntries(m.deps.Abbrevs.Keys(), m.deps.Abbrevs.Snapshot())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The dialog is the single suspension point: while visible it swallows
	// all input, and destructive intents resolve through it.
	if m.dialog.IsVisible() {
		var result modal.Result
		m.dialog, result = m.dialog.Update(msg)
		return m.resolveDialog(result)
	}

	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.overlay != overlayNone {
		return m.updateOverlay(msg)
	}

	switch {
	case keyMatches(msg, m.keys.Convert):
		return m.trigger(service.ActionConvert)
	case keyMatches(msg, m.keys.Grammar):
		return m.trigger(service.ActionGrammar)
	case keyMatches(msg, m.keys.Plagiarism):
		return m.trigger(service.ActionPlagiarism)

	case keyMatches(msg, m.keys.ToggleMode):
		// Synchronous transition: flips direction, refreshes labels, clears
		// both surfaces. Never touches the collections.
		m.mode = m.mode.Toggle()
		m.refreshPlaceholder()
		m.input.SetValue("")
		m.output = ""
		return m, nil

	case keyMatches(msg, m.keys.ClearInput):
		m.input.SetValue("")
		m.output = ""
		return m, nil

	case keyMatches(msg, m.keys.History):
		m.overlay = overlayHistory
		m.historyPanel = historypanel.New(m.deps.History.Entries()).SetSize(m.width, m.height)
		return m, nil

	case keyMatches(msg, m.keys.Abbrevs):
		m.overlay = overlayAbbrevs
		m.abbrPanel = abbrpanel.New(m.deps.Abbrevs.Keys(), m.deps.Abbrevs.Snapshot()).SetSize(m.width, m.height)
		return m, nil

	case keyMatches(msg, m.keys.Stats):
		m.overlay = overlayStats
		m.statsPanel = statspanel.New(m.deps.Stats.Counters()).SetSize(m.width, m.height)
		return m, nil

	case keyMatches(msg, m.keys.Theme):
		return m.toggleTheme(), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// trigger validates input and launches one request for the action. An
// action whose own request is still in flight cannot be re-triggered, but
// the other actions stay live.
func (m Model) trigger(action service.Action) (tea.Model, tea.Cmd) {
	if m.busy[action] {
		return m, nil
	}

	input := strings.TrimSpace(m.input.Value())
	if input == "" {
		m.dialog.ShowAlert(emptyInputMessage(action))
		return m, nil
	}

	m.busy[action] = true
	m.output = processingMarker

	// Mode and abbreviation snapshot are captured now, before the
	// asynchronous round trip.
	mode := m.mode
	snapshot := m.deps.Abbrevs.Snapshot()

	log.Debug(log.CatUI, "action triggered", "action", action, "mode", mode)
	return m, tea.Batch(m.spin.Tick, processCmd(m.deps.Processor, action, mode, input, snapshot))
}

func (m Model) handleProcessResult(msg processResultMsg) (tea.Model, tea.Cmd) {
	m.busy[msg.action] = false

	formatted := ""
	err := msg.err
	if err == nil {
		formatted, err = service.FormatResult(msg.action, msg.resp)
	}
	if err != nil {
		log.Warn(log.CatUI, "action failed", "action", msg.action, "error", err)
		m.output = failureMessage(msg.action)
		m.dialog.ShowAlert(connectivityAlert)
		return m, nil
	}

	m.output = formatted

	if msg.action == service.ActionConvert {
		if _, err := m.deps.History.Append(msg.input, formatted, msg.mode.Label()); err != nil {
			log.Warn(log.CatStore, "failed to persist history entry", "error", err)
		}
	}
	if err := m.deps.Stats.RecordAction(msg.action, msg.mode); err != nil {
		log.Warn(log.CatStore, "failed to persist usage counters", "error", err)
	}
	return m, nil
}

func (m Model) resolveDialog(result modal.Result) (tea.Model, tea.Cmd) {
	switch result {
	case modal.ResultConfirmed:
		switch m.pending {
		case pendingDeleteEntry:
			if err := m.deps.History.Remove(m.pendingID); err != nil {
				log.Warn(log.CatStore, "failed to delete history entry", "id", m.pendingID, "error", err)
			}
			m.historyPanel = m.historyPanel.SetEntries(m.deps.History.Entries())
			m.dialog.ShowAlert("Conversion deleted from history.")
		case pendingClearHistory:
			if err := m.deps.History.Clear(); err != nil {
				log.Warn(log.CatStore, "failed to clear history", "error", err)
			}
			m.historyPanel = m.historyPanel.SetEntries(nil)
			m.dialog.ShowAlert("All history cleared!")
		}
		m.pending = pendingNone

	case modal.ResultDeclined, modal.ResultDismissed:
		m.pending = pendingNone
	}
	return m, nil
}

func (m Model) updateOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.overlay {
	case overlayHistory:
		m.historyPanel, cmd = m.historyPanel.Update(msg)
	case overlayAbbrevs:
		m.abbrPanel, cmd = m.abbrPanel.Update(msg)
	case overlayStats:
		m.statsPanel, cmd = m.statsPanel.Update(msg)
	}
	return m, cmd
}

func (m Model) handleAddAbbreviation(msg abbrpanel.AddRequestedMsg) Model {
	if err := m.deps.Abbrevs.Add(msg.Key, msg.Expansion); err != nil {
		if errors.Is(err, abbrev.ErrEmptyField) {
			m.dialog.ShowAlert("Both fields must be filled out.")
		} else {
			log.Warn(log.CatStore, "failed to save abbreviation", "error", err)
			m.dialog.ShowAlert("Failed to save the abbreviation.")
		}
		return m
	}
	m.abbrPanel = m.abbrPanel.SetEntries(m.deps.Abbrevs.Keys(), m.deps.Abbrevs.Snapshot())
	return m
}

func (m Model) toggleTheme() Model {
	if m.theme == config.ThemeDark {
		m.theme = config.ThemeLight
	} else {
		m.theme = config.ThemeDark
	}
	styles.ApplyTheme(m.theme)
	if m.deps.ConfigPath != "" {
		if err := config.SaveTheme(m.deps.ConfigPath, m.theme); err != nil {
			log.Warn(log.CatStore, "failed to persist theme", "error", err)
		}
	}
	return m
}

func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height
	m.dialog.SetSize(msg.Width, msg.Height)
	m.historyPanel = m.historyPanel.SetSize(msg.Width, msg.Height)
	m.abbrPanel = m.abbrPanel.SetSize(msg.Width, msg.Height)
	m.statsPanel = m.statsPanel.SetSize(msg.Width, msg.Height)

	inputWidth := msg.Width - 6
	if inputWidth > 80 {
		inputWidth = 80
	}
	if inputWidth > 0 {
		m.input.SetWidth(inputWidth)
	}
	return m
}

func (m Model) anyBusy() bool {
	for _, b := range m.busy {
		if b {
			return true
		}
	}
	return false
}

func (m *Model) refreshPlaceholder() {
	if m.mode == service.ModeSmsToFull {
		m.input.Placeholder = "e.g., wt 2 4 u, l8r, ttyl"
	} else {
		m.input.Placeholder = "e.g., Be right back"
	}
}

func emptyInputMessage(action service.Action) string {
	switch action {
	case service.ActionGrammar:
		return "Please enter text to check grammar."
	case service.ActionPlagiarism:
		return "Please enter text to check for plagiarism."
	default:
		return "Please enter text to convert."
	}
}

func failureMessage(action service.Action) string {
	switch action {
	case service.ActionGrammar:
		return "Error checking grammar. Please try again."
	case service.ActionPlagiarism:
		return "Error checking plagiarism. Please try again."
	default:
		return "Error converting text. Please try again."
	}
}
