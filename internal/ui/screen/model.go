package screen

import (
	"context"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hunt/internal/scan"
)

// Options configures the terminal UI.
type Options struct {
	NoColor bool
	// SourceLabel describes where scans come from, e.g. the capture directory.
	SourceLabel string
}

// Model renders the hunt client using Bubble Tea.
type Model struct {
	ctx       context.Context
	deps      Deps
	state     State
	input     textinput.Model
	spinner   spinner.Model
	help      help.Model
	keys      keyMap
	cursor    int
	listening bool
	opts      Options
}

// NewModel constructs the UI in its initial permission-requesting state.
func NewModel(ctx context.Context, deps Deps, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if deps.Source == nil {
		deps.Source = scan.KeyboardOnly{}
	}
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "scan or type a code"
	input.CharLimit = 512
	input.Cursor.SetMode(cursor.CursorStatic)

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	if !opts.NoColor {
		spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	}

	state, _ := Start()
	return Model{
		ctx:     ctx,
		deps:    deps,
		state:   state,
		input:   input,
		spinner: spin,
		help:    help.New(),
		keys:    defaultKeyMap(),
		opts:    opts,
	}
}

// State returns the current client state.
func (m Model) State() State {
	return m.state
}

// Init requests scan source access and starts the spinner.
func (m Model) Init() tea.Cmd {
	_, effect := Start()
	return tea.Batch(m.run(effect), m.spinner.Tick)
}

// Update consumes key presses, effect outcomes and scans.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = typed.Width
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(typed)
		return m, cmd
	case EventMsg:
		return m.dispatch(typed.Event)
	case frameMsg:
		var cmd tea.Cmd
		if typed.err != nil {
			m, cmd = m.dispatch(ScanFailed{Err: typed.err})
		} else {
			m, cmd = m.dispatch(Scanned{ID: typed.payload})
		}
		if m.deps.Source.Frames() == nil {
			return m, cmd
		}
		return m, tea.Batch(cmd, waitForFrame(m.deps.Source))
	case sourceClosedMsg:
		m.listening = false
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

// View renders the current screen.
func (m Model) View() string {
	typing := m.input.Focused()
	v := view{
		state:   m.state,
		input:   m.input.View(),
		spinner: m.spinner.View(),
		cursor:  m.cursor,
		source:  m.opts.SourceLabel,
		noColor: m.opts.NoColor,
	}
	parts := []string{renderScreen(v)}
	if m.state.Alert != nil {
		parts = append(parts, "", renderAlert(*m.state.Alert, m.opts.NoColor))
	}
	if footer := renderFooter(m.state, m.opts.NoColor); footer != "" {
		parts = append(parts, "", footer)
	}
	parts = append(parts, "", m.help.ShortHelpView(m.keys.forState(m.state, typing)))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// EventMsg wraps an event for Bubble Tea.
type EventMsg struct {
	Event Event
}

// frameMsg carries one read from the scan source.
type frameMsg struct {
	payload string
	err     error
}

// sourceClosedMsg signals the scan source stopped.
type sourceClosedMsg struct{}

// dispatch runs the reducer and schedules the resulting effect.
func (m Model) dispatch(event Event) (Model, tea.Cmd) {
	prev := m.state
	var effect Effect
	m.state, effect = Reduce(m.state, event)
	if m.state.Current != prev.Current {
		m.cursor = 0
	}
	m.syncInput()

	cmds := []tea.Cmd{m.run(effect)}
	if m.state.Screen == ScreenScanner && !m.listening && m.deps.Source.Frames() != nil {
		m.listening = true
		cmds = append(cmds, waitForFrame(m.deps.Source))
	}
	return m, tea.Batch(cmds...)
}

// syncInput focuses the scan input only while a keyboard scan can be accepted.
func (m *Model) syncInput() {
	accepting := m.state.Screen == ScreenScanner && !m.state.Scanned && !m.state.Loading && m.state.Alert == nil
	if accepting {
		if !m.input.Focused() {
			m.input.Focus()
		}
		return
	}
	if m.input.Focused() {
		m.input.Blur()
	}
	m.input.Reset()
}

// run turns an effect into a command.
func (m Model) run(effect Effect) tea.Cmd {
	if effect.Kind == EffectNone {
		return nil
	}
	ctx, deps := m.ctx, m.deps
	return func() tea.Msg {
		event := Execute(ctx, deps, effect)
		if event == nil {
			return nil
		}
		return EventMsg{Event: event}
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.state.Alert != nil {
		if key.Matches(msg, m.keys.Dismiss) {
			return m.dispatch(AlertDismissed{})
		}
		return m, nil
	}
	switch m.state.Screen {
	case ScreenPermissionDenied:
		if key.Matches(msg, m.keys.Retry) {
			return m.dispatch(PermissionRequested{})
		}
	case ScreenScanner:
		if m.input.Focused() {
			if key.Matches(msg, m.keys.Scan) {
				value := m.input.Value()
				m.input.Reset()
				return m.dispatch(Scanned{ID: value})
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		if key.Matches(msg, m.keys.ScanAgain) {
			return m.dispatch(ScanAgain{})
		}
	case ScreenQuestion:
		return m.handleQuestionKey(msg)
	}
	if key.Matches(msg, m.keys.QuitKey) {
		return m, tea.Quit
	}
	return m, nil
}

// handleQuestionKey moves over the choices plus the trailing back entry.
func (m Model) handleQuestionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	choices := questionChoices(m.state)
	last := len(choices)
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < last {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if m.cursor < last {
			return m.dispatch(AnswerChosen{Choice: choices[m.cursor]})
		}
		return m.dispatch(BackToScanner{})
	case key.Matches(msg, m.keys.Back):
		return m.dispatch(BackToScanner{})
	case key.Matches(msg, m.keys.QuitKey):
		return m, tea.Quit
	}
	return m, nil
}

// questionChoices returns the selectable choices of the current question.
func questionChoices(state State) []string {
	if state.Current == nil || !state.Current.HasChoices() {
		return nil
	}
	return state.Current.Choices
}

// waitForFrame blocks until the scan source yields a payload or an error.
func waitForFrame(source scan.Source) tea.Cmd {
	return func() tea.Msg {
		select {
		case payload, ok := <-source.Frames():
			if !ok {
				return sourceClosedMsg{}
			}
			return frameMsg{payload: payload}
		case err, ok := <-source.Errors():
			if !ok {
				return sourceClosedMsg{}
			}
			return frameMsg{err: err}
		}
	}
}
