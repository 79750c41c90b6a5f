package screen

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings of every screen.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Back      key.Binding
	Scan      key.Binding
	ScanAgain key.Binding
	Retry     key.Binding
	Dismiss   key.Binding
	Quit      key.Binding
	QuitKey   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Back:      key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("b", "back to scanner")),
		Scan:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "scan")),
		ScanAgain: key.NewBinding(key.WithKeys("s", "enter"), key.WithHelp("s", "scan again")),
		Retry:     key.NewBinding(key.WithKeys("r", "enter"), key.WithHelp("r", "request permission")),
		Dismiss:   key.NewBinding(key.WithKeys("enter", " ", "esc"), key.WithHelp("enter", "ok")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		QuitKey:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// forState returns the bindings worth showing for the current view.
func (k keyMap) forState(state State, typing bool) []key.Binding {
	if state.Alert != nil {
		return []key.Binding{k.Dismiss, k.Quit}
	}
	switch state.Screen {
	case ScreenPermissionDenied:
		return []key.Binding{k.Retry, k.QuitKey}
	case ScreenScanner:
		if typing {
			return []key.Binding{k.Scan, k.Quit}
		}
		if state.Scanned && !state.Loading {
			return []key.Binding{k.ScanAgain, k.QuitKey}
		}
		return []key.Binding{k.QuitKey}
	case ScreenQuestion:
		return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.QuitKey}
	default:
		return []key.Binding{k.Quit}
	}
}
