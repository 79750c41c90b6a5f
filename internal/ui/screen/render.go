package screen

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// view is the data a frame is rendered from.
type view struct {
	state   State
	input   string
	spinner string
	cursor  int
	source  string
	noColor bool
}

const (
	titleText       = "Scavenger Hunt"
	subtitleText    = "Scan QR Code to Start"
	requestingText  = "Requesting camera permission..."
	deniedText      = "No access to camera"
	requestText     = "Request Permission Again"
	scanAgainText   = "Tap to Scan Again"
	backText        = "Back to Scanner"
	keyboardSource  = "Type a code or use a keyboard scanner"
	questionPointer = "> "
)

// renderScreen renders the body for the active screen.
func renderScreen(v view) string {
	switch v.state.Screen {
	case ScreenRequesting:
		return stylize(requestingText, v.noColor, lipgloss.Color("244"))
	case ScreenPermissionDenied:
		return renderDenied(v)
	case ScreenQuestion:
		if v.state.Current != nil {
			return renderQuestion(v)
		}
	}
	return renderScanner(v)
}

func renderDenied(v view) string {
	lines := []string{
		deniedText,
		"",
		renderButton(requestText, true, false, v.noColor),
	}
	if v.source != "" {
		lines = append(lines, "", stylize("Source: "+v.source, v.noColor, lipgloss.Color("242")))
	}
	return strings.Join(lines, "\n")
}

func renderScanner(v view) string {
	lines := []string{
		bold(titleText, v.noColor, lipgloss.Color("33")),
		stylize(subtitleText, v.noColor, lipgloss.Color("242")),
		"",
	}
	source := v.source
	if source == "" {
		source = keyboardSource
	}
	lines = append(lines, stylize(source, v.noColor, lipgloss.Color("240")))
	if !v.state.Scanned {
		lines = append(lines, v.input)
	} else if v.state.LastScan != "" {
		lines = append(lines, stylize("Scanned: "+v.state.LastScan, v.noColor, lipgloss.Color("240")))
	}
	if v.state.Scanned && !v.state.Loading {
		lines = append(lines, "", renderButton(scanAgainText, true, false, v.noColor))
	}
	if v.state.Loading {
		lines = append(lines, "", italic(v.spinner+" "+loadingQuestionText, v.noColor))
	}
	return strings.Join(lines, "\n")
}

func renderQuestion(v view) string {
	q := v.state.Current
	lines := []string{bold(q.Question, v.noColor, lipgloss.Color("252")), ""}
	choices := questionChoices(v.state)
	for i, choice := range choices {
		lines = append(lines, renderButton(choice, v.cursor == i, v.state.Loading, v.noColor))
	}
	if len(choices) > 0 {
		lines = append(lines, "")
	}
	lines = append(lines, renderButton(backText, v.cursor == len(choices), false, v.noColor))
	if v.state.Loading {
		lines = append(lines, "", italic(v.spinner+" "+loadingText, v.noColor))
	}
	return strings.Join(lines, "\n")
}

// renderButton renders a selectable line; disabled lines are dimmed and unmarked.
func renderButton(label string, selected, disabled, noColor bool) string {
	prefix := "  "
	if selected && !disabled {
		prefix = questionPointer
	}
	text := prefix + "[ " + label + " ]"
	switch {
	case disabled:
		return stylize(text, noColor, lipgloss.Color("238"))
	case selected:
		return bold(text, noColor, lipgloss.Color("39"))
	default:
		return stylize(text, noColor, lipgloss.Color("250"))
	}
}

// renderAlert renders a modal message box.
func renderAlert(alert Alert, noColor bool) string {
	body := alert.Title + "\n\n" + alert.Message + "\n\n[ OK ]"
	style := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	if !noColor {
		style = style.BorderForeground(alertColor(alert))
	}
	return style.Render(body)
}

func alertColor(alert Alert) lipgloss.Color {
	switch alert.Title {
	case alertCorrectTitle:
		return lipgloss.Color("42")
	case alertIncorrectTitle:
		return lipgloss.Color("214")
	default:
		return lipgloss.Color("196")
	}
}

// renderFooter renders the progress and status line.
func renderFooter(state State, noColor bool) string {
	var parts []string
	if state.Found > 0 {
		parts = append(parts, "Found: "+strconv.Itoa(state.Found))
	}
	if state.Status != "" {
		parts = append(parts, state.Status)
	}
	if len(parts) == 0 {
		return ""
	}
	return stylize(strings.Join(parts, " | "), noColor, lipgloss.Color("244"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

func bold(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(text)
}

func italic(text string, noColor bool) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("244")).Render(text)
}
