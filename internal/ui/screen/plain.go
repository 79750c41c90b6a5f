package screen

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"hunt/internal/scan"
)

// RunPlain drives the client with line prompts instead of a full-screen UI.
// Alerts are acknowledged automatically. It returns when input ends, the
// player quits or ctx is done.
func RunPlain(ctx context.Context, in io.Reader, out io.Writer, deps Deps, opts Options) error {
	if deps.Source == nil {
		deps.Source = scan.KeyboardOnly{}
	}
	p := &plain{ctx: ctx, deps: deps, out: out, opts: opts}
	state, effect := Start()
	p.state = state
	p.write(requestingText)
	p.dispatch(Execute(ctx, deps, effect))

	lines := readLines(ctx, in)
	frames, errs := deps.Source.Frames(), deps.Source.Errors()
	for {
		p.prompt()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				return nil
			}
			if p.handleLine(line) {
				return nil
			}
		case payload, ok := <-frames:
			if !ok {
				frames = nil
				continue
			}
			fmt.Fprintln(out)
			p.dispatch(Scanned{ID: payload})
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			fmt.Fprintln(out)
			p.dispatch(ScanFailed{Err: err})
		}
	}
}

type plain struct {
	ctx   context.Context
	deps  Deps
	out   io.Writer
	opts  Options
	state State
}

// dispatch applies event and every event its effects produce.
func (p *plain) dispatch(event Event) {
	for event != nil {
		prev := p.state
		var effect Effect
		p.state, effect = Reduce(p.state, event)
		p.render(prev)
		if p.state.Alert != nil && effect.Kind == EffectNone {
			event = AlertDismissed{}
			continue
		}
		event = Execute(p.ctx, p.deps, effect)
	}
}

// render prints what changed between prev and the current state.
func (p *plain) render(prev State) {
	next := p.state
	if next.Screen != prev.Screen {
		switch next.Screen {
		case ScreenPermissionDenied:
			p.write(deniedText)
		case ScreenScanner:
			if prev.Screen != ScreenQuestion {
				p.write(titleText)
			}
			p.write(subtitleText)
			if p.opts.SourceLabel != "" {
				p.write(p.opts.SourceLabel)
			}
		}
	}
	if next.Current != nil && next.Current != prev.Current {
		p.write("")
		p.write(next.Current.Question)
		for i, choice := range questionChoices(next) {
			p.write(fmt.Sprintf("  %d) %s", i+1, choice))
		}
	}
	if next.Loading && !prev.Loading {
		if next.Screen == ScreenQuestion {
			p.write(loadingText)
		} else {
			p.write(loadingQuestionText)
		}
	}
	if next.Alert != nil && next.Alert != prev.Alert {
		p.write(next.Alert.Title + " " + next.Alert.Message)
	}
	if next.Status != "" && next.Status != prev.Status {
		p.write(next.Status)
	}
}

func (p *plain) prompt() {
	switch p.state.Screen {
	case ScreenPermissionDenied:
		fmt.Fprint(p.out, requestText+"? [r/q]: ")
	case ScreenQuestion:
		if n := len(questionChoices(p.state)); n > 0 {
			fmt.Fprintf(p.out, "Choose 1-%d (b: back, q: quit): ", n)
			return
		}
		fmt.Fprint(p.out, "b: back, q: quit: ")
	case ScreenScanner:
		if p.state.Scanned && !p.state.Loading {
			fmt.Fprint(p.out, scanAgainText+" [enter]: ")
			return
		}
		fmt.Fprint(p.out, "Scan code: ")
	}
}

// handleLine interprets one line of input and reports whether to quit.
func (p *plain) handleLine(line string) bool {
	line = strings.TrimSpace(line)
	if line == "q" || line == "quit" {
		return true
	}
	switch p.state.Screen {
	case ScreenPermissionDenied:
		if line == "" || line == "r" {
			p.dispatch(PermissionRequested{})
		}
	case ScreenScanner:
		if p.state.Scanned {
			if line == "" || line == "s" {
				p.dispatch(ScanAgain{})
			}
			return false
		}
		p.dispatch(Scanned{ID: line})
	case ScreenQuestion:
		if line == "b" || line == "back" {
			p.dispatch(BackToScanner{})
			return false
		}
		if choice, ok := matchChoice(questionChoices(p.state), line); ok {
			p.dispatch(AnswerChosen{Choice: choice})
			return false
		}
		if line != "" {
			p.write("Unknown choice " + strconv.Quote(line))
		}
	}
	return false
}

// matchChoice resolves a 1-based index or the choice text.
func matchChoice(choices []string, line string) (string, bool) {
	if index, err := strconv.Atoi(line); err == nil {
		if index >= 1 && index <= len(choices) {
			return choices[index-1], true
		}
		return "", false
	}
	for _, choice := range choices {
		if strings.EqualFold(choice, line) {
			return choice, true
		}
	}
	return "", false
}

func (p *plain) write(line string) {
	fmt.Fprintln(p.out, line)
}

// readLines streams lines from r until EOF or until ctx is done.
func readLines(ctx context.Context, r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}
