package screen

import (
	"strings"

	"hunt/internal/hunt"
)

// Start returns the initial state and the permission request that opens the session.
func Start() (State, Effect) {
	return State{Screen: ScreenRequesting}, Effect{Kind: EffectRequestPermission}
}

// Reduce applies an event to the state and returns any side effect to run.
func Reduce(state State, event Event) (State, Effect) {
	switch ev := event.(type) {
	case PermissionRequested:
		if state.Screen != ScreenRequesting && state.Screen != ScreenPermissionDenied {
			return state, Effect{}
		}
		return state, Effect{Kind: EffectRequestPermission}
	case PermissionResolved:
		return resolvePermission(state, ev), Effect{}
	case Scanned:
		return scanned(state, ev.ID)
	case ScanFailed:
		if ev.Err != nil {
			state.Status = "Scan error: " + ev.Err.Error()
		}
		return state, Effect{}
	case ScanAgain:
		if state.Screen == ScreenScanner && !state.Loading {
			state.Scanned = false
		}
		return state, Effect{}
	case QuestionLoaded:
		question := ev.Question
		state.Loading = false
		state.Current = &question
		state.Screen = ScreenQuestion
		return state, Effect{}
	case QuestionFailed:
		state.Loading = false
		state.Alert = &Alert{Title: alertErrorTitle, Message: alertFetchFailed}
		return state, Effect{}
	case AnswerChosen:
		return answer(state, ev.Choice)
	case AnswerChecked:
		state.Loading = false
		if ev.Result.IsCorrect {
			state.Found++
			state.Alert = &Alert{
				Title:   alertCorrectTitle,
				Message: alertCorrectMessage,
				MapURL:  hunt.MapURL(ev.Result.Coordinates),
			}
			return state, Effect{}
		}
		state.Alert = &Alert{Title: alertIncorrectTitle, Message: alertIncorrectMessage}
		return state, Effect{}
	case AnswerFailed:
		state.Loading = false
		state.Alert = &Alert{Title: alertErrorTitle, Message: alertSubmitFailed}
		return state, Effect{}
	case AlertDismissed:
		return dismissAlert(state)
	case MapOpened:
		if ev.Err != nil {
			state.Status = "Could not open " + ev.URL + ": " + ev.Err.Error()
		} else if ev.URL != "" {
			state.Status = "Opened " + ev.URL
		}
		return state, Effect{}
	case BackToScanner:
		if state.Screen != ScreenQuestion && state.Screen != ScreenScanner {
			return state, Effect{}
		}
		return resetToScanner(state), Effect{}
	default:
		return state, Effect{}
	}
}

func resolvePermission(state State, ev PermissionResolved) State {
	if !ev.Granted {
		state.Screen = ScreenPermissionDenied
		if ev.Err != nil {
			state.Status = ev.Err.Error()
		}
		return state
	}
	if state.Screen == ScreenRequesting || state.Screen == ScreenPermissionDenied {
		state.Screen = ScreenScanner
		state.Status = ""
	}
	return state
}

// scanned latches the scanner and starts loading the question.
func scanned(state State, id string) (State, Effect) {
	id = strings.TrimSpace(id)
	if id == "" || state.Screen != ScreenScanner || state.Scanned || state.Loading {
		return state, Effect{}
	}
	state.Scanned = true
	state.Loading = true
	state.LastScan = id
	state.Status = ""
	return state, Effect{Kind: EffectFetch, ScanID: id}
}

func answer(state State, choice string) (State, Effect) {
	if state.Screen != ScreenQuestion || state.Current == nil || state.Loading || state.Alert != nil {
		return state, Effect{}
	}
	state.Loading = true
	return state, Effect{Kind: EffectSubmit, Question: *state.Current, Answer: choice}
}

// dismissAlert acknowledges the alert; a correct answer opens the map and resets the scanner.
func dismissAlert(state State) (State, Effect) {
	if state.Alert == nil {
		return state, Effect{}
	}
	alert := *state.Alert
	state.Alert = nil
	if alert.MapURL == "" {
		return state, Effect{}
	}
	return resetToScanner(state), Effect{Kind: EffectOpenMap, URL: alert.MapURL}
}

func resetToScanner(state State) State {
	state.Current = nil
	state.Scanned = false
	state.Screen = ScreenScanner
	return state
}
