package screen

import (
	"context"

	"github.com/rs/zerolog"

	"hunt/internal/hunt"
	"hunt/internal/maps"
	"hunt/internal/scan"
)

// EffectKind identifies I/O requested by the reducer.
type EffectKind int

const (
	// EffectNone requests nothing.
	EffectNone EffectKind = iota
	// EffectRequestPermission asks the scan source for access.
	EffectRequestPermission
	// EffectFetch loads the question for ScanID.
	EffectFetch
	// EffectSubmit posts Answer for Question.
	EffectSubmit
	// EffectOpenMap opens URL.
	EffectOpenMap
)

// Effect is a side effect to run after a transition.
type Effect struct {
	Kind     EffectKind
	ScanID   string
	Question hunt.Question
	Answer   string
	URL      string
}

// Service is the question endpoint.
type Service interface {
	FetchQuestion(ctx context.Context, scanID string) (hunt.Question, error)
	SubmitAnswer(ctx context.Context, question hunt.Question, answer string) (hunt.SubmitResult, error)
}

// Deps wires the side effects of the client.
type Deps struct {
	Service Service
	Source  scan.Source
	Opener  maps.Opener
	Logger  zerolog.Logger
}

// Execute runs an effect and returns the event describing its outcome.
// It returns nil for EffectNone.
func Execute(ctx context.Context, deps Deps, effect Effect) Event {
	switch effect.Kind {
	case EffectRequestPermission:
		source := deps.Source
		if source == nil {
			source = scan.KeyboardOnly{}
		}
		perm, err := source.Request(ctx)
		if err != nil {
			deps.Logger.Error().Err(err).Msg("permission request failed")
		}
		return PermissionResolved{Granted: perm == scan.PermissionGranted, Err: err}
	case EffectFetch:
		question, err := deps.Service.FetchQuestion(ctx, effect.ScanID)
		if err != nil {
			deps.Logger.Error().Err(err).Str("scan_id", effect.ScanID).Msg("fetch error")
			return QuestionFailed{Err: err}
		}
		return QuestionLoaded{Question: question}
	case EffectSubmit:
		result, err := deps.Service.SubmitAnswer(ctx, effect.Question, effect.Answer)
		if err != nil {
			deps.Logger.Error().Err(err).Str("answer", effect.Answer).Msg("submit error")
			return AnswerFailed{Err: err}
		}
		return AnswerChecked{Result: result}
	case EffectOpenMap:
		opener := deps.Opener
		if opener == nil {
			return MapOpened{URL: effect.URL}
		}
		err := opener.Open(effect.URL)
		if err != nil {
			deps.Logger.Error().Err(err).Str("url", effect.URL).Msg("open map failed")
		}
		return MapOpened{URL: effect.URL, Err: err}
	default:
		return nil
	}
}
