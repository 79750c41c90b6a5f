package screen

import "hunt/internal/hunt"

// Event is an input to Reduce.
type Event interface {
	event()
}

// PermissionRequested asks the scan source for access again.
type PermissionRequested struct{}

// PermissionResolved carries the outcome of a permission request.
type PermissionResolved struct {
	Granted bool
	Err     error
}

// Scanned delivers a decoded QR payload.
type Scanned struct {
	ID string
}

// ScanFailed reports a scan source error.
type ScanFailed struct {
	Err error
}

// ScanAgain releases the scanned latch.
type ScanAgain struct{}

// QuestionLoaded delivers a fetched question.
type QuestionLoaded struct {
	Question hunt.Question
}

// QuestionFailed reports a failed fetch.
type QuestionFailed struct {
	Err error
}

// AnswerChosen submits a choice for the current question.
type AnswerChosen struct {
	Choice string
}

// AnswerChecked delivers the server verdict.
type AnswerChecked struct {
	Result hunt.SubmitResult
}

// AnswerFailed reports a failed submission.
type AnswerFailed struct {
	Err error
}

// AlertDismissed acknowledges the visible alert.
type AlertDismissed struct{}

// MapOpened reports the outcome of opening a location link.
type MapOpened struct {
	URL string
	Err error
}

// BackToScanner drops the current question and returns to scanning.
type BackToScanner struct{}

func (PermissionRequested) event() {}
func (PermissionResolved) event()  {}
func (Scanned) event()             {}
func (ScanFailed) event()          {}
func (ScanAgain) event()           {}
func (QuestionLoaded) event()      {}
func (QuestionFailed) event()      {}
func (AnswerChosen) event()        {}
func (AnswerChecked) event()       {}
func (AnswerFailed) event()        {}
func (AlertDismissed) event()      {}
func (MapOpened) event()           {}
func (BackToScanner) event()       {}
