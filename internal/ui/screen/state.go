package screen

import "hunt/internal/hunt"

// Screen identifies which view is shown.
type Screen int

const (
	// ScreenRequesting is shown while scan source access is being requested.
	ScreenRequesting Screen = iota
	// ScreenPermissionDenied is shown when the scan source cannot be used.
	ScreenPermissionDenied
	// ScreenScanner waits for a QR code.
	ScreenScanner
	// ScreenQuestion shows the current question and its choices.
	ScreenQuestion
)

// String returns the screen name.
func (s Screen) String() string {
	switch s {
	case ScreenRequesting:
		return "requesting"
	case ScreenPermissionDenied:
		return "permission-denied"
	case ScreenScanner:
		return "scanner"
	case ScreenQuestion:
		return "question"
	default:
		return "unknown"
	}
}

// Alert is a modal message acknowledged with OK.
type Alert struct {
	Title   string
	Message string
	// MapURL is opened when the alert is acknowledged.
	MapURL string
}

// State is everything the client shows.
type State struct {
	Screen Screen
	// Scanned latches after a code is read so further frames are ignored.
	Scanned bool
	Loading bool
	Current *hunt.Question
	Alert   *Alert
	// LastScan is the most recent scan ID handed to the endpoint.
	LastScan string
	// Status is a one-line note about the scan source or the last opened link.
	Status string
	// Found counts correct answers this session.
	Found int
}

// Loading label shown on each screen.
const (
	loadingQuestionText = "Loading question..."
	loadingText         = "Loading..."
)

// Alert texts.
const (
	alertErrorTitle       = "Error"
	alertFetchFailed      = "Failed to fetch question data"
	alertSubmitFailed     = "Wrong answer please try again."
	alertCorrectTitle     = "Correct!"
	alertCorrectMessage   = "Opening next location..."
	alertIncorrectTitle   = "Incorrect"
	alertIncorrectMessage = "Try again!"
)
