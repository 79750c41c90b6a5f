package screen

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"hunt/internal/hunt"
	"hunt/internal/maps"
	"hunt/internal/testutil"
)

func runPlain(t *testing.T, input string, deps Deps) string {
	t.Helper()
	deps.Logger = zerolog.Nop()
	var out bytes.Buffer
	if err := RunPlain(testutil.Context(t, 0), strings.NewReader(input), &out, deps, Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out.String()
}

// TestRunPlainCorrectAnswer verifies the text flow through to the map link.
func TestRunPlainCorrectAnswer(t *testing.T) {
	service := &fakeService{
		question: hunt.Question{Question: "Which tower?", ResponseType: hunt.ResponseTypeMultipleChoice, Choices: []string{"Eiffel", "Pisa"}},
		result:   hunt.SubmitResult{IsCorrect: true, Coordinates: "48.8584,2.2945"},
	}
	var links bytes.Buffer
	out := runPlain(t, "eiffel\n1\n", Deps{Service: service, Opener: maps.PrintOpener{Out: &links}})

	for _, want := range []string{
		"Scavenger Hunt",
		"Scan QR Code to Start",
		"Loading question...",
		"Which tower?",
		"  2) Pisa",
		"Correct! Opening next location...",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if !strings.Contains(links.String(), "https://maps.google.com/?q=48.8584%2C2.2945") {
		t.Fatalf("expected map link, got %q", links.String())
	}
	if len(service.answers) != 1 || service.answers[0] != "Eiffel" {
		t.Fatalf("unexpected answers %v", service.answers)
	}
}

// TestRunPlainChoiceByText verifies answers can be typed out and retried.
func TestRunPlainChoiceByText(t *testing.T) {
	service := &fakeService{
		question: hunt.Question{Question: "Q", ResponseType: hunt.ResponseTypeMultipleChoice, Choices: []string{"Eiffel", "Pisa"}},
	}
	out := runPlain(t, "eiffel\npisa\n7\nb\nq\n", Deps{Service: service})
	if len(service.answers) != 1 || service.answers[0] != "Pisa" {
		t.Fatalf("unexpected answers %v", service.answers)
	}
	if !strings.Contains(out, "Incorrect Try again!") {
		t.Fatalf("expected incorrect alert in output:\n%s", out)
	}
	if !strings.Contains(out, `Unknown choice "7"`) {
		t.Fatalf("expected unknown choice notice in output:\n%s", out)
	}
}

// TestRunPlainFetchFailure verifies the error text and the scan-again prompt.
func TestRunPlainFetchFailure(t *testing.T) {
	service := &fakeService{fetchErr: errors.New("http 404")}
	out := runPlain(t, "nope\n\nnope-again\n", Deps{Service: service})
	if !strings.Contains(out, "Error Failed to fetch question data") {
		t.Fatalf("expected fetch error in output:\n%s", out)
	}
	if !strings.Contains(out, "Tap to Scan Again [enter]: ") {
		t.Fatalf("expected scan again prompt:\n%s", out)
	}
	if len(service.fetched) != 2 {
		t.Fatalf("expected a second fetch after scanning again, got %v", service.fetched)
	}
}

// TestRunPlainPermissionDenied verifies the denied prompt.
func TestRunPlainPermissionDenied(t *testing.T) {
	source := &deniedSource{}
	out := runPlain(t, "r\nq\n", Deps{Service: &fakeService{}, Source: source})
	if !strings.Contains(out, "No access to camera") {
		t.Fatalf("expected denied text:\n%s", out)
	}
	if source.requests != 2 {
		t.Fatalf("expected two requests, got %d", source.requests)
	}
}

// TestMatchChoice verifies index and text resolution.
func TestMatchChoice(t *testing.T) {
	choices := []string{"Paris", "Lyon"}
	cases := []struct {
		line string
		want string
		ok   bool
	}{
		{line: "1", want: "Paris", ok: true},
		{line: "2", want: "Lyon", ok: true},
		{line: "0"},
		{line: "3"},
		{line: "lyon", want: "Lyon", ok: true},
		{line: "Nice"},
	}
	for _, tc := range cases {
		got, ok := matchChoice(choices, tc.line)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("matchChoice(%q)=%q,%v want %q,%v", tc.line, got, ok, tc.want, tc.ok)
		}
	}
}

// TestReadLinesStopsOnCancel verifies the reader goroutine exits once nobody listens.
func TestReadLinesStopsOnCancel(t *testing.T) {
	const total = 1000
	ctx, cancel := context.WithCancel(context.Background())
	lines := readLines(ctx, strings.NewReader(strings.Repeat("line\n", total)))

	if got := <-lines; got != "line" {
		t.Fatalf("unexpected first line %q", got)
	}
	cancel()

	received := 1
	timeout := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-lines:
			if !ok {
				if received >= total {
					t.Fatalf("expected cancel to cut the stream short, got all %d lines", received)
				}
				return
			}
			received++
		case <-timeout:
			t.Fatalf("line reader did not stop after cancel")
		}
	}
}
