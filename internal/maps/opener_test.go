package maps

import (
	"bytes"
	"errors"
	"testing"
)

type failingOpener struct{ err error }

func (f failingOpener) Open(string) error { return f.err }

// TestPrintOpener verifies links are written out.
func TestPrintOpener(t *testing.T) {
	var out bytes.Buffer
	url, err := OpenCoordinates(PrintOpener{Out: &out}, "48.8584,2.2945")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "https://maps.google.com/?q=48.8584%2C2.2945"
	if url != want {
		t.Fatalf("expected %q, got %q", want, url)
	}
	if out.String() != "Next location: "+want+"\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

// TestOpenCoordinatesPropagatesErrors verifies opener failures surface with the URL.
func TestOpenCoordinatesPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	url, err := OpenCoordinates(failingOpener{err: boom}, "1,2")
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if url == "" {
		t.Fatalf("expected url even on failure")
	}
}

// TestOpenCoordinatesNilOpener verifies a missing opener only builds the link.
func TestOpenCoordinatesNilOpener(t *testing.T) {
	url, err := OpenCoordinates(nil, "1,2")
	if err != nil || url == "" {
		t.Fatalf("expected url without error, got %q %v", url, err)
	}
}
