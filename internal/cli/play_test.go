package cli

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"hunt/internal/maps"
	"hunt/internal/scan"
	"hunt/internal/testutil"
	"hunt/internal/ui/screen"
)

// TestPlayPlainCorrectAnswer verifies the full scan, answer, map flow over plain prompts.
func TestPlayPlainCorrectAnswer(t *testing.T) {
	isolate(t, "eiffel\n1\n")
	server := testutil.StartMock(t, testutil.SampleHunt())

	code, out, errOut := runCLI("play", "--ui", "plain", "--no-open", "--base-url", server.BaseURL)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errOut)
	}
	for _, want := range []string{
		"Scan QR Code to Start",
		"Keyboard scanner ready",
		"In which city is this tower?",
		"  1) Paris",
		"Correct! Opening next location...",
		"Next location: https://maps.google.com/?q=48.8584%2C2.2945",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

// TestPlayPlainUnknownScan verifies fetch failures surface the error alert.
func TestPlayPlainUnknownScan(t *testing.T) {
	isolate(t, "missing\n")
	server := testutil.StartMock(t, testutil.SampleHunt())

	code, out, _ := runCLI("play", "--ui", "plain", "--no-open", "--base-url", server.BaseURL)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if !strings.Contains(out, "Error Failed to fetch question data") {
		t.Fatalf("expected fetch error, got:\n%s", out)
	}
}

// TestPlayDeniedScanDir verifies a missing capture directory shows the permission screen.
func TestPlayDeniedScanDir(t *testing.T) {
	isolate(t, "q\n")
	missing := filepath.Join(t.TempDir(), "nope")

	code, out, _ := runCLI("play", "--ui", "plain", "--scan-dir", missing, "--base-url", "http://127.0.0.1:1")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if !strings.Contains(out, "No access to camera") {
		t.Fatalf("expected permission denied screen, got:\n%s", out)
	}
}

// TestPlayLiveUsesProgram verifies live mode builds deps and hands them to the program.
func TestPlayLiveUsesProgram(t *testing.T) {
	isolate(t, "")
	isTerminal = func(io.Writer) bool { return true }
	dir := t.TempDir()

	var got screen.Deps
	var gotOpts screen.Options
	original := runLive
	t.Cleanup(func() { runLive = original })
	runLive = func(_ context.Context, _ io.Writer, deps screen.Deps, opts screen.Options) error {
		got, gotOpts = deps, opts
		return nil
	}

	code, _, errOut := runCLI("play", "--scan-dir", dir, "--no-color", "--no-open")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errOut)
	}
	if _, ok := got.Source.(*scan.DirSource); !ok {
		t.Fatalf("expected directory source, got %T", got.Source)
	}
	if _, ok := got.Opener.(maps.PrintOpener); !ok {
		t.Fatalf("expected print opener, got %T", got.Opener)
	}
	if !gotOpts.NoColor || !strings.Contains(gotOpts.SourceLabel, dir) {
		t.Fatalf("unexpected options %+v", gotOpts)
	}
}

// TestPlayLiveFallsBackWithoutTTY verifies --ui live warns and uses prompts off a TTY.
func TestPlayLiveFallsBackWithoutTTY(t *testing.T) {
	isolate(t, "")
	original := runLive
	t.Cleanup(func() { runLive = original })
	runLive = func(context.Context, io.Writer, screen.Deps, screen.Options) error {
		t.Fatalf("live program should not run")
		return nil
	}

	code, out, errOut := runCLI("play", "--ui", "live", "--base-url", "http://127.0.0.1:1")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if !strings.Contains(errOut, "falling back to plain prompts") {
		t.Fatalf("expected fallback warning, got %q", errOut)
	}
	if !strings.Contains(out, "Scan code: ") {
		t.Fatalf("expected plain prompt, got %q", out)
	}
}

// TestPlayWritesSessionLog verifies the session log receives tagged entries.
func TestPlayWritesSessionLog(t *testing.T) {
	isolate(t, "eiffel\n")
	server := testutil.StartMock(t, testutil.SampleHunt())
	logPath := filepath.Join(t.TempDir(), "hunt.log")

	code, _, errOut := runCLI("play", "--ui", "plain", "--no-open", "--base-url", server.BaseURL, "--log-file", logPath, "--log-level", "debug")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errOut)
	}
	data := readFile(t, logPath)
	for _, want := range []string{`"session":`, `"message":"session started"`, `"message":"fetching from"`, server.BaseURL + "/eiffel"} {
		if !strings.Contains(data, want) {
			t.Fatalf("expected %q in log:\n%s", want, data)
		}
	}
}
