package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate points config discovery at an empty home and restores seams afterwards.
func isolate(t *testing.T, input string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)

	origStdin, origGetenv, origTerminal := stdin, getenv, isTerminal
	origOpener := browserOpener
	t.Cleanup(func() {
		stdin, getenv, isTerminal = origStdin, origGetenv, origTerminal
		browserOpener = origOpener
	})
	stdin = strings.NewReader(input)
	getenv = func(string) string { return "" }
	isTerminal = func(io.Writer) bool { return false }
}

// runCLI runs the CLI and returns exit code, stdout and stderr.
func runCLI(args ...string) (int, string, string) {
	var out, errOut bytes.Buffer
	code := Run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeFile(t *testing.T, dir, name, payload string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

type recordingOpener struct {
	urls []string
}

func (r *recordingOpener) Open(url string) error {
	r.urls = append(r.urls, url)
	return nil
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
