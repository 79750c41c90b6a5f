package cli

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestQRThenDecode verifies generated codes decode back to the scan ID.
func TestQRThenDecode(t *testing.T) {
	isolate(t, "")
	path := filepath.Join(t.TempDir(), "stop.png")

	code, out, errOut := runCLI("qr", "--out", path, "eiffel")
	if code != ExitOK {
		t.Fatalf("qr: expected exit %d, got %d (%s)", ExitOK, code, errOut)
	}
	if !strings.Contains(out, "Wrote "+path) {
		t.Fatalf("unexpected qr output %q", out)
	}

	code, out, errOut = runCLI("decode", path)
	if code != ExitOK {
		t.Fatalf("decode: expected exit %d, got %d (%s)", ExitOK, code, errOut)
	}
	if out != "eiffel\n" {
		t.Fatalf("expected decoded scan id, got %q", out)
	}
}

// TestQRAsksBeforeOverwrite verifies existing files are kept unless confirmed.
func TestQRAsksBeforeOverwrite(t *testing.T) {
	isolate(t, "n\n")
	path := writeFile(t, t.TempDir(), "stop.png", "keep me")

	code, out, _ := runCLI("qr", "--out", path, "eiffel")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if !strings.Contains(out, "Overwrite "+path+"? [y/N]: ") || !strings.Contains(out, "Skipped.") {
		t.Fatalf("unexpected output %q", out)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "keep me" {
		t.Fatalf("file should be untouched, got %q (%v)", data, err)
	}

	code, _, errOut := runCLI("qr", "--out", path, "--force", "eiffel")
	if code != ExitOK {
		t.Fatalf("forced: expected exit %d, got %d (%s)", ExitOK, code, errOut)
	}
	data, err = os.ReadFile(path)
	if err != nil || string(data) == "keep me" {
		t.Fatalf("expected file to be replaced")
	}
}

// TestQRKeepsFileWhenEncodingFails verifies a payload too large for a code leaves files untouched.
func TestQRKeepsFileWhenEncodingFails(t *testing.T) {
	isolate(t, "y\n")
	dir := t.TempDir()
	existing := writeFile(t, dir, "stop.png", "keep me")
	oversized := strings.Repeat("x", 5000)

	code, _, errOut := runCLI("qr", "--out", existing, oversized)
	if code != ExitError || !strings.Contains(errOut, "QR failed") {
		t.Fatalf("expected encode failure, got %d %q", code, errOut)
	}
	if data := readFile(t, existing); data != "keep me" {
		t.Fatalf("existing file changed to %d bytes", len(data))
	}

	fresh := filepath.Join(dir, "fresh.png")
	code, _, _ = runCLI("qr", "--out", fresh, oversized)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if _, err := os.Stat(fresh); !os.IsNotExist(err) {
		t.Fatalf("expected no file at %s, got %v", fresh, err)
	}
}

// TestQRRejectsBadSize verifies size validation.
func TestQRRejectsBadSize(t *testing.T) {
	isolate(t, "")
	code, _, errOut := runCLI("qr", "--size", "0", "eiffel")
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(errOut, "--size") {
		t.Fatalf("unexpected stderr %q", errOut)
	}
}

// TestDecodeWithoutCode verifies images without a QR code and non-images fail.
func TestDecodeWithoutCode(t *testing.T) {
	isolate(t, "")
	dir := t.TempDir()
	blank := filepath.Join(dir, "blank.png")
	file, err := os.Create(blank)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(file, image.NewGray(image.Rect(0, 0, 64, 64))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	file.Close()

	code, _, errOut := runCLI("decode", blank)
	if code != ExitError || !strings.Contains(errOut, "no QR code in "+blank) {
		t.Fatalf("expected no-code failure, got %d %q", code, errOut)
	}

	notImage := writeFile(t, dir, "notes.txt", "hello")
	code, _, errOut = runCLI("decode", notImage)
	if code != ExitError || !strings.Contains(errOut, "Decode failed") {
		t.Fatalf("expected decode failure, got %d %q", code, errOut)
	}
}

// TestDefaultQRPath verifies scan IDs become safe file names.
func TestDefaultQRPath(t *testing.T) {
	cases := map[string]string{
		"eiffel":       "eiffel.png",
		"stop 7/north": "stop_7_north.png",
		"":             "qr.png",
	}
	for input, want := range cases {
		if got := defaultQRPath(input); got != want {
			t.Fatalf("defaultQRPath(%q) = %q, want %q", input, got, want)
		}
	}
}
