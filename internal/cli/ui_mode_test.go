package cli

import (
	"io"
	"testing"
)

// TestResolveUIMode verifies ui mode decision logic.
func TestResolveUIMode(t *testing.T) {
	cases := []struct {
		name       string
		mode       string
		isTTY      bool
		expectLive bool
		wantWarn   bool
		wantErr    bool
	}{
		{name: "auto tty", mode: "auto", isTTY: true, expectLive: true},
		{name: "auto non-tty", mode: "auto", isTTY: false, expectLive: false},
		{name: "empty means auto", mode: "", isTTY: true, expectLive: true},
		{name: "plain", mode: "plain", isTTY: true, expectLive: false},
		{name: "live tty", mode: "LIVE", isTTY: true, expectLive: true},
		{name: "live non-tty warning", mode: "live", isTTY: false, expectLive: false, wantWarn: true},
		{name: "invalid mode", mode: "nope", isTTY: true, wantErr: true},
	}

	original := isTerminal
	t.Cleanup(func() { isTerminal = original })

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			isTerminal = func(_ io.Writer) bool { return tc.isTTY }
			decision, err := resolveUIMode(tc.mode, false, nil)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if decision.useLive != tc.expectLive {
				t.Fatalf("expected useLive=%v, got %v", tc.expectLive, decision.useLive)
			}
			if tc.wantWarn && decision.warning == "" {
				t.Fatalf("expected warning")
			}
			if !tc.wantWarn && decision.warning != "" {
				t.Fatalf("did not expect warning")
			}
		})
	}
}

// TestResolveUIModeColor verifies the flag and NO_COLOR both disable colors.
func TestResolveUIModeColor(t *testing.T) {
	origTerminal, origGetenv := isTerminal, getenv
	t.Cleanup(func() { isTerminal, getenv = origTerminal, origGetenv })
	isTerminal = func(io.Writer) bool { return true }

	cases := []struct {
		name    string
		flag    bool
		env     string
		noColor bool
	}{
		{name: "default colors", noColor: false},
		{name: "flag", flag: true, noColor: true},
		{name: "env", env: "1", noColor: true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			getenv = func(key string) string {
				if key == envNoColor {
					return tc.env
				}
				return ""
			}
			decision, err := resolveUIMode("live", tc.flag, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if decision.noColor != tc.noColor {
				t.Fatalf("expected noColor=%v, got %v", tc.noColor, decision.noColor)
			}
		})
	}
}
