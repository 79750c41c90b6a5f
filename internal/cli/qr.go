package cli

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"hunt/internal/scan"
)

// runDecode builds the handler for the decode command.
func runDecode(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}
		if !expectArgs(cmd, fs, 1, 1, stderr) {
			return ExitUsage
		}

		payload, err := scan.DecodeFile(fs.Arg(0))
		if err != nil {
			if errors.Is(err, scan.ErrNoCode) {
				fmt.Fprintf(stderr, "Decode failed: no QR code in %s\n", fs.Arg(0))
				return ExitError
			}
			fmt.Fprintf(stderr, "Decode failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintln(stdout, payload)
		return ExitOK
	}
}

// runQR builds the handler for the qr command.
func runQR(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		out := fs.String("out", "", "Output PNG path (default: <scan-id>.png)")
		size := fs.Int("size", scan.DefaultSize, "Image size in pixels")
		force := fs.Bool("force", false, "Overwrite an existing file without asking")
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}
		if !expectArgs(cmd, fs, 1, 1, stderr) {
			return ExitUsage
		}
		if *size <= 0 {
			fmt.Fprintln(stderr, "--size must be positive")
			return ExitUsage
		}

		payload := fs.Arg(0)
		path := *out
		if path == "" {
			path = defaultQRPath(payload)
		}
		if _, err := os.Stat(path); err == nil && !*force {
			overwrite, err := promptYesNo(newReader(), stdout, fmt.Sprintf("Overwrite %s?", path), false)
			if err != nil {
				fmt.Fprintf(stderr, "QR failed: %v\n", err)
				return ExitError
			}
			if !overwrite {
				fmt.Fprintln(stdout, "Skipped.")
				return ExitOK
			}
		}

		var encoded bytes.Buffer
		if err := scan.WritePNG(&encoded, payload, *size); err != nil {
			fmt.Fprintf(stderr, "QR failed: %v\n", err)
			return ExitError
		}
		if err := os.WriteFile(path, encoded.Bytes(), 0o644); err != nil {
			fmt.Fprintf(stderr, "QR failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", path)
		return ExitOK
	}
}

// defaultQRPath derives a file name from a scan ID.
func defaultQRPath(payload string) string {
	name := make([]rune, 0, len(payload))
	for _, r := range payload {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			name = append(name, r)
		default:
			name = append(name, '_')
		}
	}
	if len(name) == 0 {
		return "qr.png"
	}
	return string(name) + ".png"
}
