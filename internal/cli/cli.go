package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// stdin and getenv are test seams for interactive input and the environment.
var (
	stdin  io.Reader = os.Stdin
	getenv           = os.Getenv
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  hunt <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"hunt <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

// parseFlags parses args and reports the exit code to use when parsing ends
// the command early.
func parseFlags(cmd *Command, fs *flag.FlagSet, args []string, stdout, stderr io.Writer) (int, bool) {
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}

// expectArgs checks the positional argument count is within [min, max].
func expectArgs(cmd *Command, fs *flag.FlagSet, min, max int, stderr io.Writer) bool {
	switch {
	case fs.NArg() < min:
		fmt.Fprintf(stderr, "missing arguments\n")
	case fs.NArg() > max:
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args()[max:], " "))
	default:
		return true
	}
	printCommandUsage(cmd, stderr)
	return false
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("play", "Scan codes and answer questions", []string{
		"hunt play [--config <path>] [--base-url <url>] [--scan-dir <dir>] [--ui auto|live|plain]",
	}, runPlay),
	command("fetch", "Fetch the question behind a scan ID", []string{
		"hunt fetch [--base-url <url>] <scan-id>",
	}, runFetch),
	command("answer", "Submit an answer for a scan ID", []string{
		"hunt answer [--base-url <url>] [--open] <scan-id> [answer]",
	}, runAnswer),
	command("decode", "Decode the QR code in an image", []string{
		"hunt decode <image>",
	}, runDecode),
	command("qr", "Generate a QR code image for a scan ID", []string{
		"hunt qr [--out <file.png>] [--size <px>] [--force] <scan-id>",
	}, runQR),
	command("validate", "Validate the config file", []string{
		"hunt validate [--config <path>]",
	}, runValidate),
}
