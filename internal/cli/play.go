package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"hunt/internal/client"
	"hunt/internal/config"
	"hunt/internal/logging"
	"hunt/internal/maps"
	"hunt/internal/scan"
	"hunt/internal/ui/screen"
)

// userAgent identifies the client to the question endpoint.
const userAgent = "hunt-cli"

// runLive is a test seam for the full-screen program.
var runLive = func(ctx context.Context, stdout io.Writer, deps screen.Deps, opts screen.Options) error {
	program := tea.NewProgram(
		screen.NewModel(ctx, deps, opts),
		tea.WithOutput(stdout),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := program.Run()
	return err
}

// browserOpener is a test seam for launching maps links.
var browserOpener maps.Opener = maps.BrowserOpener{}

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := fs.String("config", "", "Path to config file")
		var o overrides
		fs.StringVar(&o.baseURL, "base-url", "", "Question endpoint base URL")
		fs.DurationVar(&o.timeout, "timeout", 0, "Per request timeout")
		fs.StringVar(&o.scanDir, "scan-dir", "", "Capture directory watched for QR images")
		fs.StringVar(&o.uiMode, "ui", "", "UI mode: auto|live|plain")
		fs.BoolVar(&o.noColor, "no-color", false, "Disable colors")
		fs.BoolVar(&o.noOpen, "no-open", false, "Print map links instead of opening a browser")
		fs.StringVar(&o.logFile, "log-file", "", "Write a session log to this file")
		fs.StringVar(&o.logLevel, "log-level", "", "Log level (debug|info|warn|error)")
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}
		if !expectArgs(cmd, fs, 0, 0, stderr) {
			return ExitUsage
		}

		cfg, _, err := loadConfig(*configPath, o)
		if err != nil {
			fmt.Fprintf(stderr, "Config failed:\n%s\n", err.Error())
			return ExitError
		}
		decision, err := resolveUIMode(cfg.UI.Mode, cfg.UI.NoColor, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid --ui: %v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		logger, err := logging.Open(cfg.Log.File, cfg.Log.Level)
		if err != nil {
			fmt.Fprintf(stderr, "Logging failed: %v\n", err)
			return ExitError
		}
		defer logger.Close()
		log := logger.WithSession(uuid.NewString())

		var source scan.Source = scan.KeyboardOnly{}
		label := "Keyboard scanner ready"
		if cfg.Scan.Dir != "" {
			source = scan.NewDirSource(cfg.Scan.Dir, log)
			label = fmt.Sprintf("Watching %s", cfg.Scan.Dir)
		}
		defer source.Close()

		deps := screen.Deps{
			Service: client.New(client.Config{
				BaseURL:   cfg.BaseURL,
				Timeout:   cfg.Timeout,
				UserAgent: userAgent,
				Logger:    log,
			}),
			Source: source,
			Opener: selectOpener(cfg, stdout),
			Logger: log,
		}
		opts := screen.Options{NoColor: decision.noColor, SourceLabel: label}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log.Info().
			Str("base_url", cfg.BaseURL).
			Str("scan_dir", cfg.Scan.Dir).
			Bool("live", decision.useLive).
			Msg("session started")
		if decision.useLive {
			err = runLive(ctx, stdout, deps, opts)
		} else {
			err = screen.RunPlain(ctx, stdin, stdout, deps, opts)
		}
		if err != nil && ctx.Err() == nil {
			log.Error().Err(err).Msg("session failed")
			fmt.Fprintf(stderr, "Play failed: %v\n", err)
			return ExitError
		}
		log.Info().Msg("session ended")
		return ExitOK
	}
}

// selectOpener picks how location links reach the player.
func selectOpener(cfg config.Config, stdout io.Writer) maps.Opener {
	if cfg.OpenMaps() {
		return browserOpener
	}
	return maps.PrintOpener{Out: stdout}
}
