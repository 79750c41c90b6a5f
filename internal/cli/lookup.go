package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"hunt/internal/client"
	"hunt/internal/config"
	"hunt/internal/hunt"
	"hunt/internal/logging"
	"hunt/internal/maps"
)

// endpointFlags are shared by commands that talk to the question endpoint.
type endpointFlags struct {
	configPath string
	o          overrides
}

func (e *endpointFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&e.configPath, "config", "", "Path to config file")
	fs.StringVar(&e.o.baseURL, "base-url", "", "Question endpoint base URL")
	fs.DurationVar(&e.o.timeout, "timeout", 0, "Per request timeout")
	fs.StringVar(&e.o.logFile, "log-file", "", "Write a log to this file")
}

// session bundles a configured client with its logger.
type session struct {
	cfg    config.Config
	client *client.Client
	logger *logging.Logger
}

func (e *endpointFlags) open(stderr io.Writer) (*session, bool) {
	cfg, _, err := loadConfig(e.configPath, e.o)
	if err != nil {
		fmt.Fprintf(stderr, "Config failed:\n%s\n", err.Error())
		return nil, false
	}
	logger, err := logging.Open(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(stderr, "Logging failed: %v\n", err)
		return nil, false
	}
	c := client.New(client.Config{
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		UserAgent: userAgent,
		Logger:    logger.Logger,
	})
	return &session{cfg: cfg, client: c, logger: logger}, true
}

// runFetch builds the handler for the fetch command.
func runFetch(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		var endpoint endpointFlags
		endpoint.register(fs)
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}
		if !expectArgs(cmd, fs, 1, 1, stderr) {
			return ExitUsage
		}
		sess, ok := endpoint.open(stderr)
		if !ok {
			return ExitError
		}
		defer sess.logger.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		question, err := sess.client.FetchQuestion(ctx, fs.Arg(0))
		if err != nil {
			fmt.Fprintf(stderr, "Fetch failed: %v\n", err)
			return ExitError
		}
		printQuestion(stdout, question)
		return ExitOK
	}
}

// runAnswer builds the handler for the answer command.
func runAnswer(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		var endpoint endpointFlags
		endpoint.register(fs)
		open := fs.Bool("open", false, "Open the next location in the browser")
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}
		if !expectArgs(cmd, fs, 1, 2, stderr) {
			return ExitUsage
		}
		sess, ok := endpoint.open(stderr)
		if !ok {
			return ExitError
		}
		defer sess.logger.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		scanID := fs.Arg(0)
		question := hunt.Question{EndpointURL: sess.client.QuestionURL(scanID)}
		answer := fs.Arg(1)
		if fs.NArg() < 2 {
			loaded, err := sess.client.FetchQuestion(ctx, scanID)
			if err != nil {
				fmt.Fprintf(stderr, "Fetch failed: %v\n", err)
				return ExitError
			}
			printQuestion(stdout, loaded)
			answer, err = promptAnswer(newReader(), stdout, loaded.Choices)
			if err != nil {
				fmt.Fprintf(stderr, "Answer failed: %v\n", err)
				return ExitError
			}
			question = loaded
		}

		result, err := sess.client.SubmitAnswer(ctx, question, answer)
		if err != nil {
			fmt.Fprintf(stderr, "Submit failed: %v\n", err)
			return ExitError
		}
		if !result.IsCorrect {
			fmt.Fprintln(stdout, "Incorrect. Try again!")
			return ExitOK
		}
		fmt.Fprintln(stdout, "Correct!")
		var opener maps.Opener = maps.PrintOpener{Out: stdout}
		if *open {
			opener = browserOpener
		}
		url, err := maps.OpenCoordinates(opener, result.Coordinates)
		if err != nil {
			fmt.Fprintf(stderr, "Open failed: %v\nNext location: %s\n", err, url)
			return ExitError
		}
		return ExitOK
	}
}

// printQuestion renders a question and its numbered choices.
func printQuestion(w io.Writer, q hunt.Question) {
	fmt.Fprintf(w, "Question: %s\n", q.Question)
	if q.ResponseType != "" {
		fmt.Fprintf(w, "Type: %s\n", q.ResponseType)
	}
	if q.HasChoices() {
		for i, choice := range q.Choices {
			fmt.Fprintf(w, "  %d. %s\n", i+1, choice)
		}
	}
}
