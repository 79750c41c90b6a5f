package cli

import (
	"flag"
	"fmt"
	"io"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: $HUNT_CONFIG or the user config dir)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if !expectArgs(cmd, flags, 0, 0, stderr) {
			return ExitUsage
		}

		cfg, resolved, err := loadConfig(*configPath, overrides{})
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}

		fmt.Fprintf(stdout, "Config OK (%s)\n", describeConfigPath(resolved))
		fmt.Fprintf(stdout, "base_url: %s\n", cfg.BaseURL)
		return ExitOK
	}
}
