package cli

import (
	"strings"
	"time"

	"hunt/internal/config"
)

// overrides are command line values that win over the config file.
type overrides struct {
	baseURL  string
	timeout  time.Duration
	scanDir  string
	uiMode   string
	noColor  bool
	noOpen   bool
	logFile  string
	logLevel string
}

// loadConfig resolves, loads, and validates the config with overrides applied.
func loadConfig(path string, o overrides) (config.Config, string, error) {
	resolved, err := config.ResolvePath(path, getenv)
	if err != nil {
		return config.Config{}, "", err
	}
	cfg, err := config.Load(resolved)
	if err != nil {
		return config.Config{}, resolved, err
	}
	config.ApplyEnv(&cfg, getenv)
	if o.baseURL != "" {
		cfg.BaseURL = o.baseURL
	}
	if o.timeout > 0 {
		cfg.Timeout = o.timeout
	}
	if o.scanDir != "" {
		cfg.Scan.Dir = o.scanDir
	}
	if o.uiMode != "" {
		cfg.UI.Mode = o.uiMode
	}
	if o.noColor {
		cfg.UI.NoColor = true
	}
	if o.noOpen {
		open := false
		cfg.Maps.Open = &open
	}
	if o.logFile != "" {
		cfg.Log.File = o.logFile
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	config.Normalize(&cfg)
	if err := config.Validate(&cfg); err != nil {
		return config.Config{}, resolved, err
	}
	return cfg, resolved, nil
}

// describeConfigPath renders the config source for messages.
func describeConfigPath(path string) string {
	if strings.TrimSpace(path) == "" {
		return "built-in defaults"
	}
	return path
}
