package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a normalized config.
func Validate(cfg *Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if parsed, err := url.Parse(cfg.BaseURL); err != nil {
		add("base_url", fmt.Sprintf("invalid url: %v", err))
	} else if parsed.Scheme != "http" && parsed.Scheme != "https" {
		add("base_url", "must be an http or https url")
	} else if parsed.Host == "" {
		add("base_url", "missing host")
	} else if parsed.RawQuery != "" || parsed.Fragment != "" {
		add("base_url", "must not contain a query or fragment")
	}
	if cfg.Timeout < 0 {
		add("timeout", "must not be negative")
	}
	switch cfg.UI.Mode {
	case UIModeAuto, UIModeLive, UIModePlain:
	default:
		add("ui.mode", fmt.Sprintf("invalid mode %q (expected auto|live|plain)", cfg.UI.Mode))
	}
	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		add("log.level", fmt.Sprintf("unknown level %q", cfg.Log.Level))
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
