package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Config path constants used by the CLI and loaders.
const (
	EnvConfigPath  = "HUNT_CONFIG"
	EnvBaseURL     = "HUNT_BASE_URL"
	ConfigDirName  = "hunt"
	ConfigFileName = "config.yml"
)

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "locate user config dir")
	}
	return filepath.Join(dir, ConfigDirName, ConfigFileName), nil
}

// ResolvePath picks the config file: the explicit path, then $HUNT_CONFIG,
// then the per-user file if it exists. An empty result means defaults.
func ResolvePath(explicit string, getenv func(string) string) (string, error) {
	if path := strings.TrimSpace(explicit); path != "" {
		return filepath.Abs(path)
	}
	if getenv != nil {
		if path := strings.TrimSpace(getenv(EnvConfigPath)); path != "" {
			return filepath.Abs(path)
		}
	}
	path, err := DefaultPath()
	if err != nil {
		return "", nil
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrapf(err, "stat config path %q", path)
	}
	if info.IsDir() {
		return "", errors.Errorf("config path %q is a directory", path)
	}
	return path, nil
}

// ApplyEnv overrides file values with environment variables.
func ApplyEnv(cfg *Config, getenv func(string) string) {
	if getenv == nil {
		return
	}
	if value := strings.TrimSpace(getenv(EnvBaseURL)); value != "" {
		cfg.BaseURL = strings.TrimRight(value, "/")
	}
}
