package config

import (
	"os"

	"github.com/pkg/errors"
)

// Default returns the configuration used when no file is present.
func Default() Config {
	var cfg Config
	Normalize(&cfg)
	return cfg
}

// Load reads, parses, normalizes, and validates a config file.
// An empty path yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
