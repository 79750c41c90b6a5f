package main

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// config describes the huntmock YAML configuration.
type config struct {
	Server struct {
		ListenAddr string `yaml:"listen_addr"`
	} `yaml:"server"`
	Hunt struct {
		Path string `yaml:"path"`
	} `yaml:"hunt"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// loadConfig reads and validates the configuration file.
// A relative hunt path is resolved against the config file's directory.
func loadConfig(path string) (config, error) {
	var cfg config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, err
	}
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = ":8080"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Hunt.Path == "" {
		return cfg, errors.New("hunt.path is required")
	}
	if !filepath.IsAbs(cfg.Hunt.Path) {
		cfg.Hunt.Path = filepath.Join(filepath.Dir(path), cfg.Hunt.Path)
	}
	return cfg, nil
}
