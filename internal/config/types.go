package config

import "time"

// Config is the client configuration file.
type Config struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
	Scan    ScanConfig    `yaml:"scan"`
	UI      UIConfig      `yaml:"ui"`
	Maps    MapsConfig    `yaml:"maps"`
	Log     LogConfig     `yaml:"log"`
}

// ScanConfig selects the scan source.
type ScanConfig struct {
	// Dir is a capture directory watched for QR images. Empty means keyboard only.
	Dir string `yaml:"dir"`
}

// UIConfig controls the terminal front end.
type UIConfig struct {
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
}

// MapsConfig controls how location links are shown.
type MapsConfig struct {
	Open *bool `yaml:"open"`
}

// LogConfig controls the session log.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// OpenMaps reports whether location links launch the browser.
func (c Config) OpenMaps() bool {
	return c.Maps.Open == nil || *c.Maps.Open
}

// UI modes.
const (
	UIModeAuto  = "auto"
	UIModeLive  = "live"
	UIModePlain = "plain"
)
