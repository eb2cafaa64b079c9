// Package config defines the startup configuration surface.
//
// Configuration is read once at process start from an optional YAML file
// layered over built-in defaults, then checked against an embedded CUE
// schema. Everything downstream consumes the resolved values as plain data;
// nothing re-reads configuration after startup.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"boundcalc/internal/bounds"
)

// Config is the full startup configuration.
type Config struct {
	App      AppConfig    `yaml:"app" json:"app"`
	Platform string       `yaml:"platform" json:"platform"`
	Stats    bool         `yaml:"stats" json:"stats"`
	Mode     string       `yaml:"mode" json:"mode"`
	Bounds   BoundsConfig `yaml:"bounds" json:"bounds"`
	Trace    TraceConfig  `yaml:"trace" json:"trace"`
}

// AppConfig carries the fixed product label pair rendered into output.
type AppConfig struct {
	Name    string `yaml:"name" json:"name"`
	Version string `yaml:"version" json:"version"`
}

// BoundsConfig is the clamping range. Validation enforces low <= high.
type BoundsConfig struct {
	Low  int `yaml:"low" json:"low"`
	High int `yaml:"high" json:"high"`
}

// TraceConfig controls the optional computation journal.
// Disabled by default; module state itself is never persisted.
type TraceConfig struct {
	Enabled  bool   `yaml:"enabled" json:"enabled"`
	Database string `yaml:"database" json:"database"`
}

// Default returns the built-in configuration: stats on, bounds [0, 1000],
// mode "a", platform resolved from the build target, journal off.
func Default() Config {
	return Config{
		App: AppConfig{
			Name:    "boundcalc",
			Version: "1.0.0",
		},
		Platform: "auto",
		Stats:    true,
		Mode:     "a",
		Bounds:   BoundsConfig{Low: 0, High: 1000},
		Trace:    TraceConfig{Enabled: false, Database: ""},
	}
}

// Range converts the bounds section to a bounds.Range.
func (c Config) Range() bounds.Range {
	return bounds.Range{Low: c.Bounds.Low, High: c.Bounds.High}
}

// Load reads a YAML configuration file layered over the defaults.
//
// An empty path returns pure defaults. Unknown YAML keys are rejected so a
// misspelled field cannot silently fall back to its default. Load does not
// validate values; callers run Validate on the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := unmarshalStrict(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// unmarshalStrict decodes YAML rejecting unknown fields.
func unmarshalStrict(data []byte, out *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
