// SPDX-License-Identifier: MIT
// Package: quasirandom/internal/config
//
// config.go — CLI defaults from code, an optional YAML file and the
// environment, in that order of precedence (later wins). Command-line flags
// are applied on top by the cli package.

// Package config loads the settings shared by every qrng subcommand.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/quasirandom/sequence"
)

// Output formats understood by the CLI encoders.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Defaults applied before the file and the environment.
const (
	DefaultSeed      = 0.0
	DefaultCount     = 10
	DefaultDim       = 2
	DefaultFormat    = FormatCSV
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config holds every knob a subcommand may read. Fields without an
// environment variable set keep the value they already had, so defaults and
// file values survive env parsing.
type Config struct {
	Seed      float64 `env:"QRNG_SEED"       yaml:"seed"`
	Count     int     `env:"QRNG_COUNT"      yaml:"count"`
	Dim       int     `env:"QRNG_DIM"        yaml:"dim"`
	Skip      uint64  `env:"QRNG_SKIP"       yaml:"skip"`
	Format    string  `env:"QRNG_FORMAT"     yaml:"format"`
	LogLevel  string  `env:"QRNG_LOG_LEVEL"  yaml:"log_level"`
	LogFormat string  `env:"QRNG_LOG_FORMAT" yaml:"log_format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Seed:      DefaultSeed,
		Count:     DefaultCount,
		Dim:       DefaultDim,
		Format:    DefaultFormat,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Load is Read followed by Validate.
func Load(path string) (Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return Config{}, err
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Read builds a Config from the defaults, the YAML file at path (skipped when
// path is empty) and the QRNG_* environment variables. It does not validate,
// so callers can apply further overrides first.
func Read(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// mergeFile overlays the keys present in a YAML document.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %q: %w", path, err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %q: %w", path, err)
	}

	return nil
}

// Validate checks every field a subcommand reads. Seed and Dim use the
// generator's own limits and sentinels.
func (c Config) Validate() error {
	switch {
	case c.Count <= 0:
		return configErrorf(ErrCount, "got %d", c.Count)
	case c.Dim < sequence.MinDim || c.Dim > sequence.MaxDim:
		return configErrorf(sequence.ErrDimension, "dim must be in [%d,%d], got %d", sequence.MinDim, sequence.MaxDim, c.Dim)
	case !(c.Seed >= 0 && c.Seed < 1):
		return configErrorf(sequence.ErrSeed, "got %v", c.Seed)
	}

	return ValidateFormat(c.Format)
}

// ValidateFormat reports ErrFormat unless format is csv, json or yaml.
func ValidateFormat(format string) error {
	switch format {
	case FormatCSV, FormatJSON, FormatYAML:
		return nil
	default:
		return configErrorf(ErrFormat, "got %q", format)
	}
}
