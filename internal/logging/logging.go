// SPDX-License-Identifier: MIT
// Package: quasirandom/internal/logging
//
// logging.go — slog logger construction for the CLI.
//
// The library packages never log. Only the command layer does, on stderr, so
// that generated data on stdout stays machine-readable.

// Package logging builds the structured logger used by the qrng CLI.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Handler formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	// ErrLevel is returned for a level name other than debug, info, warn or error.
	ErrLevel = errors.New("logging: unknown level")

	// ErrFormat is returned for a handler format other than text or json.
	ErrFormat = errors.New("logging: unknown format")
)

// Config selects the level, the handler format and the destination.
type Config struct {
	Level  string    // debug, info, warn, error (case-insensitive)
	Format string    // text or json
	Output io.Writer // usually os.Stderr
}

// ParseLevel maps a level name to its slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("ParseLevel: %q: %w", name, ErrLevel)
	}
}

// New returns a logger writing to cfg.Output. An empty Format means text.
func New(cfg Config) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch strings.ToLower(cfg.Format) {
	case FormatText, "":
		h = slog.NewTextHandler(cfg.Output, opts)
	case FormatJSON:
		h = slog.NewJSONHandler(cfg.Output, opts)
	default:
		return nil, fmt.Errorf("New: %q: %w", cfg.Format, ErrFormat)
	}

	return slog.New(h), nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
