// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
)

var (
	// ErrCount is returned when the sample count is not positive.
	ErrCount = errors.New("config: count must be positive")

	// ErrFormat is returned for an output format other than csv, json or yaml.
	ErrFormat = errors.New("config: unknown output format")
)

// configErrorf wraps sentinel as "config: <detail>: <sentinel>".
func configErrorf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("config: %s: %w", fmt.Sprintf(format, args...), sentinel)
}
