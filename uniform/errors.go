// SPDX-License-Identifier: MIT
// Package: quasirandom/uniform
//
// errors.go — sentinel errors for configurable mappers.
//
// The built-in value mappers cannot fail; only constructors that take
// parameters (NewRange, NewChoice) validate and return these sentinels.

package uniform

import (
	"errors"
	"fmt"
)

var (
	// ErrRange indicates invalid Range bounds: non-finite, or hi <= lo.
	ErrRange = errors.New("uniform: invalid range bounds")

	// ErrEmptyChoice indicates a Choice over zero items.
	ErrEmptyChoice = errors.New("uniform: choice needs at least one item")
)

// Method names used as error context prefixes.
const (
	methodNewRange  = "NewRange"
	methodNewChoice = "NewChoice"
)

// uniformErrorf returns "<Method>: <detail>: <sentinel>".
func uniformErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
