// SPDX-License-Identifier: MIT
// Package: quasirandom/sequence
//
// errors.go — sentinel errors for the sequence package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers match with errors.Is.
//   • Messages are prefixed "sequence: ..." and never carry parameters.
//   • Context (method, offending value) is attached with %w at return sites.

package sequence

import (
	"errors"
	"fmt"
)

var (
	// ErrDimension is returned when a dimensionality outside [MinDim, MaxDim]
	// is requested.
	ErrDimension = errors.New("sequence: dimension out of range")

	// ErrSeed is returned when a seed is NaN or outside the half-open range
	// [0, 1). Seeds are never clamped or wrapped: doing so would silently
	// change the stream.
	ErrSeed = errors.New("sequence: seed out of range [0,1)")
)

// Method names used as error context prefixes.
const (
	methodConstants       = "Constants"
	methodDeriveConstants = "DeriveConstants"
	methodGoldenRoot      = "GoldenRoot"
	methodNewState        = "NewState"
)

// sequenceErrorf prefixes a wrapped sentinel with the method name:
// "<Method>: <detail>: <sentinel>".
func sequenceErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}

// validateDim reports ErrDimension for dim outside [MinDim, MaxDim].
func validateDim(method string, dim int) error {
	if dim < MinDim || dim > MaxDim {
		return sequenceErrorf(method, ErrDimension, "dim must be in [%d,%d], got %d", MinDim, MaxDim, dim)
	}

	return nil
}

// validateSeed reports ErrSeed unless 0 <= seed < 1. NaN fails both comparisons.
func validateSeed(method string, seed float64) error {
	if !(seed >= 0 && seed < 1) {
		return sequenceErrorf(method, ErrSeed, "got %v", seed)
	}

	return nil
}
