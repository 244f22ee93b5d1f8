// SPDX-License-Identifier: MIT
// Package: quasirandom/stats
//
// errors.go — sentinel errors for the stats package.

package stats

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when a measure needs at least one sample (two for
	// nearest-neighbour distances) and got fewer.
	ErrEmpty = errors.New("stats: not enough samples")

	// ErrBuckets is returned when a bucket count is not positive.
	ErrBuckets = errors.New("stats: bucket count must be positive")

	// ErrDimensionMismatch is returned when points of one set differ in
	// length.
	ErrDimensionMismatch = errors.New("stats: points differ in dimension")
)

// Operation names used as error context.
const (
	opCoverage        = "Coverage"
	opNearestNeighbor = "NearestNeighbor"
	opMeanStdDev      = "MeanStdDev"
	opEstimatePi      = "EstimatePi"
)

// statsErrorf wraps sentinel as "<op>: <detail>: <sentinel>".
func statsErrorf(op string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), sentinel)
}
