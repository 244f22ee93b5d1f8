// SPDX-License-Identifier: MIT
// Package: quasirandom/qrng
//
// errors.go — sentinel errors and wrapping helpers.
//
// Dimension and seed failures are reported with the sentinels of the
// sequence package (sequence.ErrDimension, sequence.ErrSeed); this file only
// adds what is specific to shapes.

package qrng

import (
	"errors"
	"fmt"
)

var (
	// ErrNilShape is returned by New when the shape is nil.
	ErrNilShape = errors.New("qrng: nil shape")

	// ErrNilField is returned by New when a shape carries a nil mapper or a
	// nil field setter.
	ErrNilField = errors.New("qrng: nil mapper or field setter")
)

const methodNew = "New"

// qrngErrorf wraps err with the method name: "<Method>: <err>".
func qrngErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// nilFieldError reports which coordinate of a shape is unusable.
func nilFieldError(index int) error {
	return fmt.Errorf("field %d: %w", index, ErrNilField)
}
