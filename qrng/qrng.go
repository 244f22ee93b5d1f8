// SPDX-License-Identifier: MIT
// Package: quasirandom/qrng
//
// qrng.go — the generator handle.
//
// Contract:
//   • New validates once (shape, arity 1..32, seed in [0,1), fields); after
//     that the generation path never fails.
//   • Each Gen is exactly one recurrence step, whatever T is.
//   • Handles are not safe for concurrent use.

package qrng

import (
	"fmt"

	"github.com/katalvlaran/quasirandom/sequence"
)

// Qrng is a quasirandom generator of values of type T.
type Qrng[T any] struct {
	shape Shape[T]
	state *sequence.State
}

// New seeds a handle whose dimensionality is shape.Dim().
//
// Errors (all prefixed "New: "):
//   - ErrNilShape if shape is nil.
//   - sequence.ErrDimension if shape.Dim() is outside 1..32.
//   - sequence.ErrSeed if seed is NaN or outside [0,1).
//   - ErrNilField if the shape carries a nil mapper (a nil uniform.Func
//     included) or a nil field setter.
//
// Complexity: O(dim) plus O(skip·dim) for WithSkip.
func New[T any](shape Shape[T], seed float64, opts ...Option) (*Qrng[T], error) {
	if shape == nil {
		return nil, qrngErrorf(methodNew, ErrNilShape)
	}
	state, err := sequence.NewState(shape.Dim(), seed)
	if err != nil {
		return nil, qrngErrorf(methodNew, err)
	}
	if v, ok := shape.(validator); ok {
		if err = v.validate(); err != nil {
			return nil, qrngErrorf(methodNew, err)
		}
	}

	cfg := newConfig(opts...)
	for i := uint64(0); i < cfg.skip; i++ {
		state.Advance()
	}

	return &Qrng[T]{shape: shape, state: state}, nil
}

// MustNew is New for fixed, known-good arguments. It panics on error.
func MustNew[T any](shape Shape[T], seed float64, opts ...Option) *Qrng[T] {
	q, err := New(shape, seed, opts...)
	if err != nil {
		panic(err)
	}

	return q
}

// Gen advances the sequence one step and returns the mapped value.
func (q *Qrng[T]) Gen() T {
	return q.shape.Assemble(q.state.Advance())
}

// Fill writes len(dst) consecutive values into dst.
func (q *Qrng[T]) Fill(dst []T) {
	for i := range dst {
		dst[i] = q.Gen()
	}
}

// Dim returns the number of coordinates consumed per value.
func (q *Qrng[T]) Dim() int {
	return q.state.Dim()
}

// Steps returns the number of recurrence steps taken, skipped ones included.
func (q *Qrng[T]) Steps() uint64 {
	return q.state.Steps()
}

// Clone returns an independent handle that produces the same future values.
func (q *Qrng[T]) Clone() *Qrng[T] {
	return &Qrng[T]{shape: q.shape, state: q.state.Clone()}
}

// String renders the handle for debugging.
func (q *Qrng[T]) String() string {
	return fmt.Sprintf("Qrng{shape=%T %v}", q.shape, q.state)
}
