// SPDX-License-Identifier: MIT
// Package: quasirandom/uniform
//
// composite.go — optional, result, range and choice mappers.
//
// Option and Result split [0,1) at 0.5 and rescale the chosen half back to
// [0,1) before delegating, so nested mappers keep receiving full-range input.
// The absent half of an Option carries no payload: that half of the
// coordinate is intentionally not recycled.

package uniform

import "math"

// half is the split point shared by Bool, OptionOf and ResultOf.
const half = 0.5

// Optional is a value that may be absent.
type Optional[T any] struct {
	Value   T    // meaningful only when Present
	Present bool // false means absent
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] { return Optional[T]{Value: v, Present: true} }

// None returns an absent Optional.
func None[T any]() Optional[T] { return Optional[T]{} }

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.Value, o.Present }

// OptionOf maps u < 0.5 to a present value Inner(2u) and u >= 0.5 to absent.
type OptionOf[T any, M Mapper[T]] struct {
	Inner M
}

// Option builds an OptionOf around inner. T must be given explicitly; M is
// inferred: Option[int32](Int32{}).
func Option[T any, M Mapper[T]](inner M) OptionOf[T, M] {
	return OptionOf[T, M]{Inner: inner}
}

// FromUniform implements Mapper[Optional[T]].
func (o OptionOf[T, M]) FromUniform(u float64) Optional[T] {
	if u < half {
		return Some(o.Inner.FromUniform(u * 2))
	}

	return None[T]()
}

// Result holds either a success value or a failure value.
type Result[T, E any] struct {
	Value   T    // meaningful only when OK
	Failure E    // meaningful only when !OK
	OK      bool // which branch is populated
}

// Ok returns a successful Result.
func Ok[T, E any](v T) Result[T, E] { return Result[T, E]{Value: v, OK: true} }

// Fail returns a failed Result.
func Fail[T, E any](e E) Result[T, E] { return Result[T, E]{Failure: e} }

// ResultOf maps u < 0.5 to success Ok(2u) and u >= 0.5 to failure Err(2u−1).
type ResultOf[T, E any, MT Mapper[T], ME Mapper[E]] struct {
	Ok  MT
	Err ME
}

// ResultFrom builds a ResultOf. T and E must be given explicitly; the mapper
// types are inferred: ResultFrom[uint8, bool](Uint8{}, Bool{}).
func ResultFrom[T, E any, MT Mapper[T], ME Mapper[E]](ok MT, err ME) ResultOf[T, E, MT, ME] {
	return ResultOf[T, E, MT, ME]{Ok: ok, Err: err}
}

// FromUniform implements Mapper[Result[T, E]].
func (r ResultOf[T, E, MT, ME]) FromUniform(u float64) Result[T, E] {
	if u < half {
		return Ok[T, E](r.Ok.FromUniform(u * 2))
	}

	return Fail[T](r.Err.FromUniform(u*2 - 1))
}

// Range scales u linearly into the half-open interval [Lo, Hi).
type Range struct {
	Lo, Hi float64
}

// NewRange validates the bounds and returns a Range.
//
// Errors:
//   - ErrRange if either bound is NaN/±Inf or hi <= lo.
func NewRange(lo, hi float64) (Range, error) {
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) || hi <= lo {
		return Range{}, uniformErrorf(methodNewRange, ErrRange, "lo=%g hi=%g", lo, hi)
	}

	return Range{Lo: lo, Hi: hi}, nil
}

// FromUniform returns Lo + u·(Hi−Lo), kept strictly below Hi.
func (r Range) FromUniform(u float64) float64 {
	v := r.Lo + u*(r.Hi-r.Lo)
	if v >= r.Hi {
		return math.Nextafter(r.Hi, r.Lo)
	}

	return v
}

// Choice partitions [0,1) into len(Items) equal intervals and maps interval k
// to Items[k]. It is the building block for enums with more than two variants.
type Choice[T any] struct {
	Items []T
}

// NewChoice copies items into a Choice.
//
// Errors:
//   - ErrEmptyChoice if no items are given.
func NewChoice[T any](items ...T) (Choice[T], error) {
	if len(items) == 0 {
		return Choice[T]{}, uniformErrorf(methodNewChoice, ErrEmptyChoice, "got 0 items")
	}
	cp := make([]T, len(items))
	copy(cp, items)

	return Choice[T]{Items: cp}, nil
}

// FromUniform returns Items[floor(u·n)], clamped to the valid index range.
func (c Choice[T]) FromUniform(u float64) T {
	n := len(c.Items)
	idx := int(u * float64(n))
	switch {
	case idx < 0:
		idx = 0
	case idx >= n:
		idx = n - 1
	}

	return c.Items[idx]
}
