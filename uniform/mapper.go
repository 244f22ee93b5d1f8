// SPDX-License-Identifier: MIT
// Package: quasirandom/uniform
//
// mapper.go — the Mapper capability and the scalar built-ins.
//
// Contract (every built-in):
//   • Input u is expected in [0,1); behavior outside that range is defined
//     (saturation for integers) but not part of the stream guarantees.
//   • Mappings are monotonic in u and cover the whole target domain.
//   • No allocation, no state, no panics.

package uniform

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Mapper converts one uniform coordinate u ∈ [0,1) into a value of type T.
// It is the single extension point of the mapping layer.
type Mapper[T any] interface {
	FromUniform(u float64) T
}

// Float64 is the identity mapping.
type Float64 struct{}

// FromUniform returns u unchanged.
func (Float64) FromUniform(u float64) float64 { return u }

// Float32 narrows u to float32 (round to nearest). Values within 2^-25 of 1
// round up to exactly 1.
type Float32 struct{}

// FromUniform returns float32(u).
func (Float32) FromUniform(u float64) float32 { return float32(u) }

// Unsigned maps u onto [0, MAX] of an unsigned integer type as u·MAX,
// truncated toward zero. MAX itself is only reached for u >= 1.
type Unsigned[T constraints.Unsigned] struct{}

// FromUniform returns T(u·MAX), saturating at 0 and MAX.
func (Unsigned[T]) FromUniform(u float64) T {
	hi := ^T(0)
	v := float64(hi) * u
	switch {
	case !(v > 0): // also catches NaN
		return 0
	case v >= float64(hi):
		return hi
	default:
		return T(v)
	}
}

// Signed maps u onto [MIN, MAX] of a signed integer type as
// (MAX − MIN + 1)·u + MIN, truncated toward zero.
type Signed[T constraints.Signed] struct{}

// FromUniform returns T((MAX−MIN+1)·u + MIN), saturating at MIN and MAX.
func (Signed[T]) FromUniform(u float64) T {
	lo, hi := signedBounds[T]()
	flo, fhi := float64(lo), float64(hi)
	v := (fhi-flo+1)*u + flo
	switch {
	case !(v > flo): // also catches NaN
		return lo
	case v >= fhi:
		return hi
	default:
		return T(v)
	}
}

// signedBounds returns MIN and MAX of a two's-complement signed type.
func signedBounds[T constraints.Signed]() (lo, hi T) {
	bits := 8 * unsafe.Sizeof(lo)
	lo = T(-1) << (bits - 1)
	hi = ^lo

	return lo, hi
}

// Fixed-width instantiations of the integer mappers.
type (
	Uint    = Unsigned[uint]
	Uint8   = Unsigned[uint8]
	Uint16  = Unsigned[uint16]
	Uint32  = Unsigned[uint32]
	Uint64  = Unsigned[uint64]
	Uintptr = Unsigned[uintptr]

	Int   = Signed[int]
	Int8  = Signed[int8]
	Int16 = Signed[int16]
	Int32 = Signed[int32]
	Int64 = Signed[int64]
)

// Bool maps the lower half of [0,1) to true and the upper half to false:
// u < 0.5 → true, u >= 0.5 → false.
type Bool struct{}

// FromUniform returns u < 0.5.
func (Bool) FromUniform(u float64) bool { return u < 0.5 }

// Unit maps every u to the empty struct. It consumes its coordinate without
// looking at it.
type Unit struct{}

// FromUniform returns struct{}{}.
func (Unit) FromUniform(float64) struct{} { return struct{}{} }

// Func adapts an ordinary function to the Mapper interface.
type Func[T any] func(u float64) T

// FromUniform calls f(u).
func (f Func[T]) FromUniform(u float64) T { return f(u) }
