// SPDX-License-Identifier: MIT
// Package: quasirandom/qrng
//
// shape.go — arity binding between coordinates and output values.
//
// Contract:
//   • Dim() is the number of coordinates one value consumes.
//   • Assemble reads exactly coords[0:Dim()] in order, coordinate k feeding
//     field k, and must not retain the slice: it is the generator's own
//     buffer and is overwritten by the next step.
//   • Built-in shapes are immutable values; Clone shares them freely.

package qrng

import "github.com/katalvlaran/quasirandom/uniform"

// Shape tells a handle how many coordinates a value of type T needs and how
// to build the value from them.
type Shape[T any] interface {
	Dim() int
	Assemble(coords []float64) T
}

// isNilMapper reports an untyped nil mapper or a nil uniform.Func. Other
// typed nils (a nil pointer to a mapper struct) are not detected: their
// FromUniform may legitimately work on a nil receiver.
func isNilMapper[T any](m uniform.Mapper[T]) bool {
	if m == nil {
		return true
	}
	f, ok := m.(uniform.Func[T])

	return ok && f == nil
}

// validator is implemented by shapes that can detect unusable fields before
// the first Gen.
type validator interface {
	validate() error
}

// Scalar maps a single coordinate.
type Scalar[T any] struct {
	m uniform.Mapper[T]
}

// One returns a one-dimensional shape mapping through m.
func One[T any](m uniform.Mapper[T]) Scalar[T] {
	return Scalar[T]{m: m}
}

// Dim returns 1.
func (Scalar[T]) Dim() int { return 1 }

// Assemble maps coords[0].
func (s Scalar[T]) Assemble(coords []float64) T {
	return s.m.FromUniform(coords[0])
}

func (s Scalar[T]) validate() error {
	if isNilMapper(s.m) {
		return nilFieldError(0)
	}

	return nil
}

// Pair is a two-field value with independently typed fields.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairShape builds a Pair from two coordinates.
type PairShape[A, B any] struct {
	ma uniform.Mapper[A]
	mb uniform.Mapper[B]
}

// PairOf returns a two-dimensional shape. ma reads coordinate 0 and mb
// reads coordinate 1.
func PairOf[A, B any](ma uniform.Mapper[A], mb uniform.Mapper[B]) PairShape[A, B] {
	return PairShape[A, B]{ma: ma, mb: mb}
}

// Dim returns 2.
func (PairShape[A, B]) Dim() int { return 2 }

// Assemble maps coords[0] and coords[1].
func (s PairShape[A, B]) Assemble(coords []float64) Pair[A, B] {
	return Pair[A, B]{
		First:  s.ma.FromUniform(coords[0]),
		Second: s.mb.FromUniform(coords[1]),
	}
}

func (s PairShape[A, B]) validate() error {
	switch {
	case isNilMapper(s.ma):
		return nilFieldError(0)
	case isNilMapper(s.mb):
		return nilFieldError(1)
	}

	return nil
}

// Triple is a three-field value with independently typed fields.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// TripleShape builds a Triple from three coordinates.
type TripleShape[A, B, C any] struct {
	ma uniform.Mapper[A]
	mb uniform.Mapper[B]
	mc uniform.Mapper[C]
}

// TripleOf returns a three-dimensional shape.
func TripleOf[A, B, C any](ma uniform.Mapper[A], mb uniform.Mapper[B], mc uniform.Mapper[C]) TripleShape[A, B, C] {
	return TripleShape[A, B, C]{ma: ma, mb: mb, mc: mc}
}

// Dim returns 3.
func (TripleShape[A, B, C]) Dim() int { return 3 }

// Assemble maps coords[0..2].
func (s TripleShape[A, B, C]) Assemble(coords []float64) Triple[A, B, C] {
	return Triple[A, B, C]{
		First:  s.ma.FromUniform(coords[0]),
		Second: s.mb.FromUniform(coords[1]),
		Third:  s.mc.FromUniform(coords[2]),
	}
}

func (s TripleShape[A, B, C]) validate() error {
	switch {
	case isNilMapper(s.ma):
		return nilFieldError(0)
	case isNilMapper(s.mb):
		return nilFieldError(1)
	case isNilMapper(s.mc):
		return nilFieldError(2)
	}

	return nil
}

// Vector maps n coordinates through the same mapper into a fresh []T.
type Vector[T any] struct {
	n int
	m uniform.Mapper[T]
}

// VectorOf returns an n-dimensional homogeneous shape. n is checked by New.
func VectorOf[T any](n int, m uniform.Mapper[T]) Vector[T] {
	return Vector[T]{n: n, m: m}
}

// Dim returns n.
func (v Vector[T]) Dim() int { return v.n }

// Assemble returns a new slice of length n.
func (v Vector[T]) Assemble(coords []float64) []T {
	out := make([]T, v.n)
	for i := range out {
		out[i] = v.m.FromUniform(coords[i])
	}

	return out
}

func (v Vector[T]) validate() error {
	if isNilMapper(v.m) {
		return nilFieldError(0)
	}

	return nil
}

// Coordinates passes raw coordinates through unchanged.
type Coordinates struct {
	n int
}

// Coords returns an n-dimensional shape yielding a copy of the raw
// coordinates.
func Coords(n int) Coordinates {
	return Coordinates{n: n}
}

// Dim returns n.
func (c Coordinates) Dim() int { return c.n }

// Assemble copies coords[0:n] into a new slice.
func (c Coordinates) Assemble(coords []float64) []float64 {
	out := make([]float64, c.n)
	copy(out, coords)

	return out
}

// Field assigns one coordinate to one field of a struct S.
type Field[S any] struct {
	assign func(dst *S, u float64)
}

// FieldOf binds a setter to a mapper. The setter receives the mapped value;
// nothing is looked up by reflection, so field types are checked at compile
// time.
//
//	qrng.FieldOf(func(p *Particle, v float64) { p.X = v }, uniform.Float64{})
func FieldOf[S, T any](set func(dst *S, v T), m uniform.Mapper[T]) Field[S] {
	if set == nil || isNilMapper(m) {
		return Field[S]{}
	}

	return Field[S]{assign: func(dst *S, u float64) {
		set(dst, m.FromUniform(u))
	}}
}

// StructShape builds an S from one coordinate per field, in declared order.
type StructShape[S any] struct {
	fields []Field[S]
}

// Struct returns a shape with one dimension per field. The field list is
// copied.
func Struct[S any](fields ...Field[S]) StructShape[S] {
	cp := make([]Field[S], len(fields))
	copy(cp, fields)

	return StructShape[S]{fields: cp}
}

// Dim returns the number of fields.
func (s StructShape[S]) Dim() int { return len(s.fields) }

// Assemble starts from the zero S and applies field k with coords[k].
func (s StructShape[S]) Assemble(coords []float64) S {
	var out S
	for i, f := range s.fields {
		f.assign(&out, coords[i])
	}

	return out
}

func (s StructShape[S]) validate() error {
	for i, f := range s.fields {
		if f.assign == nil {
			return nilFieldError(i)
		}
	}

	return nil
}
