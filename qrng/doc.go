// SPDX-License-Identifier: MIT

// Package qrng is the public face of the quasirandom module: a generator
// handle that turns an R_d sequence into typed values.
//
// 🚀 What it does
//
//	A Qrng[T] owns one phase state whose dimensionality equals the arity of
//	its Shape. Every Gen call advances the state exactly once and hands the
//	fresh coordinates to the Shape, which maps each one through its own
//	uniform.Mapper. Field k of a composite value always reads coordinate k,
//	so fields are spread independently of each other.
//
// 🧩 Shapes
//
//	One[T](m)                  scalar, 1 coordinate
//	PairOf[A, B](ma, mb)       Pair[A, B], 2 coordinates
//	TripleOf[A, B, C](...)     Triple[A, B, C], 3 coordinates
//	VectorOf[T](n, m)          []T of length n, n coordinates
//	Struct(FieldOf(...), ...)  any struct S, one coordinate per field
//	Coords(n)                  raw []float64, n coordinates
//
//	Arity is limited to 1..32. Anything outside fails at New with
//	sequence.ErrDimension.
//
// ⚙️ Usage
//
//	type Particle struct{ X, Y float64; Spin bool }
//
//	shape := qrng.Struct(
//		qrng.FieldOf(func(p *Particle, v float64) { p.X = v }, uniform.Float64{}),
//		qrng.FieldOf(func(p *Particle, v float64) { p.Y = v }, uniform.Float64{}),
//		qrng.FieldOf(func(p *Particle, v bool) { p.Spin = v }, uniform.Bool{}),
//	)
//	g, err := qrng.New[Particle](shape, 0)
//	if err != nil { ... }
//	p := g.Gen()
//
// 🕰️ Legacy counter
//
//	Counter reproduces the older integer-seeded form of the recurrence,
//	x_i(n) = frac(n·c_i), with Next/Next2/Next3/NextAt for up to 16
//	dimensions, GenFrom for a mapped one-dimensional draw and GenShape for
//	a mapped draw of any shape up to 16 coordinates.
//
// ⚠️ Concurrency
//
//	Handles and counters are plain values with no locking. Give each
//	goroutine its own handle: a different seed, or Clone plus WithSkip to
//	carve out disjoint windows of one stream.
package qrng
