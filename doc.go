// Package quasirandom generates low-discrepancy sequences: deterministic
// streams of points that fill the unit cube evenly as they accumulate,
// instead of clumping and leaving gaps the way pseudorandom draws do.
//
// 🚀 What is quasirandom?
//
//	A small, pure-Go module built around the R_d additive recurrence
//
//		x_i(n+1) = frac(x_i(n) + 1/g^i),   g^(d+1) = g + 1,
//
//	which brings together:
//		• Raw sequences: phase state, constant table, derivation by bisection
//		• Typed values: bool, integers, floats, optional/result variants, enums
//		• Composite shapes: pairs, triples, vectors and user structs of up to
//		  32 independently mapped fields
//		• Measures: bucket coverage, nearest-neighbour spacing, Monte Carlo π
//
// ✨ Why choose quasirandom?
//
//   - Deterministic – same seed, same stream, on every platform
//   - Typed – every field of a value reads its own coordinate
//   - Extensible – implement one method to map coordinates onto your types
//
// Packages:
//
//	sequence/ — constant table, golden roots, phase state and advance
//	uniform/  — Mapper[T] and the built-in coordinate-to-value mappings
//	qrng/     — Qrng[T] handle, shapes, options and the legacy Counter
//	stats/    — coverage, nearest-neighbour and π estimation measures
//	cmd/qrng  — command-line front end (sample, constants, compare, pi)
//
// Quick example:
//
//	g := qrng.MustNew[qrng.Pair[float64, float64]](
//		qrng.PairOf[float64, float64](uniform.Float64{}, uniform.Float64{}), 0)
//	p := g.Gen() // {0.7548776662466942 0.5698402909980553}
//
// Not for cryptography: the stream is fully predictable from its seed.
//
//	go get github.com/katalvlaran/quasirandom
package quasirandom
