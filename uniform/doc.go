// Package uniform maps a single uniform coordinate u ∈ [0,1) to a value of a
// requested Go type.
//
// The capability is one generic interface with one method:
//
//	type Mapper[T any] interface {
//		FromUniform(u float64) T
//	}
//
// Built-in mappers cover the usual value types. They are zero-size structs, so
// a mapper is chosen by its static type at the call site and costs nothing to
// pass around:
//
//	Float64, Float32          identity (Float32 narrows)
//	Uint8 … Uint64, Uint      u·MAX, truncated toward zero
//	Int8 … Int64, Int         (MAX−MIN+1)·u + MIN, truncated toward zero
//	Bool                      u < 0.5 → true, otherwise false
//	Unit                      always struct{}{}
//	OptionOf[T, M]            u < 0.5 → present(M(2u)); otherwise absent
//	ResultOf[T, E, MT, ME]    u < 0.5 → ok(MT(2u)); otherwise failure(ME(2u−1))
//
// plus three configurable helpers: Func (adapt any func(float64) T), Range
// (scale into [lo,hi)) and Choice (equal-width partition over a fixed list).
//
// ⚙️ Usage:
//
//	var b uniform.Bool
//	b.FromUniform(0.3)                    // true
//
//	opt := uniform.Option[int16](uniform.Int16{})
//	opt.FromUniform(0.75)                 // Optional[int16]{Present: false}
//
// Extending:
//
//	Any type can take part by implementing Mapper for its own value type. The
//	only rule is that the mapping partitions [0,1) monotonically without gaps,
//	so that an evenly spread input stays evenly spread in the output:
//
//	type Suit int
//	type SuitMapper struct{}
//	func (SuitMapper) FromUniform(u float64) Suit { return Suit(u * 4) }
//
// Composite mappers recurse by rescaling u, so an Option of an Option still
// receives a coordinate in [0,1).
package uniform
