// Package sequence implements the additive-recurrence (R_d) low-discrepancy
// sequence that drives every generator in this module.
//
// 🚀 What is R_d?
//
//	For a dimensionality d, let g be the unique real root > 1 of
//	g^(d+1) = g + 1 (the generalized golden ratio). The d additive constants
//	are c_i = 1/g^i for i = 1..d. Starting from a phase vector p, each step
//	computes
//
//	    p_i ← frac(p_i + c_i)
//
//	and emits p. Because the constants are badly approximable irrationals, the
//	emitted points fill the unit cube [0,1)^d far more evenly than independent
//	pseudorandom draws.
//
// ✨ What lives here:
//   - the static constant table for d = 1..32 (table.go) and the bisection
//     derivation that reproduces it bit-for-bit (derive.go);
//   - State, the phase accumulator vector with its seeding rule and Advance.
//
// ⚙️ Usage:
//
//	st, err := sequence.NewState(3, 0.25)
//	if err != nil {
//		// ErrDimension or ErrSeed
//	}
//	p := st.Advance() // three coordinates in [0,1)
//
// Seeding asymmetry:
//
//	NewState sets p_i = frac(seed·i), so p_0 is always 0 before the first
//	Advance, whatever the seed. The seed only shifts dimensions 1..d-1, and
//	streams stay comparable with other R_d generators seeded the same way.
//
// Performance:
//
//   - Advance: O(d) time, no allocations.
//   - NewState: O(d) time, one allocation of d floats (plus the constants view).
package sequence
