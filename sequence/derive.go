// SPDX-License-Identifier: MIT
// Package: quasirandom/sequence
//
// derive.go — generalized golden ratio and the constant-table derivation.
//
// The static table in table.go is the output of DeriveConstants for
// d = 1..MaxDim. Keeping the derivation executable lets tests and the CLI
// verify the shipped data instead of trusting it.

package sequence

import "math"

// Dimension bounds supported by the constant table.
const (
	// MinDim is the smallest supported dimensionality.
	MinDim = 1
	// MaxDim is the largest supported dimensionality.
	MaxDim = 32
)

// Bisection parameters for GoldenRoot.
const (
	rootLower     = 1.0   // g > 1 for every d
	rootUpper     = 2.0   // g < 2 for every d >= 1
	rootTolerance = 1e-14 // absolute bracket width at which the search stops
)

// Constants returns a copy of the dim additive constants used by a phase
// state of dimensionality dim. Entry i equals 1/g^(i+1).
//
// Errors:
//   - ErrDimension if dim is outside [MinDim, MaxDim].
//
// Complexity: O(dim) time and space.
func Constants(dim int) ([]float64, error) {
	if err := validateDim(methodConstants, dim); err != nil {
		return nil, err
	}
	out := make([]float64, dim)
	copy(out, table[dim-1])

	return out, nil
}

// GoldenRoot returns the generalized golden ratio for dim: the unique real
// root g > 1 of g^(dim+1) = g + 1.
//
// Algorithm: bisection on [1,2]. While upper-lower > 1e-14, evaluate the
// midpoint m; if m^(dim+1) < m+1 the root lies above m, if greater it lies
// below. An exact tie ends the search at m. The lower bound is returned, which
// is what the static table was built from.
//
// Errors:
//   - ErrDimension if dim is outside [MinDim, MaxDim].
//
// Complexity: O(log2(1/1e-14) · log dim) ≈ 47 iterations.
func GoldenRoot(dim int) (float64, error) {
	if err := validateDim(methodGoldenRoot, dim); err != nil {
		return 0, err
	}

	lower, upper := rootLower, rootUpper
	for upper-lower > rootTolerance {
		mid := (lower + upper) / 2
		y := powi(mid, dim+1)
		switch {
		case y < mid+1:
			lower = mid
		case y > mid+1:
			upper = mid
		default:
			return mid, nil
		}
	}

	return lower, nil
}

// DeriveConstants recomputes the constants for dim from scratch:
// c_i = 1/GoldenRoot(dim)^i, i = 1..dim.
//
// The result is bit-identical to Constants(dim) on IEEE-754 hardware.
//
// Errors:
//   - ErrDimension if dim is outside [MinDim, MaxDim].
func DeriveConstants(dim int) ([]float64, error) {
	if err := validateDim(methodDeriveConstants, dim); err != nil {
		return nil, err
	}
	g, _ := GoldenRoot(dim) // dim already validated

	out := make([]float64, dim)
	for i := 1; i <= dim; i++ {
		out[i-1] = 1 / powi(g, i)
	}

	return out, nil
}

// powi raises x to a non-negative integer power by binary exponentiation.
// The multiplication order is fixed (result first, then squaring), which is
// what makes DeriveConstants reproduce the table exactly; math.Pow does not
// guarantee the same rounding.
func powi(x float64, n int) float64 {
	r := 1.0
	for {
		if n&1 == 1 {
			r *= x
		}
		n >>= 1
		if n == 0 {
			return r
		}
		x *= x
	}
}

// Fract returns the fractional part of x as x - floor(x), so it is never
// negative. For tiny negative x the subtraction rounds up to exactly 1; that
// case is folded back to 0 to keep the result in [0,1).
func Fract(x float64) float64 {
	f := x - math.Floor(x)
	if f >= 1 {
		return 0
	}

	return f
}
