// SPDX-License-Identifier: MIT
// Package: quasirandom/sequence
//
// state.go — phase accumulators and the one-step advance.
//
// Contract:
//   • A State has a fixed dimensionality chosen at construction (1..32).
//   • Every phase is in [0,1) after construction and after every Advance.
//   • Advance is a pure function of (phases, constants): no hidden inputs, so
//     two States built alike and advanced alike are bit-identical.
//   • A State is owned by one caller; it is not safe for concurrent use.

package sequence

import (
	"fmt"
	"strings"
)

// State is the phase vector of an R_d sequence of fixed dimensionality.
type State struct {
	phase  []float64 // current phases, each in [0,1)
	consts []float64 // view into table[dim-1]; never written
	steps  uint64    // number of Advance calls so far
}

// NewState seeds a phase vector of dimensionality dim.
//
// Seeding rule: phase[i] = Fract(seed·i) for i = 0..dim-1, so phase[0] is 0
// for every seed.
//
// Errors:
//   - ErrDimension if dim is outside [MinDim, MaxDim].
//   - ErrSeed if seed is NaN or outside [0,1).
//
// Complexity: O(dim) time, one allocation.
func NewState(dim int, seed float64) (*State, error) {
	if err := validateDim(methodNewState, dim); err != nil {
		return nil, err
	}
	if err := validateSeed(methodNewState, seed); err != nil {
		return nil, err
	}

	phase := make([]float64, dim)
	for i := range phase {
		phase[i] = Fract(seed * float64(i))
	}

	return &State{phase: phase, consts: table[dim-1]}, nil
}

// Dim returns the number of dimensions.
func (s *State) Dim() int {
	return len(s.phase)
}

// Steps returns how many times Advance has been called.
func (s *State) Steps() uint64 {
	return s.steps
}

// Advance moves every phase forward by its constant and returns the new
// phases.
//
// The returned slice is the State's own storage: it is valid until the next
// call and must not be modified. Use AdvanceInto or Phases to keep a copy.
//
// Complexity: O(dim), no allocations.
func (s *State) Advance() []float64 {
	for i, c := range s.consts {
		s.phase[i] = Fract(s.phase[i] + c)
	}
	s.steps++

	return s.phase
}

// AdvanceInto advances the State and copies the new phases into dst.
// It returns the number of coordinates copied, min(len(dst), Dim()).
func (s *State) AdvanceInto(dst []float64) int {
	return copy(dst, s.Advance())
}

// Phases returns a copy of the current phases without advancing.
func (s *State) Phases() []float64 {
	out := make([]float64, len(s.phase))
	copy(out, s.phase)

	return out
}

// Clone returns an independent State with identical phases and step count.
// The clone and the original produce the same future output.
func (s *State) Clone() *State {
	return &State{phase: s.Phases(), consts: s.consts, steps: s.steps}
}

// String renders the State for debugging, e.g. "State{dim=2 steps=5 phase=[0 0.5]}".
func (s *State) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "State{dim=%d steps=%d phase=[", len(s.phase), s.steps)
	for i, p := range s.phase {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", p)
	}
	b.WriteString("]}")

	return b.String()
}
