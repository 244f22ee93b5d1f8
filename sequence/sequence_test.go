package sequence_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/quasirandom/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConstants_Bounds verifies that every constant lies strictly inside
// (0,1) and that rows are strictly decreasing (c_i = g^-i with g > 1).
func TestConstants_Bounds(t *testing.T) {
	for d := sequence.MinDim; d <= sequence.MaxDim; d++ {
		cs, err := sequence.Constants(d)
		require.NoError(t, err, "dim %d", d)
		require.Len(t, cs, d)
		for i, c := range cs {
			assert.Greater(t, c, 0.0, "dim %d index %d", d, i)
			assert.Less(t, c, 1.0, "dim %d index %d", d, i)
			if i > 0 {
				assert.Less(t, c, cs[i-1], "dim %d must be decreasing at %d", d, i)
			}
		}
	}
}

// TestConstants_GoldenRatio checks the d=1 row against the golden ratio.
func TestConstants_GoldenRatio(t *testing.T) {
	cs, err := sequence.Constants(1)
	require.NoError(t, err)
	phi := (1 + math.Sqrt(5)) / 2
	assert.InDelta(t, 1/phi, cs[0], 1e-15)
}

// TestConstants_ReturnsCopy ensures callers cannot corrupt the shared table.
func TestConstants_ReturnsCopy(t *testing.T) {
	cs, err := sequence.Constants(2)
	require.NoError(t, err)
	cs[0] = 42

	again, err := sequence.Constants(2)
	require.NoError(t, err)
	assert.Equal(t, 0.7548776662466942, again[0])
}

// TestTableMatchesDerivation re-runs the bisection derivation for every
// dimensionality and requires bit-identical agreement with the static table.
func TestTableMatchesDerivation(t *testing.T) {
	for d := sequence.MinDim; d <= sequence.MaxDim; d++ {
		want, err := sequence.Constants(d)
		require.NoError(t, err)
		got, err := sequence.DeriveConstants(d)
		require.NoError(t, err)
		assert.Equal(t, want, got, "dim %d", d)
	}
}

// TestGoldenRoot_SatisfiesEquation checks g^(d+1) ≈ g + 1.
func TestGoldenRoot_SatisfiesEquation(t *testing.T) {
	for _, d := range []int{1, 2, 3, 8, 16, 32} {
		g, err := sequence.GoldenRoot(d)
		require.NoError(t, err)
		assert.Greater(t, g, 1.0)
		assert.Less(t, g, 2.0)
		assert.InDelta(t, g+1, math.Pow(g, float64(d+1)), 1e-12, "dim %d", d)
	}
}

// TestDimensionBoundary covers the arity edge: 1 and 32 succeed, 0 and 33 fail.
func TestDimensionBoundary(t *testing.T) {
	tests := []struct {
		name    string
		dim     int
		wantErr bool
	}{
		{"zero", 0, true},
		{"negative", -1, true},
		{"min", 1, false},
		{"max", 32, false},
		{"over", 33, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errState := sequence.NewState(tt.dim, 0)
			_, errConst := sequence.Constants(tt.dim)
			_, errRoot := sequence.GoldenRoot(tt.dim)
			_, errDerive := sequence.DeriveConstants(tt.dim)
			for _, err := range []error{errState, errConst, errRoot, errDerive} {
				if tt.wantErr {
					assert.ErrorIs(t, err, sequence.ErrDimension)
				} else {
					assert.NoError(t, err)
				}
			}
		})
	}
}

// TestNewState_SeedValidation rejects seeds outside [0,1) without clamping.
func TestNewState_SeedValidation(t *testing.T) {
	bad := []float64{-0.1, 1, 1.5, math.NaN(), math.Inf(1), math.Inf(-1)}
	for _, s := range bad {
		st, err := sequence.NewState(2, s)
		assert.ErrorIs(t, err, sequence.ErrSeed, "seed %v", s)
		assert.Nil(t, st)
	}

	good := []float64{0, 0.5, math.Nextafter(1, 0)}
	for _, s := range good {
		_, err := sequence.NewState(2, s)
		assert.NoError(t, err, "seed %v", s)
	}
}

// TestNewState_SeedingRule checks phase[i] = frac(seed·i), including the
// always-zero first phase.
func TestNewState_SeedingRule(t *testing.T) {
	st, err := sequence.NewState(3, 0.25)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.5}, st.Phases())

	st, err = sequence.NewState(4, 0.75)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.75, 0.5, 0.25}, st.Phases())
}

// TestAdvance_ReferenceValues pins the first steps to precomputed IEEE-754 values.
func TestAdvance_ReferenceValues(t *testing.T) {
	st, err := sequence.NewState(1, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.6180339887498955}, st.Advance())
	assert.Equal(t, []float64{0.23606797749979092}, st.Advance())
	assert.Equal(t, []float64{0.8541019662496864}, st.Advance())
	assert.Equal(t, uint64(3), st.Steps())

	st, err = sequence.NewState(3, 0.25)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.8191725133961674, 0.9210436067037939, 0.04970047790197607}, st.Advance())
	assert.Equal(t, []float64{0.6383450267923347, 0.5920872134075879, 0.5994009558039521}, st.Advance())
}

// TestAdvance_RangeInvariant checks every phase stays in [0,1) over many steps
// for every supported dimensionality.
func TestAdvance_RangeInvariant(t *testing.T) {
	for d := sequence.MinDim; d <= sequence.MaxDim; d++ {
		st, err := sequence.NewState(d, 0.61)
		require.NoError(t, err)
		for k := 0; k < 2000; k++ {
			for i, p := range st.Advance() {
				if p < 0 || p >= 1 {
					t.Fatalf("dim %d step %d index %d: phase %v out of [0,1)", d, k, i, p)
				}
			}
		}
	}
}

// TestAdvance_Determinism requires identical streams from identical seeds.
func TestAdvance_Determinism(t *testing.T) {
	a, err := sequence.NewState(5, 0.3)
	require.NoError(t, err)
	b, err := sequence.NewState(5, 0.3)
	require.NoError(t, err)
	for k := 0; k < 1000; k++ {
		require.Equal(t, a.Advance(), b.Advance(), "step %d", k)
	}
}

// TestAdvanceInto_CopiesAndAdvances checks the copying variant.
func TestAdvanceInto_CopiesAndAdvances(t *testing.T) {
	a, _ := sequence.NewState(2, 0)
	b, _ := sequence.NewState(2, 0)

	dst := make([]float64, 2)
	n := a.AdvanceInto(dst)
	assert.Equal(t, 2, n)
	assert.Equal(t, b.Advance(), dst)

	short := make([]float64, 1)
	assert.Equal(t, 1, a.AdvanceInto(short))
	assert.Equal(t, uint64(2), a.Steps())
}

// TestClone_Independent checks that a clone continues identically and that
// advancing one does not move the other.
func TestClone_Independent(t *testing.T) {
	a, _ := sequence.NewState(3, 0.1)
	a.Advance()
	c := a.Clone()
	assert.Equal(t, a.Steps(), c.Steps())

	want := append([]float64(nil), a.Advance()...)
	assert.Equal(t, want, c.Advance())

	a.Advance()
	assert.Equal(t, uint64(3), a.Steps())
	assert.Equal(t, uint64(2), c.Steps())
}

// TestFract covers positive, integral and negative inputs.
func TestFract(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{0.25, 0.25},
		{1, 0},
		{3.5, 0.5},
		{-0.25, 0.75},
		{-1e-20, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sequence.Fract(tt.in), "Fract(%v)", tt.in)
	}
}

// TestState_String renders a compact debug form.
func TestState_String(t *testing.T) {
	st, _ := sequence.NewState(2, 0.5)
	assert.Equal(t, "State{dim=2 steps=0 phase=[0 0.5]}", st.String())
}
