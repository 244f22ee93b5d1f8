package qrng_test

import (
	"testing"

	"github.com/katalvlaran/quasirandom/qrng"
	"github.com/katalvlaran/quasirandom/sequence"
	"github.com/katalvlaran/quasirandom/uniform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter_Next(t *testing.T) {
	c := qrng.NewCounter(0)
	assert.Equal(t, uint64(0), c.Index())
	assert.Equal(t, 0.0, c.Next()) // frac(0·c) = 0
	assert.Equal(t, 0.6180339887498955, c.Next())
	assert.Equal(t, uint64(2), c.Index())

	// The counter form tracks the accumulating form to rounding error.
	s, err := sequence.NewState(1, 0)
	require.NoError(t, err)
	s.Advance()
	for i := 0; i < 1000; i++ {
		assert.InDelta(t, s.Advance()[0], c.Next(), 1e-9, "step %d", i)
	}
}

func TestCounter_Seed(t *testing.T) {
	a := qrng.NewCounter(7)
	b := qrng.NewCounter(0)
	for i := 0; i < 7; i++ {
		b.Next()
	}
	assert.Equal(t, b.Index(), a.Index())
	assert.Equal(t, b.Next(), a.Next())
}

func TestCounter_Next2Next3(t *testing.T) {
	c := qrng.NewCounter(1)
	x, y := c.Next2()
	assert.Equal(t, 0.7548776662466942, x)
	assert.Equal(t, 0.5698402909980553, y)

	c = qrng.NewCounter(1)
	x, y, z := c.Next3()
	consts, err := sequence.Constants(3)
	require.NoError(t, err)
	assert.Equal(t, consts, []float64{x, y, z})
}

func TestCounter_NextAtMatchesFixedArity(t *testing.T) {
	a := qrng.NewCounter(42)
	b := qrng.NewCounter(42)
	for i := 0; i < 50; i++ {
		x, y, z := a.Next3()
		got := make([]float64, 3)
		b.NextAt(got)
		require.Equal(t, []float64{x, y, z}, got)
	}
}

func TestCounter_NextAtBounds(t *testing.T) {
	c := qrng.NewCounter(3)
	assert.Panics(t, func() { c.NextAt(nil) })
	assert.Panics(t, func() { c.NextAt(make([]float64, qrng.MaxCounterDim+1)) })
	assert.Equal(t, uint64(3), c.Index())

	dst := make([]float64, qrng.MaxCounterDim)
	for i := 0; i < 100; i++ {
		c.NextAt(dst)
		for k, x := range dst {
			require.True(t, x >= 0 && x < 1, "coord %d = %v", k, x)
		}
	}
	assert.Equal(t, uint64(103), c.Index())
}

func TestGenFrom(t *testing.T) {
	c := qrng.NewCounter(1)
	assert.False(t, qrng.GenFrom[bool](c, uniform.Bool{})) // 0.618 >= 0.5
	assert.True(t, qrng.GenFrom[bool](c, uniform.Bool{}))  // 0.236 < 0.5
	assert.Equal(t, uint64(3), c.Index())
}

func TestGenShape_MatchesFixedArity(t *testing.T) {
	a := qrng.NewCounter(5)
	b := qrng.NewCounter(5)
	shape := qrng.PairOf[float64, float64](uniform.Float64{}, uniform.Float64{})
	for i := 0; i < 20; i++ {
		x, y := a.Next2()
		p := qrng.GenShape[qrng.Pair[float64, float64]](b, shape)
		require.Equal(t, qrng.Pair[float64, float64]{First: x, Second: y}, p, "step %d", i)
	}
	assert.Equal(t, a.Index(), b.Index())
}

func TestGenShape_Struct(t *testing.T) {
	type cell struct {
		Row, Col uint8
		Alive    bool
	}
	shape := qrng.Struct(
		qrng.FieldOf(func(c *cell, v uint8) { c.Row = v }, uniform.Uint8{}),
		qrng.FieldOf(func(c *cell, v uint8) { c.Col = v }, uniform.Uint8{}),
		qrng.FieldOf(func(c *cell, v bool) { c.Alive = v }, uniform.Bool{}),
	)
	c := qrng.NewCounter(1)
	got := qrng.GenShape[cell](c, shape)

	// Step 1 yields the constants themselves.
	consts, err := sequence.Constants(3)
	require.NoError(t, err)
	assert.Equal(t, uniform.Uint8{}.FromUniform(consts[0]), got.Row)
	assert.Equal(t, uniform.Uint8{}.FromUniform(consts[1]), got.Col)
	assert.Equal(t, consts[2] < 0.5, got.Alive)
	assert.Equal(t, uint64(2), c.Index())
}

func TestGenShape_DimBounds(t *testing.T) {
	c := qrng.NewCounter(0)
	assert.Panics(t, func() { qrng.GenShape[[]float64](c, qrng.Coords(qrng.MaxCounterDim+1)) })
	assert.Panics(t, func() { qrng.GenShape[[]float64](c, qrng.Coords(0)) })
	assert.Equal(t, uint64(0), c.Index())

	got := qrng.GenShape[[]float64](c, qrng.Coords(qrng.MaxCounterDim))
	assert.Len(t, got, qrng.MaxCounterDim)
}
