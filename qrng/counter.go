// SPDX-License-Identifier: MIT
// Package: quasirandom/qrng
//
// counter.go — the integer-seeded counter form of the recurrence.
//
// A Counter keeps a step index n instead of a phase vector and computes
// coordinate i as frac(n·c_i), then increments n. With the same constants
// this is the R_d sequence started at step n = seed. Rounding differs from
// the accumulating handle, so the two agree closely but not bit for bit.

package qrng

import (
	"fmt"

	"github.com/katalvlaran/quasirandom/sequence"
	"github.com/katalvlaran/quasirandom/uniform"
)

// MaxCounterDim is the largest dimensionality NextAt accepts.
const MaxCounterDim = 16

// counterConsts[d-1] holds the constants for dimensionality d.
var counterConsts [MaxCounterDim][]float64

func init() {
	for d := 1; d <= MaxCounterDim; d++ {
		c, err := sequence.Constants(d)
		if err != nil {
			panic(err)
		}
		counterConsts[d-1] = c
	}
}

// Counter generates quasirandom points from a step index.
type Counter struct {
	n uint64
}

// NewCounter starts a Counter at step seed.
func NewCounter(seed uint32) *Counter {
	return &Counter{n: uint64(seed)}
}

// Index returns the step the next call will use.
func (c *Counter) Index() uint64 {
	return c.n
}

// Next returns a value in [0,1).
func (c *Counter) Next() float64 {
	x := sequence.Fract(float64(c.n) * counterConsts[0][0])
	c.n++

	return x
}

// Next2 returns a point in [0,1)^2.
func (c *Counter) Next2() (x, y float64) {
	k, cs := float64(c.n), counterConsts[1]
	x, y = sequence.Fract(k*cs[0]), sequence.Fract(k*cs[1])
	c.n++

	return x, y
}

// Next3 returns a point in [0,1)^3.
func (c *Counter) Next3() (x, y, z float64) {
	k, cs := float64(c.n), counterConsts[2]
	x, y, z = sequence.Fract(k*cs[0]), sequence.Fract(k*cs[1]), sequence.Fract(k*cs[2])
	c.n++

	return x, y, z
}

// NextAt fills dst with a point of dimensionality len(dst).
// It panics unless 1 <= len(dst) <= MaxCounterDim.
func (c *Counter) NextAt(dst []float64) {
	d := len(dst)
	if d < 1 || d > MaxCounterDim {
		panic(fmt.Sprintf("qrng: Counter.NextAt: len(dst) must be in [1,%d], got %d", MaxCounterDim, d))
	}
	k := float64(c.n)
	for i, ci := range counterConsts[d-1] {
		dst[i] = sequence.Fract(k * ci)
	}
	c.n++
}

// GenFrom draws one coordinate from c and maps it through m.
func GenFrom[T any](c *Counter, m uniform.Mapper[T]) T {
	return m.FromUniform(c.Next())
}

// GenShape draws one point of dimensionality s.Dim() from c and assembles it
// with s. Like NextAt it panics unless 1 <= s.Dim() <= MaxCounterDim.
func GenShape[T any](c *Counter, s Shape[T]) T {
	buf := make([]float64, s.Dim())
	c.NextAt(buf)

	return s.Assemble(buf)
}
