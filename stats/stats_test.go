package stats_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/quasirandom/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoverage(t *testing.T) {
	got, err := stats.Coverage([]float64{0.05, 0.15, 0.16, 0.95}, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	// Out-of-range values are clamped, not dropped.
	got, err = stats.Coverage([]float64{-0.2, 1.0, 7}, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	got, err = stats.Coverage(nil, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	_, err = stats.Coverage([]float64{0.5}, 0)
	assert.ErrorIs(t, err, stats.ErrBuckets)
}

func TestNearestNeighbor(t *testing.T) {
	points := [][]float64{{0, 0}, {0, 1}, {3, 0}, {3, 2}}
	got, err := stats.NearestNeighbor(points)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 2, 2}, got)
}

func TestNearestNeighbor_3D(t *testing.T) {
	points := [][]float64{{0, 0, 0}, {1, 2, 2}, {10, 10, 10}}
	got, err := stats.NearestNeighbor(points)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, got[0], 1e-12)
	assert.InDelta(t, 3.0, got[1], 1e-12)
	assert.InDelta(t, math.Sqrt(81+64+64), got[2], 1e-12)
}

func TestNearestNeighbor_Errors(t *testing.T) {
	_, err := stats.NearestNeighbor([][]float64{{0.5}})
	assert.ErrorIs(t, err, stats.ErrEmpty)

	_, err = stats.NearestNeighbor([][]float64{{0, 0}, {1}})
	assert.ErrorIs(t, err, stats.ErrDimensionMismatch)
}

func TestMeanStdDev(t *testing.T) {
	mean, sd, err := stats.MeanStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.NoError(t, err)
	assert.Equal(t, 5.0, mean)
	assert.Equal(t, 2.0, sd)

	_, _, err = stats.MeanStdDev(nil)
	assert.ErrorIs(t, err, stats.ErrEmpty)
}

func TestEstimatePi(t *testing.T) {
	// A regular 100x100 grid of cell centres.
	const side = 100
	k := 0
	next := func() (float64, float64) {
		x := (float64(k%side) + 0.5) / side
		y := (float64(k/side) + 0.5) / side
		k++
		return x, y
	}
	got, err := stats.EstimatePi(side*side, next)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, got, 0.02)

	_, err = stats.EstimatePi(0, next)
	assert.ErrorIs(t, err, stats.ErrEmpty)
}
