// SPDX-License-Identifier: MIT
// Package: quasirandom/stats
//
// stats.go — uniformity measures over point sets.
//
// Determinism:
//   - Fixed i→j traversal order; results depend only on the inputs.

package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Coverage maps each x in xs to bucket floor(x·buckets) and returns how many
// distinct buckets were hit. Values outside [0,1) are clamped to the first or
// last bucket.
//
// Errors:
//   - ErrBuckets if buckets <= 0.
//
// Complexity: O(len(xs)) time, O(buckets) space.
func Coverage(xs []float64, buckets int) (int, error) {
	if buckets <= 0 {
		return 0, statsErrorf(opCoverage, ErrBuckets, "got %d", buckets)
	}

	hit := make([]bool, buckets)
	count := 0
	for _, x := range xs {
		k := int(x * float64(buckets))
		switch {
		case k < 0:
			k = 0
		case k >= buckets:
			k = buckets - 1
		}
		if !hit[k] {
			hit[k] = true
			count++
		}
	}

	return count, nil
}

// NearestNeighbor returns, for every point, the Euclidean distance to the
// closest other point of the set.
//
// Errors:
//   - ErrEmpty if fewer than two points are given.
//   - ErrDimensionMismatch if points differ in length.
//
// Complexity: O(n²·d) time, O(n) space.
func NearestNeighbor(points [][]float64) ([]float64, error) {
	n := len(points)
	if n < 2 {
		return nil, statsErrorf(opNearestNeighbor, ErrEmpty, "need 2 points, got %d", n)
	}
	d := len(points[0])
	for i, p := range points {
		if len(p) != d {
			return nil, statsErrorf(opNearestNeighbor, ErrDimensionMismatch, "point %d has %d coords, want %d", i, len(p), d)
		}
	}

	closest := make([]float64, n)
	for i := range closest {
		closest[i] = math.Inf(1)
	}
	// Each pair is measured once and credited to both ends.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dist := distance(points[i], points[j])
			if dist < closest[i] {
				closest[i] = dist
			}
			if dist < closest[j] {
				closest[j] = dist
			}
		}
	}

	return closest, nil
}

// distance is the Euclidean distance between equal-length points.
func distance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// MeanStdDev returns the mean and the population standard deviation
// (divided by n, not n−1) of xs.
//
// Errors:
//   - ErrEmpty if xs is empty.
func MeanStdDev(xs []float64) (mean, stddev float64, err error) {
	if len(xs) == 0 {
		return 0, 0, statsErrorf(opMeanStdDev, ErrEmpty, "got 0 samples")
	}
	mean, stddev = stat.PopMeanStdDev(xs, nil)

	return mean, stddev, nil
}

// EstimatePi draws n points from next and returns 4·hits/n, where a hit is a
// point strictly inside the unit quarter circle.
//
// Errors:
//   - ErrEmpty if n <= 0.
func EstimatePi(n int, next func() (x, y float64)) (float64, error) {
	if n <= 0 {
		return 0, statsErrorf(opEstimatePi, ErrEmpty, "got n=%d", n)
	}

	hits := 0
	for i := 0; i < n; i++ {
		x, y := next()
		if math.Hypot(x, y) < 1 {
			hits++
		}
	}

	return 4 * float64(hits) / float64(n), nil
}
