// SPDX-License-Identifier: MIT

// Package stats measures how evenly a point set fills the unit cube.
//
// The measures are the ones used to compare quasirandom streams with
// pseudorandom ones:
//
//	Coverage          how many of n equal buckets a 1-D sample touches
//	NearestNeighbor   distance from every point to its closest neighbour
//	MeanStdDev        population mean and standard deviation
//	EstimatePi        Monte Carlo quarter-circle estimate of π
//
// An evenly spread set touches more buckets and has nearest-neighbour
// distances with a small spread. Distances and moments come from gonum
// (floats, stat). All functions are deterministic and none of them draw
// random numbers themselves.
package stats
