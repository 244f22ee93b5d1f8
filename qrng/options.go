// SPDX-License-Identifier: MIT
// Package: quasirandom/qrng
//
// options.go — functional options for New.
//
// Options only tune where a stream starts; they never change the recurrence
// itself, so two handles built with the same shape, seed and options produce
// identical output.

package qrng

// Option customizes a handle before its first Gen call.
type Option func(*config)

// config collects the knobs set by Option values. The zero value is the
// default: no skipped steps.
type config struct {
	skip uint64 // steps discarded right after seeding
}

// newConfig applies opts in order; later options override earlier ones.
func newConfig(opts ...Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithSkip discards the first n steps after seeding, so the first Gen
// returns what the (n+1)-th Gen of an unskipped handle would.
//
// Complexity: O(n·dim) once, inside New.
func WithSkip(n uint64) Option {
	return func(c *config) {
		c.skip = n
	}
}
