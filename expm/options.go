// SPDX-License-Identifier: MIT
// Package expm: functional configuration for the exponential kernel.
// Same idiom as the matrix options in this module: Option setters over an
// unexported Options struct, documented Default* constants as the single
// source of truth, With* constructors that panic only on nonsensical
// parameters (programmer error), and a gatherOptions resolver.

package expm

import "math"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultExtraSquarings is the number of scaling steps forced beyond
	// the selected minimum. Zero means the kernel picks s purely from the
	// norm/θ rule. Extra steps must not change results beyond rounding;
	// the scaling-invariance tests rely on exactly that.
	DefaultExtraSquarings = 0

	// DefaultTaylorTol is the relative tolerance of the vector
	// Taylor-series stopping rule: summation stops once the newest term's
	// 1-norm falls below this fraction of the accumulated sum's 1-norm
	// (and at least n+5 terms have been taken).
	DefaultTaylorTol = 1e-12
)

// Internal panic messages (no magic strings).
const (
	panicExtraSquaringsInvalid = "expm: WithExtraSquarings: k must be >= 0"
	panicTaylorTolInvalid      = "expm: WithTaylorTol: eps must be finite, > 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally unexported in content; public entry points accept
// `...Option` and internally resolve them via gatherOptions.
type Options struct {
	extraSquarings int     // >= 0; DefaultExtraSquarings
	taylorTol      float64 // > 0, finite; DefaultTaylorTol
}

// WithExtraSquarings forces k additional scaling steps on top of the
// minimum selected from the norm/θ rule. The final result must agree with
// the unforced one to rounding level; the knob exists to exercise exactly
// that property. Panics when k < 0.
// Complexity: O(1); each extra step costs one more squaring later.
func WithExtraSquarings(k int) Option {
	if k < 0 {
		panic(panicExtraSquaringsInvalid)
	}

	return func(o *Options) { o.extraSquarings = k }
}

// WithTaylorTol sets the relative tolerance of the vector Taylor-series
// stopping rule. Panics when eps is non-finite or not strictly positive.
// Complexity: O(1).
func WithTaylorTol(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicTaylorTolInvalid)
	}

	return func(o *Options) { o.taylorTol = eps }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins; deterministic for a given setter sequence.
func gatherOptions(user ...Option) Options {
	o := Options{
		extraSquarings: DefaultExtraSquarings,
		taylorTol:      DefaultTaylorTol,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
