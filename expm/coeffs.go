// SPDX-License-Identifier: MIT
// Package expm: fixed Padé coefficient tables and scaling thresholds.
// Compile-time constant data; nothing in this file is ever mutated.

package expm

// padeExp holds the [9/9] diagonal Padé numerator coefficients for exp(x).
// The denominator reuses the same table with alternating signs, which is
// why the evaluator accumulates even- and odd-indexed terms separately and
// forms numerator = V + U, denominator = V − U.
var padeExp = [10]float64{
	17643225600, 8821612800, 2075673600, 302702400,
	30270240, 2162160, 110880, 3960, 90, 1,
}

// padeExpm1Num holds the [7/7] Padé numerator coefficients for
// f(x) = (exp(x) - 1) / x.
var padeExpm1Num = [8]float64{
	1.0, 1.0 / 30, 1.0 / 30, 1.0 / 936,
	1.0 / 4680, 1.0 / 171600, 1.0 / 3603600, 1.0 / 259459200,
}

// padeExpm1Den holds the matching [7/7] Padé denominator coefficients.
var padeExpm1Den = [8]float64{
	1.0, -(7.0 / 15), 1.0 / 10, -(1.0 / 78),
	1.0 / 936, -(1.0 / 17160), 1.0 / 514800, -(1.0 / 32432400),
}

// Scaling thresholds: the scaled matrix norm must not exceed θ for the
// corresponding approximant to be accurate to machine precision.
const (
	// theta9 bounds the [9/9] exp approximant (Higham, Functions of
	// Matrices, SIAM 2008).
	theta9 = 2.097847961257068

	// theta7 bounds the [7/7] expm1 approximant (θ₇,₁).
	theta7 = 1.13

	// thetaTaylor is the far more conservative bound used before summing
	// the vector Taylor series, so the series converges in a handful of
	// terms.
	thetaTaylor = 1.0 / 16
)
