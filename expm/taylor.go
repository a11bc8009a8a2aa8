// SPDX-License-Identifier: MIT
// Package expm: small-norm Taylor fallback for vector results.

package expm

import (
	"math"

	"github.com/katalvlaran/matexp/matrix"
)

// taylorVec sums (exp(A) − I)·b = Σ_{k≥1} (Aᵏ/k!)·b term by term,
// maintaining running Term and Sum vectors. The caller guarantees
// ‖A‖ ≤ 1/16, so the series converges in a handful of terms; summation
// stops once the newest term's 1-norm drops below tol times the sum's
// 1-norm AND at least n+5 terms have been taken - the floor keeps larger
// matrices from terminating before the series has meaningfully converged.
//
// b is not mutated; the result is a fresh slice.
func taylorVec(a *matrix.Dense, b []float64, tol float64) ([]float64, error) {
	n := a.Rows()
	jmax := 2*n + 100 // hard cap; the tolerance rule fires long before this

	term := make([]float64, len(b))
	copy(term, b)
	sum := make([]float64, n)

	var err error
	for j := 1; j <= jmax; j++ {
		if term, err = matrix.MulVec(a, term); err != nil {
			return nil, err
		}
		inv := 1.0 / float64(j)
		for i := range term {
			term[i] *= inv // Term ← A·Term / j
			sum[i] += term[i]
		}
		if j > n+5 && vecNorm1(term) <= vecNorm1(sum)*tol {
			break
		}
	}

	return sum, nil
}

// vecNorm1 returns the 1-norm (sum of absolute values) of x.
func vecNorm1(x []float64) float64 {
	s := 0.0
	for _, v := range x {
		s += math.Abs(v)
	}

	return s
}
