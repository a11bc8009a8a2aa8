// SPDX-License-Identifier: MIT
// Package matrix: operator-norm estimators used for scale selection.

package matrix

import "math"

// Norm1 returns the induced matrix 1-norm of a: the maximum absolute column
// sum. This is the standard cheap norm estimate used to pick the scaling
// exponent for a general dense matrix. Returns 0 for a nil matrix.
// Complexity: O(r*c).
func Norm1(a *Dense) float64 {
	if a == nil {
		return 0
	}

	colSums := make([]float64, a.c)
	for i := 0; i < a.r; i++ {
		row := a.data[i*a.c : (i+1)*a.c]
		for j, v := range row {
			colSums[j] += math.Abs(v)
		}
	}

	norm := 0.0
	for _, s := range colSums {
		if s > norm {
			norm = s
		}
	}

	return norm
}

// Norm1Bidiag returns the 1-norm of an upper-bidiagonal matrix: the maximum
// over columns i of |a[i-1][i]| + |a[i][i]|. Exact for that shape and O(n)
// instead of O(n²); entries outside the bidiagonal band are ignored per the
// banded caller obligation. Returns 0 for a nil matrix.
func Norm1Bidiag(a *Dense) float64 {
	if a == nil {
		return 0
	}

	n := a.r
	norm := math.Abs(a.data[0])
	for i := 1; i < n; i++ {
		x := math.Abs(a.data[(i-1)*n+i]) + math.Abs(a.data[i*n+i])
		if x > norm {
			norm = x
		}
	}

	return norm
}

// Trace returns the sum of the main-diagonal entries of the square matrix a.
// Assumes a is non-nil and square (callers validate shape first).
// Complexity: O(n).
func Trace(a *Dense) float64 {
	t := 0.0
	for i := 0; i < a.r; i++ {
		t += a.data[i*a.c+i]
	}

	return t
}
