// SPDX-License-Identifier: MIT
// Package ops: LU-based linear solve facade.

package ops

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matexp/matrix"
)

// SolveLU solves the square system a·x = b via LU decomposition and returns
// the solution vector x. Returns matrix.ErrNonSquare for a non-square a,
// matrix.ErrDimensionMismatch when len(b) != n, and matrix.ErrSingular when
// the factorization detects a singular (or near-singular) matrix.
// Time Complexity: O(n³); Memory: O(n²) for the factors.
func SolveLU(a *matrix.Dense, b []float64) ([]float64, error) {
	// Stage 1: Validate shapes
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("SolveLU: %w", err)
	}
	if err := matrix.ValidateVecLen(a, b); err != nil {
		return nil, fmt.Errorf("SolveLU: %w", err)
	}
	n := a.Rows()

	// Stage 2: Factorize
	var lu mat.LU
	lu.Factorize(toGonum(a))

	// Stage 3: Solve and surface singularity as the package sentinel
	out := make([]float64, n)
	rhs := mat.NewVecDense(n, nil)
	for i, v := range b {
		rhs.SetVec(i, v)
	}
	if err := lu.SolveVecTo(mat.NewVecDense(n, out), false, rhs); err != nil {
		return nil, fmt.Errorf("SolveLU: %w", matrix.ErrSingular)
	}

	return out, nil
}
