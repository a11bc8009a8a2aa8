// SPDX-License-Identifier: MIT
// Package ops: principal-components decomposition facade.

package ops

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matexp/matrix"
)

// PCA computes the principal-components decomposition m = U·Λ·Uᵀ via the
// singular-value decomposition of m, for symmetric positive-semidefinite m.
// The eigenvalues (the diagonal of Λ, sorted by decreasing size) are written
// into lambda, which must have length n; the returned matrix is A = V·√Λ,
// the square root of m in the sense that A·Aᵀ = m.
// Returns ErrDecompositionFailed when the SVD does not converge.
// Time Complexity: O(n³).
func PCA(m *matrix.Dense, lambda []float64) (*matrix.Dense, error) {
	// Stage 1: Validate shapes
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("PCA: %w", err)
	}
	n := m.Rows()
	if len(lambda) != n {
		return nil, fmt.Errorf("PCA: %w", matrix.ErrDimensionMismatch)
	}

	// Stage 2: Factorize
	var svd mat.SVD
	if ok := svd.Factorize(toGonum(m), mat.SVDFull); !ok {
		return nil, fmt.Errorf("PCA: %w", ErrDecompositionFailed)
	}

	// Stage 3: Collect eigenvalues (singular values of a PSD matrix,
	// already sorted in decreasing order) and their square roots
	svd.Values(lambda)
	roots := make([]float64, n)
	for i, v := range lambda {
		roots[i] = math.Sqrt(v)
	}

	// Stage 4: Form A = V·√Λ by scaling the columns of V
	var v mat.Dense
	svd.VTo(&v)
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("PCA: %w", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = out.Set(i, j, v.At(i, j)*roots[j])
		}
	}

	return out, nil
}
