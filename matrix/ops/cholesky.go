// SPDX-License-Identifier: MIT
// Package ops: Cholesky factorization facade.

package ops

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matexp/matrix"
)

// Cholesky factorizes the symmetric positive-definite matrix m and returns
// the lower-triangular factor L such that m = L·Lᵀ. Only the upper triangle
// of m is read (gonum's symmetric-storage convention); the caller is
// responsible for m being symmetric. Returns ErrNotSPD when the
// factorization fails. Time Complexity: O(n³).
func Cholesky(m *matrix.Dense) (*matrix.Dense, error) {
	// Stage 1: Validate input is square
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("Cholesky: %w", err)
	}
	n := m.Rows()

	// Stage 2: Pack into symmetric storage
	sym := mat.NewSymDense(n, nil)
	var v float64
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v, _ = m.At(i, j)
			sym.SetSym(i, j, v)
		}
	}

	// Stage 3: Factorize; a failure means m is not positive-definite
	var ch mat.Cholesky
	if ok := ch.Factorize(sym); !ok {
		return nil, fmt.Errorf("Cholesky: %w", ErrNotSPD)
	}

	// Stage 4: Extract L
	tri := mat.NewTriDense(n, mat.Lower, nil)
	ch.LTo(tri)

	return fromGonum(tri)
}
