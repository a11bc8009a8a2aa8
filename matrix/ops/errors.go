// SPDX-License-Identifier: MIT
// Package ops: sentinel error set. Same discipline as the matrix package:
// routines return these sentinels (possibly wrapped with context) and tests
// match them via errors.Is.

package ops

import "errors"

var (
	// ErrNotSPD is returned when Cholesky factorization fails because the
	// input is not symmetric positive-definite.
	ErrNotSPD = errors.New("ops: matrix is not symmetric positive-definite")

	// ErrDecompositionFailed signals that an SVD factorization did not
	// converge for the given input.
	ErrDecompositionFailed = errors.New("ops: decomposition failed")
)
