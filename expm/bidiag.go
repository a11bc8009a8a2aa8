// SPDX-License-Identifier: MIT
// Package expm: exponential of upper-bidiagonal matrices.
//
// Same [9/9] pipeline as the general case, run over the banded operation
// set: every product goes through the banded primitives with explicit
// bandwidth bookkeeping, and the Padé resolve is a triangular
// back-substitution instead of a general LU solve. For a bidiagonal input
// the powers grow band by band (B² has bandwidth 3, B⁴ bandwidth 5), so
// the whole build stays O(n) per row instead of O(n²).

package expm

import "github.com/katalvlaran/matexp/matrix"

// ExpBidiagonal returns e^A for an upper-bidiagonal square matrix a (only
// the main diagonal and the first superdiagonal are read; anything outside
// that band is ignored per the banded caller obligation).
//
// The input is cloned at the top and never mutated. The result is upper
// triangular and generally dense within its triangle.
//
// Returns matrix.ErrNonSquare / matrix.ErrNilMatrix on invalid input and
// matrix.ErrSingular if the triangular Padé solve hits a numerically zero
// pivot. Complexity: O(n) per banded multiply during the build, O(n³/6)
// per triangular squaring step.
func ExpBidiagonal(a *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, expErrorf("ExpBidiagonal", "validate", err)
	}

	return expPipeline("ExpBidiagonal", bandedArith{n: a.Rows()}, a, 1, gatherOptions(opts...))
}

// ExpBidiagonalVec computes e^A·b for an upper-bidiagonal square matrix a
// and a vector b of matching length. The exponential is materialized once
// and applied to b; neither input is mutated.
//
// Returns matrix.ErrDimensionMismatch when len(b) != n, plus everything
// ExpBidiagonal can return.
func ExpBidiagonalVec(a *matrix.Dense, b []float64, opts ...Option) ([]float64, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, expErrorf("ExpBidiagonalVec", "validate", err)
	}
	if err := matrix.ValidateVecLen(a, b); err != nil {
		return nil, expErrorf("ExpBidiagonalVec", "validate", err)
	}

	e, err := ExpBidiagonal(a, opts...)
	if err != nil {
		return nil, err
	}
	out, err := matrix.MulVec(e, b)
	if err != nil {
		return nil, expErrorf("ExpBidiagonalVec", "apply", err)
	}

	return out, nil
}
