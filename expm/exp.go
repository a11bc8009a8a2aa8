// SPDX-License-Identifier: MIT
// Package expm: general dense exponential.

package expm

import "github.com/katalvlaran/matexp/matrix"

// Exp returns e^A, the exponential of the square matrix a, computed by
// scaling-and-squaring with the diagonal [9/9] Padé approximant
// (Higham, Functions of Matrices, SIAM 2008): balance by μ = trace(A)/n,
// scale under θ₉, build and resolve the approximant, then undo with the
// telescoped scalar exp(μ·2⁻ˢ) followed by s squarings.
//
// The input is cloned at the top and never mutated. Dense general multiply
// and the LU solve are delegated to the linear-algebra collaborator.
//
// Returns matrix.ErrNonSquare / matrix.ErrNilMatrix on invalid input and
// matrix.ErrSingular if the Padé denominator solve degenerates (which,
// given the bounded-norm precondition, indicates an upstream logic error).
// Complexity: O(n³) per multiply, 6+s multiplies total.
func Exp(a *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, expErrorf("Exp", "validate", err)
	}

	return expPipeline("Exp", denseArith{}, a, 0, gatherOptions(opts...))
}
