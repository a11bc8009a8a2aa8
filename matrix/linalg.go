// SPDX-License-Identifier: MIT
// Package matrix: general dense kernels.
//
// The heavy dense primitives (matrix multiply, LU-based solve) are
// delegated to gonum, the external linear-algebra collaborator; the
// gonum views below wrap the Dense backing slices with zero copy. The
// trivial elementwise kernels (scaled add, scalar multiply) are flat-slice
// loops in this file.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// gonumView wraps m's backing storage as a gonum *mat.Dense without
// copying. Writes through the view land in m.
func gonumView(m *Dense) *mat.Dense {
	return mat.NewDense(m.r, m.c, m.data)
}

// Mul returns the dense product a·b as a fresh matrix.
// Inputs are never mutated. Returns ErrDimensionMismatch when
// a.Cols != b.Rows. Complexity: O(r·c·k) via gonum's blocked kernels.
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("Mul: %w", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("Mul: %w", err)
	}
	if a.c != b.r {
		return nil, fmt.Errorf("Mul: %w", ErrDimensionMismatch)
	}

	out, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, fmt.Errorf("Mul: %w", err)
	}
	gonumView(out).Mul(gonumView(a), gonumView(b))

	return out, nil
}

// MulVec returns the matrix-vector product a·x as a fresh slice.
// Returns ErrDimensionMismatch when len(x) != a.Cols.
// Complexity: O(r·c).
func MulVec(a *Dense, x []float64) ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("MulVec: %w", err)
	}
	if err := ValidateVecLen(a, x); err != nil {
		return nil, fmt.Errorf("MulVec: %w", err)
	}

	out := make([]float64, a.r)
	mat.NewVecDense(a.r, out).MulVec(gonumView(a), mat.NewVecDense(len(x), x))

	return out, nil
}

// Solve solves the dense system a·X = b via gonum's LU decomposition and
// returns X as a fresh matrix. a must be square with b.Rows == a.Rows.
// A singular or near-singular a reports ErrSingular.
// Complexity: O(n³).
func Solve(a, b *Dense) (*Dense, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	if b.r != a.r {
		return nil, fmt.Errorf("Solve: %w", ErrDimensionMismatch)
	}

	out, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	if err = gonumView(out).Solve(gonumView(a), gonumView(b)); err != nil {
		// gonum reports singularity as a Condition error; remap to the
		// package sentinel so callers match with errors.Is.
		return nil, fmt.Errorf("Solve: %w", ErrSingular)
	}

	return out, nil
}

// AddScaled returns g·a + h·b as a fresh matrix. Inputs must share a shape
// and are never mutated. Complexity: O(r·c).
func AddScaled(g float64, a *Dense, h float64, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("AddScaled: %w", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("AddScaled: %w", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, fmt.Errorf("AddScaled: %w", err)
	}

	out, err := NewDense(a.r, a.c)
	if err != nil {
		return nil, fmt.Errorf("AddScaled: %w", err)
	}
	for i, av := range a.data {
		out.data[i] = g*av + h*b.data[i]
	}

	return out, nil
}

// Scale multiplies every entry of a by h, in place. Complexity: O(r·c).
func Scale(a *Dense, h float64) error {
	if err := ValidateNotNil(a); err != nil {
		return fmt.Errorf("Scale: %w", err)
	}
	for i := range a.data {
		a.data[i] *= h
	}

	return nil
}
