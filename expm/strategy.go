// SPDX-License-Identifier: MIT
// Package expm: the operation set the shared Padé pipeline is built over.
//
// The pipeline stages (balance → scale-select → Padé build → resolve →
// undo) are identical for dense and banded matrices; only the primitive
// operations differ. Factoring those primitives into a strategy keeps one
// copy of the pipeline instead of near-duplicates per representation. The
// two undo-scaling variants (plain squaring for exp, telescoping product
// for exp(A)−I) stay explicit at the call sites: they are numerically
// distinct and must never be swapped for one another.

package expm

import "github.com/katalvlaran/matexp/matrix"

// operand pairs a matrix with the bandwidth bookkeeping the banded
// strategy threads through the build (a product of bandwidths sa and sb
// has bandwidth sa+sb). The dense strategy ignores bw.
type operand struct {
	m  *matrix.Dense
	bw int
}

// arith is the primitive operation set the pipeline is parameterized
// over: 1-norm estimation, in-place scalar scaling, multiply, scaled add,
// and the rational-approximant resolve.
type arith interface {
	// norm1 estimates the induced 1-norm of a for scale selection.
	norm1(a operand) float64
	// scale multiplies a by h in place.
	scale(a operand, h float64) error
	// mul returns a·b as a fresh operand with grown bandwidth.
	mul(a, b operand) (operand, error)
	// addScaled returns g·a + h·b as a fresh operand; inputs are not
	// mutated.
	addScaled(g float64, a operand, h float64, b operand) (operand, error)
	// solve resolves den·X = num for X.
	solve(den, num operand) (operand, error)
}

// denseArith implements arith with the general dense kernels; the heavy
// ones delegate to gonum through the matrix package.
type denseArith struct{}

func (denseArith) norm1(a operand) float64 { return matrix.Norm1(a.m) }

func (denseArith) scale(a operand, h float64) error { return matrix.Scale(a.m, h) }

func (denseArith) mul(a, b operand) (operand, error) {
	m, err := matrix.Mul(a.m, b.m)

	return operand{m: m}, err
}

func (denseArith) addScaled(g float64, a operand, h float64, b operand) (operand, error) {
	m, err := matrix.AddScaled(g, a.m, h, b.m)

	return operand{m: m}, err
}

func (denseArith) solve(den, num operand) (operand, error) {
	x, err := matrix.Solve(den.m, num.m)

	return operand{m: x}, err
}

// bandedArith implements arith with the upper-banded kernels, growing the
// bandwidth bookkeeping on every product (capped at n-1, the full upper
// triangle) and resolving the approximant by triangular back-substitution.
type bandedArith struct{ n int }

func (bandedArith) norm1(a operand) float64 { return matrix.Norm1Bidiag(a.m) }

func (bandedArith) scale(a operand, h float64) error {
	return matrix.ScaleBand(a.m, a.bw, h)
}

func (s bandedArith) mul(a, b operand) (operand, error) {
	dst, err := matrix.NewDense(s.n, s.n)
	if err != nil {
		return operand{}, err
	}
	if err = matrix.MulBand(a.m, a.bw, b.m, b.bw, dst); err != nil {
		return operand{}, err
	}

	return operand{m: dst, bw: min(a.bw+b.bw, s.n-1)}, nil
}

func (bandedArith) addScaled(g float64, a operand, h float64, b operand) (operand, error) {
	out := operand{m: a.m.Clone(), bw: max(a.bw, b.bw)}
	if err := matrix.AddScaledBand(g, out.m, a.bw, h, b.m, b.bw); err != nil {
		return operand{}, err
	}

	return out, nil
}

func (s bandedArith) solve(den, num operand) (operand, error) {
	x, err := matrix.NewDense(s.n, s.n)
	if err != nil {
		return operand{}, err
	}
	if err = matrix.SolveUpperTriangular(den.m, num.m, x); err != nil {
		return operand{}, err
	}

	// Back-substitution fills the whole upper triangle.
	return operand{m: x, bw: s.n - 1}, nil
}
