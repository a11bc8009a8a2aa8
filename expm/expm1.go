// SPDX-License-Identifier: MIT
// Package expm: cancellation-free exp(A) − I for upper-bidiagonal matrices.
//
// Computing exp(A) and then subtracting I loses all relative precision
// when the entries of A (hence of exp(A)−I) are small - the classic
// catastrophic-cancellation failure. This file instead approximates
// f(x) = (exp(x)−1)/x with a [7/7] diagonal Padé approximant on banded
// powers and multiplies by A afterwards, so exp(A)−I is produced directly
// at full relative accuracy (Higham, Functions of Matrices, SIAM 2008,
// p. 262; Skaflestad & Wright 2009 for the telescoped unscaling).

package expm

import (
	"math"

	"github.com/katalvlaran/matexp/matrix"
)

// expm1Pade evaluates the [7/7] approximant of (exp(B)−1)/B on a scaled
// bidiagonal matrix B with ‖B‖ ≤ θ₇ and returns exp(B) − I.
// All products run over the banded operation set: B², B⁴, B⁶ carry
// bandwidths 2, 4, 6, and the numerator/denominator bandwidth 7; only the
// final triangular resolve fills the upper triangle.
func expm1Pade(ar bandedArith, b operand) (*matrix.Dense, error) {
	// Powers B² (bandwidth 2), B⁴ (4), B⁶ (6)
	b2, err := ar.mul(b, b)
	if err != nil {
		return nil, err
	}
	b4, err := ar.mul(b2, b2)
	if err != nil {
		return nil, err
	}
	b6, err := ar.mul(b4, b2)
	if err != nil {
		return nil, err
	}

	// assemble builds even + odd·B for one coefficient table; the even part
	// takes c[0],c[2],c[4],c[6], the odd part c[1],c[3],c[5],c[7].
	assemble := func(c *[8]float64) (operand, error) {
		// Even part: c₆B⁶ + c₄B⁴ + c₂B² + c₀I (bandwidth 6)
		t, err := ar.addScaled(c[4], b4, c[2], b2)
		if err != nil {
			return operand{}, err
		}
		even, err := ar.addScaled(c[6], b6, 1, t)
		if err != nil {
			return operand{}, err
		}
		_ = matrix.AddDiag(even.m, c[0])

		// Odd part: (c₇B⁶ + c₅B⁴ + c₃B² + c₁I)·B (bandwidth 7)
		if t, err = ar.addScaled(c[5], b4, c[3], b2); err != nil {
			return operand{}, err
		}
		w, err := ar.addScaled(c[7], b6, 1, t)
		if err != nil {
			return operand{}, err
		}
		_ = matrix.AddDiag(w.m, c[1])
		odd, err := ar.mul(w, b)
		if err != nil {
			return operand{}, err
		}

		return ar.addScaled(1, even, 1, odd)
	}

	num, err := assemble(&padeExpm1Num)
	if err != nil {
		return nil, err
	}
	den, err := assemble(&padeExpm1Den)
	if err != nil {
		return nil, err
	}

	// W ≈ (exp(B)−1)/B, then exp(B) − I = B·W
	w, err := ar.solve(den, num)
	if err != nil {
		return nil, err
	}
	out, err := ar.mul(b, w)
	if err != nil {
		return nil, err
	}

	return out.m, nil
}

// Expm1Bidiagonal returns exp(A) − I for an upper-bidiagonal square matrix
// a, retaining full relative accuracy even when ‖A‖ is tiny. The result is
// dense in its upper triangle (exp(A)−I of a banded matrix fills in).
//
// Unscaling uses the telescoping product
//
//	exp(A) − I = (exp(B)−I)·(exp(B)+I)·(exp(B²)+I)···(exp(B^(2^(s−1)))+I)
//
// which is algebraically distinct from the repeated squaring used for
// exp(A): substituting one for the other yields a numerically plausible
// wrong answer, so the two never share code.
//
// The input is cloned at the top and never mutated.
// Returns matrix.ErrNonSquare / matrix.ErrNilMatrix / matrix.ErrSingular.
func Expm1Bidiagonal(a *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	// Stage 1: Validate and resolve options
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, expErrorf("Expm1Bidiagonal", "validate", err)
	}
	o := gatherOptions(opts...)
	ar := bandedArith{n: a.Rows()}

	// Stage 2: Scale - B = A / 2^s under the [7/7] threshold (no balancing
	// here: the μ shift would destroy the exp(A)−I structure)
	b := operand{m: a.Clone(), bw: 1}
	s := scalePow(ar.norm1(b), theta7) + o.extraSquarings
	if err := ar.scale(b, math.Ldexp(1, -s)); err != nil {
		return nil, expErrorf("Expm1Bidiagonal", "scale", err)
	}

	// Stage 3: Base case U = exp(B) − I from the [7/7] approximant
	u, err := expm1Pade(ar, b)
	if err != nil {
		return nil, expErrorf("Expm1Bidiagonal", "pade solve", err)
	}

	// Stage 4: Telescoping unscale
	nm := u.Clone()
	_ = matrix.AddDiag(nm, 1) // N = exp(B)
	vv := nm.Clone()
	for i := 1; i <= s; i++ {
		_ = matrix.AddDiag(nm, 1) // N + I
		if u, err = matrix.Mul(nm, u); err != nil {
			return nil, expErrorf("Expm1Bidiagonal", "telescoping", err)
		}
		if i < s {
			if vv, err = matrix.Mul(vv, vv); err != nil {
				return nil, expErrorf("Expm1Bidiagonal", "telescoping", err)
			}
			nm = vv.Clone()
		}
	}

	return u, nil
}

// Expm1BidiagonalVec computes (exp(A) − I)·b for an upper-bidiagonal
// square matrix a and a vector b of matching length, without ever forming
// exp(A) at full scale: A is pre-scaled below the conservative Taylor
// threshold (1/16), the base case sums the Taylor series into a running
// vector, and the telescoping unscale is applied as matrix-vector
// products. Neither input is mutated.
//
// Returns matrix.ErrDimensionMismatch when len(b) != n, plus the
// bidiagonal pipeline errors.
func Expm1BidiagonalVec(a *matrix.Dense, b []float64, opts ...Option) ([]float64, error) {
	// Stage 1: Validate and resolve options
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, expErrorf("Expm1BidiagonalVec", "validate", err)
	}
	if err := matrix.ValidateVecLen(a, b); err != nil {
		return nil, expErrorf("Expm1BidiagonalVec", "validate", err)
	}
	o := gatherOptions(opts...)

	// Stage 2: Scale far below the series threshold
	f := a.Clone()
	s := scalePow(matrix.Norm1Bidiag(f), thetaTaylor) + o.extraSquarings
	_ = matrix.ScaleBand(f, 1, math.Ldexp(1, -s))

	// Stage 3: Base case - C = (exp(F) − I)·b by Taylor series, and the
	// scaled exponential needed by the telescoping factors
	u, err := ExpBidiagonal(f)
	if err != nil {
		return nil, err
	}
	c, err := taylorVec(f, b, o.taylorTol)
	if err != nil {
		return nil, expErrorf("Expm1BidiagonalVec", "taylor", err)
	}

	// Stage 4: Telescoping unscale, vector form: C ← (N+I)·C
	nm := u.Clone()
	for i := 1; i <= s; i++ {
		_ = matrix.AddDiag(nm, 1)
		if c, err = matrix.MulVec(nm, c); err != nil {
			return nil, expErrorf("Expm1BidiagonalVec", "telescoping", err)
		}
		if i < s {
			if u, err = matrix.Mul(u, u); err != nil {
				return nil, expErrorf("Expm1BidiagonalVec", "telescoping", err)
			}
			nm = u.Clone()
		}
	}

	return c, nil
}
