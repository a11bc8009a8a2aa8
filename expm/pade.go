// SPDX-License-Identifier: MIT
// Package expm: the shared scaling-and-squaring pipeline for e^A.

package expm

import (
	"math"

	"github.com/katalvlaran/matexp/matrix"
)

// expPipeline runs the full pipeline over the supplied operation set:
//  1. Balance: B = A − μI with μ = trace(A)/n.
//  2. Scale: pick s with ‖B‖/2^s ≤ θ₉, form B ← B/2^s.
//  3. Build the [9/9] approximant's numerator V+U and denominator V−U
//     from B² and B⁴ via the odd/even Horner split.
//  4. Resolve the rational approximant.
//  5. Undo: multiply once by the telescoped scalar exp(μ·2⁻ˢ), then
//     square s times; the scalar is raised to exp(μ) along the way, so
//     exp(μ) is never evaluated directly at full, overflow-prone
//     magnitude.
//
// a is cloned at the top and never mutated; inBand is the caller's
// bandwidth declaration for a (ignored by the dense strategy). entry tags
// the wrapped errors with the public entry point.
func expPipeline(entry string, ar arith, a *matrix.Dense, inBand int, o Options) (*matrix.Dense, error) {
	n := a.Rows()

	// Stage 1: Balance - B = A - μI (band is preserved)
	b := operand{m: a.Clone(), bw: inBand}
	mu := matrix.Trace(b.m) / float64(n)
	_ = matrix.AddDiag(b.m, -mu)

	// Stage 2: Scale - B = B / 2^s
	s := scalePow(ar.norm1(b), theta9) + o.extraSquarings
	v := math.Ldexp(1, -s) // 2^-s, exact
	if err := ar.scale(b, v); err != nil {
		return nil, expErrorf(entry, "scale", err)
	}

	// Stage 3: Powers B², B⁴
	b2, err := ar.mul(b, b)
	if err != nil {
		return nil, expErrorf(entry, "pade build", err)
	}
	b4, err := ar.mul(b2, b2)
	if err != nil {
		return nil, expErrorf(entry, "pade build", err)
	}

	// Odd-coefficient accumulator U = B·(B⁴·(c₉B⁴+c₇B²) + c₅B⁴+c₃B²+c₁I)
	w, err := ar.addScaled(padeExp[9], b4, padeExp[7], b2)
	if err != nil {
		return nil, expErrorf(entry, "pade build", err)
	}
	u, err := ar.mul(b4, w)
	if err != nil {
		return nil, expErrorf(entry, "pade build", err)
	}
	if w, err = ar.addScaled(padeExp[5], b4, padeExp[3], b2); err != nil {
		return nil, expErrorf(entry, "pade build", err)
	}
	_ = matrix.AddDiag(w.m, padeExp[1])
	if u, err = ar.addScaled(1, u, 1, w); err != nil {
		return nil, expErrorf(entry, "pade build", err)
	}
	if u, err = ar.mul(b, u); err != nil {
		return nil, expErrorf(entry, "pade build", err)
	}

	// Even-coefficient accumulator V = B⁴·(c₈B⁴+c₆B²) + c₄B⁴+c₂B²+c₀I
	if w, err = ar.addScaled(padeExp[8], b4, padeExp[6], b2); err != nil {
		return nil, expErrorf(entry, "pade build", err)
	}
	vm, err := ar.mul(b4, w)
	if err != nil {
		return nil, expErrorf(entry, "pade build", err)
	}
	if w, err = ar.addScaled(padeExp[4], b4, padeExp[2], b2); err != nil {
		return nil, expErrorf(entry, "pade build", err)
	}
	_ = matrix.AddDiag(w.m, padeExp[0])
	if vm, err = ar.addScaled(1, vm, 1, w); err != nil {
		return nil, expErrorf(entry, "pade build", err)
	}

	// Numerator V+U, denominator V−U
	num, err := ar.addScaled(1, vm, 1, u)
	if err != nil {
		return nil, expErrorf(entry, "pade build", err)
	}
	den, err := ar.addScaled(1, vm, -1, u)
	if err != nil {
		return nil, expErrorf(entry, "pade build", err)
	}

	// Stage 4: Resolve the rational approximant
	x, err := ar.solve(den, num)
	if err != nil {
		return nil, expErrorf(entry, "pade solve", err)
	}

	// Stage 5: Undo scaling - scalar exp(μ·2⁻ˢ), then square s times
	if err = ar.scale(x, math.Exp(mu*v)); err != nil {
		return nil, expErrorf(entry, "unscale", err)
	}
	for i := 0; i < s; i++ {
		if x, err = ar.mul(x, x); err != nil {
			return nil, expErrorf(entry, "squaring", err)
		}
	}

	return x.m, nil
}
