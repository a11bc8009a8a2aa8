// Package expm computes exp(A), exp(A)−I, exp(A)·b and (exp(A)−I)·b for
// real square matrices using scaling-and-squaring with diagonal Padé
// approximants, with a banded fast path for upper-bidiagonal matrices.
//
// 🚀 What is expm?
//
//	The classic scaling-and-squaring pipeline:
//	  balance → select scaling exponent → Padé build → solve → undo scaling
//	with two approximant orders:
//	  • [9/9] for exp(x)            (general and bidiagonal matrices)
//	  • [7/7] for (exp(x) − 1) / x  (bidiagonal, cancellation-free exp(A)−I)
//
// ✨ Key properties:
//   - Balancing: the mean diagonal μ = trace(A)/n is subtracted before
//     scaling and reinstated as the telescoped scalar exp(μ·2⁻ˢ), so
//     exp(μ) is never evaluated at full, overflow-prone magnitude.
//   - Cancellation avoidance: exp(A)−I is computed directly from the
//     expm1-style approximant; it retains full relative accuracy even when
//     ‖A‖ is tiny, where exp(A) minus the identity would lose every digit.
//   - Distinct unscaling strategies: repeated squaring for exp, and the
//     telescoping product (exp(B)−I)(exp(B)+I)(exp(B²)+I)··· for exp(A)−I.
//     The two are not interchangeable.
//   - Vector variants sum a small-norm Taylor series and undo scaling with
//     matrix-vector products only.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/matexp/expm"
//	  "github.com/katalvlaran/matexp/matrix"
//	)
//
//	a, _ := matrix.NewDenseOf([][]float64{{-2, 1}, {0, -3}})
//	e, err := expm.ExpBidiagonal(a)
//
// Concurrency: every entry point clones its input and owns all scratch for
// the duration of the call; there is no package-level mutable state.
// Concurrent calls on distinct matrices are safe without synchronization.
//
// Bidiagonal entry points trust the caller's banded invariant: entries
// outside the declared band are ignored, not validated.
package expm
