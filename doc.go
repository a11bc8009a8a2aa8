// Package matexp computes matrix exponentials of dense real square
// matrices, with a fast specialization for upper-bidiagonal matrices.
//
// 🚀 What is matexp?
//
//	A small, focused numerics library built around scaling-and-squaring
//	with diagonal Padé approximants:
//		• exp(A) for general dense matrices ([9/9] approximant)
//		• exp(A) for upper-bidiagonal matrices via banded arithmetic
//		• exp(A) − I without cancellation ([7/7] expm1-style approximant)
//		• exp(A)·b and (exp(A) − I)·b vector variants
//
// ✨ Why choose matexp?
//
//   - Numerically careful – balancing, per-order scaling thresholds,
//     cancellation-free expm1, telescoping-product unscaling
//   - Banded-aware – bidiagonal inputs stay O(n·s²) per multiply
//   - Stateless – every call owns its scratch; safe for concurrent use
//     on independent matrices
//
// Everything is organized under the subpackages:
//
//	matrix/     — dense matrix type, banded primitives, norms, solves
//	matrix/ops/ — LU solve, Cholesky and PCA facades over gonum
//	expm/       — the exponential kernel and its options
//
// Quick start:
//
//	a, _ := matrix.NewDenseOf([][]float64{{-2, 1}, {0, -3}})
//	e, err := expm.ExpBidiagonal(a)
//
// See expm/example_test.go for runnable scenarios.
//
//	go get github.com/katalvlaran/matexp
package matexp
