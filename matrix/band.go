// SPDX-License-Identifier: MIT
// Package matrix: arithmetic restricted to square, upper-banded matrices.
//
// A bandwidth parameter s ≥ 0 attached to a matrix A means every nonzero
// entry A[i][j] satisfies i ≤ j ≤ i+s (the main diagonal plus s
// superdiagonals). The parameter is bookkeeping carried by the caller, not
// stored state: entries outside the declared band are ignored, not
// validated. This is a documented caller obligation, chosen for
// performance; feeding a wider matrix than declared silently truncates it.
//
// The bandwidth invariant for products is exact: multiplying bandwidth
// sa+1 by bandwidth sb+1 yields bandwidth sa+sb+1. Callers must grow their
// bookkeeping accordingly or results will be corrupted.

package matrix

import (
	"fmt"
	"math"
)

// minPivot is the magnitude below which a triangular-solve pivot is treated
// as numerically zero.
const minPivot = 1e-300

// aliases reports whether x and y are the same matrix or share backing
// storage. Used by routines that must defensively copy an input when the
// caller passes it as the destination too.
func aliases(x, y *Dense) bool {
	if x == y {
		return true
	}

	return len(x.data) > 0 && len(y.data) > 0 && &x.data[0] == &y.data[0]
}

// bandErrorf wraps an underlying error with banded-routine context.
func bandErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// validateBandPair checks the common preconditions of the banded kernels:
// both operands non-nil, square, of equal order, with non-negative declared
// bandwidths. Returns plain sentinels for the caller to wrap.
func validateBandPair(a *Dense, sa int, b *Dense, sb int) error {
	if err := ValidateSquare(a); err != nil {
		return err
	}
	if err := ValidateSquare(b); err != nil {
		return err
	}
	if a.r != b.r {
		return ErrDimensionMismatch
	}
	if sa < 0 || sb < 0 {
		return ErrBadShape
	}

	return nil
}

// MulBand computes the banded product dst = a·b.
// All three matrices are square of the same order n and upper banded: a has
// sa superdiagonals, b has sb. The product has exactly sa+sb superdiagonals,
// so only entries dst[i][j] with j ∈ [i, min(i+sa+sb, n-1)] are computed;
// each sums a[i][k]·b[k][j] over k ∈ [max(i, j-sb), min(i+sa, j)].
//
// Aliasing contract: dst may be the same matrix as a and/or b; any aliased
// input is snapshotted before dst is cleared. dst is fully zeroed first, so
// stale entries outside the band cannot leak through.
//
// Complexity: O(n·(sa+1)·(sa+sb+1)) time, O(n²) scratch only when aliased.
func MulBand(a *Dense, sa int, b *Dense, sb int, dst *Dense) error {
	// Validate operands and bandwidths
	if err := validateBandPair(a, sa, b, sb); err != nil {
		return bandErrorf("MulBand", err)
	}
	if err := ValidateSquare(dst); err != nil {
		return bandErrorf("MulBand", err)
	}
	if dst.r != a.r {
		return bandErrorf("MulBand", ErrDimensionMismatch)
	}

	// Snapshot aliased inputs before clearing dst
	if aliases(a, dst) {
		a = a.Clone()
	}
	if aliases(b, dst) {
		b = b.Clone()
	}
	// Clear the destination entirely (including outside the result band)
	clear(dst.data)

	n := a.r
	for i := 0; i < n; i++ {
		jmax := min(i+sa+sb, n-1)
		for j := i; j <= jmax; j++ {
			kmin := max(i, j-sb)
			kmax := min(i+sa, j)
			z := 0.0
			for k := kmin; k <= kmax; k++ {
				z += a.data[i*n+k] * b.data[k*n+j]
			}
			dst.data[i*n+j] = z
		}
	}

	return nil
}

// ScaleBand multiplies every entry of the band of a (diagonal plus sa
// superdiagonals) by the scalar h, in place. Entries outside the band are
// untouched. Complexity: O(n·(sa+1)).
func ScaleBand(a *Dense, sa int, h float64) error {
	if err := ValidateSquare(a); err != nil {
		return bandErrorf("ScaleBand", err)
	}
	if sa < 0 {
		return bandErrorf("ScaleBand", ErrBadShape)
	}

	n := a.r
	for i := 0; i < n; i++ {
		jmax := min(i+sa, n-1)
		for j := i; j <= jmax; j++ {
			a.data[i*n+j] *= h
		}
	}

	return nil
}

// AddScaledBand forms a = g·a + h·b in place, where a has sa superdiagonals
// and b has sb. The result bandwidth is max(sa, sb); the union of both
// bands is updated.
//
// Aliasing contract: each entry is read from a and b and then written back
// to a with no cross-entry reads, so b may be the same matrix as a.
//
// Complexity: O(n·(max(sa,sb)+1)).
func AddScaledBand(g float64, a *Dense, sa int, h float64, b *Dense, sb int) error {
	if err := validateBandPair(a, sa, b, sb); err != nil {
		return bandErrorf("AddScaledBand", err)
	}

	n := a.r
	for i := 0; i < n; i++ {
		jmax := min(max(i+sa, i+sb), n-1)
		for j := i; j <= jmax; j++ {
			a.data[i*n+j] = g*a.data[i*n+j] + h*b.data[i*n+j]
		}
	}

	return nil
}

// AddDiag adds x to every main-diagonal entry of a, in place: a ← a + x·I.
// Complexity: O(n).
func AddDiag(a *Dense, x float64) error {
	if err := ValidateSquare(a); err != nil {
		return bandErrorf("AddDiag", err)
	}

	n := a.r
	for i := 0; i < n; i++ {
		a.data[i*n+i] += x
	}

	return nil
}

// SolveUpperTriangular solves the triangular system u·X = b for X by
// back-substitution, column by column, row n-1 down to 0. u must be square
// upper triangular; only its upper triangle is read.
//
// A pivot u[i][i] of magnitude below minPivot reports ErrSingular rather
// than propagating Inf/NaN into the result.
//
// Aliasing contract: dst must not alias u or b; dst is cleared first.
//
// Complexity: O(n²·m/2) for m columns of b.
func SolveUpperTriangular(u, b, dst *Dense) error {
	if err := ValidateSquare(u); err != nil {
		return bandErrorf("SolveUpperTriangular", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return bandErrorf("SolveUpperTriangular", err)
	}
	if err := ValidateNotNil(dst); err != nil {
		return bandErrorf("SolveUpperTriangular", err)
	}
	if b.r != u.r || dst.r != b.r || dst.c != b.c {
		return bandErrorf("SolveUpperTriangular", ErrDimensionMismatch)
	}

	n := u.r
	m := b.c
	clear(dst.data)
	for j := 0; j < m; j++ {
		for i := n - 1; i >= 0; i-- {
			z := b.data[i*m+j]
			for k := i + 1; k < n; k++ {
				z -= u.data[i*n+k] * dst.data[k*m+j]
			}
			piv := u.data[i*n+i]
			if math.Abs(piv) < minPivot {
				return fmt.Errorf("SolveUpperTriangular: pivot row %d: %w", i, ErrSingular)
			}
			dst.data[i*m+j] = z / piv
		}
	}

	return nil
}
