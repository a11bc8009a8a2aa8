// Package matrix_test: tests for the banded kernels, checked against the
// general dense primitives on the same data.
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matexp/matrix"
)

// randBanded builds an n×n upper-banded matrix with s superdiagonals and
// uniform entries in [-1, 1).
func randBanded(t *testing.T, rng *rand.Rand, n, s int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := i; j <= i+s && j < n; j++ {
			require.NoError(t, m.Set(i, j, 2*rng.Float64()-1))
		}
	}

	return m
}

// TestMulBandMatchesDenseMul verifies the banded product against the
// general dense multiply for several bandwidth combinations.
func TestMulBandMatchesDenseMul(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const n = 12
	for _, bw := range [][2]int{{1, 1}, {2, 2}, {1, 3}, {0, 2}} {
		sa, sb := bw[0], bw[1]
		a := randBanded(t, rng, n, sa)
		b := randBanded(t, rng, n, sb)

		want, err := matrix.Mul(a, b) // dense reference
		require.NoError(t, err)

		got, err := matrix.NewDense(n, n)
		require.NoError(t, err)
		require.NoError(t, matrix.MulBand(a, sa, b, sb, got))

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				w, _ := want.At(i, j)
				g, _ := got.At(i, j)
				assert.InDelta(t, w, g, 1e-14, "entry (%d,%d) sa=%d sb=%d", i, j, sa, sb)
			}
		}
	}
}

// TestMulBandBandwidthGrowth checks the exact sa+sb invariant: the product
// of bandwidths sa+1 and sb+1 occupies every diagonal up to sa+sb and
// nothing beyond it.
func TestMulBandBandwidthGrowth(t *testing.T) {
	const n, sa, sb = 10, 1, 2

	// All-ones bands make every in-band product entry strictly positive.
	ones := func(s int) *matrix.Dense {
		m, err := matrix.NewDense(n, n)
		require.NoError(t, err)
		for i := 0; i < n; i++ {
			for j := i; j <= i+s && j < n; j++ {
				require.NoError(t, m.Set(i, j, 1))
			}
		}
		return m
	}
	a, b := ones(sa), ones(sb)

	c, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	require.NoError(t, matrix.MulBand(a, sa, b, sb, c))

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, _ := c.At(i, j)
			switch {
			case j < i || j > i+sa+sb:
				assert.Zero(t, v, "entry (%d,%d) outside bandwidth %d must be zero", i, j, sa+sb)
			default:
				assert.Positive(t, v, "entry (%d,%d) inside the band must be filled", i, j)
			}
		}
	}
}

// TestMulBandAliasing confirms that dst may be the same matrix as an input:
// the aliased operand is snapshotted before the destination is cleared.
func TestMulBandAliasing(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	const n, s = 8, 1
	a := randBanded(t, rng, n, s)

	fresh, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	require.NoError(t, matrix.MulBand(a, s, a, s, fresh)) // separate dst

	inPlace := a.Clone()
	require.NoError(t, matrix.MulBand(inPlace, s, inPlace, s, inPlace)) // dst == both inputs

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			w, _ := fresh.At(i, j)
			g, _ := inPlace.At(i, j)
			assert.Equal(t, w, g, "aliased product must match fresh-destination product at (%d,%d)", i, j)
		}
	}
}

// TestAddScaledBand verifies g·a + h·b over the union of both bands.
func TestAddScaledBand(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	const n = 9
	a := randBanded(t, rng, n, 1)
	b := randBanded(t, rng, n, 3)
	want, err := matrix.AddScaled(2, a, -0.5, b) // dense reference on the same data
	require.NoError(t, err)

	got := a.Clone()
	require.NoError(t, matrix.AddScaledBand(2, got, 1, -0.5, b, 3))

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			w, _ := want.At(i, j)
			g, _ := got.At(i, j)
			assert.InDelta(t, w, g, 1e-15, "entry (%d,%d)", i, j)
		}
	}
}

// TestScaleBandTouchesOnlyBand ensures entries outside the declared band
// are left untouched.
func TestScaleBandTouchesOnlyBand(t *testing.T) {
	m, err := matrix.NewDenseOf([][]float64{
		{1, 1, 7},
		{0, 1, 1},
		{0, 0, 1},
	})
	require.NoError(t, err)

	require.NoError(t, matrix.ScaleBand(m, 1, 10)) // band = diagonal + 1 superdiagonal

	v, _ := m.At(0, 2)
	assert.Equal(t, 7.0, v, "entry outside the band must not be scaled")
	v, _ = m.At(0, 0)
	assert.Equal(t, 10.0, v, "diagonal entry must be scaled")
	v, _ = m.At(1, 2)
	assert.Equal(t, 10.0, v, "first superdiagonal must be scaled")
}

// TestAddDiag verifies the diagonal shift used by balancing.
func TestAddDiag(t *testing.T) {
	m, err := matrix.NewDenseOf([][]float64{{1, 2}, {0, 3}})
	require.NoError(t, err)
	require.NoError(t, matrix.AddDiag(m, -2))

	d0, _ := m.At(0, 0)
	d1, _ := m.At(1, 1)
	off, _ := m.At(0, 1)
	assert.Equal(t, -1.0, d0)
	assert.Equal(t, 1.0, d1)
	assert.Equal(t, 2.0, off, "off-diagonal entries must be untouched")
}

// TestSolveUpperTriangular checks back-substitution on a known system and
// round-trips the result through MulBand.
func TestSolveUpperTriangular(t *testing.T) {
	u, err := matrix.NewDenseOf([][]float64{
		{2, 1, 0},
		{0, 3, -1},
		{0, 0, 4},
	})
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(4))
	b := randBanded(t, rng, 3, 2) // any upper-triangular right-hand side

	x, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	require.NoError(t, matrix.SolveUpperTriangular(u, b, x))

	// u·x must reproduce b
	back, err := matrix.Mul(u, x)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			w, _ := b.At(i, j)
			g, _ := back.At(i, j)
			assert.InDelta(t, w, g, 1e-14, "U·X must equal B at (%d,%d)", i, j)
		}
	}
}

// TestSolveUpperTriangularSingular ensures a zero pivot reports ErrSingular
// instead of propagating Inf/NaN.
func TestSolveUpperTriangularSingular(t *testing.T) {
	u, err := matrix.NewDenseOf([][]float64{
		{1, 5},
		{0, 0}, // degenerate pivot
	})
	require.NoError(t, err)
	b, err := matrix.NewDenseOf([][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)
	x, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	err = matrix.SolveUpperTriangular(u, b, x)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// TestNorm1Bidiag confirms the specialized bidiagonal norm equals the
// general 1-norm on a bidiagonal matrix, and departs from it only outside
// the bidiagonal band.
func TestNorm1Bidiag(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	m := randBanded(t, rng, 20, 1)

	assert.InDelta(t, matrix.Norm1(m), matrix.Norm1Bidiag(m), 1e-15,
		"specialized norm must be exact for the bidiagonal shape")
}

// TestNorm1 checks the maximum-absolute-column-sum definition by hand.
func TestNorm1(t *testing.T) {
	m, err := matrix.NewDenseOf([][]float64{
		{1, -4},
		{-2, 3},
	})
	require.NoError(t, err)

	assert.Equal(t, 7.0, matrix.Norm1(m)) // |−4| + |3| = 7 in column 1
	assert.Equal(t, 0.0, matrix.Norm1(nil))
}

// TestBandValidation exercises the shared precondition checks.
func TestBandValidation(t *testing.T) {
	sq, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	rect, err := matrix.NewDense(3, 2)
	require.NoError(t, err)

	require.ErrorIs(t, matrix.MulBand(rect, 1, sq, 1, sq), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.MulBand(sq, -1, sq, 1, sq), matrix.ErrBadShape)
	require.ErrorIs(t, matrix.ScaleBand(nil, 1, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.AddScaledBand(1, sq, 1, 1, rect, 1), matrix.ErrNonSquare)

	other, err := matrix.NewDense(4, 4)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.MulBand(sq, 1, other, 1, sq), matrix.ErrDimensionMismatch)
}
