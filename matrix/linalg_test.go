// Package matrix_test: tests for the general dense kernels delegated to
// the linear-algebra collaborator.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matexp/matrix"
)

// TestMulKnownProduct verifies the dense multiply on a hand-checked 2×2 case.
func TestMulKnownProduct(t *testing.T) {
	a, err := matrix.NewDenseOf([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := matrix.NewDenseOf([][]float64{{5, 6}, {7, 8}})
	require.NoError(t, err)

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)

	want := [][]float64{{19, 22}, {43, 50}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, _ := c.At(i, j)
			assert.Equal(t, want[i][j], v, "entry (%d,%d)", i, j)
		}
	}
}

// TestMulDimensionMismatch ensures incompatible shapes fail fast.
func TestMulDimensionMismatch(t *testing.T) {
	a, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	b, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMulVec verifies the matrix-vector product and its length check.
func TestMulVec(t *testing.T) {
	a, err := matrix.NewDenseOf([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	y, err := matrix.MulVec(a, []float64{1, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -1}, y)

	_, err = matrix.MulVec(a, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestSolveKnownSystem solves A·X = B with a known answer and round-trips it.
func TestSolveKnownSystem(t *testing.T) {
	a, err := matrix.NewDenseOf([][]float64{{2, 0}, {0, 4}})
	require.NoError(t, err)
	b, err := matrix.NewDenseOf([][]float64{{2, 4}, {8, 16}})
	require.NoError(t, err)

	x, err := matrix.Solve(a, b)
	require.NoError(t, err)

	want := [][]float64{{1, 2}, {2, 4}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, _ := x.At(i, j)
			assert.InDelta(t, want[i][j], v, 1e-14, "entry (%d,%d)", i, j)
		}
	}
}

// TestSolveSingular maps the collaborator's singularity report onto the
// package sentinel.
func TestSolveSingular(t *testing.T) {
	a, err := matrix.NewDenseOf([][]float64{{1, 2}, {2, 4}}) // rank 1
	require.NoError(t, err)
	b, err := matrix.NewDenseOf([][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)

	_, err = matrix.Solve(a, b)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// TestAddScaledAndScale covers the elementwise kernels.
func TestAddScaledAndScale(t *testing.T) {
	a, err := matrix.NewDenseOf([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := matrix.NewDenseOf([][]float64{{10, 20}, {30, 40}})
	require.NoError(t, err)

	c, err := matrix.AddScaled(2, a, 0.1, b)
	require.NoError(t, err)
	v, _ := c.At(1, 0)
	assert.InDelta(t, 9.0, v, 1e-15) // 2·3 + 0.1·30

	orig, _ := a.At(1, 0)
	assert.Equal(t, 3.0, orig, "AddScaled must not mutate its inputs")

	require.NoError(t, matrix.Scale(a, -1))
	v, _ = a.At(0, 1)
	assert.Equal(t, -2.0, v)

	_, err = matrix.AddScaled(1, a, 1, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = matrix.AddScaled(1, a, 1, rect)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestTrace verifies the diagonal sum used by balancing.
func TestTrace(t *testing.T) {
	m, err := matrix.NewDenseOf([][]float64{{-2, 1}, {0, -3}})
	require.NoError(t, err)
	assert.Equal(t, -5.0, matrix.Trace(m))
}
