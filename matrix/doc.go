// Package matrix provides the dense matrix type and the numeric
// primitives the exponential kernel is built from.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with validated accessors.
//   - Banded arithmetic (MulBand, AddScaledBand, ScaleBand) restricted to
//     upper-banded square matrices, for O(n·s²) products instead of O(n³).
//   - Norm estimators (Norm1, Norm1Bidiag) used for scale selection.
//   - Back-substitution on upper-triangular systems (SolveUpperTriangular).
//   - General dense multiply and LU-based solve (Mul, MulVec, Solve),
//     delegated to gonum as the external linear-algebra collaborator.
//
// All routines are stateless and allocate only call-local scratch, so
// concurrent use on distinct matrices needs no synchronization. Routines
// whose output may alias an input document their aliasing contract
// explicitly and copy defensively where required.
//
// See the ops subpackage for LU/Cholesky/SVD decomposition facades.
package matrix
