// Package ops provides decomposition facades over gonum for the matexp
// module: LU-based linear solves, Cholesky factorization, and SVD-based
// principal-components decomposition.
//
// These routines sit next to the exponential kernel the way they do in the
// reference numeric stack: the kernel itself only consumes the LU solve,
// while Cholesky and PCA serve model set-up code in callers. None of the
// underlying decompositions is reimplemented here; gonum is the
// linear-algebra collaborator throughout.
package ops
