// Package qmatrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// qmatrix package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions; panics are reserved for programmer errors (indexing).

package qmatrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	// Constructors must validate before allocation.
	ErrBadShape = errors.New("qmatrix: invalid shape")

	// ErrNilMatrix indicates that a nil *CDense (receiver or argument) was used.
	ErrNilMatrix = errors.New("qmatrix: nil matrix")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add over different shapes, Mul where a.Cols != b.Rows, or a
	// bipartite operation over a matrix that is not d²×d².
	ErrDimensionMismatch = errors.New("qmatrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("qmatrix: matrix is not square")

	// ErrNotHermitian signals that a matrix expected to be Hermitian violated
	// a[i,j] == conj(a[j,i]) within the configured tolerance.
	ErrNotHermitian = errors.New("qmatrix: matrix is not Hermitian within tol")

	// ErrEigenFailed indicates that the Jacobi routine failed to bring the
	// off-diagonal mass under tolerance within maxIter rotations.
	ErrEigenFailed = errors.New("qmatrix: eigen decomposition failed")
)
