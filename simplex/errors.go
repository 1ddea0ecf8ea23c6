// Package simplex: sentinel error set, matched by callers via errors.Is.

package simplex

import "errors"

var (
	// ErrEmptyCoords is returned when a coordinate vector has no entries.
	ErrEmptyCoords = errors.New("simplex: empty coordinate vector")

	// ErrNonFinite is returned when a coordinate or bound is NaN or ±Inf.
	ErrNonFinite = errors.New("simplex: NaN or Inf encountered")

	// ErrDimensionMismatch indicates that a vector or matrix does not match
	// the d²-sized layout implied by the subsystem dimension.
	ErrDimensionMismatch = errors.New("simplex: dimension mismatch")

	// ErrBadDimension is returned when a subsystem dimension is below 2.
	ErrBadDimension = errors.New("simplex: subsystem dimension must be >= 2")

	// ErrNonPrimeDim is returned by MUB construction for non-prime dimensions,
	// where the Wootters–Fields construction does not apply.
	ErrNonPrimeDim = errors.New("simplex: MUB construction requires a prime dimension")

	// ErrNilArtifact indicates that a nil basis, dictionary or MUB set was
	// passed where a constructed artifact is required.
	ErrNilArtifact = errors.New("simplex: nil artifact")

	// ErrBadBounds is returned when a witness interval has Lower > Upper.
	ErrBadBounds = errors.New("simplex: witness lower bound above upper bound")
)
