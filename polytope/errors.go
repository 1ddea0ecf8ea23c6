// Package polytope: sentinel error set, matched by callers via errors.Is.

package polytope

import "errors"

var (
	// ErrEmptyPolytope is returned when a polytope is built with no vertices
	// or no half-spaces.
	ErrEmptyPolytope = errors.New("polytope: empty polytope")

	// ErrDimensionMismatch indicates ragged vertex data, inconsistent
	// half-space data, or a query point of the wrong dimension.
	ErrDimensionMismatch = errors.New("polytope: dimension mismatch")

	// ErrNonFinite is returned when polytope data or a query point contains
	// NaN or ±Inf.
	ErrNonFinite = errors.New("polytope: NaN or Inf encountered")

	// ErrLPFailed wraps an LP solver failure that is neither feasibility nor
	// unboundedness (e.g. a singular basis); the membership question is then
	// undecided and surfaced to the caller.
	ErrLPFailed = errors.New("polytope: LP solve failed")
)
