// Package analyse: sentinel error set, matched by callers via errors.Is.

package analyse

import "errors"

var (
	// ErrNilState is returned when a nil *CoordState is passed to an
	// orchestrator or check.
	ErrNilState = errors.New("analyse: nil coordinate state")

	// ErrBadDimension is returned when the subsystem dimension is below 2 or
	// the coordinate vector is not d² long.
	ErrBadDimension = errors.New("analyse: coordinates do not match subsystem dimension")

	// ErrSymmetryDisabled is returned by AnalyseSymmetric when the
	// specification does not request symmetry reduction. Configuration
	// error, fatal to the call.
	ErrSymmetryDisabled = errors.New("analyse: symmetry reduction not enabled in specification")
)
