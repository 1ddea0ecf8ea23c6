// Package simplex: numeric entanglement witnesses over simplex coordinates.

package simplex

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// BoundedCoordEW is an entanglement witness in coordinate form: the inner
// product ⟨w,x⟩ of a state's coordinates with the witness coordinates is
// admissible inside [Lower, Upper]; a value outside the (tolerance-widened)
// interval certifies entanglement.
type BoundedCoordEW struct {
	Coords []float64
	Lower  float64
	Upper  float64
}

// NewBoundedCoordEW validates the witness (non-empty finite coords, finite
// ordered bounds). Returns ErrEmptyCoords, ErrNonFinite or ErrBadBounds.
func NewBoundedCoordEW(coords []float64, lower, upper float64) (BoundedCoordEW, error) {
	if len(coords) == 0 {
		return BoundedCoordEW{}, fmt.Errorf("NewBoundedCoordEW: %w", ErrEmptyCoords)
	}
	for i, v := range coords {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return BoundedCoordEW{}, fmt.Errorf("NewBoundedCoordEW: coords[%d]=%v: %w", i, v, ErrNonFinite)
		}
	}
	if math.IsNaN(lower) || math.IsInf(lower, 0) || math.IsNaN(upper) || math.IsInf(upper, 0) {
		return BoundedCoordEW{}, fmt.Errorf("NewBoundedCoordEW: bounds [%v,%v]: %w", lower, upper, ErrNonFinite)
	}
	if lower > upper {
		return BoundedCoordEW{}, fmt.Errorf("NewBoundedCoordEW: [%v,%v]: %w", lower, upper, ErrBadBounds)
	}

	return BoundedCoordEW{Coords: coords, Lower: lower, Upper: upper}, nil
}

// Violates reports whether ⟨w,x⟩ falls outside the widened admissible
// interval [Lower−tol, Upper+tol] with tol = relUncertainty·(Upper−Lower).
// Returns ErrDimensionMismatch when coords length differs from the witness.
func (w BoundedCoordEW) Violates(coords []float64, relUncertainty float64) (bool, error) {
	if len(coords) != len(w.Coords) {
		return false, fmt.Errorf("Violates: %d coords vs witness %d: %w",
			len(coords), len(w.Coords), ErrDimensionMismatch)
	}
	v := floats.Dot(w.Coords, coords)
	tol := relUncertainty * (w.Upper - w.Lower)

	return v < w.Lower-tol || v > w.Upper+tol, nil
}
