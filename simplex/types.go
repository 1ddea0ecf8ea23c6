// Package simplex: coordinate states and entanglement-class labels.

package simplex

import (
	"fmt"
	"math"
)

// Class is the entanglement class assigned to a coordinate state.
type Class uint8

const (
	// ClassUnknown — no classification has been derived yet.
	ClassUnknown Class = iota

	// ClassSep — separable (inside the kernel polytope or under the
	// spin-representation norm bound).
	ClassSep

	// ClassBound — PPT yet entangled (bound entanglement).
	ClassBound

	// ClassNPT — free entangled: the partial transpose has a negative
	// eigenvalue.
	ClassNPT

	// ClassPPTUnknown — PPT with no further evidence either way.
	ClassPPTUnknown
)

// String renders the canonical class label.
func (c Class) String() string {
	switch c {
	case ClassSep:
		return "SEP"
	case ClassBound:
		return "BOUND"
	case ClassNPT:
		return "NPT"
	case ClassPPTUnknown:
		return "PPT_UNKNOWN"
	default:
		return "UNKNOWN"
	}
}

// CoordState is a point in the magic simplex: an ordered vector of real
// coordinates (length d² for a d×d system) plus its entanglement-class label.
// The label starts at ClassUnknown and is mutated only by the batch
// classifier; each CoordState must have exactly one authoritative owner
// while labels are being written.
type CoordState struct {
	Coords []float64
	Class  Class
}

// NewCoordState validates coords (non-empty, all finite) and wraps them in
// an unlabeled state. The slice is retained, not copied.
// Returns ErrEmptyCoords or ErrNonFinite.
func NewCoordState(coords []float64) (*CoordState, error) {
	if len(coords) == 0 {
		return nil, fmt.Errorf("NewCoordState: %w", ErrEmptyCoords)
	}
	for i, v := range coords {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("NewCoordState: coords[%d]=%v: %w", i, v, ErrNonFinite)
		}
	}

	return &CoordState{Coords: coords, Class: ClassUnknown}, nil
}

// MaxMixedCoords returns the coordinates of the maximally mixed state:
// d² entries of 1/d². Panics on d < 2 (programmer error in tests/fixtures).
func MaxMixedCoords(d int) []float64 {
	if d < 2 {
		panic(fmt.Sprintf("simplex: MaxMixedCoords dimension %d < 2", d))
	}
	n := d * d
	coords := make([]float64, n)
	for i := range coords {
		coords[i] = 1 / float64(n)
	}

	return coords
}
