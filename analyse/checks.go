// Package analyse: the seven check primitives.
//
// Each primitive consumes a coordinate state plus its test-specific
// artifacts and returns a boolean. All are pure, side-effect-free and
// deterministic given a rounding precision; every threshold comparison
// rounds first (qmatrix.Round) so floating-point noise cannot flip a
// classification.

package analyse

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/qsimplex/polytope"
	"github.com/katalvlaran/qsimplex/qmatrix"
	"github.com/katalvlaran/qsimplex/simplex"
)

// KernelCheck reports whether the state's coordinate point lies inside the
// separability enclosure polytope. Membership delegates to the polytope's
// own containment primitive (LP feasibility for V-representations,
// inequality scan for H-representations).
func KernelCheck(cs *simplex.CoordState, poly polytope.Polytope) (bool, error) {
	if cs == nil {
		return false, fmt.Errorf("KernelCheck: %w", ErrNilState)
	}
	inside, err := poly.Contains(cs.Coords)
	if err != nil {
		return false, fmt.Errorf("KernelCheck: %w", err)
	}

	return inside, nil
}

// PPTCheck builds the density matrix of the state under the basis and
// reports whether its partial transpose is positive semidefinite within
// `precision` decimal digits. A negative answer certifies free (NPT)
// entanglement.
func PPTCheck(d int, cs *simplex.CoordState, basis *simplex.StandardBasis, precision int) (bool, error) {
	rho, err := densityMatrix(cs, basis)
	if err != nil {
		return false, fmt.Errorf("PPTCheck: %w", err)
	}
	ok, err := qmatrix.IsPPT(rho, d, precision)
	if err != nil {
		return false, fmt.Errorf("PPTCheck: %w", err)
	}

	return ok, nil
}

// RealignmentCheck reports whether the trace norm of the realigned
// (reshuffled) density matrix, rounded to `precision` digits, exceeds 1 —
// the realignment entanglement criterion.
func RealignmentCheck(d int, cs *simplex.CoordState, basis *simplex.StandardBasis, precision int) (bool, error) {
	rho, err := densityMatrix(cs, basis)
	if err != nil {
		return false, fmt.Errorf("RealignmentCheck: %w", err)
	}
	re, err := qmatrix.Reshuffle(rho, d)
	if err != nil {
		return false, fmt.Errorf("RealignmentCheck: %w", err)
	}
	tn, err := qmatrix.TraceNorm(re)
	if err != nil {
		return false, fmt.Errorf("RealignmentCheck: %w", err)
	}

	return qmatrix.Round(tn, precision) > 1, nil
}

// NumericEWCheck reports whether ANY witness's widened admissible interval
// fails to contain the inner product of the state's coordinates with the
// witness coordinates. Short-circuits on the first violation; list order
// determines which violation is found, not whether one is found.
func NumericEWCheck(cs *simplex.CoordState, witnesses []simplex.BoundedCoordEW, relUncertainty float64) (bool, error) {
	if cs == nil {
		return false, fmt.Errorf("NumericEWCheck: %w", ErrNilState)
	}
	for i, w := range witnesses {
		violated, err := w.Violates(cs.Coords, relUncertainty)
		if err != nil {
			return false, fmt.Errorf("NumericEWCheck: witness %d: %w", i, err)
		}
		if violated {
			return true, nil
		}
	}

	return false, nil
}

// ConcurrenceQPCheck reports whether the quasi-pure concurrence of the
// state, rounded to `precision` digits, is strictly positive.
func ConcurrenceQPCheck(d int, cs *simplex.CoordState, dict *simplex.QPDict, precision int) (bool, error) {
	if cs == nil {
		return false, fmt.Errorf("ConcurrenceQPCheck: %w", ErrNilState)
	}
	c, err := simplex.GetConcurrenceQP(cs.Coords, d, dict)
	if err != nil {
		return false, fmt.Errorf("ConcurrenceQPCheck: %w", err)
	}

	return qmatrix.Round(c, precision) > 0, nil
}

// MUBCheck builds the density matrix and reports whether its summed
// mutual-predictability correlation over the MUB set, rounded to
// `precision` digits, exceeds 2.
func MUBCheck(d int, cs *simplex.CoordState, basis *simplex.StandardBasis, mubs *simplex.MUBSet, precision int) (bool, error) {
	rho, err := densityMatrix(cs, basis)
	if err != nil {
		return false, fmt.Errorf("MUBCheck: %w", err)
	}
	corr, err := simplex.Correlation(d, mubs, rho)
	if err != nil {
		return false, fmt.Errorf("MUBCheck: %w", err)
	}

	return qmatrix.Round(corr, precision) > 2, nil
}

// SpinRepCheck builds the density matrix, computes its coefficients against
// the bipartite spin operator basis via tr(ρ·Bᵢ†), and reports whether the
// sum of the coefficient magnitudes, rounded to `precision` digits, is ≤ 2.
// This direction signals SEPARABILITY, unlike the other checks.
func SpinRepCheck(d int, cs *simplex.CoordState, basis *simplex.StandardBasis, spin *simplex.SpinBasis, precision int) (bool, error) {
	rho, err := densityMatrix(cs, basis)
	if err != nil {
		return false, fmt.Errorf("SpinRepCheck: %w", err)
	}
	var sum float64
	for i := 0; i < spin.Size(); i++ {
		coeff, err := qmatrix.HSInner(rho, spin.Op(i))
		if err != nil {
			return false, fmt.Errorf("SpinRepCheck: op %d: %w", i, err)
		}
		sum += cmplx.Abs(coeff)
	}

	return qmatrix.Round(sum, precision) <= 2, nil
}

// densityMatrix maps a state to its density matrix under the basis.
func densityMatrix(cs *simplex.CoordState, basis *simplex.StandardBasis) (*qmatrix.CDense, error) {
	if cs == nil {
		return nil, ErrNilState
	}
	ds, err := simplex.CreateDensityState(cs, basis)
	if err != nil {
		return nil, err
	}

	return ds.Matrix, nil
}
