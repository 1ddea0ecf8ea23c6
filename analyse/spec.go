// Package analyse: analysis specification and artifact bundle.
//
// Specification is pure boolean configuration — which checks to run and
// whether symmetry reduction is requested. Artifacts carries the per-check
// inputs plus the numeric policy that travels with them. Both are plain
// records with documented defaults, validated at orchestrator entry.

package analyse

import (
	"github.com/katalvlaran/qsimplex/polytope"
	"github.com/katalvlaran/qsimplex/qmatrix"
	"github.com/katalvlaran/qsimplex/simplex"
)

// Specification selects the checks of one analysis call. Immutable per call;
// AnalyseSymmetric mutates only its own private working copy while orbit
// evidence accumulates.
type Specification struct {
	Kernel        bool
	SpinRep       bool
	PPT           bool
	Realign       bool
	ConcurrenceQP bool
	MUB           bool
	NumericEW     bool

	// Symmetric requests orbit-amortized analysis (AnalyseSymmetric only).
	Symmetric bool
}

// DefaultSpecification enables all seven checks with symmetry reduction off.
func DefaultSpecification() Specification {
	return Specification{
		Kernel:        true,
		SpinRep:       true,
		PPT:           true,
		Realign:       true,
		ConcurrenceQP: true,
		MUB:           true,
		NumericEW:     true,
	}
}

// Artifacts bundles the per-check analysis objects. A nil (or empty, for
// Witnesses) field marks the artifact as missing: its checks are silently
// skipped and left NotEvaluated. All artifacts are shared read-only.
type Artifacts struct {
	// Basis feeds the density-matrix checks (ppt, realign, mub, spinrep).
	Basis *simplex.StandardBasis

	// Polytope is the separability enclosure for the kernel check.
	Polytope polytope.Polytope

	// SpinBasis is the bipartite operator basis for the spinrep check.
	SpinBasis *simplex.SpinBasis

	// Dict is the quasi-pure concurrence coefficient table.
	Dict *simplex.QPDict

	// MUBs is the mutually unbiased basis set for the mub check.
	MUBs *simplex.MUBSet

	// Witnesses is the numeric entanglement witness list; order determines
	// which violation is found first, not whether one is found.
	Witnesses []simplex.BoundedCoordEW

	// Precision is the decimal rounding applied before every threshold
	// comparison; 0 selects qmatrix.DefaultPrecision.
	Precision int

	// RelUncertainty widens witness intervals by
	// RelUncertainty·(Upper−Lower) on both sides.
	RelUncertainty float64
}

// precision resolves the effective rounding precision.
func (a Artifacts) precision() int {
	if a.Precision <= 0 {
		return qmatrix.DefaultPrecision
	}

	return a.Precision
}
