package classify

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qsimplex/analyse"
	"github.com/katalvlaran/qsimplex/simplex"
)

// ErrLabelConflict is the sentinel behind every ConflictError; match with
// errors.Is, then assert *ConflictError for the offending state.
var ErrLabelConflict = errors.New("classify: conflicting entanglement labels")

// ConflictError reports a batch item whose existing non-UNKNOWN label
// disagrees with its freshly derived non-UNKNOWN label.
type ConflictError struct {
	State    *simplex.CoordState
	Existing simplex.Class
	Derived  simplex.Class
}

// Error renders the conflicting pair.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("classify: state labeled %s but derived %s", e.Existing, e.Derived)
}

// Unwrap ties the structured error to the ErrLabelConflict sentinel.
func (e *ConflictError) Unwrap() error { return ErrLabelConflict }

// Classify derives the entanglement class of one analysis result via the
// fixed precedence chain (see package doc). Pure: the state's label is not
// touched. A nil result classifies as UNKNOWN.
func Classify(a *analyse.AnalysedCoordState) simplex.Class {
	if a == nil {
		return simplex.ClassUnknown
	}

	// Rule 1: an evaluated negative PPT certifies free entanglement and
	// outranks everything, including a positive kernel outcome.
	if a.PPT.False() {
		return simplex.ClassNPT
	}

	// Rule 2: kernel membership and the spin-representation bound are
	// trusted unconditionally as separability evidence.
	if a.Kernel.True() || a.SpinRep.True() {
		return simplex.ClassSep
	}

	// Rule 3: PPT holds; any single entanglement witness upgrades the
	// indeterminate PPT class to bound entanglement.
	if a.PPT.True() {
		if a.Realign.True() || a.ConcurrenceQP.True() || a.MUB.True() || a.NumericEW.True() {
			return simplex.ClassBound
		}

		return simplex.ClassPPTUnknown
	}

	return simplex.ClassUnknown
}

// ClassifyAll derives and applies labels for a batch of analysis results,
// mutating the underlying CoordState labels in place and returning the same
// slice.
//
// Per item:
//   - existing label UNKNOWN: adopt the derived label (when itself not
//     UNKNOWN);
//   - existing label equal to the derived one, or derived UNKNOWN: no-op;
//   - existing non-UNKNOWN label disagreeing with a non-UNKNOWN derived
//     label: fail with *ConflictError — the batch stops at the offending
//     item, with earlier items already labeled.
//
// Each CoordState must have exactly one authoritative owner during the call;
// nil items are skipped.
func ClassifyAll(states []*analyse.AnalysedCoordState) ([]*analyse.AnalysedCoordState, error) {
	for _, a := range states {
		if a == nil || a.State == nil {
			continue
		}
		derived := Classify(a)
		if derived == simplex.ClassUnknown {
			continue
		}
		switch a.State.Class {
		case simplex.ClassUnknown:
			a.State.Class = derived
		case derived:
			// already consistent
		default:
			return nil, &ConflictError{State: a.State, Existing: a.State.Class, Derived: derived}
		}
	}

	return states, nil
}
