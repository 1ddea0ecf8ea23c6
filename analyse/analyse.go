// Package analyse: the plain (non-symmetric) analysis orchestrator.

package analyse

import (
	"fmt"

	"github.com/katalvlaran/qsimplex/simplex"
)

// Analyse runs the subset of check primitives enabled by the specification
// over one coordinate state.
//
// Contract:
//   - A check runs iff its Specification flag is true AND every artifact it
//     needs is present in art; otherwise its Outcome stays NotEvaluated.
//     A missing artifact is a deliberate partial-evaluation path, never an
//     error and never a default false.
//   - Checks are evaluated independently, in fixed order, with no
//     cross-check short-circuiting.
//
// Inputs:
//   - d: subsystem dimension (coords must be d² long).
//   - cs: the coordinate state (read-only here; its label is untouched).
//   - spec: which checks to run.
//   - art: artifact bundle plus numeric policy.
//
// Returns:
//   - *AnalysedCoordState keyed by cs, one tri-state Outcome per check.
//
// Errors:
//   - ErrNilState, ErrBadDimension; check-internal failures propagate
//     wrapped and abort the call.
//
// Idempotent: identical inputs yield identical outputs.
func Analyse(d int, cs *simplex.CoordState, spec Specification, art Artifacts) (*AnalysedCoordState, error) {
	if cs == nil {
		return nil, fmt.Errorf("Analyse: %w", ErrNilState)
	}
	if d < 2 || len(cs.Coords) != d*d {
		return nil, fmt.Errorf("Analyse: %d coords for d=%d: %w", len(cs.Coords), d, ErrBadDimension)
	}

	out := &AnalysedCoordState{State: cs}
	prec := art.precision()

	if spec.Kernel && art.Polytope != nil {
		inside, err := KernelCheck(cs, art.Polytope)
		if err != nil {
			return nil, fmt.Errorf("Analyse: %w", err)
		}
		out.Kernel = OutcomeOf(inside)
	}

	if spec.SpinRep && art.Basis != nil && art.SpinBasis != nil {
		sep, err := SpinRepCheck(d, cs, art.Basis, art.SpinBasis, prec)
		if err != nil {
			return nil, fmt.Errorf("Analyse: %w", err)
		}
		out.SpinRep = OutcomeOf(sep)
	}

	if spec.PPT && art.Basis != nil {
		ppt, err := PPTCheck(d, cs, art.Basis, prec)
		if err != nil {
			return nil, fmt.Errorf("Analyse: %w", err)
		}
		out.PPT = OutcomeOf(ppt)
	}

	if spec.Realign && art.Basis != nil {
		ent, err := RealignmentCheck(d, cs, art.Basis, prec)
		if err != nil {
			return nil, fmt.Errorf("Analyse: %w", err)
		}
		out.Realign = OutcomeOf(ent)
	}

	if spec.ConcurrenceQP && art.Dict != nil {
		ent, err := ConcurrenceQPCheck(d, cs, art.Dict, prec)
		if err != nil {
			return nil, fmt.Errorf("Analyse: %w", err)
		}
		out.ConcurrenceQP = OutcomeOf(ent)
	}

	if spec.MUB && art.Basis != nil && art.MUBs != nil {
		ent, err := MUBCheck(d, cs, art.Basis, art.MUBs, prec)
		if err != nil {
			return nil, fmt.Errorf("Analyse: %w", err)
		}
		out.MUB = OutcomeOf(ent)
	}

	if spec.NumericEW && len(art.Witnesses) > 0 {
		ent, err := NumericEWCheck(cs, art.Witnesses, art.RelUncertainty)
		if err != nil {
			return nil, fmt.Errorf("Analyse: %w", err)
		}
		out.NumericEW = OutcomeOf(ent)
	}

	return out, nil
}
