// Package analyse: the symmetry-reduced orchestrator.

package analyse

import (
	"fmt"

	"github.com/katalvlaran/qsimplex/simplex"
	"github.com/katalvlaran/qsimplex/symmetry"
)

// AnalyseSymmetric amortizes the check battery over the symmetry orbit of a
// state. Several checks are invariant or monotone under coordinate
// relabeling, so only enough orbit members need evaluating to pin each
// check down.
//
// Algorithm:
//  1. Require spec.Symmetric (ErrSymmetryDisabled otherwise).
//  2. Expand the orbit via symmetry.Orbit (deduplicated unless the
//     coordinates are degenerate; pass the identity among syms when the
//     original state itself must be evaluated).
//  3. Keep a private working copy of the specification and a per-check
//     accumulator, initially NotEvaluated.
//  4. Per orbit member, run Analyse with the working specification — checks
//     already resolved are thereby skipped — and merge:
//     • kernel, ppt: orbit invariants, the first evaluated outcome is the
//     group truth and turns the flag off;
//     • spinrep, realign, concurrenceQP, mub, numericEW: Positive is
//     permanently sticky (one member's witness certifies the class) and
//     turns the flag off; Negative is provisional — recorded, but the
//     flag stays on so a later member may still refine it to Positive.
//  5. Stop early once every check enabled in the original specification is
//     resolved.
//
// The result is keyed by the ORIGINAL (un-permuted) state. A check never
// resolved across the whole orbit stays NotEvaluated.
//
// Errors:
//   - ErrSymmetryDisabled, ErrNilState, symmetry.ErrBadPermutation;
//     member analysis failures propagate wrapped.
func AnalyseSymmetric(d int, cs *simplex.CoordState, spec Specification, art Artifacts, syms []symmetry.Permutation) (*AnalysedCoordState, error) {
	if !spec.Symmetric {
		return nil, fmt.Errorf("AnalyseSymmetric: %w", ErrSymmetryDisabled)
	}
	if cs == nil {
		return nil, fmt.Errorf("AnalyseSymmetric: %w", ErrNilState)
	}

	orbit, err := symmetry.Orbit(cs.Coords, syms)
	if err != nil {
		return nil, fmt.Errorf("AnalyseSymmetric: %w", err)
	}

	working := spec
	working.Symmetric = false // orbit members are analysed plainly
	acc := &AnalysedCoordState{State: cs}

	for _, image := range orbit {
		member := &simplex.CoordState{Coords: image, Class: simplex.ClassUnknown}
		res, err := Analyse(d, member, working, art)
		if err != nil {
			return nil, fmt.Errorf("AnalyseSymmetric: %w", err)
		}

		mergeInvariant(res.Kernel, &acc.Kernel, &working.Kernel)
		mergeInvariant(res.PPT, &acc.PPT, &working.PPT)
		mergeSticky(res.SpinRep, &acc.SpinRep, &working.SpinRep)
		mergeSticky(res.Realign, &acc.Realign, &working.Realign)
		mergeSticky(res.ConcurrenceQP, &acc.ConcurrenceQP, &working.ConcurrenceQP)
		mergeSticky(res.MUB, &acc.MUB, &working.MUB)
		mergeSticky(res.NumericEW, &acc.NumericEW, &working.NumericEW)

		if resolved(spec, working) {
			break
		}
	}

	return acc, nil
}

// mergeInvariant adopts the first evaluated outcome as the group truth for
// an orbit-invariant check and disables further evaluation.
func mergeInvariant(member Outcome, group *Outcome, flag *bool) {
	if !member.Evaluated() || group.Evaluated() {
		return
	}
	*group = member
	*flag = false
}

// mergeSticky merges an entanglement-signaling outcome: Positive resolves
// the group and disables the check; Negative is adopted provisionally while
// the search continues.
func mergeSticky(member Outcome, group *Outcome, flag *bool) {
	if !member.Evaluated() {
		return
	}
	if member == Positive {
		*group = Positive
		*flag = false

		return
	}
	if *group != Positive {
		*group = Negative
	}
}

// resolved reports whether every check enabled in the original specification
// has been turned off in the working copy.
func resolved(orig, working Specification) bool {
	if orig.Kernel && working.Kernel {
		return false
	}
	if orig.SpinRep && working.SpinRep {
		return false
	}
	if orig.PPT && working.PPT {
		return false
	}
	if orig.Realign && working.Realign {
		return false
	}
	if orig.ConcurrenceQP && working.ConcurrenceQP {
		return false
	}
	if orig.MUB && working.MUB {
		return false
	}
	if orig.NumericEW && working.NumericEW {
		return false
	}

	return true
}
