// Package analyse: tri-state outcomes and the analysis result record.

package analyse

import "github.com/katalvlaran/qsimplex/simplex"

// Outcome is the tri-state result of one check: NotEvaluated is distinct
// from both boolean outcomes and must never collapse into Negative — the
// classifier's precedence logic depends on the distinction.
type Outcome uint8

const (
	// NotEvaluated — the check was disabled or its artifacts were missing.
	NotEvaluated Outcome = iota

	// Negative — the check ran and returned false.
	Negative

	// Positive — the check ran and returned true.
	Positive
)

// OutcomeOf lifts a computed boolean into an evaluated Outcome.
func OutcomeOf(b bool) Outcome {
	if b {
		return Positive
	}

	return Negative
}

// Evaluated reports whether the check actually ran.
func (o Outcome) Evaluated() bool { return o != NotEvaluated }

// True reports whether the check ran and returned true.
func (o Outcome) True() bool { return o == Positive }

// False reports whether the check ran and returned false.
func (o Outcome) False() bool { return o == Negative }

// String renders the tri-state for diagnostics.
func (o Outcome) String() string {
	switch o {
	case Positive:
		return "true"
	case Negative:
		return "false"
	default:
		return "not-evaluated"
	}
}

// AnalysedCoordState is the result record of one analysis call: the source
// state plus one tri-state outcome per check.
type AnalysedCoordState struct {
	State *simplex.CoordState

	Kernel        Outcome
	SpinRep       Outcome
	PPT           Outcome
	Realign       Outcome
	ConcurrenceQP Outcome
	MUB           Outcome
	NumericEW     Outcome
}
