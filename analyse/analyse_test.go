package analyse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qsimplex/analyse"
	"github.com/katalvlaran/qsimplex/polytope"
	"github.com/katalvlaran/qsimplex/simplex"
)

// fullArtifacts assembles the complete artifact bundle for the 3x3 system:
// Weyl basis, probability-simplex enclosure, spin basis, variance
// concurrence table, complete MUB set and one satisfied witness.
func fullArtifacts(t *testing.T) analyse.Artifacts {
	t.Helper()

	basis, err := simplex.NewWeylBasis(3)
	require.NoError(t, err)
	spin, err := simplex.NewSpinBasis(3)
	require.NoError(t, err)
	mubs, err := simplex.NewMUBSet(3)
	require.NoError(t, err)

	vertices := make([][]float64, 9)
	for i := range vertices {
		vertices[i] = make([]float64, 9)
		vertices[i][i] = 1
	}
	poly, err := polytope.NewVPolytope(vertices)
	require.NoError(t, err)

	ones := make([]float64, 9)
	for i := range ones {
		ones[i] = 1
	}
	w, err := simplex.NewBoundedCoordEW(ones, 0.5, 1.5)
	require.NoError(t, err)

	return analyse.Artifacts{
		Basis:     basis,
		Polytope:  poly,
		SpinBasis: spin,
		Dict:      simplex.NewVarianceQPDict(9),
		MUBs:      mubs,
		Witnesses: []simplex.BoundedCoordEW{w},
	}
}

// maxMixedState returns the maximally mixed 3x3 coordinate state.
func maxMixedState(t *testing.T) *simplex.CoordState {
	t.Helper()
	cs, err := simplex.NewCoordState(simplex.MaxMixedCoords(3))
	require.NoError(t, err)

	return cs
}

// TestAnalyse_MaxMixedAllChecks runs the full battery on the maximally
// mixed state: separable by kernel and spinrep, PPT, and negative on every
// entanglement-signaling check.
func TestAnalyse_MaxMixedAllChecks(t *testing.T) {
	res, err := analyse.Analyse(3, maxMixedState(t), analyse.DefaultSpecification(), fullArtifacts(t))
	require.NoError(t, err)

	assert.Equal(t, analyse.Positive, res.Kernel, "barycenter lies in the enclosure")
	assert.Equal(t, analyse.Positive, res.SpinRep, "coefficient sum 0 ≤ 2")
	assert.Equal(t, analyse.Positive, res.PPT, "I/9 is PPT")
	assert.Equal(t, analyse.Negative, res.Realign, "reshuffled trace norm 1/3 ≤ 1")
	assert.Equal(t, analyse.Negative, res.ConcurrenceQP, "variance form vanishes")
	assert.Equal(t, analyse.Negative, res.MUB, "correlation 4/3 ≤ 2")
	assert.Equal(t, analyse.Negative, res.NumericEW, "⟨w,x⟩ = 1 inside [0.5, 1.5]")
}

// TestAnalyse_MissingArtifactsSkip verifies the partial-evaluation
// contract: enabled checks with absent artifacts stay NotEvaluated, the
// rest still run.
func TestAnalyse_MissingArtifactsSkip(t *testing.T) {
	basis, err := simplex.NewWeylBasis(3)
	require.NoError(t, err)

	res, err := analyse.Analyse(3, maxMixedState(t), analyse.DefaultSpecification(),
		analyse.Artifacts{Basis: basis})
	require.NoError(t, err)

	assert.Equal(t, analyse.NotEvaluated, res.Kernel, "no polytope")
	assert.Equal(t, analyse.NotEvaluated, res.SpinRep, "no spin basis")
	assert.Equal(t, analyse.NotEvaluated, res.ConcurrenceQP, "no dictionary")
	assert.Equal(t, analyse.NotEvaluated, res.MUB, "no MUB set")
	assert.Equal(t, analyse.NotEvaluated, res.NumericEW, "no witnesses")
	assert.Equal(t, analyse.Positive, res.PPT, "basis-only checks still run")
	assert.Equal(t, analyse.Negative, res.Realign)
}

// TestAnalyse_DisabledFlagsSkip verifies that artifacts alone never trigger
// a check — the specification flag gates it.
func TestAnalyse_DisabledFlagsSkip(t *testing.T) {
	spec := analyse.Specification{PPT: true}

	res, err := analyse.Analyse(3, maxMixedState(t), spec, fullArtifacts(t))
	require.NoError(t, err)

	assert.Equal(t, analyse.Positive, res.PPT)
	assert.Equal(t, analyse.NotEvaluated, res.Kernel)
	assert.Equal(t, analyse.NotEvaluated, res.SpinRep)
	assert.Equal(t, analyse.NotEvaluated, res.Realign)
	assert.Equal(t, analyse.NotEvaluated, res.ConcurrenceQP)
	assert.Equal(t, analyse.NotEvaluated, res.MUB)
	assert.Equal(t, analyse.NotEvaluated, res.NumericEW)
}

// TestAnalyse_Idempotent verifies that re-running with identical inputs
// yields an identical result record.
func TestAnalyse_Idempotent(t *testing.T) {
	cs := maxMixedState(t)
	art := fullArtifacts(t)
	spec := analyse.DefaultSpecification()

	first, err := analyse.Analyse(3, cs, spec, art)
	require.NoError(t, err)
	second, err := analyse.Analyse(3, cs, spec, art)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestAnalyse_InputGuards covers the nil-state and dimension validation.
func TestAnalyse_InputGuards(t *testing.T) {
	_, err := analyse.Analyse(3, nil, analyse.DefaultSpecification(), analyse.Artifacts{})
	assert.ErrorIs(t, err, analyse.ErrNilState)

	cs, err := simplex.NewCoordState([]float64{1, 0, 0})
	require.NoError(t, err)
	_, err = analyse.Analyse(3, cs, analyse.DefaultSpecification(), analyse.Artifacts{})
	assert.ErrorIs(t, err, analyse.ErrBadDimension, "3 coords for d=3 (want 9)")
}

// TestOutcome_TriState pins the tri-state semantics the classifier relies on.
func TestOutcome_TriState(t *testing.T) {
	assert.False(t, analyse.NotEvaluated.Evaluated())
	assert.False(t, analyse.NotEvaluated.True())
	assert.False(t, analyse.NotEvaluated.False(), "not-evaluated is NOT false")

	assert.True(t, analyse.OutcomeOf(true).True())
	assert.True(t, analyse.OutcomeOf(false).False())
	assert.Equal(t, "not-evaluated", analyse.NotEvaluated.String())
	assert.Equal(t, "true", analyse.Positive.String())
	assert.Equal(t, "false", analyse.Negative.String())
}
