package simplex_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qsimplex/qmatrix"
	"github.com/katalvlaran/qsimplex/simplex"
)

// TestNewGellMann_Properties verifies the defining algebra of the
// generalized Gell-Mann set: d²−1 traceless Hermitian operators with
// tr(λᵢ·λⱼ†) = 2δᵢⱼ.
func TestNewGellMann_Properties(t *testing.T) {
	for _, d := range []int{2, 3} {
		gm, err := simplex.NewGellMann(d)
		require.NoError(t, err)
		require.Len(t, gm, d*d-1)

		for i, a := range gm {
			tr, err := qmatrix.Trace(a)
			require.NoError(t, err)
			assert.InDelta(t, 0.0, cmplx.Abs(tr), 1e-12, "traceless (d=%d, op %d)", d, i)

			for p := 0; p < d; p++ {
				for q := 0; q < d; q++ {
					assert.InDelta(t, 0.0, cmplx.Abs(a.At(p, q)-cmplx.Conj(a.At(q, p))), 1e-12,
						"Hermitian (d=%d, op %d)", d, i)
				}
			}

			for j, b := range gm {
				hs, err := qmatrix.HSInner(a, b)
				require.NoError(t, err)
				want := 0.0
				if i == j {
					want = 2.0
				}
				assert.InDelta(t, want, real(hs), 1e-12, "orthogonality (d=%d, %d vs %d)", d, i, j)
				assert.InDelta(t, 0.0, imag(hs), 1e-12)
			}
		}
	}
}

// TestNewSpinBasis_Shape verifies the bipartite product basis layout.
func TestNewSpinBasis_Shape(t *testing.T) {
	spin, err := simplex.NewSpinBasis(3)
	require.NoError(t, err)
	assert.Equal(t, 3, spin.Dim())
	assert.Equal(t, 64, spin.Size(), "(d²−1)² bipartite operators")
	assert.Equal(t, 9, spin.Op(0).Rows(), "operators act on the d²-dimensional joint space")

	_, err = simplex.NewSpinBasis(1)
	assert.ErrorIs(t, err, simplex.ErrBadDimension)
}

// TestSpinBasis_MaxMixedCoefficients verifies that every coefficient of the
// maximally mixed state against the traceless basis vanishes — the sum of
// magnitudes sits far under the separability bound 2.
func TestSpinBasis_MaxMixedCoefficients(t *testing.T) {
	basis, err := simplex.NewWeylBasis(3)
	require.NoError(t, err)
	spin, err := simplex.NewSpinBasis(3)
	require.NoError(t, err)
	cs, err := simplex.NewCoordState(simplex.MaxMixedCoords(3))
	require.NoError(t, err)
	ds, err := simplex.CreateDensityState(cs, basis)
	require.NoError(t, err)

	var sum float64
	for i := 0; i < spin.Size(); i++ {
		coeff, err := qmatrix.HSInner(ds.Matrix, spin.Op(i))
		require.NoError(t, err)
		sum += cmplx.Abs(coeff)
	}
	assert.InDelta(t, 0.0, sum, 1e-10, "I/9 has no traceless components")
}
