package simplex_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qsimplex/qmatrix"
	"github.com/katalvlaran/qsimplex/simplex"
)

// overlap returns ⟨u|v⟩ for two basis vectors.
func overlap(u, v []complex128) complex128 {
	var acc complex128
	for i := range u {
		acc += cmplx.Conj(u[i]) * v[i]
	}

	return acc
}

// TestNewMUBSet_Unbiasedness verifies, for d = 2 and 3, that each basis is
// orthonormal and every cross-basis overlap has squared modulus 1/d.
func TestNewMUBSet_Unbiasedness(t *testing.T) {
	for _, d := range []int{2, 3} {
		mubs, err := simplex.NewMUBSet(d)
		require.NoError(t, err)
		require.Equal(t, d+1, mubs.Size(), "complete set for prime d")

		for b := 0; b < mubs.Size(); b++ {
			for i := 0; i < d; i++ {
				for j := 0; j < d; j++ {
					ov := overlap(mubs.Vector(b, i), mubs.Vector(b, j))
					want := 0.0
					if i == j {
						want = 1.0
					}
					assert.InDelta(t, want, cmplx.Abs(ov), 1e-12, "orthonormal within basis %d (d=%d)", b, d)
				}
			}
		}

		for b1 := 0; b1 < mubs.Size(); b1++ {
			for b2 := b1 + 1; b2 < mubs.Size(); b2++ {
				for i := 0; i < d; i++ {
					for j := 0; j < d; j++ {
						ov := overlap(mubs.Vector(b1, i), mubs.Vector(b2, j))
						mod2 := real(ov)*real(ov) + imag(ov)*imag(ov)
						assert.InDelta(t, 1.0/float64(d), mod2, 1e-12,
							"bases %d,%d unbiased (d=%d)", b1, b2, d)
					}
				}
			}
		}
	}
}

// TestNewMUBSet_NonPrime rejects composite dimensions.
func TestNewMUBSet_NonPrime(t *testing.T) {
	_, err := simplex.NewMUBSet(4)
	assert.ErrorIs(t, err, simplex.ErrNonPrimeDim)

	_, err = simplex.NewMUBSet(1)
	assert.ErrorIs(t, err, simplex.ErrBadDimension)
}

// TestCorrelation_MaxMixed verifies the mutual-predictability sum of the
// maximally mixed 3x3 state: (d+1)·d·(1/d²) = 4/3, safely below the
// entanglement threshold 2.
func TestCorrelation_MaxMixed(t *testing.T) {
	basis, err := simplex.NewWeylBasis(3)
	require.NoError(t, err)
	mubs, err := simplex.NewMUBSet(3)
	require.NoError(t, err)
	cs, err := simplex.NewCoordState(simplex.MaxMixedCoords(3))
	require.NoError(t, err)
	ds, err := simplex.CreateDensityState(cs, basis)
	require.NoError(t, err)

	corr, err := simplex.Correlation(3, mubs, ds.Matrix)
	require.NoError(t, err)
	assert.InDelta(t, 4.0/3.0, corr, 1e-10)
}

// TestCorrelation_Guards covers nil and dimension mismatches.
func TestCorrelation_Guards(t *testing.T) {
	mubs, err := simplex.NewMUBSet(3)
	require.NoError(t, err)

	_, err = simplex.Correlation(3, nil, nil)
	assert.ErrorIs(t, err, simplex.ErrNilArtifact)

	rho, err := qmatrix.Identity(4)
	require.NoError(t, err)
	_, err = simplex.Correlation(2, mubs, rho)
	assert.ErrorIs(t, err, simplex.ErrDimensionMismatch, "MUB dim 3 vs d=2")
}
