package qmatrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qsimplex/qmatrix"
)

// TestNewCDense_BadShape verifies that non-positive shapes are rejected
// with ErrBadShape before allocation.
func TestNewCDense_BadShape(t *testing.T) {
	_, err := qmatrix.NewCDense(0, 3)
	assert.ErrorIs(t, err, qmatrix.ErrBadShape, "zero rows must error")

	_, err = qmatrix.NewCDense(3, -1)
	assert.ErrorIs(t, err, qmatrix.ErrBadShape, "negative cols must error")
}

// TestCDense_AtSetClone verifies flat storage round-trips and that Clone is
// a deep copy.
func TestCDense_AtSetClone(t *testing.T) {
	m, err := qmatrix.NewCDense(2, 3)
	require.NoError(t, err)

	m.Set(1, 2, complex(3, -4))
	assert.Equal(t, complex(3, -4), m.At(1, 2))
	assert.Equal(t, complex128(0), m.At(0, 0), "untouched entries stay zero")

	cp := m.Clone()
	cp.Set(1, 2, 7)
	assert.Equal(t, complex(3, -4), m.At(1, 2), "Clone must not alias storage")
}

// TestIdentity verifies the identity constructor.
func TestIdentity(t *testing.T) {
	id, err := qmatrix.Identity(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := complex128(0)
			if i == j {
				want = 1
			}
			assert.Equal(t, want, id.At(i, j))
		}
	}

	_, err = qmatrix.Identity(0)
	assert.ErrorIs(t, err, qmatrix.ErrBadShape)
}

// TestMul_Known checks a 2x2 complex product against hand computation.
func TestMul_Known(t *testing.T) {
	a, err := qmatrix.NewCDense(2, 2)
	require.NoError(t, err)
	a.Set(0, 0, 1)
	a.Set(0, 1, complex(0, 1))
	a.Set(1, 1, 2)

	b, err := qmatrix.NewCDense(2, 2)
	require.NoError(t, err)
	b.Set(0, 0, 1)
	b.Set(1, 0, 3)
	b.Set(1, 1, 1)

	got, err := qmatrix.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, complex(1, 3), got.At(0, 0))
	assert.Equal(t, complex(0, 1), got.At(0, 1))
	assert.Equal(t, complex128(6), got.At(1, 0))
	assert.Equal(t, complex128(2), got.At(1, 1))
}

// TestMul_DimensionMismatch verifies operand shape validation.
func TestMul_DimensionMismatch(t *testing.T) {
	a, err := qmatrix.NewCDense(2, 3)
	require.NoError(t, err)
	b, err := qmatrix.NewCDense(2, 2)
	require.NoError(t, err)

	_, err = qmatrix.Mul(a, b)
	assert.ErrorIs(t, err, qmatrix.ErrDimensionMismatch)
}

// TestAddScaleDagger covers the remaining elementwise operations.
func TestAddScaleDagger(t *testing.T) {
	a, err := qmatrix.NewCDense(2, 2)
	require.NoError(t, err)
	a.Set(0, 1, complex(1, 2))

	sum, err := qmatrix.Add(a, a)
	require.NoError(t, err)
	assert.Equal(t, complex(2, 4), sum.At(0, 1))

	scaled, err := qmatrix.Scale(a, complex(0, 1))
	require.NoError(t, err)
	assert.Equal(t, complex(-2, 1), scaled.At(0, 1))

	dag, err := qmatrix.Dagger(a)
	require.NoError(t, err)
	assert.Equal(t, complex(1, -2), dag.At(1, 0))
	assert.Equal(t, complex128(0), dag.At(0, 1))
}

// TestTrace verifies the diagonal sum and the non-square guard.
func TestTrace(t *testing.T) {
	m, err := qmatrix.NewCDense(2, 2)
	require.NoError(t, err)
	m.Set(0, 0, complex(1, 1))
	m.Set(1, 1, complex(2, -3))

	tr, err := qmatrix.Trace(m)
	require.NoError(t, err)
	assert.Equal(t, complex(3, -2), tr)

	rect, err := qmatrix.NewCDense(2, 3)
	require.NoError(t, err)
	_, err = qmatrix.Trace(rect)
	assert.ErrorIs(t, err, qmatrix.ErrNonSquare)
}

// TestHSInner verifies tr(a·b†) = Σ a[i,j]·conj(b[i,j]).
func TestHSInner(t *testing.T) {
	a, err := qmatrix.NewCDense(2, 2)
	require.NoError(t, err)
	a.Set(0, 1, complex(1, 1))

	b, err := qmatrix.NewCDense(2, 2)
	require.NoError(t, err)
	b.Set(0, 1, complex(0, 2))

	got, err := qmatrix.HSInner(a, b)
	require.NoError(t, err)
	// (1+i)·conj(2i) = (1+i)·(−2i) = 2 − 2i
	assert.Equal(t, complex(2, -2), got)
}

// TestKron verifies shape and a couple of block entries of a⊗b.
func TestKron(t *testing.T) {
	a, err := qmatrix.NewCDense(2, 2)
	require.NoError(t, err)
	a.Set(0, 0, 1)
	a.Set(1, 1, 2)

	b, err := qmatrix.NewCDense(2, 2)
	require.NoError(t, err)
	b.Set(0, 1, complex(0, 1))

	k, err := qmatrix.Kron(a, b)
	require.NoError(t, err)
	assert.Equal(t, 4, k.Rows())
	assert.Equal(t, 4, k.Cols())
	assert.Equal(t, complex(0, 1), k.At(0, 1), "a[0,0]·b[0,1] block")
	assert.Equal(t, complex(0, 2), k.At(2, 3), "a[1,1]·b[0,1] block")
	assert.Equal(t, complex128(0), k.At(0, 3), "a[0,1]=0 block stays zero")
}
