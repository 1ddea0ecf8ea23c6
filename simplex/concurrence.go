// Package simplex: quasi-pure concurrence dictionaries.

package simplex

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// QPDict is a quasi-pure concurrence coefficient table: a symmetric d²×d²
// quadratic form M evaluated over simplex coordinates. A strictly positive
// form value (after rounding) signals entanglement under the quasi-pure
// approximation. Immutable after construction.
type QPDict struct {
	form *mat.SymDense
}

// NewQPDict wraps a precomputed symmetric coefficient table.
// Returns ErrNilArtifact for a nil form.
func NewQPDict(form *mat.SymDense) (*QPDict, error) {
	if form == nil {
		return nil, fmt.Errorf("NewQPDict: %w", ErrNilArtifact)
	}

	return &QPDict{form: form}, nil
}

// NewVarianceQPDict builds the centered default table M = I − J/n over n
// coordinates, so that xᵀMx = Σxᵢ² − (Σxᵢ)²/n. The form is zero exactly at
// the maximally mixed point and positive at every other point of the
// simplex. Panics on n <= 0 (programmer error in fixtures).
func NewVarianceQPDict(n int) *QPDict {
	if n <= 0 {
		panic(fmt.Sprintf("simplex: NewVarianceQPDict size %d <= 0", n))
	}
	form := mat.NewSymDense(n, nil)
	off := -1 / float64(n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if i == j {
				form.SetSym(i, j, 1+off)
			} else {
				form.SetSym(i, j, off)
			}
		}
	}

	return &QPDict{form: form}
}

// Size returns the side length of the coefficient table.
func (q *QPDict) Size() int { return q.form.SymmetricDim() }

// GetConcurrenceQP evaluates the quasi-pure concurrence xᵀMx for the given
// coordinates under a d×d system's dictionary.
// Returns ErrNilArtifact or ErrDimensionMismatch (len(coords) ≠ d² or table
// size ≠ d²).
func GetConcurrenceQP(coords []float64, d int, dict *QPDict) (float64, error) {
	if dict == nil {
		return 0, fmt.Errorf("GetConcurrenceQP: %w", ErrNilArtifact)
	}
	n := d * d
	if len(coords) != n || dict.Size() != n {
		return 0, fmt.Errorf("GetConcurrenceQP: %d coords, table %d, d²=%d: %w",
			len(coords), dict.Size(), n, ErrDimensionMismatch)
	}
	x := mat.NewVecDense(n, coords)
	var mx mat.VecDense
	mx.MulVec(dict.form, x)

	return mat.Dot(x, &mx), nil
}
