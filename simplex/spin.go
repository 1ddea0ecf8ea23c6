// Package simplex: generalized Gell-Mann operators and the bipartite spin
// operator basis behind the spin-representation separability bound.

package simplex

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qsimplex/qmatrix"
)

// NewGellMann builds the d²−1 generalized Gell-Mann matrices of dimension d:
// traceless, Hermitian, normalized to tr(λ²) = 2.
//
// Order (deterministic):
//  1. symmetric pairs E_jk + E_kj for j < k (row-major pair order);
//  2. antisymmetric pairs −i·E_jk + i·E_kj for j < k;
//  3. diagonal h_l = √(2/(l(l+1)))·(Σ_{j<l} E_jj − l·E_ll) for l = 1..d−1.
//
// Returns ErrBadDimension for d < 2.
func NewGellMann(d int) ([]*qmatrix.CDense, error) {
	if d < 2 {
		return nil, fmt.Errorf("NewGellMann(%d): %w", d, ErrBadDimension)
	}
	ops := make([]*qmatrix.CDense, 0, d*d-1)

	var j, k int
	for j = 0; j < d; j++ {
		for k = j + 1; k < d; k++ {
			sym, err := qmatrix.NewCDense(d, d)
			if err != nil {
				return nil, fmt.Errorf("NewGellMann(%d): %w", d, err)
			}
			sym.Set(j, k, 1)
			sym.Set(k, j, 1)
			ops = append(ops, sym)
		}
	}
	for j = 0; j < d; j++ {
		for k = j + 1; k < d; k++ {
			anti, err := qmatrix.NewCDense(d, d)
			if err != nil {
				return nil, fmt.Errorf("NewGellMann(%d): %w", d, err)
			}
			anti.Set(j, k, complex(0, -1))
			anti.Set(k, j, complex(0, 1))
			ops = append(ops, anti)
		}
	}
	for l := 1; l < d; l++ {
		diag, err := qmatrix.NewCDense(d, d)
		if err != nil {
			return nil, fmt.Errorf("NewGellMann(%d): %w", d, err)
		}
		scale := complex(math.Sqrt(2/float64(l*(l+1))), 0)
		for j = 0; j < l; j++ {
			diag.Set(j, j, scale)
		}
		diag.Set(l, l, -scale*complex(float64(l), 0))
		ops = append(ops, diag)
	}

	return ops, nil
}

// SpinBasis is the bipartite operator basis λᵢ⊗λⱼ over the traceless
// Gell-Mann operators: (d²−1)² operators of size d²×d². The sum of the
// magnitudes of a density matrix's coefficients against this basis obeys a
// separability bound (≤ 2 for the Bell-diagonal family).
// Immutable after construction.
type SpinBasis struct {
	d   int
	ops []*qmatrix.CDense
}

// NewSpinBasis builds the bipartite spin operator basis for a d×d system,
// in row-major (i,j) order over the Gell-Mann operators of NewGellMann.
// Returns ErrBadDimension for d < 2.
func NewSpinBasis(d int) (*SpinBasis, error) {
	gm, err := NewGellMann(d)
	if err != nil {
		return nil, fmt.Errorf("NewSpinBasis(%d): %w", d, err)
	}
	ops := make([]*qmatrix.CDense, 0, len(gm)*len(gm))
	for _, a := range gm {
		for _, b := range gm {
			op, err := qmatrix.Kron(a, b)
			if err != nil {
				return nil, fmt.Errorf("NewSpinBasis(%d): %w", d, err)
			}
			ops = append(ops, op)
		}
	}

	return &SpinBasis{d: d, ops: ops}, nil
}

// Dim returns the subsystem dimension d.
func (s *SpinBasis) Dim() int { return s.d }

// Size returns the number of bipartite operators, (d²−1)².
func (s *SpinBasis) Size() int { return len(s.ops) }

// Op returns the i-th bipartite operator. Read-only access.
func (s *SpinBasis) Op(i int) *qmatrix.CDense { return s.ops[i] }
