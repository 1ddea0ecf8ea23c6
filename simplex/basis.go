// Package simplex: the Weyl standard basis and the coordinates→density-matrix map.

package simplex

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qsimplex/qmatrix"
)

// StandardBasis is the immutable operator basis mapping simplex coordinates
// to density matrices: d² rank-one Bell projectors P_{k,l} whose sum is the
// d²×d² identity. Shared read-only across all checks.
type StandardBasis struct {
	d          int
	projectors []*qmatrix.CDense
}

// NewWeylBasis builds the Weyl Bell projector basis for a d×d system.
//
// Construction:
//   - |Ω_{k,l}⟩ = (W_{k,l}⊗1)|Ω⟩ with W_{k,l}|j⟩ = ω^{jk}|j+l mod d⟩,
//     ω = e^{2πi/d}, |Ω⟩ the maximally entangled state.
//   - Component form: ⟨(j+l mod d), j | Ω_{k,l}⟩ = ω^{jk}/√d.
//   - P_{k,l} = |Ω_{k,l}⟩⟨Ω_{k,l}|, stored row-major at index k·d+l.
//
// The d² Bell vectors are orthonormal, so Σ P_{k,l} = 1 exactly; the
// uniform coordinate vector therefore maps to the maximally mixed state.
//
// Returns ErrBadDimension for d < 2.
//
// Complexity: O(d⁶) entries overall (d² projectors of size d²×d²).
func NewWeylBasis(d int) (*StandardBasis, error) {
	if d < 2 {
		return nil, fmt.Errorf("NewWeylBasis(%d): %w", d, ErrBadDimension)
	}
	n := d * d
	inv := complex(1/math.Sqrt(float64(d)), 0)
	projectors := make([]*qmatrix.CDense, 0, n)

	vec := make([]complex128, n) // |Ω_{k,l}⟩ workspace, reset per projector
	var k, l, j, a, b int
	for k = 0; k < d; k++ {
		for l = 0; l < d; l++ {
			for j = range vec {
				vec[j] = 0
			}
			for j = 0; j < d; j++ {
				// phase ω^{jk} on component |(j+l) mod d, j⟩
				phase := cmplx.Exp(complex(0, 2*math.Pi*float64(j*k)/float64(d)))
				vec[((j+l)%d)*d+j] = phase * inv
			}
			p, err := qmatrix.NewCDense(n, n)
			if err != nil {
				return nil, fmt.Errorf("NewWeylBasis(%d): %w", d, err)
			}
			for a = 0; a < n; a++ {
				for b = 0; b < n; b++ {
					p.Set(a, b, vec[a]*cmplx.Conj(vec[b]))
				}
			}
			projectors = append(projectors, p)
		}
	}

	return &StandardBasis{d: d, projectors: projectors}, nil
}

// Dim returns the subsystem dimension d.
func (b *StandardBasis) Dim() int { return b.d }

// Size returns the number of projectors, d².
func (b *StandardBasis) Size() int { return len(b.projectors) }

// Projector returns the i-th Bell projector. The returned matrix is shared
// and must be treated as read-only.
func (b *StandardBasis) Projector(i int) *qmatrix.CDense { return b.projectors[i] }

// DensityState is the density matrix of a coordinate state under a basis.
type DensityState struct {
	Matrix *qmatrix.CDense
}

// CreateDensityState maps a coordinate state to its density matrix
// ρ = Σᵢ cᵢ·Pᵢ under the given standard basis.
//
// Returns ErrNilArtifact (nil state/basis) or ErrDimensionMismatch when
// len(coords) differs from the basis size d².
func CreateDensityState(cs *CoordState, basis *StandardBasis) (*DensityState, error) {
	if cs == nil || basis == nil {
		return nil, fmt.Errorf("CreateDensityState: %w", ErrNilArtifact)
	}
	if len(cs.Coords) != basis.Size() {
		return nil, fmt.Errorf("CreateDensityState: %d coords vs basis size %d: %w",
			len(cs.Coords), basis.Size(), ErrDimensionMismatch)
	}
	n := basis.d * basis.d
	rho, err := qmatrix.NewCDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("CreateDensityState: %w", err)
	}
	var i, a, bcol int
	var c complex128
	for i = 0; i < basis.Size(); i++ {
		c = complex(cs.Coords[i], 0)
		if c == 0 {
			continue
		}
		p := basis.projectors[i]
		for a = 0; a < n; a++ {
			for bcol = 0; bcol < n; bcol++ {
				rho.Set(a, bcol, rho.At(a, bcol)+c*p.At(a, bcol))
			}
		}
	}

	return &DensityState{Matrix: rho}, nil
}
