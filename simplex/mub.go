// Package simplex: mutually unbiased bases and the mutual-predictability
// correlation entanglement test.

package simplex

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qsimplex/qmatrix"
)

// MUBSet is a complete set of d+1 mutually unbiased bases of C^d, available
// for prime d: the computational basis plus d Wootters–Fields bases.
// Immutable after construction.
type MUBSet struct {
	d     int
	bases [][][]complex128 // bases[b][i][j]: component j of vector i in basis b
}

// NewMUBSet constructs the complete MUB set for a prime dimension d.
//
// Construction:
//   - basis 0: computational basis e_0..e_{d-1};
//   - d = 2: the eigenbases of σ_x and σ_y, hardcoded;
//   - odd prime d: basis k (1-based) has vectors
//     |i⟩_k with components ω^{k·j² + i·j}/√d, ω = e^{2πi/d}
//     (Wootters–Fields; pairwise overlap modulus 1/√d via Gauss sums).
//
// Returns ErrBadDimension (d < 2) or ErrNonPrimeDim (composite d).
func NewMUBSet(d int) (*MUBSet, error) {
	if d < 2 {
		return nil, fmt.Errorf("NewMUBSet(%d): %w", d, ErrBadDimension)
	}
	if !isPrime(d) {
		return nil, fmt.Errorf("NewMUBSet(%d): %w", d, ErrNonPrimeDim)
	}

	bases := make([][][]complex128, 0, d+1)

	// Computational basis.
	comp := make([][]complex128, d)
	for i := 0; i < d; i++ {
		comp[i] = make([]complex128, d)
		comp[i][i] = 1
	}
	bases = append(bases, comp)

	if d == 2 {
		s := complex(1/math.Sqrt2, 0)
		bases = append(bases,
			[][]complex128{{s, s}, {s, -s}},                               // σ_x eigenbasis
			[][]complex128{{s, complex(0, 1) * s}, {s, complex(0, -1) * s}}) // σ_y eigenbasis

		return &MUBSet{d: d, bases: bases}, nil
	}

	inv := complex(1/math.Sqrt(float64(d)), 0)
	for k := 1; k <= d; k++ {
		basis := make([][]complex128, d)
		for i := 0; i < d; i++ {
			vec := make([]complex128, d)
			for j := 0; j < d; j++ {
				exp := float64(k*j*j+i*j) * 2 * math.Pi / float64(d)
				vec[j] = cmplx.Exp(complex(0, exp)) * inv
			}
			basis[i] = vec
		}
		bases = append(bases, basis)
	}

	return &MUBSet{d: d, bases: bases}, nil
}

// Dim returns the subsystem dimension d.
func (m *MUBSet) Dim() int { return m.d }

// Size returns the number of bases, d+1.
func (m *MUBSet) Size() int { return len(m.bases) }

// Vector returns component j of vector i in basis b. Read-only access.
func (m *MUBSet) Vector(b, i int) []complex128 { return m.bases[b][i] }

// Correlation computes the mutual-predictability correlation sum of a d²×d²
// density matrix over a MUB set:
//
//	C = Σ_b Σ_i ⟨v⊗v̄|ρ|v⊗v̄⟩, v = basis b vector i, v̄ its conjugate.
//
// Values above 2 certify entanglement for the Bell-diagonal family.
//
// Returns ErrNilArtifact, ErrDimensionMismatch (ρ not d²×d² or MUB dimension
// differs from d).
//
// Complexity: O((d+1)·d·d⁴).
func Correlation(d int, mubs *MUBSet, rho *qmatrix.CDense) (float64, error) {
	if mubs == nil || rho == nil {
		return 0, fmt.Errorf("Correlation: %w", ErrNilArtifact)
	}
	if mubs.d != d {
		return 0, fmt.Errorf("Correlation: MUB dim %d vs d=%d: %w", mubs.d, d, ErrDimensionMismatch)
	}
	n := d * d
	if rho.Rows() != n || rho.Cols() != n {
		return 0, fmt.Errorf("Correlation: %dx%d vs d²=%d: %w", rho.Rows(), rho.Cols(), n, ErrDimensionMismatch)
	}

	u := make([]complex128, n) // |v⊗v̄⟩ workspace
	var sum float64
	var b, i, a, p, q int
	var acc complex128
	for b = 0; b < mubs.Size(); b++ {
		for i = 0; i < d; i++ {
			v := mubs.bases[b][i]
			for p = 0; p < d; p++ {
				for q = 0; q < d; q++ {
					u[p*d+q] = v[p] * cmplx.Conj(v[q])
				}
			}
			// ⟨u|ρ|u⟩
			acc = 0
			for p = 0; p < n; p++ {
				if u[p] == 0 {
					continue
				}
				for a = 0; a < n; a++ {
					acc += cmplx.Conj(u[p]) * rho.At(p, a) * u[a]
				}
			}
			sum += real(acc)
		}
	}

	return sum, nil
}

// isPrime is a trial-division primality test; dimensions here are tiny.
func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for f := 2; f*f <= n; f++ {
		if n%f == 0 {
			return false
		}
	}

	return true
}
