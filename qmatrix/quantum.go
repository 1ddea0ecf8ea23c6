// Package qmatrix: bipartite index rearrangements and the derived
// entanglement-criterion numerics (PPT, realignment trace norm).
// Bipartite d²×d² matrices are indexed by double indices: row = i·d+j,
// col = k·d+l with i,j,k,l ∈ [0,d).

package qmatrix

import (
	"fmt"
	"math"
)

// DefaultPrecision is the number of decimal digits applied by Round before
// an inequality test when a caller does not choose its own precision.
const DefaultPrecision = 10

// Round rounds x to the given number of decimal digits.
// Every numeric threshold comparison in the analysis engine goes through
// Round first to suppress floating-point noise; this is a correctness
// requirement, not formatting.
func Round(x float64, digits int) float64 {
	p := math.Pow(10, float64(digits))

	return math.Round(x*p) / p
}

// validateBipartite checks that m is a d²×d² square matrix.
func validateBipartite(m *CDense, d int) error {
	if m == nil {
		return ErrNilMatrix
	}
	if d < 2 {
		return fmt.Errorf("subsystem dimension %d: %w", d, ErrBadShape)
	}
	if n := d * d; m.r != n || m.c != n {
		return fmt.Errorf("%dx%d vs d²=%d: %w", m.r, m.c, n, ErrDimensionMismatch)
	}

	return nil
}

// PartialTranspose transposes the second subsystem of a d²×d² matrix:
// out[(i,j),(k,l)] = m[(i,l),(k,j)].
// Returns ErrNilMatrix, ErrBadShape or ErrDimensionMismatch.
func PartialTranspose(m *CDense, d int) (*CDense, error) {
	if err := validateBipartite(m, d); err != nil {
		return nil, fmt.Errorf("PartialTranspose: %w", err)
	}
	out := &CDense{r: m.r, c: m.c, data: make([]complex128, len(m.data))}
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			for k := 0; k < d; k++ {
				for l := 0; l < d; l++ {
					out.data[(i*d+j)*m.c+(k*d+l)] = m.data[(i*d+l)*m.c+(k*d+j)]
				}
			}
		}
	}

	return out, nil
}

// Reshuffle realigns a d²×d² matrix: out[(i,k),(j,l)] = m[(i,j),(k,l)].
// A trace norm above 1 for the reshuffled density matrix certifies
// entanglement (realignment criterion).
// Returns ErrNilMatrix, ErrBadShape or ErrDimensionMismatch.
func Reshuffle(m *CDense, d int) (*CDense, error) {
	if err := validateBipartite(m, d); err != nil {
		return nil, fmt.Errorf("Reshuffle: %w", err)
	}
	out := &CDense{r: m.r, c: m.c, data: make([]complex128, len(m.data))}
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			for k := 0; k < d; k++ {
				for l := 0; l < d; l++ {
					out.data[(i*d+k)*m.c+(j*d+l)] = m.data[(i*d+j)*m.c+(k*d+l)]
				}
			}
		}
	}

	return out, nil
}

// TraceNorm returns the trace norm ‖m‖₁ = Σ singular values, computed as
// Σ √λᵢ over the eigenvalues of the Hermitian product m†·m.
// Negative eigenvalue dust from the iteration is clamped to zero.
// Errors propagate from Dagger/Mul/EigenHermitian.
func TraceNorm(m *CDense) (float64, error) {
	dag, err := Dagger(m)
	if err != nil {
		return 0, fmt.Errorf("TraceNorm: %w", err)
	}
	prod, err := Mul(dag, m)
	if err != nil {
		return 0, fmt.Errorf("TraceNorm: %w", err)
	}
	eigs, err := EigenHermitian(prod, DefaultEigenTol, DefaultEigenMaxIter)
	if err != nil {
		return 0, fmt.Errorf("TraceNorm: %w", err)
	}
	var sum float64
	for _, lam := range eigs {
		if lam > 0 {
			sum += math.Sqrt(lam)
		}
	}

	return sum, nil
}

// IsPPT reports whether the partial transpose of a d²×d² Hermitian matrix is
// positive semidefinite within `precision` decimal digits: the smallest
// eigenvalue, rounded, must be ≥ 0.
// precision <= 0 selects DefaultPrecision.
// Errors propagate from PartialTranspose/EigenHermitian.
func IsPPT(m *CDense, d, precision int) (bool, error) {
	if precision <= 0 {
		precision = DefaultPrecision
	}
	pt, err := PartialTranspose(m, d)
	if err != nil {
		return false, fmt.Errorf("IsPPT: %w", err)
	}
	eigs, err := EigenHermitian(pt, DefaultEigenTol, DefaultEigenMaxIter)
	if err != nil {
		return false, fmt.Errorf("IsPPT: %w", err)
	}
	minEig := math.Inf(1)
	for _, lam := range eigs {
		if lam < minEig {
			minEig = lam
		}
	}

	return Round(minEig, precision) >= 0, nil
}
