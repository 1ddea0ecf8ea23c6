package qmatrix

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Defaults for the Jacobi eigen routine. The matrices of this domain are
// small (d²×d², d ≤ 9), so a generous rotation cap costs nothing.
const (
	// DefaultEigenTol is the off-diagonal convergence threshold.
	DefaultEigenTol = 1e-12

	// DefaultEigenMaxIter caps the number of Jacobi rotations.
	DefaultEigenMaxIter = 10000
)

// EigenHermitian computes the eigenvalues of a Hermitian matrix via complex
// Jacobi rotations.
//
// Implementation:
//   - Stage 1: Validate Hermitian square input within tol
//     (not nil, square, |A[i,j]-conj(A[j,i])| ≤ tol, |Im A[i,i]| ≤ tol).
//   - Stage 2: Repeatedly pick (p,q) with the largest |A[p,q]| in i→j order
//     and apply a unitary rotation G with G[p,p]=G[q,q]=c,
//     G[p,q]=s·e^{iα}, G[q,p]=-s·e^{-iα}, where e^{iα} is the phase of
//     A[p,q]; A ← G†·A·G annihilates the pivot.
//
// Inputs:
//   - m: Hermitian matrix (within tol); n := m.Rows().
//   - tol: convergence threshold (typ. 1e-9..1e-12 for float64); <=0 selects
//     DefaultEigenTol.
//   - maxIter: safety cap on rotations; <=0 selects DefaultEigenMaxIter.
//
// Returns:
//   - []float64: eigenvalues (real diagonal of the rotated matrix, in
//     diagonal order — not sorted).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNotHermitian,
//     ErrEigenFailed (max off-diagonal ≥ tol after maxIter rotations).
//
// Determinism:
//   - Fixed i→j pivot search and fixed update order produce stable results.
//
// Complexity:
//   - Time O(maxIter · n²), Space O(n²).
func EigenHermitian(m *CDense, tol float64, maxIter int) ([]float64, error) {
	if tol <= 0 {
		tol = DefaultEigenTol
	}
	if maxIter <= 0 {
		maxIter = DefaultEigenMaxIter
	}
	if err := validateHermitian(m, tol); err != nil {
		return nil, fmt.Errorf("EigenHermitian: %w", err)
	}

	n := m.r
	a := m.Clone() // working copy; m stays read-only

	var (
		iter       int        // rotation counter
		p, q       int        // current pivot indices
		i, j       int        // scan iterators
		maxOff     float64    // current max |A[p,q]|
		off        float64    // temporary modulus
		app, aqq   float64    // real diagonal entries A[p,p], A[q,q]
		apq        complex128 // off-diagonal pivot entry A[p,q]
		r          float64    // |A[p,q]|
		phase      complex128 // A[p,q]/|A[p,q]|
		theta, t   float64    // rotation parameters
		c, s       float64    // cosine and sine of the rotation angle
		aip, aiq   complex128 // temporaries for A[i,p], A[i,q]
		nip, niq   complex128 // rotated values
		phaseConjS complex128 // s·conj(phase), hoisted per rotation
		phaseS     complex128 // s·phase, hoisted per rotation
	)
	for iter = 0; iter < maxIter; iter++ {
		// J.1: Find pivot (p,q) maximizing |A[p,q]| over the upper triangle.
		maxOff = 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				off = cmplx.Abs(a.data[i*n+j])
				if off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}

		// J.2: Converged once every off-diagonal modulus is below tol.
		if maxOff < tol {
			break
		}

		// J.3: Rotation parameters from A[p,p], A[q,q], A[p,q].
		app = real(a.data[p*n+p])
		aqq = real(a.data[q*n+q])
		apq = a.data[p*n+q]
		r = cmplx.Abs(apq)
		if r <= tol {
			// No-op rotation keeps determinism and prevents blow-ups.
			continue
		}
		phase = apq / complex(r, 0)
		// θ = (aqq−app)/(2r); t solves t² + 2θt − 1 = 0 (smaller root).
		theta = (aqq - app) / (2 * r)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c
		phaseS = complex(s, 0) * phase
		phaseConjS = complex(s, 0) * cmplx.Conj(phase)

		// J.4: Apply A ← G†·A·G, preserving Hermitian symmetry explicitly.
		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip = a.data[i*n+p]
			aiq = a.data[i*n+q]
			nip = complex(c, 0)*aip - phaseConjS*aiq
			niq = phaseS*aip + complex(c, 0)*aiq
			a.data[i*n+p], a.data[p*n+i] = nip, cmplx.Conj(nip)
			a.data[i*n+q], a.data[q*n+i] = niq, cmplx.Conj(niq)
		}
		a.data[p*n+p] = complex(c*c*app+s*s*aqq-2*s*c*r, 0)
		a.data[q*n+q] = complex(s*s*app+c*c*aqq+2*s*c*r, 0)
		a.data[p*n+q], a.data[q*n+p] = 0, 0
	}

	// Final convergence check over the upper triangle.
	maxOff = 0
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			off = cmplx.Abs(a.data[i*n+j])
			if off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff >= tol {
		return nil, fmt.Errorf("EigenHermitian: %w", ErrEigenFailed)
	}

	// Extract eigenvalues from the (real) diagonal.
	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = real(a.data[i*n+i])
	}

	return eigs, nil
}

// validateHermitian checks m for nil, squareness and Hermitian symmetry
// within tol.
func validateHermitian(m *CDense, tol float64) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.r != m.c {
		return fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNonSquare)
	}
	n := m.r
	for i := 0; i < n; i++ {
		if math.Abs(imag(m.data[i*n+i])) > tol {
			return ErrNotHermitian
		}
		for j := i + 1; j < n; j++ {
			if cmplx.Abs(m.data[i*n+j]-cmplx.Conj(m.data[j*n+i])) > tol {
				return ErrNotHermitian
			}
		}
	}

	return nil
}
