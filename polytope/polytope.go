// Package polytope: V- and H-representation membership tests.

package polytope

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// containsEps absorbs floating-point noise on boundary points for the
// half-space test and the LP equality constraints.
const containsEps = 1e-9

// Polytope is a convex region of coordinate space with a pure, deterministic
// membership test.
type Polytope interface {
	// Contains reports whether point lies inside the polytope.
	// Returns ErrDimensionMismatch for a point of the wrong length.
	Contains(point []float64) (bool, error)

	// Dim returns the ambient coordinate dimension.
	Dim() int
}

// VPolytope is a polytope in vertex representation: the convex hull of a
// finite vertex set.
type VPolytope struct {
	vertices [][]float64
	dim      int
}

// NewVPolytope validates and wraps a vertex set (non-empty, rectangular,
// finite). Vertex slices are retained, not copied.
// Returns ErrEmptyPolytope, ErrDimensionMismatch or ErrNonFinite.
func NewVPolytope(vertices [][]float64) (*VPolytope, error) {
	if len(vertices) == 0 || len(vertices[0]) == 0 {
		return nil, fmt.Errorf("NewVPolytope: %w", ErrEmptyPolytope)
	}
	dim := len(vertices[0])
	for i, v := range vertices {
		if len(v) != dim {
			return nil, fmt.Errorf("NewVPolytope: vertex %d has %d coords, want %d: %w",
				i, len(v), dim, ErrDimensionMismatch)
		}
		for j, x := range v {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, fmt.Errorf("NewVPolytope: vertex %d coord %d: %w", i, j, ErrNonFinite)
			}
		}
	}

	return &VPolytope{vertices: vertices, dim: dim}, nil
}

// Dim returns the ambient coordinate dimension.
func (p *VPolytope) Dim() int { return p.dim }

// Contains decides convex-hull membership as LP feasibility:
//
//	find λ ∈ R^n, λ ≥ 0, Σλ = 1, Vᵀλ = point
//
// posed as an explicit phase-1 problem for gonum's simplex method:
//
//	min Σs  s.t.  [Vᵀ;1ᵀ]·λ + I·s = [point;1],  λ ≥ 0, s ≥ 0
//
// (rows with a negative right-hand side are negated first). The artificial
// block I keeps the constraint matrix full row rank and the problem always
// feasible; the point is inside iff the optimum artificial mass is ~0.
//
// Returns ErrDimensionMismatch for a wrong-length point; solver failures
// are wrapped in ErrLPFailed.
//
// Complexity: one LP over n+dim+1 variables and dim+1 equalities,
// n = #vertices.
func (p *VPolytope) Contains(point []float64) (bool, error) {
	if len(point) != p.dim {
		return false, fmt.Errorf("VPolytope.Contains: %d coords, want %d: %w",
			len(point), p.dim, ErrDimensionMismatch)
	}

	n := len(p.vertices)
	rows := p.dim + 1
	cols := n + rows
	data := make([]float64, rows*cols)
	for j, v := range p.vertices {
		for i := 0; i < p.dim; i++ {
			data[i*cols+j] = v[i] // Vᵀ block
		}
		data[p.dim*cols+j] = 1 // Σλ = 1 row
	}
	b := make([]float64, rows)
	copy(b, point)
	b[p.dim] = 1
	for i := 0; i < rows; i++ {
		if b[i] < 0 {
			b[i] = -b[i]
			for j := 0; j < n; j++ {
				data[i*cols+j] = -data[i*cols+j]
			}
		}
		data[i*cols+n+i] = 1 // artificial block; λ=0, s=b is always feasible
	}

	c := make([]float64, cols) // objective: total artificial mass
	for i := n; i < cols; i++ {
		c[i] = 1
	}
	opt, _, err := lp.Simplex(c, mat.NewDense(rows, cols, data), b, containsEps, nil)
	switch {
	case err == nil:
		return opt <= containsEps, nil
	case errors.Is(err, lp.ErrInfeasible), errors.Is(err, lp.ErrUnbounded):
		return false, nil
	default:
		return false, fmt.Errorf("VPolytope.Contains: %v: %w", err, ErrLPFailed)
	}
}

// HPolytope is a polytope in half-space representation: {x : A·x ≤ b}.
type HPolytope struct {
	a   *mat.Dense
	b   []float64
	dim int
}

// NewHPolytope validates and wraps a half-space system.
// Returns ErrEmptyPolytope (nil A or zero rows), ErrDimensionMismatch
// (len(b) ≠ rows of A) or ErrNonFinite.
func NewHPolytope(a *mat.Dense, b []float64) (*HPolytope, error) {
	if a == nil {
		return nil, fmt.Errorf("NewHPolytope: %w", ErrEmptyPolytope)
	}
	rows, cols := a.Dims()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("NewHPolytope: %w", ErrEmptyPolytope)
	}
	if len(b) != rows {
		return nil, fmt.Errorf("NewHPolytope: %d bounds vs %d half-spaces: %w",
			len(b), rows, ErrDimensionMismatch)
	}
	for i := 0; i < rows; i++ {
		if math.IsNaN(b[i]) || math.IsInf(b[i], 0) {
			return nil, fmt.Errorf("NewHPolytope: b[%d]: %w", i, ErrNonFinite)
		}
		for j := 0; j < cols; j++ {
			if v := a.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("NewHPolytope: A[%d,%d]: %w", i, j, ErrNonFinite)
			}
		}
	}

	return &HPolytope{a: a, b: b, dim: cols}, nil
}

// Dim returns the ambient coordinate dimension.
func (p *HPolytope) Dim() int { return p.dim }

// Contains reports whether A·point ≤ b holds row-wise within containsEps.
// Returns ErrDimensionMismatch for a wrong-length point.
func (p *HPolytope) Contains(point []float64) (bool, error) {
	if len(point) != p.dim {
		return false, fmt.Errorf("HPolytope.Contains: %d coords, want %d: %w",
			len(point), p.dim, ErrDimensionMismatch)
	}
	rows, _ := p.a.Dims()
	for i := 0; i < rows; i++ {
		if floats.Dot(p.a.RawRowView(i), point) > p.b[i]+containsEps {
			return false, nil
		}
	}

	return true, nil
}
