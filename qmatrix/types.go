// Package qmatrix: CDense storage and elementary complex matrix operations.
// Storage is flat row-major, mirroring the shape/index discipline of a dense
// float64 matrix: data[i*c+j] holds entry (i,j). All package-level operations
// validate operands and return fresh matrices; receivers are never mutated.

package qmatrix

import (
	"fmt"
	"math/cmplx"
)

// CDense is a dense complex matrix with flat row-major storage.
// The zero value is not usable; construct via NewCDense or Identity.
type CDense struct {
	r, c int
	data []complex128
}

// NewCDense allocates a rows×cols zero matrix.
// Returns ErrBadShape when rows<=0 or cols<=0.
func NewCDense(rows, cols int) (*CDense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewCDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &CDense{r: rows, c: cols, data: make([]complex128, rows*cols)}, nil
}

// Identity allocates the n×n identity matrix.
// Returns ErrBadShape when n<=0.
func Identity(n int) (*CDense, error) {
	m, err := NewCDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *CDense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *CDense) Cols() int { return m.c }

// At returns entry (i,j). Out-of-range indices are a programmer error and panic.
func (m *CDense) At(i, j int) complex128 {
	m.mustIndex(i, j)

	return m.data[i*m.c+j]
}

// Set assigns entry (i,j). Out-of-range indices are a programmer error and panic.
func (m *CDense) Set(i, j int, v complex128) {
	m.mustIndex(i, j)
	m.data[i*m.c+j] = v
}

// mustIndex bounds-checks (i,j); misuse is a programmer error.
func (m *CDense) mustIndex(i, j int) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		panic(fmt.Sprintf("qmatrix: index (%d,%d) out of range for %dx%d matrix", i, j, m.r, m.c))
	}
}

// Clone returns a deep copy of m.
func (m *CDense) Clone() *CDense {
	cp := &CDense{r: m.r, c: m.c, data: make([]complex128, len(m.data))}
	copy(cp.data, m.data)

	return cp
}

// Add returns a+b. Returns ErrNilMatrix or ErrDimensionMismatch.
func Add(a, b *CDense) (*CDense, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Add: %w", ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return nil, fmt.Errorf("Add(%dx%d,%dx%d): %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	out := a.Clone()
	for i := range out.data {
		out.data[i] += b.data[i]
	}

	return out, nil
}

// Scale returns alpha·m. Returns ErrNilMatrix.
func Scale(m *CDense, alpha complex128) (*CDense, error) {
	if m == nil {
		return nil, fmt.Errorf("Scale: %w", ErrNilMatrix)
	}
	out := m.Clone()
	for i := range out.data {
		out.data[i] *= alpha
	}

	return out, nil
}

// Mul returns the matrix product a·b.
// Returns ErrNilMatrix or ErrDimensionMismatch (a.Cols != b.Rows).
// Deterministic i→k→j loop order over flat storage.
func Mul(a, b *CDense) (*CDense, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Mul: %w", ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, fmt.Errorf("Mul(%dx%d,%dx%d): %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	out := &CDense{r: a.r, c: b.c, data: make([]complex128, a.r*b.c)}
	var av complex128
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			av = a.data[i*a.c+k]
			if av == 0 {
				continue // skip zero rows cheaply; common for sparse operator bases
			}
			for j := 0; j < b.c; j++ {
				out.data[i*b.c+j] += av * b.data[k*b.c+j]
			}
		}
	}

	return out, nil
}

// Dagger returns the conjugate transpose m†.
func Dagger(m *CDense) (*CDense, error) {
	if m == nil {
		return nil, fmt.Errorf("Dagger: %w", ErrNilMatrix)
	}
	out := &CDense{r: m.c, c: m.r, data: make([]complex128, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*out.c+i] = cmplx.Conj(m.data[i*m.c+j])
		}
	}

	return out, nil
}

// Trace returns Σ m[i,i]. Returns ErrNilMatrix or ErrNonSquare.
func Trace(m *CDense) (complex128, error) {
	if m == nil {
		return 0, fmt.Errorf("Trace: %w", ErrNilMatrix)
	}
	if m.r != m.c {
		return 0, fmt.Errorf("Trace(%dx%d): %w", m.r, m.c, ErrNonSquare)
	}
	var tr complex128
	for i := 0; i < m.r; i++ {
		tr += m.data[i*m.c+i]
	}

	return tr, nil
}

// HSInner returns the Hilbert–Schmidt inner product tr(a·b†) = Σ a[i,j]·conj(b[i,j]).
// Returns ErrNilMatrix or ErrDimensionMismatch.
func HSInner(a, b *CDense) (complex128, error) {
	if a == nil || b == nil {
		return 0, fmt.Errorf("HSInner: %w", ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return 0, fmt.Errorf("HSInner(%dx%d,%dx%d): %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	var acc complex128
	for i := range a.data {
		acc += a.data[i] * cmplx.Conj(b.data[i])
	}

	return acc, nil
}

// Kron returns the Kronecker product a⊗b.
// Returns ErrNilMatrix.
func Kron(a, b *CDense) (*CDense, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Kron: %w", ErrNilMatrix)
	}
	out := &CDense{r: a.r * b.r, c: a.c * b.c, data: make([]complex128, a.r*b.r*a.c*b.c)}
	var av complex128
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			av = a.data[i*a.c+j]
			if av == 0 {
				continue
			}
			for k := 0; k < b.r; k++ {
				for l := 0; l < b.c; l++ {
					out.data[(i*b.r+k)*out.c+(j*b.c+l)] = av * b.data[k*b.c+l]
				}
			}
		}
	}

	return out, nil
}
