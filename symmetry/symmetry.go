package symmetry

import (
	"errors"
	"fmt"
)

// ErrBadPermutation is returned when a permutation's length does not match
// the coordinate vector, or its entries are not a bijection on [0, n).
var ErrBadPermutation = errors.New("symmetry: invalid permutation")

// Permutation relabels coordinate slots: the image of coords under p has
// image[i] = coords[p[i]].
type Permutation []int

// Identity returns the identity permutation on n slots.
func Identity(n int) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// Validate checks that p is a bijection on [0, n).
// Returns ErrBadPermutation otherwise.
func (p Permutation) Validate(n int) error {
	if len(p) != n {
		return fmt.Errorf("Validate: %d entries for %d slots: %w", len(p), n, ErrBadPermutation)
	}
	seen := make([]bool, n)
	for i, v := range p {
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("Validate: entry %d=%d: %w", i, v, ErrBadPermutation)
		}
		seen[v] = true
	}

	return nil
}

// Apply returns the image of coords under p as a fresh slice.
// Returns ErrBadPermutation when p is not a permutation of the coordinates.
func (p Permutation) Apply(coords []float64) ([]float64, error) {
	if err := p.Validate(len(coords)); err != nil {
		return nil, err
	}
	out := make([]float64, len(coords))
	for i, v := range p {
		out[i] = coords[v]
	}

	return out, nil
}

// Orbit expands coords under the symmetry set: one image per permutation, in
// the given order. Images are deduplicated (first occurrence kept, exact
// element-wise comparison) iff coords has no internal duplicate values;
// degenerate coordinates keep every image.
//
// Pass the full symmetry group — including the identity — when the original
// state itself must appear in the orbit.
//
// Returns ErrBadPermutation from the first invalid permutation.
func Orbit(coords []float64, perms []Permutation) ([][]float64, error) {
	dedup := !hasDuplicates(coords)
	orbit := make([][]float64, 0, len(perms))
	for _, p := range perms {
		img, err := p.Apply(coords)
		if err != nil {
			return nil, fmt.Errorf("Orbit: %w", err)
		}
		if dedup && containsImage(orbit, img) {
			continue
		}
		orbit = append(orbit, img)
	}

	return orbit, nil
}

// hasDuplicates reports whether any coordinate value occurs twice.
func hasDuplicates(coords []float64) bool {
	seen := make(map[float64]struct{}, len(coords))
	for _, v := range coords {
		if _, ok := seen[v]; ok {
			return true
		}
		seen[v] = struct{}{}
	}

	return false
}

// containsImage reports whether img already occurs in orbit (exact equality).
func containsImage(orbit [][]float64, img []float64) bool {
	for _, o := range orbit {
		same := true
		for i := range o {
			if o[i] != img[i] {
				same = false

				break
			}
		}
		if same {
			return true
		}
	}

	return false
}
