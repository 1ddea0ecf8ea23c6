// Package symmetry applies coordinate relabelings to simplex states and
// expands a state's orbit under a symmetry set.
//
// A Permutation is a relabeling of the d² coordinate slots; the Orbit of a
// coordinate vector is the sequence of its images under every supplied
// permutation, in generated order. When the vector has no internal duplicate
// values the images are deduplicated — distinct permutation objects can
// produce numerically coincident images only through degenerate coordinates,
// and those degenerate cases keep every image.
//
// All operations are pure: inputs are never mutated, images are fresh slices.
package symmetry
