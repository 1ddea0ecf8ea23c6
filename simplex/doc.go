// Package simplex models Bell-diagonal (magic-simplex) qudit states and the
// physics artifacts their entanglement analysis consumes.
//
// A state of a d×d bipartite system is a point in a simplex: a vector of d²
// real coordinates over the Weyl Bell projector basis. This package provides:
//
//   - CoordState — coordinates plus a mutable entanglement-class label
//     (UNKNOWN / SEP / BOUND / NPT / PPT_UNKNOWN); the label is mutated only
//     by the batch classifier
//   - StandardBasis / CreateDensityState — the Weyl Bell basis and the map
//     from coordinates to a d²×d² density matrix ρ = Σᵢ cᵢ·Pᵢ
//   - BoundedCoordEW — numeric entanglement witnesses: a coordinate vector
//     with an admissible inner-product interval
//   - MUBSet / Correlation — mutually unbiased bases (prime d) and the
//     mutual-predictability correlation sum
//   - QPDict / GetConcurrenceQP — quasi-pure concurrence coefficient tables
//     evaluated as a quadratic form over coordinates
//   - NewGellMann / SpinBasis — traceless Hermitian operator bases and their
//     bipartite products for the spin-representation separability bound
//
// Every artifact is immutable after construction and safe to share read-only
// across concurrent analyses.
package simplex
