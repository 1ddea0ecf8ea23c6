// Package qmatrix provides the complex dense matrix algebra that density
// matrix analysis rests on: construction and arithmetic over flat row-major
// complex128 storage, Hermitian eigenvalues via cyclic Jacobi rotations,
// partial transposition, realignment (reshuffling), trace norm, and the
// fixed-precision rounding applied before every numeric threshold test.
//
// ✨ Key features:
//   - CDense — flat row-major complex matrix with shape-validated
//     constructors and deterministic operations
//   - EigenHermitian — largest-pivot complex Jacobi sweeps, stable and
//     deterministic for identical inputs
//   - PartialTranspose / Reshuffle — the two index rearrangements behind
//     the PPT and realignment entanglement criteria
//   - TraceNorm — Σ singular values via EigenHermitian(m†·m)
//   - IsPPT — positive partial transpose within a decimal precision
//
// All operations are pure: inputs are never mutated, results are freshly
// allocated. Errors are package sentinels matched via errors.Is; panics are
// reserved for programmer errors (out-of-range indexing).
//
// Performance:
//
//   - EigenHermitian: O(maxIter · n²) pivot scans + O(n) updates per
//     rotation; fine for the d²×d² matrices (n ≤ 16, 81, …) of this domain.
package qmatrix
