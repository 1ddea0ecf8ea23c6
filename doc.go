// Package qsimplex classifies the entanglement structure of Bell-diagonal
// qudit states — bipartite quantum states restricted to the magic simplex,
// parameterized by coordinate vectors.
//
// 🚀 What is qsimplex?
//
//	A pure, deterministic library that brings together:
//		• qmatrix/  — complex dense matrices, Hermitian Jacobi eigenvalues,
//		  partial transpose, realignment, trace norm
//		• simplex/  — coordinate states, Weyl standard basis, density states,
//		  entanglement witnesses, MUB sets, spin operator bases
//		• polytope/ — vertex- and half-space polytope membership (LP-backed)
//		• symmetry/ — coordinate permutations and orbit generation
//		• analyse/  — seven heterogeneous entanglement checks plus plain and
//		  symmetry-reduced orchestration with early exit
//		• classify/ — precedence classifier (NPT / SEP / BOUND / PPT_UNKNOWN /
//		  UNKNOWN) and conflict-detecting batch labeling
//
// ✨ Why choose qsimplex?
//
//   - Deterministic – fixed loop orders, fixed-precision rounding before
//     every numeric threshold comparison
//   - Partial-evaluation friendly – a missing artifact silently skips its
//     check; "not evaluated" is never collapsed into "false"
//   - Pure Go – no cgo; numerics via gonum where it fits, in-library
//     complex Jacobi where it does not
//
// Typical flow:
//
//	coords → analyse.Analyse / analyse.AnalyseSymmetric → classify.Classify
//
// Dive into each package's doc.go for the algorithmic details.
//
//	go get github.com/katalvlaran/qsimplex
package qsimplex
