// Package analyse runs the entanglement check battery over Bell-diagonal
// coordinate states.
//
// 🚀 What is analysed?
//
//	Seven independent, heterogeneous membership/witness tests:
//	  • kernel        — coordinate point inside a separability polytope
//	  • spinrep       — spin-representation coefficient norm bound ≤ 2
//	    (signals separability, unlike the rest)
//	  • ppt           — positive partial transpose of the density matrix
//	  • realign       — realignment (reshuffling) trace norm > 1
//	  • concurrenceQP — quasi-pure concurrence > 0
//	  • mub           — MUB mutual-predictability correlation > 2
//	  • numericEW     — any witness interval violated by the coordinate
//	    inner product
//
// ✨ Key contracts:
//   - Partial evaluation: a check runs iff its Specification flag is set AND
//     its artifacts are present; otherwise its Outcome stays NotEvaluated.
//     Missing artifacts are never an error and never default to false.
//   - Fixed-precision rounding precedes every threshold comparison.
//   - Checks are independent — no cross-check short-circuit — though
//     NumericEWCheck short-circuits internally over its witness list.
//
// AnalyseSymmetric amortizes the battery over a state's symmetry orbit:
// kernel and ppt are orbit invariants (first evaluation decides), the five
// entanglement-signaling checks are merged sticky-true (one positive member
// certifies the whole class; a negative stays provisional), and iteration
// stops early once every enabled check is resolved.
//
// All operations are synchronous and side-effect-free; the shared artifacts
// are read-only.
package analyse
