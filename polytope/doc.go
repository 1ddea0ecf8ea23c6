// Package polytope provides convex polytope membership tests for simplex
// coordinate points, in both classic representations:
//
//   - VPolytope — vertex (V-) representation: a point is inside iff it is a
//     convex combination of the vertices; decided as a phase-1 LP
//     feasibility problem (find λ ≥ 0, Σλ = 1, Vᵀλ = p) via gonum's
//     simplex solver
//   - HPolytope — half-space (H-) representation A·x ≤ b: a point is inside
//     iff every inequality holds within a fixed ε
//
// Both satisfy the Polytope interface consumed by the kernel (separability
// enclosure) check. Containment is pure and deterministic; polytopes are
// immutable after construction and safe to share read-only.
package polytope
