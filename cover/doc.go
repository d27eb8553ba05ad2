// Package cover computes vertex covers and the complementary independent sets
// of undirected graphs.
//
// Two solvers share one correctness oracle, IsCover:
//
//   - MinimumCover: exhaustive search over every subset (Subsets).
//     Complexity O(2ⁿ·(n+E)). Returns a minimum cover; ties go to the
//     smallest bitmask. Bounded by Options.MaxExactVertices (default 24).
//   - ApproximateCover: randomized vertex deletion. Complexity O(n·(n+E)).
//     Returns a valid cover, stopping at the first removal that breaks
//     validity; no approximation ratio is claimed.
//
// OptimalIndependentSet and ApproximateIndependentSet return the complement of
// the corresponding cover. Solve and SolveWithGraph return both at once.
//
// Cover rule:
//
// A set S is a cover when every vertex outside S has at least one neighbor and
// all of its neighbors lie in S. An isolated vertex must therefore be inside
// every cover, which differs from the textbook definition; the solvers, the
// tests and the complement all follow this rule.
//
// Input:
//
// Solvers accept any Graph (VertexCount + NeighborsOf). AdjacencyList is the
// built-in implementation, and FromCore indexes a *core.Graph. Malformed input
// (out-of-range neighbor, self-loop, asymmetric adjacency) is rejected with a
// wrapped sentinel before any search starts.
//
// Determinism:
//
// All results are ascending index slices. The heuristic draws from
// Options.Rand or from a seed (0 ⇒ a fixed default), so equal options give
// equal covers.
package cover
