// Package cover - graph validation and the cover predicate.
//
// IsCover is the single correctness oracle shared by the exact and heuristic
// solvers. ValidateGraph runs once per solver call, before any search.
package cover

import "fmt"

// ValidateGraph checks the Graph preconditions every solver relies on:
//   - g non-nil, VertexCount() ≥ 0;
//   - every neighbor index lies in 0..n-1;
//   - no vertex lists itself;
//   - adjacency is symmetric (u lists v ⇔ v lists u).
//
// Repeated neighbor entries are tolerated.
//
// Complexity: O(n + E) time, O(E) space.
func ValidateGraph(g Graph) error {
	_, err := validateGraph(g)

	return err
}

// validateGraph is ValidateGraph returning n on success.
func validateGraph(g Graph) (int, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	n := g.VertexCount()
	if n < 0 {
		return 0, fmt.Errorf("ValidateGraph: n=%d: %w", n, ErrNegativeVertexCount)
	}

	type arc struct{ u, v int }
	arcs := make(map[arc]struct{})

	var u, v int
	for u = 0; u < n; u++ {
		for _, v = range g.NeighborsOf(u) {
			if v < 0 || v >= n {
				return 0, fmt.Errorf("ValidateGraph: vertex %d lists %d with n=%d: %w",
					u, v, n, ErrNeighborOutOfRange)
			}
			if v == u {
				return 0, fmt.Errorf("ValidateGraph: vertex %d: %w", u, ErrSelfLoop)
			}
			arcs[arc{u, v}] = struct{}{}
		}
	}
	for a := range arcs {
		if _, ok := arcs[arc{a.v, a.u}]; !ok {
			return 0, fmt.Errorf("ValidateGraph: %d lists %d but not vice versa: %w",
				a.u, a.v, ErrAsymmetricAdjacency)
		}
	}

	return n, nil
}

// IsCover reports whether s is a vertex cover of g under this package's rule:
//
//   - v ∈ s is satisfied;
//   - v ∉ s is satisfied only if v has at least one neighbor and every
//     neighbor of v is in s.
//
// An isolated vertex outside s therefore makes the whole check fail. This is
// stricter than the textbook definition, where isolated vertices never need
// covering, and it is the rule both solvers optimize against.
//
// Neighbor indices s does not contain (including out-of-range ones) count as
// "not in s". IsCover is pure: it never mutates g or s.
//
// Complexity: O(n + E).
func IsCover(g Graph, s *VertexSet) bool {
	if g == nil || s == nil {
		return false
	}

	n := g.VertexCount()
	for v := 0; v < n; v++ {
		if s.Contains(v) {
			continue
		}
		nbrs := g.NeighborsOf(v)
		if len(nbrs) == 0 {
			return false
		}
		for _, w := range nbrs {
			if !s.Contains(w) {
				return false
			}
		}
	}

	return true
}
