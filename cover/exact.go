package cover

import "fmt"

// MinimumCover returns a minimum-cardinality vertex cover of g, as ascending
// vertex indices.
//
// Every subset of {0..n-1} is enumerated with Subsets and checked with
// IsCover; the smallest valid one wins. Among several minimum covers the one
// with the smallest bitmask (first in enumeration order) is returned. The
// full vertex set is always valid, so a result exists for every well-formed
// graph; for n=0 it is empty.
//
// This is an exponential, NP-hard search: Θ(2^n) subsets, each validated in
// O(n+E). Subsets not strictly smaller than the current best are skipped
// before validation. Graphs with more than Options.MaxExactVertices vertices
// are rejected with ErrTooManyVertices; use ApproximateCover for those.
//
// Errors:
//   - ValidateGraph sentinels for malformed input.
//   - ErrTooManyVertices, ErrOptionViolation.
func MinimumCover(g Graph, opts ...Option) ([]int, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	n, err := validateGraph(g)
	if err != nil {
		return nil, fmt.Errorf("MinimumCover: %w", err)
	}
	best, err := minimumCover(g, n, o)
	if err != nil {
		return nil, fmt.Errorf("MinimumCover: %w", err)
	}

	return best.Slice(), nil
}

// minimumCover runs the exhaustive search on an already validated graph.
func minimumCover(g Graph, n int, o Options) (*VertexSet, error) {
	if n > o.MaxExactVertices {
		return nil, fmt.Errorf("n=%d > max=%d: %w", n, o.MaxExactVertices, ErrTooManyVertices)
	}
	subsets, err := Subsets(n)
	if err != nil {
		return nil, err
	}

	log := o.Logger.WithName("exact")
	log.V(1).Info("starting exhaustive search", "vertices", n)

	best := FullVertexSet(n)
	bestSize := n
	var checked int
	for s := range subsets {
		if s.Len() >= bestSize {
			continue
		}
		checked++
		if IsCover(g, s) {
			best = s.Clone()
			bestSize = best.Len()
			log.V(2).Info("improved cover", "size", bestSize, "cover", best.String())
		}
	}

	log.V(1).Info("search finished", "vertices", n, "size", bestSize, "validated", checked)

	return best, nil
}
