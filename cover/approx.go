package cover

import "fmt"

// ApproximateCover returns a valid vertex cover of g computed by randomized
// vertex deletion, as ascending vertex indices.
//
// Procedure:
//  1. Start from the full vertex set (always a cover).
//  2. Remove a uniformly random vertex that is still in the set.
//  3. If the set is still a cover, keep going; otherwise put the vertex back
//     and stop.
//
// The loop stops at the first removal that breaks validity, so the result is
// not necessarily irreducible and carries no approximation-ratio bound. The
// candidates are kept in a dense slice and sampled by index, so each step is
// O(1) plus one IsCover call: O(n·(n+E)) overall, at most n iterations.
//
// Randomness comes from Options (WithSeed / WithRand). Seed 0 maps to a
// fixed default, so repeated calls with equal options return equal covers.
//
// Errors:
//   - ValidateGraph sentinels for malformed input.
//   - ErrOptionViolation.
func ApproximateCover(g Graph, opts ...Option) ([]int, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	n, err := validateGraph(g)
	if err != nil {
		return nil, fmt.Errorf("ApproximateCover: %w", err)
	}

	return approximateCover(g, n, o).Slice(), nil
}

// approximateCover runs the deletion loop on an already validated graph.
func approximateCover(g Graph, n int, o Options) *VertexSet {
	set := FullVertexSet(n)
	pool := make([]int, n)
	for v := range pool {
		pool[v] = v
	}

	log := o.Logger.WithName("heuristic")
	rng := o.source()
	for len(pool) > 0 {
		v := popRandom(&pool, rng)
		set.Remove(v)
		if !IsCover(g, set) {
			set.Add(v)
			log.V(2).Info("removal breaks cover, stopping", "vertex", v)
			break
		}
		log.V(2).Info("removed vertex", "vertex", v, "remaining", set.Len())
	}

	log.V(1).Info("heuristic finished", "vertices", n, "size", set.Len())

	return set
}
