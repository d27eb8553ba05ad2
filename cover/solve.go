// Package cover - unified dispatcher for the cover solvers.
//
// This file provides the canonical entry points that return both the cover
// and the derived independent set:
//
//   - Solve: accept any Graph and route to Exact or Heuristic (or pick one
//     with Auto).
//   - SolveWithGraph: accept *core.Graph, index it with FromCore, delegate
//     to Solve and map the indices back to vertex IDs.
package cover

import (
	"fmt"

	"github.com/katalvlaran/lvcover/core"
)

// Solve validates g, runs the solver chosen by Options.Algorithm and derives
// the independent set from the resulting cover.
//
// Auto resolves to Exact when n ≤ Options.MaxExactVertices and to Heuristic
// otherwise; Result.Algorithm reports the solver that actually ran.
//
// Errors: ValidateGraph sentinels, ErrTooManyVertices (explicit Exact only),
// ErrUnsupportedAlgorithm, ErrOptionViolation.
//
// Complexity: validation O(n+E), then per algorithm:
//   - Exact:     O(2^n·(n+E)).
//   - Heuristic: O(n·(n+E)).
func Solve(g Graph, opts ...Option) (Result, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return Result{}, err
	}
	n, err := validateGraph(g)
	if err != nil {
		return Result{}, fmt.Errorf("Solve: %w", err)
	}

	algo := o.Algorithm
	if algo == Auto {
		algo = Heuristic
		if n <= o.MaxExactVertices {
			algo = Exact
		}
	}
	o.Logger.V(1).Info("solving", "algorithm", algo.String(), "vertices", n)

	var c *VertexSet
	switch algo {
	case Exact:
		c, err = minimumCover(g, n, o)
		if err != nil {
			return Result{}, fmt.Errorf("Solve: %w", err)
		}
	case Heuristic:
		c = approximateCover(g, n, o)
	default:
		return Result{}, fmt.Errorf("Solve: %s: %w", algo, ErrUnsupportedAlgorithm)
	}

	return Result{
		Algorithm:      algo,
		Cover:          c.Slice(),
		IndependentSet: Complement(FullVertexSet(n), c).Slice(),
	}, nil
}

// SolveWithGraph indexes g (sorted vertex IDs → 0..n-1), delegates to Solve
// and maps both sets back to vertex IDs.
//
// Errors: ErrNilGraph, plus everything Solve returns.
func SolveWithGraph(g *core.Graph, opts ...Option) (LabeledResult, error) {
	adj, ids, err := FromCore(g)
	if err != nil {
		return LabeledResult{}, fmt.Errorf("SolveWithGraph: %w", err)
	}
	res, err := Solve(adj, opts...)
	if err != nil {
		return LabeledResult{}, fmt.Errorf("SolveWithGraph: %w", err)
	}

	return LabeledResult{
		Algorithm:      res.Algorithm,
		Cover:          labels(ids, res.Cover),
		IndependentSet: labels(ids, res.IndependentSet),
		Indices:        res,
	}, nil
}

// labels maps indices to ids[idx].
func labels(ids []string, idx []int) []string {
	out := make([]string, len(idx))
	for i, v := range idx {
		out[i] = ids[v]
	}

	return out
}
