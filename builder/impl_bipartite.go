// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1,n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Adds left IDs "{leftPrefix}{i}" (i=0..n1-1), then right IDs
//     "{rightPrefix}{j}" (j=0..n2-1).
//   • Emits every cross pair L_i—R_j, i asc outer, j asc inner.
//
// Complexity:
//   • Time: O(n1 + n2) vertices + O(n1·n2) edges.
//   • Space: O(n1 + n2) for ID slices.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcover/core"
)

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
// The smaller side is a minimum cover.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < MinPartitionSize || n2 < MinPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, MinPartitionSize, ErrTooFewVertices)
		}

		leftIDs := makeIDs(n1, PrefixedIDFn(cfg.leftPrefix))
		rightIDs := makeIDs(n2, PrefixedIDFn(cfg.rightPrefix))
		for _, ids := range [][]string{leftIDs, rightIDs} {
			for _, id := range ids {
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodCompleteBipartite, id, err)
				}
			}
		}

		for _, u := range leftIDs {
			for _, v := range rightIDs {
				if err := addEdge(g, methodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
