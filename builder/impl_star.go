// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds hub vertex with fixed ID CenterVertexID.
//   - Adds leaves via cfg.idFn for i = 1..n-1 and emits spokes Center—leaf[i]
//     in increasing leaf order.
//
// The hub alone is the minimum cover of a star.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcover/core"
)

// Star returns a Constructor that builds a star topology with n vertices:
// one hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, CenterVertexID, err)
		}

		var (
			i      int
			leafID string
		)
		for i = 1; i < n; i++ {
			leafID = cfg.idFn(i)
			if err := g.AddVertex(leafID); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, leafID, err)
			}
			if err := addEdge(g, methodStar, CenterVertexID, leafID); err != nil {
				return err
			}
		}

		return nil
	}
}
