// Package: lvcover/builder
//
// impl_empty.go - implementation of Empty(n) constructor.
//
// Contract:
//   - n ≥ 0 (else ErrTooFewVertices). Empty(0) is a no-op.
//   - Adds vertices via cfg.idFn in ascending index order; emits no edges.
//
// Every vertex of Empty(n) is isolated, so the only cover is the full set.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcover/core"
)

// Empty returns a Constructor that adds n isolated vertices.
func Empty(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 0 {
			return fmt.Errorf("%s: n=%d < min=0: %w", methodEmpty, n, ErrTooFewVertices)
		}

		return addVertices(g, methodEmpty, n, cfg.idFn)
	}
}
