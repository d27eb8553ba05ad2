// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Constructors return sentinel errors; only option constructors panic (programmer error).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcover/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters before touching g and return sentinel errors.
//   - Add vertices via cfg.idFn (except the fixed CenterVertexID hub).
//   - Emit edges in a stable, documented order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new simple core.Graph, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped as "BuildGraph: %w" and returned
// immediately; the partially built graph is discarded.
//
// Composing constructors shares vertex IDs: Path(3) followed by Star(3)
// reuses "1" and "2" (AddVertex is idempotent), but a repeated edge is
// rejected with core.ErrMultiEdgeNotAllowed.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Constructor sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// BuildInto resolves opts and applies cons to an existing graph g.
// Unlike BuildGraph, g keeps whatever the successful constructors added
// before a failing one.
//
// Errors: ErrConstructFailed for a nil g or nil constructor, plus
// constructor sentinels.
func BuildInto(g *core.Graph, opts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("BuildInto: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildInto: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("BuildInto: %w", err)
		}
	}

	return nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Empty(n)                 n isolated vertices (n ≥ 0).
// Path(n)                  P_n, n ≥ 2.
// Cycle(n)                 C_n, n ≥ 3.
// Star(n)                  hub "Center" + n-1 leaves, n ≥ 2.
// Wheel(n)                 C_{n-1} + hub "Center", n ≥ 4.
// Complete(n)              K_n, n ≥ 1.
// CompleteBipartite(a, b)  K_{a,b}, a,b ≥ 1, IDs "<L><i>" / "<R><j>".
// Grid(rows, cols)         4-neighborhood grid, IDs "r,c".
// RandomSparse(n, p)       G(n,p); needs an RNG when 0 < p < 1.
// RandomRegular(n, d)      d-regular by stub matching; needs an RNG.
