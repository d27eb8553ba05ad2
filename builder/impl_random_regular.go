// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// impl_random_regular.go - implementation of RandomRegular(n, d) constructor.
//
// Model: d-regular simple graph via stub matching with bounded retries.
// Stubs are shuffled with cfg.rng and paired consecutively; a pairing with a
// loop or a repeated pair is discarded before the graph is touched.
//
// Contract:
//   • n ≥ 1; 0 ≤ d < n; n·d even (else ErrTooFewVertices).
//   • cfg.rng must be non-nil when d > 0 (else ErrNeedRandSource);
//     d=0 gives Empty(n) without drawing.
//   • ErrConstructFailed after maxStubMatchingAttempts invalid pairings;
//     vertices have been added by then, edges have not.
//
// Complexity: ~O(n·d) per attempt; attempts are constant-bounded.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcover/core"
)

// RandomRegular returns a Constructor that builds an undirected d-regular graph.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Parameter validation: n≥1, 0≤d<n, n·d even.
		if n < MinRandomVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomRegular, n, MinRandomVertices, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil && d > 0 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}

		// 2) Vertices.
		if err := addVertices(g, methodRandomRegular, n, cfg.idFn); err != nil {
			return err
		}
		stubCount := n * d
		if stubCount == 0 {
			return nil
		}

		// 3) Stubs: vertex i repeated d times, i asc.
		stubs := make([]int, 0, stubCount)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		// 4) Shuffle and validate until a simple pairing appears.
		rng := cfg.rng
		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs) {
				continue
			}
			for i := 0; i < stubCount; i += 2 {
				if err := addEdge(g, methodRandomRegular, cfg.idFn(stubs[i]), cfg.idFn(stubs[i+1])); err != nil {
					return err
				}
			}

			return nil
		}

		return fmt.Errorf("%s: no simple pairing after %d attempts (n=%d, d=%d): %w",
			methodRandomRegular, maxStubMatchingAttempts, n, d, ErrConstructFailed)
	}
}

// simplePairing reports whether consecutive stub pairs form neither a loop
// nor a repeated unordered pair.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
