// Package cover_test provides shared fixtures for the cover tests: small named
// graphs, a seeded random graph generator and an independent brute-force
// oracle used to cross-check the solvers.
package cover_test

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcover/cover"
)

const (
	// seedDet is the deterministic seed used for random graph fixtures.
	seedDet = int64(42)

	// maxBruteForce is the largest n cross-checked exhaustively.
	maxBruteForce = 8
)

// mustAdj builds an AdjacencyList or fails the test.
func mustAdj(t testing.TB, n int, edges ...[2]int) cover.AdjacencyList {
	t.Helper()
	adj, err := cover.NewAdjacencyList(n, edges)
	require.NoError(t, err)

	return adj
}

// pathGraph returns P_n: 0–1–…–(n-1).
func pathGraph(t testing.TB, n int) cover.AdjacencyList {
	t.Helper()
	edges := make([][2]int, 0, n)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}

	return mustAdj(t, n, edges...)
}

// completeGraph returns K_n.
func completeGraph(t testing.TB, n int) cover.AdjacencyList {
	t.Helper()
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}

	return mustAdj(t, n, edges...)
}

// starGraph returns a star with center 0 and leaves 1..n-1.
func starGraph(t testing.TB, n int) cover.AdjacencyList {
	t.Helper()
	edges := make([][2]int, 0, n)
	for i := 1; i < n; i++ {
		edges = append(edges, [2]int{0, i})
	}

	return mustAdj(t, n, edges...)
}

// randomGraph samples G(n,p) deterministically from rng.
func randomGraph(t testing.TB, n int, p float64, rng *rand.Rand) cover.AdjacencyList {
	t.Helper()
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	return mustAdj(t, n, edges...)
}

// bruteIsCover is an edge-oriented restatement of the cover rule: every edge
// has an endpoint in mask and every isolated vertex is in mask.
func bruteIsCover(adj cover.AdjacencyList, mask uint64) bool {
	for u, row := range adj {
		in := mask&(1<<uint(u)) != 0
		if len(row) == 0 && !in {
			return false
		}
		for _, v := range row {
			if !in && mask&(1<<uint(v)) == 0 {
				return false
			}
		}
	}

	return true
}

// bruteMinSize returns the minimum cover size by scanning every mask.
func bruteMinSize(adj cover.AdjacencyList) int {
	n := len(adj)
	best := n
	for mask := uint64(0); mask < 1<<uint(n); mask++ {
		if c := bits.OnesCount64(mask); c < best && bruteIsCover(adj, mask) {
			best = c
		}
	}

	return best
}

// requireCover asserts that the index slice is a valid cover of g.
func requireCover(t testing.TB, g cover.Graph, c []int) {
	t.Helper()
	require.True(t, cover.IsCover(g, cover.VertexSetOf(c...)), "not a cover: %v", c)
}

// requirePartition asserts that a and b are disjoint and together hold 0..n-1.
func requirePartition(t testing.TB, n int, a, b []int) {
	t.Helper()
	seen := make([]int, n)
	for _, v := range a {
		seen[v]++
	}
	for _, v := range b {
		seen[v]++
	}
	for v, c := range seen {
		require.Equal(t, 1, c, "vertex %d appears %d times", v, c)
	}
}
