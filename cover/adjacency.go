package cover

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvcover/core"
)

// AdjacencyList is the index-based Graph implementation: row v lists the
// neighbors of vertex v.
type AdjacencyList [][]int

var _ Graph = AdjacencyList(nil)

// VertexCount returns the number of rows.
func (a AdjacencyList) VertexCount() int { return len(a) }

// NeighborsOf returns row v, or nil when v is out of range.
func (a AdjacencyList) NeighborsOf(v int) []int {
	if v < 0 || v >= len(a) {
		return nil
	}

	return a[v]
}

// NewAdjacencyList builds a symmetric adjacency list over n vertices from an
// undirected edge list. Rows are sorted ascending; repeated edges collapse.
//
// Errors:
//   - ErrNegativeVertexCount if n < 0.
//   - ErrNeighborOutOfRange if an endpoint is outside 0..n-1.
//   - ErrSelfLoop for an edge {v,v}.
//
// Complexity: O(n + E log E).
func NewAdjacencyList(n int, edges [][2]int) (AdjacencyList, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewAdjacencyList: n=%d: %w", n, ErrNegativeVertexCount)
	}
	adj := make(AdjacencyList, n)
	for i, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("NewAdjacencyList: edge %d (%d,%d) with n=%d: %w",
				i, u, v, n, ErrNeighborOutOfRange)
		}
		if u == v {
			return nil, fmt.Errorf("NewAdjacencyList: edge %d (%d,%d): %w", i, u, v, ErrSelfLoop)
		}
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}
	for v := range adj {
		slices.Sort(adj[v])
		adj[v] = slices.Compact(adj[v])
	}

	return adj, nil
}

// FromCore indexes a core.Graph: vertex IDs are sorted ascending and vertex
// ids[i] becomes index i. Rows come out ascending because NeighborIDs is sorted.
//
// Errors:
//   - ErrNilGraph if g == nil.
//   - core errors if the graph is mutated concurrently mid-conversion.
//
// Complexity: O(V log V + E log d).
func FromCore(g *core.Graph) (AdjacencyList, []string, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	ids := g.Vertices()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	adj := make(AdjacencyList, len(ids))
	for i, id := range ids {
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, nil, fmt.Errorf("FromCore: NeighborIDs(%s): %w", id, err)
		}
		row := make([]int, 0, len(nbrs))
		for _, nbr := range nbrs {
			j, ok := index[nbr]
			if !ok {
				return nil, nil, fmt.Errorf("FromCore: neighbor %s of %s: %w", nbr, id, core.ErrVertexNotFound)
			}
			row = append(row, j)
		}
		adj[i] = row
	}

	return adj, ids, nil
}
