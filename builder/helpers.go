// Package builder provides internal helper functions used by Constructor
// implementations.
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcover/core"
)

// addVertices inserts idFn(0..n-1) in ascending index order.
// Re-adding an existing vertex is a no-op in core.Graph.
//
// Complexity: O(n).
func addVertices(g *core.Graph, method string, n int, idFn IDFn) error {
	var (
		i   int
		id  string
		err error
	)
	for i = 0; i < n; i++ {
		id = idFn(i)
		if err = g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// addEdge inserts u—v, prefixing failures with method.
func addEdge(g *core.Graph, method, u, v string) error {
	if _, err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s—%s): %w", method, u, v, err)
	}

	return nil
}

// addCompleteEdges connects every unordered pair in ids, i<j order.
//
// Complexity: O(m²) where m = len(ids).
func addCompleteEdges(g *core.Graph, method string, ids []string) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := addEdge(g, method, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}

// makeIDs returns idFn(0..n-1).
func makeIDs(n int, idFn IDFn) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = idFn(i)
	}

	return ids
}
