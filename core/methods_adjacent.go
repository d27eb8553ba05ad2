// File: methods_adjacent.go
// Role: Neighborhood queries and cloning.
//
// Determinism:
//   - NeighborIDs() returns unique IDs sorted ascending.
package core

import "sort"

// NeighborIDs returns the unique set of vertex IDs adjacent to id, sorted
// lexicographically ascending. Parallel edges contribute a single entry.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]string, 0, len(g.adjacency[id]))
	for nbr := range g.adjacency[id] {
		out = append(out, nbr)
	}
	sort.Strings(out)

	return out, nil
}

// Clone returns a deep copy of the Graph: vertices, edges (same IDs) and
// the multi-edge flag. The clone continues the source's edge ID sequence.
//
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		allowMulti: g.allowMulti,
		edgeSeq:    g.edgeSeq,
		vertices:   make(map[string]*Vertex, len(g.vertices)),
		edges:      make(map[string]*Edge, len(g.edges)),
		adjacency:  make(map[string]map[string]map[string]struct{}, len(g.adjacency)),
	}
	for id := range g.vertices {
		clone.addVertexLocked(id)
	}
	for eid, e := range g.edges {
		cp := *e
		clone.edges[eid] = &cp
		clone.link(e.From, e.To, eid)
		clone.link(e.To, e.From, eid)
	}

	return clone
}
