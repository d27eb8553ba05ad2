// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges/EdgeCount.
//
// Determinism:
//   - Edges() returns edges in insertion order.
//   - nextEdgeID() is monotonic ("e" + decimal).
package core

import (
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix for edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates an undirected edge from–to and returns its ID.
// Missing endpoints are created.
//
// Steps:
//  1. Validate IDs and reject loops.
//  2. Lock, ensure endpoints, check the multi-edge constraint.
//  3. Generate the edge ID, store the edge, mirror the adjacency entry.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	eid, seq := g.nextEdgeID()
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, seq: seq}
	g.link(from, to, eid)
	g.link(to, from, eid)

	return eid, nil
}

// link records eid in adjacency[from][to]; callers hold the write lock.
func (g *Graph) link(from, to, eid string) {
	bucket, ok := g.adjacency[from][to]
	if !ok {
		bucket = make(map[string]struct{})
		g.adjacency[from][to] = bucket
	}
	bucket[eid] = struct{}{}
}

// unlink drops eid from adjacency[from][to] and prunes empty buckets.
func (g *Graph) unlink(from, to, eid string) {
	bucket := g.adjacency[from][to]
	delete(bucket, eid)
	if len(bucket) == 0 {
		delete(g.adjacency[from], to)
	}
}

// RemoveEdge deletes the edge with the given ID.
//
// Errors:
//   - ErrEdgeNotFound if no such edge exists.
func (g *Graph) RemoveEdge(eid string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	g.unlink(e.From, e.To, eid)
	g.unlink(e.To, e.From, eid)
	delete(g.edges, eid)

	return nil
}

// HasEdge reports whether at least one edge joins from and to.
// Orientation is irrelevant: HasEdge(u,v) == HasEdge(v,u).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// Edges returns every edge in insertion order.
// The returned pointers are shared with the graph; treat them as read-only.
//
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// EdgeCount returns |E| (parallel edges counted individually).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// nextEdgeID advances the counter and renders "e<n>"; callers hold the write lock.
func (g *Graph) nextEdgeID() (string, uint64) {
	g.edgeSeq++
	buf := make([]byte, 0, 8)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.edgeSeq, 10)

	return string(buf), g.edgeSeq
}
