// Package core provides a thread-safe in-memory undirected graph with string
// vertex identifiers. It is the graph accessor consumed by the cover solvers
// (through cover.FromCore), the builder fixtures and the graphio loaders.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected, unweighted edges only; an edge u–v is visible from both ends.
//   - No self-loops (AddEdge(v,v) → ErrLoopNotAllowed).
//   - Parallel edges are rejected unless the graph was created WithMultiEdges().
//   - Edge IDs are generated atomically ("e1", "e2", …).
//
// Determinism:
//
//	Vertices()    - IDs sorted lexicographically ascending.
//	NeighborIDs() - unique adjacent IDs sorted ascending.
//	Edges()       - edges in insertion order.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                  // O(1)
//	HasVertex(id string) bool                   // O(1)
//	RemoveVertex(id string) error               // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to string) (edgeID string, err error) // O(1)†
//	RemoveEdge(edgeID string) error             // O(1)
//	HasEdge(from, to string) bool               // O(1)
//
//	// Query
//	NeighborIDs(id string) ([]string, error)    // O(d·log d)
//	Vertices() []string                         // O(V·log V)
//	Edges() []*Edge                             // O(E·log E)
//	Degree(id string) (int, error)              // O(d)
//	VertexCount(), EdgeCount() int              // O(1)
//
//	// Cloning
//	Clone() *Graph                              // O(V+E)
//
// † endpoints are created on demand.
//
// Concurrency:
//
// One sync.RWMutex guards the vertex catalog, the edge catalog and the
// adjacency index; all exported methods are safe for concurrent use.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - AddEdge(v, v).
//	ErrMultiEdgeNotAllowed - parallel edge without WithMultiEdges().
package core
