package graphio

import (
	"fmt"
	"io"
	"sort"

	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/lvcover/core"
)

// Decode reads a YAML or JSON graph document from r and builds a simple
// undirected core.Graph.
//
// Steps:
//  1. Strictly unmarshal into Document (unknown keys fail).
//  2. Add listed vertices in document order.
//  3. Add edges, then adjacency entries in sorted key order; pairs already
//     present are skipped.
//
// Errors:
//   - ErrBadDocument for unreadable or unparsable input.
//   - ErrBadEdge for an edge without two distinct non-empty endpoints.
//   - core.ErrEmptyVertexID for an empty listed vertex.
func Decode(r io.Reader) (*core.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading graph document: %w: %w", ErrBadDocument, err)
	}

	var doc Document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing graph document: %w: %w", ErrBadDocument, err)
	}

	return doc.Graph()
}

// Graph builds a core.Graph from d. See Decode for the rules.
func (d Document) Graph() (*core.Graph, error) {
	g := core.NewGraph()

	for i, id := range d.Vertices {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("vertices[%d]: %w", i, err)
		}
	}

	for i, e := range d.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("edges[%d]: want 2 endpoints, got %d: %w", i, len(e), ErrBadEdge)
		}
		if err := addUndirected(g, e[0], e[1]); err != nil {
			return nil, fmt.Errorf("edges[%d]: %w", i, err)
		}
	}

	keys := make([]string, 0, len(d.Adjacency))
	for k := range d.Adjacency {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, u := range keys {
		if u == "" {
			return nil, fmt.Errorf("adjacency: empty vertex ID: %w", ErrBadEdge)
		}
		if err := g.AddVertex(u); err != nil {
			return nil, fmt.Errorf("adjacency[%s]: %w", u, err)
		}
		for _, v := range d.Adjacency[u] {
			if err := addUndirected(g, u, v); err != nil {
				return nil, fmt.Errorf("adjacency[%s]: %w", u, err)
			}
		}
	}

	return g, nil
}

// addUndirected adds u—v unless it already exists.
func addUndirected(g *core.Graph, u, v string) error {
	if u == "" || v == "" || u == v {
		return fmt.Errorf("[%q, %q]: %w", u, v, ErrBadEdge)
	}
	if g.HasEdge(u, v) {
		return nil
	}
	if _, err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("[%q, %q]: %w", u, v, err)
	}

	return nil
}
