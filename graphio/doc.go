// Package graphio reads and writes graph documents and cover results.
//
// A graph document lists vertices and undirected edges, in YAML or JSON
// (JSON is accepted wherever YAML is, since it is a YAML subset):
//
//	vertices: [a, b, c, lonely]
//	edges:
//	  - [a, b]
//	  - [b, c]
//	adjacency:
//	  c: [a]
//
// vertices may be omitted for vertices that appear in an edge. adjacency
// is an alternative edge notation, one neighbor list per vertex. An edge given
// in both directions, or twice, is stored once. Unknown keys are rejected.
//
// Decode builds a *core.Graph; Encode writes one back with sorted vertices
// and edges in insertion order. EncodeResult renders a cover.LabeledResult.
package graphio
