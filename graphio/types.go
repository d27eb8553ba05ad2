package graphio

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for graph documents.
var (
	// ErrBadEdge is returned for an edge that does not name two distinct,
	// non-empty vertices.
	ErrBadEdge = errors.New("graphio: malformed edge")

	// ErrBadDocument is returned when the input is not a valid graph document.
	ErrBadDocument = errors.New("graphio: malformed document")

	// ErrUnsupportedFormat is returned for an unknown output format.
	ErrUnsupportedFormat = errors.New("graphio: unsupported format")
)

// Document is the serialized form of an undirected graph.
type Document struct {
	// Vertices lists vertex IDs, including isolated ones.
	Vertices []string `json:"vertices,omitempty"`
	// Edges lists [u, v] pairs.
	Edges [][]string `json:"edges,omitempty"`
	// Adjacency maps a vertex to its neighbors.
	Adjacency map[string][]string `json:"adjacency,omitempty"`
}

// ResultDocument is the serialized form of a cover result.
type ResultDocument struct {
	Algorithm      string   `json:"algorithm"`
	Vertices       int      `json:"vertices"`
	CoverSize      int      `json:"coverSize"`
	Cover          []string `json:"cover"`
	IndependentSet []string `json:"independentSet"`
}

// Format selects the document encoding.
type Format string

const (
	// FormatYAML renders YAML.
	FormatYAML Format = "yaml"
	// FormatJSON renders indented JSON.
	FormatJSON Format = "json"
)

// ParseFormat maps "yaml", "yml" or "json" (case-insensitive) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}
