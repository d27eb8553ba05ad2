package cover

import (
	"errors"
	"fmt"
	"strings"
)

// Graph is the read-only collaborator consumed by every solver.
//
// Vertices are indexed 0..VertexCount()-1. Adjacency must be symmetric
// (u lists v ⇔ v lists u) and loop-free; ValidateGraph enforces both.
type Graph interface {
	// VertexCount returns n ≥ 0.
	VertexCount() int
	// NeighborsOf returns the neighbor indices of v, 0 ≤ v < VertexCount().
	NeighborsOf(v int) []int
}

// Sentinel errors for cover operations. Callers branch with errors.Is.
var (
	// ErrNilGraph is returned when a nil Graph or *core.Graph is supplied.
	ErrNilGraph = errors.New("cover: graph is nil")

	// ErrNegativeVertexCount is returned when VertexCount() or a size argument is < 0.
	ErrNegativeVertexCount = errors.New("cover: negative vertex count")

	// ErrNeighborOutOfRange is returned when a neighbor index is outside 0..n-1.
	ErrNeighborOutOfRange = errors.New("cover: neighbor index out of range")

	// ErrAsymmetricAdjacency is returned when u lists v but v does not list u.
	ErrAsymmetricAdjacency = errors.New("cover: asymmetric adjacency")

	// ErrSelfLoop is returned when a vertex lists itself as a neighbor.
	ErrSelfLoop = errors.New("cover: self-loop")

	// ErrTooManyVertices is returned when an exponential routine is asked to
	// enumerate more vertices than allowed.
	ErrTooManyVertices = errors.New("cover: too many vertices for exact search")

	// ErrUnsupportedAlgorithm is returned for an unknown Algorithm value.
	ErrUnsupportedAlgorithm = errors.New("cover: unsupported algorithm")

	// ErrOptionViolation is returned when an invalid Option was supplied.
	ErrOptionViolation = errors.New("cover: invalid option supplied")
)

// Algorithm selects the solver used by Solve.
type Algorithm int

const (
	// Auto runs Exact when n ≤ Options.MaxExactVertices, Heuristic otherwise.
	Auto Algorithm = iota
	// Exact enumerates every subset and returns a minimum cover.
	Exact
	// Heuristic runs the randomized vertex-deletion procedure.
	Heuristic
)

var algorithmNames = [...]string{
	Auto:      "auto",
	Exact:     "exact",
	Heuristic: "heuristic",
}

// String returns the lower-case algorithm name.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// ParseAlgorithm maps "auto", "exact" or "heuristic" (case-insensitive) to
// an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	for i, name := range algorithmNames {
		if strings.EqualFold(s, name) {
			return Algorithm(i), nil
		}
	}

	return Auto, fmt.Errorf("ParseAlgorithm(%q): %w", s, ErrUnsupportedAlgorithm)
}

// Result is the outcome of Solve on an index-based Graph.
type Result struct {
	// Algorithm is the solver that actually ran (never Auto).
	Algorithm Algorithm

	// Cover holds the cover's vertex indices in ascending order.
	Cover []int

	// IndependentSet holds the complement of Cover within 0..n-1, ascending.
	IndependentSet []int
}

// LabeledResult is the outcome of SolveWithGraph: the index result mapped
// back to core.Graph vertex IDs.
type LabeledResult struct {
	// Algorithm is the solver that actually ran.
	Algorithm Algorithm

	// Cover holds vertex IDs in index order (IDs are indexed in sorted order,
	// so this is also lexicographic order).
	Cover []string

	// IndependentSet holds the complementary vertex IDs.
	IndependentSet []string

	// Indices is the underlying index-based result.
	Indices Result
}
