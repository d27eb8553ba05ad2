package cover

import "fmt"

// Complement returns the members of all that are absent from c.
// Neither argument is modified.
//
// Complexity: O(words).
func Complement(all, c *VertexSet) *VertexSet {
	return &VertexSet{bs: *all.bs.Difference(&c.bs)}
}

// ComplementOf returns the ascending indices of {0..n-1} missing from cover.
// Entries of cover outside 0..n-1 are ignored.
//
// Complexity: O(n + len(cover)).
func ComplementOf(n int, cover []int) []int {
	if n <= 0 {
		return []int{}
	}

	s := FullVertexSet(n)
	for _, v := range cover {
		if v < n {
			s.Remove(v)
		}
	}

	return s.Slice()
}

// OptimalIndependentSet returns the complement of MinimumCover(g): a maximum
// independent set under this package's cover rule, ascending.
// It shares MinimumCover's exponential cost and errors.
func OptimalIndependentSet(g Graph, opts ...Option) ([]int, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	n, err := validateGraph(g)
	if err != nil {
		return nil, fmt.Errorf("OptimalIndependentSet: %w", err)
	}
	c, err := minimumCover(g, n, o)
	if err != nil {
		return nil, fmt.Errorf("OptimalIndependentSet: %w", err)
	}

	return Complement(FullVertexSet(n), c).Slice(), nil
}

// ApproximateIndependentSet returns the complement of ApproximateCover(g),
// ascending. Equal options give equal results.
func ApproximateIndependentSet(g Graph, opts ...Option) ([]int, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	n, err := validateGraph(g)
	if err != nil {
		return nil, fmt.Errorf("ApproximateIndependentSet: %w", err)
	}

	return Complement(FullVertexSet(n), approximateCover(g, n, o)).Slice(), nil
}
