package cover

import (
	"fmt"
	"iter"
)

// Subsets returns an iterator over all 2^n subsets of {0..n-1}.
//
// Subsets are produced in increasing bitmask order: bit i of the mask is
// membership of vertex i, so the sequence starts with {} and ends with the
// full set. Each subset appears exactly once; n=0 yields only the empty set.
//
// The yielded *VertexSet is reused between iterations. Callers that keep a
// subset past the loop body must Clone it.
//
// Errors:
//   - ErrNegativeVertexCount if n < 0.
//   - ErrTooManyVertices if n > MaxSubsetVertices.
//
// Complexity: O(2^n · (1 + n/64)) for a full iteration; O(1) extra space.
func Subsets(n int) (iter.Seq[*VertexSet], error) {
	if n < 0 {
		return nil, fmt.Errorf("Subsets: n=%d: %w", n, ErrNegativeVertexCount)
	}
	if n > MaxSubsetVertices {
		return nil, fmt.Errorf("Subsets: n=%d > max=%d: %w", n, MaxSubsetVertices, ErrTooManyVertices)
	}

	limit := uint64(1) << uint(n)

	return func(yield func(*VertexSet) bool) {
		set := NewVertexSet(n)
		for mask := uint64(0); mask < limit; mask++ {
			set.loadMask(mask)
			if !yield(set) {
				return
			}
		}
	}, nil
}
