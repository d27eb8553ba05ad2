package cover

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// VertexSet is a set of vertex indices backed by a bitset.
//
// The zero value is an empty set ready for use. A VertexSet must not be
// copied after first use; use Clone. Negative indices are never members.
type VertexSet struct {
	bs bitset.BitSet
}

// NewVertexSet returns an empty set with room for indices 0..n-1.
func NewVertexSet(n int) *VertexSet {
	s := &VertexSet{}
	if n > 0 {
		s.bs = *bitset.New(uint(n))
	}

	return s
}

// FullVertexSet returns {0, …, n-1}.
func FullVertexSet(n int) *VertexSet {
	s := NewVertexSet(n)
	for v := 0; v < n; v++ {
		s.bs.Set(uint(v))
	}

	return s
}

// VertexSetOf returns a set holding vs; negative entries are skipped.
func VertexSetOf(vs ...int) *VertexSet {
	s := &VertexSet{}
	for _, v := range vs {
		s.Add(v)
	}

	return s
}

// Add inserts v (no-op for v < 0).
func (s *VertexSet) Add(v int) {
	if v < 0 {
		return
	}
	s.bs.Set(uint(v))
}

// Remove deletes v if present.
func (s *VertexSet) Remove(v int) {
	if v < 0 {
		return
	}
	s.bs.Clear(uint(v))
}

// Contains reports membership of v.
func (s *VertexSet) Contains(v int) bool {
	return v >= 0 && s.bs.Test(uint(v))
}

// Len returns |S|.
func (s *VertexSet) Len() int {
	return int(s.bs.Count())
}

// Slice returns the members in ascending order. The result is never nil.
func (s *VertexSet) Slice() []int {
	out := make([]int, 0, s.Len())
	for i, ok := s.bs.NextSet(0); ok; i, ok = s.bs.NextSet(i + 1) {
		out = append(out, int(i))
	}

	return out
}

// Clone returns an independent copy.
func (s *VertexSet) Clone() *VertexSet {
	return &VertexSet{bs: *s.bs.Clone()}
}

// Equal reports whether s and o hold the same members, regardless of the
// capacity each was created with.
func (s *VertexSet) Equal(o *VertexSet) bool {
	return s.bs.Count() == o.bs.Count() && s.bs.IsSuperSet(&o.bs)
}

// String renders the set as "{0 2 4}".
func (s *VertexSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, v := range s.Slice() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte('}')

	return b.String()
}

// loadMask overwrites s with the members encoded by mask (bit i ⇒ vertex i).
// The bitset keeps its capacity, so repeated loads do not allocate.
//
// Complexity: O(words + popcount(mask)).
func (s *VertexSet) loadMask(mask uint64) {
	s.bs.ClearAll()
	for m := mask; m != 0; m &= m - 1 {
		s.bs.Set(uint(bits.TrailingZeros64(m)))
	}
}
