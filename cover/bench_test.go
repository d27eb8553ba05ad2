// Package cover_test benchmarks the cover solvers.
//
// Policy:
//   - Inputs are built outside the timer from seedDet.
//   - Exact sizes stay small enough for CI.
package cover_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvcover/cover"
)

// BenchmarkIsCover_n200 measures one oracle call on a sparse graph.
func BenchmarkIsCover_n200(b *testing.B) {
	g := randomGraph(b, 200, 0.05, rand.New(rand.NewSource(seedDet)))
	s := cover.FullVertexSet(200)
	s.Remove(17)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cover.IsCover(g, s)
	}
}

// BenchmarkMinimumCover_n14 measures the exhaustive search (2^14 subsets).
func BenchmarkMinimumCover_n14(b *testing.B) {
	g := randomGraph(b, 14, 0.3, rand.New(rand.NewSource(seedDet)))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cover.MinimumCover(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkApproximateCover_n500 measures the deletion heuristic.
func BenchmarkApproximateCover_n500(b *testing.B) {
	g := randomGraph(b, 500, 0.01, rand.New(rand.NewSource(seedDet)))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cover.ApproximateCover(g, cover.WithSeed(int64(i+1))); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSubsets_n16 measures bare enumeration.
func BenchmarkSubsets_n16(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		seq, _ := cover.Subsets(16)
		var total int
		for s := range seq {
			total += s.Len()
		}
		_ = total
	}
}
