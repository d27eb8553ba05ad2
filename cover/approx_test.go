package cover_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcover/cover"
)

func TestApproximateCover_EmptyGraph(t *testing.T) {
	c, err := cover.ApproximateCover(cover.AdjacencyList{})
	require.NoError(t, err)
	require.Equal(t, []int{}, c)

	is, err := cover.ApproximateIndependentSet(cover.AdjacencyList{})
	require.NoError(t, err)
	require.Equal(t, []int{}, is)
}

func TestApproximateCover_IsolatedVertexNeverRemoved(t *testing.T) {
	g := cover.AdjacencyList{{}}
	for seed := int64(1); seed <= 5; seed++ {
		c, err := cover.ApproximateCover(g, cover.WithSeed(seed))
		require.NoError(t, err)
		require.Equal(t, []int{0}, c)
	}
}

func TestApproximateCover_StopsAtFirstFailure(t *testing.T) {
	// Removing any one vertex of K_n keeps a cover; removing a second never
	// does, so every run ends with exactly n-1 vertices.
	for _, n := range []int{2, 3, 5} {
		g := completeGraph(t, n)
		for seed := int64(1); seed <= 10; seed++ {
			c, err := cover.ApproximateCover(g, cover.WithSeed(seed))
			require.NoError(t, err)
			require.Len(t, c, n-1, "n=%d seed=%d", n, seed)
			requireCover(t, g, c)
		}
	}
}

func TestApproximateCover_ValidAndNotBelowOptimum(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	for n := 1; n <= maxBruteForce; n++ {
		for _, p := range []float64{0.2, 0.5, 0.8} {
			g := randomGraph(t, n, p, rng)
			opt, err := cover.MinimumCover(g)
			require.NoError(t, err)

			for seed := int64(0); seed < 5; seed++ {
				c, err := cover.ApproximateCover(g, cover.WithSeed(seed))
				require.NoError(t, err)
				requireCover(t, g, c)
				require.GreaterOrEqual(t, len(c), len(opt), "n=%d p=%.1f seed=%d", n, p, seed)
			}
		}
	}
}

func TestApproximateCover_SeedDeterminism(t *testing.T) {
	g := randomGraph(t, 60, 0.1, rand.New(rand.NewSource(seedDet)))

	first, err := cover.ApproximateCover(g, cover.WithSeed(7))
	require.NoError(t, err)
	again, err := cover.ApproximateCover(g, cover.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, first, again)

	// An injected source with the same seed replays the same stream.
	injected, err := cover.ApproximateCover(g, cover.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	require.Equal(t, first, injected)

	// Seed 0 maps to the fixed default seed.
	zero, err := cover.ApproximateCover(g)
	require.NoError(t, err)
	one, err := cover.ApproximateCover(g, cover.WithSeed(1))
	require.NoError(t, err)
	require.Equal(t, zero, one)
}

func TestApproximateCover_LargeGraph(t *testing.T) {
	// Far beyond the exact limit; the heuristic must still return a cover.
	g := randomGraph(t, 300, 0.02, rand.New(rand.NewSource(seedDet)))
	c, err := cover.ApproximateCover(g, cover.WithSeed(3))
	require.NoError(t, err)
	requireCover(t, g, c)
}

func TestApproximateCover_Errors(t *testing.T) {
	_, err := cover.ApproximateCover(nil)
	require.ErrorIs(t, err, cover.ErrNilGraph)

	_, err = cover.ApproximateCover(cover.AdjacencyList{{0}})
	require.ErrorIs(t, err, cover.ErrSelfLoop)

	_, err = cover.ApproximateCover(pathGraph(t, 3), cover.WithRand(nil))
	require.ErrorIs(t, err, cover.ErrOptionViolation)

	_, err = cover.ApproximateIndependentSet(cover.AdjacencyList{{1}, {}})
	require.ErrorIs(t, err, cover.ErrAsymmetricAdjacency)
}
