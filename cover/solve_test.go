package cover_test

import (
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcover/core"
	"github.com/katalvlaran/lvcover/cover"
)

func TestSolve_AutoDispatch(t *testing.T) {
	small := pathGraph(t, 5)
	res, err := cover.Solve(small)
	require.NoError(t, err)
	require.Equal(t, cover.Exact, res.Algorithm)
	require.Equal(t, []int{1, 3}, res.Cover)
	require.Equal(t, []int{0, 2, 4}, res.IndependentSet)

	res, err = cover.Solve(small, cover.WithMaxExactVertices(4))
	require.NoError(t, err)
	require.Equal(t, cover.Heuristic, res.Algorithm)
	requireCover(t, small, res.Cover)
	requirePartition(t, 5, res.Cover, res.IndependentSet)
}

func TestSolve_ExplicitAlgorithms(t *testing.T) {
	g := completeGraph(t, 4)

	res, err := cover.Solve(g, cover.WithAlgorithm(cover.Exact))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, res.Cover)
	require.Equal(t, []int{3}, res.IndependentSet)

	res, err = cover.Solve(g, cover.WithAlgorithm(cover.Heuristic), cover.WithSeed(5))
	require.NoError(t, err)
	require.Equal(t, cover.Heuristic, res.Algorithm)
	require.Len(t, res.Cover, 3)
	require.Len(t, res.IndependentSet, 1)

	// Explicit Exact does not fall back to the heuristic.
	_, err = cover.Solve(pathGraph(t, 6), cover.WithAlgorithm(cover.Exact), cover.WithMaxExactVertices(5))
	require.ErrorIs(t, err, cover.ErrTooManyVertices)
}

func TestSolve_Errors(t *testing.T) {
	_, err := cover.Solve(nil)
	require.ErrorIs(t, err, cover.ErrNilGraph)

	_, err = cover.Solve(pathGraph(t, 2), cover.WithAlgorithm(cover.Algorithm(9)))
	require.ErrorIs(t, err, cover.ErrUnsupportedAlgorithm)
}

func TestSolve_Logging(t *testing.T) {
	var lines []string
	log := funcr.New(func(prefix, args string) {
		lines = append(lines, prefix+" "+args)
	}, funcr.Options{Verbosity: 2})

	_, err := cover.Solve(pathGraph(t, 4), cover.WithLogger(log))
	require.NoError(t, err)
	require.NotEmpty(t, lines)
}

func TestParseAlgorithm(t *testing.T) {
	for _, a := range []cover.Algorithm{cover.Auto, cover.Exact, cover.Heuristic} {
		got, err := cover.ParseAlgorithm(a.String())
		require.NoError(t, err)
		require.Equal(t, a, got)
	}

	got, err := cover.ParseAlgorithm("EXACT")
	require.NoError(t, err)
	require.Equal(t, cover.Exact, got)

	_, err = cover.ParseAlgorithm("greedy")
	require.ErrorIs(t, err, cover.ErrUnsupportedAlgorithm)
	require.Equal(t, "Algorithm(7)", cover.Algorithm(7).String())
}

func TestSolveWithGraph(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "e"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("z")) // isolated: must be covered

	res, err := cover.SolveWithGraph(g)
	require.NoError(t, err)
	require.Equal(t, cover.Exact, res.Algorithm)
	require.Equal(t, []string{"b", "d", "z"}, res.Cover)
	require.Equal(t, []string{"a", "c", "e"}, res.IndependentSet)
	require.Equal(t, []int{1, 3, 5}, res.Indices.Cover)

	_, err = cover.SolveWithGraph(nil)
	require.ErrorIs(t, err, cover.ErrNilGraph)
}

func TestFromCore(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("y", "x")
	require.NoError(t, err)
	_, err = g.AddEdge("y", "w")
	require.NoError(t, err)

	adj, ids, err := cover.FromCore(g)
	require.NoError(t, err)
	require.Equal(t, []string{"w", "x", "y"}, ids)
	require.Equal(t, cover.AdjacencyList{{2}, {2}, {0, 1}}, adj)
	require.NoError(t, cover.ValidateGraph(adj))
}

func TestNewAdjacencyList(t *testing.T) {
	adj, err := cover.NewAdjacencyList(3, [][2]int{{2, 0}, {0, 1}, {0, 2}})
	require.NoError(t, err)
	require.Equal(t, cover.AdjacencyList{{1, 2}, {0}, {0}}, adj)
	require.Nil(t, adj.NeighborsOf(3))
	require.Nil(t, adj.NeighborsOf(-1))

	_, err = cover.NewAdjacencyList(-1, nil)
	require.ErrorIs(t, err, cover.ErrNegativeVertexCount)
	_, err = cover.NewAdjacencyList(2, [][2]int{{0, 2}})
	require.ErrorIs(t, err, cover.ErrNeighborOutOfRange)
	_, err = cover.NewAdjacencyList(2, [][2]int{{1, 1}})
	require.ErrorIs(t, err, cover.ErrSelfLoop)
}
