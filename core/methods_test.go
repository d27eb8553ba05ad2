// SPDX-License-Identifier: MIT
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcover/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
)

func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(VertexA))
	require.NoError(t, g.AddVertex(VertexA))
	require.Equal(t, 1, g.VertexCount())
	require.True(t, g.HasVertex(VertexA))
	require.False(t, g.HasVertex(""))

	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

func TestAddEdge_Undirected(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge(VertexA, VertexB)
	require.NoError(t, err)
	require.Equal(t, "e1", eid)

	// Endpoints are auto-created and the edge is visible from both sides.
	require.Equal(t, []string{VertexA, VertexB}, g.Vertices())
	require.True(t, g.HasEdge(VertexA, VertexB))
	require.True(t, g.HasEdge(VertexB, VertexA))
	require.False(t, g.HasEdge(VertexA, VertexC))
	require.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_Errors(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("", VertexB)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge(VertexA, VertexA)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge(VertexA, VertexB)
	require.NoError(t, err)
	_, err = g.AddEdge(VertexB, VertexA)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestAddEdge_MultiEdges(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	require.True(t, g.Multigraph())

	_, err := g.AddEdge(VertexA, VertexB)
	require.NoError(t, err)
	_, err = g.AddEdge(VertexB, VertexA)
	require.NoError(t, err)

	require.Equal(t, 2, g.EdgeCount())
	deg, err := g.Degree(VertexA)
	require.NoError(t, err)
	require.Equal(t, 2, deg)

	// Parallel edges collapse in the neighbor view.
	nbrs, err := g.NeighborIDs(VertexA)
	require.NoError(t, err)
	require.Equal(t, []string{VertexB}, nbrs)
}

func TestNeighborIDs_Sorted(t *testing.T) {
	g := core.NewGraph()
	for _, to := range []string{VertexD, VertexB, VertexC} {
		_, err := g.AddEdge(VertexA, to)
		require.NoError(t, err)
	}

	nbrs, err := g.NeighborIDs(VertexA)
	require.NoError(t, err)
	require.Equal(t, []string{VertexB, VertexC, VertexD}, nbrs)

	nbrs, err = g.NeighborIDs(VertexC)
	require.NoError(t, err)
	require.Equal(t, []string{VertexA}, nbrs)

	_, err = g.NeighborIDs("Z")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.NeighborIDs("")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestRemoveEdge(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge(VertexA, VertexB)
	require.NoError(t, err)

	require.NoError(t, g.RemoveEdge(eid))
	require.False(t, g.HasEdge(VertexA, VertexB))
	require.False(t, g.HasEdge(VertexB, VertexA))
	require.Equal(t, 0, g.EdgeCount())
	require.Equal(t, 2, g.VertexCount())

	require.ErrorIs(t, g.RemoveEdge(eid), core.ErrEdgeNotFound)
}

func TestRemoveVertex(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge(VertexA, VertexB)
	require.NoError(t, err)
	_, err = g.AddEdge(VertexB, VertexC)
	require.NoError(t, err)

	require.NoError(t, g.RemoveVertex(VertexB))
	require.Equal(t, []string{VertexA, VertexC}, g.Vertices())
	require.Equal(t, 0, g.EdgeCount())

	nbrs, err := g.NeighborIDs(VertexA)
	require.NoError(t, err)
	require.Empty(t, nbrs)

	require.ErrorIs(t, g.RemoveVertex(VertexB), core.ErrVertexNotFound)
	require.ErrorIs(t, g.RemoveVertex(""), core.ErrEmptyVertexID)
}

func TestEdges_InsertionOrder(t *testing.T) {
	g := core.NewGraph()
	pairs := [][2]string{{VertexC, VertexD}, {VertexA, VertexB}, {VertexB, VertexC}}
	for _, p := range pairs {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}

	edges := g.Edges()
	require.Len(t, edges, len(pairs))
	for i, e := range edges {
		require.Equal(t, pairs[i][0], e.From)
		require.Equal(t, pairs[i][1], e.To)
	}
}

func TestDegree_Errors(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Degree("")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.Degree(VertexA)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestClone_Independent(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge(VertexA, VertexB)
	require.NoError(t, err)

	clone := g.Clone()
	eid, err := clone.AddEdge(VertexB, VertexC)
	require.NoError(t, err)
	require.Equal(t, "e2", eid)

	require.False(t, g.HasVertex(VertexC))
	require.Equal(t, 1, g.EdgeCount())
	require.Equal(t, 2, clone.EdgeCount())
	require.True(t, clone.HasEdge(VertexA, VertexB))
}

func TestConcurrentAddEdge(t *testing.T) {
	const workers = 16
	g := core.NewGraph()

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = g.AddEdge("hub", string(rune('a'+i)))
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, workers, g.EdgeCount())
	deg, err := g.Degree("hub")
	require.NoError(t, err)
	require.Equal(t, workers, deg)
}
