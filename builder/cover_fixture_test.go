package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcover/builder"
	"github.com/katalvlaran/lvcover/cover"
)

// TestFixtures_KnownCovers checks builder topologies against their textbook
// minimum cover sizes.
func TestFixtures_KnownCovers(t *testing.T) {
	tests := []struct {
		name     string
		ctor     builder.Constructor
		wantSize int
	}{
		{"Empty(4)", builder.Empty(4), 4},
		{"Path(7)", builder.Path(7), 3},
		{"Cycle(7)", builder.Cycle(7), 4},
		{"Star(9)", builder.Star(9), 1},
		{"Wheel(7)", builder.Wheel(7), 4},
		{"Complete(6)", builder.Complete(6), 5},
		{"CompleteBipartite(3,5)", builder.CompleteBipartite(3, 5), 3},
		{"Grid(3,3)", builder.Grid(3, 3), 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := mustBuild(t, nil, tc.ctor)
			res, err := cover.SolveWithGraph(g, cover.WithAlgorithm(cover.Exact))
			require.NoError(t, err)
			require.Len(t, res.Cover, tc.wantSize)
			require.Len(t, res.IndependentSet, g.VertexCount()-tc.wantSize)
		})
	}
}

func TestFixtures_StarHub(t *testing.T) {
	g := mustBuild(t, nil, builder.Star(6))
	res, err := cover.SolveWithGraph(g)
	require.NoError(t, err)
	require.Equal(t, []string{builder.CenterVertexID}, res.Cover)
}
