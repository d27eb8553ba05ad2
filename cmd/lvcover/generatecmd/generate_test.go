package generatecmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcover/builder"
	"github.com/katalvlaran/lvcover/graphio"
)

type discardLogFactory struct{}

func (discardLogFactory) Logger() logr.Logger { return logr.Discard() }

func generate(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewCmd(discardLogFactory{})
	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), err
}

func TestGenerate_Path(t *testing.T) {
	t.Parallel()

	out, err := generate(t, "path", "--n", "3", "--prefix", "v")
	require.NoError(t, err)

	g, err := graphio.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1", "v2"}, g.Vertices())
	assert.True(t, g.HasEdge("v0", "v1"))
	assert.True(t, g.HasEdge("v1", "v2"))
}

func TestGenerate_RandomIsSeeded(t *testing.T) {
	t.Parallel()

	a, err := generate(t, "random", "-n", "12", "-p", "0.3", "--seed", "5", "-o", "json")
	require.NoError(t, err)
	b, err := generate(t, "random", "-n", "12", "-p", "0.3", "--seed", "5", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()

	_, err := generate(t, "hexagram")
	require.ErrorIs(t, err, builder.ErrUnknownKind)

	_, err = generate(t, "cycle", "--n", "2")
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = generate(t, "random", "-p", "2")
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = generate(t, "path", "-o", "xml")
	require.ErrorIs(t, err, graphio.ErrUnsupportedFormat)

	_, err = generate(t)
	require.Error(t, err)
}
