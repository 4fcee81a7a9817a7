package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadGraph_FullDescription(t *testing.T) {
	path := writeFile(t, `
multigraph = false
pseudograph = false

[[vertex]]
id = 1
value = 10

[[vertex]]
id = 2
value = 20

[[vertex]]
id = 3

[[edge]]
from = 1
to = 2
weight = 4

[[edge]]
from = 2
to = 3
directed = false
`)
	g, err := loadGraph(path)
	require.NoError(t, err)

	assert.Equal(t, 3, g.NumVertices())
	assert.True(t, g.Weighted())

	v1, ok := g.VertexByID(1)
	require.True(t, ok)
	assert.Equal(t, 10, v1.Value)

	v2, _ := g.VertexByID(2)
	v3, _ := g.VertexByID(3)
	fwd, _ := g.HasEdge(v1, v2)
	back, _ := g.HasEdge(v2, v1)
	assert.True(t, fwd)
	assert.False(t, back, "weighted edge defaults to directed")

	fwd, _ = g.HasEdge(v2, v3)
	back, _ = g.HasEdge(v3, v2)
	assert.True(t, fwd)
	assert.True(t, back)
}

func TestLoadGraph_VariantFlags(t *testing.T) {
	path := writeFile(t, `
multigraph = true
pseudograph = true

[[vertex]]
id = 1

[[edge]]
from = 1
to = 1
`)
	g, err := loadGraph(path)
	require.NoError(t, err)
	assert.True(t, g.Multigraph())
	assert.True(t, g.Pseudograph())

	v, _ := g.VertexByID(1)
	ok, _ := g.HasEdge(v, v)
	assert.True(t, ok)
}

func TestLoadGraph_UnknownEndpoint(t *testing.T) {
	path := writeFile(t, `
[[vertex]]
id = 1

[[edge]]
from = 1
to = 9
`)
	_, err := loadGraph(path)
	assert.ErrorIs(t, err, ErrBadGraphFile)
}

func TestLoadGraph_PseudoWithoutMulti(t *testing.T) {
	path := writeFile(t, `pseudograph = true`)
	_, err := loadGraph(path)
	assert.ErrorIs(t, err, ErrBadGraphFile)
}

func TestLoadGraph_BadTOML(t *testing.T) {
	path := writeFile(t, `[[vertex`)
	_, err := loadGraph(path)
	assert.ErrorIs(t, err, ErrBadGraphFile)
}

func TestLoadGraph_MissingFile(t *testing.T) {
	_, err := loadGraph(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
