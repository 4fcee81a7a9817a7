package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/tbalakov/gravl/core"
)

// ErrBadGraphFile wraps every graph-file validation failure.
var ErrBadGraphFile = errors.New("cli: invalid graph file")

// graphFile is the TOML description of a graph:
//
//	multigraph = true
//	pseudograph = false
//
//	[[vertex]]
//	id = 1
//	value = 10
//
//	[[edge]]
//	from = 1
//	to = 2
//	weight = 4      # omit for an unweighted edge
//	directed = true # defaults to true
type graphFile struct {
	Multigraph  bool         `toml:"multigraph"`
	Pseudograph bool         `toml:"pseudograph"`
	Vertices    []vertexDecl `toml:"vertex"`
	Edges       []edgeDecl   `toml:"edge"`
}

type vertexDecl struct {
	ID    int `toml:"id"`
	Value int `toml:"value"`
}

type edgeDecl struct {
	From     int    `toml:"from"`
	To       int    `toml:"to"`
	Weight   *int64 `toml:"weight"`
	Directed *bool  `toml:"directed"`
}

// loadGraph reads a TOML graph description and materializes it.
func loadGraph(path string) (*core.Graph, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var gf graphFile
	if err := toml.Unmarshal(raw, &gf); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadGraphFile, path, err)
	}
	return gf.build()
}

func (gf *graphFile) build() (*core.Graph, error) {
	var opts []core.Option
	if gf.Multigraph {
		opts = append(opts, core.WithMultigraph())
	}
	if gf.Pseudograph {
		opts = append(opts, core.WithPseudograph())
	}
	g, err := core.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadGraphFile, err)
	}

	byID := make(map[int]*core.Vertex, len(gf.Vertices))
	for _, vd := range gf.Vertices {
		v := &core.Vertex{ID: vd.ID, Value: vd.Value}
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("%w: vertex %d: %v", ErrBadGraphFile, vd.ID, err)
		}
		byID[vd.ID] = v
	}

	for _, ed := range gf.Edges {
		u, ok := byID[ed.From]
		if !ok {
			return nil, fmt.Errorf("%w: edge references unknown vertex %d", ErrBadGraphFile, ed.From)
		}
		v, ok := byID[ed.To]
		if !ok {
			return nil, fmt.Errorf("%w: edge references unknown vertex %d", ErrBadGraphFile, ed.To)
		}

		directed := ed.Directed == nil || *ed.Directed
		switch {
		case ed.Weight != nil && directed:
			err = g.AddEdgeDirectedWeighted(u, v, *ed.Weight)
		case ed.Weight != nil:
			err = g.AddEdgeUndirectedWeighted(u, v, *ed.Weight)
		case directed:
			err = g.AddEdgeDirected(u, v)
		default:
			err = g.AddEdgeUndirected(u, v)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: edge %d->%d: %v", ErrBadGraphFile, ed.From, ed.To, err)
		}
	}
	return g, nil
}

// vertexArg resolves the --from/--to style id flags against the graph.
func vertexArg(g *core.Graph, id int) (*core.Vertex, error) {
	v, ok := g.VertexByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: no vertex with id %d", ErrBadGraphFile, id)
	}
	return v, nil
}
