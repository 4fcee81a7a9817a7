// Package sssp: the shared relaxation core.
package sssp

import (
	"github.com/tbalakov/gravl/core"
	"github.com/tbalakov/gravl/hashmap"
)

// newPaths validates inputs and seeds the distance table: every
// registered vertex at infinity with predecessor -1, the source at 0.
func newPaths(g *core.Graph, src *core.Vertex) (*hashmap.Map[int], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(src) {
		return nil, ErrSourceNotFound
	}
	table, err := hashmap.New(hashmap.IntKey)
	if err != nil {
		return nil, err
	}
	for _, v := range g.Vertices() {
		table.Insert(v.ID, inf, rootPred)
	}
	e, _ := table.Search(src.ID)
	e.Value = 0
	return table, nil
}

// relax applies the arc u→v of weight w, reporting whether it improved
// v. A still-infinite u never relaxes anything.
func relax(table *hashmap.Map[int], u, v int, w int64) bool {
	eu, _ := table.Search(u)
	if eu.Value == inf {
		return false
	}
	ev, _ := table.Search(v)
	if d := eu.Value + w; d < ev.Value {
		ev.Value = d
		ev.Aux = int64(u)
		return true
	}
	return false
}
