// Package centrality ranks the vertices of an interaction graph by degree.
//
// Rankings are sorted by degree, highest first. Ties keep vertex insertion
// order, so the same graph always ranks the same way. Nothing here mutates
// the graph.
package centrality

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/socnet/core"
	"github.com/katalvlaran/socnet/network"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("centrality: graph is nil")

// Entry is one ranked row.
type Entry struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Degree int    `json:"degree"`
}

// InDegree ranks vertices by the number of edges they receive.
func InDegree(g *core.Graph) ([]Entry, error) {
	return rank(g, core.In)
}

// OutDegree ranks vertices by the number of edges they send.
func OutDegree(g *core.Graph) ([]Entry, error) {
	return rank(g, core.Out)
}

func rank(g *core.Graph, dir core.Direction) ([]Entry, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ids := g.Vertices()
	out := make([]Entry, 0, len(ids))
	for _, id := range ids {
		v, err := g.Vertex(id)
		if err != nil {
			return nil, fmt.Errorf("centrality: vertex %q: %w", id, err)
		}
		in, outDeg, err := g.Degree(id)
		if err != nil {
			return nil, fmt.Errorf("centrality: vertex %q: %w", id, err)
		}
		d := outDeg
		if dir == core.In {
			d = in
		}
		out = append(out, Entry{ID: id, Name: network.ScreenName(v), Degree: d})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Degree > out[j].Degree })

	return out, nil
}
