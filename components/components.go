// Package components finds weakly-connected components of a core.Graph and
// extracts the giant (largest) one.
package components

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/socnet/bfs"
	"github.com/katalvlaran/socnet/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("components: graph is nil")

// Weak returns the weakly-connected components of g (edge direction ignored).
//
// Components are listed in the order of their earliest vertex, and each
// component lists its members in vertex insertion order, so the output is
// reproducible for a given graph.
//
// Time:   O(V log V + E).
// Memory: O(V) for visited flags and output.
func Weak(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	order := g.Vertices()
	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}

	seen := make([]bool, len(order))
	var comps [][]string
	for i, id := range order {
		if seen[i] {
			continue
		}
		res, err := bfs.BFS(g, id, bfs.WithDirection(core.All))
		if err != nil {
			return nil, fmt.Errorf("components: walk from %q: %w", id, err)
		}
		comp := make([]string, 0, len(res.Order))
		for _, v := range res.Order {
			seen[pos[v]] = true
			comp = append(comp, v)
		}
		sort.Slice(comp, func(a, b int) bool { return pos[comp[a]] < pos[comp[b]] })
		comps = append(comps, comp)
	}

	return comps, nil
}

// Largest returns the members of the biggest weak component. Ties go to the
// component listed first by Weak. An empty graph yields nil.
func Largest(g *core.Graph) ([]string, error) {
	comps, err := Weak(g)
	if err != nil {
		return nil, err
	}
	var best []string
	for _, c := range comps {
		if len(c) > len(best) {
			best = c
		}
	}

	return best, nil
}

// Giant returns a new graph induced by the largest weak component of g.
// The input graph is not mutated; an empty input yields an empty graph with
// the same configuration.
func Giant(g *core.Graph) (*core.Graph, error) {
	members, err := Largest(g)
	if err != nil {
		return nil, err
	}
	keep := make(map[string]bool, len(members))
	for _, id := range members {
		keep[id] = true
	}

	return core.InducedSubgraph(g, keep), nil
}
