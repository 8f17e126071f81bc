// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only configuration getters and the Stats snapshot.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	Directed    bool
	AllowsMulti bool
	AllowsLoops bool
	VertexCount int
	EdgeCount   int
	LoopCount   int
}

// Directed reports the orientation applied to newly created edges.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Looped reports whether self-loops (from==to) are permitted by policy.
// If false, AddEdge(v,v,...) rejects the operation with ErrLoopNotAllowed.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are permitted.
// If false, AddEdge(from,to,...) rejects duplicates with ErrMultiEdgeNotAllowed.
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}

// Stats produces a read-only snapshot of configuration flags and catalog sizes.
//
// Complexity:
//   - Time O(E) (self-loops are counted by scanning the edge catalog), Space O(1).
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		Directed:    g.directed,
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
	}
	for _, e := range g.edges {
		if e.From == e.To {
			stats.LoopCount++
		}
	}

	return &stats
}

// options reproduces the construction options of g. Caller holds g.mu.
func (g *Graph) options() []GraphOption {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}

	return opts
}
