// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Preserves vertex order, edge IDs, edge order and directedness.
// Concurrency:
//   - Read lock on source; result is a fresh graph instance.

package core

// InducedSubgraph returns a new Graph induced by the set "keep" of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges whose
// endpoints are both in keep. The input graph is not mutated. Unknown IDs in
// keep are ignored.
//
// Complexity: O(V + E log E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.inducedLocked(keep)
}

// inducedLocked builds the induced copy. Caller holds g.mu for reading.
func (g *Graph) inducedLocked(keep map[string]bool) *Graph {
	out := NewGraph(g.options()...)
	for _, id := range g.order {
		if !keep[id] {
			continue
		}
		out.addVertexLocked(id)
		out.vertices[id].Metadata = copyMetadata(g.vertices[id].Metadata)
	}

	es := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		if keep[e.From] && keep[e.To] {
			es = append(es, e)
		}
	}
	sortEdges(es)
	for _, e := range es {
		ne := &Edge{
			ID:       e.ID,
			From:     e.From,
			To:       e.To,
			Directed: e.Directed,
			Metadata: copyMetadata(e.Metadata),
			seq:      e.seq,
		}
		out.edges[ne.ID] = ne
		linkAdjacency(out, ne)
	}
	// Carry the counter so AddEdge on the view cannot collide with copied IDs.
	out.nextEdgeID = g.nextEdgeID

	return out
}
