// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone carries over nextEdgeID, vertex order and edge creation order.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: configuration, vertices, edges and
// adjacency. Metadata maps are copied; the values inside them are shared.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	keep := make(map[string]bool, len(g.vertices))
	for id := range g.vertices {
		keep[id] = true
	}

	return g.inducedLocked(keep)
}

// copyMetadata returns a shallow copy of m (never nil).
func copyMetadata(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
