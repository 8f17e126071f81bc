// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order.
//   - RemoveVertices keeps the relative order of surviving vertices.
//
// Concurrency:
//   - Mutations under g.mu write lock, queries under g.mu read lock.
package core

// IsNil reports whether the receiver should be treated as nil when stored inside interfaces.
func (v *Vertex) IsNil() bool { return v == nil }

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under write lock, register the vertex at the end of the insertion order.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked registers id if missing. Caller holds g.mu for writing.
func (g *Graph) addVertexLocked(id string) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
	g.index[id] = len(g.order)
	g.order = append(g.order, id)
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the live vertex record for id.
//
// Contract:
//   - The returned *Vertex must be treated as read-only; use SetVertexMetadata to mutate.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// SetVertexMetadata stores key=value on the vertex id.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(1).
func (g *Graph) SetVertexMetadata(id, key string, value interface{}) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Metadata[key] = value

	return nil
}

// RemoveVertex deletes a vertex and all incident edges.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(deg(v) + V) (the insertion order is compacted), Space O(1) extra.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}
	g.removeVerticesLocked(map[string]struct{}{id: {}})

	return nil
}

// RemoveVertices deletes every listed vertex and all of their incident edges in
// one pass. The whole batch is validated before anything is removed, so a
// missing ID leaves the graph untouched. Duplicates in ids are allowed.
//
// Implementation:
//   - Stage 1: Validate every ID (ErrEmptyVertexID / ErrVertexNotFound).
//   - Stage 2: Drop incident edges of the doomed set through the adjacency maps.
//   - Stage 3: Drop the vertices and compact the insertion order once.
//
// Complexity:
//   - Time O(V + Σ deg(v) for removed v), Space O(k) for the removal set.
func (g *Graph) RemoveVertices(ids []string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	doomed := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			return ErrEmptyVertexID
		}
		if _, ok := g.vertices[id]; !ok {
			return ErrVertexNotFound
		}
		doomed[id] = struct{}{}
	}
	if len(doomed) == 0 {
		return nil
	}
	g.removeVerticesLocked(doomed)

	return nil
}

// removeVerticesLocked removes doomed vertices and incident edges. Caller holds g.mu.
func (g *Graph) removeVerticesLocked(doomed map[string]struct{}) {
	var eids []string
	for id := range doomed {
		for _, bucket := range g.out[id] {
			for eid := range bucket {
				eids = append(eids, eid)
			}
		}
		for _, bucket := range g.in[id] {
			for eid := range bucket {
				eids = append(eids, eid)
			}
		}
	}
	for _, eid := range eids {
		e, ok := g.edges[eid]
		if !ok {
			continue // already unlinked through the other endpoint
		}
		removeAdjacency(g, e)
		delete(g.edges, eid)
	}

	kept := g.order[:0]
	for _, id := range g.order {
		if _, gone := doomed[id]; gone {
			delete(g.vertices, id)
			delete(g.index, id)
			delete(g.out, id)
			delete(g.in, id)
			continue
		}
		g.index[id] = len(kept)
		kept = append(kept, id)
	}
	g.order = kept
}

// Vertices returns all vertex IDs in insertion order.
// Complexity: Time O(V), Space O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, len(g.order))
	copy(ids, g.order)

	return ids
}

// VertexCount returns the current number of vertices in the graph.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Degree returns the in- and out-degree of id, counting parallel edges
// individually. A directed self-loop contributes +1 to both. Undirected edges
// count on both sides.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(k) where k is the number of distinct neighbors of id.
func (g *Graph) Degree(id string) (in, out int, err error) {
	if id == "" {
		return 0, 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, 0, ErrVertexNotFound
	}
	for _, bucket := range g.in[id] {
		in += len(bucket)
	}
	for _, bucket := range g.out[id] {
		out += len(bucket)
	}

	return in, out, nil
}

// InDegree is Degree's in component.
func (g *Graph) InDegree(id string) (int, error) {
	in, _, err := g.Degree(id)
	return in, err
}

// OutDegree is Degree's out component.
func (g *Graph) OutDegree(id string) (int, error) {
	_, out, err := g.Degree(id)
	return out, err
}
