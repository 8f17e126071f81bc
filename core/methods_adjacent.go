// File: methods_adjacent.go
// Role: Neighborhood APIs (NeighborIDs, OutNeighborCount) and adjacency helpers.
// Determinism:
//   - NeighborIDs() returns unique IDs in vertex insertion order.
// Concurrency:
//   - Read operations hold g.mu read lock.
//   - Helpers are called only under g.mu write lock by mutating code.

package core

import "sort"

// NeighborIDs returns the unique set of vertex IDs adjacent to id along dir,
// in vertex insertion order. Parallel edges collapse to a single neighbor;
// a self-loop makes id its own neighbor.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(k log k), Space O(k), where k is the number of unique neighbors.
func (g *Graph) NeighborIDs(id string, dir Direction) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	seen := make(map[string]struct{})
	if dir == Out || dir == All {
		for to, bucket := range g.out[id] {
			if len(bucket) > 0 {
				seen[to] = struct{}{}
			}
		}
	}
	if dir == In || dir == All {
		for from, bucket := range g.in[id] {
			if len(bucket) > 0 {
				seen[from] = struct{}{}
			}
		}
	}

	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Slice(ids, func(i, j int) bool { return g.index[ids[i]] < g.index[ids[j]] })

	return ids, nil
}

// OutNeighborCount returns the number of distinct targets id points at.
// Complexity: O(1).
func (g *Graph) OutNeighborCount(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	return len(g.out[id]), nil
}

// ensureBucket guarantees that adj[a][b] is initialized. Write lock required.
func ensureBucket(adj map[string]map[string]map[string]struct{}, a, b string) map[string]struct{} {
	if adj[a] == nil {
		adj[a] = make(map[string]map[string]struct{})
	}
	if adj[a][b] == nil {
		adj[a][b] = make(map[string]struct{})
	}

	return adj[a][b]
}

// dropFromBucket removes eid from adj[a][b], pruning empty nested maps.
func dropFromBucket(adj map[string]map[string]map[string]struct{}, a, b, eid string) {
	m := adj[a][b]
	if m == nil {
		return
	}
	delete(m, eid)
	if len(m) == 0 {
		delete(adj[a], b)
	}
	if len(adj[a]) == 0 {
		delete(adj, a)
	}
}

// linkAdjacency registers e in both orientation maps (mirrored if undirected).
// Write lock required.
func linkAdjacency(g *Graph, e *Edge) {
	ensureBucket(g.out, e.From, e.To)[e.ID] = struct{}{}
	ensureBucket(g.in, e.To, e.From)[e.ID] = struct{}{}
	if !e.Directed && e.From != e.To {
		ensureBucket(g.out, e.To, e.From)[e.ID] = struct{}{}
		ensureBucket(g.in, e.From, e.To)[e.ID] = struct{}{}
	}
}

// removeAdjacency is the inverse of linkAdjacency. Write lock required.
// Always pair it with delete(g.edges, e.ID).
func removeAdjacency(g *Graph, e *Edge) {
	dropFromBucket(g.out, e.From, e.To, e.ID)
	dropFromBucket(g.in, e.To, e.From, e.ID)
	if !e.Directed && e.From != e.To {
		dropFromBucket(g.out, e.To, e.From, e.ID)
		dropFromBucket(g.in, e.From, e.To, e.ID)
	}
}
