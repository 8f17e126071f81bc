// Package core provides a thread-safe in-memory Graph with a minimal,
// composable API surface, shaped for interaction networks: directed edges,
// parallel edges kept as distinct records, self-loops, and per-vertex /
// per-edge metadata.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Per-edge attributes (WithEdgeMetadata)
//   - Constant-time in/out adjacency via nested maps in both orientations
//   - Monotonic Edge.ID generation ("e1", "e2", …)
//
// Iteration order is part of the contract:
//
//   - Vertices() returns vertices in insertion order (the order in which they
//     were first seen as AddVertex/AddEdge endpoints).
//   - Edges() returns edges in creation order.
//   - NeighborIDs() returns neighbors in vertex insertion order.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                      // O(1)
//	HasVertex(id string) bool                       // O(1)
//	Vertex(id string) (*Vertex, error)              // O(1)
//	SetVertexMetadata(id, key string, v any) error  // O(1)
//	RemoveVertex(id string) error                   // O(deg(v)+V)
//	RemoveVertices(ids []string) error              // O(V+Σdeg)
//
//	// Edge lifecycle
//	AddEdge(from, to string, opts ...EdgeOption) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error                 // O(1)
//	HasEdge(from, to string) bool                   // O(1)
//
//	// Queries
//	Degree(id) (in, out int, err error)             // O(neighbors)
//	NeighborIDs(id string, dir Direction) ([]string, error)
//	Vertices() []string, Edges() []*Edge, Stats() *GraphStats
//
//	// Views
//	Clone() *Graph
//	InducedSubgraph(g, keep) *Graph
//
// Errors are sentinels checked with errors.Is: ErrEmptyVertexID,
// ErrVertexNotFound, ErrEdgeNotFound, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
package core
