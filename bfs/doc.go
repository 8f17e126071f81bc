// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Follow outgoing edges (default), incoming edges, or both
//     (WithDirection(core.All)); the last mode walks weak components.
//   - OnVisit hook may abort the walk with an error.
//   - WithFilterNeighbor prunes individual hops; WithMaxDepth bounds the walk.
//
// Determinism
//
//	core.Graph.NeighborIDs returns neighbors in vertex insertion order and BFS
//	enqueues them in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
