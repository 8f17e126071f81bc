// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, GraphOption, EdgeOption, sentinel errors and NewGraph.
// Policy:
//   - Vertices keep their insertion order; removals keep the relative order of survivors.
//   - Edges keep their creation order (sequence carried inside Edge.ID "e1","e2",...).
//   - One sync.RWMutex guards the whole catalog; every exported method is safe for
//     concurrent use.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Direction selects which incident edges a neighborhood or traversal query follows.
type Direction int

const (
	// Out follows edges leaving the vertex (e.From == id).
	Out Direction = iota
	// In follows edges entering the vertex (e.To == id).
	In
	// All ignores orientation (weak connectivity).
	All
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value data; Clone and InducedSubgraph copy the
// map itself but not the values it points to.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data.
	Metadata map[string]interface{}
}

// Edge represents a connection between two vertices.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e" + creation sequence).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Directed reports whether the edge is one-way.
	Directed bool

	// Metadata stores per-edge attributes (for example the post that produced it).
	Metadata map[string]interface{}

	seq uint64 // creation sequence, orders Edges()
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness for all new edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeMetadata attaches key=value to the new edge.
func WithEdgeMetadata(key string, value interface{}) EdgeOption {
	return func(e *Edge) { e.Metadata[key] = value }
}

// Graph is the core in-memory graph data structure.
//
// It supports directed vs. undirected edges, parallel edges (multi-edges) and
// self-loops. Adjacency is kept in both orientations so in-degree queries do
// not need an edge scan:
//
//	out[from][to][edgeID] = struct{}{}
//	in[to][from][edgeID]  = struct{}{}
//
// Undirected edges are mirrored in both maps.
type Graph struct {
	mu sync.RWMutex // guards everything below

	// Configuration flags
	directed   bool // edge orientation
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64             // edge sequence generator
	order      []string           // vertex IDs in insertion order
	index      map[string]int     // vertex ID → position in order
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	out map[string]map[string]map[string]struct{}
	in  map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, no loops, no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index:    make(map[string]int),
		vertices: make(map[string]*Vertex),
		edges:    make(map[string]*Edge),
		out:      make(map[string]map[string]map[string]struct{}),
		in:       make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewMultiDigraph returns a directed graph that keeps parallel edges and
// self-loops, the shape interaction networks need.
func NewMultiDigraph() *Graph {
	return NewGraph(WithDirected(true), WithMultiEdges(), WithLoops())
}
