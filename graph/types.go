// Package graph - central Node, Edge and Graph types plus O(1) index access.
//
// This file declares the arena storage, its sentinel errors, the constructor
// and the read-only accessors. Mutation lives in edit.go (external editing
// contract) and generate.go (random construction).
package graph

import (
	"errors"
	"math"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyNodeID indicates an operation received the empty string as a node id.
	ErrEmptyNodeID = errors.New("graph: node ID is empty")

	// ErrDuplicateNode indicates AddNode was called with an id already present.
	ErrDuplicateNode = errors.New("graph: node already exists")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrNegativeNodeCount indicates Generate was asked for a negative node count.
	ErrNegativeNodeCount = errors.New("graph: negative node count")
)

// NodeID uniquely identifies a node within its Graph.
type NodeID string

// Node is a positioned vertex of the simulation graph.
//
// ID is stable for the node's lifetime. X/Y may change via MoveNode; nothing
// else is mutable after creation.
type Node struct {
	// ID is the unique identifier for this node.
	ID NodeID

	// X, Y are the node's 2-D coordinates.
	X, Y float64

	// Label is an optional display name; empty when unset.
	Label string
}

// Edge is a directed connection From→To.
//
// Distance is derived once from node positions at creation time and is never
// recomputed. Pheromone starts at InitialPheromone and is mutated only by the
// simulation's pheromone update; it is NOT symmetric across the reverse edge
// even though Distance is.
type Edge struct {
	// From is the source node id.
	From NodeID

	// To is the target node id.
	To NodeID

	// Distance is the non-negative edge length, fixed at creation.
	Distance float64

	// Pheromone is the non-negative trail strength on this directed edge.
	Pheromone float64
}

// edgeKey addresses a directed edge by its ordered endpoint pair.
type edgeKey struct {
	from NodeID
	to   NodeID
}

// Graph stores nodes and edges in dense arenas with id→index maps.
//
// Invariants maintained by all mutating operations:
//   - every edge's From/To resolves to a node currently in the graph;
//   - at most one edge exists per ordered (From,To) pair;
//   - out[id] lists edge indexes in edge creation order (stable enumeration
//     surface for the ordering-dependent transition rule).
//
// Graph is NOT safe for concurrent mutation; the simulation contract confines
// edits to the gaps between ticks.
type Graph struct {
	nodes []Node
	edges []Edge

	nodeIdx map[NodeID]int  // id → index into nodes
	edgeIdx map[edgeKey]int // (from,to) → index into edges
	out     map[NodeID][]int
}

// New returns an empty Graph ready for AddNode / Generate.
//
// Complexity: O(1).
func New() *Graph {
	return &Graph{
		nodeIdx: make(map[NodeID]int),
		edgeIdx: make(map[edgeKey]int),
		out:     make(map[NodeID][]int),
	}
}

// NodeCount reports the number of nodes. Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount reports the number of directed edges. Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Node returns the node with the given id and whether it exists.
//
// Complexity: O(1).
func (g *Graph) Node(id NodeID) (Node, bool) {
	i, ok := g.nodeIdx[id]
	if !ok {
		return Node{}, false
	}
	return g.nodes[i], true
}

// Nodes returns a copy of all nodes in creation order.
//
// Complexity: O(V) time and space.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// NodeAt returns the node stored at dense index i.
// The index order is creation order; 0 ≤ i < NodeCount is the caller's
// responsibility (out-of-range returns the zero Node and false).
//
// Complexity: O(1).
func (g *Graph) NodeAt(i int) (Node, bool) {
	if i < 0 || i >= len(g.nodes) {
		return Node{}, false
	}
	return g.nodes[i], true
}

// EdgeBetween returns the directed edge from→to and whether it exists.
//
// Complexity: O(1).
func (g *Graph) EdgeBetween(from, to NodeID) (Edge, bool) {
	i, ok := g.edgeIdx[edgeKey{from, to}]
	if !ok {
		return Edge{}, false
	}
	return g.edges[i], true
}

// EdgeIndex returns the dense arena index of the directed edge from→to and
// whether it exists. The index is stable across WithEdges replacements, which
// lets bulk edge rewrites (pheromone updates) address a positional copy of
// Edges() without re-searching per pair.
//
// Complexity: O(1).
func (g *Graph) EdgeIndex(from, to NodeID) (int, bool) {
	i, ok := g.edgeIdx[edgeKey{from, to}]
	return i, ok
}

// Edges returns a copy of all directed edges in creation order.
// The pheromone update builds its replacement arena from this copy.
//
// Complexity: O(E) time and space.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// OutEdges returns copies of the edges leaving from, in edge creation order.
// Returns nil for an unknown node or a node with no outgoing edges.
//
// Complexity: O(deg) time and space.
func (g *Graph) OutEdges(from NodeID) []Edge {
	idxs := g.out[from]
	if len(idxs) == 0 {
		return nil
	}
	res := make([]Edge, len(idxs))
	for i, ei := range idxs {
		res[i] = g.edges[ei]
	}
	return res
}

// WithEdges returns a new Graph that shares this graph's node arena and
// indexes but carries the given edge arena. The replacement must be
// positionally identical to Edges() — same length, same (From,To) per slot —
// differing only in Pheromone; this is exactly what the pheromone update
// produces, and it keeps edgeIdx/out valid without rebuilding them.
//
// Complexity: O(1) beyond retaining the caller's slice.
func (g *Graph) WithEdges(edges []Edge) *Graph {
	return &Graph{
		nodes:   g.nodes,
		edges:   edges,
		nodeIdx: g.nodeIdx,
		edgeIdx: g.edgeIdx,
		out:     g.out,
	}
}

// Clone returns a deep, independent copy of the graph.
//
// Complexity: O(V+E) time and space.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		nodes:   make([]Node, len(g.nodes)),
		edges:   make([]Edge, len(g.edges)),
		nodeIdx: make(map[NodeID]int, len(g.nodeIdx)),
		edgeIdx: make(map[edgeKey]int, len(g.edgeIdx)),
		out:     make(map[NodeID][]int, len(g.out)),
	}
	copy(c.nodes, g.nodes)
	copy(c.edges, g.edges)
	for id, i := range g.nodeIdx {
		c.nodeIdx[id] = i
	}
	for k, i := range g.edgeIdx {
		c.edgeIdx[k] = i
	}
	for id, idxs := range g.out {
		dup := make([]int, len(idxs))
		copy(dup, idxs)
		c.out[id] = dup
	}
	return c
}

// addEdgeUnchecked appends an edge and registers it in both indexes.
// Callers guarantee endpoint existence and pair uniqueness.
func (g *Graph) addEdgeUnchecked(e Edge) {
	i := len(g.edges)
	g.edges = append(g.edges, e)
	g.edgeIdx[edgeKey{e.From, e.To}] = i
	g.out[e.From] = append(g.out[e.From], i)
}

// euclidean returns the straight-line distance between two nodes.
func euclidean(a, b Node) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
