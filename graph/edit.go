// Package graph - the editing contract exposed to external callers.
//
// These operations are expected only between simulation ticks, never while a
// tick is in flight. Each maintains the structural invariants from types.go:
// endpoint resolution and one-edge-per-ordered-pair.
package graph

// AddNode inserts a node at (x,y) and wires it into the existing graph with a
// bidirectional pair of directed edges to every existing node: distance is
// the Euclidean separation at insertion time, pheromone is InitialPheromone
// in both directions.
//
// Errors: ErrEmptyNodeID, ErrDuplicateNode.
//
// Complexity: O(V) edge insertions.
func (g *Graph) AddNode(id NodeID, x, y float64) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if _, exists := g.nodeIdx[id]; exists {
		return ErrDuplicateNode
	}

	n := Node{ID: id, X: x, Y: y}
	g.nodeIdx[id] = len(g.nodes)
	g.nodes = append(g.nodes, n)

	// Wire both directions against every pre-existing node, in creation
	// order for deterministic edge enumeration.
	var other Node
	for _, other = range g.nodes {
		if other.ID == id {
			continue
		}
		d := euclidean(n, other)
		g.addEdgeUnchecked(Edge{From: id, To: other.ID, Distance: d, Pheromone: InitialPheromone})
		g.addEdgeUnchecked(Edge{From: other.ID, To: id, Distance: d, Pheromone: InitialPheromone})
	}

	return nil
}

// RemoveNode deletes a node and cascades the deletion to every edge whose
// source or target equals it, then rebuilds the dense indexes so the arenas
// stay gap-free. Surviving edges keep their relative creation order, which
// preserves the reproducibility of ordering-dependent selection.
//
// Errors: ErrEmptyNodeID, ErrNodeNotFound.
//
// Complexity: O(V+E) for the rebuild.
func (g *Graph) RemoveNode(id NodeID) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if _, exists := g.nodeIdx[id]; !exists {
		return ErrNodeNotFound
	}

	// Compact the node arena in place.
	keptNodes := g.nodes[:0]
	var n Node
	for _, n = range g.nodes {
		if n.ID != id {
			keptNodes = append(keptNodes, n)
		}
	}
	g.nodes = keptNodes

	// Compact the edge arena, dropping incident edges.
	keptEdges := g.edges[:0]
	var e Edge
	for _, e = range g.edges {
		if e.From != id && e.To != id {
			keptEdges = append(keptEdges, e)
		}
	}
	g.edges = keptEdges

	g.reindex()
	return nil
}

// MoveNode repositions a node. Edge Distance values referencing the node are
// intentionally NOT recomputed (see package doc); callers wanting fresh
// distances must remove and re-add the node, or regenerate the graph.
//
// Errors: ErrEmptyNodeID, ErrNodeNotFound.
//
// Complexity: O(1).
func (g *Graph) MoveNode(id NodeID, x, y float64) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	i, exists := g.nodeIdx[id]
	if !exists {
		return ErrNodeNotFound
	}
	g.nodes[i].X = x
	g.nodes[i].Y = y
	return nil
}

// reindex rebuilds nodeIdx, edgeIdx and out from the dense arenas.
func (g *Graph) reindex() {
	g.nodeIdx = make(map[NodeID]int, len(g.nodes))
	g.edgeIdx = make(map[edgeKey]int, len(g.edges))
	g.out = make(map[NodeID][]int, len(g.nodes))

	var i int
	for i = range g.nodes {
		g.nodeIdx[g.nodes[i].ID] = i
	}
	for i = range g.edges {
		g.edgeIdx[edgeKey{g.edges[i].From, g.edges[i].To}] = i
		g.out[g.edges[i].From] = append(g.out[g.edges[i].From], i)
	}
}
