// Package graph - random fully-connected graph construction.
//
// Contract:
//   - nodeCount ≥ 0 (else ErrNegativeNodeCount); 0 or 1 nodes yields a valid
//     but edge-less graph.
//   - Node ids are "0".."n-1" in placement order; placement is uniform inside
//     the canvas bounds inset by PlacementPadding on every side.
//   - Emits exactly nodeCount·(nodeCount−1) directed edges: one per ordered
//     pair of distinct nodes, distance = euclidean, pheromone = InitialPheromone.
//
// Determinism:
//   - Deterministic ids and pair order (lexicographic by (i,j) index).
//   - Deterministic coordinates for a fixed rng; rng==nil falls back to the
//     default deterministic stream (seed-0 policy, see sim package RNG notes).
//
// Complexity: O(n) placement + O(n²) edge emission.
package graph

import (
	"math/rand"
	"strconv"
)

// PlacementPadding is the fixed inset, in canvas units, kept between any
// generated node and the canvas boundary.
const PlacementPadding = 20.0

// InitialPheromone is the trail strength assigned to every freshly created
// edge, by the generator and by AddNode alike.
const InitialPheromone = 1.0

// defaultGenSeed seeds the fallback stream when callers pass rng==nil.
const defaultGenSeed int64 = 1

// Generate builds a fully connected directed graph with nodeCount nodes
// placed uniformly at random within the padded (width × height) canvas.
//
// When width (resp. height) leaves no room after padding both sides, the
// usable span collapses to zero and all nodes share that axis coordinate at
// the padding offset; coincident nodes produce zero-distance edges, which the
// simulation rejects separately (it requires ≥3 nodes and positive spans in
// practice). No error is raised here: geometry degradation is the caller's
// domain, shape validation is ours.
func Generate(nodeCount int, width, height float64, rng *rand.Rand) (*Graph, error) {
	if nodeCount < 0 {
		return nil, ErrNegativeNodeCount
	}
	r := rng
	if r == nil {
		r = rand.New(rand.NewSource(defaultGenSeed))
	}

	g := New()

	// Usable spans after insetting the padding on both sides; clamped at 0.
	var (
		spanW = width - 2*PlacementPadding
		spanH = height - 2*PlacementPadding
	)
	if spanW < 0 {
		spanW = 0
	}
	if spanH < 0 {
		spanH = 0
	}

	// Stage 1: place nodes in deterministic index order.
	var i int
	for i = 0; i < nodeCount; i++ {
		g.nodes = append(g.nodes, Node{
			ID: NodeID(strconv.Itoa(i)),
			X:  PlacementPadding + r.Float64()*spanW,
			Y:  PlacementPadding + r.Float64()*spanH,
		})
		g.nodeIdx[g.nodes[i].ID] = i
	}

	// Stage 2: emit every ordered pair (i,j), i≠j, in lexicographic index
	// order. Both directions are created explicitly: pheromone evolves
	// independently per direction even though the distances coincide.
	var j int
	for i = 0; i < nodeCount; i++ {
		for j = 0; j < nodeCount; j++ {
			if i == j {
				continue
			}
			g.addEdgeUnchecked(Edge{
				From:      g.nodes[i].ID,
				To:        g.nodes[j].ID,
				Distance:  euclidean(g.nodes[i], g.nodes[j]),
				Pheromone: InitialPheromone,
			})
		}
	}

	return g, nil
}
