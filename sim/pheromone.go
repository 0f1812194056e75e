// Package sim - pheromone evaporation and deposit.
//
// Two-phase update over every edge in the graph, run once per completed
// generation, strictly after all ant moves for the tick have been merged:
//
//  1. Evaporation: every edge's pheromone scales by (1 − rho), uniformly,
//     regardless of use.
//  2. Deposit: each completed ant adds q/tourLength to every edge along its
//     closed path — each consecutive Visited pair, the final return-to-start
//     pair included. Multiple ants on one edge accumulate additively.
//
// The update never touches the input graph: it produces a positionally
// identical replacement edge arena for graph.WithEdges.
package sim

import "github.com/varankin/colony/graph"

// updatePheromone returns the post-generation edge arena for g given the
// tick's final ant population.
//
// Defensive behavior per the degradation policy: an edge lookup that fails
// (possible only after a mid-generation user edit) is silently skipped, and
// ants with a non-positive tour length contribute nothing.
//
// Complexity: O(E + completed·V).
func updatePheromone(g *graph.Graph, ants []Ant, p Parameters) []graph.Edge {
	var (
		edges = g.Edges()
		n     = g.NodeCount()
		decay = 1.0 - p.Rho
		i     int
	)

	// Phase 1: uniform evaporation.
	for i = range edges {
		edges[i].Pheromone *= decay
	}

	// Phase 2: additive deposits along completed closed tours. Visited ends
	// with the repeated start id, so the consecutive pairs already cover the
	// closing edge.
	var a Ant
	for _, a = range ants {
		if !a.Completed(n) || a.TourLength <= 0 {
			continue
		}
		deposit := p.Q / a.TourLength
		for i = 0; i+1 < len(a.Visited); i++ {
			if ei, ok := g.EdgeIndex(a.Visited[i], a.Visited[i+1]); ok {
				edges[ei].Pheromone += deposit
			}
		}
	}

	return edges
}
