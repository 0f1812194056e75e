// Package sim - the stochastic transition rule (roulette-wheel next hop).
//
// Desirability of a candidate edge e:
//
//	pheromone(e)^alpha · (1/distance(e))^beta
//
// alpha==0 ignores pheromone; beta==0 ignores distance. Distances are
// positive for distinct nodes; coincident nodes are outside the contract.
//
// Selection walks the candidate list IN ITS GIVEN ORDER accumulating
// desirability and returns the first edge whose cumulative sum reaches the
// uniform draw r ∈ [0, total). Finite FP precision can exhaust the walk
// without reaching r; the LAST candidate is then the deterministic fallback —
// never the first, which would bias low-indexed edges on the boundary case.
// Candidates are never filtered further nor re-sorted: ordering-dependent
// tie-breaking is intentional and reproducible under a seeded RNG.
package sim

import (
	"math"
	"math/rand"

	"github.com/varankin/colony/graph"
)

// nextEdge picks the ant's next hop among the edges leaving current whose
// target the ant has not visited. Returns ok=false when no candidate exists
// ("no move available" — a normal outcome for a trapped ant, not an error).
//
// Complexity: O(deg) per call.
func nextEdge(g *graph.Graph, a *Ant, alpha, beta float64, rng *rand.Rand) (graph.Edge, bool) {
	out := g.OutEdges(a.Current)
	if len(out) == 0 {
		return graph.Edge{}, false
	}

	seen := make(map[graph.NodeID]struct{}, len(a.Visited))
	var id graph.NodeID
	for _, id = range a.Visited {
		seen[id] = struct{}{}
	}

	// Candidate edges in stable out-edge order, plus their desirabilities.
	var (
		cands   = out[:0]
		weights = make([]float64, 0, len(out))
		total   float64
		e       graph.Edge
	)
	for _, e = range out {
		if _, visited := seen[e.To]; visited {
			continue
		}
		w := desirability(e, alpha, beta)
		cands = append(cands, e)
		weights = append(weights, w)
		total += w
	}
	if len(cands) == 0 {
		return graph.Edge{}, false
	}

	// Roulette wheel: first cumulative weight ≥ r wins.
	var (
		r   = rng.Float64() * total
		acc float64
		i   int
	)
	for i = range cands {
		acc += weights[i]
		if acc >= r {
			return cands[i], true
		}
	}

	// FP exhaustion: deterministic last-candidate fallback.
	return cands[len(cands)-1], true
}

// desirability scores a single edge: pheromone^alpha · (1/distance)^beta.
func desirability(e graph.Edge, alpha, beta float64) float64 {
	return fastPow(e.Pheromone, alpha) * fastPow(1.0/e.Distance, beta)
}

// fastPow shortcuts the common exponents 0, 1 and 2, avoiding math.Pow in
// the hot selection loop for default-ish parameter values.
func fastPow(x, p float64) float64 {
	switch p {
	case 0:
		return 1.0
	case 1:
		return x
	case 2:
		return x * x
	}
	return math.Pow(x, p)
}
