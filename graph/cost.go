// Package graph — tour length accounting shared by the engine and callers.
//
// Design:
//   - Strictly side-effect free; O(1) lookups via the edge index.
//   - Defensive: an edge expected to exist but missing contributes 0 rather
//     than raising — user-driven edits can remove edges a running tour still
//     references, and the simulation favors graceful degradation mid-flight.
//   - Stable summation: results are rounded to 1e-9 to avoid cross-platform
//     FP noise in comparisons.
package graph

import "math"

// roundScale controls final length stabilization precision (1e-9).
const roundScale = 1e9

// TourLength sums the distances of the consecutive directed edges along tour,
// including the closing edge from the last entry back to the first whenever
// len(tour) > 1. A tour whose last entry already repeats its first (the
// engine's closed-tour form) gets the closing edge counted exactly once,
// because the final "closing" pair is then a self-pair and self-edges do not
// exist in this model.
//
// Contract:
//   - tour of length 0 or 1 ⇒ 0.
//   - Missing edges contribute 0 (silent skip).
//
// Complexity: O(len(tour)).
func TourLength(g *Graph, tour []NodeID) float64 {
	if g == nil || len(tour) < 2 {
		return 0
	}

	var (
		sum float64
		i   int
		e   Edge
		ok  bool
	)
	for i = 0; i < len(tour)-1; i++ {
		if e, ok = g.EdgeBetween(tour[i], tour[i+1]); ok {
			sum += e.Distance
		}
	}

	// Closing hop back to the start; a no-op self-pair when the tour is
	// already closed (last == first), since self-edges never exist.
	if e, ok = g.EdgeBetween(tour[len(tour)-1], tour[0]); ok {
		sum += e.Distance
	}

	return round1e9(sum)
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
