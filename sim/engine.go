// Package sim - the iteration engine: one discrete simulation tick.
//
// Colony lifecycle across ticks:
//
//	Bootstrapping ──▶ Stepping ──▶ … ──▶ Stepping ──▶ (generation done)
//	      ▲                                                │
//	      └────────── pheromone update + respawn ◀─────────┘
//
// "Bootstrapping" is detected lazily rather than via a phase flag: an empty
// population, or a lead ant already marked completed by the prior tick,
// means the previous generation finished and a fresh one must spawn.
package sim

import (
	"errors"
	"math/rand"

	"github.com/varankin/colony/graph"
)

// Tick advances the whole colony by one discrete step and returns a new
// immutable State; the input state is never mutated.
//
// Stages:
//  1. Guards — parameter validation, ErrInsufficientGraph below MinSimNodes,
//     ErrMaxIterationsReached at the iteration cap (state returned unchanged
//     in every refusal case; the caller should stop scheduling on the cap).
//  2. Lazy generation start — respawn when the population is empty or its
//     lead ant completed on the prior tick.
//  3. Move every ant one hop.
//  4. If any ant is still mid-tour, return with updated ants only; pheromone
//     and best tour are untouched (the graph pointer is shared — edges only
//     ever change through stage 5, which always copies).
//  5. All ants completed: evaporate+deposit pheromone, adopt the generation's
//     minimum tour when it strictly beats the best so far, advance the
//     iteration counter, and respawn immediately so the returned state is
//     tickable without an idle step.
//
// Stalled ants never complete, so their generation never reaches stage 5;
// they persist unchanged tick after tick. That degrades the search (the
// generation contributes nothing) but is deliberately non-fatal.
//
// Complexity: O(ants·deg) per tick, +O(E + ants·V) on generation completion.
func Tick(s State, p Parameters, rng *rand.Rand) (State, error) {
	if err := p.Validate(); err != nil {
		return s, err
	}
	if rng == nil {
		return s, ErrNilRNG
	}
	if s.Graph == nil || s.Graph.NodeCount() < MinSimNodes {
		return s, ErrInsufficientGraph
	}
	if s.Iteration >= p.Iterations {
		return s, ErrMaxIterationsReached
	}

	var (
		g = s.Graph
		n = g.NodeCount()
	)

	// Stage 2: lazy generation start.
	ants := s.Ants
	if len(ants) == 0 || ants[0].Completed(n) {
		fresh, err := Spawn(g, p.AntCount, rng)
		if err != nil {
			return s, err
		}
		ants = fresh
	}

	// Stage 3: one hop per ant (join barrier inside).
	moved := advanceAll(g, ants, p, rng)

	// Stage 4: generation completion test.
	done := true
	var i int
	for i = range moved {
		if !moved[i].Completed(n) {
			done = false
			break
		}
	}

	next := s
	next.Ants = moved
	if !done {
		return next, nil
	}

	// Stage 5: close out the generation.
	next.Graph = g.WithEdges(updatePheromone(g, moved, p))

	best, bestLen := generationBest(moved)
	if best != nil && bestLen < next.BestTourLength {
		next.BestTour = cloneTour(best)
		next.BestTourLength = bestLen
	}

	next.Iteration = s.Iteration + 1

	fresh, err := Spawn(g, p.AntCount, rng)
	if err != nil {
		return s, err
	}
	next.Ants = fresh

	return next, nil
}

// generationBest scans a fully completed population for the minimum tour.
// Returns (nil, 0) for an empty population.
func generationBest(ants []Ant) ([]graph.NodeID, float64) {
	var (
		best    []graph.NodeID
		bestLen float64
		i       int
	)
	for i = range ants {
		if best == nil || ants[i].TourLength < bestLen {
			best = ants[i].Visited
			bestLen = ants[i].TourLength
		}
	}
	return best, bestLen
}

// Run drives Tick until the iteration cap is reached or maxTicks ticks have
// elapsed, whichever comes first, and returns the final state. The cap
// sentinel is the normal stop and is not surfaced; every other tick error
// (insufficient graph, bad parameters) is.
//
// maxTicks exists because a generation containing a stalled ant never
// completes: without a bound the loop would spin forever on an unchanged
// population. maxTicks ≤ 0 applies a generous default derived from the
// worst case of Iterations full generations.
//
// Complexity: O(maxTicks · tick cost).
func Run(s State, p Parameters, rng *rand.Rand, maxTicks int) (State, error) {
	if maxTicks <= 0 {
		// A generation needs NodeCount hops; +1 covers the closing hop.
		hops := 1
		if s.Graph != nil {
			hops = s.Graph.NodeCount() + 1
		}
		maxTicks = p.Iterations * hops
	}

	var (
		cur = s
		err error
		t   int
	)
	for t = 0; t < maxTicks; t++ {
		cur, err = Tick(cur, p, rng)
		if errors.Is(err, ErrMaxIterationsReached) {
			return cur, nil
		}
		if err != nil {
			return cur, err
		}
	}
	return cur, nil
}
