// Package sim - the mover: advance every ant by one hop.
//
// Per-ant moves are independent within a tick (no ant reads another ant's
// move), which makes the step embarrassingly parallel. Above a fixed
// population threshold the mover fans out across an errgroup worker pool;
// every ant then draws from its own deterministically derived RNG stream, so
// the outcome for a fixed seed does not depend on goroutine scheduling. All
// results are merged into one slice before returning — the pheromone update
// runs strictly after this join barrier.
package sim

import (
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/varankin/colony/graph"
)

// parallelThreshold is the population size at which the mover switches from
// the serial path to the worker pool. Fixed, so a given (state, parameters,
// seed) triple always takes the same code path and stays reproducible.
const parallelThreshold = 16

// advanceAll advances every ant by one hop and returns the new population.
// Input ants are never mutated; unchanged (stalled or completed) ants are
// still deep-copied so the returned slice aliases nothing from the input.
//
// Complexity: O(ants · deg) per tick.
func advanceAll(g *graph.Graph, ants []Ant, p Parameters, rng *rand.Rand) []Ant {
	next := make([]Ant, len(ants))

	if len(ants) < parallelThreshold {
		var i int
		for i = range ants {
			next[i] = advanceAnt(g, ants[i], p, rng)
		}
		return next
	}

	// Derive all per-ant streams serially, in ant order, BEFORE fanning out:
	// deriveRNG consumes base state, so derivation order is part of the
	// deterministic contract.
	streams := make([]*rand.Rand, len(ants))
	var i int
	for i = range ants {
		streams[i] = deriveRNG(rng, uint64(i))
	}

	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i = range ants {
		i := i
		eg.Go(func() error {
			next[i] = advanceAnt(g, ants[i], p, streams[i])
			return nil
		})
	}
	// Workers never return errors; Wait is purely the join barrier.
	_ = eg.Wait()

	return next
}

// advanceAnt computes one ant's next-hop state:
//
//  1. Completed ants are carried over unchanged.
//  2. An ant that has visited every node attempts the closing hop back to
//     its spawn node; a missing closing edge leaves it stalled this tick.
//  3. Otherwise the transition rule picks among unvisited targets; no
//     candidate means the ant is stalled (it will never complete this
//     generation — a valid terminal outcome, not an error).
//
// The returned Ant never shares its Visited backing array with the input.
func advanceAnt(g *graph.Graph, a Ant, p Parameters, rng *rand.Rand) Ant {
	n := g.NodeCount()

	if a.Completed(n) {
		return cloneAnt(a)
	}

	if a.saturated(n) {
		e, ok := g.EdgeBetween(a.Current, a.start())
		if !ok {
			// Closing edge missing (user edit mid-generation): stall.
			return cloneAnt(a)
		}
		return hop(a, e)
	}

	e, ok := nextEdge(g, &a, p.Alpha, p.Beta, rng)
	if !ok {
		return cloneAnt(a)
	}
	return hop(a, e)
}

// hop returns a copy of a advanced along e.
func hop(a Ant, e graph.Edge) Ant {
	next := a
	next.Visited = make([]graph.NodeID, len(a.Visited), len(a.Visited)+1)
	copy(next.Visited, a.Visited)
	next.Visited = append(next.Visited, e.To)
	next.TourLength += e.Distance
	next.Current = e.To
	return next
}
