// Internal tests for the mover: closing hops, stalls, input isolation and
// serial/parallel path determinism.
package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/varankin/colony/graph"
)

func TestAdvanceAnt_ClosingHop(t *testing.T) {
	g := triangle(t)
	p := DefaultParameters()

	// Saturated ant (visited all 3 nodes): the only legal move is the
	// closing hop back to its spawn node.
	ant := Ant{Current: "c", Visited: []graph.NodeID{"a", "b", "c"}, TourLength: 80}

	next := advanceAnt(g, ant, p, NewRNG(1))
	require.Equal(t, []graph.NodeID{"a", "b", "c", "a"}, next.Visited)
	require.Equal(t, graph.NodeID("a"), next.Current)
	require.True(t, next.Completed(g.NodeCount()))

	ca, ok := g.EdgeBetween("c", "a")
	require.True(t, ok)
	require.InDelta(t, 80+ca.Distance, next.TourLength, 1e-9)
}

func TestAdvanceAnt_MissingClosingEdgeStalls(t *testing.T) {
	g := triangle(t)
	p := DefaultParameters()

	// Spawn node "x" no longer exists (user edit), so the closing edge c→x
	// cannot resolve: the ant stays put this tick, unchanged.
	ant := Ant{Current: "c", Visited: []graph.NodeID{"x", "b", "c"}, TourLength: 70}
	next := advanceAnt(g, ant, p, NewRNG(1))
	require.Equal(t, ant.Visited, next.Visited)
	require.Equal(t, ant.Current, next.Current)
	require.Equal(t, ant.TourLength, next.TourLength)
}

func TestAdvanceAnt_TrappedAntStalls(t *testing.T) {
	g := triangle(t)
	p := DefaultParameters()

	// Current node was removed mid-generation: no out-edges, no move.
	ant := Ant{Current: "ghost", Visited: []graph.NodeID{"ghost"}}
	next := advanceAnt(g, ant, p, NewRNG(1))
	require.Equal(t, ant.Visited, next.Visited)
	require.Equal(t, 0.0, next.TourLength)
}

func TestAdvanceAnt_CompletedAntUntouched(t *testing.T) {
	g := triangle(t)
	p := DefaultParameters()

	done := Ant{Current: "a", Visited: []graph.NodeID{"a", "b", "c", "a"}, TourLength: 120}
	next := advanceAnt(g, done, p, NewRNG(1))
	require.Equal(t, done.Visited, next.Visited)
	require.Equal(t, done.TourLength, next.TourLength)
}

func TestAdvanceAll_NeverAliasesInput(t *testing.T) {
	g := triangle(t)
	p := DefaultParameters()

	ants, err := Spawn(g, 3, NewRNG(5))
	require.NoError(t, err)

	before := make([]Ant, len(ants))
	for i := range ants {
		before[i] = cloneAnt(ants[i])
	}

	next := advanceAll(g, ants, p, NewRNG(6))

	// Inputs untouched...
	for i := range ants {
		require.Equal(t, before[i].Visited, ants[i].Visited)
	}
	// ...and outputs own their tours.
	for i := range next {
		require.Len(t, next[i].Visited, 2)
		next[i].Visited[0] = "mutated"
		require.NotEqual(t, graph.NodeID("mutated"), ants[i].Visited[0])
	}
}

func TestAdvanceAll_ParallelPathIsDeterministic(t *testing.T) {
	g, err := graph.Generate(8, 500, 500, rand.New(rand.NewSource(11)))
	require.NoError(t, err)
	p := DefaultParameters()

	// Twice the threshold forces the worker-pool path both times.
	const pop = 2 * parallelThreshold

	run := func() []Ant {
		rng := NewRNG(13)
		ants, err := Spawn(g, pop, rng)
		require.NoError(t, err)
		// Advance a few hops to let streams diverge if they were going to.
		for hop := 0; hop < 4; hop++ {
			ants = advanceAll(g, ants, p, rng)
		}
		return ants
	}

	require.Equal(t, run(), run(), "parallel mover must not depend on scheduling")
}
