// Internal tests for the roulette-wheel transition rule: forced choices,
// trapped ants, candidate ordering and seed determinism.
package sim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/varankin/colony/graph"
)

// triangle builds a fully wired 3-node graph with convenient geometry.
func triangle(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	require.NoError(t, g.AddNode("a", 0, 0))
	require.NoError(t, g.AddNode("b", 30, 0))
	require.NoError(t, g.AddNode("c", 0, 40))
	return g
}

func TestNextEdge_SingleCandidateIsForced(t *testing.T) {
	g := triangle(t)

	// Ant at b has already seen a: only b→c remains. With alpha=0 the edge's
	// pheromone value is irrelevant — the single candidate must always win.
	ant := Ant{Current: "b", Visited: []graph.NodeID{"a", "b"}}

	rng := NewRNG(7)
	for i := 0; i < 50; i++ {
		e, ok := nextEdge(g, &ant, 0, 2, rng)
		require.True(t, ok)
		require.Equal(t, graph.NodeID("c"), e.To)
	}
}

func TestNextEdge_NoCandidates(t *testing.T) {
	g := triangle(t)

	// Everything visited: "no move available" is an outcome, not an error.
	ant := Ant{Current: "c", Visited: []graph.NodeID{"a", "b", "c"}}
	_, ok := nextEdge(g, &ant, 1, 2, NewRNG(7))
	require.False(t, ok)

	// Unknown current node (edit removed it mid-flight): same outcome.
	ghost := Ant{Current: "ghost", Visited: []graph.NodeID{"ghost"}}
	_, ok = nextEdge(g, &ghost, 1, 2, NewRNG(7))
	require.False(t, ok)
}

func TestNextEdge_DeterministicForFixedSeed(t *testing.T) {
	g := triangle(t)
	ant := Ant{Current: "a", Visited: []graph.NodeID{"a"}}

	pick := func(seed int64) []graph.NodeID {
		rng := NewRNG(seed)
		out := make([]graph.NodeID, 0, 32)
		for i := 0; i < 32; i++ {
			e, ok := nextEdge(g, &ant, 1, 2, rng)
			require.True(t, ok)
			out = append(out, e.To)
		}
		return out
	}

	require.Equal(t, pick(99), pick(99), "same seed must replay the same draws")
}

func TestNextEdge_OnlyUnvisitedTargetsQualify(t *testing.T) {
	g := triangle(t)
	ant := Ant{Current: "a", Visited: []graph.NodeID{"c", "a"}}

	// c is visited; every draw must land on b.
	rng := NewRNG(3)
	for i := 0; i < 50; i++ {
		e, ok := nextEdge(g, &ant, 1, 1, rng)
		require.True(t, ok)
		require.Equal(t, graph.NodeID("b"), e.To)
	}
}

func TestFastPow_MatchesExponents(t *testing.T) {
	require.Equal(t, 1.0, fastPow(3.7, 0))
	require.Equal(t, 3.7, fastPow(3.7, 1))
	require.Equal(t, 3.7*3.7, fastPow(3.7, 2))
	require.InDelta(t, 50.653, fastPow(3.7, 3), 1e-9)
}
