// Internal tests for pheromone evaporation and deposit.
package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/varankin/colony/graph"
)

func pheromoneSum(edges []graph.Edge) float64 {
	var sum float64
	for _, e := range edges {
		sum += e.Pheromone
	}
	return sum
}

func TestUpdatePheromone_EvaporationConservesScaledMass(t *testing.T) {
	g, err := graph.Generate(6, 500, 500, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	p := DefaultParameters()
	p.Rho = 0.25

	// No completed ants ⇒ evaporation only:
	// sum(after) == sum(before)·(1−rho) within FP tolerance.
	before := pheromoneSum(g.Edges())
	after := pheromoneSum(updatePheromone(g, nil, p))
	require.InDelta(t, before*(1-p.Rho), after, 1e-9)
}

func TestUpdatePheromone_DepositCoversClosingEdge(t *testing.T) {
	g := triangle(t)
	p := DefaultParameters()
	p.Rho = 0.5
	p.Q = 100

	tour := []graph.NodeID{"a", "b", "c", "a"}
	ant := Ant{Current: "a", Visited: tour, TourLength: graph.TourLength(g, tour)}
	require.Greater(t, ant.TourLength, 0.0)

	edges := updatePheromone(g, []Ant{ant}, p)
	deposit := p.Q / ant.TourLength
	expected := graph.InitialPheromone*(1-p.Rho) + deposit

	// Every traversed directed edge, the closing c→a pair included.
	for _, pair := range [][2]graph.NodeID{{"a", "b"}, {"b", "c"}, {"c", "a"}} {
		i, ok := g.EdgeIndex(pair[0], pair[1])
		require.True(t, ok)
		require.InDeltaf(t, expected, edges[i].Pheromone, 1e-9, "edge %s→%s", pair[0], pair[1])
	}

	// Untraversed edges only evaporate; reverse directions stay asymmetric.
	i, ok := g.EdgeIndex("b", "a")
	require.True(t, ok)
	require.InDelta(t, graph.InitialPheromone*(1-p.Rho), edges[i].Pheromone, 1e-9)
}

func TestUpdatePheromone_DepositsAccumulateAdditively(t *testing.T) {
	g := triangle(t)
	p := DefaultParameters()
	p.Rho = 0.1
	p.Q = 90

	tour := []graph.NodeID{"a", "b", "c", "a"}
	length := graph.TourLength(g, tour)
	a1 := Ant{ID: 0, Current: "a", Visited: tour, TourLength: length}
	a2 := Ant{ID: 1, Current: "a", Visited: tour, TourLength: length}

	edges := updatePheromone(g, []Ant{a1, a2}, p)

	i, ok := g.EdgeIndex("a", "b")
	require.True(t, ok)
	want := graph.InitialPheromone*(1-p.Rho) + 2*(p.Q/length)
	require.InDelta(t, want, edges[i].Pheromone, 1e-9)
}

func TestUpdatePheromone_SkipsIncompleteAndDegenerate(t *testing.T) {
	g := triangle(t)
	p := DefaultParameters()
	p.Rho = 0.2

	incomplete := Ant{Current: "b", Visited: []graph.NodeID{"a", "b"}, TourLength: 30}
	zeroLen := Ant{Current: "a", Visited: []graph.NodeID{"a", "b", "c", "a"}, TourLength: 0}

	edges := updatePheromone(g, []Ant{incomplete, zeroLen}, p)
	for _, e := range edges {
		require.InDelta(t, graph.InitialPheromone*(1-p.Rho), e.Pheromone, 1e-9)
	}
}

func TestUpdatePheromone_DoesNotMutateGraph(t *testing.T) {
	g := triangle(t)
	p := DefaultParameters()

	tour := []graph.NodeID{"a", "b", "c", "a"}
	ant := Ant{Current: "a", Visited: tour, TourLength: graph.TourLength(g, tour)}
	_ = updatePheromone(g, []Ant{ant}, p)

	for _, e := range g.Edges() {
		require.Equal(t, graph.InitialPheromone, e.Pheromone, "input graph mutated")
	}
}
