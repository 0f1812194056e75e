// Package sim - generation bootstrap: ant population spawning.
package sim

import (
	"math/rand"

	"github.com/varankin/colony/graph"
)

// Spawn creates a fresh generation of count ants, each starting on a node
// drawn uniformly at random from g's node set (independent draws, with
// replacement across ants). Every ant begins with Visited=[start] and a zero
// tour length.
//
// Contract:
//   - g must hold at least one node (else ErrEmptyGraph).
//   - count ≥ 1 (else ErrBadParameter); rng non-nil (else ErrNilRNG).
//
// Complexity: O(count).
func Spawn(g *graph.Graph, count int, rng *rand.Rand) ([]Ant, error) {
	if g == nil || g.NodeCount() == 0 {
		return nil, ErrEmptyGraph
	}
	if count < 1 {
		return nil, ErrBadParameter
	}
	if rng == nil {
		return nil, ErrNilRNG
	}

	var (
		n    = g.NodeCount()
		ants = make([]Ant, count)
		i    int
	)
	for i = 0; i < count; i++ {
		start, _ := g.NodeAt(rng.Intn(n))
		ants[i] = Ant{
			ID:      i,
			Current: start.ID,
			Visited: []graph.NodeID{start.ID},
		}
	}
	return ants, nil
}
