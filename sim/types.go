// Package sim - core value types, sentinel errors and parameter validation.
package sim

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/varankin/colony/graph"
)

// Sentinel errors for simulation operations.
var (
	// ErrInsufficientGraph indicates a tick was attempted on a graph with
	// fewer than MinSimNodes nodes; the state is returned unchanged.
	ErrInsufficientGraph = errors.New("sim: graph has too few nodes")

	// ErrMaxIterationsReached indicates the iteration counter already hit the
	// configured maximum; further ticks are no-ops and callers should stop
	// scheduling them.
	ErrMaxIterationsReached = errors.New("sim: max iterations reached")

	// ErrEmptyGraph indicates an ant spawn was attempted on a node-less graph.
	ErrEmptyGraph = errors.New("sim: cannot spawn ants on empty graph")

	// ErrBadParameter indicates a Parameters field is outside its valid range.
	ErrBadParameter = errors.New("sim: parameter out of range")

	// ErrNilRNG indicates a stochastic operation received a nil *rand.Rand.
	ErrNilRNG = errors.New("sim: rng is required")
)

// MinSimNodes is the smallest graph a simulation may run on. Below three
// nodes no meaningful tour exists, so Tick refuses before any state change.
const MinSimNodes = 3

// Ant is one path-building agent within a generation.
//
// Visited starts with exactly the spawn node and grows by exactly one id per
// successful hop; TourLength is the running sum of traversed edge distances
// and never decreases. An ant whose Visited length EXCEEDS the graph's node
// count has visited every node and appended the closing return-to-start id.
type Ant struct {
	// ID is the ant's index within its generation.
	ID int

	// Current is the node the ant stands on.
	Current graph.NodeID

	// Visited is the ordered tour built so far, spawn node first.
	Visited []graph.NodeID

	// TourLength accumulates traversed edge distances.
	TourLength float64
}

// Completed reports whether the ant has visited every node and closed the
// loop, for a graph of nodeCount nodes.
func (a *Ant) Completed(nodeCount int) bool {
	return len(a.Visited) > nodeCount
}

// saturated reports whether the ant has visited every node but not yet
// appended the closing return-to-start hop.
func (a *Ant) saturated(nodeCount int) bool {
	return len(a.Visited) == nodeCount
}

// start returns the ant's spawn node (first Visited entry).
func (a *Ant) start() graph.NodeID {
	return a.Visited[0]
}

// Parameters are the colony-level knobs of the simulation.
type Parameters struct {
	// AntCount is the population size per generation (≥1).
	AntCount int

	// Alpha is the pheromone exponent in the transition rule (≥0);
	// 0 ignores pheromone entirely.
	Alpha float64

	// Beta is the inverse-distance exponent in the transition rule (≥0);
	// 0 ignores distance entirely.
	Beta float64

	// Rho is the evaporation rate applied each generation (0 < Rho ≤ 1).
	Rho float64

	// Q scales pheromone deposits: each completed ant adds Q/tourLength
	// along its closed path (>0).
	Q float64

	// Iterations is the maximum number of generations (≥1).
	Iterations int
}

// UI-facing clamp bounds; the engine accepts the wider Validate ranges, but
// parameter forms are expected to stay inside these.
const (
	MinAntCount, MaxAntCount     = 1, 50
	MinAlpha, MaxAlpha           = 0.0, 5.0
	MinBeta, MaxBeta             = 0.0, 5.0
	MaxRho                       = 0.5
	MinQ, MaxQ                   = 10.0, 1000.0
	MinIterations, MaxIterations = 10, 1000
)

// minRho is the positive floor used when clamping Rho: the valid interval is
// open at zero, so clamping snaps non-positive values here instead of to 0.
const minRho = 1e-3

// DefaultParameters returns mid-range defaults suitable for small canvases.
func DefaultParameters() Parameters {
	return Parameters{
		AntCount:   10,
		Alpha:      1.0,
		Beta:       2.0,
		Rho:        0.1,
		Q:          100.0,
		Iterations: 100,
	}
}

// Validate checks internal consistency of the Parameters against the engine
// contract (not the narrower UI ranges — see Clamp for those).
//
// Errors: ErrBadParameter wrapped with the offending field.
//
// Complexity: O(1).
func (p Parameters) Validate() error {
	if p.AntCount < 1 {
		return fmt.Errorf("antCount=%d (want ≥1): %w", p.AntCount, ErrBadParameter)
	}
	if p.Alpha < 0 || math.IsNaN(p.Alpha) {
		return fmt.Errorf("alpha=%g (want ≥0): %w", p.Alpha, ErrBadParameter)
	}
	if p.Beta < 0 || math.IsNaN(p.Beta) {
		return fmt.Errorf("beta=%g (want ≥0): %w", p.Beta, ErrBadParameter)
	}
	if p.Rho <= 0 || p.Rho > 1 || math.IsNaN(p.Rho) {
		return fmt.Errorf("rho=%g (want 0<ρ≤1): %w", p.Rho, ErrBadParameter)
	}
	if p.Q <= 0 || math.IsNaN(p.Q) {
		return fmt.Errorf("q=%g (want >0): %w", p.Q, ErrBadParameter)
	}
	if p.Iterations < 1 {
		return fmt.Errorf("iterations=%d (want ≥1): %w", p.Iterations, ErrBadParameter)
	}
	return nil
}

// Clamp returns a copy of p with every field forced into the UI-facing
// ranges. Rho's interval is open at zero, so non-positive values snap to a
// small positive floor rather than zero. Clamped parameters always Validate.
//
// Complexity: O(1).
func (p Parameters) Clamp() Parameters {
	c := p
	c.AntCount = clampInt(c.AntCount, MinAntCount, MaxAntCount)
	c.Alpha = clampFloat(c.Alpha, MinAlpha, MaxAlpha)
	c.Beta = clampFloat(c.Beta, MinBeta, MaxBeta)
	c.Rho = clampFloat(c.Rho, minRho, MaxRho)
	c.Q = clampFloat(c.Q, MinQ, MaxQ)
	c.Iterations = clampInt(c.Iterations, MinIterations, MaxIterations)
	return c
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// State is one immutable snapshot of the whole simulation.
//
// Tick never mutates a State it receives; it returns a fresh value. The
// Graph pointer inside a returned State is shared with the input whenever the
// tick did not update pheromone (node and edge data are read-only during
// ticks), and replaced via graph.WithEdges when it did.
type State struct {
	// Graph is the simulation topology.
	Graph *graph.Graph

	// Ants is the current generation's population.
	Ants []Ant

	// BestTour is the shortest completed tour found so far (closed form:
	// last entry repeats the first); empty until the first completion.
	BestTour []graph.NodeID

	// BestTourLength is the length of BestTour; +Inf until the first
	// completion and never increases afterwards.
	BestTourLength float64

	// Iteration counts completed generations.
	Iteration int

	// Running reports whether an external scheduler is driving ticks.
	// The engine itself never reads it; it is carried for UI state.
	Running bool

	// TickInterval is the scheduler's delay between ticks. Consumed by the
	// external scheduler only — the engine is interval-agnostic.
	TickInterval time.Duration
}

// NewState returns the initial snapshot for a graph: no ants, no best tour,
// iteration zero.
func NewState(g *graph.Graph) State {
	return State{
		Graph:          g,
		BestTourLength: math.Inf(1),
	}
}

// cloneAnt returns a deep copy of a (independent Visited backing array).
func cloneAnt(a Ant) Ant {
	c := a
	c.Visited = make([]graph.NodeID, len(a.Visited))
	copy(c.Visited, a.Visited)
	return c
}

// cloneTour returns an independent copy of a tour slice.
func cloneTour(t []graph.NodeID) []graph.NodeID {
	c := make([]graph.NodeID, len(t))
	copy(c, t)
	return c
}
