// Package sim implements the Ant Colony Optimization simulation engine:
// ant populations, the stochastic transition rule, pheromone evaporation and
// deposit, and the tick-driven iteration engine.
//
// The engine is a pure transition function. Tick maps an immutable State
// snapshot plus Parameters to a NEW State; it performs no I/O, never mutates
// its inputs, and holds nothing between calls. Ticks on one state lineage
// must be applied strictly sequentially — each tick's output is the next
// tick's only valid input. Graph edits belong to the gaps between ticks.
//
// Randomness is a capability, not ambient state: every stochastic draw (ant
// spawn placement, roulette-wheel edge selection) flows through the caller's
// injected *rand.Rand, so a fixed seed reproduces an identical tick sequence.
// See rng.go for the seed and stream-derivation policy.
//
// One full generation plays out across many ticks: ants hop one edge per
// tick until every ant has visited all nodes and closed its loop back to the
// start; the completing tick then evaporates and deposits pheromone, records
// the best tour, and respawns a fresh population so the returned state is
// immediately tickable. Ants that run out of reachable unvisited targets
// simply stall in place — a normal terminal outcome, not an error.
package sim
