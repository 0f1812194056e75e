// Package colony is an in-memory simulation engine for Ant Colony
// Optimization (ACO) tour-finding on editable weighted directed graphs.
//
// 🐜 What is colony?
//
//	A deterministic, UI-agnostic ACO engine built from two subpackages:
//		• graph/ — nodes, directed weighted edges, pheromone state,
//		  a random fully-connected generator, and the graph-editing
//		  contract (add / remove / move nodes with edge cascading)
//		• sim/   — ant populations, the stochastic transition rule,
//		  pheromone evaporation & deposit, and the tick-driven
//		  iteration engine that advances a whole generation
//
// ✨ Design pillars
//
//   - Immutable snapshots — every Tick maps (State, Parameters) to a fresh
//     State value; callers never see their input mutated
//   - Deterministic — all randomness flows through one injected *rand.Rand;
//     a fixed seed reproduces an identical tick sequence
//   - Pure Go core — rendering, editing gestures and timers live entirely
//     outside the engine; the engine only exposes the functions they call
//
// A headless scheduler lives under cmd/colony: it generates a graph, runs
// generations to completion, and reports the best tour found.
//
//	go get github.com/varankin/colony
package colony
