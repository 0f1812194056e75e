// Package graph provides the data model for ACO simulation graphs:
// positioned nodes, directed weighted edges carrying pheromone, a random
// fully-connected generator, and the editing operations an external UI
// invokes between simulation ticks.
//
// Storage follows an arena-plus-index design: nodes and edges live in dense
// slices and are addressed through id→index maps, so "find node by id" and
// "find edge by ordered (from,to) pair" are O(1) lookups rather than linear
// scans. Out-edges are indexed per source node in creation order; that order
// is part of the public contract because the simulation's roulette-wheel
// selection is ordering-dependent and must be reproducible under a seeded RNG.
//
// Policy (shared with package sim):
//   - No logging, no panics on user input — only sentinel errors.
//   - Deterministic for a fixed *rand.Rand; no hidden randomness.
//   - Edge Distance is fixed at creation time and never recomputed, even
//     when a node is moved afterwards (callers regenerate edges if they
//     need fresh distances).
package graph
