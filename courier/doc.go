// Package courier implements the multi-pickup/multi-dropoff courier tour
// optimizer: randomized greedy multi-start construction of a
// precedence-legal pickup/dropoff sequence anchored at a depot, followed by
// simulated annealing refinement with precedence-preserving perturbations,
// all driven by a precomputed pathmatrix.Matrix (SPEC_FULL.md §4.5).
//
// Deterministic RNG streams (rng.go, adapted from the teacher's heuristic
// solvers) make every greedy construction reproducible given a seed, per
// SPEC_FULL.md §5's reproducibility requirement. Refinement draws from seeded
// streams too, but how many annealing steps run depends on the wall-clock
// deadline, so its result can differ between runs.
package courier
