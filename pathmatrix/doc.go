// Package pathmatrix computes the all-pairs driving-time path and cost
// matrix over a set of "interesting" intersections (depots, pickups, and
// dropoffs) for the courier planner.
//
// For each interesting intersection, one unconstrained, heuristic-off
// Dijkstra run (via router.Search) produces the travel time and reaching
// path to every other interesting intersection. Runs are independent across
// sources and execute concurrently through golang.org/x/sync/errgroup
// (SPEC_FULL.md §4.4, §5).
package pathmatrix
