package router

import "errors"

// ErrInvalidIntersection indicates a caller passed an intersection ID
// outside [0, IntersectionCount) to Search or FindPath.
var ErrInvalidIntersection = errors.New("router: invalid intersection id")

// noDestination tells Search to run to completion over every reachable node
// rather than stopping once a specific destination is settled. pathmatrix
// uses this for its unconstrained, heuristic-off Dijkstra pass.
const noDestination = -1

// SearchResult is the per-query scratch state of one Search run: for every
// intersection, the best known travel time and the segment/predecessor pair
// that achieved it. All three slices are sized to the intersection count and are
// meant to be discarded after tracing the paths the caller needs
// (SPEC_FULL.md §3 "nodes[] ... discarded after the traceback").
type SearchResult struct {
	Source       int
	BestTime     []float64 // +Inf for unreached nodes
	ReachingSeg  []int     // -1 if none (source, or unreached)
	ReachingPrev []int     // -1 if none
}
