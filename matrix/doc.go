// Package matrix provides a dense, row-major float64 matrix used as the
// storage backbone for the courier planner's all-pairs cost matrix.
//
// This is a deliberately small slice of the teacher library's original
// matrix package (which additionally offered adjacency/incidence views,
// Floyd-Warshall metric closure, and dense linear-algebra ops). The
// routing engine only ever needs a square travel-time matrix indexed by
// "interesting intersection" position, so the rest was trimmed; see
// DESIGN.md for the full accounting of what was dropped and why.
package matrix
