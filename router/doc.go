// Package router implements the single-pair driving-time shortest path:
// best-first search over intersections with an admissible heuristic
// (Euclidean distance to the destination divided by the map's maximum speed
// limit) and a turn penalty charged whenever consecutive segments belong to
// different streets.
//
// Complexity: O((V + E) log V) per query, same bound as a heap-based
// Dijkstra, since the heuristic only reorders the frontier and the
// relaxation-gate prevents more than O(E) pushes.
package router
