// Package mapindex builds and owns the derived lookup tables over a loaded
// map dataset: per-segment length and travel time, per-intersection incident
// segments, per-street intersection sets and total length, a street-name
// prefix index, per-OSM-way length, and the OSM tag dictionary.
//
// Index is built once by Build and is immutable and safe for concurrent
// reads afterward (SPEC_FULL.md §3, §4.1). It also owns the directed
// multigraph (core.Graph) used by router and pathmatrix to expand a frontier
// node into its legally-traversable incident segments, honoring one-way
// restrictions the same way core.Graph honors edge directedness.
package mapindex
