// Package geo implements the equirectangular projection and the geometric
// queries built on top of it: point distance, turn angle between two
// segments, closed-feature area, and closest-intersection/closest-POI
// lookups.
//
// SPEC_FULL.md §4.2 fixes the projection anchor (the map's mean latitude)
// and requires that pairwise distance use each pair's own local mean
// latitude rather than the map-wide anchor. The map-wide anchor is only
// used by the Project/Unproject pair exposed for callers who want a single
// consistent 2-D frame (e.g. to compute a polygon's area).
package geo
