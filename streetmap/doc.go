// Package streetmap is the Engine facade exposed to a Query Client: it owns
// the loaded-map lifecycle and forwards every query (map index, geometry,
// single-pair routing, all-pairs matrix, courier planning) to mapindex,
// geo, router, pathmatrix, and courier (SPEC_FULL.md §4.6, §6).
//
// Every query method returns ErrNotLoaded if called before LoadMap or after
// CloseMap. The original map library left this undefined; SPEC_FULL.md §4.6
// treats that as a redesign opportunity rather than true undefined behavior,
// since an idiomatic Go API should never require callers to guess.
package streetmap
