// Package provider defines the read-only contract the routing engine
// consumes from its map-data collaborator.
//
// The interactive graphics front-end, the on-disk map-file reader, and the
// POI/feature categorisation tables are explicitly out of scope for this
// module (see SPEC_FULL.md §1 Non-goals). What remains is the boundary:
// a total, read-only "Map Dataset Provider" that supplies intersections,
// street segments, streets, curve geometry, POIs, and OSM tag dictionaries,
// and a "Query Client" that calls the routing APIs built on top of it.
//
// StaticProvider is the one concrete implementation this module ships: an
// in-memory holder of already-parsed entities, for callers (or tests) that
// already have a loaded dataset and just need to satisfy MapDatasetProvider.
package provider
