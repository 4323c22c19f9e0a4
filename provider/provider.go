package provider

// MapDatasetProvider is the read-only capability surface the routing engine
// consumes from its map-data collaborator (SPEC_FULL.md §6). Every method is
// assumed total over the loaded dataset: implementations must not return
// errors for in-range indices, since the engine treats build-time indexing
// as the only failure point (mapindex.Build returns the boolean/error; every
// subsequent query assumes success).
//
// A real on-disk binary-map reader is explicitly out of scope; StaticProvider
// is the in-memory reference implementation for callers that already hold
// parsed entities (tests, or a Query Client that did its own loading).
type MapDatasetProvider interface {
	// Counts.
	IntersectionCount() int
	SegmentCount() int
	StreetCount() int
	POICount() int
	FeatureCount() int
	OSMNodeCount() int
	OSMWayCount() int

	// Per-entity accessors, valid for id in [0, Count).
	Intersection(id int) Intersection
	Segment(id int) Segment
	Street(id int) Street
	Feature(id int) Feature
	POI(id int) POI
	OSMNode(id int) OSMEntity
	OSMWay(id int) OSMEntity
}
