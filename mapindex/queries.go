package mapindex

import "strconv"

// StreetSegmentLength returns the length in meters of segment seg.
func (ix *Index) StreetSegmentLength(seg int) float64 { return ix.segLength[seg] }

// StreetSegmentTravelTime returns the travel time in seconds of segment seg.
func (ix *Index) StreetSegmentTravelTime(seg int) float64 { return ix.segTravelTime[seg] }

// StreetLength returns the total length in meters of street.
func (ix *Index) StreetLength(street int) float64 { return ix.streetLength[street] }

// WayLength returns the total length in meters of the OSM way identified by
// its raw OSM way ID, or 0 if unknown.
func (ix *Index) WayLength(osmWayID int64) float64 { return ix.wayLength[osmWayID] }

// WayMemberNodes returns the ordered raw OSM node IDs along the OSM way at
// provider index way, the same member-node listing wayPathLength sums
// positions over when computing WayLength (SPEC_FULL.md §4.7).
func (ix *Index) WayMemberNodes(way int) []int64 {
	return ix.provider.OSMWay(way).MemberNode
}

// IntersectionsOfStreet returns the deduplicated intersection IDs belonging
// to street, in first-seen order.
func (ix *Index) IntersectionsOfStreet(street int) []int {
	return ix.streetIntersections[street]
}

// SegmentsOfIntersection returns every segment incident to intersection,
// including one-way segments for which intersection is only the "to" end.
func (ix *Index) SegmentsOfIntersection(intersection int) []int {
	return ix.incidentSegments[intersection]
}

// IntersectionsOfTwoStreets returns the set intersection of a's and b's
// intersection lists, preserving a's order.
func (ix *Index) IntersectionsOfTwoStreets(a, b int) []int {
	bSet := make(map[int]struct{}, len(ix.streetIntersections[b]))
	for _, id := range ix.streetIntersections[b] {
		bSet[id] = struct{}{}
	}
	var out []int
	for _, id := range ix.streetIntersections[a] {
		if _, ok := bSet[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// IntersectionsDirectlyConnected reports whether some segment incident to a
// has b as its other endpoint, regardless of one-way direction.
func (ix *Index) IntersectionsDirectlyConnected(a, b int) bool {
	for _, segID := range ix.incidentSegments[a] {
		seg := ix.provider.Segment(segID)
		if (seg.From == a && seg.To == b) || (seg.To == a && seg.From == b) {
			return true
		}
	}
	return false
}

// StreetIDsFromPartialName returns the streets whose name, lower-cased and
// with whitespace stripped, begins with prefix under the same normalization.
// Empty prefix returns nil.
func (ix *Index) StreetIDsFromPartialName(prefix string) []int {
	if prefix == "" {
		return nil
	}
	return ix.namePrefix[normalizeStreetName(prefix)]
}

// OSMTag returns the value of key for osmID (node or way), or "" if the
// entity or key is unknown.
func (ix *Index) OSMTag(osmID int64, key string) string {
	return ix.tags[osmID][key]
}

// ExpandFrom returns the segments legally traversable when driving away from
// intersection u: every incident segment except one-way segments for which u
// is the "to" endpoint. This is the shared expansion rule SPR (router) and
// APM (pathmatrix) both drive their search from (SPEC_FULL.md §4.3).
func (ix *Index) ExpandFrom(u int) ([]int, error) {
	edges, err := ix.g.Neighbors(strconv.Itoa(u))
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(edges))
	for _, e := range edges {
		out = append(out, ix.segmentByEdgeID[e.ID])
	}
	return out, nil
}

// OtherEndpoint returns the endpoint of segment seg that is not u.
func (ix *Index) OtherEndpoint(seg int, u int) int {
	s := ix.provider.Segment(seg)
	if s.From == u {
		return s.To
	}
	return s.From
}
