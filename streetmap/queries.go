package streetmap

import (
	"errors"
	"time"

	"github.com/michaelharhay1/EduRoute-Mapper-Application/courier"
	"github.com/michaelharhay1/EduRoute-Mapper-Application/geo"
	"github.com/michaelharhay1/EduRoute-Mapper-Application/pathmatrix"
	"github.com/michaelharhay1/EduRoute-Mapper-Application/provider"
	"github.com/michaelharhay1/EduRoute-Mapper-Application/router"
)

// StreetSegmentLength returns the length in meters of segment seg.
func (e *Engine) StreetSegmentLength(seg int) (float64, error) {
	ix, _, err := e.ready()
	if err != nil {
		return 0, err
	}
	return ix.StreetSegmentLength(seg), nil
}

// StreetSegmentTravelTime returns the travel time in seconds of segment seg.
func (e *Engine) StreetSegmentTravelTime(seg int) (float64, error) {
	ix, _, err := e.ready()
	if err != nil {
		return 0, err
	}
	return ix.StreetSegmentTravelTime(seg), nil
}

// StreetLength returns the total length in meters of street.
func (e *Engine) StreetLength(street int) (float64, error) {
	ix, _, err := e.ready()
	if err != nil {
		return 0, err
	}
	return ix.StreetLength(street), nil
}

// WayLength returns the total length in meters of OSM way osmWayID.
func (e *Engine) WayLength(osmWayID int64) (float64, error) {
	ix, _, err := e.ready()
	if err != nil {
		return 0, err
	}
	return ix.WayLength(osmWayID), nil
}

// WayMemberNodes returns the ordered raw OSM node IDs along OSM way way.
func (e *Engine) WayMemberNodes(way int) ([]int64, error) {
	ix, _, err := e.ready()
	if err != nil {
		return nil, err
	}
	return ix.WayMemberNodes(way), nil
}

// IntersectionsOfStreet returns the deduplicated intersection IDs of street.
func (e *Engine) IntersectionsOfStreet(street int) ([]int, error) {
	ix, _, err := e.ready()
	if err != nil {
		return nil, err
	}
	return ix.IntersectionsOfStreet(street), nil
}

// SegmentsOfIntersection returns every segment incident to intersection.
func (e *Engine) SegmentsOfIntersection(intersection int) ([]int, error) {
	ix, _, err := e.ready()
	if err != nil {
		return nil, err
	}
	return ix.SegmentsOfIntersection(intersection), nil
}

// IntersectionsOfTwoStreets returns the set intersection of a's and b's
// intersection lists.
func (e *Engine) IntersectionsOfTwoStreets(a, b int) ([]int, error) {
	ix, _, err := e.ready()
	if err != nil {
		return nil, err
	}
	return ix.IntersectionsOfTwoStreets(a, b), nil
}

// IntersectionsDirectlyConnected reports whether a segment incident to a has
// b as its other endpoint.
func (e *Engine) IntersectionsDirectlyConnected(a, b int) (bool, error) {
	ix, _, err := e.ready()
	if err != nil {
		return false, err
	}
	return ix.IntersectionsDirectlyConnected(a, b), nil
}

// StreetIDsFromPartialName returns streets whose normalized name begins with
// the normalized prefix.
func (e *Engine) StreetIDsFromPartialName(prefix string) ([]int, error) {
	ix, _, err := e.ready()
	if err != nil {
		return nil, err
	}
	return ix.StreetIDsFromPartialName(prefix), nil
}

// OSMTag returns the value of key for osmID, or "" if unknown.
func (e *Engine) OSMTag(osmID int64, key string) (string, error) {
	ix, _, err := e.ready()
	if err != nil {
		return "", err
	}
	return ix.OSMTag(osmID, key), nil
}

// FindClosestIntersection returns the intersection ID closest to (lat, lon).
func (e *Engine) FindClosestIntersection(lat, lon float64) (int, error) {
	ix, _, err := e.ready()
	if err != nil {
		return 0, err
	}
	p := ix.Provider()
	intersections := make([]provider.Intersection, p.IntersectionCount())
	for i := range intersections {
		intersections[i] = p.Intersection(i)
	}
	return geo.ClosestIntersection(provider.Point{Lat: lat, Lon: lon}, intersections), nil
}

// FindClosestPOI returns the ID of the POI named name closest to (lat, lon).
func (e *Engine) FindClosestPOI(lat, lon float64, name string) (int, bool, error) {
	ix, _, err := e.ready()
	if err != nil {
		return 0, false, err
	}
	p := ix.Provider()
	pois := make([]provider.POI, p.POICount())
	for i := range pois {
		pois[i] = p.POI(i)
	}
	id, ok := geo.ClosestPOIByName(provider.Point{Lat: lat, Lon: lon}, name, pois)
	return id, ok, nil
}

// FindClosestPOIOfType returns the ID of the POI of type typeTag closest to
// (lat, lon). Supplements FindClosestPOI with the original map library's
// type-based lookup (SPEC_FULL.md §4.7).
func (e *Engine) FindClosestPOIOfType(lat, lon float64, typeTag string) (int, bool, error) {
	ix, _, err := e.ready()
	if err != nil {
		return 0, false, err
	}
	p := ix.Provider()
	pois := make([]provider.POI, p.POICount())
	for i := range pois {
		pois[i] = p.POI(i)
	}
	id, ok := geo.ClosestPOIOfType(provider.Point{Lat: lat, Lon: lon}, typeTag, pois)
	return id, ok, nil
}

// FindAngleBetweenSegments returns the exterior turning angle (radians)
// where segments a and b meet, or the no-angle sentinel (geo.IsNoAngle) if
// they share no endpoint.
func (e *Engine) FindAngleBetweenSegments(a, b int) (float64, error) {
	ix, _, err := e.ready()
	if err != nil {
		return 0, err
	}
	p := ix.Provider()
	segA, segB := p.Segment(a), p.Segment(b)
	pos := func(id int) provider.Point { return p.Intersection(id).Pos }
	return geo.AngleBetweenSegments(segA, segB, pos), nil
}

// FindDistance returns the meter distance between two (lat, lon) points.
func (e *Engine) FindDistance(p1, p2 provider.Point) (float64, error) {
	if _, _, err := e.ready(); err != nil {
		return 0, err
	}
	return geo.Distance(p1, p2), nil
}

// FindFeatureArea returns the area in m^2 of feature (0 if open/degenerate).
func (e *Engine) FindFeatureArea(featureID int) (float64, error) {
	ix, proj, err := e.ready()
	if err != nil {
		return 0, err
	}
	return geo.FeatureArea(ix.Provider().Feature(featureID), proj), nil
}

// FindPathBetweenIntersections returns the minimum driving-time segment
// sequence from src to dst under turnPenalty.
func (e *Engine) FindPathBetweenIntersections(turnPenalty float64, src, dst int) ([]int, error) {
	ix, _, err := e.ready()
	if err != nil {
		return nil, err
	}
	return router.FindPath(ix, src, dst, turnPenalty)
}

// PathTravelTime sums path's segment travel times plus turnPenalty on every
// street change.
func (e *Engine) PathTravelTime(turnPenalty float64, path []int) (float64, error) {
	ix, _, err := e.ready()
	if err != nil {
		return 0, err
	}
	return router.PathTravelTime(ix, turnPenalty, path), nil
}

// TravellingCourier plans a multi-pickup/multi-dropoff tour over deliveries
// anchored at one of depots, refining within deadline (SPEC_FULL.md §4.5).
// An infeasible problem yields an empty result and a nil error.
func (e *Engine) TravellingCourier(
	turnPenalty float64,
	deliveries []courier.Delivery,
	depots []int,
	deadline time.Time,
) ([]courier.SubPath, error) {
	ix, _, err := e.ready()
	if err != nil {
		return nil, err
	}

	interesting := make([]int, 0, len(depots)+2*len(deliveries))
	interesting = append(interesting, depots...)
	for _, d := range deliveries {
		interesting = append(interesting, d.Pickup, d.Dropoff)
	}

	m, err := pathmatrix.Build(ix, interesting, turnPenalty)
	if err != nil {
		return nil, err
	}

	subpaths, err := courier.Solve(m, deliveries, depots, deadline, 0)
	if errors.Is(err, courier.ErrInfeasible) {
		return nil, nil
	}
	return subpaths, err
}
