package geo

import (
	"math"

	"github.com/michaelharhay1/EduRoute-Mapper-Application/provider"
)

// EarthRadiusMeters is the sphere radius used by the equirectangular
// projection and by Distance. Matches the value the original C++ map
// library used for its own lat/lon -> meters conversion.
const EarthRadiusMeters = 6_372_797.560856

func degToRad(d float64) float64 { return d * math.Pi / 180 }

// Projector is an equirectangular projection anchored at a fixed latitude
// (SPEC_FULL.md §4.2). It gives a single, consistent 2-D meter frame for a
// whole map, used for closed-feature area (which needs many points in one
// frame, not just a pair).
type Projector struct {
	anchorLat float64 // radians
	cosAnchor float64
}

// NewProjector builds a Projector anchored at the mean of the highest and
// lowest latitude across intersections. Panics if intersections is empty:
// a map with zero intersections has no meaningful projection. Its caller,
// streetmap.Engine.LoadMap, only reaches it after mapindex.Build succeeded,
// and Build rejects a dataset with no intersections.
func NewProjector(intersections []provider.Intersection) *Projector {
	latMax := intersections[0].Pos.Lat
	latMin := intersections[0].Pos.Lat
	for _, in := range intersections[1:] {
		if in.Pos.Lat > latMax {
			latMax = in.Pos.Lat
		}
		if in.Pos.Lat < latMin {
			latMin = in.Pos.Lat
		}
	}
	anchor := degToRad((latMax + latMin) / 2)
	return &Projector{anchorLat: anchor, cosAnchor: math.Cos(anchor)}
}

// Project maps (lat, lon) to (x, y) meters in the anchored frame.
func (p *Projector) Project(pt provider.Point) (x, y float64) {
	x = EarthRadiusMeters * degToRad(pt.Lon) * p.cosAnchor
	y = EarthRadiusMeters * degToRad(pt.Lat)
	return x, y
}

// Unproject is the inverse of Project.
func (p *Projector) Unproject(x, y float64) provider.Point {
	lat := (y / EarthRadiusMeters) * 180 / math.Pi
	lon := (x / (EarthRadiusMeters * p.cosAnchor)) * 180 / math.Pi
	return provider.Point{Lat: lat, Lon: lon}
}

// Distance returns the meter distance between two (lat, lon) points, using
// each pair's own local mean latitude to scale longitude (not the map-wide
// anchor). SPR's heuristic and every length computation in mapindex use
// this function (SPEC_FULL.md §4.2).
func Distance(a, b provider.Point) float64 {
	meanLat := degToRad((a.Lat + b.Lat) / 2)
	cosMean := math.Cos(meanLat)

	ax := EarthRadiusMeters * degToRad(a.Lon) * cosMean
	ay := EarthRadiusMeters * degToRad(a.Lat)
	bx := EarthRadiusMeters * degToRad(b.Lon) * cosMean
	by := EarthRadiusMeters * degToRad(b.Lat)

	dx := bx - ax
	dy := by - ay
	return math.Hypot(dx, dy)
}

// IsNoAngle reports whether a value returned by AngleBetweenSegments is the
// "no angle" sentinel (the two segments do not share an endpoint).
func IsNoAngle(v float64) bool { return math.IsNaN(v) }

// AngleBetweenSegments returns the exterior turning angle (in radians) at
// the endpoint shared by segments a and b. If they share no endpoint, it
// returns the NaN sentinel (see IsNoAngle) rather than an error
// (SPEC_FULL.md §7 AngleUndefined).
//
// The "next point along each segment away from the shared endpoint" is the
// segment's first curve point if it has one, else its far endpoint — per
// SPEC_FULL.md §4.2.
func AngleBetweenSegments(a, b provider.Segment, pos func(intersectionID int) provider.Point) float64 {
	shared, aOther, bOther, ok := sharedEndpoint(a, b)
	if !ok {
		return math.NaN()
	}

	sharedPt := pos(shared)
	aNextPt := nextPointAway(a, aOther, pos)
	bNextPt := nextPointAway(b, bOther, pos)

	dShared2A := Distance(sharedPt, aNextPt)
	dShared2B := Distance(sharedPt, bNextPt)
	dAB := Distance(aNextPt, bNextPt)

	if dShared2A == 0 || dShared2B == 0 {
		return math.NaN()
	}

	// Law of cosines: dAB^2 = dShared2A^2 + dShared2B^2 - 2*dShared2A*dShared2B*cos(theta)
	cosTheta := (dShared2A*dShared2A + dShared2B*dShared2B - dAB*dAB) / (2 * dShared2A * dShared2B)
	cosTheta = clamp(cosTheta, -1, 1)
	theta := math.Acos(cosTheta)

	return math.Pi - theta
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// sharedEndpoint identifies the intersection common to both segments (if
// any) and the "other" endpoint of each segment relative to it.
func sharedEndpoint(a, b provider.Segment) (shared, aOther, bOther int, ok bool) {
	switch {
	case a.From == b.From:
		return a.From, a.To, b.To, true
	case a.From == b.To:
		return a.From, a.To, b.From, true
	case a.To == b.From:
		return a.To, a.From, b.To, true
	case a.To == b.To:
		return a.To, a.From, b.From, true
	default:
		return 0, 0, 0, false
	}
}

// nextPointAway returns the first curve point of seg moving away from the
// shared endpoint, or the segment's far endpoint if it has no curve points.
func nextPointAway(seg provider.Segment, otherEndpointID int, pos func(int) provider.Point) provider.Point {
	if seg.From == otherEndpointID && len(seg.Curve) > 0 {
		return seg.Curve[len(seg.Curve)-1]
	}
	if seg.To == otherEndpointID && len(seg.Curve) > 0 {
		return seg.Curve[0]
	}
	return pos(otherEndpointID)
}

// FeatureArea returns the area (m^2) of a closed, non-self-intersecting
// feature via the shoelace formula on points projected through proj. Open
// or degenerate features (fewer than 3 points, first != last) have area 0
// (SPEC_FULL.md §4.2; self-intersection detection is left to the caller).
// Features are not distinguished by Type: a closed building outline gets its
// shoelace area like any other feature, and streetmap.Engine.FindFeatureArea
// passes every feature through unchanged.
func FeatureArea(f provider.Feature, proj *Projector) float64 {
	if !f.Closed || len(f.Points) < 3 || f.Points[0] != f.Points[len(f.Points)-1] {
		return 0
	}

	x0, y0 := proj.Project(f.Points[0])
	var sum float64
	for i := 0; i < len(f.Points)-1; i++ {
		xi, yi := proj.Project(f.Points[i])
		xj, yj := proj.Project(f.Points[i+1])
		sum += (xi-x0)*(yj-y0) - (xj-x0)*(yi-y0)
	}

	return math.Abs(sum) / 2
}

// ClosestIntersection returns the ID of the intersection in intersections
// closest to pt, breaking ties by first-scanned. intersections must be
// non-empty.
func ClosestIntersection(pt provider.Point, intersections []provider.Intersection) int {
	best := intersections[0].ID
	bestDist := Distance(pt, intersections[0].Pos)
	for _, in := range intersections[1:] {
		d := Distance(pt, in.Pos)
		if d < bestDist {
			bestDist = d
			best = in.ID
		}
	}
	return best
}

// ClosestPOIByName returns the ID of the closest POI whose name equals
// name, breaking ties by first-scanned. Returns (0, false) if no POI
// matches the name.
func ClosestPOIByName(pt provider.Point, name string, pois []provider.POI) (int, bool) {
	found := false
	var best int
	var bestDist float64
	for _, p := range pois {
		if p.Name != name {
			continue
		}
		d := Distance(pt, p.Position)
		if !found || d < bestDist {
			found = true
			bestDist = d
			best = p.ID
		}
	}
	return best, found
}

// ClosestPOIOfType returns the ID of the closest POI whose type tag equals
// typeTag, breaking ties by first-scanned. This supplements spec.md's
// name-based lookup with the original map library's type-based one
// (SPEC_FULL.md §4.7).
func ClosestPOIOfType(pt provider.Point, typeTag string, pois []provider.POI) (int, bool) {
	found := false
	var best int
	var bestDist float64
	for _, p := range pois {
		if p.Type != typeTag {
			continue
		}
		d := Distance(pt, p.Position)
		if !found || d < bestDist {
			found = true
			bestDist = d
			best = p.ID
		}
	}
	return best, found
}
