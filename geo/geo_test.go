package geo

import (
	"math"
	"testing"

	"github.com/michaelharhay1/EduRoute-Mapper-Application/provider"
	"github.com/stretchr/testify/require"
)

func TestDistanceZeroAndSymmetric(t *testing.T) {
	p := provider.Point{Lat: 43.6532, Lon: -79.3832}
	require.InDelta(t, 0, Distance(p, p), 1e-9)

	q := provider.Point{Lat: 43.66, Lon: -79.40}
	require.InDelta(t, Distance(p, q), Distance(q, p), 1e-9)
}

func TestFeatureAreaSquareDegree(t *testing.T) {
	intersections := []provider.Intersection{
		{ID: 0, Pos: provider.Point{Lat: 0, Lon: 0}},
		{ID: 1, Pos: provider.Point{Lat: 1, Lon: 1}},
	}
	proj := NewProjector(intersections)

	square := provider.Feature{
		Closed: true,
		Points: []provider.Point{
			{Lat: 0, Lon: 0},
			{Lat: 0, Lon: 1},
			{Lat: 1, Lon: 1},
			{Lat: 1, Lon: 0},
			{Lat: 0, Lon: 0},
		},
	}
	area := FeatureArea(square, proj)
	require.Greater(t, area, 0.0)

	open := square
	open.Closed = false
	require.Equal(t, 0.0, FeatureArea(open, proj))

	degenerate := provider.Feature{Closed: true, Points: []provider.Point{{Lat: 0, Lon: 0}, {Lat: 1, Lon: 1}}}
	require.Equal(t, 0.0, FeatureArea(degenerate, proj))
}

func TestAngleBetweenSegmentsUndefinedWhenDisjoint(t *testing.T) {
	pos := func(id int) provider.Point {
		pts := map[int]provider.Point{0: {Lat: 0, Lon: 0}, 1: {Lat: 0, Lon: 1}, 2: {Lat: 1, Lon: 1}, 3: {Lat: 5, Lon: 5}}
		return pts[id]
	}
	a := provider.Segment{From: 0, To: 1}
	b := provider.Segment{From: 2, To: 3}
	require.True(t, IsNoAngle(AngleBetweenSegments(a, b, pos)))
}

func TestAngleBetweenSegmentsStraightLineIsZero(t *testing.T) {
	pos := func(id int) provider.Point {
		pts := map[int]provider.Point{0: {Lat: 0, Lon: 0}, 1: {Lat: 0, Lon: 1}, 2: {Lat: 0, Lon: 2}}
		return pts[id]
	}
	a := provider.Segment{From: 0, To: 1}
	b := provider.Segment{From: 1, To: 2}
	angle := AngleBetweenSegments(a, b, pos)
	require.False(t, IsNoAngle(angle))
	require.InDelta(t, 0, angle, 1e-6)
}

func TestClosestIntersectionTieBreaksFirstScanned(t *testing.T) {
	intersections := []provider.Intersection{
		{ID: 5, Pos: provider.Point{Lat: 0, Lon: 0}},
		{ID: 7, Pos: provider.Point{Lat: 0, Lon: 0}},
	}
	require.Equal(t, 5, ClosestIntersection(provider.Point{Lat: 0, Lon: 0}, intersections))
}

func TestClosestPOIByName(t *testing.T) {
	pois := []provider.POI{
		{ID: 1, Name: "Tim Hortons", Position: provider.Point{Lat: 0, Lon: 0}},
		{ID: 2, Name: "Tim Hortons", Position: provider.Point{Lat: 10, Lon: 10}},
	}
	id, ok := ClosestPOIByName(provider.Point{Lat: 0, Lon: 0}, "Tim Hortons", pois)
	require.True(t, ok)
	require.Equal(t, 1, id)

	_, ok = ClosestPOIByName(provider.Point{Lat: 0, Lon: 0}, "Nope", pois)
	require.False(t, ok)
}

func TestDegToRadHalfTurnIsPi(t *testing.T) {
	require.InDelta(t, math.Pi, degToRad(180), 1e-12)
}
