package streetmap

import (
	"testing"
	"time"

	"github.com/michaelharhay1/EduRoute-Mapper-Application/courier"
	"github.com/michaelharhay1/EduRoute-Mapper-Application/provider"
	"github.com/stretchr/testify/require"
)

func twoIntersectionProvider() *provider.StaticProvider {
	inters := []provider.Intersection{
		{ID: 0, Pos: provider.Point{Lat: 0, Lon: 0}},
		{ID: 1, Pos: provider.Point{Lat: 0, Lon: 0.0008983}},
	}
	segs := []provider.Segment{{ID: 0, From: 0, To: 1, SpeedLimitMPS: 10, StreetID: 0}}
	streets := []provider.Street{{ID: 0, Name: "Main St"}}
	return provider.NewStaticProvider(inters, segs, streets, nil, nil, nil, nil)
}

func TestEngineQueriesBeforeLoadReturnErrNotLoaded(t *testing.T) {
	e := NewEngine()
	_, err := e.StreetSegmentLength(0)
	require.ErrorIs(t, err, ErrNotLoaded)

	_, err = e.FindPathBetweenIntersections(0, 0, 1)
	require.ErrorIs(t, err, ErrNotLoaded)
}

func TestEngineLoadAndQuery(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.LoadMap(twoIntersectionProvider()))

	length, err := e.StreetSegmentLength(0)
	require.NoError(t, err)
	require.Greater(t, length, 0.0)

	path, err := e.FindPathBetweenIntersections(0, 0, 1)
	require.NoError(t, err)
	require.Equal(t, []int{0}, path)

	id, err := e.FindClosestIntersection(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, id)

	e.CloseMap()
	_, err = e.StreetSegmentLength(0)
	require.ErrorIs(t, err, ErrNotLoaded)
}

func TestEngineTravellingCourier(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.LoadMap(twoIntersectionProvider()))

	deliveries := []courier.Delivery{{Pickup: 0, Dropoff: 1}}
	depots := []int{0}
	subpaths, err := e.TravellingCourier(0, deliveries, depots, time.Now().Add(20*time.Millisecond))
	require.NoError(t, err)
	require.NotEmpty(t, subpaths)
}
