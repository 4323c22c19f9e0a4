package pathmatrix

import (
	"testing"

	"github.com/michaelharhay1/EduRoute-Mapper-Application/mapindex"
	"github.com/michaelharhay1/EduRoute-Mapper-Application/provider"
	"github.com/stretchr/testify/require"
)

// A line graph 0-1-2-3, two-way, street 0 throughout, 10 m/s, ~100m hops.
func buildLine(t *testing.T) *mapindex.Index {
	t.Helper()
	inters := []provider.Intersection{
		{ID: 0, Pos: provider.Point{Lat: 0, Lon: 0}},
		{ID: 1, Pos: provider.Point{Lat: 0, Lon: 0.0009}},
		{ID: 2, Pos: provider.Point{Lat: 0, Lon: 0.0018}},
		{ID: 3, Pos: provider.Point{Lat: 0, Lon: 0.0027}},
	}
	segs := []provider.Segment{
		{ID: 0, From: 0, To: 1, SpeedLimitMPS: 10, StreetID: 0},
		{ID: 1, From: 1, To: 2, SpeedLimitMPS: 10, StreetID: 0},
		{ID: 2, From: 2, To: 3, SpeedLimitMPS: 10, StreetID: 0},
	}
	streets := []provider.Street{{ID: 0, Name: "Line St"}}
	ix, err := mapindex.Build(provider.NewStaticProvider(inters, segs, streets, nil, nil, nil, nil))
	require.NoError(t, err)
	return ix
}

func TestBuildMatrixConsistency(t *testing.T) {
	ix := buildLine(t)
	m, err := Build(ix, []int{0, 2, 3, 0}, 0) // duplicate 0 should be deduped
	require.NoError(t, err)

	require.Equal(t, []int{0, 2, 3}, m.Intersections)
	require.Equal(t, 0.0, m.CostByID(0, 0))
	require.Empty(t, m.PathByID(0, 0))
	require.Greater(t, m.CostByID(0, 3), m.CostByID(0, 2))
	require.Equal(t, []int{0, 1, 2}, m.PathByID(0, 3))
}

func TestUnreachableDetection(t *testing.T) {
	inters := []provider.Intersection{
		{ID: 0, Pos: provider.Point{Lat: 0, Lon: 0}},
		{ID: 1, Pos: provider.Point{Lat: 1, Lon: 1}},
	}
	p := provider.NewStaticProvider(inters, nil, nil, nil, nil, nil, nil)
	ix, err := mapindex.Build(p)
	require.NoError(t, err)

	m, err := Build(ix, []int{0, 1}, 0)
	require.NoError(t, err)
	require.True(t, m.Unreachable([][2]int{{0, 1}}))
}
