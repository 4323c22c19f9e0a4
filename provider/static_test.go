package provider

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStaticProviderCountsAndAccessors(t *testing.T) {
	p := NewStaticProvider(
		[]Intersection{{ID: 0, Pos: Point{Lat: 1, Lon: 2}}},
		[]Segment{{ID: 0, From: 0, To: 0}},
		[]Street{{ID: 0, Name: "Main St"}},
		nil, nil, nil, nil,
	)

	require.Equal(t, 1, p.IntersectionCount())
	require.Equal(t, 1, p.SegmentCount())
	require.Equal(t, 1, p.StreetCount())
	require.Equal(t, 0, p.POICount())

	require.Equal(t, Point{Lat: 1, Lon: 2}, p.Intersection(0).Pos)
	require.Equal(t, "Main St", p.Street(0).Name)
}
