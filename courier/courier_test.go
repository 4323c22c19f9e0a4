package courier

import (
	"testing"
	"time"

	"github.com/michaelharhay1/EduRoute-Mapper-Application/mapindex"
	"github.com/michaelharhay1/EduRoute-Mapper-Application/pathmatrix"
	"github.com/michaelharhay1/EduRoute-Mapper-Application/provider"
	"github.com/stretchr/testify/require"
)

func TestLegalitySimpleCases(t *testing.T) {
	deliveries := []Delivery{{Pickup: 0, Dropoff: 1}}

	legal := []Action{
		{DeliveryIdx: 0, Intersection: 0, Kind: ActionPickup},
		{DeliveryIdx: 0, Intersection: 1, Kind: ActionDropoff},
	}
	require.True(t, Legal(deliveries, legal))
	require.True(t, CompleteVisits(deliveries, legal))

	illegal := []Action{
		{DeliveryIdx: 0, Intersection: 1, Kind: ActionDropoff},
		{DeliveryIdx: 0, Intersection: 0, Kind: ActionPickup},
	}
	require.False(t, Legal(deliveries, illegal))
}

// S6: one delivery P->D, two depots d1, d2 with d1 closer to P.
func buildS6(t *testing.T) (*mapindex.Index, *pathmatrix.Matrix, []Delivery, []int) {
	t.Helper()
	// Layout on a line: d1=0, P=1, D=2, d2=3 (d1 much closer to P than d2).
	inters := []provider.Intersection{
		{ID: 0, Pos: provider.Point{Lat: 0, Lon: 0}},
		{ID: 1, Pos: provider.Point{Lat: 0, Lon: 0.0009}},
		{ID: 2, Pos: provider.Point{Lat: 0, Lon: 0.0018}},
		{ID: 3, Pos: provider.Point{Lat: 0, Lon: 0.05}},
	}
	segs := []provider.Segment{
		{ID: 0, From: 0, To: 1, SpeedLimitMPS: 10, StreetID: 0},
		{ID: 1, From: 1, To: 2, SpeedLimitMPS: 10, StreetID: 0},
		{ID: 2, From: 2, To: 3, SpeedLimitMPS: 10, StreetID: 0},
	}
	streets := []provider.Street{{ID: 0, Name: "Line"}}
	ix, err := mapindex.Build(provider.NewStaticProvider(inters, segs, streets, nil, nil, nil, nil))
	require.NoError(t, err)

	deliveries := []Delivery{{Pickup: 1, Dropoff: 2}}
	depots := []int{0, 3}

	m, err := pathmatrix.Build(ix, []int{0, 3, 1, 2}, 0)
	require.NoError(t, err)

	return ix, m, deliveries, depots
}

func TestSolveMinimalScenario(t *testing.T) {
	_, m, deliveries, depots := buildS6(t)

	deadline := time.Now().Add(50 * time.Millisecond)
	subpaths, err := Solve(m, deliveries, depots, deadline, 42)
	require.NoError(t, err)
	require.NotEmpty(t, subpaths)

	require.Equal(t, subpaths[0].Start, subpaths[len(subpaths)-1].End)
	require.Contains(t, []int{0, 3}, subpaths[0].Start)

	for i := 0; i+1 < len(subpaths); i++ {
		require.Equal(t, subpaths[i].End, subpaths[i+1].Start)
	}
}

func TestSolveRejectsEmptyInput(t *testing.T) {
	_, m, _, depots := buildS6(t)
	_, err := Solve(m, nil, depots, time.Now().Add(time.Millisecond), 1)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestSolveInfeasibleWhenUnreachable(t *testing.T) {
	inters := []provider.Intersection{
		{ID: 0, Pos: provider.Point{Lat: 0, Lon: 0}},
		{ID: 1, Pos: provider.Point{Lat: 1, Lon: 1}},
		{ID: 2, Pos: provider.Point{Lat: 2, Lon: 2}},
	}
	p := provider.NewStaticProvider(inters, nil, nil, nil, nil, nil, nil)
	ix, err := mapindex.Build(p)
	require.NoError(t, err)

	m, err := pathmatrix.Build(ix, []int{0, 1, 2}, 0)
	require.NoError(t, err)

	deliveries := []Delivery{{Pickup: 1, Dropoff: 2}}
	depots := []int{0}
	_, err = Solve(m, deliveries, depots, time.Now().Add(time.Millisecond), 1)
	require.ErrorIs(t, err, ErrInfeasible)
}
