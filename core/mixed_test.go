package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// These cases exercise the mixed-mode, per-edge-directed behavior mapindex
// relies on to model one-way vs. two-way street segments: a directed edge's
// reverse endpoint is excluded from Neighbors, a non-directed edge mirrors.
func TestMixedGraphOneWayVsTwoWay(t *testing.T) {
	g := NewMixedGraph(WithMultiEdges(), WithLoops())

	oneWay, err := g.AddEdge("A", "B", 0, WithEdgeDirected(true))
	require.NoError(t, err)

	twoWay, err := g.AddEdge("B", "C", 0)
	require.NoError(t, err)

	fromA, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, fromA, 1)
	require.Equal(t, oneWay, fromA[0].ID)

	fromB, err := g.Neighbors("B")
	require.NoError(t, err)
	ids := []string{fromB[0].ID}
	if len(fromB) > 1 {
		ids = append(ids, fromB[1].ID)
	}
	require.Contains(t, ids, twoWay)
	require.NotContains(t, ids, oneWay) // B is the "to" end of the one-way edge

	fromC, err := g.Neighbors("C")
	require.NoError(t, err)
	require.Len(t, fromC, 1)
	require.Equal(t, twoWay, fromC[0].ID)
}

func TestAddEdgeRejectsPerEdgeOverrideWithoutMixedMode(t *testing.T) {
	g := NewGraph()
	_, err := g.AddEdge("A", "B", 0, WithEdgeDirected(true))
	require.ErrorIs(t, err, ErrMixedEdgesNotAllowed)
}

func TestAddVertexIsIdempotent(t *testing.T) {
	g := NewMixedGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"))
}
