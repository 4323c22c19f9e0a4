package mapindex

import (
	"errors"

	"github.com/michaelharhay1/EduRoute-Mapper-Application/core"
	"github.com/michaelharhay1/EduRoute-Mapper-Application/provider"
)

// ErrBuildFailed indicates the dataset provider produced an inconsistent map
// (no intersections, an out-of-range endpoint, a segment referencing an
// unknown street, etc.).
// Build discards all partial state before returning it (SPEC_FULL.md §4.1
// "idempotent on failure").
var ErrBuildFailed = errors.New("mapindex: build failed")

// Index is the immutable set of derived lookup tables for a loaded map.
type Index struct {
	provider provider.MapDatasetProvider

	// g is the traversal substrate: one vertex per intersection (string of
	// its ID), one edge per segment. One-way segments are added directed;
	// two-way segments are added undirected, which makes core.Graph mirror
	// them automatically. router and pathmatrix call ExpandFrom to get the
	// legally-traversable incident segments of a node, reusing core's
	// existing directed-edge filtering instead of reimplementing it.
	g *core.Graph

	segmentByEdgeID map[string]int // core.Edge.ID -> segment ID

	incidentSegments [][]int // intersection ID -> all incident segment IDs (both one-way directions)

	segLength     []float64
	segTravelTime []float64

	streetIntersections [][]int
	streetLength        []float64

	wayLength map[int64]float64
	tags      map[int64]map[string]string

	namePrefix map[string][]int // lowercased, despaced prefix -> street IDs

	maxSpeed float64
}

// Provider returns the dataset this Index was built from.
func (ix *Index) Provider() provider.MapDatasetProvider { return ix.provider }

// MaxSpeed returns the fastest speed limit over all segments, in m/s.
func (ix *Index) MaxSpeed() float64 { return ix.maxSpeed }
