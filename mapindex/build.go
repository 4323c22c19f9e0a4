package mapindex

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/michaelharhay1/EduRoute-Mapper-Application/core"
	"github.com/michaelharhay1/EduRoute-Mapper-Application/geo"
	"github.com/michaelharhay1/EduRoute-Mapper-Application/provider"
)

// Build runs the single-pass algorithm from SPEC_FULL.md §4.1 over p:
// segment lengths/travel times, the directed traversal graph, per-street
// intersection sets and lengths, the name-prefix index, OSM way lengths, and
// the tag dictionary. On any structural inconsistency in p it returns
// ErrBuildFailed and discards all partial state.
func Build(p provider.MapDatasetProvider) (*Index, error) {
	nInter := p.IntersectionCount()
	nSeg := p.SegmentCount()
	nStreet := p.StreetCount()
	if nInter == 0 {
		return nil, fmt.Errorf("%w: no intersections", ErrBuildFailed)
	}

	ix := &Index{
		provider:            p,
		g:                   core.NewMixedGraph(core.WithMultiEdges(), core.WithLoops()),
		segmentByEdgeID:     make(map[string]int, nSeg),
		incidentSegments:    make([][]int, nInter),
		segLength:           make([]float64, nSeg),
		segTravelTime:       make([]float64, nSeg),
		streetIntersections: make([][]int, nStreet),
		streetLength:        make([]float64, nStreet),
		wayLength:           make(map[int64]float64),
		tags:                make(map[int64]map[string]string),
		namePrefix:          make(map[string][]int),
		maxSpeed:            1, // SPEC_FULL.md §3: "≥ 1 m/s by convention"
	}

	for i := 0; i < nInter; i++ {
		if err := ix.g.AddVertex(strconv.Itoa(i)); err != nil {
			return nil, fmt.Errorf("%w: vertex %d: %v", ErrBuildFailed, i, err)
		}
	}

	streetSeen := make([]map[int]struct{}, nStreet)
	for i := range streetSeen {
		streetSeen[i] = make(map[int]struct{})
	}

	for s := 0; s < nSeg; s++ {
		seg := p.Segment(s)
		if seg.From < 0 || seg.From >= nInter || seg.To < 0 || seg.To >= nInter {
			return nil, fmt.Errorf("%w: segment %d has out-of-range endpoint", ErrBuildFailed, s)
		}
		if seg.StreetID < 0 || seg.StreetID >= nStreet {
			return nil, fmt.Errorf("%w: segment %d has out-of-range street id", ErrBuildFailed, s)
		}

		length := segmentPathLength(p, seg)
		ix.segLength[s] = length
		if seg.SpeedLimitMPS > 0 {
			ix.segTravelTime[s] = length / seg.SpeedLimitMPS
			if seg.SpeedLimitMPS > ix.maxSpeed {
				ix.maxSpeed = seg.SpeedLimitMPS
			}
		}

		ix.incidentSegments[seg.From] = append(ix.incidentSegments[seg.From], seg.ID)
		if seg.To != seg.From {
			ix.incidentSegments[seg.To] = append(ix.incidentSegments[seg.To], seg.ID)
		}

		var (
			eid string
			err error
		)
		if seg.OneWay {
			eid, err = ix.g.AddEdge(strconv.Itoa(seg.From), strconv.Itoa(seg.To), 0, core.WithEdgeDirected(true))
		} else {
			eid, err = ix.g.AddEdge(strconv.Itoa(seg.From), strconv.Itoa(seg.To), 0)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: segment %d: %v", ErrBuildFailed, s, err)
		}
		ix.segmentByEdgeID[eid] = seg.ID

		ix.streetLength[seg.StreetID] += length
		if _, ok := streetSeen[seg.StreetID][seg.From]; !ok {
			streetSeen[seg.StreetID][seg.From] = struct{}{}
			ix.streetIntersections[seg.StreetID] = append(ix.streetIntersections[seg.StreetID], seg.From)
		}
		if _, ok := streetSeen[seg.StreetID][seg.To]; !ok {
			streetSeen[seg.StreetID][seg.To] = struct{}{}
			ix.streetIntersections[seg.StreetID] = append(ix.streetIntersections[seg.StreetID], seg.To)
		}
	}

	for st := 0; st < nStreet; st++ {
		key := normalizeStreetName(p.Street(st).Name)
		for i := 1; i <= len(key); i++ {
			prefix := key[:i]
			ix.namePrefix[prefix] = append(ix.namePrefix[prefix], st)
		}
	}

	osmNodeByID := make(map[int64]provider.OSMEntity, p.OSMNodeCount())
	for i := 0; i < p.OSMNodeCount(); i++ {
		n := p.OSMNode(i)
		osmNodeByID[n.ID] = n
		ix.tags[n.ID] = n.Tags
	}
	for i := 0; i < p.OSMWayCount(); i++ {
		w := p.OSMWay(i)
		ix.tags[w.ID] = w.Tags
		ix.wayLength[w.ID] = wayPathLength(w, osmNodeByID)
	}

	return ix, nil
}

// segmentPathLength sums geo.Distance hops from -> curve... -> to.
func segmentPathLength(p provider.MapDatasetProvider, seg provider.Segment) float64 {
	points := make([]provider.Point, 0, len(seg.Curve)+2)
	points = append(points, p.Intersection(seg.From).Pos)
	points = append(points, seg.Curve...)
	points = append(points, p.Intersection(seg.To).Pos)

	var total float64
	for i := 0; i+1 < len(points); i++ {
		total += geo.Distance(points[i], points[i+1])
	}
	return total
}

func wayPathLength(w provider.OSMEntity, osmNodeByID map[int64]provider.OSMEntity) float64 {
	var total float64
	for i := 0; i+1 < len(w.MemberNode); i++ {
		a, okA := osmNodeByID[w.MemberNode[i]]
		b, okB := osmNodeByID[w.MemberNode[i+1]]
		if !okA || !okB {
			continue
		}
		total += geo.Distance(a.Position, b.Position)
	}
	return total
}

// normalizeStreetName lower-cases and strips whitespace, per SPEC_FULL.md
// §4.1's prefix index and the case-/space-insensitive query contract.
func normalizeStreetName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if r == ' ' || r == '\t' || r == '\n' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
