package router

import (
	"container/heap"
	"math"

	"github.com/michaelharhay1/EduRoute-Mapper-Application/geo"
	"github.com/michaelharhay1/EduRoute-Mapper-Application/mapindex"
	"github.com/michaelharhay1/EduRoute-Mapper-Application/provider"
)

// nodeItem is one entry in the search frontier: the candidate travel time to
// reach node via seg from prev, plus the heuristic estimate to the
// destination (zero when the caller disabled the heuristic).
type nodeItem struct {
	node      int
	seg       int
	prev      int
	travel    float64
	heuristic float64
	index     int // heap.Interface bookkeeping
}

// nodePQ is a min-heap ordered by travel+heuristic, mirroring the lazy
// decrease-key strategy: stale entries are pushed again rather than updated
// in place, and discarded on pop via the relaxation gate.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	return pq[i].travel+pq[i].heuristic < pq[j].travel+pq[j].heuristic
}
func (pq nodePQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}
func (pq *nodePQ) Push(x interface{}) {
	item := x.(*nodeItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}

// Search runs the best-first driving-time search from src (SPEC_FULL.md
// §4.3). When useHeuristic is true and dst != noDestination, the frontier is
// ordered by travel-time-so-far plus Euclidean-distance-over-max-speed;
// otherwise the heuristic is always zero. The relaxation gate against
// best_time[dst] applies whenever dst != noDestination and is skipped when
// dst == noDestination, giving pathmatrix an unconstrained single-source
// Dijkstra.
func Search(ix *mapindex.Index, src, dst int, turnPenalty float64, useHeuristic bool) (*SearchResult, error) {
	nInter := ix.Provider().IntersectionCount()
	if src < 0 || src >= nInter {
		return nil, ErrInvalidIntersection
	}
	if dst != noDestination && (dst < 0 || dst >= nInter) {
		return nil, ErrInvalidIntersection
	}

	res := &SearchResult{
		Source:       src,
		BestTime:     make([]float64, nInter),
		ReachingSeg:  make([]int, nInter),
		ReachingPrev: make([]int, nInter),
	}
	for i := range res.BestTime {
		res.BestTime[i] = math.Inf(1)
		res.ReachingSeg[i] = -1
		res.ReachingPrev[i] = -1
	}

	var dstPos provider.Point
	maxSpeed := ix.MaxSpeed()
	if useHeuristic && dst != noDestination {
		dstPos = ix.Provider().Intersection(dst).Pos
	}

	pq := make(nodePQ, 0, nInter)
	heap.Push(&pq, &nodeItem{node: src, seg: -1, prev: -1, travel: 0, heuristic: 0})

	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(*nodeItem)

		// Relaxation gate (SPEC_FULL.md §4.3): a popped record is processed
		// only if its travel time is strictly less than both the node's
		// current best_time and (when searching toward a specific dst) the
		// destination's best_time.
		if cur.travel >= res.BestTime[cur.node] {
			continue
		}
		if dst != noDestination && cur.travel >= res.BestTime[dst] {
			continue
		}

		res.BestTime[cur.node] = cur.travel
		res.ReachingSeg[cur.node] = cur.seg
		res.ReachingPrev[cur.node] = cur.prev

		if dst != noDestination && cur.node == dst {
			continue
		}

		incidentSegs, err := ix.ExpandFrom(cur.node)
		if err != nil {
			return nil, err
		}
		for _, segID := range incidentSegs {
			v := ix.OtherEndpoint(segID, cur.node)
			cost := ix.StreetSegmentTravelTime(segID)
			if cur.seg != -1 && ix.Provider().Segment(cur.seg).StreetID != ix.Provider().Segment(segID).StreetID {
				cost += turnPenalty
			}
			candidate := cur.travel + cost
			if candidate < res.BestTime[v] {
				h := 0.0
				if useHeuristic && dst != noDestination {
					h = geo.Distance(ix.Provider().Intersection(v).Pos, dstPos) / maxSpeed
				}
				heap.Push(&pq, &nodeItem{node: v, seg: segID, prev: cur.node, travel: candidate, heuristic: h})
			}
		}
	}

	return res, nil
}
