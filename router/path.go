package router

import "github.com/michaelharhay1/EduRoute-Mapper-Application/mapindex"

// FindPath returns the minimum driving-time sequence of segments from src to
// dst under turnPenalty, or nil if dst is unreachable (SPEC_FULL.md §4.3).
func FindPath(ix *mapindex.Index, src, dst int, turnPenalty float64) ([]int, error) {
	res, err := Search(ix, src, dst, turnPenalty, true)
	if err != nil {
		return nil, err
	}
	return TracePath(res, dst), nil
}

// TracePath walks ReachingSeg/ReachingPrev backward from dst to res.Source
// and returns the segment sequence in source-to-dst order. Returns nil if
// dst was never reached.
func TracePath(res *SearchResult, dst int) []int {
	if dst == res.Source {
		return nil
	}
	var reversed []int
	node := dst
	for node != res.Source {
		seg := res.ReachingSeg[node]
		if seg == -1 {
			return nil // unreachable
		}
		reversed = append(reversed, seg)
		node = res.ReachingPrev[node]
	}
	path := make([]int, len(reversed))
	for i, seg := range reversed {
		path[len(reversed)-1-i] = seg
	}
	return path
}

// PathTravelTime sums each segment's travel time plus turnPenalty whenever
// consecutive segments belong to different streets. An empty path has time
// 0 (SPEC_FULL.md §4.3).
func PathTravelTime(ix *mapindex.Index, turnPenalty float64, path []int) float64 {
	var total float64
	prevStreet := -1
	for _, seg := range path {
		total += ix.StreetSegmentTravelTime(seg)
		street := ix.Provider().Segment(seg).StreetID
		if prevStreet != -1 && prevStreet != street {
			total += turnPenalty
		}
		prevStreet = street
	}
	return total
}
