package pathmatrix

import (
	"errors"

	"github.com/michaelharhay1/EduRoute-Mapper-Application/mapindex"
	"github.com/michaelharhay1/EduRoute-Mapper-Application/matrix"
	"github.com/michaelharhay1/EduRoute-Mapper-Application/router"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidIntersection indicates an entry of the interesting-intersection
// set was outside [0, IntersectionCount).
var ErrInvalidIntersection = errors.New("pathmatrix: invalid intersection id")

// Matrix is the all-pairs path/cost result over a dedup'd, first-seen-order
// set of interesting intersections.
type Matrix struct {
	Intersections []int // I, dedup(depots ∪ pickups ∪ dropoffs), first-seen order
	posOf         map[int]int

	// Cost[i][j] and Path[i][j] index into Intersections, not raw IDs.
	Cost *matrix.Dense
	Path [][][]int
}

// PosOf returns Intersections' index for intersection id, or -1 if id is not
// in the interesting set.
func (m *Matrix) PosOf(id int) int {
	if p, ok := m.posOf[id]; ok {
		return p
	}
	return -1
}

// CostByID returns Cost[u][v] by raw intersection ID.
func (m *Matrix) CostByID(u, v int) float64 {
	if m.Cost == nil {
		return 0
	}
	v2, err := m.Cost.At(m.posOf[u], m.posOf[v])
	if err != nil {
		return 0
	}
	return v2
}

// PathByID returns Path[u][v] by raw intersection ID.
func (m *Matrix) PathByID(u, v int) []int { return m.Path[m.posOf[u]][m.posOf[v]] }

// Build computes the all-pairs path/cost matrix over interesting, deduped
// preserving first-seen order. turnPenalty is the same constant SPR uses.
func Build(ix *mapindex.Index, interesting []int, turnPenalty float64) (*Matrix, error) {
	nInter := ix.Provider().IntersectionCount()

	var ordered []int
	seen := make(map[int]struct{}, len(interesting))
	for _, id := range interesting {
		if id < 0 || id >= nInter {
			return nil, ErrInvalidIntersection
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ordered = append(ordered, id)
	}

	posOf := make(map[int]int, len(ordered))
	for i, id := range ordered {
		posOf[id] = i
	}

	results := make([]*router.SearchResult, len(ordered))

	var g errgroup.Group
	for i, src := range ordered {
		i, src := i, src
		g.Go(func() error {
			res, err := router.Search(ix, src, -1, turnPenalty, false)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var cost *matrix.Dense
	if len(ordered) > 0 {
		var err error
		cost, err = matrix.NewDense(len(ordered), len(ordered))
		if err != nil {
			return nil, err
		}
	}

	m := &Matrix{
		Intersections: ordered,
		posOf:         posOf,
		Cost:          cost,
		Path:          make([][][]int, len(ordered)),
	}
	for i := range ordered {
		m.Path[i] = make([][]int, len(ordered))
		for j, dst := range ordered {
			if i == j {
				continue // self-pairs: empty path, cost 0, per SPEC_FULL.md §4.4
			}
			path := router.TracePath(results[i], dst)
			m.Path[i][j] = path
			if err := m.Cost.Set(i, j, router.PathTravelTime(ix, turnPenalty, path)); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Unreachable reports whether any of the given (u,v) pairs (raw IDs) has no
// path, i.e. the courier problem is infeasible for this interesting set
// (SPEC_FULL.md §4.4).
func (m *Matrix) Unreachable(pairs [][2]int) bool {
	for _, pair := range pairs {
		u, v := pair[0], pair[1]
		if u == v {
			continue
		}
		if len(m.PathByID(u, v)) == 0 {
			return true
		}
	}
	return false
}
