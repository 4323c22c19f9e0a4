package courier

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/michaelharhay1/EduRoute-Mapper-Application/pathmatrix"
)

// ErrInvalidInput indicates deliveries or depots was empty. The original map
// library never validated this; SPEC_FULL.md §4.7 adds it as a courier-side
// precondition so callers get a clear error instead of a meaningless tour.
var ErrInvalidInput = errors.New("courier: deliveries and depots must be non-empty")

const (
	greedyStarts = 2000
	seedCount    = 4
)

// Solve runs the full courier planner: feasibility check, 2,000 randomized
// greedy multi-start constructions, simulated annealing refinement of the
// best 4 (in parallel), and materialization of the winner into sub-paths
// (SPEC_FULL.md §4.5). seed drives every RNG stream for reproducibility.
func Solve(m *pathmatrix.Matrix, deliveries []Delivery, depots []int, deadline time.Time, seed int64) ([]SubPath, error) {
	if len(deliveries) == 0 || len(depots) == 0 {
		return nil, ErrInvalidInput
	}
	if !feasible(m) {
		return nil, ErrInfeasible
	}

	base := rngFromSeed(seed)

	solutions := make([]*Solution, 0, greedyStarts)
	for i := 0; i < greedyStarts; i++ {
		rng := deriveRNG(base, uint64(i))
		if sol, ok := constructGreedy(m, deliveries, depots, rng); ok {
			solutions = append(solutions, sol)
		}
	}
	if len(solutions) == 0 {
		return nil, ErrInfeasible
	}

	sort.Slice(solutions, func(i, j int) bool { return solutions[i].Cost < solutions[j].Cost })
	n := seedCount
	if n > len(solutions) {
		n = len(solutions)
	}
	seeds := solutions[:n]

	refined := make([]*Solution, n)
	var wg sync.WaitGroup
	for i, s := range seeds {
		i, s := i, s
		wg.Add(1)
		go func() {
			defer wg.Done()
			rng := deriveRNG(base, uint64(greedyStarts+i))
			refined[i] = anneal(m, deliveries, depots, s, deadline, rng)
		}()
	}
	wg.Wait()

	best := refined[0]
	for _, s := range refined[1:] {
		if s.Cost < best.Cost {
			best = s
		}
	}

	return Materialize(m, best), nil
}

// feasible reports whether every ordered pair of distinct interesting
// intersections has a non-empty path, per SPEC_FULL.md §4.5's failure
// semantics.
func feasible(m *pathmatrix.Matrix) bool {
	for i, u := range m.Intersections {
		for j, v := range m.Intersections {
			if u == v {
				continue
			}
			if len(m.Path[i][j]) == 0 {
				return false
			}
		}
	}
	return true
}
