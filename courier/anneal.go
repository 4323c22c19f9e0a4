package courier

import (
	"math"
	"math/rand"
	"time"

	"github.com/michaelharhay1/EduRoute-Mapper-Application/pathmatrix"
)

const (
	initialTemperature  = 100.0
	coolingFast         = 0.9
	coolingSlow         = 0.95
	nonImprovingLimit   = 100
	swapThreshold       = 50.0
	reverseThreshold    = 20.0
	swapRollThreshold   = 5.0
	reverseRollThresh   = 25.0
	shiftNeighborRadius = 10
)

// bestDepotAndCost picks the depot minimizing (cost[depot][first] +
// cost[last][depot]) / 2 and returns it along with the full tour cost:
// cost[depot][first] + Σ cost[x_k][x_{k+1}] + cost[last][depot]
// (SPEC_FULL.md §4.5).
func bestDepotAndCost(m *pathmatrix.Matrix, depots []int, actions []Action) (int, float64) {
	first := actions[0].Intersection
	last := actions[len(actions)-1].Intersection

	bestDepot := depots[0]
	bestAvg := math.Inf(1)
	for _, depot := range depots {
		avg := (m.CostByID(depot, first) + m.CostByID(last, depot)) / 2
		if avg < bestAvg {
			bestAvg = avg
			bestDepot = depot
		}
	}

	total := m.CostByID(bestDepot, first)
	for i := 0; i+1 < len(actions); i++ {
		total += m.CostByID(actions[i].Intersection, actions[i+1].Intersection)
	}
	total += m.CostByID(last, bestDepot)

	return bestDepot, total
}

// perturb returns a neighbor of actions chosen by SPEC_FULL.md §4.5's
// choose-perturbation rule. The input slice is not mutated.
func perturb(actions []Action, temperature float64, rng *rand.Rand) []Action {
	n := len(actions)
	next := make([]Action, n)
	copy(next, actions)
	if n < 2 {
		return next
	}

	r := rng.Float64() * 100
	switch {
	case r < swapRollThreshold && temperature > swapThreshold:
		swapOp(next, temperature, rng)
	case r < reverseRollThresh && temperature > reverseThreshold:
		reverseOp(next, rng)
	default:
		shiftOp(next, rng)
	}
	return next
}

// shiftOp removes the element at a random position i and reinserts it at a
// random position within [i-10, i+10] (clipped), mutating a in place.
func shiftOp(a []Action, rng *rand.Rand) {
	n := len(a)
	i := rng.Intn(n)
	elem := a[i]

	withoutElem := make([]Action, 0, n-1)
	withoutElem = append(withoutElem, a[:i]...)
	withoutElem = append(withoutElem, a[i+1:]...)

	lo := i - shiftNeighborRadius
	if lo < 0 {
		lo = 0
	}
	hi := i + shiftNeighborRadius
	if hi > n-1 {
		hi = n - 1
	}
	j := lo + rng.Intn(hi-lo+1)
	if j > len(withoutElem) {
		j = len(withoutElem)
	}

	result := make([]Action, 0, n)
	result = append(result, withoutElem[:j]...)
	result = append(result, elem)
	result = append(result, withoutElem[j:]...)
	copy(a, result)
}

// swapOp exchanges the element at a random position i with one within
// ±max(1, n·T/10000) of it (SPEC_FULL.md §4.5): the swap neighborhood
// shrinks as temperature cools.
func swapOp(a []Action, temperature float64, rng *rand.Rand) {
	n := len(a)
	i := rng.Intn(n)
	radius := maxSwapRadius(n, temperature)
	j := i
	for j == i {
		delta := rng.Intn(2*radius+1) - radius
		j = ((i+delta)%n + n) % n
	}
	a[i], a[j] = a[j], a[i]
}

func maxSwapRadius(n int, temperature float64) int {
	r := int(float64(n) * temperature / 10000)
	if r < 1 {
		return 1
	}
	return r
}

func reverseOp(a []Action, rng *rand.Rand) {
	n := len(a)
	s := rng.Intn(n)
	// Window length is the array size clipped to the tail from s, per
	// SPEC_FULL.md §4.5 (the source's temperature-scaled length is dropped).
	for i, j := s, n-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}
}

// annealBudget is the fraction of the deadline the SA loop is allowed to
// run for, per SPEC_FULL.md §4.5 ("until wall clock exceeds 0.9 ×
// deadline") — the remaining 10% is headroom for path materialization and
// the caller's own post-processing.
const annealBudget = 9.0 / 10.0

// anneal refines seed in place (on a clone) via simulated annealing until
// the wall clock passes 0.9 × deadline, returning the best Solution found
// (SPEC_FULL.md §4.5).
func anneal(m *pathmatrix.Matrix, deliveries []Delivery, depots []int, seed *Solution, deadline time.Time, rng *rand.Rand) *Solution {
	current := seed.Clone()
	best := seed.Clone()
	temperature := initialTemperature
	nonImproving := 0

	cutoff := time.Now().Add(time.Duration(annealBudget * float64(time.Until(deadline))))

	for time.Now().Before(cutoff) {
		neighborActions := perturb(current.Actions, temperature, rng)
		if !Legal(deliveries, neighborActions) {
			continue
		}

		depot, cost := bestDepotAndCost(m, depots, neighborActions)
		delta := cost - current.Cost

		accept := delta < 0
		if !accept {
			accept = rng.Float64() < math.Exp(-delta/temperature)
		}

		improved := false
		if accept {
			current = &Solution{Depot: depot, Actions: neighborActions, Cost: cost}
			if cost < best.Cost {
				best = current.Clone()
				improved = true
			}
		}

		if improved {
			nonImproving = 0
		} else {
			nonImproving++
		}

		if nonImproving >= nonImprovingLimit {
			temperature *= coolingFast
			current = best.Clone()
			nonImproving = 0
		} else {
			temperature *= coolingSlow
		}
	}

	return best
}
