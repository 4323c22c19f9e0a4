package courier

import (
	"math/rand"
	"sort"

	"github.com/michaelharhay1/EduRoute-Mapper-Application/pathmatrix"
)

// secondBestChance is the ~3% probability of picking the second-best
// candidate instead of the best, per SPEC_FULL.md §4.5's greedy steps 1 & 3.
const secondBestChance = 0.03

type candidate struct {
	target int // index into the caller's parallel slice of choices (depot/pickup pairs, or next actions)
	cost   float64
}

// pickBestOrSecond sorts candidates ascending by cost and returns the best
// one, or the second-best with secondBestChance probability (falling back to
// best if there is no second).
func pickBestOrSecond(cands []candidate, rng *rand.Rand) candidate {
	sort.Slice(cands, func(i, j int) bool { return cands[i].cost < cands[j].cost })
	if len(cands) > 1 && rng.Float64() < secondBestChance {
		return cands[1]
	}
	return cands[0]
}

// constructGreedy runs one randomized greedy construction (SPEC_FULL.md
// §4.5's "Greedy construction (one start)"). Returns (nil, false) if depots
// or deliveries is empty, or if the built sequence fails Legal or
// CompleteVisits. Reachability is not checked here.
func constructGreedy(m *pathmatrix.Matrix, deliveries []Delivery, depots []int, rng *rand.Rand) (*Solution, bool) {
	if len(depots) == 0 || len(deliveries) == 0 {
		return nil, false
	}

	var depotPickupCands []candidate
	type depotPickupPair struct{ depot, pickupDelivery int }
	var pairs []depotPickupPair
	for _, depot := range depots {
		for di, d := range deliveries {
			cost := m.CostByID(depot, d.Pickup)
			depotPickupCands = append(depotPickupCands, candidate{target: len(pairs), cost: cost})
			pairs = append(pairs, depotPickupPair{depot: depot, pickupDelivery: di})
		}
	}
	if len(depotPickupCands) == 0 {
		return nil, false
	}
	chosen := pickBestOrSecond(depotPickupCands, rng)
	startDepot := pairs[chosen.target].depot

	pickupsDone := make([]bool, len(deliveries))
	dropoffsDone := make([]bool, len(deliveries))
	remaining := len(deliveries)

	current := startDepot
	var actions []Action
	var totalCost float64

	for remaining > 0 {
		var cands []candidate
		var targets []Action
		for di, d := range deliveries {
			if !pickupsDone[di] {
				cands = append(cands, candidate{target: len(targets), cost: m.CostByID(current, d.Pickup)})
				targets = append(targets, Action{DeliveryIdx: di, Intersection: d.Pickup, Kind: ActionPickup})
			} else if !dropoffsDone[di] {
				cands = append(cands, candidate{target: len(targets), cost: m.CostByID(current, d.Dropoff)})
				targets = append(targets, Action{DeliveryIdx: di, Intersection: d.Dropoff, Kind: ActionDropoff})
			}
		}
		if len(cands) == 0 {
			break
		}
		pick := pickBestOrSecond(cands, rng)
		action := targets[pick.target]

		actions = append(actions, action)
		totalCost += pick.cost
		current = action.Intersection

		if action.Kind == ActionPickup {
			pickupsDone[action.DeliveryIdx] = true
		} else {
			dropoffsDone[action.DeliveryIdx] = true
			remaining--
		}
	}

	totalCost += m.CostByID(current, startDepot)

	if !Legal(deliveries, actions) || !CompleteVisits(deliveries, actions) {
		return nil, false
	}

	return &Solution{Depot: startDepot, Actions: actions, Cost: totalCost}, true
}
