package courier

import "errors"

// ErrInfeasible indicates the courier problem has no legal solution: either
// the pathmatrix shows a required pair unreachable, or every greedy start
// produced an illegal sequence (SPEC_FULL.md §4.5 "Failure semantics").
var ErrInfeasible = errors.New("courier: infeasible")

// Delivery is one pickup/dropoff pair, indices into the interesting
// intersection set the caller built the pathmatrix.Matrix from.
type Delivery struct {
	Pickup  int
	Dropoff int
}

// ActionKind distinguishes the two halves of a Delivery within a Solution's
// visit order.
type ActionKind int

const (
	ActionPickup ActionKind = iota
	ActionDropoff
)

// Action is one visit in a Solution's ordered sequence: performing the
// pickup or dropoff of Delivery deliveries[DeliveryIdx], at Intersection.
type Action struct {
	DeliveryIdx  int
	Intersection int
	Kind         ActionKind
}

// Solution is one candidate courier tour: a depot and the ordered pickup/
// dropoff visits following it, plus its total travel-time cost (including
// the return to Depot).
type Solution struct {
	Depot   int
	Actions []Action
	Cost    float64
}

// Clone returns a deep copy, safe for a perturbation to mutate independently
// of the original.
func (s *Solution) Clone() *Solution {
	actions := make([]Action, len(s.Actions))
	copy(actions, s.Actions)
	return &Solution{Depot: s.Depot, Actions: actions, Cost: s.Cost}
}
