package courier

// Legal reports whether actions visits, for every delivery, its pickup
// before its dropoff (SPEC_FULL.md §4.5's precedence invariant).
//
// SPEC_FULL.md describes the check as a reverse walk collecting seen
// drop-offs; a forward walk tracking which pickups have occurred is the same
// check read the other direction and is what this implements.
func Legal(deliveries []Delivery, actions []Action) bool {
	pickedUp := make(map[int]bool, len(deliveries))
	for _, a := range actions {
		switch a.Kind {
		case ActionPickup:
			pickedUp[a.DeliveryIdx] = true
		case ActionDropoff:
			if !pickedUp[a.DeliveryIdx] {
				return false
			}
		}
	}
	return true
}

// CompleteVisits reports whether actions contains at least one pickup and at
// least one dropoff action for every delivery in deliveries (SPEC_FULL.md §8 CP
// legality clause (e)).
func CompleteVisits(deliveries []Delivery, actions []Action) bool {
	pickSeen := make([]bool, len(deliveries))
	dropSeen := make([]bool, len(deliveries))
	for _, a := range actions {
		switch a.Kind {
		case ActionPickup:
			pickSeen[a.DeliveryIdx] = true
		case ActionDropoff:
			dropSeen[a.DeliveryIdx] = true
		}
	}
	for i := range deliveries {
		if !pickSeen[i] || !dropSeen[i] {
			return false
		}
	}
	return true
}
