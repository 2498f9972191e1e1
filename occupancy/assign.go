// Package occupancy fills the lives_in relation with a random, capacity-respecting
// assignment of tenants to properties and derives the matching leases_from rows.
package occupancy

type (
	PropertyID = int
	TenantID   = string
	LandlordID = int
)

// Property is the engine's view of a property row.
type Property struct {
	ID       PropertyID
	Capacity int
}

// Source is the randomness the engine consumes. *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Assignment maps each property to the tenants placed in it.
type Assignment struct {
	// Order is the property walk order, equal to the input order.
	Order      []PropertyID
	Occupants  map[PropertyID][]TenantID
	Unassigned []TenantID
}

// Assigned returns the number of tenants placed in any property.
func (a *Assignment) Assigned() int {
	n := 0
	for _, tenants := range a.Occupants {
		n += len(tenants)
	}
	return n
}

// PropertyOf returns the tenant -> property view of the assignment.
func (a *Assignment) PropertyOf() map[TenantID]PropertyID {
	out := make(map[TenantID]PropertyID, a.Assigned())
	for pid, tenants := range a.Occupants {
		for _, t := range tenants {
			out[t] = pid
		}
	}
	return out
}

// AssignOccupancy draws a target in [0, capacity] for every property, shuffles the
// tenants and walks the properties in input order handing out tenants until each target
// is met or the tenants run out. The same rng state and inputs give the same result.
func AssignOccupancy(properties []Property, tenants []TenantID, rng Source) *Assignment {
	a := &Assignment{
		Order:     make([]PropertyID, 0, len(properties)),
		Occupants: make(map[PropertyID][]TenantID, len(properties)),
	}

	targets := make([]int, len(properties))
	for i, p := range properties {
		capacity := max(p.Capacity, 0)
		targets[i] = rng.IntN(capacity + 1)
		a.Order = append(a.Order, p.ID)
		a.Occupants[p.ID] = []TenantID{}
	}

	shuffled := make([]TenantID, len(tenants))
	copy(shuffled, tenants)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	used := make(map[TenantID]bool, len(shuffled))
	next := 0
	for i, p := range properties {
		slots := targets[i]
		for slots > 0 && next < len(shuffled) {
			t := shuffled[next]
			next++
			if used[t] {
				continue
			}
			a.Occupants[p.ID] = append(a.Occupants[p.ID], t)
			used[t] = true
			slots--
		}
	}

	for _, t := range shuffled {
		if !used[t] {
			used[t] = true
			a.Unassigned = append(a.Unassigned, t)
		}
	}
	return a
}
