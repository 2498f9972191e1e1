package occupancy

import "github.com/pkg/errors"

// Leases maps each assigned tenant to the landlord it leases from.
type Leases map[TenantID]LandlordID

// DeriveLeases follows tenant -> property -> landlord for every assigned tenant. It fails
// when an occupied property has no owner in owners.
func DeriveLeases(a *Assignment, owners map[PropertyID]LandlordID) (Leases, error) {
	leases := make(Leases, a.Assigned())
	for _, pid := range a.Order {
		tenants := a.Occupants[pid]
		if len(tenants) == 0 {
			continue
		}
		llid, ok := owners[pid]
		if !ok {
			return nil, errors.Errorf("property %d has occupants but no owner", pid)
		}
		for _, t := range tenants {
			leases[t] = llid
		}
	}
	return leases, nil
}
