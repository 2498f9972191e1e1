package occupancy

import (
	"fmt"
	"sort"
)

// InvariantViolation means an assignment broke capacity, uniqueness or conservation.
// It indicates a defect in the engine, not a runtime condition.
type InvariantViolation struct {
	Rule   string
	Detail string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("occupancy invariant %q violated: %s", e.Rule, e.Detail)
}

// Check verifies a against the properties and tenants it was computed from and returns
// the first violation found.
func Check(properties []Property, tenants []TenantID, a *Assignment) error {
	if vs := Violations(properties, tenants, a); len(vs) > 0 {
		return vs[0]
	}
	return nil
}

// Violations lists every invariant a breaks, in property order.
func Violations(properties []Property, tenants []TenantID, a *Assignment) []*InvariantViolation {
	var out []*InvariantViolation

	known := make(map[TenantID]bool, len(tenants))
	for _, t := range tenants {
		known[t] = true
	}

	listed := make(map[PropertyID]bool, len(properties))
	seen := make(map[TenantID]PropertyID, len(tenants))
	for _, p := range properties {
		listed[p.ID] = true
		occupants := a.Occupants[p.ID]
		if len(occupants) > max(p.Capacity, 0) {
			out = append(out, &InvariantViolation{
				Rule:   "capacity",
				Detail: fmt.Sprintf("property %d holds %d tenants, capacity %d", p.ID, len(occupants), p.Capacity),
			})
		}
		for _, t := range occupants {
			if !known[t] {
				out = append(out, &InvariantViolation{Rule: "membership", Detail: fmt.Sprintf("tenant %s is not in the input", t)})
				continue
			}
			if prev, dup := seen[t]; dup {
				out = append(out, &InvariantViolation{
					Rule:   "uniqueness",
					Detail: fmt.Sprintf("tenant %s assigned to properties %d and %d", t, prev, p.ID),
				})
				continue
			}
			seen[t] = p.ID
		}
	}

	var unknown []PropertyID
	for pid, occupants := range a.Occupants {
		if !listed[pid] && len(occupants) > 0 {
			unknown = append(unknown, pid)
		}
	}
	sort.Ints(unknown)
	for _, pid := range unknown {
		out = append(out, &InvariantViolation{
			Rule:   "membership",
			Detail: fmt.Sprintf("property %d holds %d tenants but is not in the input", pid, len(a.Occupants[pid])),
		})
	}

	for _, t := range a.Unassigned {
		if pid, ok := seen[t]; ok {
			out = append(out, &InvariantViolation{
				Rule:   "conservation",
				Detail: fmt.Sprintf("tenant %s is both unassigned and in property %d", t, pid),
			})
		}
	}
	if got := len(seen) + len(a.Unassigned); got != len(tenants) {
		out = append(out, &InvariantViolation{
			Rule:   "conservation",
			Detail: fmt.Sprintf("%d assigned + %d unassigned != %d tenants", len(seen), len(a.Unassigned), len(tenants)),
		})
	}
	return out
}
