// Package cascade deletes a tenant, property or landlord together with every
// relationship row that references it, in one transaction.
package cascade

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/beesaferoot/rentals/store"
)

// Kind is the type of parent record being deleted.
type Kind int

const (
	Tenant Kind = iota + 1
	Property
	Landlord
)

func (k Kind) String() string {
	switch k {
	case Tenant:
		return "tenant"
	case Property:
		return "property"
	case Landlord:
		return "landlord"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps a CLI noun to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "tenant", "tenants":
		return Tenant, nil
	case "property", "properties":
		return Property, nil
	case "landlord", "landlords":
		return Landlord, nil
	}
	return 0, errors.Errorf("unknown record kind %q", s)
}

// plans lists, per kind, the deletes to run in order. Deepest relations go first and
// the last entry always removes the parent row itself.
var plans = map[Kind][]store.Selector{
	Tenant: {
		{Relation: store.Occupancy, By: store.Tenants},
		{Relation: store.Leases, By: store.Tenants},
		{Relation: store.Tenants, By: store.Tenants},
	},
	Property: {
		{Relation: store.Occupancy, By: store.Properties},
		{Relation: store.Leases, By: store.Properties},
		{Relation: store.Properties, By: store.Properties},
	},
	Landlord: {
		{Relation: store.Occupancy, By: store.Landlords},
		{Relation: store.Leases, By: store.Landlords},
		{Relation: store.Properties, By: store.Landlords},
		{Relation: store.Landlords, By: store.Landlords},
	},
}

// Plan returns a copy of the delete order used for kind.
func Plan(kind Kind) []store.Selector {
	p := plans[kind]
	out := make([]store.Selector, len(p))
	copy(out, p)
	return out
}
