package occupancy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveLeases(t *testing.T) {
	properties := []Property{{ID: 1, Capacity: 3}, {ID: 2, Capacity: 2}, {ID: 3, Capacity: 1}}
	tenants := []TenantID{"a", "b", "c", "d", "e", "f", "g"}
	owners := map[PropertyID]LandlordID{1: 100, 2: 200, 3: 100}

	for seed := int64(1); seed <= 50; seed++ {
		a := AssignOccupancy(properties, tenants, NewSource(seed))

		leases, err := DeriveLeases(a, owners)
		require.NoError(t, err)

		assert.Len(t, leases, a.Assigned(), "one lease per assigned tenant")
		for tenant, pid := range a.PropertyOf() {
			assert.Equal(t, owners[pid], leases[tenant], "seed %d tenant %s", seed, tenant)
		}
		for _, tenant := range a.Unassigned {
			assert.NotContains(t, leases, tenant)
		}
	}
}

func TestDeriveLeases_MissingOwner(t *testing.T) {
	a := &Assignment{
		Order:     []PropertyID{1, 2},
		Occupants: map[PropertyID][]TenantID{1: {"a"}, 2: {"b"}},
	}

	_, err := DeriveLeases(a, map[PropertyID]LandlordID{1: 5})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "property 2")
}

func TestDeriveLeases_EmptyPropertyNeedsNoOwner(t *testing.T) {
	a := &Assignment{
		Order:     []PropertyID{1, 2},
		Occupants: map[PropertyID][]TenantID{1: {"a"}, 2: {}},
	}

	leases, err := DeriveLeases(a, map[PropertyID]LandlordID{1: 5})

	require.NoError(t, err)
	assert.Equal(t, Leases{"a": 5}, leases)
}
