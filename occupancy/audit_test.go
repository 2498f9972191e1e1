package occupancy

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beesaferoot/rentals/internal/testdb"
	"github.com/beesaferoot/rentals/models"
)

func TestFromRows(t *testing.T) {
	properties := []Property{{ID: 1, Capacity: 2}, {ID: 2, Capacity: 1}}
	rows := []models.LivesIn{{TenantSSN: "a", PropertyID: 1}, {TenantSSN: "b", PropertyID: 1}}

	a := FromRows(properties, []TenantID{"a", "b", "c"}, rows)

	assert.Equal(t, []PropertyID{1, 2}, a.Order)
	assert.Equal(t, []TenantID{"a", "b"}, a.Occupants[1])
	assert.Empty(t, a.Occupants[2])
	assert.Equal(t, []TenantID{"c"}, a.Unassigned)
	assert.NoError(t, Check(properties, []TenantID{"a", "b", "c"}, a))
}

func TestAudit_Consistent(t *testing.T) {
	f := newSeedFixture(t)
	testdb.Occupy(t, f.db, f.tenants[0].SSN, f.properties[0], true)
	testdb.Occupy(t, f.db, f.tenants[1].SSN, f.properties[1], true)

	problems, err := Audit(context.Background(), f.store)

	require.NoError(t, err)
	assert.Empty(t, problems)
}

func TestAudit_ReportsProblems(t *testing.T) {
	f := newSeedFixture(t)
	small := f.properties[0] // two beds
	testdb.Occupy(t, f.db, f.tenants[0].SSN, small, true)
	testdb.Occupy(t, f.db, f.tenants[1].SSN, small, false)
	testdb.Occupy(t, f.db, f.tenants[2].SSN, small, true)

	// lease for a tenant who lives nowhere
	stray := models.LeasesFrom{TenantSSN: f.tenants[3].SSN, LandlordID: f.properties[1].LandlordID, PropertyID: f.properties[1].PID}
	require.NoError(t, f.db.Create(&stray).Error)

	problems, err := Audit(context.Background(), f.store)
	require.NoError(t, err)

	require.Len(t, problems, 3)
	assert.Contains(t, problems[0], `occupancy invariant "capacity" violated`)
	assert.Contains(t, problems[1], "tenant "+f.tenants[1].SSN+" lives in property")
	assert.Contains(t, problems[2], "tenant "+f.tenants[3].SSN+" leases property")
}

func TestAudit_WrongLandlord(t *testing.T) {
	f := newSeedFixture(t)
	p := f.properties[0]
	other := f.properties[1]
	require.NotEqual(t, p.LandlordID, other.LandlordID)

	require.NoError(t, f.db.Create(&models.LivesIn{TenantSSN: f.tenants[0].SSN, PropertyID: p.PID}).Error)
	require.NoError(t, f.db.Create(&models.LeasesFrom{TenantSSN: f.tenants[0].SSN, LandlordID: other.LandlordID, PropertyID: p.PID}).Error)

	problems, err := Audit(context.Background(), f.store)

	require.NoError(t, err)
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "expected property")
}

func TestAudit_ReportsEveryOverfullProperty(t *testing.T) {
	f := newSeedFixture(t)
	pair := f.properties[0] // two beds
	single := testdb.Property(t, f.db, pair.LandlordID, 1, "500.00")

	testdb.Occupy(t, f.db, f.tenants[0].SSN, pair, true)
	testdb.Occupy(t, f.db, f.tenants[1].SSN, pair, true)
	testdb.Occupy(t, f.db, f.tenants[2].SSN, pair, true)
	testdb.Occupy(t, f.db, f.tenants[3].SSN, single, true)
	testdb.Occupy(t, f.db, f.tenants[4].SSN, single, true)

	problems, err := Audit(context.Background(), f.store)
	require.NoError(t, err)

	require.Len(t, problems, 2)
	assert.Contains(t, problems[0], fmt.Sprintf("property %d holds 3 tenants, capacity 2", pair.PID))
	assert.Contains(t, problems[1], fmt.Sprintf("property %d holds 2 tenants, capacity 1", single.PID))
}
