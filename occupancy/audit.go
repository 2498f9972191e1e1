package occupancy

import (
	"context"
	"fmt"
	"sort"

	"github.com/beesaferoot/rentals/models"
	"github.com/beesaferoot/rentals/store"
)

// FromRows rebuilds an Assignment from stored lives_in rows. Tenants without a row are
// unassigned; rows for unknown tenants are kept so Check can report them.
func FromRows(properties []Property, tenants []TenantID, rows []models.LivesIn) *Assignment {
	a := &Assignment{
		Order:     make([]PropertyID, 0, len(properties)),
		Occupants: make(map[PropertyID][]TenantID, len(properties)),
	}
	for _, p := range properties {
		a.Order = append(a.Order, p.ID)
		a.Occupants[p.ID] = []TenantID{}
	}

	housed := make(map[TenantID]bool, len(rows))
	for _, r := range rows {
		a.Occupants[r.PropertyID] = append(a.Occupants[r.PropertyID], r.TenantSSN)
		housed[r.TenantSSN] = true
	}
	for _, t := range tenants {
		if !housed[t] {
			a.Unassigned = append(a.Unassigned, t)
		}
	}
	return a
}

// Audit checks the stored occupancy against capacity and uniqueness, and the stored
// leases against the leases the occupancy implies. It returns one line per problem.
func Audit(ctx context.Context, r store.Reader) ([]string, error) {
	propertyRows, err := r.ListProperties(ctx)
	if err != nil {
		return nil, err
	}
	tenantRows, err := r.ListTenants(ctx)
	if err != nil {
		return nil, err
	}
	occupancyRows, err := r.ListOccupancy(ctx)
	if err != nil {
		return nil, err
	}
	leaseRows, err := r.ListLeases(ctx)
	if err != nil {
		return nil, err
	}
	owners, err := r.PropertyOwners(ctx)
	if err != nil {
		return nil, err
	}

	properties := make([]Property, 0, len(propertyRows))
	for _, p := range propertyRows {
		properties = append(properties, Property{ID: p.PID, Capacity: p.Bed})
	}
	tenants := make([]TenantID, 0, len(tenantRows))
	for _, t := range tenantRows {
		tenants = append(tenants, t.SSN)
	}

	var problems []string
	a := FromRows(properties, tenants, occupancyRows)
	for _, v := range Violations(properties, tenants, a) {
		problems = append(problems, v.Error())
	}

	want, err := DeriveLeases(a, owners)
	if err != nil {
		problems = append(problems, err.Error())
		return problems, nil
	}

	got := make(map[TenantID]models.LeasesFrom, len(leaseRows))
	for _, l := range leaseRows {
		if _, dup := got[l.TenantSSN]; dup {
			problems = append(problems, fmt.Sprintf("tenant %s has more than one lease", l.TenantSSN))
			continue
		}
		got[l.TenantSSN] = l
	}
	propertyOf := a.PropertyOf()
	for ssn, llid := range want {
		l, ok := got[ssn]
		switch {
		case !ok:
			problems = append(problems, fmt.Sprintf("tenant %s lives in property %d but has no lease", ssn, propertyOf[ssn]))
		case l.LandlordID != llid || l.PropertyID != propertyOf[ssn]:
			problems = append(problems, fmt.Sprintf("tenant %s leases property %d from landlord %d, expected property %d from landlord %d",
				ssn, l.PropertyID, l.LandlordID, propertyOf[ssn], llid))
		}
	}
	for ssn, l := range got {
		if _, ok := want[ssn]; !ok {
			problems = append(problems, fmt.Sprintf("tenant %s leases property %d but lives nowhere", ssn, l.PropertyID))
		}
	}
	sort.Strings(problems)
	return problems, nil
}
