// Package store is the record-store collaborator shared by the occupancy and cascade
// engines. Writes only happen through a Tx; nothing written through a Tx is visible to
// other callers until Commit.
package store

import (
	"context"
	"fmt"

	"github.com/beesaferoot/rentals/models"
)

// Relation names a table of the fixed schema.
type Relation int

const (
	Occupancy Relation = iota + 1
	Leases
	Tenants
	Properties
	Landlords
)

func (r Relation) String() string {
	switch r {
	case Occupancy:
		return "lives_in"
	case Leases:
		return "leases_from"
	case Tenants:
		return "tenants"
	case Properties:
		return "properties"
	case Landlords:
		return "landlords"
	default:
		return fmt.Sprintf("relation(%d)", int(r))
	}
}

// Selector picks the rows of Relation that reference one record of By. When By is a
// landlord, occupancy rows are matched through the landlord's properties and lease rows
// match either directly or through those properties. A Selector with Relation == By
// targets the record itself.
type Selector struct {
	Relation Relation
	By       Relation
}

func (s Selector) String() string {
	if s.Relation == s.By {
		return s.Relation.String()
	}
	return fmt.Sprintf("%s by %s", s.Relation, s.By)
}

// Reader covers the reads the engines and the CLI need.
type Reader interface {
	ListProperties(ctx context.Context) ([]models.Property, error)
	ListTenants(ctx context.Context) ([]models.Tenant, error)
	ListLandlords(ctx context.Context) ([]models.Landlord, error)
	ListOccupancy(ctx context.Context) ([]models.LivesIn, error)
	ListLeases(ctx context.Context) ([]models.LeasesFrom, error)
	ListSeedRuns(ctx context.Context) ([]models.SeedRun, error)

	GetProperty(ctx context.Context, pid int) (*models.Property, error)
	GetTenant(ctx context.Context, ssn string) (*models.Tenant, error)
	GetLandlord(ctx context.Context, llid int) (*models.Landlord, error)

	// PropertyOwners maps every property id to its owning landlord id.
	PropertyOwners(ctx context.Context) (map[int]int, error)
}

// Store is a Reader that can open atomic units.
type Store interface {
	Reader
	Begin(ctx context.Context) (Tx, error)
}

// Tx is one atomic unit. Callers must end it with exactly one of Commit or Rollback.
type Tx interface {
	// DeleteRows removes the rows chosen by sel for the given key and reports how many
	// rows were affected.
	DeleteRows(ctx context.Context, sel Selector, key any) (int64, error)
	// ClearRelations empties the occupancy and lease relations.
	ClearRelations(ctx context.Context) (int64, error)

	InsertOccupancy(ctx context.Context, rows []models.LivesIn) error
	InsertLeases(ctx context.Context, rows []models.LeasesFrom) error
	InsertSeedRun(ctx context.Context, run *models.SeedRun) error

	Commit() error
	Rollback() error
}
