package occupancy

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/beesaferoot/rentals/models"
	"github.com/beesaferoot/rentals/store"
)

// PersistOptions tunes PersistOccupancyAndLeases.
type PersistOptions struct {
	// Reset empties lives_in and leases_from inside the same transaction first.
	Reset bool
	// Run, when set, is recorded in seed_runs as part of the transaction.
	Run *models.SeedRun
	// Logger receives rollback failures. Nil discards them.
	Logger *zap.Logger
}

// PersistOccupancyAndLeases writes the occupancy rows and then the lease rows in one
// transaction. Either every row lands or none does.
func PersistOccupancyAndLeases(ctx context.Context, st store.Store, a *Assignment, leases Leases, opts PersistOptions) error {
	livesIn, leaseRows, err := buildRows(a, leases)
	if err != nil {
		return err
	}

	tx, err := st.Begin(ctx)
	if err != nil {
		return err
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Warn("rollback failed", zap.Error(rbErr))
		}
	}()

	if opts.Reset {
		if _, err := tx.ClearRelations(ctx); err != nil {
			return err
		}
	}
	if err := tx.InsertOccupancy(ctx, livesIn); err != nil {
		return err
	}
	if err := tx.InsertLeases(ctx, leaseRows); err != nil {
		return err
	}
	if opts.Run != nil {
		if err := tx.InsertSeedRun(ctx, opts.Run); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

func buildRows(a *Assignment, leases Leases) ([]models.LivesIn, []models.LeasesFrom, error) {
	if len(leases) != a.Assigned() {
		return nil, nil, errors.Errorf("lease mapping has %d entries for %d assigned tenants", len(leases), a.Assigned())
	}

	livesIn := make([]models.LivesIn, 0, a.Assigned())
	leaseRows := make([]models.LeasesFrom, 0, len(leases))
	for _, pid := range a.Order {
		for _, ssn := range a.Occupants[pid] {
			llid, ok := leases[ssn]
			if !ok {
				return nil, nil, errors.Errorf("no lease derived for tenant %s", ssn)
			}
			livesIn = append(livesIn, models.LivesIn{TenantSSN: ssn, PropertyID: pid})
			leaseRows = append(leaseRows, models.LeasesFrom{TenantSSN: ssn, LandlordID: llid, PropertyID: pid})
		}
	}
	return livesIn, leaseRows, nil
}
