package occupancy

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/beesaferoot/rentals/models"
	"github.com/beesaferoot/rentals/store"
)

// ErrAlreadySeeded is returned when occupancy rows exist and a reset was not requested.
var ErrAlreadySeeded = errors.New("occupancy already seeded; rerun with reset to replace it")

// NewSource returns a deterministic PCG-backed source for seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// SeedOptions controls one seeding run.
type SeedOptions struct {
	// Seed feeds the random source. Zero picks one from the clock.
	Seed   int64
	Reset  bool
	DryRun bool
}

// Report summarises a seeding run.
type Report struct {
	RunID      string
	Seed       int64
	Properties int
	Tenants    int
	Assignment *Assignment
	Leases     Leases
	Persisted  bool
}

// Seeder populates lives_in and leases_from from the current properties and tenants.
type Seeder struct {
	store  store.Store
	logger *zap.Logger
	now    func() time.Time
}

func NewSeeder(st store.Store, logger *zap.Logger) *Seeder {
	return &Seeder{store: st, logger: logger, now: time.Now}
}

// Run loads the snapshot, assigns, checks, derives leases and persists everything in
// one transaction unless opts.DryRun is set.
func (s *Seeder) Run(ctx context.Context, opts SeedOptions) (*Report, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = s.now().UnixNano()
	}
	runID := uuid.NewString()
	log := s.logger.With(zap.String("run_id", runID), zap.Int64("seed", seed))

	if !opts.Reset && !opts.DryRun {
		existing, err := s.store.ListOccupancy(ctx)
		if err != nil {
			return nil, err
		}
		if len(existing) > 0 {
			return nil, errors.Wrapf(ErrAlreadySeeded, "%d lives_in rows present", len(existing))
		}
		leases, err := s.store.ListLeases(ctx)
		if err != nil {
			return nil, err
		}
		if len(leases) > 0 {
			return nil, errors.Wrapf(ErrAlreadySeeded, "%d leases_from rows present", len(leases))
		}
	}

	rows, err := s.store.ListProperties(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load properties")
	}
	tenantRows, err := s.store.ListTenants(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load tenants")
	}
	owners, err := s.store.PropertyOwners(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load property owners")
	}

	properties := make([]Property, 0, len(rows))
	for _, p := range rows {
		properties = append(properties, Property{ID: p.PID, Capacity: p.Bed})
	}
	tenants := make([]TenantID, 0, len(tenantRows))
	for _, t := range tenantRows {
		tenants = append(tenants, t.SSN)
	}

	a := AssignOccupancy(properties, tenants, NewSource(seed))
	if err := Check(properties, tenants, a); err != nil {
		log.Error("assignment failed invariant check", zap.Error(err))
		return nil, err
	}

	leases, err := DeriveLeases(a, owners)
	if err != nil {
		return nil, err
	}

	report := &Report{
		RunID:      runID,
		Seed:       seed,
		Properties: len(properties),
		Tenants:    len(tenants),
		Assignment: a,
		Leases:     leases,
	}

	if opts.DryRun {
		log.Info("dry run: occupancy computed, nothing written",
			zap.Int("assigned", a.Assigned()),
			zap.Int("unassigned", len(a.Unassigned)))
		return report, nil
	}

	run := &models.SeedRun{
		RunID:      runID,
		Seed:       seed,
		Properties: len(properties),
		Tenants:    len(tenants),
		Assigned:   a.Assigned(),
		Leases:     len(leases),
		Reset:      opts.Reset,
		AppliedAt:  s.now(),
	}
	if err := PersistOccupancyAndLeases(ctx, s.store, a, leases, PersistOptions{Reset: opts.Reset, Run: run, Logger: log}); err != nil {
		log.Error("seeding rolled back", zap.Error(err))
		return nil, err
	}
	report.Persisted = true

	log.Info("occupancy seeded",
		zap.Int("properties", len(properties)),
		zap.Int("tenants", len(tenants)),
		zap.Int("assigned", a.Assigned()),
		zap.Int("unassigned", len(a.Unassigned)),
		zap.Int("leases", len(leases)))
	return report, nil
}
