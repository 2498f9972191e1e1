package cascade

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/beesaferoot/rentals/store"
)

// Phase tracks how far a delete call got.
type Phase int

const (
	Started Phase = iota
	DependentsCleared
	Committed
	RolledBack
)

func (p Phase) String() string {
	switch p {
	case Started:
		return "started"
	case DependentsCleared:
		return "dependents_cleared"
	case Committed:
		return "committed"
	case RolledBack:
		return "rolled_back"
	default:
		return "unknown"
	}
}

// StepResult is the row count removed by one delete of a plan.
type StepResult struct {
	Selector store.Selector
	Rows     int64
}

// Result describes one delete call. Rows counted in Steps are only durable when Phase
// is Committed.
type Result struct {
	Kind  Kind
	Key   any
	Phase Phase
	Steps []StepResult
}

// Engine runs cascading deletes against a store.
type Engine struct {
	store  store.Store
	logger *zap.Logger
}

func NewEngine(st store.Store, logger *zap.Logger) *Engine {
	return &Engine{store: st, logger: logger}
}

func (e *Engine) DeleteTenant(ctx context.Context, ssn string) (*Result, error) {
	return e.Delete(ctx, Tenant, ssn)
}

func (e *Engine) DeleteProperty(ctx context.Context, pid int) (*Result, error) {
	return e.Delete(ctx, Property, pid)
}

func (e *Engine) DeleteLandlord(ctx context.Context, llid int) (*Result, error) {
	return e.Delete(ctx, Landlord, llid)
}

// Delete removes the record of kind identified by key and all rows depending on it.
// A missing parent yields an error matching store.ErrNotFound; a database failure
// yields a *store.StorageError. In both cases nothing is changed.
func (e *Engine) Delete(ctx context.Context, kind Kind, key any) (*Result, error) {
	plan, ok := plans[kind]
	if !ok {
		return nil, errors.Errorf("no delete plan for %s", kind)
	}
	res := &Result{Kind: kind, Key: key, Phase: Started}
	log := e.logger.With(zap.Stringer("kind", kind), zap.Any("key", key))

	tx, err := e.store.Begin(ctx)
	if err != nil {
		res.Phase = RolledBack
		log.Error("delete aborted before start", zap.Error(err))
		return res, err
	}
	defer func() {
		if res.Phase == Committed {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Warn("rollback failed", zap.Error(rbErr))
		}
		res.Phase = RolledBack
	}()

	dependents, parent := plan[:len(plan)-1], plan[len(plan)-1]
	for _, sel := range dependents {
		n, err := tx.DeleteRows(ctx, sel, key)
		if err != nil {
			log.Error("delete rolled back", zap.Stringer("step", sel), zap.Error(err))
			return res, err
		}
		res.Steps = append(res.Steps, StepResult{Selector: sel, Rows: n})
	}
	res.Phase = DependentsCleared

	n, err := tx.DeleteRows(ctx, parent, key)
	if err != nil {
		log.Error("delete rolled back", zap.Stringer("step", parent), zap.Error(err))
		return res, err
	}
	res.Steps = append(res.Steps, StepResult{Selector: parent, Rows: n})
	if n == 0 {
		log.Info("delete rolled back: record does not exist")
		return res, errors.Wrapf(store.ErrNotFound, "no %s with key %v", kind, key)
	}

	if err := tx.Commit(); err != nil {
		log.Error("commit failed", zap.Error(err))
		return res, err
	}
	res.Phase = Committed

	fields := make([]zap.Field, 0, len(res.Steps))
	for _, s := range res.Steps {
		fields = append(fields, zap.Int64(s.Selector.String(), s.Rows))
	}
	log.Info("record deleted", fields...)
	return res, nil
}
