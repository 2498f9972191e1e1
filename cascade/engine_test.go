package cascade

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"github.com/beesaferoot/rentals/internal/testdb"
	"github.com/beesaferoot/rentals/models"
	"github.com/beesaferoot/rentals/store"
)

type world struct {
	db        *gorm.DB
	engine    *Engine
	store     *store.GormStore
	alice     models.Landlord
	bob       models.Landlord
	aliceFlat models.Property
	aliceLoft models.Property
	bobHouse  models.Property
}

// newWorld builds two landlords. Alice owns a flat with two occupants (one leased) and
// a loft with one leased occupant; Bob owns a house with one leased occupant.
func newWorld(t *testing.T) *world {
	db := testdb.Open(t)
	w := &world{db: db, store: store.NewGormStore(db)}
	w.engine = NewEngine(w.store, zaptest.NewLogger(t))

	w.alice = testdb.Landlord(t, db, "alice")
	w.bob = testdb.Landlord(t, db, "bob")
	w.aliceFlat = testdb.Property(t, db, w.alice.LLID, 3, "1500.00")
	w.aliceLoft = testdb.Property(t, db, w.alice.LLID, 1, "2200.00")
	w.bobHouse = testdb.Property(t, db, w.bob.LLID, 4, "1800.00")

	for _, ssn := range []string{"100-00-0001", "100-00-0002", "100-00-0003", "100-00-0004", "100-00-0005"} {
		testdb.Tenant(t, db, ssn)
	}
	testdb.Occupy(t, db, "100-00-0001", w.aliceFlat, true)
	testdb.Occupy(t, db, "100-00-0002", w.aliceFlat, false)
	testdb.Occupy(t, db, "100-00-0003", w.aliceLoft, true)
	testdb.Occupy(t, db, "100-00-0004", w.bobHouse, true)
	return w
}

type counts struct {
	livesIn, leases, tenants, properties, landlords int64
}

func (w *world) counts(t *testing.T) counts {
	return counts{
		livesIn:    testdb.Count(t, w.db, &models.LivesIn{}),
		leases:     testdb.Count(t, w.db, &models.LeasesFrom{}),
		tenants:    testdb.Count(t, w.db, &models.Tenant{}),
		properties: testdb.Count(t, w.db, &models.Property{}),
		landlords:  testdb.Count(t, w.db, &models.Landlord{}),
	}
}

func stepRows(r *Result) []int64 {
	rows := make([]int64, 0, len(r.Steps))
	for _, s := range r.Steps {
		rows = append(rows, s.Rows)
	}
	return rows
}

func TestForeignKeysAreEnforced(t *testing.T) {
	w := newWorld(t)
	err := w.db.Delete(&models.Tenant{}, "ssn = ?", "100-00-0001").Error
	assert.Error(t, err, "a bare delete of a referenced tenant must be refused")
}

func TestDeleteProperty(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()

	res, err := w.engine.DeleteProperty(ctx, w.aliceFlat.PID)
	require.NoError(t, err)

	assert.Equal(t, Committed, res.Phase)
	assert.Equal(t, []int64{2, 1, 1}, stepRows(res))

	_, err = w.store.GetProperty(ctx, w.aliceFlat.PID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.Equal(t, counts{livesIn: 2, leases: 2, tenants: 5, properties: 2, landlords: 2}, w.counts(t))
	assert.Equal(t, int64(0), testdb.Count(t, w.db, &models.LivesIn{}, "property_id = ?", w.aliceFlat.PID))
	assert.Equal(t, int64(0), testdb.Count(t, w.db, &models.LeasesFrom{}, "property_id = ?", w.aliceFlat.PID))
}

func TestDeleteTenant(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()

	res, err := w.engine.DeleteTenant(ctx, "100-00-0003")
	require.NoError(t, err)

	assert.Equal(t, Committed, res.Phase)
	assert.Equal(t, []int64{1, 1, 1}, stepRows(res))
	assert.Equal(t, counts{livesIn: 3, leases: 2, tenants: 4, properties: 3, landlords: 2}, w.counts(t))

	_, err = w.store.GetTenant(ctx, "100-00-0003")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteTenant_Unhoused(t *testing.T) {
	w := newWorld(t)

	res, err := w.engine.DeleteTenant(context.Background(), "100-00-0005")
	require.NoError(t, err)

	assert.Equal(t, []int64{0, 0, 1}, stepRows(res))
	assert.Equal(t, counts{livesIn: 4, leases: 3, tenants: 4, properties: 3, landlords: 2}, w.counts(t))
}

func TestDeleteLandlord(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()

	res, err := w.engine.DeleteLandlord(ctx, w.alice.LLID)
	require.NoError(t, err)

	assert.Equal(t, Committed, res.Phase)
	assert.Equal(t, []int64{3, 2, 2, 1}, stepRows(res))
	assert.Equal(t, counts{livesIn: 1, leases: 1, tenants: 5, properties: 1, landlords: 1}, w.counts(t))

	_, err = w.store.GetLandlord(ctx, w.alice.LLID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = w.store.GetProperty(ctx, w.bobHouse.PID)
	assert.NoError(t, err)
}

func TestDeleteLandlord_WithoutProperties(t *testing.T) {
	w := newWorld(t)
	carol := testdb.Landlord(t, w.db, "carol")

	res, err := w.engine.DeleteLandlord(context.Background(), carol.LLID)
	require.NoError(t, err)

	assert.Equal(t, []int64{0, 0, 0, 1}, stepRows(res))
	assert.Equal(t, int64(2), w.counts(t).landlords)
}

func TestDelete_NotFound(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		key  any
	}{
		{"tenant", Tenant, "999-99-9999"},
		{"property", Property, 9999},
		{"landlord", Landlord, 9999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld(t)
			before := w.counts(t)

			res, err := w.engine.Delete(context.Background(), tt.kind, tt.key)

			require.Error(t, err)
			assert.ErrorIs(t, err, store.ErrNotFound)
			assert.False(t, store.IsStorageFailure(err))
			assert.Equal(t, RolledBack, res.Phase)
			assert.Equal(t, before, w.counts(t))
		})
	}
}

func TestDelete_UnknownKind(t *testing.T) {
	w := newWorld(t)
	_, err := w.engine.Delete(context.Background(), Kind(42), 1)
	assert.Error(t, err)
}

func TestDeleteLandlord_FailureRollsBackEverything(t *testing.T) {
	w := newWorld(t)
	before := w.counts(t)

	err := w.db.Callback().Delete().Before("gorm:delete").Register("test:fail_properties", func(tx *gorm.DB) {
		if tx.Statement.Table == "properties" {
			_ = tx.AddError(errors.New("lost connection"))
		}
	})
	require.NoError(t, err)

	res, err := w.engine.DeleteLandlord(context.Background(), w.alice.LLID)

	require.Error(t, err)
	assert.True(t, store.IsStorageFailure(err))
	assert.NotErrorIs(t, err, store.ErrNotFound)
	assert.Equal(t, RolledBack, res.Phase)
	assert.Equal(t, []int64{3, 2}, stepRows(res), "dependents were removed before the failure")
	assert.Equal(t, before, w.counts(t), "rolled back deletes leave no trace")
}

func TestDelete_ParentFailureRollsBack(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		table string
		key   func(w *world) any
		steps []int64
	}{
		{"tenant", Tenant, "tenants", func(*world) any { return "100-00-0001" }, []int64{1, 1}},
		{"property", Property, "properties", func(w *world) any { return w.aliceFlat.PID }, []int64{2, 1}},
		{"landlord", Landlord, "landlords", func(w *world) any { return w.alice.LLID }, []int64{3, 2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld(t)
			before := w.counts(t)

			err := w.db.Callback().Delete().Before("gorm:delete").Register("test:fail_parent", func(tx *gorm.DB) {
				if tx.Statement.Table == tt.table {
					_ = tx.AddError(errors.New("write timeout"))
				}
			})
			require.NoError(t, err)

			res, err := w.engine.Delete(context.Background(), tt.kind, tt.key(w))

			require.Error(t, err)
			assert.True(t, store.IsStorageFailure(err))
			assert.NotErrorIs(t, err, store.ErrNotFound)
			assert.Equal(t, RolledBack, res.Phase)
			assert.Equal(t, tt.steps, stepRows(res), "every dependent step ran before the parent failed")
			assert.Len(t, res.Steps, len(Plan(tt.kind))-1)
			assert.Equal(t, before, w.counts(t))
		})
	}
}
