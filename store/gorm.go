package store

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/beesaferoot/rentals/models"
)

// GormStore implements Store on top of a *gorm.DB.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an open database handle.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// DB exposes the handle for read-only reporting queries.
func (s *GormStore) DB() *gorm.DB {
	return s.db
}

func (s *GormStore) ListProperties(ctx context.Context) ([]models.Property, error) {
	var properties []models.Property
	if err := s.db.WithContext(ctx).Order("pid").Find(&properties).Error; err != nil {
		return nil, storageErr("list properties", err)
	}
	return properties, nil
}

func (s *GormStore) ListTenants(ctx context.Context) ([]models.Tenant, error) {
	var tenants []models.Tenant
	if err := s.db.WithContext(ctx).Order("ssn").Find(&tenants).Error; err != nil {
		return nil, storageErr("list tenants", err)
	}
	return tenants, nil
}

func (s *GormStore) ListLandlords(ctx context.Context) ([]models.Landlord, error) {
	var landlords []models.Landlord
	if err := s.db.WithContext(ctx).Order("llid").Find(&landlords).Error; err != nil {
		return nil, storageErr("list landlords", err)
	}
	return landlords, nil
}

func (s *GormStore) ListOccupancy(ctx context.Context) ([]models.LivesIn, error) {
	var rows []models.LivesIn
	if err := s.db.WithContext(ctx).Order("property_id, tenant_ssn").Find(&rows).Error; err != nil {
		return nil, storageErr("list lives_in", err)
	}
	return rows, nil
}

func (s *GormStore) ListLeases(ctx context.Context) ([]models.LeasesFrom, error) {
	var rows []models.LeasesFrom
	if err := s.db.WithContext(ctx).Order("landlord_id, tenant_ssn").Find(&rows).Error; err != nil {
		return nil, storageErr("list leases_from", err)
	}
	return rows, nil
}

func (s *GormStore) ListSeedRuns(ctx context.Context) ([]models.SeedRun, error) {
	var runs []models.SeedRun
	if err := s.db.WithContext(ctx).Order("applied_at DESC").Find(&runs).Error; err != nil {
		return nil, storageErr("list seed_runs", err)
	}
	return runs, nil
}

func (s *GormStore) GetProperty(ctx context.Context, pid int) (*models.Property, error) {
	var p models.Property
	if err := s.db.WithContext(ctx).First(&p, "pid = ?", pid).Error; err != nil {
		return nil, readErr(err, "property", pid)
	}
	return &p, nil
}

func (s *GormStore) GetTenant(ctx context.Context, ssn string) (*models.Tenant, error) {
	var t models.Tenant
	if err := s.db.WithContext(ctx).First(&t, "ssn = ?", ssn).Error; err != nil {
		return nil, readErr(err, "tenant", ssn)
	}
	return &t, nil
}

func (s *GormStore) GetLandlord(ctx context.Context, llid int) (*models.Landlord, error) {
	var l models.Landlord
	if err := s.db.WithContext(ctx).First(&l, "llid = ?", llid).Error; err != nil {
		return nil, readErr(err, "landlord", llid)
	}
	return &l, nil
}

func (s *GormStore) PropertyOwners(ctx context.Context) (map[int]int, error) {
	var rows []struct {
		PID        int `gorm:"column:pid"`
		LandlordID int `gorm:"column:landlord_id"`
	}
	err := s.db.WithContext(ctx).Model(&models.Property{}).Select("pid, landlord_id").Scan(&rows).Error
	if err != nil {
		return nil, storageErr("list property owners", err)
	}

	owners := make(map[int]int, len(rows))
	for _, r := range rows {
		owners[r.PID] = r.LandlordID
	}
	return owners, nil
}

// Begin opens a database transaction bound to ctx.
func (s *GormStore) Begin(ctx context.Context) (Tx, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, storageErr("begin transaction", tx.Error)
	}
	return &gormTx{db: tx}, nil
}

func readErr(err error, what string, key any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrapf(ErrNotFound, "%s %v", what, key)
	}
	return storageErr(fmt.Sprintf("get %s %v", what, key), err)
}

type gormTx struct {
	db *gorm.DB
}

func (t *gormTx) DeleteRows(ctx context.Context, sel Selector, key any) (int64, error) {
	scope, model, err := t.deleteScope(sel, key)
	if err != nil {
		return 0, err
	}

	res := scope.WithContext(ctx).Delete(model)
	if res.Error != nil {
		return 0, storageErr("delete "+sel.String(), res.Error)
	}
	return res.RowsAffected, nil
}

// deleteScope resolves a selector to a filtered query and the model to delete.
func (t *gormTx) deleteScope(sel Selector, key any) (*gorm.DB, any, error) {
	var model any
	switch sel.Relation {
	case Occupancy:
		model = &models.LivesIn{}
	case Leases:
		model = &models.LeasesFrom{}
	case Tenants:
		model = &models.Tenant{}
	case Properties:
		model = &models.Property{}
	case Landlords:
		model = &models.Landlord{}
	default:
		return nil, nil, errors.Errorf("unknown relation %s", sel.Relation)
	}

	switch {
	case sel.Relation == Tenants && sel.By == Tenants:
		return t.db.Where("ssn = ?", key), model, nil
	case sel.Relation == Properties && sel.By == Properties:
		return t.db.Where("pid = ?", key), model, nil
	case sel.Relation == Landlords && sel.By == Landlords:
		return t.db.Where("llid = ?", key), model, nil
	case sel.Relation == Properties && sel.By == Landlords:
		return t.db.Where("landlord_id = ?", key), model, nil
	case (sel.Relation == Occupancy || sel.Relation == Leases) && sel.By == Tenants:
		return t.db.Where("tenant_ssn = ?", key), model, nil
	case (sel.Relation == Occupancy || sel.Relation == Leases) && sel.By == Properties:
		return t.db.Where("property_id = ?", key), model, nil
	case sel.Relation == Occupancy && sel.By == Landlords:
		owned := t.db.Model(&models.Property{}).Select("pid").Where("landlord_id = ?", key)
		return t.db.Where("property_id IN (?)", owned), model, nil
	case sel.Relation == Leases && sel.By == Landlords:
		owned := t.db.Model(&models.Property{}).Select("pid").Where("landlord_id = ?", key)
		return t.db.Where("landlord_id = ? OR property_id IN (?)", key, owned), model, nil
	}
	return nil, nil, errors.Errorf("unsupported selector %s", sel)
}

func (t *gormTx) ClearRelations(ctx context.Context) (int64, error) {
	all := t.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true})

	occ := all.Delete(&models.LivesIn{})
	if occ.Error != nil {
		return 0, storageErr("clear lives_in", occ.Error)
	}
	leases := all.Delete(&models.LeasesFrom{})
	if leases.Error != nil {
		return 0, storageErr("clear leases_from", leases.Error)
	}
	return occ.RowsAffected + leases.RowsAffected, nil
}

func (t *gormTx) InsertOccupancy(ctx context.Context, rows []models.LivesIn) error {
	if len(rows) == 0 {
		return nil
	}
	return storageErr("insert lives_in", t.db.WithContext(ctx).Create(&rows).Error)
}

func (t *gormTx) InsertLeases(ctx context.Context, rows []models.LeasesFrom) error {
	if len(rows) == 0 {
		return nil
	}
	return storageErr("insert leases_from", t.db.WithContext(ctx).Create(&rows).Error)
}

func (t *gormTx) InsertSeedRun(ctx context.Context, run *models.SeedRun) error {
	return storageErr("insert seed_runs", t.db.WithContext(ctx).Create(run).Error)
}

func (t *gormTx) Commit() error {
	return storageErr("commit", t.db.Commit().Error)
}

func (t *gormTx) Rollback() error {
	return storageErr("rollback", t.db.Rollback().Error)
}
