// Package testdb opens throwaway sqlite databases with the rental schema for tests.
package testdb

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/beesaferoot/rentals/models"
)

// Path returns a fresh database file path inside the test's temp dir.
func Path(t testing.TB) string {
	return filepath.Join(t.TempDir(), "rentals.db")
}

// Open returns a migrated sqlite database with foreign keys enforced.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(Path(t)+"?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.ModelTypeRegistry...))
	return db
}

func Landlord(t testing.TB, db *gorm.DB, name string) models.Landlord {
	t.Helper()
	l := models.Landlord{Name: name, PhoneNum: "555-0100", Email: name + "@example.com"}
	require.NoError(t, db.Create(&l).Error)
	return l
}

func Property(t testing.TB, db *gorm.DB, landlordID, beds int, price string) models.Property {
	t.Helper()
	p := models.Property{
		LandlordID: landlordID,
		Price:      decimal.RequireFromString(price),
		Bed:        beds,
		Bath:       1,
		Address:    "1 Test Street",
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func Tenant(t testing.TB, db *gorm.DB, ssn string) models.Tenant {
	t.Helper()
	tn := models.Tenant{
		SSN:       ssn,
		FName:     "Test",
		LName:     "Tenant " + ssn,
		Budget:    decimal.NewFromInt(1000),
		BirthDate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&tn).Error)
	return tn
}

// Occupy inserts a lives_in row and, when withLease is set, the matching leases_from row.
func Occupy(t testing.TB, db *gorm.DB, ssn string, p models.Property, withLease bool) {
	t.Helper()
	require.NoError(t, db.Create(&models.LivesIn{TenantSSN: ssn, PropertyID: p.PID}).Error)
	if withLease {
		require.NoError(t, db.Create(&models.LeasesFrom{TenantSSN: ssn, LandlordID: p.LandlordID, PropertyID: p.PID}).Error)
	}
}

// Count returns the number of rows of model matching the optional condition.
func Count(t testing.TB, db *gorm.DB, model any, query ...any) int64 {
	t.Helper()
	var n int64
	q := db.Model(model)
	if len(query) > 0 {
		q = q.Where(query[0], query[1:]...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}
