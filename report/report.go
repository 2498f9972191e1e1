// Package report runs the read-only occupancy reports.
package report

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultLimit caps report rows.
const DefaultLimit = 10

// Vacancy is a property with at least one free bed.
type Vacancy struct {
	PID              int             `gorm:"column:pid"`
	Address          string          `gorm:"column:address"`
	Price            decimal.Decimal `gorm:"column:price"`
	Bed              int             `gorm:"column:bed"`
	CurrentOccupancy int             `gorm:"column:current_occupancy"`
	VacantBeds       int             `gorm:"column:vacant_beds"`
}

// LandlordTenants is a landlord with its number of housed tenants.
type LandlordTenants struct {
	LLID         int    `gorm:"column:llid"`
	Name         string `gorm:"column:name"`
	TotalTenants int    `gorm:"column:total_tenants"`
}

type Reporter struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Reporter {
	return &Reporter{db: db}
}

// MostExpensiveVacancies returns the priciest properties that still have a free bed.
func (r *Reporter) MostExpensiveVacancies(ctx context.Context, limit int) ([]Vacancy, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	var rows []Vacancy
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.pid, p.address, p.price, p.bed,
			COUNT(li.tenant_ssn) AS current_occupancy,
			p.bed - COUNT(li.tenant_ssn) AS vacant_beds
		FROM properties p
		LEFT JOIN lives_in li ON p.pid = li.property_id
		GROUP BY p.pid, p.address, p.price, p.bed
		HAVING p.bed - COUNT(li.tenant_ssn) > 0
		ORDER BY p.price DESC, p.pid ASC
		LIMIT ?`, limit).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query vacancies: %w", err)
	}
	return rows, nil
}

// LandlordsWithMostTenants ranks landlords housing at least one tenant.
func (r *Reporter) LandlordsWithMostTenants(ctx context.Context, limit int) ([]LandlordTenants, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	var rows []LandlordTenants
	err := r.db.WithContext(ctx).Raw(`
		SELECT l.llid, l.name, COUNT(li.tenant_ssn) AS total_tenants
		FROM landlords l
		JOIN properties p ON l.llid = p.landlord_id
		LEFT JOIN lives_in li ON p.pid = li.property_id
		GROUP BY l.llid, l.name
		HAVING COUNT(li.tenant_ssn) >= 1
		ORDER BY total_tenants DESC, l.name ASC
		LIMIT ?`, limit).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query landlord tenant counts: %w", err)
	}
	return rows, nil
}
