package models

import "time"

// SeedRun records one occupancy seeding run.
type SeedRun struct {
	RunID      string    `gorm:"primaryKey;size:36"`
	Seed       int64     `gorm:"not null"`
	Properties int       `gorm:"not null"`
	Tenants    int       `gorm:"not null"`
	Assigned   int       `gorm:"not null"`
	Leases     int       `gorm:"not null"`
	Reset      bool      `gorm:"not null;default:false"`
	AppliedAt  time.Time `gorm:"not null"`
}

func (SeedRun) TableName() string {
	return "seed_runs"
}
