package models

import "time"

// LivesIn is one occupancy link. The unique index on TenantSSN keeps a tenant in at
// most one property.
type LivesIn struct {
	TenantSSN  string    `gorm:"column:tenant_ssn;uniqueIndex;not null;size:11"`
	Tenant     *Tenant   `gorm:"foreignKey:TenantSSN;references:SSN;constraint:OnDelete:RESTRICT"`
	PropertyID int       `gorm:"index;not null"`
	Property   *Property `gorm:"foreignKey:PropertyID;references:PID;constraint:OnDelete:RESTRICT"`
	CreatedAt  time.Time
}

func (LivesIn) TableName() string {
	return "lives_in"
}
