package models

import "time"

// LeasesFrom links a tenant to the landlord owning the property the tenant lives in.
// PropertyID is kept so property and landlord cascades can find the row.
type LeasesFrom struct {
	TenantSSN  string    `gorm:"column:tenant_ssn;index;not null;size:11"`
	Tenant     *Tenant   `gorm:"foreignKey:TenantSSN;references:SSN;constraint:OnDelete:RESTRICT"`
	LandlordID int       `gorm:"index;not null"`
	Landlord   *Landlord `gorm:"foreignKey:LandlordID;references:LLID;constraint:OnDelete:RESTRICT"`
	PropertyID int       `gorm:"index;not null"`
	Property   *Property `gorm:"foreignKey:PropertyID;references:PID;constraint:OnDelete:RESTRICT"`
	CreatedAt  time.Time
}

func (LeasesFrom) TableName() string {
	return "leases_from"
}
