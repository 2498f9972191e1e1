package models

import "time"

// Landlord owns zero or more properties. Ownership is held by Property.LandlordID.
type Landlord struct {
	LLID      int    `gorm:"column:llid;primaryKey;autoIncrement"`
	Name      string `gorm:"not null"`
	PhoneNum  string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Landlord) TableName() string {
	return "landlords"
}
