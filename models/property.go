package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Property is a rentable unit. Bed is the maximum number of simultaneous occupants.
type Property struct {
	PID         int             `gorm:"column:pid;primaryKey;autoIncrement"`
	LandlordID  int             `gorm:"index;not null"`
	Landlord    *Landlord       `gorm:"foreignKey:LandlordID;references:LLID;constraint:OnDelete:RESTRICT"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)"`
	Bed         int             `gorm:"not null;default:0"`
	Bath        float64
	PetsAllowed bool
	Address     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Property) TableName() string {
	return "properties"
}
