package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tenant is identified by SSN, which never changes once the row exists.
type Tenant struct {
	SSN       string          `gorm:"column:ssn;primaryKey;size:11"`
	FName     string          `gorm:"column:f_name;not null"`
	MName     string          `gorm:"column:m_name"`
	LName     string          `gorm:"column:l_name;not null"`
	Budget    decimal.Decimal `gorm:"type:decimal(10,2)"`
	PhoneNum  string
	Email     string
	BirthDate time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Tenant) TableName() string {
	return "tenants"
}

// FullName joins the non-empty name parts.
func (t Tenant) FullName() string {
	name := t.FName
	if t.MName != "" {
		name += " " + t.MName
	}
	if t.LName != "" {
		name += " " + t.LName
	}
	return name
}
