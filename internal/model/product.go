package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry supplied by exactly one Supplier.
type Product struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"index;not null"`
	Description *string
	Category    string          `gorm:"index"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	SupplierID  uint            `gorm:"index;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Supplier *Supplier `gorm:"foreignKey:SupplierID"`
}
