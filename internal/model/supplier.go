package model

import "time"

// Supplier represents a vendor with contact data.
type Supplier struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	ContactEmail *string
	PhoneNumber  *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Products []Product `gorm:"foreignKey:SupplierID"`
}
