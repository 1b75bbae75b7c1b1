package model

import "time"

// Alert types an operator can raise against an inventory record.
const (
	AlertLowStock  = "low_stock"
	AlertHighStock = "high_stock"
	AlertAnomaly   = "anomaly"
	AlertCritical  = "critical"
	AlertReorder   = "reorder"
)

// Alert flags a condition on one inventory record. IsActive is toggled
// independently of the message.
type Alert struct {
	ID          uint   `gorm:"primaryKey"`
	InventoryID uint   `gorm:"index;not null"`
	AlertType   string `gorm:"type:varchar(20);not null"`
	Message     string
	IsActive    bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Inventory *InventoryRecord `gorm:"foreignKey:InventoryID"`
}
