package model

import "time"

// Stock status values derived from quantity vs. threshold. Status is never
// stored; it is recomputed on every read (see StockStatus).
const (
	StatusInStock    = "in_stock"
	StatusLowStock   = "low_stock"
	StatusOutOfStock = "out_of_stock"
)

// InventoryRecord tracks the on-hand quantity for one product (one-to-one).
type InventoryRecord struct {
	ID                uint `gorm:"primaryKey"`
	ProductID         uint `gorm:"uniqueIndex;not null"`
	Quantity          int  `gorm:"not null;default:0"`
	LowStockThreshold int  `gorm:"not null;default:10"`
	LastUpdated       time.Time `gorm:"autoUpdateTime"`
	CreatedAt         time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}

// StockStatus derives the display status. The boundary sits at equality:
// quantity equal to the threshold is low stock, not in stock.
func StockStatus(quantity, threshold int) string {
	switch {
	case quantity == 0:
		return StatusOutOfStock
	case quantity <= threshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}
