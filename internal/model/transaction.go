package model

import "time"

// Transaction types. Purchases add stock, sales remove it, adjustments carry
// whichever sign the operator entered.
const (
	TxPurchase   = "purchase"
	TxSale       = "sale"
	TxAdjustment = "adjustment"
)

// Transaction is one append-only stock movement. Rows are never updated;
// they may be deleted by an operator cleaning up the log.
type Transaction struct {
	ID             uint   `gorm:"primaryKey"`
	ProductID      uint   `gorm:"index;not null"`
	UserID         uint   `gorm:"not null"`
	Type           string `gorm:"type:varchar(20);not null"`
	QuantityChange int    `gorm:"not null"` // positive = stock in, negative = stock out
	CreatedAt      time.Time `gorm:"index"`

	Product *Product `gorm:"foreignKey:ProductID"`
}
