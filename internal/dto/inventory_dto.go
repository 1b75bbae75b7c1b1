package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateInventoryRequest struct {
	ProductID         uint `json:"product_id"          validate:"required"`
	Quantity          int  `json:"quantity"            validate:"min=0"`
	LowStockThreshold int  `json:"low_stock_threshold" validate:"min=0"`
}

// UpdateInventoryRequest omits product_id: the product binding is fixed at
// creation (the edit dialog disables the product select).
type UpdateInventoryRequest struct {
	Quantity          int `json:"quantity"            validate:"min=0"`
	LowStockThreshold int `json:"low_stock_threshold" validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type InventoryResponse struct {
	ID                uint   `json:"id"`
	ProductID         uint   `json:"product_id"`
	ProductName       string `json:"product_name"`
	Quantity          int    `json:"quantity"`
	LowStockThreshold int    `json:"low_stock_threshold"`
	Status            string `json:"status"` // derived, never stored
}
