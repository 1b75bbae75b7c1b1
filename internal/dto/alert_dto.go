package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateAlertRequest struct {
	InventoryID uint   `json:"inventory_id" validate:"required"`
	AlertType   string `json:"alert_type"   validate:"required,oneof=low_stock high_stock anomaly critical reorder"`
	Message     string `json:"message"      validate:"required"`
	IsActive    *bool  `json:"is_active"`
}

// UpdateAlertRequest supports toggling active state, editing the message, or
// both; nil/empty fields are left untouched.
type UpdateAlertRequest struct {
	IsActive *bool  `json:"is_active"`
	Message  string `json:"message"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type AlertResponse struct {
	ID          uint   `json:"id"`
	InventoryID uint   `json:"inventory_id"`
	ProductName string `json:"product_name"`
	AlertType   string `json:"alert_type"`
	Message     string `json:"message"`
	IsActive    bool   `json:"is_active"`
}
