package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// SaveProductRequest serves both create and update; the two operations accept
// the same editable fields (id is server-assigned).
type SaveProductRequest struct {
	Name        string          `json:"name"        validate:"required,min=1,max=200"`
	Description *string         `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"       validate:"required"`
	SupplierID  uint            `json:"supplier_id" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	SupplierID  uint            `json:"supplier_id"`
}
