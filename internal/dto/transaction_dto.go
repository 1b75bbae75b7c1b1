package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CreateTransactionRequest deliberately has no user_id field: the acting user
// is taken from the session, never from the request body.
type CreateTransactionRequest struct {
	ProductID      uint   `json:"product_id"      validate:"required"`
	Type           string `json:"type"            validate:"required,oneof=purchase sale adjustment"`
	QuantityChange int    `json:"quantity_change" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TransactionResponse struct {
	ID             uint      `json:"id"`
	ProductID      uint      `json:"product_id"`
	ProductName    string    `json:"product_name"`
	UserID         uint      `json:"user_id"`
	Type           string    `json:"type"`
	QuantityChange int       `json:"quantity_change"`
	Timestamp      time.Time `json:"timestamp"`
}
