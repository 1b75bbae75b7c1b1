package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type SaveSupplierRequest struct {
	Name         string  `json:"name"          validate:"required,min=1,max=200"`
	ContactEmail *string `json:"contact_email" validate:"omitempty,email"`
	PhoneNumber  *string `json:"phone_number"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SupplierResponse struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	ContactEmail *string `json:"contact_email"`
	PhoneNumber  *string `json:"phone_number"`
}
