package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/dto"
)

func idPath(resource string, id uint) string { return fmt.Sprintf("/%s/%d", resource, id) }
func userPath(id uint) string                { return idPath("users", id) }

// ── Products ─────────────────────────────────────────────────────────────────

type ProductsGroup struct{ c *Client }

func (g *ProductsGroup) List(ctx context.Context) ([]dto.ProductResponse, error) {
	var out []dto.ProductResponse
	if err := g.c.do(ctx, http.MethodGet, "/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *ProductsGroup) Create(ctx context.Context, req dto.SaveProductRequest) (*dto.ProductResponse, error) {
	var out dto.ProductResponse
	if err := g.c.do(ctx, http.MethodPost, "/products", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *ProductsGroup) Update(ctx context.Context, id uint, req dto.SaveProductRequest) (*dto.ProductResponse, error) {
	var out dto.ProductResponse
	if err := g.c.do(ctx, http.MethodPut, idPath("products", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *ProductsGroup) Delete(ctx context.Context, id uint) error {
	return g.c.do(ctx, http.MethodDelete, idPath("products", id), nil, nil)
}

// ── Suppliers ────────────────────────────────────────────────────────────────

type SuppliersGroup struct{ c *Client }

func (g *SuppliersGroup) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	var out []dto.SupplierResponse
	if err := g.c.do(ctx, http.MethodGet, "/suppliers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *SuppliersGroup) Create(ctx context.Context, req dto.SaveSupplierRequest) (*dto.SupplierResponse, error) {
	var out dto.SupplierResponse
	if err := g.c.do(ctx, http.MethodPost, "/suppliers", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *SuppliersGroup) Update(ctx context.Context, id uint, req dto.SaveSupplierRequest) (*dto.SupplierResponse, error) {
	var out dto.SupplierResponse
	if err := g.c.do(ctx, http.MethodPut, idPath("suppliers", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *SuppliersGroup) Delete(ctx context.Context, id uint) error {
	return g.c.do(ctx, http.MethodDelete, idPath("suppliers", id), nil, nil)
}

// ── Inventory ────────────────────────────────────────────────────────────────

type InventoryGroup struct{ c *Client }

func (g *InventoryGroup) List(ctx context.Context) ([]dto.InventoryResponse, error) {
	var out []dto.InventoryResponse
	if err := g.c.do(ctx, http.MethodGet, "/inventory", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *InventoryGroup) Create(ctx context.Context, req dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	var out dto.InventoryResponse
	if err := g.c.do(ctx, http.MethodPost, "/inventory", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *InventoryGroup) Update(ctx context.Context, id uint, req dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	var out dto.InventoryResponse
	if err := g.c.do(ctx, http.MethodPut, idPath("inventory", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *InventoryGroup) Delete(ctx context.Context, id uint) error {
	return g.c.do(ctx, http.MethodDelete, idPath("inventory", id), nil, nil)
}

// ── Transactions ─────────────────────────────────────────────────────────────

type TransactionsGroup struct{ c *Client }

func (g *TransactionsGroup) List(ctx context.Context) ([]dto.TransactionResponse, error) {
	var out []dto.TransactionResponse
	if err := g.c.do(ctx, http.MethodGet, "/transactions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *TransactionsGroup) Create(ctx context.Context, req dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	var out dto.TransactionResponse
	if err := g.c.do(ctx, http.MethodPost, "/transactions", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *TransactionsGroup) Delete(ctx context.Context, id uint) error {
	return g.c.do(ctx, http.MethodDelete, idPath("transactions", id), nil, nil)
}

// ── Alerts ───────────────────────────────────────────────────────────────────

type AlertsGroup struct{ c *Client }

func (g *AlertsGroup) List(ctx context.Context) ([]dto.AlertResponse, error) {
	var out []dto.AlertResponse
	if err := g.c.do(ctx, http.MethodGet, "/alerts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *AlertsGroup) Create(ctx context.Context, req dto.CreateAlertRequest) (*dto.AlertResponse, error) {
	var out dto.AlertResponse
	if err := g.c.do(ctx, http.MethodPost, "/alerts", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *AlertsGroup) Update(ctx context.Context, id uint, req dto.UpdateAlertRequest) (*dto.AlertResponse, error) {
	var out dto.AlertResponse
	if err := g.c.do(ctx, http.MethodPut, idPath("alerts", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *AlertsGroup) Delete(ctx context.Context, id uint) error {
	return g.c.do(ctx, http.MethodDelete, idPath("alerts", id), nil, nil)
}
