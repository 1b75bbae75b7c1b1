package client

import (
	"context"
	"net/http"

	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/dto"
)

type DashboardGroup struct{ c *Client }

func (g *DashboardGroup) Stats(ctx context.Context) (*dto.DashboardStats, error) {
	var out dto.DashboardStats
	if err := g.c.do(ctx, http.MethodGet, "/dashboard/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *DashboardGroup) InventoryStatus(ctx context.Context) (*dto.InventoryStatusSummary, error) {
	var out dto.InventoryStatusSummary
	if err := g.c.do(ctx, http.MethodGet, "/dashboard/inventory-status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *DashboardGroup) TransactionTrends(ctx context.Context) ([]dto.TransactionTrendPoint, error) {
	var out []dto.TransactionTrendPoint
	if err := g.c.do(ctx, http.MethodGet, "/dashboard/transaction-trends", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *DashboardGroup) LowStockProducts(ctx context.Context) ([]dto.LowStockProduct, error) {
	var out []dto.LowStockProduct
	if err := g.c.do(ctx, http.MethodGet, "/dashboard/low-stock-products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *DashboardGroup) CategoryDistribution(ctx context.Context) ([]dto.CategoryCount, error) {
	var out []dto.CategoryCount
	if err := g.c.do(ctx, http.MethodGet, "/dashboard/category-distribution", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
