package repository

import (
	"context"
	"time"

	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/dto"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/model"

	"gorm.io/gorm"
)

// DashboardRepository runs the aggregation queries behind the five dashboard
// summaries. Reads only; the service layer owns caching.
type DashboardRepository interface {
	Stats(ctx context.Context) (*dto.DashboardStats, error)
	InventoryStatus(ctx context.Context) (*dto.InventoryStatusSummary, error)
	TransactionTrends(ctx context.Context, since time.Time) ([]dto.TransactionTrendPoint, error)
	LowStockProducts(ctx context.Context, limit int) ([]dto.LowStockProduct, error)
	CategoryDistribution(ctx context.Context) ([]dto.CategoryCount, error)
}

type dashboardRepo struct{ db *gorm.DB }

func NewDashboardRepository(db *gorm.DB) DashboardRepository { return &dashboardRepo{db: db} }

func (r *dashboardRepo) Stats(ctx context.Context) (*dto.DashboardStats, error) {
	db := r.db.WithContext(ctx)
	var s dto.DashboardStats

	if err := db.Model(&model.Product{}).Count(&s.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Supplier{}).Count(&s.TotalSuppliers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.InventoryRecord{}).
		Where("quantity <= low_stock_threshold").
		Count(&s.LowStockItems).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Alert{}).
		Where("is_active = ?", true).
		Count(&s.ActiveAlerts).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *dashboardRepo) InventoryStatus(ctx context.Context) (*dto.InventoryStatusSummary, error) {
	var s dto.InventoryStatusSummary
	err := r.db.WithContext(ctx).
		Model(&model.InventoryRecord{}).
		Select(`
			COALESCE(SUM(CASE WHEN quantity > low_stock_threshold THEN 1 ELSE 0 END), 0) AS in_stock,
			COALESCE(SUM(CASE WHEN quantity > 0 AND quantity <= low_stock_threshold THEN 1 ELSE 0 END), 0) AS low_stock,
			COALESCE(SUM(CASE WHEN quantity = 0 THEN 1 ELSE 0 END), 0) AS out_of_stock`).
		Scan(&s).Error
	return &s, err
}

func (r *dashboardRepo) TransactionTrends(ctx context.Context, since time.Time) ([]dto.TransactionTrendPoint, error) {
	var points []dto.TransactionTrendPoint
	err := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Select("to_char(created_at::date, 'YYYY-MM-DD') AS date, type, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("created_at::date, type").
		Order("date").
		Scan(&points).Error
	return points, err
}

func (r *dashboardRepo) LowStockProducts(ctx context.Context, limit int) ([]dto.LowStockProduct, error) {
	var rows []dto.LowStockProduct
	err := r.db.WithContext(ctx).
		Model(&model.InventoryRecord{}).
		Select("products.name AS product_name, inventory_records.quantity, inventory_records.low_stock_threshold").
		Joins("JOIN products ON products.id = inventory_records.product_id").
		Where("inventory_records.quantity <= inventory_records.low_stock_threshold").
		Order("inventory_records.quantity ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepo) CategoryDistribution(ctx context.Context) ([]dto.CategoryCount, error) {
	var rows []dto.CategoryCount
	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Scan(&rows).Error
	return rows, err
}
