package service

import (
	"context"
	"time"

	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/dto"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/repository"
)

// Aggregation window and result cap, matching the original queries.
const (
	trendWindowDays = 30
	lowStockTopN    = 10
)

type DashboardService interface {
	Stats(ctx context.Context) (*dto.DashboardStats, error)
	InventoryStatus(ctx context.Context) (*dto.InventoryStatusSummary, error)
	TransactionTrends(ctx context.Context) ([]dto.TransactionTrendPoint, error)
	LowStockProducts(ctx context.Context) ([]dto.LowStockProduct, error)
	CategoryDistribution(ctx context.Context) ([]dto.CategoryCount, error)
}

type dashboardService struct {
	repo  repository.DashboardRepository
	cache SummaryCache
}

func NewDashboardService(repo repository.DashboardRepository, cache SummaryCache) DashboardService {
	return &dashboardService{repo: repo, cache: cache}
}

func (s *dashboardService) Stats(ctx context.Context) (*dto.DashboardStats, error) {
	var cached dto.DashboardStats
	if hit, err := s.cache.GetJSON(ctx, cacheKeyStats, &cached); err == nil && hit {
		return &cached, nil
	}
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetJSON(ctx, cacheKeyStats, stats)
	return stats, nil
}

func (s *dashboardService) InventoryStatus(ctx context.Context) (*dto.InventoryStatusSummary, error) {
	var cached dto.InventoryStatusSummary
	if hit, err := s.cache.GetJSON(ctx, cacheKeyInventoryStatus, &cached); err == nil && hit {
		return &cached, nil
	}
	summary, err := s.repo.InventoryStatus(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetJSON(ctx, cacheKeyInventoryStatus, summary)
	return summary, nil
}

func (s *dashboardService) TransactionTrends(ctx context.Context) ([]dto.TransactionTrendPoint, error) {
	var cached []dto.TransactionTrendPoint
	if hit, err := s.cache.GetJSON(ctx, cacheKeyTrends, &cached); err == nil && hit {
		return cached, nil
	}
	since := time.Now().AddDate(0, 0, -trendWindowDays)
	points, err := s.repo.TransactionTrends(ctx, since)
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetJSON(ctx, cacheKeyTrends, points)
	return points, nil
}

func (s *dashboardService) LowStockProducts(ctx context.Context) ([]dto.LowStockProduct, error) {
	var cached []dto.LowStockProduct
	if hit, err := s.cache.GetJSON(ctx, cacheKeyLowStock, &cached); err == nil && hit {
		return cached, nil
	}
	rows, err := s.repo.LowStockProducts(ctx, lowStockTopN)
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetJSON(ctx, cacheKeyLowStock, rows)
	return rows, nil
}

func (s *dashboardService) CategoryDistribution(ctx context.Context) ([]dto.CategoryCount, error) {
	var cached []dto.CategoryCount
	if hit, err := s.cache.GetJSON(ctx, cacheKeyCategories, &cached); err == nil && hit {
		return cached, nil
	}
	rows, err := s.repo.CategoryDistribution(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetJSON(ctx, cacheKeyCategories, rows)
	return rows, nil
}
