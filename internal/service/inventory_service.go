package service

import (
	"context"
	"errors"

	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/dto"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/model"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/repository"
)

var ErrProductNotFound = errors.New("product not found")

// defaultLowStockThreshold matches the original schema default when the
// create request leaves the threshold at zero.
const defaultLowStockThreshold = 10

type InventoryService interface {
	Create(ctx context.Context, req dto.CreateInventoryRequest) (*dto.InventoryResponse, error)
	List(ctx context.Context) ([]dto.InventoryResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateInventoryRequest) (*dto.InventoryResponse, error)
	Delete(ctx context.Context, id uint) error
}

type inventoryService struct {
	repo        repository.InventoryRepository
	productRepo repository.ProductRepository
	cache       SummaryCache
}

func NewInventoryService(repo repository.InventoryRepository, productRepo repository.ProductRepository, cache SummaryCache) InventoryService {
	return &inventoryService{repo: repo, productRepo: productRepo, cache: cache}
}

func (s *inventoryService) Create(ctx context.Context, req dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, ErrProductNotFound
	}
	threshold := req.LowStockThreshold
	if threshold == 0 {
		threshold = defaultLowStockThreshold
	}
	rec := &model.InventoryRecord{
		ProductID:         req.ProductID,
		Quantity:          req.Quantity,
		LowStockThreshold: threshold,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	_ = s.cache.Invalidate(ctx)
	rec.Product = product
	return toInventoryResponse(rec), nil
}

func (s *inventoryService) List(ctx context.Context) ([]dto.InventoryResponse, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.InventoryResponse, len(records))
	for i := range records {
		resp[i] = *toInventoryResponse(&records[i])
	}
	return resp, nil
}

func (s *inventoryService) Update(ctx context.Context, id uint, req dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("inventory record not found")
	}
	rec.Quantity = req.Quantity
	rec.LowStockThreshold = req.LowStockThreshold
	if rec.LowStockThreshold == 0 {
		rec.LowStockThreshold = defaultLowStockThreshold
	}
	if err := s.repo.Update(ctx, rec); err != nil {
		return nil, err
	}
	_ = s.cache.Invalidate(ctx)
	return toInventoryResponse(rec), nil
}

func (s *inventoryService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Invalidate(ctx)
	return nil
}

func toInventoryResponse(rec *model.InventoryRecord) *dto.InventoryResponse {
	name := ""
	if rec.Product != nil {
		name = rec.Product.Name
	}
	return &dto.InventoryResponse{
		ID:                rec.ID,
		ProductID:         rec.ProductID,
		ProductName:       name,
		Quantity:          rec.Quantity,
		LowStockThreshold: rec.LowStockThreshold,
		Status:            model.StockStatus(rec.Quantity, rec.LowStockThreshold),
	}
}
