package service

import (
	"context"
	"errors"

	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/dto"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/model"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/repository"
)

var ErrSupplierNotFound = errors.New("supplier not found")

type ProductService interface {
	Create(ctx context.Context, req dto.SaveProductRequest) (*dto.ProductResponse, error)
	List(ctx context.Context) ([]dto.ProductResponse, error)
	Update(ctx context.Context, id uint, req dto.SaveProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uint) error
}

type productService struct {
	repo         repository.ProductRepository
	supplierRepo repository.SupplierRepository
	cache        SummaryCache
}

func NewProductService(repo repository.ProductRepository, supplierRepo repository.SupplierRepository, cache SummaryCache) ProductService {
	return &productService{repo: repo, supplierRepo: supplierRepo, cache: cache}
}

func (s *productService) Create(ctx context.Context, req dto.SaveProductRequest) (*dto.ProductResponse, error) {
	if _, err := s.supplierRepo.FindByID(ctx, req.SupplierID); err != nil {
		return nil, ErrSupplierNotFound
	}
	p := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		SupplierID:  req.SupplierID,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	_ = s.cache.Invalidate(ctx)
	return toProductResponse(p), nil
}

func (s *productService) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductResponse, len(products))
	for i := range products {
		resp[i] = *toProductResponse(&products[i])
	}
	return resp, nil
}

func (s *productService) Update(ctx context.Context, id uint, req dto.SaveProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("product not found")
	}
	if _, err := s.supplierRepo.FindByID(ctx, req.SupplierID); err != nil {
		return nil, ErrSupplierNotFound
	}
	p.Name = req.Name
	p.Description = req.Description
	p.Category = req.Category
	p.Price = req.Price
	p.SupplierID = req.SupplierID
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	_ = s.cache.Invalidate(ctx)
	return toProductResponse(p), nil
}

func (s *productService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Invalidate(ctx)
	return nil
}

func toProductResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		SupplierID:  p.SupplierID,
	}
}
