package service

import (
	"context"
	"errors"

	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/dto"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/model"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/repository"
)

type SupplierService interface {
	Create(ctx context.Context, req dto.SaveSupplierRequest) (*dto.SupplierResponse, error)
	List(ctx context.Context) ([]dto.SupplierResponse, error)
	Update(ctx context.Context, id uint, req dto.SaveSupplierRequest) (*dto.SupplierResponse, error)
	Delete(ctx context.Context, id uint) error
}

type supplierService struct {
	repo  repository.SupplierRepository
	cache SummaryCache
}

func NewSupplierService(repo repository.SupplierRepository, cache SummaryCache) SupplierService {
	return &supplierService{repo: repo, cache: cache}
}

func (s *supplierService) Create(ctx context.Context, req dto.SaveSupplierRequest) (*dto.SupplierResponse, error) {
	sup := &model.Supplier{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		PhoneNumber:  req.PhoneNumber,
	}
	if err := s.repo.Create(ctx, sup); err != nil {
		return nil, err
	}
	_ = s.cache.Invalidate(ctx)
	return toSupplierResponse(sup), nil
}

func (s *supplierService) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	suppliers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SupplierResponse, len(suppliers))
	for i := range suppliers {
		resp[i] = *toSupplierResponse(&suppliers[i])
	}
	return resp, nil
}

func (s *supplierService) Update(ctx context.Context, id uint, req dto.SaveSupplierRequest) (*dto.SupplierResponse, error) {
	sup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("supplier not found")
	}
	sup.Name = req.Name
	sup.ContactEmail = req.ContactEmail
	sup.PhoneNumber = req.PhoneNumber
	if err := s.repo.Update(ctx, sup); err != nil {
		return nil, err
	}
	_ = s.cache.Invalidate(ctx)
	return toSupplierResponse(sup), nil
}

func (s *supplierService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Invalidate(ctx)
	return nil
}

func toSupplierResponse(s *model.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:           s.ID,
		Name:         s.Name,
		ContactEmail: s.ContactEmail,
		PhoneNumber:  s.PhoneNumber,
	}
}
