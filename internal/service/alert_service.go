package service

import (
	"context"
	"errors"

	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/dto"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/model"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/repository"
)

var ErrInventoryNotFound = errors.New("inventory record not found")

type AlertService interface {
	Create(ctx context.Context, req dto.CreateAlertRequest) (*dto.AlertResponse, error)
	List(ctx context.Context) ([]dto.AlertResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateAlertRequest) (*dto.AlertResponse, error)
	Delete(ctx context.Context, id uint) error
}

type alertService struct {
	repo          repository.AlertRepository
	inventoryRepo repository.InventoryRepository
	cache         SummaryCache
}

func NewAlertService(repo repository.AlertRepository, inventoryRepo repository.InventoryRepository, cache SummaryCache) AlertService {
	return &alertService{repo: repo, inventoryRepo: inventoryRepo, cache: cache}
}

func (s *alertService) Create(ctx context.Context, req dto.CreateAlertRequest) (*dto.AlertResponse, error) {
	rec, err := s.inventoryRepo.FindByID(ctx, req.InventoryID)
	if err != nil {
		return nil, ErrInventoryNotFound
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	alert := &model.Alert{
		InventoryID: req.InventoryID,
		AlertType:   req.AlertType,
		Message:     req.Message,
		IsActive:    active,
	}
	if err := s.repo.Create(ctx, alert); err != nil {
		return nil, err
	}
	_ = s.cache.Invalidate(ctx)

	alert.Inventory = rec
	return toAlertResponse(alert), nil
}

func (s *alertService) List(ctx context.Context) ([]dto.AlertResponse, error) {
	alerts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.AlertResponse, len(alerts))
	for i := range alerts {
		resp[i] = *toAlertResponse(&alerts[i])
	}
	return resp, nil
}

func (s *alertService) Update(ctx context.Context, id uint, req dto.UpdateAlertRequest) (*dto.AlertResponse, error) {
	alert, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("alert not found")
	}
	if req.IsActive != nil {
		alert.IsActive = *req.IsActive
	}
	if req.Message != "" {
		alert.Message = req.Message
	}
	if err := s.repo.Update(ctx, alert); err != nil {
		return nil, err
	}
	_ = s.cache.Invalidate(ctx)
	return toAlertResponse(alert), nil
}

func (s *alertService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Invalidate(ctx)
	return nil
}

func toAlertResponse(a *model.Alert) *dto.AlertResponse {
	name := ""
	if a.Inventory != nil && a.Inventory.Product != nil {
		name = a.Inventory.Product.Name
	}
	return &dto.AlertResponse{
		ID:          a.ID,
		InventoryID: a.InventoryID,
		ProductName: name,
		AlertType:   a.AlertType,
		Message:     a.Message,
		IsActive:    a.IsActive,
	}
}
