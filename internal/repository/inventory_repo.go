package repository

import (
	"context"

	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/model"

	"gorm.io/gorm"
)

type InventoryRepository interface {
	Create(ctx context.Context, rec *model.InventoryRecord) error
	FindByID(ctx context.Context, id uint) (*model.InventoryRecord, error)
	// List returns records with Product preloaded for the joined product name.
	List(ctx context.Context) ([]model.InventoryRecord, error)
	Update(ctx context.Context, rec *model.InventoryRecord) error
	Delete(ctx context.Context, id uint) error
}

type inventoryRepo struct{ db *gorm.DB }

func NewInventoryRepository(db *gorm.DB) InventoryRepository { return &inventoryRepo{db: db} }

func (r *inventoryRepo) Create(ctx context.Context, rec *model.InventoryRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *inventoryRepo) FindByID(ctx context.Context, id uint) (*model.InventoryRecord, error) {
	var rec model.InventoryRecord
	err := r.db.WithContext(ctx).Preload("Product").First(&rec, id).Error
	return &rec, err
}

func (r *inventoryRepo) List(ctx context.Context) ([]model.InventoryRecord, error) {
	var records []model.InventoryRecord
	err := r.db.WithContext(ctx).Preload("Product").Order("id").Find(&records).Error
	return records, err
}

func (r *inventoryRepo) Update(ctx context.Context, rec *model.InventoryRecord) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *inventoryRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.InventoryRecord{}, id).Error
}
