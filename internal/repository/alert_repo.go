package repository

import (
	"context"

	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/model"

	"gorm.io/gorm"
)

type AlertRepository interface {
	Create(ctx context.Context, a *model.Alert) error
	FindByID(ctx context.Context, id uint) (*model.Alert, error)
	// List returns active alerts first, newest within each group, with the
	// inventory record and its product preloaded for the display name.
	List(ctx context.Context) ([]model.Alert, error)
	Update(ctx context.Context, a *model.Alert) error
	Delete(ctx context.Context, id uint) error
}

type alertRepo struct{ db *gorm.DB }

func NewAlertRepository(db *gorm.DB) AlertRepository { return &alertRepo{db: db} }

func (r *alertRepo) Create(ctx context.Context, a *model.Alert) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *alertRepo) FindByID(ctx context.Context, id uint) (*model.Alert, error) {
	var a model.Alert
	err := r.db.WithContext(ctx).Preload("Inventory.Product").First(&a, id).Error
	return &a, err
}

func (r *alertRepo) List(ctx context.Context) ([]model.Alert, error) {
	var alerts []model.Alert
	err := r.db.WithContext(ctx).
		Preload("Inventory.Product").
		Order("is_active DESC, id DESC").
		Find(&alerts).Error
	return alerts, err
}

func (r *alertRepo) Update(ctx context.Context, a *model.Alert) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *alertRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Alert{}, id).Error
}
