package repository

import (
	"context"

	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/model"

	"gorm.io/gorm"
)

type TransactionRepository interface {
	// CreateWithAdjustment inserts the transaction row and applies its
	// quantity_change to the product's inventory record in one DB transaction,
	// so the log and the stock level never diverge.
	CreateWithAdjustment(ctx context.Context, t *model.Transaction) error
	// List returns the log newest first with Product preloaded.
	List(ctx context.Context) ([]model.Transaction, error)
	Delete(ctx context.Context, id uint) error
}

type transactionRepo struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) TransactionRepository { return &transactionRepo{db: db} }

func (r *transactionRepo) CreateWithAdjustment(ctx context.Context, t *model.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(t).Error; err != nil {
			return err
		}
		return tx.Model(&model.InventoryRecord{}).
			Where("product_id = ?", t.ProductID).
			UpdateColumn("quantity", gorm.Expr("quantity + ?", t.QuantityChange)).Error
	})
}

func (r *transactionRepo) List(ctx context.Context) ([]model.Transaction, error) {
	var txns []model.Transaction
	err := r.db.WithContext(ctx).Preload("Product").Order("created_at DESC").Find(&txns).Error
	return txns, err
}

func (r *transactionRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Transaction{}, id).Error
}
