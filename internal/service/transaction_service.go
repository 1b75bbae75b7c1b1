package service

import (
	"context"

	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/dto"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/model"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/repository"
)

type TransactionService interface {
	// Create records the movement under the authenticated user. The original
	// client sent a hard-coded user id in the body; here the caller passes the
	// session's user id and any body-supplied value is ignored.
	Create(ctx context.Context, userID uint, req dto.CreateTransactionRequest) (*dto.TransactionResponse, error)
	List(ctx context.Context) ([]dto.TransactionResponse, error)
	Delete(ctx context.Context, id uint) error
}

type transactionService struct {
	repo        repository.TransactionRepository
	productRepo repository.ProductRepository
	cache       SummaryCache
}

func NewTransactionService(repo repository.TransactionRepository, productRepo repository.ProductRepository, cache SummaryCache) TransactionService {
	return &transactionService{repo: repo, productRepo: productRepo, cache: cache}
}

func (s *transactionService) Create(ctx context.Context, userID uint, req dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, ErrProductNotFound
	}

	txn := &model.Transaction{
		ProductID:      req.ProductID,
		UserID:         userID,
		Type:           req.Type,
		QuantityChange: req.QuantityChange,
	}
	if err := s.repo.CreateWithAdjustment(ctx, txn); err != nil {
		return nil, err
	}
	_ = s.cache.Invalidate(ctx)

	txn.Product = product
	return toTransactionResponse(txn), nil
}

func (s *transactionService) List(ctx context.Context) ([]dto.TransactionResponse, error) {
	txns, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.TransactionResponse, len(txns))
	for i := range txns {
		resp[i] = *toTransactionResponse(&txns[i])
	}
	return resp, nil
}

func (s *transactionService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Invalidate(ctx)
	return nil
}

func toTransactionResponse(t *model.Transaction) *dto.TransactionResponse {
	name := ""
	if t.Product != nil {
		name = t.Product.Name
	}
	return &dto.TransactionResponse{
		ID:             t.ID,
		ProductID:      t.ProductID,
		ProductName:    name,
		UserID:         t.UserID,
		Type:           t.Type,
		QuantityChange: t.QuantityChange,
		Timestamp:      t.CreatedAt,
	}
}
