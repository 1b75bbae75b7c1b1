package service

import (
	"context"
	"errors"
	"testing"

	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/dto"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/model"

	"github.com/stretchr/testify/assert"
)

// ── Shared in-memory stubs ───────────────────────────────────────────────────

type stubCache struct{ invalidations int }

func (c *stubCache) GetJSON(context.Context, string, any) (bool, error) { return false, nil }
func (c *stubCache) SetJSON(context.Context, string, any) error         { return nil }
func (c *stubCache) Invalidate(context.Context) error {
	c.invalidations++
	return nil
}

type stubProductRepo struct {
	products map[uint]*model.Product
	nextID   uint
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uint]*model.Product), nextID: 1}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	p.ID = r.nextID
	r.nextID++
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uint) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return p, nil
}

func (r *stubProductRepo) List(_ context.Context) ([]model.Product, error) {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uint) error {
	delete(r.products, id)
	return nil
}

type stubTransactionRepo struct {
	created []*model.Transaction
	nextID  uint
}

func (r *stubTransactionRepo) CreateWithAdjustment(_ context.Context, t *model.Transaction) error {
	r.nextID++
	t.ID = r.nextID
	r.created = append(r.created, t)
	return nil
}

func (r *stubTransactionRepo) List(_ context.Context) ([]model.Transaction, error) {
	out := make([]model.Transaction, 0, len(r.created))
	for i := len(r.created) - 1; i >= 0; i-- {
		out = append(out, *r.created[i])
	}
	return out, nil
}

func (r *stubTransactionRepo) Delete(_ context.Context, id uint) error {
	for i, t := range r.created {
		if t.ID == id {
			r.created = append(r.created[:i], r.created[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestTransactionCreateRecordsSessionUser(t *testing.T) {
	productRepo := newStubProductRepo()
	_ = productRepo.Create(context.Background(), &model.Product{Name: "Widget"})
	txnRepo := &stubTransactionRepo{}
	cache := &stubCache{}
	svc := NewTransactionService(txnRepo, productRepo, cache)

	resp, err := svc.Create(context.Background(), 42, dto.CreateTransactionRequest{
		ProductID:      1,
		Type:           model.TxSale,
		QuantityChange: -5,
	})

	assert.NoError(t, err)
	assert.Equal(t, uint(42), resp.UserID, "user id must come from the session, not the body")
	assert.Equal(t, "Widget", resp.ProductName)
	assert.Equal(t, -5, resp.QuantityChange)
	assert.Len(t, txnRepo.created, 1)
	assert.Equal(t, uint(42), txnRepo.created[0].UserID)
	assert.Equal(t, 1, cache.invalidations, "mutation must bust the dashboard cache")
}

func TestTransactionCreateUnknownProduct(t *testing.T) {
	svc := NewTransactionService(&stubTransactionRepo{}, newStubProductRepo(), &stubCache{})

	_, err := svc.Create(context.Background(), 1, dto.CreateTransactionRequest{
		ProductID:      99,
		Type:           model.TxPurchase,
		QuantityChange: 10,
	})

	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestTransactionDeleteInvalidatesCache(t *testing.T) {
	productRepo := newStubProductRepo()
	_ = productRepo.Create(context.Background(), &model.Product{Name: "Widget"})
	txnRepo := &stubTransactionRepo{}
	cache := &stubCache{}
	svc := NewTransactionService(txnRepo, productRepo, cache)

	resp, err := svc.Create(context.Background(), 1, dto.CreateTransactionRequest{
		ProductID: 1, Type: model.TxAdjustment, QuantityChange: 3,
	})
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(context.Background(), resp.ID))
	assert.Empty(t, txnRepo.created)
	assert.Equal(t, 2, cache.invalidations)
}
