package service

import (
	"context"
	"errors"
	"testing"

	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/dto"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type stubSupplierRepo struct {
	suppliers map[uint]*model.Supplier
	nextID    uint
}

func newStubSupplierRepo() *stubSupplierRepo {
	return &stubSupplierRepo{suppliers: make(map[uint]*model.Supplier)}
}

func (r *stubSupplierRepo) Create(_ context.Context, s *model.Supplier) error {
	r.nextID++
	s.ID = r.nextID
	r.suppliers[s.ID] = s
	return nil
}

func (r *stubSupplierRepo) FindByID(_ context.Context, id uint) (*model.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return s, nil
}

func (r *stubSupplierRepo) List(_ context.Context) ([]model.Supplier, error) {
	out := make([]model.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubSupplierRepo) Update(_ context.Context, s *model.Supplier) error {
	r.suppliers[s.ID] = s
	return nil
}

func (r *stubSupplierRepo) Delete(_ context.Context, id uint) error {
	delete(r.suppliers, id)
	return nil
}

func TestProductCreateChecksSupplier(t *testing.T) {
	supplierRepo := newStubSupplierRepo()
	_ = supplierRepo.Create(context.Background(), &model.Supplier{Name: "Acme"})
	cache := &stubCache{}
	svc := NewProductService(newStubProductRepo(), supplierRepo, cache)

	req := dto.SaveProductRequest{
		Name:       "Widget",
		Price:      decimal.NewFromFloat(9.99),
		SupplierID: 1,
	}
	resp, err := svc.Create(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, "Widget", resp.Name)
	assert.Equal(t, 1, cache.invalidations)

	req.SupplierID = 99
	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrSupplierNotFound)
}

func TestProductUpdateReplacesFields(t *testing.T) {
	supplierRepo := newStubSupplierRepo()
	_ = supplierRepo.Create(context.Background(), &model.Supplier{Name: "Acme"})
	productRepo := newStubProductRepo()
	svc := NewProductService(productRepo, supplierRepo, &stubCache{})

	created, err := svc.Create(context.Background(), dto.SaveProductRequest{
		Name: "Widget", Price: decimal.NewFromInt(5), SupplierID: 1,
	})
	assert.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, dto.SaveProductRequest{
		Name: "Widget Pro", Category: "tools", Price: decimal.NewFromInt(7), SupplierID: 1,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Widget Pro", updated.Name)
	assert.Equal(t, "tools", updated.Category)
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(7)))
}
