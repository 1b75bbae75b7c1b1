package service

import (
	"context"
	"errors"
	"testing"

	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/dto"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/model"

	"github.com/stretchr/testify/assert"
)

type stubInventoryRepo struct {
	records map[uint]*model.InventoryRecord
	nextID  uint
}

func newStubInventoryRepo() *stubInventoryRepo {
	return &stubInventoryRepo{records: make(map[uint]*model.InventoryRecord)}
}

func (r *stubInventoryRepo) Create(_ context.Context, rec *model.InventoryRecord) error {
	r.nextID++
	rec.ID = r.nextID
	r.records[rec.ID] = rec
	return nil
}

func (r *stubInventoryRepo) FindByID(_ context.Context, id uint) (*model.InventoryRecord, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return rec, nil
}

func (r *stubInventoryRepo) List(_ context.Context) ([]model.InventoryRecord, error) {
	out := make([]model.InventoryRecord, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, *rec)
	}
	return out, nil
}

func (r *stubInventoryRepo) Update(_ context.Context, rec *model.InventoryRecord) error {
	r.records[rec.ID] = rec
	return nil
}

func (r *stubInventoryRepo) Delete(_ context.Context, id uint) error {
	delete(r.records, id)
	return nil
}

func TestInventoryCreateDefaultsThreshold(t *testing.T) {
	productRepo := newStubProductRepo()
	_ = productRepo.Create(context.Background(), &model.Product{Name: "Widget"})
	cache := &stubCache{}
	svc := NewInventoryService(newStubInventoryRepo(), productRepo, cache)

	resp, err := svc.Create(context.Background(), dto.CreateInventoryRequest{
		ProductID: 1, Quantity: 50,
	})

	assert.NoError(t, err)
	assert.Equal(t, 10, resp.LowStockThreshold)
	assert.Equal(t, model.StatusInStock, resp.Status)
	assert.Equal(t, "Widget", resp.ProductName)
	assert.Equal(t, 1, cache.invalidations)
}

func TestInventoryCreateUnknownProduct(t *testing.T) {
	svc := NewInventoryService(newStubInventoryRepo(), newStubProductRepo(), &stubCache{})

	_, err := svc.Create(context.Background(), dto.CreateInventoryRequest{ProductID: 7, Quantity: 1})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestInventoryStatusDerivation(t *testing.T) {
	productRepo := newStubProductRepo()
	_ = productRepo.Create(context.Background(), &model.Product{Name: "Widget"})
	svc := NewInventoryService(newStubInventoryRepo(), productRepo, &stubCache{})

	created, err := svc.Create(context.Background(), dto.CreateInventoryRequest{
		ProductID: 1, Quantity: 10, LowStockThreshold: 10,
	})
	assert.NoError(t, err)
	assert.Equal(t, model.StatusLowStock, created.Status, "quantity equal to threshold is low stock")

	updated, err := svc.Update(context.Background(), created.ID, dto.UpdateInventoryRequest{
		Quantity: 0, LowStockThreshold: 10,
	})
	assert.NoError(t, err)
	assert.Equal(t, model.StatusOutOfStock, updated.Status)

	updated, err = svc.Update(context.Background(), created.ID, dto.UpdateInventoryRequest{
		Quantity: 11, LowStockThreshold: 10,
	})
	assert.NoError(t, err)
	assert.Equal(t, model.StatusInStock, updated.Status)
}
