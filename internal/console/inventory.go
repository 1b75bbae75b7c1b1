package console

import (
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/client"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/dto"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/model"

	"github.com/gin-gonic/gin"
)

// Chip colors for the three derived stock states.
const (
	colorInStock    = "#4caf50"
	colorLowStock   = "#ff9800"
	colorOutOfStock = "#f44336"
)

func statusColor(status string) string {
	switch status {
	case model.StatusOutOfStock:
		return colorOutOfStock
	case model.StatusLowStock:
		return colorLowStock
	default:
		return colorInStock
	}
}

func statusLabel(status string) string {
	switch status {
	case model.StatusOutOfStock:
		return "Out of Stock"
	case model.StatusLowStock:
		return "Low Stock"
	default:
		return "In Stock"
	}
}

func (con *Console) inventoryResource() *resource {
	return &resource{
		Slug:      "inventory",
		Title:     "Inventory",
		Columns:   []string{"ID", "Product", "Quantity", "Low Stock Threshold", "Status"},
		CanCreate: true,
		CanEdit:   true,
		load:      con.loadInventory,
		submit:    con.saveInventory,
		remove: func(c *gin.Context, api *client.Client, id uint) error {
			return api.Inventory.Delete(c.Request.Context(), id)
		},
	}
}

func (con *Console) loadInventory(c *gin.Context, api *client.Client) (*resourceData, error) {
	ctx := c.Request.Context()
	records, err := api.Inventory.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := api.Products.List(ctx)
	if err != nil {
		return nil, err
	}

	opts := make([]option, 0, len(products))
	for _, p := range products {
		opts = append(opts, option{Value: uintStr(p.ID), Label: p.Name})
	}

	rows := make([]row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, row{
			ID: rec.ID,
			Cells: []cell{
				{Text: uintStr(rec.ID)},
				{Text: rec.ProductName},
				{Text: intStr(rec.Quantity)},
				{Text: intStr(rec.LowStockThreshold)},
				{Text: statusLabel(rec.Status), Color: statusColor(rec.Status)},
			},
			Form: map[string]string{
				"product_id":          uintStr(rec.ProductID),
				"quantity":            intStr(rec.Quantity),
				"low_stock_threshold": intStr(rec.LowStockThreshold),
			},
		})
	}

	return &resourceData{
		Rows: rows,
		Fields: []field{
			{Name: "product_id", Label: "Product", Type: "select", Options: opts, Required: true},
			{Name: "quantity", Label: "Quantity", Type: "number", Required: true},
			{Name: "low_stock_threshold", Label: "Low Stock Threshold", Type: "number"},
		},
	}, nil
}

// saveInventory: the product binding is fixed at creation, so updates only
// carry quantity and threshold.
func (con *Console) saveInventory(c *gin.Context, api *client.Client, id uint) error {
	ctx := c.Request.Context()
	var err error
	if id == 0 {
		_, err = api.Inventory.Create(ctx, dto.CreateInventoryRequest{
			ProductID:         formUint(c, "product_id"),
			Quantity:          formInt(c, "quantity"),
			LowStockThreshold: formInt(c, "low_stock_threshold"),
		})
	} else {
		_, err = api.Inventory.Update(ctx, id, dto.UpdateInventoryRequest{
			Quantity:          formInt(c, "quantity"),
			LowStockThreshold: formInt(c, "low_stock_threshold"),
		})
	}
	return err
}
