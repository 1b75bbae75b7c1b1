package console

import (
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/client"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func (con *Console) productsResource() *resource {
	return &resource{
		Slug:      "products",
		Title:     "Products",
		Columns:   []string{"ID", "Name", "Description", "Category", "Price", "Supplier"},
		CanCreate: true,
		CanEdit:   true,
		load:      con.loadProducts,
		submit:    con.saveProduct,
		remove: func(c *gin.Context, api *client.Client, id uint) error {
			return api.Products.Delete(c.Request.Context(), id)
		},
	}
}

// loadProducts fetches the product list plus the supplier list for the
// foreign-key select; supplier ids resolve to names by linear lookup.
func (con *Console) loadProducts(c *gin.Context, api *client.Client) (*resourceData, error) {
	ctx := c.Request.Context()
	products, err := api.Products.List(ctx)
	if err != nil {
		return nil, err
	}
	suppliers, err := api.Suppliers.List(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[uint]string, len(suppliers))
	opts := make([]option, 0, len(suppliers))
	for _, s := range suppliers {
		names[s.ID] = s.Name
		opts = append(opts, option{Value: uintStr(s.ID), Label: s.Name})
	}

	rows := make([]row, 0, len(products))
	for _, p := range products {
		rows = append(rows, row{
			ID: p.ID,
			Cells: []cell{
				{Text: uintStr(p.ID)},
				{Text: p.Name},
				{Text: strOrEmpty(p.Description)},
				{Text: p.Category},
				{Text: p.Price.StringFixed(2)},
				{Text: names[p.SupplierID]},
			},
			Form: map[string]string{
				"name":        p.Name,
				"description": strOrEmpty(p.Description),
				"category":    p.Category,
				"price":       p.Price.String(),
				"supplier_id": uintStr(p.SupplierID),
			},
		})
	}

	return &resourceData{
		Rows: rows,
		Fields: []field{
			{Name: "name", Label: "Name", Type: "text", Required: true},
			{Name: "description", Label: "Description", Type: "textarea"},
			{Name: "category", Label: "Category", Type: "text"},
			{Name: "price", Label: "Price", Type: "number", Required: true},
			{Name: "supplier_id", Label: "Supplier", Type: "select", Options: opts, Required: true},
		},
	}, nil
}

func (con *Console) saveProduct(c *gin.Context, api *client.Client, id uint) error {
	price, err := decimal.NewFromString(c.PostForm("price"))
	if err != nil {
		return err
	}
	req := dto.SaveProductRequest{
		Name:        c.PostForm("name"),
		Description: optStr(c.PostForm("description")),
		Category:    c.PostForm("category"),
		Price:       price,
		SupplierID:  formUint(c, "supplier_id"),
	}
	ctx := c.Request.Context()
	if id == 0 {
		_, err = api.Products.Create(ctx, req)
	} else {
		_, err = api.Products.Update(ctx, id, req)
	}
	return err
}
