package console

import (
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/client"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/dto"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/model"

	"github.com/gin-gonic/gin"
)

// transactionsResource is append-only: records can be created and deleted but
// never edited.
func (con *Console) transactionsResource() *resource {
	return &resource{
		Slug:      "transactions",
		Title:     "Transactions",
		Columns:   []string{"ID", "Product", "User", "Type", "Quantity Change", "Timestamp"},
		CanCreate: true,
		CanEdit:   false,
		load:      con.loadTransactions,
		submit:    con.saveTransaction,
		remove: func(c *gin.Context, api *client.Client, id uint) error {
			return api.Transactions.Delete(c.Request.Context(), id)
		},
	}
}

func (con *Console) loadTransactions(c *gin.Context, api *client.Client) (*resourceData, error) {
	ctx := c.Request.Context()
	txns, err := api.Transactions.List(ctx)
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

	rows := make([]row, 0, len(txns))
	for _, t := range txns {
		rows = append(rows, row{
			ID: t.ID,
			Cells: []cell{
				{Text: uintStr(t.ID)},
				{Text: t.ProductName},
				{Text: uintStr(t.UserID)},
				{Text: t.Type},
				{Text: intStr(t.QuantityChange)},
				{Text: t.Timestamp.Format("2006-01-02 15:04")},
			},
		})
	}

	return &resourceData{
		Rows: rows,
		Fields: []field{
			{Name: "product_id", Label: "Product", Type: "select", Options: opts, Required: true},
			{Name: "type", Label: "Type", Type: "select", Required: true, Options: []option{
				{Value: model.TxPurchase, Label: "Purchase"},
				{Value: model.TxSale, Label: "Sale"},
				{Value: model.TxAdjustment, Label: "Adjustment"},
			}},
			{Name: "quantity_change", Label: "Quantity Change", Type: "number", Required: true},
		},
	}, nil
}

func (con *Console) saveTransaction(c *gin.Context, api *client.Client, _ uint) error {
	_, err := api.Transactions.Create(c.Request.Context(), dto.CreateTransactionRequest{
		ProductID:      formUint(c, "product_id"),
		Type:           c.PostForm("type"),
		QuantityChange: formInt(c, "quantity_change"),
	})
	return err
}
