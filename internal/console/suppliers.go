package console

import (
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/client"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/dto"

	"github.com/gin-gonic/gin"
)

func (con *Console) suppliersResource() *resource {
	return &resource{
		Slug:      "suppliers",
		Title:     "Suppliers",
		Columns:   []string{"ID", "Name", "Contact Email", "Phone"},
		CanCreate: true,
		CanEdit:   true,
		load:      con.loadSuppliers,
		submit:    con.saveSupplier,
		remove: func(c *gin.Context, api *client.Client, id uint) error {
			return api.Suppliers.Delete(c.Request.Context(), id)
		},
	}
}

func (con *Console) loadSuppliers(c *gin.Context, api *client.Client) (*resourceData, error) {
	suppliers, err := api.Suppliers.List(c.Request.Context())
	if err != nil {
		return nil, err
	}

	rows := make([]row, 0, len(suppliers))
	for _, s := range suppliers {
		rows = append(rows, row{
			ID: s.ID,
			Cells: []cell{
				{Text: uintStr(s.ID)},
				{Text: s.Name},
				{Text: strOrEmpty(s.ContactEmail)},
				{Text: strOrEmpty(s.PhoneNumber)},
			},
			Form: map[string]string{
				"name":          s.Name,
				"contact_email": strOrEmpty(s.ContactEmail),
				"phone_number":  strOrEmpty(s.PhoneNumber),
			},
		})
	}

	return &resourceData{
		Rows: rows,
		Fields: []field{
			{Name: "name", Label: "Name", Type: "text", Required: true},
			{Name: "contact_email", Label: "Contact Email", Type: "text"},
			{Name: "phone_number", Label: "Phone Number", Type: "text"},
		},
	}, nil
}

func (con *Console) saveSupplier(c *gin.Context, api *client.Client, id uint) error {
	req := dto.SaveSupplierRequest{
		Name:         c.PostForm("name"),
		ContactEmail: optStr(c.PostForm("contact_email")),
		PhoneNumber:  optStr(c.PostForm("phone_number")),
	}
	ctx := c.Request.Context()
	var err error
	if id == 0 {
		_, err = api.Suppliers.Create(ctx, req)
	} else {
		_, err = api.Suppliers.Update(ctx, id, req)
	}
	return err
}
