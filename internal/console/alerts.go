package console

import (
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/client"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/dto"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/model"

	"github.com/gin-gonic/gin"
)

func (con *Console) alertsResource() *resource {
	return &resource{
		Slug:      "alerts",
		Title:     "Alerts",
		Columns:   []string{"ID", "Product", "Type", "Message", "Active"},
		CanCreate: true,
		CanEdit:   true,
		load:      con.loadAlerts,
		submit:    con.saveAlert,
		remove: func(c *gin.Context, api *client.Client, id uint) error {
			return api.Alerts.Delete(c.Request.Context(), id)
		},
	}
}

func (con *Console) loadAlerts(c *gin.Context, api *client.Client) (*resourceData, error) {
	ctx := c.Request.Context()
	alerts, err := api.Alerts.List(ctx)
	if err != nil {
		return nil, err
	}
	records, err := api.Inventory.List(ctx)
	if err != nil {
		return nil, err
	}

	opts := make([]option, 0, len(records))
	for _, rec := range records {
		opts = append(opts, option{Value: uintStr(rec.ID), Label: rec.ProductName})
	}

	rows := make([]row, 0, len(alerts))
	for _, a := range alerts {
		active := cell{Text: "inactive"}
		if a.IsActive {
			active = cell{Text: "active", Color: colorLowStock}
		}
		rows = append(rows, row{
			ID: a.ID,
			Cells: []cell{
				{Text: uintStr(a.ID)},
				{Text: a.ProductName},
				{Text: a.AlertType},
				{Text: a.Message},
				active,
			},
			Form: map[string]string{
				"inventory_id": uintStr(a.InventoryID),
				"alert_type":   a.AlertType,
				"message":      a.Message,
				"is_active":    boolStr(a.IsActive),
			},
		})
	}

	return &resourceData{
		Rows: rows,
		Fields: []field{
			{Name: "inventory_id", Label: "Inventory Record", Type: "select", Options: opts, Required: true},
			{Name: "alert_type", Label: "Type", Type: "select", Required: true, Options: []option{
				{Value: model.AlertLowStock, Label: "Low Stock"},
				{Value: model.AlertHighStock, Label: "High Stock"},
				{Value: model.AlertAnomaly, Label: "Anomaly"},
				{Value: model.AlertCritical, Label: "Critical"},
				{Value: model.AlertReorder, Label: "Reorder"},
			}},
			{Name: "message", Label: "Message", Type: "textarea", Required: true},
			{Name: "is_active", Label: "Active", Type: "checkbox"},
		},
	}, nil
}

func (con *Console) saveAlert(c *gin.Context, api *client.Client, id uint) error {
	ctx := c.Request.Context()
	active := formBool(c, "is_active")
	var err error
	if id == 0 {
		_, err = api.Alerts.Create(ctx, dto.CreateAlertRequest{
			InventoryID: formUint(c, "inventory_id"),
			AlertType:   c.PostForm("alert_type"),
			Message:     c.PostForm("message"),
			IsActive:    &active,
		})
	} else {
		_, err = api.Alerts.Update(ctx, id, dto.UpdateAlertRequest{
			IsActive: &active,
			Message:  c.PostForm("message"),
		})
	}
	return err
}
