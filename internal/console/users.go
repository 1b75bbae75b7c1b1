package console

import (
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/client"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/dto"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/model"

	"github.com/gin-gonic/gin"
)

// usersResource is the admin-only user administration screen. Accounts are
// created on the register page, so the form only edits role and password.
func (con *Console) usersResource() *resource {
	return &resource{
		Slug:      "users",
		Title:     "Users",
		Columns:   []string{"ID", "Username", "Role"},
		CanCreate: false,
		CanEdit:   true,
		load:      con.loadUsers,
		submit:    con.saveUser,
		remove: func(c *gin.Context, api *client.Client, id uint) error {
			return api.Auth.DeleteUser(c.Request.Context(), id)
		},
	}
}

func (con *Console) loadUsers(c *gin.Context, api *client.Client) (*resourceData, error) {
	users, err := api.Auth.ListUsers(c.Request.Context())
	if err != nil {
		return nil, err
	}

	rows := make([]row, 0, len(users))
	for _, u := range users {
		rows = append(rows, row{
			ID: u.ID,
			Cells: []cell{
				{Text: uintStr(u.ID)},
				{Text: u.Username},
				{Text: u.Role},
			},
			Form: map[string]string{
				"role": u.Role,
			},
		})
	}

	return &resourceData{
		Rows: rows,
		Fields: []field{
			{Name: "role", Label: "Role", Type: "select", Required: true, Options: []option{
				{Value: model.RoleStaff, Label: "Staff"},
				{Value: model.RoleAdmin, Label: "Admin"},
			}},
			{Name: "password", Label: "New Password (optional)", Type: "text"},
		},
	}, nil
}

func (con *Console) saveUser(c *gin.Context, api *client.Client, id uint) error {
	_, err := api.Auth.UpdateUser(c.Request.Context(), id, dto.UpdateUserRequest{
		Role:     c.PostForm("role"),
		Password: c.PostForm("password"),
	})
	return err
}
