package console

import (
	"net/http"
	"strconv"

	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/client"

	"github.com/gin-gonic/gin"
)

// resource is one CRUD screen: a table, a create/edit form, and per-row
// delete. All six entity screens share the same handler set and template;
// only the descriptor differs.
type resource struct {
	Slug    string // URL segment, e.g. "products"
	Title   string
	Columns []string

	// CanCreate/CanEdit shape the form: transactions are append-only, users
	// are edit-only (registration happens on the auth pages).
	CanCreate bool
	CanEdit   bool

	// load fetches the list (and any foreign-key lookups) and returns table
	// rows plus the form's field set.
	load func(c *gin.Context, api *client.Client) (*resourceData, error)
	// submit applies the form as a create (id == 0) or update.
	submit func(c *gin.Context, api *client.Client, id uint) error
	remove func(c *gin.Context, api *client.Client, id uint) error
}

type resourceData struct {
	Rows   []row
	Fields []field
}

// row is one table entry. Form holds the raw values used to pre-populate the
// edit form when this row is being edited.
type row struct {
	ID    uint
	Cells []cell
	Form  map[string]string
}

type cell struct {
	Text  string
	Color string // optional status chip color
}

// field describes one form input.
type field struct {
	Name     string
	Label    string
	Type     string // text, number, select, textarea, checkbox
	Options  []option
	Required bool
}

type option struct {
	Value string
	Label string
}

// resourceView is what the resource template renders.
type resourceView struct {
	Res       *resource
	Rows      []row
	Fields    []field
	Editing   *row   // nil unless the form is open (edit link or failed submit)
	FormError string // inline error shown in the open form
	Error     string
}

func (con *Console) mountResource(g *gin.RouterGroup, res *resource) {
	g.GET("/"+res.Slug, con.resourceList(res))
	g.POST("/"+res.Slug+"/save", con.resourceSave(res))
	g.POST("/"+res.Slug+"/:id/delete", con.resourceDelete(res))
}

// resourceList renders the screen. Load failure clears the table and shows
// the error instead: the previous list is never kept around.
func (con *Console) resourceList(res *resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		view := resourceView{Res: res}
		data, err := res.load(c, con.apiFor(c))
		if err != nil {
			if isUnauthorized(err) {
				con.clearSession(c)
				c.Redirect(http.StatusFound, "/login")
				return
			}
			view.Error = err.Error()
			con.render(c, http.StatusBadGateway, "resource.html", res.Title, view)
			return
		}
		view.Rows = data.Rows
		view.Fields = data.Fields

		if editID, err := strconv.ParseUint(c.Query("edit"), 10, 32); err == nil {
			for i := range view.Rows {
				if view.Rows[i].ID == uint(editID) {
					view.Editing = &view.Rows[i]
					break
				}
			}
		}
		con.render(c, http.StatusOK, "resource.html", res.Title, view)
	}
}

// resourceSave applies the form. Success redirects back to the list so a
// reload never replays the mutation; failure re-renders the screen with the
// form still open, the submitted values intact, and the error inline.
func (con *Console) resourceSave(res *resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.ParseUint(c.PostForm("id"), 10, 32)
		api := con.apiFor(c)
		if err := res.submit(c, api, uint(id)); err != nil {
			if isUnauthorized(err) {
				con.clearSession(c)
				c.Redirect(http.StatusFound, "/login")
				return
			}
			con.renderFailedSubmit(c, res, api, uint(id), err)
			return
		}
		con.setFlash(c, "saved", false)
		c.Redirect(http.StatusFound, "/"+res.Slug)
	}
}

// renderFailedSubmit keeps the dialog open after a rejected create/update:
// the form is rebuilt from what the user typed, never from the API's stored
// values, so nothing they entered is lost.
func (con *Console) renderFailedSubmit(c *gin.Context, res *resource, api *client.Client, id uint, submitErr error) {
	view := resourceView{Res: res, FormError: submitErr.Error()}
	data, err := res.load(c, api)
	if err != nil {
		view.Error = err.Error()
		con.render(c, http.StatusBadGateway, "resource.html", res.Title, view)
		return
	}
	view.Rows = data.Rows
	view.Fields = data.Fields
	view.Editing = &row{ID: id, Form: submittedForm(c, data.Fields)}
	con.render(c, http.StatusOK, "resource.html", res.Title, view)
}

// submittedForm captures the rejected submission's values keyed the way the
// template pre-populates inputs.
func submittedForm(c *gin.Context, fields []field) map[string]string {
	form := make(map[string]string, len(fields))
	for _, f := range fields {
		v := c.PostForm(f.Name)
		if f.Type == "checkbox" {
			v = boolStr(v == "on" || v == "true")
		}
		form[f.Name] = v
	}
	return form
}

func (con *Console) resourceDelete(res *resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			con.setFlash(c, "invalid id", true)
			c.Redirect(http.StatusFound, "/"+res.Slug)
			return
		}
		if err := res.remove(c, con.apiFor(c), uint(id)); err != nil {
			con.setFlash(c, err.Error(), true)
		} else {
			con.setFlash(c, "deleted", false)
		}
		c.Redirect(http.StatusFound, "/"+res.Slug)
	}
}

// isUnauthorized reports whether the API rejected the session. The console
// reacts by dropping its cookies and bouncing to the login page.
func isUnauthorized(err error) bool {
	apiErr, ok := err.(*client.Error)
	return ok && apiErr.Status == http.StatusUnauthorized
}
