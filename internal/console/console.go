// Package console is the server-rendered admin UI. It holds no state of its
// own: every page is rebuilt from API responses, and the browser's session
// cookie is forwarded to the API on each call.
package console

import (
	"html/template"
	"net/http"

	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/client"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/config"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/middleware"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Console struct {
	cfg  *config.Config
	api  *client.Client
	tmpl *template.Template
}

func New(cfg *config.Config, api *client.Client) (*Console, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	return &Console{cfg: cfg, api: api, tmpl: tmpl}, nil
}

// Router builds the console's Gin engine: public auth pages plus the
// session-guarded dashboard and entity screens.
func (con *Console) Router() *gin.Engine {
	if con.cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())

	r.GET("/login", con.LoginPage)
	r.POST("/login", con.Login)
	r.GET("/register", con.RegisterPage)
	r.POST("/register", con.Register)
	r.POST("/logout", con.Logout)

	authed := r.Group("/", con.requireSession())
	{
		authed.GET("/", con.Dashboard)

		for _, res := range []*resource{
			con.productsResource(),
			con.suppliersResource(),
			con.inventoryResource(),
			con.transactionsResource(),
			con.alertsResource(),
			con.usersResource(),
		} {
			con.mountResource(authed, res)
		}
	}

	return r
}

// apiFor binds the shared client to the request's session cookie.
func (con *Console) apiFor(c *gin.Context) *client.Client {
	token, _ := c.Cookie(con.cfg.SessionCookieName)
	return con.api.WithSession(token)
}

// requireSession redirects browsers without a session cookie to the login
// page. The API still authorizes every forwarded call; this is navigation
// convenience, not a security boundary.
func (con *Console) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(con.cfg.SessionCookieName); err != nil || token == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// page is the envelope every template receives.
type page struct {
	Title     string
	Username  string
	Role      string
	ShowUsers bool
	Flash     *flash
	Data      interface{}
}

func (con *Console) render(c *gin.Context, status int, name, title string, data interface{}) {
	s := con.sessionMarkers(c)
	p := page{
		Title:     title,
		Username:  s.Username,
		Role:      s.Role,
		ShowUsers: showUsersEntry(s.Role),
		Flash:     con.takeFlash(c),
		Data:      data,
	}
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := con.tmpl.ExecuteTemplate(c.Writer, name, p); err != nil {
		log.Error().Err(err).Str("template", name).Msg("render failed")
	}
}

// showUsersEntry gates the user-administration menu entry. Display only: the
// API independently rejects non-admin calls.
func showUsersEntry(role string) bool {
	return role == model.RoleAdmin
}
