package console

import (
	"net/http"

	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type authView struct {
	Error string
}

func (con *Console) LoginPage(c *gin.Context) {
	con.render(c, http.StatusOK, "login.html", "Sign In", authView{})
}

// Login exchanges the form credentials for a session token and re-plants it
// as the console's own cookie, alongside the role/username display markers.
func (con *Console) Login(c *gin.Context) {
	req := dto.LoginRequest{
		Username: c.PostForm("username"),
		Password: c.PostForm("password"),
	}
	resp, token, err := con.api.Auth.Login(c.Request.Context(), req)
	if err != nil {
		con.render(c, http.StatusUnauthorized, "login.html", "Sign In", authView{Error: err.Error()})
		return
	}

	con.setSession(c, token, resp.Username, resp.Role)
	c.Redirect(http.StatusFound, "/")
}

func (con *Console) RegisterPage(c *gin.Context) {
	con.render(c, http.StatusOK, "register.html", "Register", authView{})
}

func (con *Console) Register(c *gin.Context) {
	req := dto.RegisterRequest{
		Username: c.PostForm("username"),
		Password: c.PostForm("password"),
	}
	if _, err := con.api.Auth.Register(c.Request.Context(), req); err != nil {
		con.render(c, http.StatusBadRequest, "register.html", "Register", authView{Error: err.Error()})
		return
	}

	con.setFlash(c, "account created, sign in", false)
	c.Redirect(http.StatusFound, "/login")
}

// Logout clears the local session no matter what the API says: a dead server
// must never trap the user in a signed-in shell.
func (con *Console) Logout(c *gin.Context) {
	if err := con.apiFor(c).Auth.Logout(c.Request.Context()); err != nil {
		log.Warn().Err(err).Msg("logout call failed, clearing local session anyway")
	}
	con.clearSession(c)
	c.Redirect(http.StatusFound, "/login")
}
