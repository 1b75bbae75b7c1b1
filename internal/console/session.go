package console

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// Marker cookie names. Role and username are display hints for menu gating
// and the navbar greeting; authorization always happens API-side.
const (
	cookieRole     = "console_role"
	cookieUsername = "console_username"
	cookieFlash    = "console_flash"
	cookieFlashErr = "console_flash_error"
)

type sessionMarkers struct {
	Username string
	Role     string
}

func (con *Console) sessionMarkers(c *gin.Context) sessionMarkers {
	username, _ := c.Cookie(cookieUsername)
	role, _ := c.Cookie(cookieRole)
	return sessionMarkers{Username: username, Role: role}
}

func (con *Console) setSession(c *gin.Context, token, username, role string) {
	maxAge := con.cfg.SessionHours * 3600
	secure := con.cfg.SecureCookies
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(con.cfg.SessionCookieName, token, maxAge, "/", "", secure, true)
	c.SetCookie(cookieUsername, username, maxAge, "/", "", secure, false)
	c.SetCookie(cookieRole, role, maxAge, "/", "", secure, false)
}

// clearSession drops the session and marker cookies. Called on logout
// regardless of whether the API acknowledged it.
func (con *Console) clearSession(c *gin.Context) {
	secure := con.cfg.SecureCookies
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(con.cfg.SessionCookieName, "", -1, "/", "", secure, true)
	c.SetCookie(cookieUsername, "", -1, "/", "", secure, false)
	c.SetCookie(cookieRole, "", -1, "/", "", secure, false)
}

// flash is a one-shot banner carried across a redirect in a cookie and
// consumed on the next render.
type flash struct {
	Message string
	IsError bool
}

func (con *Console) setFlash(c *gin.Context, message string, isError bool) {
	name := cookieFlash
	if isError {
		name = cookieFlashErr
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, url.QueryEscape(message), 60, "/", "", con.cfg.SecureCookies, false)
}

func (con *Console) takeFlash(c *gin.Context) *flash {
	for _, name := range []string{cookieFlashErr, cookieFlash} {
		raw, err := c.Cookie(name)
		if err != nil || raw == "" {
			continue
		}
		c.SetCookie(name, "", -1, "/", "", con.cfg.SecureCookies, false)
		msg, err := url.QueryUnescape(raw)
		if err != nil {
			msg = raw
		}
		return &flash{Message: msg, IsError: name == cookieFlashErr}
	}
	return nil
}
