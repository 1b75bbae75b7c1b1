package console

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Form parsing helpers. The console enforces only shape (numeric where
// declared); business rules are the API's job.

func formUint(c *gin.Context, name string) uint {
	v, _ := strconv.ParseUint(c.PostForm(name), 10, 32)
	return uint(v)
}

func formInt(c *gin.Context, name string) int {
	v, _ := strconv.Atoi(c.PostForm(name))
	return v
}

func formBool(c *gin.Context, name string) bool {
	return c.PostForm(name) == "on" || c.PostForm(name) == "true"
}

// optStr maps an empty input to nil so optional columns stay NULL.
func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func uintStr(v uint) string { return strconv.FormatUint(uint64(v), 10) }
func intStr(v int) string   { return strconv.Itoa(v) }
func boolStr(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
