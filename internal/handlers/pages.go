package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"regexp"

	"github.com/gin-gonic/gin"
)

// pageData assembles the common template payload: pending flashes, field
// errors, and the logged-in username when the session middleware has run.
// Errors and Username always carry typed values so templates can index and
// print them without guards.
func (h *Handler) pageData(c *gin.Context, extra gin.H) gin.H {
	data := gin.H{
		"Flashes":  h.popFlashes(c),
		"Errors":   map[string][]string{},
		"Username": "",
	}
	if name, ok := c.Get(usernameKey); ok {
		data["Username"] = name
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

func (h *Handler) home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", h.pageData(c, nil))
}

func (h *Handler) about(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", h.pageData(c, gin.H{"Name": "Mary Jane"}))
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) renderServerError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{})
	c.Abort()
}

// Bare root-level text assets like /robots.txt.
var txtAssetPattern = regexp.MustCompile(`^/([A-Za-z0-9_-]+\.txt)$`)

// notFound serves the root-level .txt assets and renders the custom 404 page
// for everything else.
func (h *Handler) notFound(c *gin.Context) {
	if m := txtAssetPattern.FindStringSubmatch(c.Request.URL.Path); m != nil && h.cfg.StaticDir != "" {
		asset := filepath.Join(h.cfg.StaticDir, m[1])
		if _, err := os.Stat(asset); err == nil {
			c.File(asset)
			return
		}
	}
	c.HTML(http.StatusNotFound, "404.html", h.pageData(c, nil))
}
