package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	flashCookie = "flash"

	flashSuccess = "success"
	flashDanger  = "danger"
)

// flashMessage is a one-shot notice rendered on the next page view.
type flashMessage struct {
	Category string
	Message  string
}

// addFlash appends a message to the flash cookie. Messages survive exactly one
// redirect: the next rendered page pops and clears them.
func (h *Handler) addFlash(c *gin.Context, category, message string) {
	var parts []string
	if existing, err := c.Cookie(flashCookie); err == nil && existing != "" {
		parts = strings.Split(existing, "\n")
	}
	parts = append(parts, category+"|"+message)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, strings.Join(parts, "\n"), 300, "/", "", false, true)
}

// popFlashes reads and clears all pending flash messages.
func (h *Handler) popFlashes(c *gin.Context) []flashMessage {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	var flashes []flashMessage
	for _, part := range strings.Split(raw, "\n") {
		category, message, ok := strings.Cut(part, "|")
		if !ok {
			continue
		}
		flashes = append(flashes, flashMessage{Category: category, Message: message})
	}
	return flashes
}

// withFlash appends a message to a page payload being rendered right now.
// Cookie flashes only survive a redirect; a re-rendered form needs its notice
// in the same response.
func withFlash(data gin.H, category, message string) gin.H {
	flashes, _ := data["Flashes"].([]flashMessage)
	data["Flashes"] = append(flashes, flashMessage{Category: category, Message: message})
	return data
}

// withFieldErrorFlashes adds one danger notice per field error to a page
// payload, alongside the inline per-field rendering.
func withFieldErrorFlashes(data gin.H, fieldErrors map[string][]string) gin.H {
	for field, msgs := range fieldErrors {
		for _, msg := range msgs {
			data = withFlash(data, flashDanger, "Error in the "+field+" field - "+msg)
		}
	}
	return data
}
