package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	sessionCookie = "session"

	userIDKey   = "userId"
	usernameKey = "username"
)

// responseHeaders applies the site-wide headers to every response: force the
// latest IE rendering engine and let clients cache with immediate
// revalidation.
func (h *Handler) responseHeaders(c *gin.Context) {
	c.Header("X-UA-Compatible", "IE=Edge,chrome=1")
	c.Header("Cache-Control", "public, max-age=0")
	c.Next()
}

// sessionMiddleware resolves the session cookie to a user profile. Anonymous
// or stale sessions are bounced to the login page instead of getting a 401,
// since every caller here is a browser.
func (h *Handler) sessionMiddleware(c *gin.Context) {
	token, err := c.Cookie(sessionCookie)
	if err != nil || token == "" {
		h.redirectToLogin(c)
		return
	}

	userID, err := h.services.ParseToken(token)
	if err != nil {
		h.redirectToLogin(c)
		return
	}

	u, err := h.services.UserByID(userID)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("session_user_lookup_failed", "err", err)
		}
		h.renderServerError(c)
		return
	}
	if u == nil {
		// Token is valid but the record is gone; treat as anonymous.
		h.clearSession(c)
		h.redirectToLogin(c)
		return
	}

	c.Set(userIDKey, u.ID)
	c.Set(usernameKey, u.Username)
	c.Next()
}

func (h *Handler) redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}

func (h *Handler) setSession(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, token, int(h.cfg.SessionTTL.Seconds()), "/", "", false, true)
}

func (h *Handler) clearSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
}
