package handlers

import (
	"errors"
	"net/http"

	"photo_gallery/internal/forms"
	"photo_gallery/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) loginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", h.pageData(c, nil))
}

// login validates the submitted credentials and establishes a session.
// Unknown username and wrong password produce the same generic message.
func (h *Handler) login(c *gin.Context) {
	form := forms.LoginForm{
		Username: c.PostForm("username"),
		Password: c.PostForm("password"),
	}

	if res := form.Validate(); !res.Valid() {
		data := h.pageData(c, gin.H{
			"Errors":   res.FieldErrors,
			"Username": form.Username,
		})
		c.HTML(http.StatusOK, "login.html", withFieldErrorFlashes(data, res.FieldErrors))
		return
	}

	token, err := h.services.Authenticate(form.Username, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			if h.log != nil {
				h.log.Infow("login_rejected", "username", form.Username)
			}
			data := h.pageData(c, gin.H{"Username": form.Username})
			c.HTML(http.StatusOK, "login.html", withFlash(data, flashDanger, "Invalid username or password."))
			return
		}
		if h.log != nil {
			h.log.Errorw("login_failed", "err", err)
		}
		h.renderServerError(c)
		return
	}

	h.setSession(c, token)
	h.addFlash(c, flashSuccess, "Successfully Logged In")
	c.Redirect(http.StatusFound, "/upload")
}

// logout clears the session. Idempotent: logging out while anonymous is fine.
func (h *Handler) logout(c *gin.Context) {
	h.clearSession(c)
	h.addFlash(c, flashSuccess, "Successfully logged out")
	c.Redirect(http.StatusFound, "/")
}
