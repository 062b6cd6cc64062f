package handlers

import (
	"errors"
	"net/http"

	"photo_gallery/internal/forms"
	"photo_gallery/internal/models"
	"photo_gallery/internal/storage"

	"github.com/gin-gonic/gin"
)

func (h *Handler) uploadPage(c *gin.Context) {
	c.HTML(http.StatusOK, "upload.html", h.pageData(c, nil))
}

// upload accepts a multipart image upload. Validation errors come back as
// field errors on the form; only storage faults render the failure page.
func (h *Handler) upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")

	form := forms.UploadForm{HasFile: err == nil}
	if fileHeader != nil {
		form.Filename = fileHeader.Filename
	}
	if res := form.Validate(); !res.Valid() {
		data := h.pageData(c, gin.H{"Errors": res.FieldErrors})
		c.HTML(http.StatusOK, "upload.html", withFieldErrorFlashes(data, res.FieldErrors))
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		if h.log != nil {
			h.log.Errorw("upload_open_failed", "filename", fileHeader.Filename, "err", err)
		}
		h.renderServerError(c)
		return
	}
	defer func() { _ = src.Close() }()

	stored, err := h.services.Accept(fileHeader.Filename, src)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrDisallowedExtension):
			h.rerenderUploadWithError(c, "Only images allowed")
		case errors.Is(err, storage.ErrBadFilename), errors.Is(err, storage.ErrEmptyFile):
			h.rerenderUploadWithError(c, "The file could not be accepted.")
		default:
			if h.log != nil {
				h.log.Errorw("upload_store_failed", "filename", fileHeader.Filename, "err", err)
			}
			h.renderServerError(c)
		}
		return
	}

	if h.log != nil {
		h.log.Infow("upload_stored", "filename", stored)
	}
	h.addFlash(c, flashSuccess, "File Saved as "+stored)
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) rerenderUploadWithError(c *gin.Context, msg string) {
	fieldErrors := map[string][]string{"file": {msg}}
	data := h.pageData(c, gin.H{"Errors": fieldErrors})
	c.HTML(http.StatusOK, "upload.html", withFieldErrorFlashes(data, fieldErrors))
}

// files renders the gallery of stored images.
func (h *Handler) files(c *gin.Context) {
	names, err := h.services.List()
	if err != nil {
		if h.log != nil {
			h.log.Errorw("gallery_list_failed", "err", err)
		}
		h.renderServerError(c)
		return
	}

	images := make([]models.ImageFile, 0, len(names))
	for _, name := range names {
		images = append(images, models.ImageFile{Name: name, URL: "/uploads/" + name})
	}
	c.HTML(http.StatusOK, "files.html", h.pageData(c, gin.H{"Images": images}))
}

// serveUpload streams a stored file by name. Open read: no session required.
func (h *Handler) serveUpload(c *gin.Context) {
	path, err := h.services.Resolve(c.Param("filename"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrBadFilename) {
			c.HTML(http.StatusNotFound, "404.html", h.pageData(c, nil))
			return
		}
		if h.log != nil {
			h.log.Errorw("serve_upload_failed", "filename", c.Param("filename"), "err", err)
		}
		h.renderServerError(c)
		return
	}
	c.File(path)
}
