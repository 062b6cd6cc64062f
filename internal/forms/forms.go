// Package forms holds explicit request-form validation. Each form exposes a
// Validate method returning a Result with per-field error messages, which the
// handlers render inline instead of surfacing exceptions.
package forms

import (
	"strings"

	"photo_gallery/internal/storage"
)

const (
	msgRequired     = "This field is required."
	msgFileRequired = "Please choose a file to upload."
	msgOnlyImages   = "Only images allowed"
)

// Result collects validation errors keyed by form field.
type Result struct {
	FieldErrors map[string][]string
}

func (r Result) Valid() bool {
	return len(r.FieldErrors) == 0
}

func (r *Result) addError(field, msg string) {
	if r.FieldErrors == nil {
		r.FieldErrors = make(map[string][]string)
	}
	r.FieldErrors[field] = append(r.FieldErrors[field], msg)
}

// LoginForm carries submitted credentials. Both fields are required.
type LoginForm struct {
	Username string
	Password string
}

func (f LoginForm) Validate() Result {
	var res Result
	if strings.TrimSpace(f.Username) == "" {
		res.addError("username", msgRequired)
	}
	if f.Password == "" {
		res.addError("password", msgRequired)
	}
	return res
}

// UploadForm carries the upload request's file part. The file must be present
// and carry a whitelisted image extension.
type UploadForm struct {
	Filename string
	HasFile  bool
}

func (f UploadForm) Validate() Result {
	var res Result
	if !f.HasFile || f.Filename == "" {
		res.addError("file", msgFileRequired)
		return res
	}
	if !storage.AllowedExtension(f.Filename) {
		res.addError("file", msgOnlyImages)
	}
	return res
}
