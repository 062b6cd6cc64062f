package models

// ImageFile is what the gallery page renders for a stored upload: the bare
// filename inside the upload directory, no path and no metadata.
type ImageFile struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
