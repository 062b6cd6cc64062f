package service

import (
	"io"

	"photo_gallery/internal/storage"
)

// UploadService writes accepted files into the image store and notifies
// gallery subscribers.
type UploadService struct {
	store *storage.DiskStore
	feed  *feed
}

func NewUploadService(store *storage.DiskStore, feed *feed) *UploadService {
	return &UploadService{store: store, feed: feed}
}

// Accept stores the file under its sanitized name and returns the name it was
// stored as. Validation (whitelist, emptiness, traversal) happens in the
// store; the handler has already run form-level checks by the time we get
// here, so any error left is either a disallowed name or a storage fault.
func (s *UploadService) Accept(filename string, content io.Reader) (string, error) {
	stored, err := s.store.Save(filename, content)
	if err != nil {
		return "", err
	}

	if listing, lerr := s.store.List(); lerr == nil {
		s.feed.Publish(listing)
	}
	return stored, nil
}

// Resolve maps a stored filename to its on-disk path for serving.
func (s *UploadService) Resolve(filename string) (string, error) {
	return s.store.Path(filename)
}
