package service

import "photo_gallery/internal/storage"

// GalleryService lists stored images. Every List call re-scans the upload
// directory; nothing is cached between requests.
type GalleryService struct {
	store *storage.DiskStore
	feed  *feed
}

func NewGalleryService(store *storage.DiskStore, feed *feed) *GalleryService {
	return &GalleryService{store: store, feed: feed}
}

func (s *GalleryService) List() ([]string, error) {
	return s.store.List()
}

func (s *GalleryService) Subscribe() chan []string {
	return s.feed.Subscribe()
}

func (s *GalleryService) Unsubscribe(ch chan []string) {
	s.feed.Unsubscribe(ch)
}
