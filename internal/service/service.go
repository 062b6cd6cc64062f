package service

import (
	"io"
	"time"

	"photo_gallery/internal/models"
	"photo_gallery/internal/repository"
	"photo_gallery/internal/storage"
)

// Authorization validates credentials and resolves session tokens to users.
type Authorization interface {
	Authenticate(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
	UserByID(id int) (*models.UserProfile, error)
}

// Uploads accepts validated file content into the image store and resolves
// stored names back to servable paths.
type Uploads interface {
	Accept(filename string, content io.Reader) (string, error)
	Resolve(filename string) (string, error)
}

// Gallery lists stored images and feeds listing snapshots to subscribers.
type Gallery interface {
	List() ([]string, error)
	Subscribe() chan []string
	Unsubscribe(ch chan []string)
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Uploads
	Gallery
}

// AuthConfig carries token signing parameters loaded from configuration.
type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

// NewService wires the repository and disk store into concrete services.
// The uploads and gallery services share a feed so accepted uploads show up
// on live gallery subscribers.
func NewService(repos *repository.Repository, store *storage.DiskStore, cfg AuthConfig) *Service {
	feed := newFeed()
	return &Service{
		Authorization: NewAuthService(repos.Users, cfg),
		Uploads:       NewUploadService(store, feed),
		Gallery:       NewGalleryService(store, feed),
	}
}
