package repository

import (
	"database/sql"

	"photo_gallery/internal/models"
)

// Users is the credential store. Lookups return (nil, nil) when no record
// matches, so callers can branch on absence without error comparisons.
type Users interface {
	Create(username, passwordHash string) (int, error)
	GetByUsername(username string) (*models.UserProfile, error)
	GetByID(id int) (*models.UserProfile, error)
}

type Repository struct {
	Users Users
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users: NewUserRepository(db),
	}
}
