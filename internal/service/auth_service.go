package service

import (
	"errors"
	"fmt"
	"time"

	"photo_gallery/internal/models"
	"photo_gallery/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both unknown-username and wrong-password so a
// caller cannot tell which one occurred.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthService validates credentials against the user store and issues the
// signed tokens that back browser sessions.
type AuthService struct {
	users repository.Users
	cfg   AuthConfig
}

func NewAuthService(users repository.Users, cfg AuthConfig) *AuthService {
	return &AuthService{users: users, cfg: cfg}
}

// Claims defines the session token claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID int `json:"user_id"`
}

// Authenticate looks the user up and verifies the password hash, returning a
// signed session token on success. The lookup result is checked before any
// hash comparison, so an absent user never reaches verification.
func (s *AuthService) Authenticate(username, password string) (string, error) {
	u, err := s.users.GetByUsername(username)
	if err != nil {
		return "", fmt.Errorf("look up user: %w", err)
	}
	if u == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.issueToken(u.ID)
}

// ParseToken parses a session token and returns the bound user id.
func (s *AuthService) ParseToken(accessToken string) (int, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SigningKey), nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}

// UserByID resolves a session's user id to its profile, or (nil, nil) when the
// record no longer exists. This is the per-request session identity loader.
func (s *AuthService) UserByID(id int) (*models.UserProfile, error) {
	return s.users.GetByID(id)
}

func (s *AuthService) issueToken(userID int) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	return token.SignedString([]byte(s.cfg.SigningKey))
}

// HashPassword produces the stored form of a password. Used by the seed path.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
