package service

import (
	"errors"
	"testing"
	"time"

	"photo_gallery/internal/models"
)

// mockUserRepo is a lightweight in-test mock for repository.Users.
type mockUserRepo struct {
	CreateFn        func(username, hash string) (int, error)
	GetByUsernameFn func(username string) (*models.UserProfile, error)
	GetByIDFn       func(id int) (*models.UserProfile, error)

	getCalls []string
}

func (m *mockUserRepo) Create(username, hash string) (int, error) {
	return m.CreateFn(username, hash)
}

func (m *mockUserRepo) GetByUsername(username string) (*models.UserProfile, error) {
	m.getCalls = append(m.getCalls, username)
	return m.GetByUsernameFn(username)
}

func (m *mockUserRepo) GetByID(id int) (*models.UserProfile, error) {
	return m.GetByIDFn(id)
}

func testAuthConfig() AuthConfig {
	return AuthConfig{SigningKey: "test-signing-key", TokenTTL: time.Hour}
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	hash, err := HashPassword("letmein")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	user := &models.UserProfile{ID: 7, Username: "diana", PasswordHash: hash}

	mock := &mockUserRepo{
		GetByUsernameFn: func(username string) (*models.UserProfile, error) {
			if username != "diana" {
				t.Fatalf("expected username 'diana', got %q", username)
			}
			return user, nil
		},
	}
	svc := NewAuthService(mock, testAuthConfig())

	token, err := svc.Authenticate("diana", "letmein")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	// The issued token must parse back to the same user id.
	id, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed on a freshly issued token: %v", err)
	}
	if id != 7 {
		t.Fatalf("expected user id 7 from token, got %d", id)
	}
}

func TestAuthService_Authenticate_UnknownUser(t *testing.T) {
	mock := &mockUserRepo{
		GetByUsernameFn: func(username string) (*models.UserProfile, error) {
			return nil, nil // absent record, not an error
		},
	}
	svc := NewAuthService(mock, testAuthConfig())

	_, err := svc.Authenticate("ghost", "whatever")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
	if len(mock.getCalls) != 1 {
		t.Fatalf("expected exactly one lookup, got %d", len(mock.getCalls))
	}
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	hash, err := HashPassword("correct")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	mock := &mockUserRepo{
		GetByUsernameFn: func(username string) (*models.UserProfile, error) {
			return &models.UserProfile{ID: 1, Username: "alice", PasswordHash: hash}, nil
		},
	}
	svc := NewAuthService(mock, testAuthConfig())

	_, err = svc.Authenticate("alice", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
}

func TestAuthService_Authenticate_SameErrorForBothCauses(t *testing.T) {
	hash, _ := HashPassword("correct")
	withUser := &mockUserRepo{
		GetByUsernameFn: func(string) (*models.UserProfile, error) {
			return &models.UserProfile{ID: 1, Username: "alice", PasswordHash: hash}, nil
		},
	}
	withoutUser := &mockUserRepo{
		GetByUsernameFn: func(string) (*models.UserProfile, error) {
			return nil, nil
		},
	}

	_, errMismatch := NewAuthService(withUser, testAuthConfig()).Authenticate("alice", "wrong")
	_, errAbsent := NewAuthService(withoutUser, testAuthConfig()).Authenticate("ghost", "wrong")

	if errMismatch.Error() != errAbsent.Error() {
		t.Fatalf("unknown-user and wrong-password must be indistinguishable: %q vs %q",
			errAbsent.Error(), errMismatch.Error())
	}
}

func TestAuthService_Authenticate_RepoError(t *testing.T) {
	mock := &mockUserRepo{
		GetByUsernameFn: func(string) (*models.UserProfile, error) {
			return nil, errors.New("db down")
		},
	}
	svc := NewAuthService(mock, testAuthConfig())

	_, err := svc.Authenticate("alice", "pw")
	if err == nil {
		t.Fatal("expected error when the store is unavailable")
	}
	if errors.Is(err, ErrInvalidCredentials) {
		t.Fatal("a store fault must not masquerade as bad credentials")
	}
}

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	hash, _ := HashPassword("pw")
	mock := &mockUserRepo{
		GetByUsernameFn: func(string) (*models.UserProfile, error) {
			return &models.UserProfile{ID: 1, Username: "a", PasswordHash: hash}, nil
		},
	}
	issuer := NewAuthService(mock, AuthConfig{SigningKey: "key-one", TokenTTL: time.Hour})
	verifier := NewAuthService(mock, AuthConfig{SigningKey: "key-two", TokenTTL: time.Hour})

	token, err := issuer.Authenticate("a", "pw")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if _, err := verifier.ParseToken(token); err == nil {
		t.Fatal("expected parse failure with a different signing key")
	}
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{}, testAuthConfig())
	if _, err := svc.ParseToken("not-a-token"); err == nil {
		t.Fatal("expected error for a malformed token")
	}
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	hash, _ := HashPassword("pw")
	mock := &mockUserRepo{
		GetByUsernameFn: func(string) (*models.UserProfile, error) {
			return &models.UserProfile{ID: 1, Username: "a", PasswordHash: hash}, nil
		},
	}
	svc := NewAuthService(mock, AuthConfig{SigningKey: "k", TokenTTL: -time.Minute})

	token, err := svc.Authenticate("a", "pw")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if _, err := svc.ParseToken(token); err == nil {
		t.Fatal("expected parse failure for an expired token")
	}
}

func TestAuthService_UserByID(t *testing.T) {
	mock := &mockUserRepo{
		GetByIDFn: func(id int) (*models.UserProfile, error) {
			if id == 5 {
				return &models.UserProfile{ID: 5, Username: "eve"}, nil
			}
			return nil, nil
		},
	}
	svc := NewAuthService(mock, testAuthConfig())

	u, err := svc.UserByID(5)
	if err != nil || u == nil || u.Username != "eve" {
		t.Fatalf("unexpected result: u=%+v err=%v", u, err)
	}

	anon, err := svc.UserByID(99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if anon != nil {
		t.Fatalf("expected nil profile for missing id, got %+v", anon)
	}
}

func TestHashPassword_EmptyRejected(t *testing.T) {
	if _, err := HashPassword(""); err == nil {
		t.Fatal("expected error for empty password")
	}
}
