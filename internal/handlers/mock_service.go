package handlers

import (
	"io"
	"net/http"
	"time"

	"photo_gallery/internal/models"
	"photo_gallery/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service mocks ----

type mockAuth struct {
	authToken string
	authErr   error
	parseID   int
	parseErr  error
	user      *models.UserProfile
	userErr   error

	lastAuthUsername string
	lastAuthPassword string
	lastParseToken   string
}

func (m *mockAuth) Authenticate(username, password string) (string, error) {
	m.lastAuthUsername = username
	m.lastAuthPassword = password
	return m.authToken, m.authErr
}

func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

func (m *mockAuth) UserByID(id int) (*models.UserProfile, error) {
	return m.user, m.userErr
}

type mockUploads struct {
	acceptStored string
	acceptErr    error
	resolvePath  string
	resolveErr   error

	lastAcceptName    string
	lastAcceptContent []byte
	acceptCalls       int
}

func (m *mockUploads) Accept(filename string, content io.Reader) (string, error) {
	m.acceptCalls++
	m.lastAcceptName = filename
	m.lastAcceptContent, _ = io.ReadAll(content)
	return m.acceptStored, m.acceptErr
}

func (m *mockUploads) Resolve(filename string) (string, error) {
	return m.resolvePath, m.resolveErr
}

type mockGallery struct {
	listing []string
	listErr error
	updates chan []string
}

func (m *mockGallery) List() ([]string, error) {
	return m.listing, m.listErr
}

func (m *mockGallery) Subscribe() chan []string {
	if m.updates == nil {
		m.updates = make(chan []string, 1)
	}
	return m.updates
}

func (m *mockGallery) Unsubscribe(ch chan []string) {}

// ---- Shared test helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, Config{
		TemplatesGlob: "../../web/templates/*.html",
		StaticDir:     "../../web/static",
		SessionTTL:    time.Hour,
	})
	return h.InitRoutes()
}

// loggedInUser wires a mock auth that accepts any session cookie as user 1.
func loggedInUser() *mockAuth {
	return &mockAuth{
		parseID: 1,
		user:    &models.UserProfile{ID: 1, Username: "alice"},
	}
}

func newSessionCookie(token string) *http.Cookie {
	return &http.Cookie{Name: sessionCookie, Value: token}
}
