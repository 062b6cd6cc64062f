package handlers

import (
	"time"

	"photo_gallery/internal/logger"
	"photo_gallery/internal/service"

	"github.com/gin-gonic/gin"
)

// Config carries the handler layer's own settings.
type Config struct {
	TemplatesGlob string        // e.g. web/templates/*.html
	StaticDir     string        // directory holding the .txt assets
	SessionTTL    time.Duration // lifetime of the session cookie
}

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	cfg      Config
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, cfg Config) *Handler {
	return &Handler{services: services, log: log, cfg: cfg}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.responseHeaders)

	if h.cfg.TemplatesGlob != "" {
		router.LoadHTMLGlob(h.cfg.TemplatesGlob)
	}

	// Public pages
	router.GET("/", h.home)
	router.GET("/about/", h.about)

	// Auth endpoints
	router.GET("/login", h.loginPage)
	router.POST("/login", h.login)
	router.GET("/logout", h.logout)

	// Stored images are an open read, no auth check
	router.GET("/uploads/:filename", h.serveUpload)

	// Live gallery feed
	router.GET("/ws", h.wsGallery)

	// Health endpoint
	router.GET("/health", h.health)

	// Pages behind the session gate
	h.registerProtectedRoutes(router)

	// Static .txt assets and the custom 404 page. A root-level param route
	// would conflict with the static siblings above, so both live in NoRoute.
	router.NoRoute(h.notFound)

	return router
}

func (h *Handler) registerProtectedRoutes(r *gin.Engine) {
	private := r.Group("/", h.sessionMiddleware)
	{
		private.GET("/upload", h.uploadPage)
		private.POST("/upload", h.upload)
		private.GET("/files", h.files)
	}
}
