package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"photo_gallery/internal/handlers"
	"photo_gallery/internal/logger"
	"photo_gallery/internal/repository"
	"photo_gallery/internal/repository/db"
	"photo_gallery/internal/server"
	"photo_gallery/internal/service"
	"photo_gallery/internal/storage"

	"github.com/spf13/viper"
)

func main() {
	// init logger
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(viper.GetString("log.level"))

	// open the credential store
	conn, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// prepare the upload directory
	store := storage.NewDiskStore(uploadDir())
	if err := store.EnsureDir(); err != nil {
		log.Fatalw("failed to prepare upload dir", "err", err)
	}

	// wire dependencies
	repos := repository.NewRepository(conn)
	services := service.NewService(repos, store, authConfig())
	apiHandler := handlers.NewHandler(services, log, handlerConfig())

	// create the configured user if it doesn't exist yet
	if err := seedUser(repos, log); err != nil {
		log.Fatalw("failed to seed user", "err", err)
	}

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

func uploadDir() string {
	dir := viper.GetString("upload.dir")
	if dir == "" {
		dir = "uploads"
	}
	return dir
}

func authConfig() service.AuthConfig {
	ttl := viper.GetDuration("session.ttl")
	if ttl == 0 {
		ttl = time.Hour
	}
	return service.AuthConfig{
		SigningKey: viper.GetString("session.signing_key"),
		TokenTTL:   ttl,
	}
}

func handlerConfig() handlers.Config {
	ttl := viper.GetDuration("session.ttl")
	if ttl == 0 {
		ttl = time.Hour
	}
	return handlers.Config{
		TemplatesGlob: viper.GetString("web.templates"),
		StaticDir:     viper.GetString("web.static"),
		SessionTTL:    ttl,
	}
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "app.db")
		dbPath = "app.db"
	}
	return db.Init(dbPath)
}

// seedUser creates the configured user when it doesn't exist yet. Users are
// provisioned out-of-band: the site itself has no registration flow.
func seedUser(repos *repository.Repository, log *logger.Logger) error {
	username := viper.GetString("seed.username")
	password := viper.GetString("seed.password")
	if username == "" || password == "" {
		return nil
	}

	existing, err := repos.Users.GetByUsername(username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := service.HashPassword(password)
	if err != nil {
		return err
	}
	id, err := repos.Users.Create(username, hash)
	if err != nil {
		return err
	}
	log.Infow("seeded user", "username", username, "id", id)
	return nil
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
