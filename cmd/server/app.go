package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/taskhub/taskhub-api/internal/config"
	"github.com/taskhub/taskhub-api/internal/platform/logger"
	"github.com/taskhub/taskhub-api/internal/platform/postgres"
	"github.com/taskhub/taskhub-api/internal/service"
	"github.com/taskhub/taskhub-api/internal/service/auth"
	"github.com/taskhub/taskhub-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore store.UserStore
	taskStore store.TaskStore

	// Service interfaces
	jwtService  auth.JWTService
	authService service.AuthService
	taskService service.TaskService
}

// newApplication loads configuration, sets up logging, connects to the
// database, and wires every service with explicitly injected
// dependencies. There are no package-level singletons: the application
// owns each handle and passes it down.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := openDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}

	// The JWT service constructor re-validates the signing secret;
	// a bad secret aborts startup here rather than failing requests.
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		if cerr := db.Close(); cerr != nil {
			log.Error("failed to close database", "error", cerr)
		}
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	userStore := postgres.NewPostgresUserStore(db, log)
	taskStore := postgres.NewPostgresTaskStore(db, log)

	hasher := auth.NewBcryptHasher()

	app := &application{
		config:      cfg,
		logger:      log,
		db:          db,
		userStore:   userStore,
		taskStore:   taskStore,
		jwtService:  jwtService,
		authService: service.NewAuthService(userStore, hasher, hasher, jwtService, log),
		taskService: service.NewTaskService(taskStore, log),
	}

	return app, nil
}

// cleanup releases resources owned by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", "error", err)
		}
	}
}
