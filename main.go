package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/boomchecker/users-api/internal/config"
	"github.com/boomchecker/users-api/internal/database"
	"github.com/boomchecker/users-api/internal/handlers"
	"github.com/boomchecker/users-api/internal/repositories"
	"github.com/boomchecker/users-api/internal/server"
	"github.com/boomchecker/users-api/internal/services"
)

// @title Users API
// @version 1.0
// @description In-memory CRUD service for user records with liveness and readiness reporting.
// @BasePath /
func main() {
	startedAt := time.Now()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	userRepo, closeStore, err := newUserRepository(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize user store: %v", err)
	}
	defer closeStore()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var notifier handlers.UserDeletedNotifier
	if notifyCfg := cfg.Notification(); notifyCfg.Enabled() {
		notificationService, err := services.NewNotificationService(ctx, notifyCfg)
		if err != nil {
			log.Printf("Warning: user deleted notifications disabled: %v", err)
		} else {
			notifier = notificationService
			log.Printf("User deleted notifications enabled, sending to %s", notifyCfg.ToEmail)
		}
	}

	healthService := services.NewHealthService(startedAt, services.DefaultVersionResolvers()...)
	log.Printf("Starting Users API version %s", healthService.Version())

	router, err := server.NewRouter(server.Dependencies{
		UserService:   services.NewUserService(userRepo),
		HealthService: healthService,
		Notifier:      notifier,
		EnableSwagger: cfg.SwaggerEnabled,
	})
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	if err := server.Run(ctx, cfg.Addr(), router, cfg.ShutdownTimeout); err != nil {
		log.Printf("ERROR: %v", err)
	}
}

// newUserRepository selects the store backend; the returned func releases it
func newUserRepository(cfg *config.Config) (repositories.UserRepository, func(), error) {
	if !cfg.UseSQLite() {
		log.Println("Using in-memory map user store")
		return repositories.NewMemoryUserRepository(), func() {}, nil
	}

	level, err := database.ParseLogLevel(cfg.DBLogLevel)
	if err != nil {
		return nil, nil, err
	}

	db, err := database.InitDB(&database.Config{LogLevel: level})
	if err != nil {
		return nil, nil, err
	}
	log.Println("Using in-memory SQLite user store")

	closeDB := func() {
		if err := database.Close(db); err != nil {
			log.Printf("Warning: failed to close database: %v", err)
		}
	}
	return repositories.NewGormUserRepository(db), closeDB, nil
}
