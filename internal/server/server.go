package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/boomchecker/users-api/docs"
	"github.com/boomchecker/users-api/internal/handlers"
	"github.com/boomchecker/users-api/internal/middleware"
	"github.com/boomchecker/users-api/internal/services"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies holds everything the router needs
type Dependencies struct {
	UserService   *services.UserService
	HealthService *services.HealthService

	// Notifier is optional; nil disables user deleted notifications
	Notifier handlers.UserDeletedNotifier

	// EnableSwagger serves the API docs under /swagger
	EnableSwagger bool
}

// NewRouter builds the gin engine with all routes registered
func NewRouter(deps Dependencies) (*gin.Engine, error) {
	if deps.UserService == nil {
		return nil, fmt.Errorf("user service is required")
	}
	if deps.HealthService == nil {
		return nil, fmt.Errorf("health service is required")
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())

	userHandler := handlers.NewUserHandler(deps.UserService, deps.Notifier)
	users := router.Group("/users")
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
	}

	healthHandler := handlers.NewHealthHandler(deps.HealthService)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Readiness)
	router.GET("/health/live", healthHandler.Liveness)

	if deps.EnableSwagger {
		docs.SwaggerInfo.Version = deps.HealthService.Version()
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return router, nil
}

// Run serves handler on addr until ctx is cancelled, then shuts down gracefully
func Run(ctx context.Context, addr string, handler http.Handler, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}
