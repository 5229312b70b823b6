package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/boomchecker/users-api/internal/services"
)

// Store backends selectable with STORE_BACKEND
const (
	StoreBackendMemory = "memory"
	StoreBackendSQLite = "sqlite"
)

// Config holds the process configuration read from the environment
type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	GinMode         string        `env:"GIN_MODE" envDefault:"debug"`
	StoreBackend    string        `env:"STORE_BACKEND" envDefault:"memory"`
	DBLogLevel      string        `env:"DB_LOG_LEVEL" envDefault:"warn"`
	SwaggerEnabled  bool          `env:"SWAGGER_ENABLED" envDefault:"true"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Deletion notifications are sent only when both addresses are set
	AWSRegion       string `env:"AWS_REGION" envDefault:"us-east-1"`
	NotifyFromEmail string `env:"NOTIFY_FROM_EMAIL"`
	NotifyToEmail   string `env:"NOTIFY_TO_EMAIL"`
}

// Load reads an optional .env file and parses the environment into a Config
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
		log.Println("No .env file found, using process environment")
	}

	cfg, err := Parse()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse builds a Config from the process environment only
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that env tags cannot express
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case StoreBackendMemory, StoreBackendSQLite:
	default:
		return fmt.Errorf("invalid STORE_BACKEND %q: must be %q or %q", c.StoreBackend, StoreBackendMemory, StoreBackendSQLite)
	}
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return ":" + c.Port
}

// UseSQLite reports whether the gorm backed store is selected
func (c *Config) UseSQLite() bool {
	return c.StoreBackend == StoreBackendSQLite
}

// Notification returns the notification service settings
func (c *Config) Notification() *services.NotificationConfig {
	return &services.NotificationConfig{
		FromEmail: c.NotifyFromEmail,
		ToEmail:   c.NotifyToEmail,
		Region:    c.AWSRegion,
	}
}
