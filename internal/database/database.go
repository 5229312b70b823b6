package database

import (
	"fmt"
	"log"
	"strings"

	"github.com/boomchecker/users-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	// Pure-Go SQLite driver, registered as "sqlite"
	_ "modernc.org/sqlite"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite
const DriverName = "sqlite"

// MemoryDSN opens a private in-memory database.
// The database lives as long as its single connection, so the pool is pinned to one.
const MemoryDSN = ":memory:"

// Config holds database configuration options
type Config struct {
	// LogLevel sets GORM logging verbosity
	// Silent = no logs, Error = errors only, Warn = warnings + errors, Info = all queries
	LogLevel logger.LogLevel
}

// DefaultConfig returns the configuration used by the server
func DefaultConfig() *Config {
	return &Config{
		LogLevel: logger.Warn,
	}
}

// TestConfig returns configuration suitable for testing
func TestConfig() *Config {
	return &Config{
		LogLevel: logger.Silent,
	}
}

// ParseLogLevel maps a level name (silent, error, warn, info) to a GORM log level
func ParseLogLevel(level string) (logger.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "silent":
		return logger.Silent, nil
	case "error":
		return logger.Error, nil
	case "", "warn", "warning":
		return logger.Warn, nil
	case "info":
		return logger.Info, nil
	default:
		return logger.Warn, fmt.Errorf("invalid database log level: %s (allowed: silent, error, warn, info)", level)
	}
}

// InitDB opens the in-memory database and runs migrations
// Returns a GORM DB instance or an error if initialization fails
func InitDB(config *Config) (*gorm.DB, error) {
	if config == nil {
		config = DefaultConfig()
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(config.LogLevel),
	}

	db, err := gorm.Open(sqlite.New(sqlite.Config{
		DriverName: DriverName,
		DSN:        MemoryDSN,
	}), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	// Every statement goes through one connection: the in-memory database
	// belongs to it, and it serializes all store operations.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)

	if err := Ping(db); err != nil {
		return nil, err
	}

	if err := runMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database initialized successfully")
	return db, nil
}

// runMigrations executes GORM AutoMigrate for all models
func runMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}); err != nil {
		return fmt.Errorf("AutoMigrate failed: %w", err)
	}

	log.Println("Database migrations completed")
	return nil
}

// Close gracefully closes the database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	log.Println("Database connection closed")
	return nil
}

// Ping checks if the database connection is alive
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}
