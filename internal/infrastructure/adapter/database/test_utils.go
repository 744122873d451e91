package database

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/time"
)

// TestDBManager provides a migrated database for tests
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewSQLiteTestManager opens a private in-memory SQLite database with the full schema.
// The pool holds a single connection, so code running inside a unit of work must only use
// repositories obtained from that unit of work. The database is closed when the test ends.
func NewSQLiteTestManager(t *testing.T) *TestDBManager {
	t.Helper()

	name := "ledger_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	config := &Config{
		Driver:        DriverSQLite,
		Path:          fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		MaxOpenConns:  1,
		MaxIdleConns:  1,
		QueryTimeout:  5 * time.Second,
		LogLevel:      getEnvOrDefault("TEST_DB_LOG_LEVEL", "silent"),
		RetryAttempts: 1,
	}

	return newTestDBManager(t, config)
}

// NewPostgresTestManager connects to the database named by TEST_DB_* and skips the test
// when TEST_DB_HOST is unset
func NewPostgresTestManager(t *testing.T) *TestDBManager {
	t.Helper()

	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		t.Skip("TEST_DB_HOST not set; skipping PostgreSQL test")
	}

	config := &Config{
		Driver:          DriverPostgres,
		Host:            host,
		Port:            getEnvIntOrDefault("TEST_DB_PORT", 5432),
		Username:        getEnvOrDefault("TEST_DB_USERNAME", "postgres"),
		Password:        getEnvOrDefault("TEST_DB_PASSWORD", "postgres"),
		Database:        getEnvOrDefault("TEST_DB_DATABASE", "coin_ledger_test"),
		SSLMode:         getEnvOrDefault("TEST_DB_SSL_MODE", "disable"),
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "silent",
		RetryAttempts:   1,
	}

	m := newTestDBManager(t, config)
	m.TruncateAllTables(t)
	return m
}

func newTestDBManager(t *testing.T, config *Config) *TestDBManager {
	t.Helper()

	log := logger.NewNoopLogger()
	tp := timeprovider.NewRealTimeProvider()
	manager := NewManager(config, log, tp)

	ctx := context.Background()
	if _, err := manager.Connect(ctx); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.Migrate(ctx); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       log,
		TimeProvider: tp,
	}
}

// TruncateAllTables empties the ledger tables of a shared PostgreSQL test database.
// TRUNCATE does not fire the append-only row triggers. SQLite test databases are private
// to each test and need no cleanup.
func (m *TestDBManager) TruncateAllTables(t *testing.T) {
	t.Helper()

	db := m.Manager.DB()
	if db.Dialector.Name() != DriverPostgres {
		return
	}
	tables := []string{"coin_transactions", "coin_value_history", "coin_wallets", "coin_types"}
	if err := db.Exec("TRUNCATE TABLE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE").Error; err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
