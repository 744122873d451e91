package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/usecase/cointype"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/usecase/transfer"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/usecase/wallet"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger, err := logger.NewZapLogger(logger.Options{
		Production: cfg.Environment == config.Production,
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	ctx := context.Background()
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database and bring the schema up to date
	dbConfig, err := databaseConfig(cfg)
	if err != nil {
		fatal(appLogger, "Invalid database configuration", err)
	}
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		fatal(appLogger, "Failed to connect to database", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Error("Failed to close database", map[string]any{"error": err.Error()})
		}
	}()

	if err := dbManager.Migrate(ctx); err != nil {
		fatal(appLogger, "Failed to run migrations", err)
	}

	// Read cache; the ledger works without it
	var readCache coreport.Cache = cache.NewNoopCache()
	healthChecks := map[string]handler.Pinger{"database": dbManager}
	if cfg.Cache.Enabled {
		redisCache, err := cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:      cfg.Cache.Addr,
			Password:  cfg.Cache.Password,
			DB:        cfg.Cache.DB,
			KeyPrefix: cfg.Cache.KeyPrefix,
		}, appLogger)
		if err != nil {
			appLogger.Warn("Redis unavailable, serving reads without cache", map[string]any{"error": err.Error()})
		} else {
			readCache = redisCache
			healthChecks["cache"] = redisCache
			defer func() { _ = redisCache.Close() }()
		}
	}

	// Initialize repositories
	db := dbManager.DB()
	walletRepo := repository.NewWalletRepository(db, tp, appLogger)
	transactionRepo := repository.NewTransactionRepository(db, tp, appLogger)
	coinTypeRepo := repository.NewCoinTypeRepository(db, appLogger)

	// Initialize use cases
	engine := transfer.NewEngine(dbManager.CreateUnitOfWork(), readCache, tp, appLogger, transfer.Config{
		Retry: transfer.RetryPolicy{
			MaxRetries:    cfg.Transaction.MaxRetries,
			RetryInterval: cfg.Transaction.RetryInterval(),
			MaxInterval:   cfg.Transaction.MaxRetryInterval(),
			JitterFactor:  transfer.DefaultRetryPolicy().JitterFactor,
		},
		OperationTimeout: cfg.Transaction.OperationTimeout(),
	})
	wallets := wallet.NewWalletUseCase(walletRepo, transactionRepo, coinTypeRepo, readCache, cfg.Cache.TTL(), appLogger)
	registry := cointype.NewRegistry(dbManager.CreateUnitOfWork(), tp, appLogger)

	// Ensure the platform coin exists
	platformValue, err := entity.ParseUnitValue(cfg.Coins.PlatformInitialValue)
	if err != nil {
		fatal(appLogger, "Invalid coins.platformInitialValue", err)
	}
	platformCoin, err := migration.SeedPlatformCoin(ctx, registry, usecase.PlatformCoin{
		Symbol:       cfg.Coins.PlatformSymbol,
		Name:         cfg.Coins.PlatformName,
		InitialValue: platformValue,
	})
	if err != nil {
		fatal(appLogger, "Failed to seed platform coin", err)
	}
	appLogger.Info("Platform coin ready", map[string]any{
		"coin_type_id": platformCoin.ID,
		"symbol":       platformCoin.Symbol,
	})

	// Initialize API handlers
	health := handler.NewHealthHandler(healthChecks, 2*time.Second).
		WithDetail("pool", func() any { return dbManager.PoolMetrics() }).
		WithDetail("queries", func() any { return dbManager.QueryStats() })

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, cfg.Server.AllowedOrigins)
	routes.SetupRoutes(router, routes.Handlers{
		Wallets:   handler.NewWalletHandler(wallets, engine, appLogger),
		CoinTypes: handler.NewCoinTypeHandler(registry, tp),
		Admin:     handler.NewAdminHandler(engine, wallets, registry, appLogger),
		Health:    health,
	}, middleware.AuthOptions{
		Secret: cfg.Auth.JWTSecret,
		Issuer: cfg.Auth.Issuer,
	})

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":      server.Addr,
			"env":       cfg.Environment,
			"log_level": appLogger.GetLevel().String(),
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		appLogger.Error("Failed to start server", map[string]any{"error": err.Error()})
		return
	}

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

func fatal(appLogger coreport.Logger, msg string, err error) {
	appLogger.Error(msg, map[string]any{"error": err.Error()})
	_ = appLogger.Flush()
	os.Exit(1)
}

// databaseConfig maps the application config onto the database adapter's config
func databaseConfig(cfg *config.Config) (*database.Config, error) {
	dbConfig := &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		Path:            cfg.Database.Path,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	if dbConfig.Driver == database.DriverPostgres {
		port, err := strconv.Atoi(cfg.Database.Port)
		if err != nil {
			return nil, fmt.Errorf("database.port %q is not a number", cfg.Database.Port)
		}
		dbConfig.Port = port
	}

	if err := dbConfig.Validate(); err != nil {
		return nil, err
	}
	return dbConfig, nil
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Environment should be set with a valid value
	switch cfg.Environment {
	case config.Development, config.Production, config.Test:
	case "":
		missingConfigs = append(missingConfigs, "environment")
	default:
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration; connection fields only matter for PostgreSQL
	switch cfg.Database.Driver {
	case database.DriverPostgres:
		required := map[string]string{
			"database.host":     cfg.Database.Host,
			"database.port":     cfg.Database.Port,
			"database.username": cfg.Database.Username,
			"database.password": cfg.Database.Password,
			"database.database": cfg.Database.Database,
		}
		for _, key := range []string{"database.host", "database.port", "database.username", "database.password", "database.database"} {
			if required[key] == "" {
				missingConfigs = append(missingConfigs, key)
			}
		}
	case database.DriverSQLite:
		if cfg.Database.Path == "" {
			missingConfigs = append(missingConfigs, "database.path")
		}
	case "":
		missingConfigs = append(missingConfigs, "database.driver")
	default:
		return fmt.Errorf("invalid database.driver: %s, must be %s or %s",
			cfg.Database.Driver, database.DriverPostgres, database.DriverSQLite)
	}
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Validate transaction configuration
	if cfg.Transaction.MaxRetries <= 0 {
		missingConfigs = append(missingConfigs, "transaction.maxRetries")
	}
	if cfg.Transaction.OperationTimeoutMs <= 0 {
		missingConfigs = append(missingConfigs, "transaction.operationTimeoutMs")
	}

	// Tokens cannot be verified without a secret
	if cfg.Auth.JWTSecret == "" {
		missingConfigs = append(missingConfigs, "auth.jwtSecret (or CL_AUTH_JWT_SECRET environment variable)")
	}

	if cfg.Cache.Enabled && cfg.Cache.Addr == "" {
		missingConfigs = append(missingConfigs, "cache.addr")
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if cfg.Database.Driver == database.DriverPostgres &&
			sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if cfg.Database.Driver == database.DriverSQLite {
			warnings = append(warnings, "database.driver sqlite is meant for development and tests")
		}
		if len(cfg.Auth.JWTSecret) < 32 {
			warnings = append(warnings, "auth.jwtSecret should be at least 32 bytes in production")
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
