package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "CL"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
	"../../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// envOverrides maps environment variables onto config keys.
// They win over both the config file and viper's automatic CL_<SECTION>_<KEY> binding.
var envOverrides = []struct {
	env string
	key string
	int bool
}{
	{env: "CL_DB_DRIVER", key: "database.driver"},
	{env: "CL_DB_HOST", key: "database.host"},
	{env: "CL_DB_PORT", key: "database.port"},
	{env: "CL_DB_USERNAME", key: "database.username"},
	{env: "CL_DB_PASSWORD", key: "database.password"},
	{env: "CL_DB_NAME", key: "database.database"},
	{env: "CL_DB_SSL_MODE", key: "database.sslMode"},
	{env: "CL_DB_PATH", key: "database.path"},
	{env: "CL_DB_MAX_OPEN_CONNS", key: "database.maxOpenConns", int: true},
	{env: "CL_DB_MAX_IDLE_CONNS", key: "database.maxIdleConns", int: true},
	{env: "CL_DB_QUERY_TIMEOUT_SECONDS", key: "database.queryTimeout", int: true},
	{env: "CL_SERVER_HOST", key: "server.host"},
	{env: "CL_SERVER_PORT", key: "server.port", int: true},
	{env: "CL_LOGGER_LEVEL", key: "logger.level"},
	{env: "CL_TRANSACTION_MAX_RETRIES", key: "transaction.maxRetries", int: true},
	{env: "CL_TRANSACTION_OPERATION_TIMEOUT_MS", key: "transaction.operationTimeoutMs", int: true},
	{env: "CL_CACHE_ENABLED", key: "cache.enabled"},
	{env: "CL_CACHE_ADDR", key: "cache.addr"},
	{env: "CL_CACHE_PASSWORD", key: "cache.password"},
	{env: "CL_CACHE_DB", key: "cache.db", int: true},
	{env: "CL_AUTH_JWT_SECRET", key: "auth.jwtSecret"},
	{env: "CL_AUTH_ISSUER", key: "auth.issuer"},
}

// LoadConfig loads configuration for the environment named by CL_ENV
func LoadConfig() (*Config, error) {
	// Load environment variables from .env file first
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}
	return Load(getEnvironment(), ConfigPaths...)
}

// Load reads <env>.yaml from the first path containing it and applies environment overrides
func Load(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	// Set default values for non-critical settings
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := processEnvOverrides(v); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found; existing variables are not overwritten
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.path", "coin-ledger.db")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("transaction.maxRetries", 5)
	v.SetDefault("transaction.retryIntervalMs", 20)
	v.SetDefault("transaction.maxRetryIntervalMs", 500)
	v.SetDefault("transaction.operationTimeoutMs", 5000)

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.keyPrefix", "coin-ledger:")
	v.SetDefault("cache.ttlSeconds", 30)

	v.SetDefault("auth.issuer", "bloghead")

	v.SetDefault("coins.platformSymbol", "BHC")
	v.SetDefault("coins.platformName", "Bloghead Coin")
	v.SetDefault("coins.platformInitialValue", "0.10")
}

// getEnvironment determines the environment from CL_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides copies set environment variables over config values
func processEnvOverrides(v *viper.Viper) error {
	for _, o := range envOverrides {
		raw, ok := os.LookupEnv(o.env)
		if !ok || raw == "" {
			continue
		}
		if !o.int {
			v.Set(o.key, raw)
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s must be an integer, got %q", o.env, raw)
		}
		v.Set(o.key, n)
	}
	return nil
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	// Seconds
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	// Minutes
	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
}
