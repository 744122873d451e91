package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/model"
)

func validPostgresConfig() Config {
	return Config{
		Driver:       DriverPostgres,
		Host:         "localhost",
		Port:         5432,
		Username:     "ledger",
		Password:     "secret",
		Database:     "coin_ledger",
		SSLMode:      "disable",
		MaxOpenConns: 10,
		MaxIdleConns: 5,
		QueryTimeout: 5 * time.Second,
		LogLevel:     "warn",
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid postgres", mutate: func(*Config) {}},
		{name: "valid sqlite", mutate: func(c *Config) { c.Driver = DriverSQLite; c.Path = "ledger.db"; c.Host = "" }},
		{name: "sqlite without path", mutate: func(c *Config) { c.Driver = DriverSQLite }, wantErr: "sqlite database path is required"},
		{name: "unknown driver", mutate: func(c *Config) { c.Driver = "mysql" }, wantErr: "unsupported database driver: mysql"},
		{name: "missing host", mutate: func(c *Config) { c.Host = "" }, wantErr: "database host is required"},
		{name: "port out of range", mutate: func(c *Config) { c.Port = 70000 }, wantErr: "invalid port number: 70000"},
		{name: "missing password", mutate: func(c *Config) { c.Password = "" }, wantErr: "database password is required"},
		{name: "bad ssl mode", mutate: func(c *Config) { c.SSLMode = "sometimes" }, wantErr: "invalid SSL mode: sometimes"},
		{name: "no connections", mutate: func(c *Config) { c.MaxOpenConns = 0 }, wantErr: "max open connections must be positive"},
		{name: "no timeout", mutate: func(c *Config) { c.QueryTimeout = 0 }, wantErr: "query timeout must be positive"},
		{name: "negative retries", mutate: func(c *Config) { c.RetryAttempts = -1 }, wantErr: "retry attempts must be non-negative"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: "invalid log level: loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validPostgresConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfigDSN(t *testing.T) {
	cfg := validPostgresConfig()
	assert.Equal(t, "host=localhost port=5432 user=ledger password=secret dbname=coin_ledger sslmode=disable", cfg.DSN())

	cfg = Config{Driver: DriverSQLite, Path: "file:ledger.db"}
	assert.Equal(t, "file:ledger.db", cfg.DSN())

	assert.Equal(t, "ledger.db?"+sqlitePragmas, sqliteDSN("ledger.db"))
	assert.Equal(t, "file:x?mode=memory&"+sqlitePragmas, sqliteDSN("file:x?mode=memory"))
}

func TestMigrate_Idempotent(t *testing.T) {
	m := NewSQLiteTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.Manager.Migrate(ctx))

	version, err := m.Manager.MigrationManager().GetCurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, migration.CurrentSchemaVersion, version)

	var rows []model.MigrationVersion
	require.NoError(t, m.Manager.DB().Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, DriverSQLite, rows[0].Dialect)

	for _, table := range []string{"coin_types", "coin_wallets", "coin_transactions", "coin_value_history"} {
		assert.True(t, m.Manager.DB().Migrator().HasTable(table), table)
	}
}

func newTestCoin(t *testing.T, symbol string) *entity.CoinType {
	t.Helper()

	c, err := entity.NewCoinType(entity.NewCoinTypeParams{
		Name:         symbol,
		Symbol:       symbol,
		Kind:         entity.KindPlatform,
		InitialValue: decimal.NewFromInt(1),
	}, time.Now().UTC())
	require.NoError(t, err)
	return c
}

func TestUnitOfWork_CommitAndRollback(t *testing.T) {
	m := NewSQLiteTestManager(t)
	uow := m.Manager.CreateUnitOfWork()
	ctx := context.Background()

	txCtx, err := uow.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, uow.GetCoinTypeRepository(txCtx).Create(txCtx, newTestCoin(t, "GONE")))
	require.NoError(t, uow.Rollback(txCtx))

	_, err = uow.GetCoinTypeRepository(ctx).GetBySymbol(ctx, "GONE")
	assert.ErrorIs(t, err, errs.ErrCoinTypeNotFound)

	txCtx, err = uow.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, uow.GetCoinTypeRepository(txCtx).Create(txCtx, newTestCoin(t, "KEPT")))
	require.NoError(t, uow.Commit(txCtx))

	kept, err := uow.GetCoinTypeRepository(ctx).GetBySymbol(ctx, "KEPT")
	require.NoError(t, err)
	assert.Equal(t, "KEPT", kept.Symbol)

	// rolling back a committed transaction is a no-op
	assert.NoError(t, uow.Rollback(txCtx))
}

func TestUnitOfWork_Misuse(t *testing.T) {
	m := NewSQLiteTestManager(t)
	uow := m.Manager.CreateUnitOfWork()
	ctx := context.Background()

	assert.Error(t, uow.Commit(ctx))
	assert.Error(t, uow.Rollback(ctx))

	txCtx, err := uow.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = uow.Rollback(txCtx) }()

	_, err = uow.Begin(txCtx)
	assert.ErrorIs(t, err, errs.ErrInvalidOperation)
}

func TestRetryConnect(t *testing.T) {
	policy := connectPolicy{attempts: 3, baseDelay: time.Millisecond, maxDelay: 2 * time.Millisecond}
	log := logger.NewNoopLogger()

	t.Run("retries while the server is unreachable", func(t *testing.T) {
		calls := 0
		err := retryConnect(context.Background(), policy, log, func() error {
			calls++
			if calls < 3 {
				return errors.New("dial tcp: connection refused")
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after the last attempt", func(t *testing.T) {
		calls := 0
		err := retryConnect(context.Background(), policy, log, func() error {
			calls++
			return errors.New("connection reset by peer")
		})
		assert.Error(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("does not retry authentication failures", func(t *testing.T) {
		calls := 0
		wantErr := errors.New("password authentication failed")
		err := retryConnect(context.Background(), policy, log, func() error {
			calls++
			return wantErr
		})
		assert.ErrorIs(t, err, wantErr)
		assert.Equal(t, 1, calls)
	})

	t.Run("stops when the context ends", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		slow := connectPolicy{attempts: 5, baseDelay: time.Hour, maxDelay: time.Hour}

		err := retryConnect(ctx, slow, log, func() error {
			return errors.New("the database system is starting up")
		})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestConnectPolicy(t *testing.T) {
	p := connectPolicyFor(&Config{RetryAttempts: 0})
	assert.Equal(t, 1, p.attempts)
	assert.Equal(t, 250*time.Millisecond, p.baseDelay)

	p = connectPolicyFor(&Config{RetryAttempts: 4, RetryDelay: 100 * time.Millisecond})
	assert.Equal(t, 4, p.attempts)
	assert.Equal(t, 800*time.Millisecond, p.maxDelay)

	p.jitter = 0.5
	for attempt := 0; attempt < 8; attempt++ {
		base := p.baseDelay << uint(attempt)
		if base > p.maxDelay {
			base = p.maxDelay
		}
		got := p.delay(attempt)
		assert.GreaterOrEqual(t, got, base)
		assert.LessOrEqual(t, got, base+base/2)
	}
}

func TestMetricsCollector(t *testing.T) {
	m := NewSQLiteTestManager(t)
	uow := m.Manager.CreateUnitOfWork()
	ctx := context.Background()
	before := m.Manager.QueryStats()

	txCtx, err := uow.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, uow.Commit(txCtx))

	after := m.Manager.QueryStats()
	assert.Equal(t, before.Operations+1, after.Operations)
	assert.Equal(t, before.Failed, after.Failed)

	c := NewMetricsCollector(logger.NewNoopLogger(), m.TimeProvider)
	_, err = c.MeasureQuery(ctx, "commit", func() (int64, error) { return 0, errors.New("boom") })
	assert.Error(t, err)
	c.RecordWriteConflict()
	assert.Equal(t, QueryStats{Operations: 1, Failed: 1, WriteConflicts: 1}, c.Stats())
}

func TestPoolMetrics(t *testing.T) {
	m := NewSQLiteTestManager(t)

	metrics := m.Manager.PoolMetrics()
	assert.True(t, metrics.Healthy)
	assert.Equal(t, 1, metrics.MaxOpenConnections)
	assert.Empty(t, metrics.LastError)
	assert.False(t, metrics.CollectedAt.IsZero())
	assert.NoError(t, m.Manager.Ping(context.Background()))
}
