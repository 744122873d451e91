package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const txKey contextKey = "tx"

// UnitOfWork implements the unit of work pattern for database transactions.
// The open transaction travels in the context returned by Begin.
type UnitOfWork struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	metrics      *MetricsCollector
	classifier   *repository.ErrorClassifier
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider, metrics *MetricsCollector) persistence.UnitOfWork {
	if metrics == nil {
		metrics = NewMetricsCollector(logger, timeProvider)
	}
	return &UnitOfWork{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		metrics:      metrics,
		classifier:   repository.NewErrorClassifier(),
	}
}

// Begin starts a new database transaction.
// PostgreSQL runs it at SERIALIZABLE; SQLite transactions are serializable already.
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if _, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return ctx, fmt.Errorf("%w: transaction already open in context", errs.ErrInvalidOperation)
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, u.wrap("failed to begin transaction", tx.Error)
	}

	if tx.Dialector.Name() == DriverPostgres {
		if err := tx.Exec("SET TRANSACTION ISOLATION LEVEL SERIALIZABLE").Error; err != nil {
			tx.Rollback()
			u.logger.Error("Failed to set transaction isolation level", map[string]any{"error": err.Error()})
			return ctx, u.wrap("failed to set transaction isolation level", err)
		}
	}

	u.logger.Debug("Database transaction started", map[string]any{"dialect": tx.Dialector.Name()})
	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	_, err := u.metrics.MeasureQuery(ctx, "commit", func() (int64, error) {
		return 0, tx.Commit().Error
	})
	if err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return u.wrap("failed to commit transaction", err)
	}

	return nil
}

// Rollback rolls back the current transaction. Rolling back a finished transaction is not an error.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Rolling back database transaction", nil)

	err := tx.Rollback().Error
	if err != nil && (strings.Contains(err.Error(), "already been committed or rolled back") ||
		strings.Contains(err.Error(), "no transaction is active")) {
		u.logger.Debug("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}

	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	return nil
}

// GetWalletRepository returns a wallet repository bound to the current transaction
func (u *UnitOfWork) GetWalletRepository(ctx context.Context) persistence.WalletRepository {
	return repository.NewWalletRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// GetTransactionRepository returns a ledger repository bound to the current transaction
func (u *UnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	return repository.NewTransactionRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// GetCoinTypeRepository returns a coin type repository bound to the current transaction
func (u *UnitOfWork) GetCoinTypeRepository(ctx context.Context) persistence.CoinTypeRepository {
	return repository.NewCoinTypeRepository(u.getDbFromContext(ctx), u.logger)
}

// GetValueHistoryRepository returns a value history repository bound to the current transaction
func (u *UnitOfWork) GetValueHistoryRepository(ctx context.Context) persistence.ValueHistoryRepository {
	return repository.NewValueHistoryRepository(u.getDbFromContext(ctx), u.logger)
}

// getDbFromContext retrieves the database instance from context
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx.WithContext(ctx)
	}
	return u.db.WithContext(ctx)
}

// wrap keeps serialization failures recognizable as write conflicts so the caller can retry
func (u *UnitOfWork) wrap(msg string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", msg, err)
	}
	if u.classifier.IsSerializationError(err) || u.classifier.IsLockError(err) {
		u.metrics.RecordWriteConflict()
		return fmt.Errorf("%s: %w: %s", msg, errs.ErrWriteConflict, err.Error())
	}
	return fmt.Errorf("%s: %w", msg, err)
}
