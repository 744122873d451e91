package persistence

import (
	"context"
)

// UnitOfWork coordinates one database transaction across the ledger repositories
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetWalletRepository returns a wallet repository bound to the current transaction
	GetWalletRepository(ctx context.Context) WalletRepository

	// GetTransactionRepository returns a transaction repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository

	// GetCoinTypeRepository returns a coin type repository bound to the current transaction
	GetCoinTypeRepository(ctx context.Context) CoinTypeRepository

	// GetValueHistoryRepository returns a value history repository bound to the current transaction
	GetValueHistoryRepository(ctx context.Context) ValueHistoryRepository
}
