package persistence

import (
	"context"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	"github.com/google/uuid"
)

// TransactionRepository defines the append-only operations on coin_transactions.
// Rows are never updated or deleted.
type TransactionRepository interface {
	// Create appends a ledger row and fills in its ID and CreatedAt
	//
	// Possible errors:
	// - ErrDuplicateTransaction: If the initiator already wrote a row with the same idempotency key
	// - ErrInvalidOperation: If the row fails structural validation
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, tx *entity.Transaction) error

	// GetByID retrieves a ledger row by id
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no row has that id
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Transaction, error)

	// GetByIdempotencyKey retrieves the row initiatedBy wrote under a caller-supplied key
	//
	// Possible errors:
	// - ErrTransactionNotFound: If that user never used the key
	// - ErrDatabaseConnection: If database connection fails
	GetByIdempotencyKey(ctx context.Context, initiatedBy uuid.UUID, key string) (*entity.Transaction, error)

	// ListForUser returns a page of rows touching any wallet of userID, newest first,
	// together with the total number of matching rows
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListForUser(ctx context.Context, userID uuid.UUID, filter entity.TransactionFilter) ([]*entity.Transaction, int64, error)

	// ListForWallet returns every row touching walletID in application order
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListForWallet(ctx context.Context, walletID uint64) ([]*entity.Transaction, error)

	// TotalsForUser aggregates received, spent, count and last timestamp over the user's wallets
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	TotalsForUser(ctx context.Context, userID uuid.UUID) (entity.LedgerTotals, error)
}
