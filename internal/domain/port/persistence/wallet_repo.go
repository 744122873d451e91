package persistence

import (
	"context"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	"github.com/google/uuid"
)

// WalletRepository defines the storage operations on coin_wallets.
// Only the transfer engine may call the mutating methods.
type WalletRepository interface {
	// GetOrCreate returns the wallet for (userID, coinTypeID), creating an empty one if missing.
	// Concurrent callers converge on the same row.
	//
	// Possible errors:
	// - ErrInvalidUserID: If userID is the nil UUID
	// - ErrDatabaseConnection: If database connection fails
	GetOrCreate(ctx context.Context, userID uuid.UUID, coinTypeID uint64) (*entity.Wallet, error)

	// Get retrieves the wallet for (userID, coinTypeID)
	//
	// Possible errors:
	// - ErrWalletNotFound: If the user was never credited in that coin type
	// - ErrDatabaseConnection: If database connection fails
	Get(ctx context.Context, userID uuid.UUID, coinTypeID uint64) (*entity.Wallet, error)

	// GetByID retrieves a wallet by its identifier
	//
	// Possible errors:
	// - ErrWalletNotFound: If no wallet has that id
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Wallet, error)

	// ListByUser returns every wallet owned by userID ordered by coin type
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Wallet, error)

	// LockForUpdate re-reads the given wallets under a row lock, acquiring locks in ascending id order.
	// The result is ordered by id.
	//
	// Possible errors:
	// - ErrWalletNotFound: If any id does not exist
	// - ErrDatabaseConnection: If database connection fails
	LockForUpdate(ctx context.Context, ids ...uint64) ([]*entity.Wallet, error)

	// ApplyDelta writes next over the stored row as a single conditional update that only
	// matches when the row still holds prev's balance and version. On success next.Version
	// is advanced.
	//
	// Possible errors:
	// - ErrWriteConflict: If the row changed since prev was read
	// - ErrConstraintViolation: If next breaks a wallet invariant
	// - ErrDatabaseConnection: If database connection fails
	ApplyDelta(ctx context.Context, prev, next *entity.Wallet) error
}
