package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CoinTypeRepository defines storage operations on coin_types
type CoinTypeRepository interface {
	// Create stores a new coin type and fills in its ID
	//
	// Possible errors:
	// - ErrDuplicateCoinType: If the symbol is taken
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, coinType *entity.CoinType) error

	// GetByID retrieves a coin type
	//
	// Possible errors:
	// - ErrCoinTypeNotFound: If no coin type has that id
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.CoinType, error)

	// GetBySymbol retrieves a coin type by its upper-case symbol
	//
	// Possible errors:
	// - ErrCoinTypeNotFound: If the symbol is unknown
	// - ErrDatabaseConnection: If database connection fails
	GetBySymbol(ctx context.Context, symbol string) (*entity.CoinType, error)

	// List returns coin types ordered by id, optionally only active ones
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	List(ctx context.Context, activeOnly bool) ([]*entity.CoinType, error)

	// RegisterMint grows circulating and total supply by amount in one guarded update
	// that only matches an active coin type whose cap still has room
	//
	// Possible errors:
	// - ErrCoinTypeNotFound: If no coin type has that id
	// - ErrCoinTypeInactive: If the coin type is deactivated
	// - ErrSupplyCapExceeded: If the mint would pass max_supply
	// - ErrDatabaseConnection: If database connection fails
	RegisterMint(ctx context.Context, id uint64, amount int64, now time.Time) error

	// UpdateValue sets current_value
	//
	// Possible errors:
	// - ErrCoinTypeNotFound: If no coin type has that id
	// - ErrDatabaseConnection: If database connection fails
	UpdateValue(ctx context.Context, id uint64, value decimal.Decimal, now time.Time) error

	// SetActive flips is_active
	//
	// Possible errors:
	// - ErrCoinTypeNotFound: If no coin type has that id
	// - ErrDatabaseConnection: If database connection fails
	SetActive(ctx context.Context, id uint64, active bool, now time.Time) error
}
