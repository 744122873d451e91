package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// PlatformCoin describes the platform-wide currency ensured at startup
type PlatformCoin struct {
	Symbol       string
	Name         string
	InitialValue decimal.Decimal
}

// CoinTypeUseCase manages the coin type registry and its value history
type CoinTypeUseCase interface {
	// CreateCoinType validates and stores a new coin type, recording its first value sample
	CreateCoinType(ctx context.Context, params entity.NewCoinTypeParams) (*entity.CoinType, error)

	// GetCoinType retrieves a coin type
	GetCoinType(ctx context.Context, id uint64) (*entity.CoinType, error)

	// ListCoinTypes lists coin types
	ListCoinTypes(ctx context.Context, activeOnly bool) ([]*entity.CoinType, error)

	// GetCurrentValue returns the current unit value of a coin type
	GetCurrentValue(ctx context.Context, id uint64) (decimal.Decimal, error)

	// Deactivate blocks all new mutating operations on a coin type
	Deactivate(ctx context.Context, id uint64) (*entity.CoinType, error)

	// SetCurrentValue changes the unit value and appends a value sample atomically
	SetCurrentValue(ctx context.Context, id uint64, value decimal.Decimal) (*entity.CoinType, error)

	// RevalueByFans sets the unit value to initial + value_per_fan * fanCount
	RevalueByFans(ctx context.Context, id uint64, fanCount int64) (*entity.CoinType, error)

	// RecordSample appends a value sample without changing the coin type
	RecordSample(ctx context.Context, coinTypeID uint64, value decimal.Decimal, at time.Time) error

	// QueryRange returns value samples between from and to, oldest first
	QueryRange(ctx context.Context, coinTypeID uint64, from, to time.Time) ([]*entity.ValueSample, error)

	// EnsurePlatformCoin creates the platform coin if it does not exist yet
	EnsurePlatformCoin(ctx context.Context, coin PlatformCoin) (*entity.CoinType, error)
}
