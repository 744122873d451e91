package cointype

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/usecase"
	"github.com/shopspring/decimal"
)

// Registry manages coin types and their value history.
// Supply counters are never touched here; minting belongs to the transfer engine.
type Registry struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.CoinTypeUseCase = (*Registry)(nil)

// NewRegistry creates a new Registry
func NewRegistry(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *Registry {
	return &Registry{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// coinTypes returns a repository bound to ctx, or to the base connection outside a unit
func (r *Registry) coinTypes(ctx context.Context) persistence.CoinTypeRepository {
	return r.uow.GetCoinTypeRepository(ctx)
}

// CreateCoinType validates params, stores the coin type and records its initial value
func (r *Registry) CreateCoinType(ctx context.Context, params entity.NewCoinTypeParams) (*entity.CoinType, error) {
	now := r.timeProvider.Now()
	coinType, err := entity.NewCoinType(params, now)
	if err != nil {
		return nil, err
	}

	err = r.inUnit(ctx, func(txCtx context.Context) error {
		if err := r.uow.GetCoinTypeRepository(txCtx).Create(txCtx, coinType); err != nil {
			return err
		}
		return r.uow.GetValueHistoryRepository(txCtx).Record(txCtx, &entity.ValueSample{
			CoinTypeID: coinType.ID,
			Value:      coinType.CurrentValue,
			RecordedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("Coin type registered", map[string]any{
		"coin_type_id":  coinType.ID,
		"symbol":        coinType.Symbol,
		"kind":          coinType.Kind,
		"initial_value": coinType.InitialValue.String(),
	})
	return coinType, nil
}

// GetCoinType retrieves a coin type
func (r *Registry) GetCoinType(ctx context.Context, id uint64) (*entity.CoinType, error) {
	if id == 0 {
		return nil, fmt.Errorf("%w: coin type id is required", errs.ErrInvalidCoinType)
	}
	return r.coinTypes(ctx).GetByID(ctx, id)
}

// ListCoinTypes lists coin types ordered by id
func (r *Registry) ListCoinTypes(ctx context.Context, activeOnly bool) ([]*entity.CoinType, error) {
	return r.coinTypes(ctx).List(ctx, activeOnly)
}

// GetCurrentValue returns the current unit value of a coin type
func (r *Registry) GetCurrentValue(ctx context.Context, id uint64) (decimal.Decimal, error) {
	coinType, err := r.GetCoinType(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	return coinType.CurrentValue, nil
}

// Deactivate blocks new mutating operations on a coin type. Deactivating twice is a no-op.
func (r *Registry) Deactivate(ctx context.Context, id uint64) (*entity.CoinType, error) {
	var coinType *entity.CoinType
	err := r.inUnit(ctx, func(txCtx context.Context) error {
		repo := r.uow.GetCoinTypeRepository(txCtx)
		current, err := repo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		coinType = current
		if !current.IsActive {
			return nil
		}

		now := r.timeProvider.Now()
		if err := repo.SetActive(txCtx, id, false, now); err != nil {
			return err
		}
		coinType.Deactivate(now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Warn("Coin type deactivated", map[string]any{
		"coin_type_id": coinType.ID,
		"symbol":       coinType.Symbol,
	})
	return coinType, nil
}

// SetCurrentValue changes the unit value and appends a value sample in the same unit
func (r *Registry) SetCurrentValue(ctx context.Context, id uint64, value decimal.Decimal) (*entity.CoinType, error) {
	return r.revalue(ctx, id, func(*entity.CoinType) decimal.Decimal { return value })
}

// RevalueByFans sets the unit value to initial + value_per_fan * fanCount
func (r *Registry) RevalueByFans(ctx context.Context, id uint64, fanCount int64) (*entity.CoinType, error) {
	if fanCount < 0 {
		return nil, fmt.Errorf("%w: fan count cannot be negative", errs.ErrInvalidRequest)
	}
	return r.revalue(ctx, id, func(c *entity.CoinType) decimal.Decimal { return c.ValueForFans(fanCount) })
}

func (r *Registry) revalue(ctx context.Context, id uint64, next func(*entity.CoinType) decimal.Decimal) (*entity.CoinType, error) {
	var (
		coinType *entity.CoinType
		previous decimal.Decimal
	)
	err := r.inUnit(ctx, func(txCtx context.Context) error {
		repo := r.uow.GetCoinTypeRepository(txCtx)
		current, err := repo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := current.EnsureActive(); err != nil {
			return err
		}

		now := r.timeProvider.Now()
		previous = current.CurrentValue
		if err := current.SetCurrentValue(next(current), now); err != nil {
			return err
		}
		if err := repo.UpdateValue(txCtx, id, current.CurrentValue, now); err != nil {
			return err
		}
		if err := r.uow.GetValueHistoryRepository(txCtx).Record(txCtx, &entity.ValueSample{
			CoinTypeID: id,
			Value:      current.CurrentValue,
			RecordedAt: now,
		}); err != nil {
			return err
		}
		coinType = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("Coin type revalued", map[string]any{
		"coin_type_id":   coinType.ID,
		"symbol":         coinType.Symbol,
		"previous_value": previous.String(),
		"current_value":  coinType.CurrentValue.String(),
	})
	return coinType, nil
}

// EnsurePlatformCoin returns the platform coin, creating it on first start.
// A concurrent creator winning the unique symbol race is resolved by re-reading.
func (r *Registry) EnsurePlatformCoin(ctx context.Context, coin usecase.PlatformCoin) (*entity.CoinType, error) {
	existing, err := r.coinTypes(ctx).GetBySymbol(ctx, coin.Symbol)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrCoinTypeNotFound) {
		return nil, err
	}

	created, err := r.CreateCoinType(ctx, entity.NewCoinTypeParams{
		Name:         coin.Name,
		Symbol:       coin.Symbol,
		Kind:         entity.KindPlatform,
		InitialValue: coin.InitialValue,
		IsTradeable:  true,
	})
	if errors.Is(err, errs.ErrDuplicateCoinType) {
		return r.coinTypes(ctx).GetBySymbol(ctx, coin.Symbol)
	}
	return created, err
}

// inUnit runs fn inside one unit of work and rolls back unless it commits
func (r *Registry) inUnit(ctx context.Context, fn func(txCtx context.Context) error) error {
	txCtx, err := r.uow.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(txCtx); err != nil {
		if rbErr := r.uow.Rollback(txCtx); rbErr != nil {
			r.logger.Error("Failed to rollback coin type change", map[string]any{
				"error": rbErr.Error(),
			})
		}
		return err
	}
	return r.uow.Commit(txCtx)
}
