package cointype

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	"github.com/shopspring/decimal"
)

// RecordSample appends a value sample without changing the coin type.
// A zero timestamp records the sample at the current time.
func (r *Registry) RecordSample(ctx context.Context, coinTypeID uint64, value decimal.Decimal, at time.Time) error {
	if coinTypeID == 0 {
		return fmt.Errorf("%w: coin type id is required", errs.ErrInvalidCoinType)
	}
	if !value.IsPositive() {
		return fmt.Errorf("%w: sampled value must be positive", errs.ErrInvalidCoinType)
	}
	if at.IsZero() {
		at = r.timeProvider.Now()
	}

	if _, err := r.coinTypes(ctx).GetByID(ctx, coinTypeID); err != nil {
		return err
	}

	return r.uow.GetValueHistoryRepository(ctx).Record(ctx, &entity.ValueSample{
		CoinTypeID: coinTypeID,
		Value:      value,
		RecordedAt: at,
	})
}

// QueryRange returns samples recorded within [from, to], oldest first
func (r *Registry) QueryRange(ctx context.Context, coinTypeID uint64, from, to time.Time) ([]*entity.ValueSample, error) {
	if from.After(to) {
		return nil, fmt.Errorf("%w: range start %s is after its end %s", errs.ErrInvalidRequest,
			from.Format(time.RFC3339), to.Format(time.RFC3339))
	}
	if _, err := r.coinTypes(ctx).GetByID(ctx, coinTypeID); err != nil {
		return nil, err
	}
	return r.uow.GetValueHistoryRepository(ctx).Range(ctx, coinTypeID, from, to)
}
