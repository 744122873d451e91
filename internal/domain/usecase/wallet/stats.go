package wallet

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GetTransactionStats derives a user's totals.
// Received, spent, count and last activity come from the ledger; locked balance and the
// per-coin breakdown come from the wallets. Valuations always use the current unit values,
// including on a cache hit.
func (u *WalletUseCase) GetTransactionStats(ctx context.Context, userID uuid.UUID) (*entity.TransactionStats, error) {
	if userID == uuid.Nil {
		return nil, errInvalidUser()
	}

	key := StatsCacheKey(userID)
	var cached entity.TransactionStats
	if u.fromCache(ctx, key, &cached) {
		if err := u.applyCurrentValues(ctx, &cached); err != nil {
			return nil, err
		}
		return &cached, nil
	}

	totals, err := u.transactionRepo.TotalsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	wallets, err := u.walletRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &entity.TransactionStats{
		TotalBalance:      totals.Net(),
		TotalReceived:     totals.Received,
		TotalSpent:        totals.Spent,
		TransactionCount:  totals.TransactionCount,
		LastTransactionAt: totals.LastTransactionAt,
		TotalValuation:    decimal.Zero,
		Coins:             make([]entity.CoinStats, 0, len(wallets)),
	}

	for _, w := range wallets {
		coinType, err := u.coinTypeRepo.GetByID(ctx, w.CoinTypeID)
		if err != nil {
			return nil, fmt.Errorf("failed to load coin type %d: %w", w.CoinTypeID, err)
		}

		valuation := entity.Valuation(w.Balance, coinType.CurrentValue)
		stats.LockedBalance += w.LockedBalance
		stats.TotalValuation = stats.TotalValuation.Add(valuation)
		stats.Coins = append(stats.Coins, entity.CoinStats{
			CoinTypeID:    coinType.ID,
			Symbol:        coinType.Symbol,
			Balance:       w.Balance,
			LockedBalance: w.LockedBalance,
			UnitValue:     coinType.CurrentValue,
			Valuation:     valuation,
		})
	}

	u.toCache(ctx, key, stats)
	return stats, nil
}

// applyCurrentValues re-prices cached coin balances after a revaluation
func (u *WalletUseCase) applyCurrentValues(ctx context.Context, stats *entity.TransactionStats) error {
	stats.TotalValuation = decimal.Zero
	for i := range stats.Coins {
		c := &stats.Coins[i]
		coinType, err := u.coinTypeRepo.GetByID(ctx, c.CoinTypeID)
		if err != nil {
			return fmt.Errorf("failed to load coin type %d: %w", c.CoinTypeID, err)
		}
		c.UnitValue = coinType.CurrentValue
		c.Valuation = entity.Valuation(c.Balance, coinType.CurrentValue)
		stats.TotalValuation = stats.TotalValuation.Add(c.Valuation)
	}
	return nil
}

func errInvalidUser() error {
	return fmt.Errorf("%w: user id is required", errs.ErrInvalidUserID)
}
