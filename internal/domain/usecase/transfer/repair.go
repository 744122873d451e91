package transfer

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
)

// RepairWallet rewrites a wallet's balance and counters from a replay of its ledger rows.
// The wallet row stays locked while the ledger is read so no movement can interleave.
// The returned reconciliation holds the counters found before the repair.
func (e *Engine) RepairWallet(ctx context.Context, walletID uint64) (*entity.WalletReconciliation, error) {
	if walletID == 0 {
		return nil, fmt.Errorf("%w: wallet id is required", errs.ErrInvalidRequest)
	}

	var (
		report   *entity.WalletReconciliation
		repaired *entity.Wallet
	)
	attempts, err := e.withRetry(ctx, "repair", func(ctx context.Context) error {
		r, w, applyErr := e.applyRepair(ctx, walletID)
		report, repaired = r, w
		return applyErr
	})
	if err != nil {
		err = wrapAttempts("wallet repair", attempts, err)
		e.logFailure("Wallet repair failed", err)
		return nil, err
	}

	if !report.InSync() {
		e.invalidate(ctx, repaired.UserID)
		e.logger.Warn("Wallet repaired from ledger", map[string]any{
			"wallet_id":         walletID,
			"stored_balance":    entity.FormatCoinAmount(report.StoredBalance),
			"replayed_balance":  entity.FormatCoinAmount(report.ReplayedBalance),
			"stored_received":   entity.FormatCoinAmount(report.StoredReceived),
			"replayed_received": entity.FormatCoinAmount(report.ReplayedReceived),
			"stored_spent":      entity.FormatCoinAmount(report.StoredSpent),
			"replayed_spent":    entity.FormatCoinAmount(report.ReplayedSpent),
			"entries_replayed":  report.EntriesReplayed,
		})
	} else {
		e.logger.Info("Wallet already in sync with ledger", map[string]any{
			"wallet_id":        walletID,
			"entries_replayed": report.EntriesReplayed,
		})
	}

	return report, nil
}

func (e *Engine) applyRepair(ctx context.Context, walletID uint64) (*entity.WalletReconciliation, *entity.Wallet, error) {
	txCtx, err := e.uow.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	committed := false
	defer func() {
		if !committed {
			e.rollback(txCtx)
		}
	}()

	wallets := e.uow.GetWalletRepository(txCtx)
	locked, err := wallets.LockForUpdate(txCtx, walletID)
	if err != nil {
		return nil, nil, err
	}
	prev := locked[0]

	entries, err := e.uow.GetTransactionRepository(txCtx).ListForWallet(txCtx, walletID)
	if err != nil {
		return nil, nil, err
	}
	received, spent := entity.ReplayLedger(walletID, entries)

	report := &entity.WalletReconciliation{
		WalletID:         walletID,
		StoredBalance:    prev.Balance,
		StoredReceived:   prev.TotalReceived,
		StoredSpent:      prev.TotalSpent,
		ReplayedBalance:  received - spent,
		ReplayedReceived: received,
		ReplayedSpent:    spent,
		EntriesReplayed:  int64(len(entries)),
	}
	if report.InSync() {
		return report, prev, nil
	}
	if report.ReplayedBalance < 0 {
		return nil, nil, fmt.Errorf("%w: ledger of wallet %d nets to %s", errs.ErrConstraintViolation,
			walletID, entity.FormatCoinAmount(report.ReplayedBalance))
	}

	next := prev.Clone()
	next.Balance = report.ReplayedBalance
	next.TotalReceived = received
	next.TotalSpent = spent
	next.UpdatedAt = e.timeProvider.Now()
	if next.LockedBalance > next.Balance {
		e.logger.Warn("Shrinking locked balance to the replayed balance", map[string]any{
			"wallet_id": walletID,
			"locked":    entity.FormatCoinAmount(next.LockedBalance),
			"balance":   entity.FormatCoinAmount(next.Balance),
		})
		next.LockedBalance = next.Balance
	}

	if err := wallets.ApplyDelta(txCtx, prev, next); err != nil {
		return nil, nil, err
	}
	if err := e.uow.Commit(txCtx); err != nil {
		return nil, nil, err
	}
	committed = true

	return report, next, nil
}
