package transfer

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	"github.com/google/uuid"
)

// lockChange mutates a locked wallet snapshot
type lockChange func(w *entity.Wallet, amount int64, now time.Time) error

// Reserve moves amount of the available balance into locked_balance.
// No ledger row is written; the balance itself does not change.
func (e *Engine) Reserve(ctx context.Context, userID uuid.UUID, coinTypeID uint64, amount int64) (*entity.Wallet, error) {
	return e.changeLock(ctx, "reserve", userID, coinTypeID, amount, true, (*entity.Wallet).Lock)
}

// Release returns amount of locked_balance to the available balance.
// Releasing is allowed on deactivated coin types so held funds are never stranded.
func (e *Engine) Release(ctx context.Context, userID uuid.UUID, coinTypeID uint64, amount int64) (*entity.Wallet, error) {
	return e.changeLock(ctx, "release", userID, coinTypeID, amount, false, (*entity.Wallet).Unlock)
}

func (e *Engine) changeLock(
	ctx context.Context,
	operation string,
	userID uuid.UUID,
	coinTypeID uint64,
	amount int64,
	requireActive bool,
	change lockChange,
) (*entity.Wallet, error) {
	if err := e.validator.ValidateLockRequest(userID, coinTypeID, amount); err != nil {
		return nil, err
	}

	var result *entity.Wallet
	attempts, err := e.withRetry(ctx, operation, func(ctx context.Context) error {
		w, applyErr := e.applyLockChange(ctx, userID, coinTypeID, amount, requireActive, change)
		result = w
		return applyErr
	})
	if err != nil {
		transferErr := errs.NewTransferError(operation, coinTypeID, entity.FormatCoinAmount(amount), "", attempts, err)
		e.logFailure("Lock change failed", transferErr)
		return nil, transferErr
	}

	e.invalidate(ctx, userID)

	e.logger.Info("Wallet lock changed", map[string]any{
		"operation":      operation,
		"wallet_id":      result.ID,
		"amount":         entity.FormatCoinAmount(amount),
		"locked_balance": entity.FormatCoinAmount(result.LockedBalance),
		"available":      entity.FormatCoinAmount(result.Available()),
	})
	return result, nil
}

func (e *Engine) applyLockChange(
	ctx context.Context,
	userID uuid.UUID,
	coinTypeID uint64,
	amount int64,
	requireActive bool,
	change lockChange,
) (*entity.Wallet, error) {
	txCtx, err := e.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			e.rollback(txCtx)
		}
	}()

	coinType, err := e.uow.GetCoinTypeRepository(txCtx).GetByID(txCtx, coinTypeID)
	if err != nil {
		return nil, err
	}
	if requireActive {
		if err := coinType.EnsureActive(); err != nil {
			return nil, err
		}
	}

	wallets := e.uow.GetWalletRepository(txCtx)
	w, err := wallets.Get(txCtx, userID, coinTypeID)
	if err != nil {
		return nil, err
	}
	locked, err := wallets.LockForUpdate(txCtx, w.ID)
	if err != nil {
		return nil, err
	}
	prev := locked[0]
	if err := prev.CheckInvariants(); err != nil {
		return nil, err
	}

	next := prev.Clone()
	if err := change(next, amount, e.timeProvider.Now()); err != nil {
		return nil, err
	}
	if err := wallets.ApplyDelta(txCtx, prev, next); err != nil {
		return nil, err
	}

	if err := e.uow.Commit(txCtx); err != nil {
		return nil, err
	}
	committed = true

	return next, nil
}
