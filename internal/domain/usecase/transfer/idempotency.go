package transfer

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/persistence"
)

// IdempotencyHandler resolves caller-supplied idempotency keys to existing ledger rows.
// Keys are scoped to the operation's initiator.
type IdempotencyHandler struct {
	transactionRepo persistence.TransactionRepository
	walletRepo      persistence.WalletRepository
}

// NewIdempotencyHandler creates a new IdempotencyHandler
func NewIdempotencyHandler(
	transactionRepo persistence.TransactionRepository,
	walletRepo persistence.WalletRepository,
) *IdempotencyHandler {
	return &IdempotencyHandler{
		transactionRepo: transactionRepo,
		walletRepo:      walletRepo,
	}
}

// CheckIdempotency returns the row the initiator of op previously wrote under op's key.
// An empty key never matches. A key already used for a different operation fails with
// ErrDuplicateTransaction.
func (h *IdempotencyHandler) CheckIdempotency(
	ctx context.Context,
	op entity.Operation,
) (*entity.Transaction, bool, error) {
	key := op.Details().IdempotencyKey
	if key == "" {
		return nil, false, nil
	}

	txn, err := h.transactionRepo.GetByIdempotencyKey(ctx, op.Initiator(), key)
	if err != nil {
		if errors.Is(err, errs.ErrTransactionNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to look up idempotency key: %w", err)
	}

	if err := h.ensureSameOperation(ctx, op, txn); err != nil {
		return nil, false, err
	}
	return txn, true, nil
}

// ensureSameOperation checks that txn records op. The source needs no check because the
// lookup is scoped to the initiator, and debits are initiated by their source.
func (h *IdempotencyHandler) ensureSameOperation(ctx context.Context, op entity.Operation, txn *entity.Transaction) error {
	d := op.Details()
	reused := fmt.Errorf("%w: key %q was used for a different operation", errs.ErrDuplicateTransaction, d.IdempotencyKey)

	if txn.Type != op.Type() || txn.CoinTypeID != d.CoinTypeID || txn.Amount != d.Amount {
		return reused
	}

	to, hasDestination := op.Destination()
	if hasDestination != (txn.ToWalletID != nil) {
		return reused
	}
	if !hasDestination || to == op.Initiator() {
		return nil
	}

	destination, err := h.walletRepo.GetByID(ctx, *txn.ToWalletID)
	if err != nil {
		return fmt.Errorf("failed to resolve replayed destination: %w", err)
	}
	if destination.UserID != to {
		return reused
	}
	return nil
}
