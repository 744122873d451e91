package usecase

import (
	"context"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	"github.com/google/uuid"
)

// TransferUseCase is the only entry point that mutates wallets.
// Every ledger-writing method returns the inserted (or, for a repeated idempotency key,
// the previously inserted) transaction.
type TransferUseCase interface {
	// Execute runs one typed operation as a single atomic unit
	Execute(ctx context.Context, op entity.Operation) (*entity.Transaction, error)

	// SendCoins moves coins between two users
	SendCoins(ctx context.Context, from, to uuid.UUID, d entity.OperationDetails) (*entity.Transaction, error)

	// ConfirmPurchase credits a buyer once payment was confirmed externally
	ConfirmPurchase(ctx context.Context, to uuid.UUID, d entity.OperationDetails) (*entity.Transaction, error)

	// IssueReward credits a user with no counter-party
	IssueReward(ctx context.Context, to uuid.UUID, d entity.OperationDetails) (*entity.Transaction, error)

	// IssueRefund returns coins to a user with no counter-party
	IssueRefund(ctx context.Context, to uuid.UUID, d entity.OperationDetails) (*entity.Transaction, error)

	// Spend debits a user; a nil sink burns the coins
	Spend(ctx context.Context, from uuid.UUID, sink *uuid.UUID, d entity.OperationDetails) (*entity.Transaction, error)

	// Mint issues new coins of a capped coin type to a user
	Mint(ctx context.Context, to uuid.UUID, d entity.OperationDetails) (*entity.Transaction, error)

	// Reserve moves amount of the available balance into locked_balance
	Reserve(ctx context.Context, userID uuid.UUID, coinTypeID uint64, amount int64) (*entity.Wallet, error)

	// Release returns amount of locked_balance to the available balance
	Release(ctx context.Context, userID uuid.UUID, coinTypeID uint64, amount int64) (*entity.Wallet, error)

	// RepairWallet rewrites a wallet's counters from a ledger replay
	RepairWallet(ctx context.Context, walletID uint64) (*entity.WalletReconciliation, error)
}
