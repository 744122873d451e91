package usecase

import (
	"context"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	"github.com/google/uuid"
)

// TransactionPage is one page of a user's ledger
type TransactionPage struct {
	Transactions []*entity.Transaction
	TotalCount   int64
	Limit        int
	Offset       int
}

// WalletUseCase exposes read-only views over wallets and the ledger
type WalletUseCase interface {
	// GetWallets returns all wallets of a user
	GetWallets(ctx context.Context, userID uuid.UUID) ([]*entity.Wallet, error)

	// GetTransactions returns a filtered page of the user's ledger, newest first
	GetTransactions(ctx context.Context, userID uuid.UUID, filter entity.TransactionFilter) (*TransactionPage, error)

	// GetTransactionStats derives totals for a user from the ledger and wallets
	GetTransactionStats(ctx context.Context, userID uuid.UUID) (*entity.TransactionStats, error)

	// ReconcileWallet compares a wallet's stored counters with a ledger replay
	ReconcileWallet(ctx context.Context, walletID uint64) (*entity.WalletReconciliation, error)
}
