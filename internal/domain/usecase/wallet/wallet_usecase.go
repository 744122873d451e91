package wallet

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/usecase"
	"github.com/google/uuid"
)

// DefaultCacheTTL bounds how long a cached view can outlive a missed invalidation
const DefaultCacheTTL = 30 * time.Second

// WalletUseCase serves read-only views over wallets and the ledger. It never writes.
type WalletUseCase struct {
	walletRepo      persistence.WalletRepository
	transactionRepo persistence.TransactionRepository
	coinTypeRepo    persistence.CoinTypeRepository
	cache           coreport.Cache
	cacheTTL        time.Duration
	logger          coreport.Logger
}

var _ usecase.WalletUseCase = (*WalletUseCase)(nil)

// NewWalletUseCase creates a new WalletUseCase
func NewWalletUseCase(
	walletRepo persistence.WalletRepository,
	transactionRepo persistence.TransactionRepository,
	coinTypeRepo persistence.CoinTypeRepository,
	cache coreport.Cache,
	cacheTTL time.Duration,
	logger coreport.Logger,
) *WalletUseCase {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &WalletUseCase{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		coinTypeRepo:    coinTypeRepo,
		cache:           cache,
		cacheTTL:        cacheTTL,
		logger:          logger,
	}
}

// GetWallets returns all wallets of a user ordered by coin type
func (u *WalletUseCase) GetWallets(ctx context.Context, userID uuid.UUID) ([]*entity.Wallet, error) {
	if userID == uuid.Nil {
		return nil, errInvalidUser()
	}

	key := WalletsCacheKey(userID)
	var cached []*entity.Wallet
	if u.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	wallets, err := u.walletRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	u.toCache(ctx, key, wallets)
	return wallets, nil
}

// GetTransactions returns a filtered page of the user's ledger, newest first
func (u *WalletUseCase) GetTransactions(
	ctx context.Context,
	userID uuid.UUID,
	filter entity.TransactionFilter,
) (*usecase.TransactionPage, error) {
	if userID == uuid.Nil {
		return nil, errInvalidUser()
	}

	filter = filter.Normalize()
	transactions, total, err := u.transactionRepo.ListForUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	return &usecase.TransactionPage{
		Transactions: transactions,
		TotalCount:   total,
		Limit:        filter.Limit,
		Offset:       filter.Offset,
	}, nil
}

// ReconcileWallet compares a wallet's stored counters with a replay of its ledger.
// Nothing is locked; a movement committed in between shows up as drift.
func (u *WalletUseCase) ReconcileWallet(ctx context.Context, walletID uint64) (*entity.WalletReconciliation, error) {
	w, err := u.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, err
	}

	entries, err := u.transactionRepo.ListForWallet(ctx, walletID)
	if err != nil {
		return nil, err
	}
	received, spent := entity.ReplayLedger(walletID, entries)

	report := &entity.WalletReconciliation{
		WalletID:         walletID,
		StoredBalance:    w.Balance,
		StoredReceived:   w.TotalReceived,
		StoredSpent:      w.TotalSpent,
		ReplayedBalance:  received - spent,
		ReplayedReceived: received,
		ReplayedSpent:    spent,
		EntriesReplayed:  int64(len(entries)),
	}

	if !report.InSync() {
		u.logger.Warn("Wallet drifted from its ledger", map[string]any{
			"wallet_id":        walletID,
			"stored_balance":   entity.FormatCoinAmount(report.StoredBalance),
			"replayed_balance": entity.FormatCoinAmount(report.ReplayedBalance),
		})
	}
	return report, nil
}

// fromCache decodes key into dest; cache failures count as a miss
func (u *WalletUseCase) fromCache(ctx context.Context, key string, dest any) bool {
	if u.cache == nil {
		return false
	}
	found, err := u.cache.Get(ctx, key, dest)
	if err != nil {
		u.logger.Warn("Cache read failed", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
		return false
	}
	return found
}

func (u *WalletUseCase) toCache(ctx context.Context, key string, value any) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Set(ctx, key, value, u.cacheTTL); err != nil {
		u.logger.Warn("Cache write failed", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
	}
}
