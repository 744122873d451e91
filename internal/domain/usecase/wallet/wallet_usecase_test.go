package wallet

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	mockcore "github.com/amirhossein-jamali/coin-ledger/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/coin-ledger/mocks/port/persistence"
)

type walletMocks struct {
	wallets   *mockpersistence.MockWalletRepository
	ledger    *mockpersistence.MockTransactionRepository
	coinTypes *mockpersistence.MockCoinTypeRepository
	cache     *mockcore.MockCache
	logger    *mockcore.MockLogger
}

func newTestWalletUseCase(t *testing.T) (*WalletUseCase, *walletMocks) {
	m := &walletMocks{
		wallets:   mockpersistence.NewMockWalletRepository(t),
		ledger:    mockpersistence.NewMockTransactionRepository(t),
		coinTypes: mockpersistence.NewMockCoinTypeRepository(t),
		cache:     mockcore.NewMockCache(t),
		logger:    mockcore.NewMockLogger(t),
	}
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()

	return NewWalletUseCase(m.wallets, m.ledger, m.coinTypes, m.cache, time.Minute, m.logger), m
}

func TestWalletUseCase_GetWallets(t *testing.T) {
	userID := uuid.New()
	stored := []*entity.Wallet{{ID: 1, UserID: userID, CoinTypeID: 1, Balance: 500, TotalReceived: 500}}

	tests := []struct {
		name       string
		setupMocks func(m *walletMocks)
		want       []*entity.Wallet
		wantErr    error
	}{
		{
			name: "cache miss loads and caches",
			setupMocks: func(m *walletMocks) {
				m.cache.EXPECT().Get(mock.Anything, WalletsCacheKey(userID), mock.Anything).Return(false, nil)
				m.wallets.EXPECT().ListByUser(mock.Anything, userID).Return(stored, nil)
				m.cache.EXPECT().Set(mock.Anything, WalletsCacheKey(userID), stored, time.Minute).Return(nil)
			},
			want: stored,
		},
		{
			name: "cache hit skips the database",
			setupMocks: func(m *walletMocks) {
				m.cache.EXPECT().Get(mock.Anything, WalletsCacheKey(userID), mock.Anything).
					Run(func(_ context.Context, _ string, dest any) {
						*dest.(*[]*entity.Wallet) = stored
					}).
					Return(true, nil)
			},
			want: stored,
		},
		{
			name: "broken cache falls back to the database",
			setupMocks: func(m *walletMocks) {
				m.cache.EXPECT().Get(mock.Anything, mock.Anything, mock.Anything).Return(false, errors.New("redis down"))
				m.wallets.EXPECT().ListByUser(mock.Anything, userID).Return(stored, nil)
				m.cache.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))
			},
			want: stored,
		},
		{
			name: "repository error",
			setupMocks: func(m *walletMocks) {
				m.cache.EXPECT().Get(mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
				m.wallets.EXPECT().ListByUser(mock.Anything, userID).Return(nil, errs.ErrDatabaseConnection)
			},
			wantErr: errs.ErrDatabaseConnection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			uc, m := newTestWalletUseCase(t)
			tt.setupMocks(m)

			// Act
			got, err := uc.GetWallets(context.Background(), userID)

			// Assert
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("nil user", func(t *testing.T) {
		uc, _ := newTestWalletUseCase(t)
		_, err := uc.GetWallets(context.Background(), uuid.Nil)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestWalletUseCase_GetTransactions(t *testing.T) {
	uc, m := newTestWalletUseCase(t)
	userID := uuid.New()
	rows := []*entity.Transaction{{ID: 3}, {ID: 2}}

	m.ledger.EXPECT().
		ListForUser(mock.Anything, userID, entity.TransactionFilter{Limit: entity.MaxTransactionLimit}).
		Return(rows, int64(12), nil)

	page, err := uc.GetTransactions(context.Background(), userID, entity.TransactionFilter{Limit: 1000, Offset: -3})

	require.NoError(t, err)
	assert.Equal(t, rows, page.Transactions)
	assert.Equal(t, int64(12), page.TotalCount)
	assert.Equal(t, entity.MaxTransactionLimit, page.Limit)
	assert.Equal(t, 0, page.Offset)
}

func TestWalletUseCase_GetTransactionStats(t *testing.T) {
	// Arrange
	uc, m := newTestWalletUseCase(t)
	userID := uuid.New()
	last := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)

	m.cache.EXPECT().Get(mock.Anything, StatsCacheKey(userID), mock.Anything).Return(false, nil)
	m.ledger.EXPECT().TotalsForUser(mock.Anything, userID).Return(entity.LedgerTotals{
		Received:          80000,
		Spent:             20000,
		TransactionCount:  6,
		LastTransactionAt: &last,
	}, nil)
	m.wallets.EXPECT().ListByUser(mock.Anything, userID).Return([]*entity.Wallet{
		{ID: 1, CoinTypeID: 1, Balance: 50000, LockedBalance: 1000, TotalReceived: 60000, TotalSpent: 10000},
		{ID: 2, CoinTypeID: 2, Balance: 10000, TotalReceived: 20000, TotalSpent: 10000},
	}, nil)
	m.coinTypes.EXPECT().GetByID(mock.Anything, uint64(1)).
		Return(&entity.CoinType{ID: 1, Symbol: "BHC", CurrentValue: decimal.RequireFromString("0.10")}, nil)
	m.coinTypes.EXPECT().GetByID(mock.Anything, uint64(2)).
		Return(&entity.CoinType{ID: 2, Symbol: "JAZZ", CurrentValue: decimal.RequireFromString("2.5")}, nil)
	m.cache.EXPECT().Set(mock.Anything, StatsCacheKey(userID), mock.Anything, time.Minute).Return(nil)

	// Act
	stats, err := uc.GetTransactionStats(context.Background(), userID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(60000), stats.TotalBalance)
	assert.Equal(t, int64(80000), stats.TotalReceived)
	assert.Equal(t, int64(20000), stats.TotalSpent)
	assert.Equal(t, int64(1000), stats.LockedBalance)
	assert.Equal(t, int64(6), stats.TransactionCount)
	assert.Equal(t, &last, stats.LastTransactionAt)
	require.Len(t, stats.Coins, 2)
	assert.Equal(t, "BHC", stats.Coins[0].Symbol)
	// 500.00 * 0.10 + 100.00 * 2.5
	assert.True(t, decimal.NewFromInt(300).Equal(stats.TotalValuation), stats.TotalValuation.String())
}

func TestWalletUseCase_GetTransactionStats_CachedUsesCurrentValues(t *testing.T) {
	// Arrange
	uc, m := newTestWalletUseCase(t)
	userID := uuid.New()
	cached := entity.TransactionStats{
		TotalBalance:   50000,
		TotalValuation: decimal.NewFromInt(50),
		Coins: []entity.CoinStats{
			{CoinTypeID: 1, Symbol: "BHC", Balance: 50000, UnitValue: decimal.RequireFromString("0.10"), Valuation: decimal.NewFromInt(50)},
		},
	}

	m.cache.EXPECT().Get(mock.Anything, StatsCacheKey(userID), mock.Anything).
		Run(func(_ context.Context, _ string, dest any) {
			*dest.(*entity.TransactionStats) = cached
		}).
		Return(true, nil)
	m.coinTypes.EXPECT().GetByID(mock.Anything, uint64(1)).
		Return(&entity.CoinType{ID: 1, Symbol: "BHC", CurrentValue: decimal.RequireFromString("0.40")}, nil)

	// Act
	stats, err := uc.GetTransactionStats(context.Background(), userID)

	// Assert
	require.NoError(t, err)
	require.Len(t, stats.Coins, 1)
	assert.Equal(t, "0.4", stats.Coins[0].UnitValue.String())
	// 500.00 * 0.40
	assert.True(t, decimal.NewFromInt(200).Equal(stats.TotalValuation), stats.TotalValuation.String())
	m.ledger.AssertNotCalled(t, "TotalsForUser", mock.Anything, mock.Anything)
	m.wallets.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
}

func TestWalletUseCase_ReconcileWallet(t *testing.T) {
	uc, m := newTestWalletUseCase(t)
	to, from := uint64(5), uint64(5)

	m.wallets.EXPECT().GetByID(mock.Anything, uint64(5)).
		Return(&entity.Wallet{ID: 5, Balance: 900, TotalReceived: 1000, TotalSpent: 100}, nil)
	m.ledger.EXPECT().ListForWallet(mock.Anything, uint64(5)).Return([]*entity.Transaction{
		{ID: 1, ToWalletID: &to, Amount: 1000},
		{ID: 2, FromWalletID: &from, Amount: 300},
	}, nil)

	report, err := uc.ReconcileWallet(context.Background(), 5)

	require.NoError(t, err)
	assert.False(t, report.InSync())
	assert.Equal(t, int64(700), report.ReplayedBalance)
	assert.Equal(t, int64(300), report.ReplayedSpent)
	assert.Equal(t, int64(2), report.EntriesReplayed)
}
