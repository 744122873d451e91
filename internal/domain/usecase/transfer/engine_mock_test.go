package transfer

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	mockcore "github.com/amirhossein-jamali/coin-ledger/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/coin-ledger/mocks/port/persistence"
)

type engineMocks struct {
	uow       *mockpersistence.MockUnitOfWork
	wallets   *mockpersistence.MockWalletRepository
	ledger    *mockpersistence.MockTransactionRepository
	coinTypes *mockpersistence.MockCoinTypeRepository
	cache     *mockcore.MockCache
	time      *mockcore.MockTimeProvider
	logger    *mockcore.MockLogger
}

func newMockedEngine(t *testing.T) (*Engine, *engineMocks) {
	m := &engineMocks{
		uow:       mockpersistence.NewMockUnitOfWork(t),
		wallets:   mockpersistence.NewMockWalletRepository(t),
		ledger:    mockpersistence.NewMockTransactionRepository(t),
		coinTypes: mockpersistence.NewMockCoinTypeRepository(t),
		cache:     mockcore.NewMockCache(t),
		time:      mockcore.NewMockTimeProvider(t),
		logger:    mockcore.NewMockLogger(t),
	}

	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	m.time.EXPECT().WithTimeout(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, d core.Duration) (context.Context, context.CancelFunc) {
			return context.WithTimeout(ctx, d.Std())
		}).Maybe()
	m.time.EXPECT().Now().Return(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)).Maybe()

	m.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(m.ledger)
	m.uow.EXPECT().GetWalletRepository(mock.Anything).Return(m.wallets).Once()

	config := Config{
		Retry:            RetryPolicy{MaxRetries: 2, RetryInterval: time.Millisecond, MaxInterval: time.Millisecond},
		OperationTimeout: time.Second,
	}
	return NewEngine(m.uow, m.cache, m.time, m.logger, config), m
}

func activeCoin() *entity.CoinType {
	return &entity.CoinType{
		ID:           1,
		Symbol:       "BHC",
		Kind:         entity.KindPlatform,
		InitialValue: decimal.NewFromInt(1),
		CurrentValue: decimal.RequireFromString("1.5"),
		IsActive:     true,
		IsTradeable:  true,
	}
}

func TestEngine_Execute_IdempotentReplay(t *testing.T) {
	// Arrange
	engine, m := newMockedEngine(t)
	buyer := uuid.New()
	walletID := uint64(12)
	existing := &entity.Transaction{ID: 42, Type: entity.TypePurchase, CoinTypeID: 1, ToWalletID: &walletID, Amount: 500}
	m.ledger.EXPECT().GetByIdempotencyKey(mock.Anything, buyer, "order-1").Return(existing, nil)

	// Act
	txn, err := engine.ConfirmPurchase(context.Background(), buyer, entity.OperationDetails{
		CoinTypeID:     1,
		Amount:         500,
		IdempotencyKey: "order-1",
	})

	// Assert
	require.NoError(t, err)
	assert.Same(t, existing, txn)
	m.uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestEngine_Execute_KeyReusedForAnotherOperation(t *testing.T) {
	alice, bob, carol := uuid.New(), uuid.New(), uuid.New()
	fromWallet, toWallet := uint64(3), uint64(4)
	earlier := &entity.Transaction{
		ID: 50, Type: entity.TypeTransfer, CoinTypeID: 1, FromWalletID: &fromWallet, ToWalletID: &toWallet, Amount: 10000,
	}

	testCases := []struct {
		name    string
		details entity.OperationDetails
		to      uuid.UUID
		owner   *uuid.UUID // owner of the earlier row's destination wallet, when it is looked up
	}{
		{name: "different amount", details: entity.OperationDetails{CoinTypeID: 1, Amount: 777}, to: bob},
		{name: "different coin type", details: entity.OperationDetails{CoinTypeID: 2, Amount: 10000}, to: bob},
		{name: "different recipient", details: entity.OperationDetails{CoinTypeID: 1, Amount: 10000}, to: carol, owner: &bob},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			engine, m := newMockedEngine(t)
			tc.details.IdempotencyKey = "k1"
			m.ledger.EXPECT().GetByIdempotencyKey(mock.Anything, alice, "k1").Return(earlier, nil)
			if tc.owner != nil {
				m.wallets.EXPECT().GetByID(mock.Anything, toWallet).Return(&entity.Wallet{ID: toWallet, UserID: *tc.owner}, nil)
			}

			// Act
			txn, err := engine.SendCoins(context.Background(), alice, tc.to, tc.details)

			// Assert
			assert.Nil(t, txn)
			assert.ErrorIs(t, err, errs.ErrDuplicateTransaction)
			m.uow.AssertNotCalled(t, "Begin", mock.Anything)
		})
	}
}

func TestEngine_Execute_ReplayChecksRecipient(t *testing.T) {
	// Arrange
	engine, m := newMockedEngine(t)
	alice, bob := uuid.New(), uuid.New()
	fromWallet, toWallet := uint64(3), uint64(4)
	earlier := &entity.Transaction{
		ID: 50, Type: entity.TypeTransfer, CoinTypeID: 1, FromWalletID: &fromWallet, ToWalletID: &toWallet, Amount: 10000,
	}
	m.ledger.EXPECT().GetByIdempotencyKey(mock.Anything, alice, "k1").Return(earlier, nil)
	m.wallets.EXPECT().GetByID(mock.Anything, toWallet).Return(&entity.Wallet{ID: toWallet, UserID: bob}, nil)

	// Act
	txn, err := engine.SendCoins(context.Background(), alice, bob, entity.OperationDetails{
		CoinTypeID:     1,
		Amount:         10000,
		IdempotencyKey: "k1",
	})

	// Assert
	require.NoError(t, err)
	assert.Same(t, earlier, txn)
}

func TestEngine_Execute_ArtistCoinsOnlyEnterByMint(t *testing.T) {
	// Arrange
	engine, m := newMockedEngine(t)
	txCtx := context.WithValue(context.Background(), struct{ name string }{"tx"}, true)
	artist := uuid.New()
	maxSupply := int64(10000)
	jazz := &entity.CoinType{ID: 2, Symbol: "JAZZ", Kind: entity.KindArtistIssued, ArtistID: &artist, MaxSupply: &maxSupply, IsActive: true}

	m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
	m.uow.EXPECT().GetCoinTypeRepository(txCtx).Return(m.coinTypes)
	m.uow.EXPECT().GetWalletRepository(txCtx).Return(m.wallets)
	m.coinTypes.EXPECT().GetByID(txCtx, uint64(2)).Return(jazz, nil)
	m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

	// Act
	_, err := engine.IssueReward(context.Background(), uuid.New(), entity.OperationDetails{CoinTypeID: 2, Amount: 5_000_000})

	// Assert
	assert.ErrorIs(t, err, errs.ErrInvalidOperation)
	m.coinTypes.AssertNotCalled(t, "RegisterMint", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	m.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestEngine_Execute_RollsBackOnRuleViolation(t *testing.T) {
	// Arrange
	engine, m := newMockedEngine(t)
	txCtx := context.WithValue(context.Background(), struct{ name string }{"tx"}, true)
	inactive := activeCoin()
	inactive.IsActive = false

	m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
	m.uow.EXPECT().GetCoinTypeRepository(txCtx).Return(m.coinTypes)
	m.uow.EXPECT().GetWalletRepository(txCtx).Return(m.wallets)
	m.coinTypes.EXPECT().GetByID(txCtx, uint64(1)).Return(inactive, nil)
	m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

	// Act
	_, err := engine.IssueReward(context.Background(), uuid.New(), entity.OperationDetails{CoinTypeID: 1, Amount: 100})

	// Assert
	assert.ErrorIs(t, err, errs.ErrCoinTypeInactive)
	var transferErr *errs.TransferError
	require.ErrorAs(t, err, &transferErr)
	assert.Equal(t, 1, transferErr.Attempts)
	m.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestEngine_Execute_RetriesWriteConflictAndInvalidatesCache(t *testing.T) {
	// Arrange
	engine, m := newMockedEngine(t)
	userID := uuid.New()
	txCtx := context.WithValue(context.Background(), struct{ name string }{"tx"}, true)
	w := &entity.Wallet{ID: 7, UserID: userID, CoinTypeID: 1, Version: 3}

	m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Times(2)
	m.uow.EXPECT().GetCoinTypeRepository(txCtx).Return(m.coinTypes)
	m.uow.EXPECT().GetWalletRepository(txCtx).Return(m.wallets)
	m.coinTypes.EXPECT().GetByID(txCtx, uint64(1)).Return(activeCoin(), nil)
	m.wallets.EXPECT().GetOrCreate(txCtx, userID, uint64(1)).Return(w, nil)
	m.wallets.EXPECT().LockForUpdate(txCtx, uint64(7)).Return([]*entity.Wallet{w}, nil)
	m.wallets.EXPECT().ApplyDelta(txCtx, w, mock.Anything).Return(errs.ErrWriteConflict).Once()
	m.wallets.EXPECT().ApplyDelta(txCtx, w, mock.Anything).
		Run(func(_ context.Context, prev, next *entity.Wallet) {
			assert.Equal(t, int64(0), prev.Balance)
			assert.Equal(t, int64(250), next.Balance)
			assert.Equal(t, int64(250), next.TotalReceived)
		}).
		Return(nil).Once()
	m.ledger.EXPECT().Create(txCtx, mock.AnythingOfType("*entity.Transaction")).
		Run(func(_ context.Context, tx *entity.Transaction) { tx.ID = 99 }).
		Return(nil).Once()
	m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()
	m.uow.EXPECT().Commit(txCtx).Return(nil).Once()
	m.cache.EXPECT().Delete(mock.Anything, "wallets:"+userID.String(), "stats:"+userID.String()).Return(nil).Once()

	// Act
	txn, err := engine.IssueRefund(context.Background(), userID, entity.OperationDetails{CoinTypeID: 1, Amount: 250})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, uint64(99), txn.ID)
	assert.Equal(t, entity.TypeRefund, txn.Type)
	require.NotNil(t, txn.ToWalletID)
	assert.Equal(t, uint64(7), *txn.ToWalletID)
	assert.Nil(t, txn.FromWalletID)
	require.NotNil(t, txn.ValueAtTransaction)
	assert.Equal(t, "1.5", txn.ValueAtTransaction.String())
}

func TestEngine_Execute_ValidationSkipsStorage(t *testing.T) {
	engine, m := newMockedEngine(t)
	alice := uuid.New()

	_, err := engine.SendCoins(context.Background(), alice, alice, entity.OperationDetails{CoinTypeID: 1, Amount: 1})

	assert.ErrorIs(t, err, errs.ErrSelfTransferNotAllowed)
	m.uow.AssertNotCalled(t, "Begin", mock.Anything)
	m.ledger.AssertNotCalled(t, "GetByIdempotencyKey", mock.Anything, mock.Anything, mock.Anything)
}
