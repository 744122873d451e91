package transfer_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/usecase/transfer"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/repository"
)

type engineFixture struct {
	engine    *transfer.Engine
	db        *gorm.DB
	coinTypes persistence.CoinTypeRepository
	wallets   persistence.WalletRepository
	ledger    persistence.TransactionRepository
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()
	return newEngineFixtureOn(t, database.NewSQLiteTestManager(t))
}

func newEngineFixtureOn(t *testing.T, m *database.TestDBManager) *engineFixture {
	t.Helper()

	db := m.Manager.DB()

	config := transfer.Config{
		Retry: transfer.RetryPolicy{
			MaxRetries:    10,
			RetryInterval: time.Millisecond,
			MaxInterval:   10 * time.Millisecond,
			JitterFactor:  0.5,
		},
		OperationTimeout: 10 * time.Second,
	}

	return &engineFixture{
		engine:    transfer.NewEngine(m.Manager.CreateUnitOfWork(), cache.NewNoopCache(), m.TimeProvider, m.Logger, config),
		db:        db,
		coinTypes: repository.NewCoinTypeRepository(db, m.Logger),
		wallets:   repository.NewWalletRepository(db, m.TimeProvider, m.Logger),
		ledger:    repository.NewTransactionRepository(db, m.TimeProvider, m.Logger),
	}
}

func (f *engineFixture) createCoinType(t *testing.T, params entity.NewCoinTypeParams) *entity.CoinType {
	t.Helper()

	if params.Name == "" {
		params.Name = params.Symbol + " coin"
	}
	if params.Kind == "" {
		params.Kind = entity.KindPlatform
	}
	if params.InitialValue.IsZero() {
		params.InitialValue = decimal.RequireFromString("0.25")
	}

	coinType, err := entity.NewCoinType(params, time.Now())
	require.NoError(t, err)
	require.NoError(t, f.coinTypes.Create(context.Background(), coinType))
	return coinType
}

func (f *engineFixture) fund(t *testing.T, userID uuid.UUID, coinTypeID uint64, amount int64) {
	t.Helper()

	_, err := f.engine.IssueReward(context.Background(), userID, entity.OperationDetails{
		CoinTypeID:  coinTypeID,
		Amount:      amount,
		Description: "test funding",
	})
	require.NoError(t, err)
}

func (f *engineFixture) wallet(t *testing.T, userID uuid.UUID, coinTypeID uint64) *entity.Wallet {
	t.Helper()

	w, err := f.wallets.Get(context.Background(), userID, coinTypeID)
	require.NoError(t, err)
	return w
}

func (f *engineFixture) ledgerCount(t *testing.T) int64 {
	t.Helper()

	var n int64
	require.NoError(t, f.db.Table("coin_transactions").Count(&n).Error)
	return n
}

// assertReconciles checks that every wallet's counters match a replay of its ledger rows
func (f *engineFixture) assertReconciles(t *testing.T, users []uuid.UUID) {
	t.Helper()

	ctx := context.Background()
	for _, userID := range users {
		wallets, err := f.wallets.ListByUser(ctx, userID)
		require.NoError(t, err)
		for _, w := range wallets {
			entries, err := f.ledger.ListForWallet(ctx, w.ID)
			require.NoError(t, err)
			received, spent := entity.ReplayLedger(w.ID, entries)
			assert.Equal(t, received, w.TotalReceived, "wallet %d received", w.ID)
			assert.Equal(t, spent, w.TotalSpent, "wallet %d spent", w.ID)
			assert.Equal(t, received-spent, w.Balance, "wallet %d balance", w.ID)
			assert.NoError(t, w.CheckInvariants())
		}
	}
}

func TestEngine_SendCoins(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	bhc := f.createCoinType(t, entity.NewCoinTypeParams{Symbol: "BHC", IsTradeable: true})
	alice, bob := uuid.New(), uuid.New()

	f.fund(t, alice, bhc.ID, 50000)
	f.fund(t, bob, bhc.ID, 5000)

	txn, err := f.engine.SendCoins(ctx, alice, bob, entity.OperationDetails{
		CoinTypeID:  bhc.ID,
		Amount:      10000,
		Description: "thanks for the gig",
		Metadata:    map[string]any{"source": "test"},
	})
	require.NoError(t, err)

	aliceWallet := f.wallet(t, alice, bhc.ID)
	bobWallet := f.wallet(t, bob, bhc.ID)

	assert.Equal(t, int64(40000), aliceWallet.Balance)
	assert.Equal(t, int64(10000), aliceWallet.TotalSpent)
	assert.Equal(t, int64(15000), bobWallet.Balance)
	assert.Equal(t, int64(15000), bobWallet.TotalReceived)

	assert.Equal(t, entity.TypeTransfer, txn.Type)
	require.NotNil(t, txn.FromWalletID)
	require.NotNil(t, txn.ToWalletID)
	assert.Equal(t, aliceWallet.ID, *txn.FromWalletID)
	assert.Equal(t, bobWallet.ID, *txn.ToWalletID)
	require.NotNil(t, txn.ValueAtTransaction)
	assert.True(t, bhc.CurrentValue.Equal(*txn.ValueAtTransaction))

	stored, err := f.ledger.GetByID(ctx, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, "thanks for the gig", stored.Description)
	assert.Equal(t, "test", stored.Metadata["source"])

	f.assertReconciles(t, []uuid.UUID{alice, bob})
}

func TestEngine_InsufficientFunds(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	bhc := f.createCoinType(t, entity.NewCoinTypeParams{Symbol: "BHC", IsTradeable: true})
	alice, bob := uuid.New(), uuid.New()

	f.fund(t, alice, bhc.ID, 50000)
	before := f.ledgerCount(t)

	_, err := f.engine.SendCoins(ctx, alice, bob, entity.OperationDetails{CoinTypeID: bhc.ID, Amount: 60000})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
	assert.Equal(t, int64(50000), f.wallet(t, alice, bhc.ID).Balance)
	assert.Equal(t, before, f.ledgerCount(t))

	// The recipient's wallet creation was rolled back with the rest
	_, err = f.wallets.Get(ctx, bob, bhc.ID)
	assert.ErrorIs(t, err, errs.ErrWalletNotFound)
}

func TestEngine_DebitWithoutWallet(t *testing.T) {
	f := newEngineFixture(t)
	bhc := f.createCoinType(t, entity.NewCoinTypeParams{Symbol: "BHC", IsTradeable: true})

	_, err := f.engine.SendCoins(context.Background(), uuid.New(), uuid.New(), entity.OperationDetails{
		CoinTypeID: bhc.ID,
		Amount:     100,
	})

	assert.ErrorIs(t, err, errs.ErrWalletNotFound)
	assert.Equal(t, int64(0), f.ledgerCount(t))
}

func TestEngine_ConcurrentDebits(t *testing.T) {
	assertConcurrentDebits(t, newEngineFixture(t))
}

// The SQLite fixture holds one connection, so only PostgreSQL lets debits race for the row
func TestEngine_ConcurrentDebits_Postgres(t *testing.T) {
	assertConcurrentDebits(t, newEngineFixtureOn(t, database.NewPostgresTestManager(t)))
}

// assertConcurrentDebits drains one wallet from eight goroutines; exactly the funded share succeeds
func assertConcurrentDebits(t *testing.T, f *engineFixture) {
	t.Helper()

	bhc := f.createCoinType(t, entity.NewCoinTypeParams{Symbol: "BHC", IsTradeable: true})
	alice := uuid.New()
	f.fund(t, alice, bhc.ID, 50000)

	recipients := make([]uuid.UUID, 8)
	for i := range recipients {
		recipients[i] = uuid.New()
	}

	var wg sync.WaitGroup
	results := make([]error, len(recipients))
	for i, to := range recipients {
		wg.Add(1)
		go func(i int, to uuid.UUID) {
			defer wg.Done()
			_, results[i] = f.engine.SendCoins(context.Background(), alice, to, entity.OperationDetails{
				CoinTypeID: bhc.ID,
				Amount:     15000,
			})
		}(i, to)
	}
	wg.Wait()

	var succeeded, insufficient int
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errs.IsInsufficientBalanceError(err):
			insufficient++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 3, succeeded)
	assert.Equal(t, 5, insufficient)
	assert.Equal(t, int64(5000), f.wallet(t, alice, bhc.ID).Balance)

	f.assertReconciles(t, append([]uuid.UUID{alice}, recipients...))
}

func TestEngine_ConcurrentTransfersConserveCoins(t *testing.T) {
	f := newEngineFixture(t)
	bhc := f.createCoinType(t, entity.NewCoinTypeParams{Symbol: "BHC", IsTradeable: true})

	users := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}
	for _, u := range users {
		f.fund(t, u, bhc.ID, 10000)
	}

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			from := users[i%len(users)]
			to := users[(i+1)%len(users)]
			_, err := f.engine.SendCoins(context.Background(), from, to, entity.OperationDetails{
				CoinTypeID: bhc.ID,
				Amount:     int64(100 + i*10),
			})
			if err != nil && !errs.IsInsufficientBalanceError(err) {
				t.Errorf("transfer %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	var total int64
	for _, u := range users {
		w := f.wallet(t, u, bhc.ID)
		assert.GreaterOrEqual(t, w.Balance, int64(0))
		total += w.Balance
	}
	assert.Equal(t, int64(40000), total)

	f.assertReconciles(t, users)
}

func TestEngine_MintRespectsSupplyCap(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	artist := uuid.New()
	maxSupply := int64(1_000_000)
	coin := f.createCoinType(t, entity.NewCoinTypeParams{
		Symbol:    "JAZZ",
		Kind:      entity.KindArtistIssued,
		ArtistID:  &artist,
		MaxSupply: &maxSupply,
	})
	fan := uuid.New()

	_, err := f.engine.Mint(ctx, fan, entity.OperationDetails{CoinTypeID: coin.ID, Amount: 990_000})
	require.NoError(t, err)

	_, err = f.engine.Mint(ctx, fan, entity.OperationDetails{CoinTypeID: coin.ID, Amount: 20_000})
	assert.ErrorIs(t, err, errs.ErrSupplyCapExceeded)

	txn, err := f.engine.Mint(ctx, fan, entity.OperationDetails{CoinTypeID: coin.ID, Amount: 10_000})
	require.NoError(t, err)
	assert.Equal(t, entity.TypeArtistMint, txn.Type)
	assert.Nil(t, txn.FromWalletID)

	stored, err := f.coinTypes.GetByID(ctx, coin.ID)
	require.NoError(t, err)
	assert.Equal(t, maxSupply, stored.CirculatingSupply)
	assert.Equal(t, maxSupply, stored.TotalSupply)
	assert.Equal(t, maxSupply, f.wallet(t, fan, coin.ID).Balance)
}

func TestEngine_NonMintCreditsLeaveSupplyAlone(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	bhc := f.createCoinType(t, entity.NewCoinTypeParams{Symbol: "BHC", IsTradeable: true})

	_, err := f.engine.ConfirmPurchase(ctx, uuid.New(), entity.OperationDetails{CoinTypeID: bhc.ID, Amount: 2500})
	require.NoError(t, err)

	stored, err := f.coinTypes.GetByID(ctx, bhc.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stored.CirculatingSupply)
}

func TestEngine_ArtistCoinCreditsRequireMint(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	artist, fan := uuid.New(), uuid.New()
	maxSupply := int64(10000)
	jazz := f.createCoinType(t, entity.NewCoinTypeParams{
		Symbol:    "JAZZ",
		Kind:      entity.KindArtistIssued,
		ArtistID:  &artist,
		MaxSupply: &maxSupply,
	})
	d := entity.OperationDetails{CoinTypeID: jazz.ID, Amount: 5_000_000}

	_, err := f.engine.IssueReward(ctx, fan, d)
	assert.ErrorIs(t, err, errs.ErrInvalidOperation)
	_, err = f.engine.ConfirmPurchase(ctx, fan, d)
	assert.ErrorIs(t, err, errs.ErrInvalidOperation)
	_, err = f.engine.IssueRefund(ctx, fan, d)
	assert.ErrorIs(t, err, errs.ErrInvalidOperation)

	_, err = f.wallets.Get(ctx, fan, jazz.ID)
	assert.ErrorIs(t, err, errs.ErrWalletNotFound)
	assert.Equal(t, int64(0), f.ledgerCount(t))

	stored, err := f.coinTypes.GetByID(ctx, jazz.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stored.CirculatingSupply)
}

func TestEngine_SelfTransferRejected(t *testing.T) {
	f := newEngineFixture(t)
	bhc := f.createCoinType(t, entity.NewCoinTypeParams{Symbol: "BHC", IsTradeable: true})
	alice := uuid.New()
	f.fund(t, alice, bhc.ID, 1000)
	before := f.ledgerCount(t)

	_, err := f.engine.SendCoins(context.Background(), alice, alice, entity.OperationDetails{
		CoinTypeID: bhc.ID,
		Amount:     100,
	})

	assert.ErrorIs(t, err, errs.ErrSelfTransferNotAllowed)
	assert.Equal(t, before, f.ledgerCount(t))
	assert.Equal(t, int64(1000), f.wallet(t, alice, bhc.ID).Balance)
}

func TestEngine_IdempotencyKey(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	bhc := f.createCoinType(t, entity.NewCoinTypeParams{Symbol: "BHC", IsTradeable: true})
	buyer := uuid.New()

	d := entity.OperationDetails{CoinTypeID: bhc.ID, Amount: 1500, IdempotencyKey: "purchase-42"}

	first, err := f.engine.ConfirmPurchase(ctx, buyer, d)
	require.NoError(t, err)
	second, err := f.engine.ConfirmPurchase(ctx, buyer, d)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, int64(1500), f.wallet(t, buyer, bhc.ID).Balance)
	assert.Equal(t, int64(1), f.ledgerCount(t))
}

func TestEngine_IdempotencyKeyScopedToInitiator(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	bhc := f.createCoinType(t, entity.NewCoinTypeParams{Symbol: "BHC", IsTradeable: true})
	alice, bob, carol, dave := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	f.fund(t, alice, bhc.ID, 50000)
	f.fund(t, bob, bhc.ID, 50000)

	first, err := f.engine.SendCoins(ctx, alice, carol, entity.OperationDetails{CoinTypeID: bhc.ID, Amount: 10000, IdempotencyKey: "k1"})
	require.NoError(t, err)

	t.Run("another user may use the same key", func(t *testing.T) {
		txn, err := f.engine.SendCoins(ctx, bob, dave, entity.OperationDetails{CoinTypeID: bhc.ID, Amount: 777, IdempotencyKey: "k1"})
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, txn.ID)
		assert.Equal(t, bob, txn.InitiatedBy)
		assert.Equal(t, int64(777), txn.Amount)
		assert.Equal(t, int64(50000-777), f.wallet(t, bob, bhc.ID).Balance)
		assert.Equal(t, int64(777), f.wallet(t, dave, bhc.ID).Balance)
	})

	t.Run("same request replays the earlier row", func(t *testing.T) {
		txn, err := f.engine.SendCoins(ctx, alice, carol, entity.OperationDetails{CoinTypeID: bhc.ID, Amount: 10000, IdempotencyKey: "k1"})
		require.NoError(t, err)
		assert.Equal(t, first.ID, txn.ID)
	})

	t.Run("different request under a used key is rejected", func(t *testing.T) {
		before := f.ledgerCount(t)

		_, err := f.engine.SendCoins(ctx, alice, carol, entity.OperationDetails{CoinTypeID: bhc.ID, Amount: 500, IdempotencyKey: "k1"})
		assert.ErrorIs(t, err, errs.ErrDuplicateTransaction)

		_, err = f.engine.SendCoins(ctx, alice, dave, entity.OperationDetails{CoinTypeID: bhc.ID, Amount: 10000, IdempotencyKey: "k1"})
		assert.ErrorIs(t, err, errs.ErrDuplicateTransaction)

		assert.Equal(t, before, f.ledgerCount(t))
	})

	assert.Equal(t, int64(40000), f.wallet(t, alice, bhc.ID).Balance)
	assert.Equal(t, int64(10000), f.wallet(t, carol, bhc.ID).Balance)
	f.assertReconciles(t, []uuid.UUID{alice, bob, carol, dave})
}

func TestEngine_ConcurrentIdempotentRequests(t *testing.T) {
	f := newEngineFixture(t)
	bhc := f.createCoinType(t, entity.NewCoinTypeParams{Symbol: "BHC", IsTradeable: true})
	buyer := uuid.New()
	d := entity.OperationDetails{CoinTypeID: bhc.ID, Amount: 700, IdempotencyKey: "checkout-7"}

	var wg sync.WaitGroup
	ids := make([]uint64, 5)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			txn, err := f.engine.ConfirmPurchase(context.Background(), buyer, d)
			if assert.NoError(t, err) {
				ids[i] = txn.ID
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
	assert.Equal(t, int64(700), f.wallet(t, buyer, bhc.ID).Balance)
	assert.Equal(t, int64(1), f.ledgerCount(t))
}

func TestEngine_CoinTypeRules(t *testing.T) {
	ctx := context.Background()

	t.Run("inactive coin type blocks every operation", func(t *testing.T) {
		f := newEngineFixture(t)
		bhc := f.createCoinType(t, entity.NewCoinTypeParams{Symbol: "BHC", IsTradeable: true})
		alice := uuid.New()
		f.fund(t, alice, bhc.ID, 1000)
		require.NoError(t, f.coinTypes.SetActive(ctx, bhc.ID, false, time.Now()))

		_, err := f.engine.IssueReward(ctx, alice, entity.OperationDetails{CoinTypeID: bhc.ID, Amount: 100})
		assert.ErrorIs(t, err, errs.ErrCoinTypeInactive)

		_, err = f.engine.Spend(ctx, alice, nil, entity.OperationDetails{CoinTypeID: bhc.ID, Amount: 100})
		assert.ErrorIs(t, err, errs.ErrCoinTypeInactive)

		_, err = f.engine.Reserve(ctx, alice, bhc.ID, 100)
		assert.ErrorIs(t, err, errs.ErrCoinTypeInactive)
	})

	t.Run("non-tradeable coin type refuses peer transfers only", func(t *testing.T) {
		f := newEngineFixture(t)
		coin := f.createCoinType(t, entity.NewCoinTypeParams{Symbol: "PASS", IsTradeable: false})
		alice, bob := uuid.New(), uuid.New()
		f.fund(t, alice, coin.ID, 1000)

		_, err := f.engine.SendCoins(ctx, alice, bob, entity.OperationDetails{CoinTypeID: coin.ID, Amount: 100})
		assert.ErrorIs(t, err, errs.ErrCoinTypeNotTradeable)

		_, err = f.engine.Spend(ctx, alice, nil, entity.OperationDetails{CoinTypeID: coin.ID, Amount: 100})
		assert.NoError(t, err)
	})

	t.Run("unknown coin type", func(t *testing.T) {
		f := newEngineFixture(t)

		_, err := f.engine.IssueReward(ctx, uuid.New(), entity.OperationDetails{CoinTypeID: 999, Amount: 100})
		assert.ErrorIs(t, err, errs.ErrCoinTypeNotFound)
	})
}

func TestEngine_Spend(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	bhc := f.createCoinType(t, entity.NewCoinTypeParams{Symbol: "BHC", IsTradeable: true})
	fan, platform := uuid.New(), uuid.New()
	bookingID := uuid.New()
	f.fund(t, fan, bhc.ID, 5000)

	burned, err := f.engine.Spend(ctx, fan, nil, entity.OperationDetails{CoinTypeID: bhc.ID, Amount: 1000})
	require.NoError(t, err)
	assert.Nil(t, burned.ToWalletID)

	sunk, err := f.engine.Spend(ctx, fan, &platform, entity.OperationDetails{
		CoinTypeID: bhc.ID,
		Amount:     2000,
		BookingID:  &bookingID,
	})
	require.NoError(t, err)
	require.NotNil(t, sunk.ToWalletID)
	require.NotNil(t, sunk.BookingID)
	assert.Equal(t, bookingID, *sunk.BookingID)

	assert.Equal(t, int64(2000), f.wallet(t, fan, bhc.ID).Balance)
	assert.Equal(t, int64(2000), f.wallet(t, platform, bhc.ID).Balance)

	f.assertReconciles(t, []uuid.UUID{fan, platform})
}

func TestEngine_ReserveAndRelease(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	bhc := f.createCoinType(t, entity.NewCoinTypeParams{Symbol: "BHC", IsTradeable: true})
	alice, bob := uuid.New(), uuid.New()
	f.fund(t, alice, bhc.ID, 50000)

	w, err := f.engine.Reserve(ctx, alice, bhc.ID, 30000)
	require.NoError(t, err)
	assert.Equal(t, int64(30000), w.LockedBalance)
	assert.Equal(t, int64(20000), w.Available())

	// Locked coins cannot be spent
	_, err = f.engine.SendCoins(ctx, alice, bob, entity.OperationDetails{CoinTypeID: bhc.ID, Amount: 30000})
	assert.ErrorIs(t, err, errs.ErrInsufficientBalance)

	_, err = f.engine.Reserve(ctx, alice, bhc.ID, 25000)
	assert.ErrorIs(t, err, errs.ErrInsufficientBalance)

	_, err = f.engine.Release(ctx, alice, bhc.ID, 40000)
	assert.ErrorIs(t, err, errs.ErrInsufficientLocked)

	w, err = f.engine.Release(ctx, alice, bhc.ID, 30000)
	require.NoError(t, err)
	assert.Equal(t, int64(0), w.LockedBalance)

	stored := f.wallet(t, alice, bhc.ID)
	assert.Equal(t, int64(50000), stored.Balance)
	assert.Equal(t, int64(0), stored.LockedBalance)

	_, err = f.engine.Reserve(ctx, bob, bhc.ID, 100)
	assert.ErrorIs(t, err, errs.ErrWalletNotFound)
}

func TestEngine_RepairWallet(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	bhc := f.createCoinType(t, entity.NewCoinTypeParams{Symbol: "BHC", IsTradeable: true})
	alice, bob := uuid.New(), uuid.New()
	f.fund(t, alice, bhc.ID, 50000)
	_, err := f.engine.SendCoins(ctx, alice, bob, entity.OperationDetails{CoinTypeID: bhc.ID, Amount: 10000})
	require.NoError(t, err)

	w := f.wallet(t, alice, bhc.ID)

	t.Run("in sync wallet is left alone", func(t *testing.T) {
		report, err := f.engine.RepairWallet(ctx, w.ID)
		require.NoError(t, err)
		assert.True(t, report.InSync())
		assert.Equal(t, int64(2), report.EntriesReplayed)
	})

	t.Run("drifted wallet is blocked until repaired", func(t *testing.T) {
		require.NoError(t, f.db.Exec(
			"UPDATE coin_wallets SET balance = ? WHERE id = ?", 90000, w.ID,
		).Error)

		_, err := f.engine.SendCoins(ctx, alice, bob, entity.OperationDetails{CoinTypeID: bhc.ID, Amount: 100})
		assert.ErrorIs(t, err, errs.ErrConstraintViolation)

		report, err := f.engine.RepairWallet(ctx, w.ID)
		require.NoError(t, err)
		assert.False(t, report.InSync())
		assert.Equal(t, int64(90000), report.StoredBalance)
		assert.Equal(t, int64(40000), report.ReplayedBalance)
		assert.Equal(t, int64(50000), report.ReplayedReceived)
		assert.Equal(t, int64(10000), report.ReplayedSpent)

		repaired := f.wallet(t, alice, bhc.ID)
		assert.Equal(t, int64(40000), repaired.Balance)
		assert.Equal(t, int64(50000), repaired.TotalReceived)

		_, err = f.engine.SendCoins(ctx, alice, bob, entity.OperationDetails{CoinTypeID: bhc.ID, Amount: 100})
		assert.NoError(t, err)
		f.assertReconciles(t, []uuid.UUID{alice, bob})
	})

	t.Run("unknown wallet", func(t *testing.T) {
		_, err := f.engine.RepairWallet(ctx, 424242)
		assert.ErrorIs(t, err, errs.ErrWalletNotFound)
	})
}

func TestEngine_LedgerIsAppendOnly(t *testing.T) {
	f := newEngineFixture(t)
	bhc := f.createCoinType(t, entity.NewCoinTypeParams{Symbol: "BHC", IsTradeable: true})
	txn, err := f.engine.IssueReward(context.Background(), uuid.New(), entity.OperationDetails{CoinTypeID: bhc.ID, Amount: 100})
	require.NoError(t, err)

	assert.Error(t, f.db.Exec("UPDATE coin_transactions SET amount = 1 WHERE id = ?", txn.ID).Error)
	assert.Error(t, f.db.Exec("DELETE FROM coin_transactions WHERE id = ?", txn.ID).Error)
	assert.Equal(t, int64(1), f.ledgerCount(t))
}
