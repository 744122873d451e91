package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWallet(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("Valid wallet", func(t *testing.T) {
		w, err := NewWallet(userID, 1, fixedTime)

		require.NoError(t, err)
		assert.Equal(t, userID, w.UserID)
		assert.Equal(t, uint64(1), w.CoinTypeID)
		assert.Zero(t, w.Balance)
		assert.Zero(t, w.LockedBalance)
		assert.Equal(t, fixedTime, w.CreatedAt)
	})

	t.Run("Nil user", func(t *testing.T) {
		w, err := NewWallet(uuid.Nil, 1, fixedTime)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		assert.Nil(t, w)
	})

	t.Run("Missing coin type", func(t *testing.T) {
		_, err := NewWallet(userID, 0, fixedTime)

		assert.ErrorIs(t, err, errs.ErrInvalidCoinType)
	})
}

func TestWalletCreditDebit(t *testing.T) {
	initialTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	updateTime := initialTime.Add(time.Hour)

	w, err := NewWallet(uuid.New(), 1, initialTime)
	require.NoError(t, err)

	t.Run("Credit", func(t *testing.T) {
		require.NoError(t, w.Credit(50000, updateTime))

		assert.Equal(t, int64(50000), w.Balance)
		assert.Equal(t, int64(50000), w.TotalReceived)
		assert.Equal(t, updateTime, w.UpdatedAt)
	})

	t.Run("Debit", func(t *testing.T) {
		require.NoError(t, w.Debit(10000, updateTime))

		assert.Equal(t, int64(40000), w.Balance)
		assert.Equal(t, int64(10000), w.TotalSpent)
		assert.NoError(t, w.CheckInvariants())
	})

	t.Run("Debit beyond available", func(t *testing.T) {
		err := w.Debit(40001, updateTime)

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Equal(t, int64(40000), w.Balance)
		assert.Equal(t, int64(10000), w.TotalSpent)
	})

	t.Run("Zero amounts are rejected", func(t *testing.T) {
		assert.ErrorIs(t, w.Credit(0, updateTime), errs.ErrInvalidAmount)
		assert.ErrorIs(t, w.Debit(-5, updateTime), errs.ErrInvalidAmount)
	})
}

func TestWalletLocking(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	w := &Wallet{ID: 9, Balance: 1000, TotalReceived: 1000}

	require.NoError(t, w.Lock(600, now))
	assert.Equal(t, int64(400), w.Available())

	t.Run("Locked funds cannot be spent", func(t *testing.T) {
		err := w.Debit(500, now)

		var ibe *errs.InsufficientBalanceError
		require.ErrorAs(t, err, &ibe)
		assert.Equal(t, uint64(9), ibe.WalletID)
		assert.Equal(t, "4.00", ibe.Available)
	})

	t.Run("Cannot lock more than available", func(t *testing.T) {
		assert.ErrorIs(t, w.Lock(401, now), errs.ErrInsufficientBalance)
	})

	t.Run("Cannot release more than locked", func(t *testing.T) {
		assert.ErrorIs(t, w.Unlock(601, now), errs.ErrInsufficientLocked)
	})

	t.Run("Release", func(t *testing.T) {
		require.NoError(t, w.Unlock(600, now))
		assert.Equal(t, int64(1000), w.Available())
		assert.NoError(t, w.CheckInvariants())
	})
}

func TestWalletCheckInvariants(t *testing.T) {
	testCases := []struct {
		name   string
		wallet Wallet
		valid  bool
	}{
		{"empty", Wallet{}, true},
		{"consistent", Wallet{Balance: 300, LockedBalance: 100, TotalReceived: 500, TotalSpent: 200}, true},
		{"negative balance", Wallet{Balance: -1, TotalSpent: 1}, false},
		{"lock above balance", Wallet{Balance: 100, LockedBalance: 101, TotalReceived: 100}, false},
		{"counters drift", Wallet{Balance: 100, TotalReceived: 150}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.wallet.CheckInvariants()
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, errs.ErrConstraintViolation)
			}
		})
	}
}

func TestWalletClone(t *testing.T) {
	w := &Wallet{ID: 1, Balance: 10}
	c := w.Clone()
	c.Balance = 20

	assert.Equal(t, int64(10), w.Balance)
	assert.Equal(t, int64(20), c.Balance)
}
