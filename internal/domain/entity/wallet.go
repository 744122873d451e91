package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	"github.com/google/uuid"
)

// Wallet is one user's balance record in one coin type. Amounts are minor units.
type Wallet struct {
	ID            uint64
	UserID        uuid.UUID
	CoinTypeID    uint64
	Balance       int64
	LockedBalance int64
	TotalReceived int64
	TotalSpent    int64
	Version       uint64 // bumped on every write, used for compare-and-set
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewWallet builds an empty wallet; wallets are only created when first credited
func NewWallet(userID uuid.UUID, coinTypeID uint64, now time.Time) (*Wallet, error) {
	if userID == uuid.Nil {
		return nil, errs.ErrInvalidUserID
	}
	if coinTypeID == 0 {
		return nil, fmt.Errorf("%w: coin type is required", errs.ErrInvalidCoinType)
	}
	return &Wallet{
		UserID:     userID,
		CoinTypeID: coinTypeID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Available returns the spendable part of the balance
func (w *Wallet) Available() int64 {
	return w.Balance - w.LockedBalance
}

// Debit removes amount from the available balance and counts it as spent
func (w *Wallet) Debit(amount int64, now time.Time) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	if w.Available() < amount {
		return errs.NewInsufficientBalanceError(w.ID, FormatCoinAmount(amount), FormatCoinAmount(w.Available()))
	}
	w.Balance -= amount
	w.TotalSpent += amount
	w.UpdatedAt = now
	return nil
}

// Credit adds amount to the balance and counts it as received
func (w *Wallet) Credit(amount int64, now time.Time) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	balance, err := AddAmounts(w.Balance, amount)
	if err != nil {
		return err
	}
	received, err := AddAmounts(w.TotalReceived, amount)
	if err != nil {
		return err
	}
	w.Balance = balance
	w.TotalReceived = received
	w.UpdatedAt = now
	return nil
}

// Lock reserves amount of the available balance
func (w *Wallet) Lock(amount int64, now time.Time) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	if w.Available() < amount {
		return errs.NewInsufficientBalanceError(w.ID, FormatCoinAmount(amount), FormatCoinAmount(w.Available()))
	}
	w.LockedBalance += amount
	w.UpdatedAt = now
	return nil
}

// Unlock returns amount of the locked balance to available
func (w *Wallet) Unlock(amount int64, now time.Time) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	if w.LockedBalance < amount {
		return fmt.Errorf("%w: releasing %s, locked %s", errs.ErrInsufficientLocked,
			FormatCoinAmount(amount), FormatCoinAmount(w.LockedBalance))
	}
	w.LockedBalance -= amount
	w.UpdatedAt = now
	return nil
}

// CheckInvariants verifies the non-negativity and lock bounds of the wallet
func (w *Wallet) CheckInvariants() error {
	switch {
	case w.Balance < 0:
		return fmt.Errorf("%w: wallet %d balance is negative", errs.ErrConstraintViolation, w.ID)
	case w.LockedBalance < 0:
		return fmt.Errorf("%w: wallet %d locked balance is negative", errs.ErrConstraintViolation, w.ID)
	case w.LockedBalance > w.Balance:
		return fmt.Errorf("%w: wallet %d locked balance exceeds balance", errs.ErrConstraintViolation, w.ID)
	case w.TotalReceived-w.TotalSpent != w.Balance:
		return fmt.Errorf("%w: wallet %d counters disagree with balance", errs.ErrConstraintViolation, w.ID)
	}
	return nil
}

// Clone returns a copy that can be mutated without touching w
func (w *Wallet) Clone() *Wallet {
	c := *w
	return &c
}
