package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ValueSample is one point in a coin type's unit value history
type ValueSample struct {
	ID         uint64
	CoinTypeID uint64
	Value      decimal.Decimal
	RecordedAt time.Time
}

// LedgerTotals is a live aggregate over ledger rows touching a set of wallets
type LedgerTotals struct {
	Received          int64
	Spent             int64
	TransactionCount  int64
	LastTransactionAt *time.Time
}

// Net returns received minus spent
func (t LedgerTotals) Net() int64 {
	return t.Received - t.Spent
}

// CoinStats is a per-coin-type slice of a user's statistics
type CoinStats struct {
	CoinTypeID    uint64
	Symbol        string
	Balance       int64
	LockedBalance int64
	UnitValue     decimal.Decimal
	Valuation     decimal.Decimal
}

// TransactionStats is a derived, read-only summary of a user's coin activity
type TransactionStats struct {
	TotalBalance      int64
	TotalReceived     int64
	TotalSpent        int64
	LockedBalance     int64
	TransactionCount  int64
	LastTransactionAt *time.Time
	TotalValuation    decimal.Decimal
	Coins             []CoinStats
}

// WalletReconciliation compares a wallet's stored counters with a ledger replay
type WalletReconciliation struct {
	WalletID         uint64
	StoredBalance    int64
	StoredReceived   int64
	StoredSpent      int64
	ReplayedBalance  int64
	ReplayedReceived int64
	ReplayedSpent    int64
	EntriesReplayed  int64
}

// InSync reports whether the stored projection matches the ledger
func (r WalletReconciliation) InSync() bool {
	return r.StoredBalance == r.ReplayedBalance &&
		r.StoredReceived == r.ReplayedReceived &&
		r.StoredSpent == r.ReplayedSpent
}

// ReplayLedger folds entries into received/spent totals for walletID
func ReplayLedger(walletID uint64, entries []*Transaction) (received, spent int64) {
	for _, e := range entries {
		if e.Credits(walletID) {
			received += e.Amount
		}
		if e.Debits(walletID) {
			spent += e.Amount
		}
	}
	return received, spent
}
