package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType tags a ledger entry with the economic event it records
type TransactionType string

// Transaction types
const (
	TypePurchase   TransactionType = "purchase"
	TypeTransfer   TransactionType = "transfer"
	TypeReward     TransactionType = "reward"
	TypeSpend      TransactionType = "spend"
	TypeRefund     TransactionType = "refund"
	TypeArtistMint TransactionType = "artist_mint"
)

var validTransactionTypes = map[TransactionType]struct{}{
	TypePurchase:   {},
	TypeTransfer:   {},
	TypeReward:     {},
	TypeSpend:      {},
	TypeRefund:     {},
	TypeArtistMint: {},
}

// IsValid reports whether t is a known transaction type
func (t TransactionType) IsValid() bool {
	_, ok := validTransactionTypes[t]
	return ok
}

// ParseTransactionType converts a string to a TransactionType
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("%w: unknown transaction type %q", errs.ErrInvalidRequest, s)
	}
	return t, nil
}

// Transaction is an immutable ledger entry. Nil FromWalletID means an external source
// (purchase, reward, mint); nil ToWalletID means an external sink.
type Transaction struct {
	ID                 uint64
	CoinTypeID         uint64
	FromWalletID       *uint64
	ToWalletID         *uint64
	Amount             int64
	ValueAtTransaction *decimal.Decimal // nil only on legacy rows
	Type               TransactionType
	BookingID          *uuid.UUID
	Description        string
	Metadata           map[string]any
	IdempotencyKey     string
	InitiatedBy        uuid.UUID // user whose request wrote the row; keys are unique per initiator
	CreatedAt          time.Time
}

// AmountString returns the amount with two decimal places
func (t *Transaction) AmountString() string {
	return FormatCoinAmount(t.Amount)
}

// Debits reports whether the entry removes coins from walletID
func (t *Transaction) Debits(walletID uint64) bool {
	return t.FromWalletID != nil && *t.FromWalletID == walletID
}

// Credits reports whether the entry adds coins to walletID
func (t *Transaction) Credits(walletID uint64) bool {
	return t.ToWalletID != nil && *t.ToWalletID == walletID
}

// NetFor returns the signed balance effect of this entry on walletID
func (t *Transaction) NetFor(walletID uint64) int64 {
	var net int64
	if t.Credits(walletID) {
		net += t.Amount
	}
	if t.Debits(walletID) {
		net -= t.Amount
	}
	return net
}

// Valuation returns amount times the snapshotted unit value; ok is false for legacy rows
func (t *Transaction) Valuation() (value decimal.Decimal, ok bool) {
	if t.ValueAtTransaction == nil {
		return decimal.Zero, false
	}
	return Valuation(t.Amount, *t.ValueAtTransaction), true
}

// Validate checks the structural invariants of an entry before it is appended
func (t *Transaction) Validate() error {
	if t.Amount <= 0 {
		return errs.ErrInvalidAmount
	}
	if !t.Type.IsValid() {
		return fmt.Errorf("%w: unknown transaction type %q", errs.ErrInvalidOperation, t.Type)
	}
	if t.FromWalletID == nil && t.ToWalletID == nil {
		return fmt.Errorf("%w: entry references no wallet", errs.ErrInvalidOperation)
	}
	if t.FromWalletID != nil && t.ToWalletID != nil && *t.FromWalletID == *t.ToWalletID {
		return errs.ErrSelfTransferNotAllowed
	}
	if t.IdempotencyKey != "" && t.InitiatedBy == uuid.Nil {
		return fmt.Errorf("%w: idempotency key without an initiating user", errs.ErrInvalidOperation)
	}
	return nil
}

// TransactionFilter narrows a user's ledger listing
type TransactionFilter struct {
	WalletID *uint64
	Type     *TransactionType
	Limit    int
	Offset   int
}

// Listing limits
const (
	DefaultTransactionLimit = 20
	MaxTransactionLimit     = 100
)

// Normalize applies default and maximum page sizes
func (f TransactionFilter) Normalize() TransactionFilter {
	if f.Limit <= 0 {
		f.Limit = DefaultTransactionLimit
	}
	if f.Limit > MaxTransactionLimit {
		f.Limit = MaxTransactionLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}
