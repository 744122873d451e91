package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents the database model for coin_transactions
type Transaction struct {
	ID                 uint64              `gorm:"primaryKey;autoIncrement"`
	CoinTypeID         uint64              `gorm:"not null;index"`
	FromWalletID       *uint64             `gorm:"index"`
	ToWalletID         *uint64             `gorm:"index;check:chk_coin_transactions_distinct_wallets,from_wallet_id <> to_wallet_id"`
	Amount             int64               `gorm:"not null;check:amount > 0"`
	ValueAtTransaction decimal.NullDecimal `gorm:"type:numeric(20,8)"`
	TransactionType    string              `gorm:"not null;size:20;index"`
	BookingID          *uuid.UUID          `gorm:"type:uuid"`
	Description        string              `gorm:"type:text"`
	Metadata           string              `gorm:"type:text"` // JSON object
	InitiatedBy        *uuid.UUID          `gorm:"type:uuid;uniqueIndex:idx_coin_transactions_idempotency,priority:1"`
	IdempotencyKey     *string             `gorm:"size:255;uniqueIndex:idx_coin_transactions_idempotency,priority:2"`
	CreatedAt          time.Time           `gorm:"not null;index"`

	CoinType   CoinType `gorm:"foreignKey:CoinTypeID;references:ID"`
	FromWallet *Wallet  `gorm:"foreignKey:FromWalletID;references:ID"`
	ToWallet   *Wallet  `gorm:"foreignKey:ToWalletID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "coin_transactions"
}
