package model

import (
	"time"

	"github.com/google/uuid"
)

// Wallet represents the database model for coin_wallets
type Wallet struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_coin_wallets_user_coin"`
	CoinTypeID    uint64    `gorm:"not null;uniqueIndex:idx_coin_wallets_user_coin"`
	Balance       int64     `gorm:"not null;default:0;check:balance >= 0"`
	LockedBalance int64     `gorm:"not null;default:0;check:locked_balance BETWEEN 0 AND balance"`
	TotalReceived int64     `gorm:"not null;default:0"`
	TotalSpent    int64     `gorm:"not null;default:0"`
	Version       uint64    `gorm:"not null;default:0"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`

	CoinType CoinType `gorm:"foreignKey:CoinTypeID;references:ID"`
}

// TableName specifies the table name for Wallet
func (Wallet) TableName() string {
	return "coin_wallets"
}
