package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CoinType represents the database model for coin_types
type CoinType struct {
	ID                uint64          `gorm:"primaryKey;autoIncrement"`
	Name              string          `gorm:"not null;size:100"`
	Symbol            string          `gorm:"not null;size:10;uniqueIndex:idx_coin_types_symbol"`
	Kind              string          `gorm:"not null;size:20"`
	ArtistID          *uuid.UUID      `gorm:"type:uuid;index"`
	InitialValue      decimal.Decimal `gorm:"type:numeric(20,8);not null"`
	CurrentValue      decimal.Decimal `gorm:"type:numeric(20,8);not null;check:current_value > 0"`
	ValuePerFan       decimal.Decimal `gorm:"type:numeric(20,8);not null;default:0"`
	TotalSupply       int64           `gorm:"not null;default:0"`
	CirculatingSupply int64           `gorm:"not null;default:0"`
	MaxSupply         *int64          `gorm:"check:chk_coin_types_supply_cap,max_supply IS NULL OR circulating_supply <= max_supply"`
	IsActive          bool            `gorm:"not null;default:true"`
	IsTradeable       bool            `gorm:"not null;default:false"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
}

// TableName specifies the table name for CoinType
func (CoinType) TableName() string {
	return "coin_types"
}
