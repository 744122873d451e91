package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ValueSample represents the database model for coin_value_history
type ValueSample struct {
	ID         uint64          `gorm:"primaryKey;autoIncrement"`
	CoinTypeID uint64          `gorm:"not null;index:idx_coin_value_history_coin_time,priority:1"`
	Value      decimal.Decimal `gorm:"type:numeric(20,8);not null"`
	RecordedAt time.Time       `gorm:"not null;index:idx_coin_value_history_coin_time,priority:2"`

	CoinType CoinType `gorm:"foreignKey:CoinTypeID;references:ID"`
}

// TableName specifies the table name for ValueSample
func (ValueSample) TableName() string {
	return "coin_value_history"
}
