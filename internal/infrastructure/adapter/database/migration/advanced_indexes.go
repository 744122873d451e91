package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes and storage settings
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

type indexStatement struct {
	name string
	sql  string
}

// CreateAdvancedIndexes creates PostgreSQL-only indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	statements := []indexStatement{
		{
			// Ledger rows are appended in time order
			name: "idx_coin_transactions_created_at_brin",
			sql: `CREATE INDEX IF NOT EXISTS idx_coin_transactions_created_at_brin
				ON coin_transactions USING BRIN (created_at)
				WITH (pages_per_range = 32)`,
		},
		{
			name: "idx_coin_transactions_booking_id",
			sql: `CREATE INDEX IF NOT EXISTS idx_coin_transactions_booking_id
				ON coin_transactions (booking_id)
				WHERE booking_id IS NOT NULL`,
		},
		{
			name: "idx_coin_types_active_symbol",
			sql: `CREATE INDEX IF NOT EXISTS idx_coin_types_active_symbol
				ON coin_types (symbol)
				WHERE is_active`,
		},
		{
			name: "idx_coin_value_history_recorded_at_brin",
			sql: `CREATE INDEX IF NOT EXISTS idx_coin_value_history_recorded_at_brin
				ON coin_value_history USING BRIN (recorded_at)`,
		},
	}

	for _, stmt := range statements {
		if err := m.db.WithContext(ctx).Exec(stmt.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": stmt.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL storage tweaks. Failures are logged, not returned.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	tweaks := []indexStatement{
		// Wallet rows are updated in place on every movement; leave room for HOT updates
		{name: "coin_wallets fillfactor", sql: `ALTER TABLE coin_wallets SET (fillfactor = 80)`},
		{name: "coin_transactions from_wallet_id statistics", sql: `ALTER TABLE coin_transactions ALTER COLUMN from_wallet_id SET STATISTICS 1000`},
		{name: "coin_transactions to_wallet_id statistics", sql: `ALTER TABLE coin_transactions ALTER COLUMN to_wallet_id SET STATISTICS 1000`},
	}

	for _, tweak := range tweaks {
		if err := m.db.WithContext(ctx).Exec(tweak.sql).Error; err != nil {
			m.logger.Warn("Failed to apply performance tweak", map[string]any{
				"tweak": tweak.name,
				"error": err.Error(),
			})
		}
	}
}
