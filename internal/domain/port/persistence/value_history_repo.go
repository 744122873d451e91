package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
)

// ValueHistoryRepository stores the append-only unit value series of coin types
type ValueHistoryRepository interface {
	// Record appends a sample
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Record(ctx context.Context, sample *entity.ValueSample) error

	// Range returns samples with from <= recorded_at <= to, oldest first
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Range(ctx context.Context, coinTypeID uint64, from, to time.Time) ([]*entity.ValueSample, error)
}
