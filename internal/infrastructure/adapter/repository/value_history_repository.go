package repository

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ValueHistoryRepository implements ValueHistoryRepository interface using GORM
type ValueHistoryRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewValueHistoryRepository creates a new ValueHistoryRepository instance
func NewValueHistoryRepository(db *gorm.DB, logger coreport.Logger) *ValueHistoryRepository {
	return &ValueHistoryRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Record appends a value sample. Timestamps are stored in UTC so range scans compare consistently.
func (r *ValueHistoryRepository) Record(ctx context.Context, sample *entity.ValueSample) error {
	m := model.ValueSample{
		CoinTypeID: sample.CoinTypeID,
		Value:      sample.Value,
		RecordedAt: sample.RecordedAt.UTC(),
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		r.logger.Error("Failed to record value sample", map[string]any{
			"coin_type_id": sample.CoinTypeID,
			"error":        err.Error(),
		})
		return r.errorClassifier.translate(err, nil)
	}

	sample.ID = m.ID
	r.logger.Debug("Value sample recorded", map[string]any{
		"coin_type_id": sample.CoinTypeID,
		"value":        sample.Value.String(),
	})
	return nil
}

// Range returns samples in [from, to] ordered by time
func (r *ValueHistoryRepository) Range(ctx context.Context, coinTypeID uint64, from, to time.Time) ([]*entity.ValueSample, error) {
	var models []model.ValueSample
	err := r.db.WithContext(ctx).
		Where("coin_type_id = ? AND recorded_at >= ? AND recorded_at <= ?", coinTypeID, from.UTC(), to.UTC()).
		Order("recorded_at ASC, id ASC").
		Find(&models).Error
	if err != nil {
		r.logger.Error("Failed to query value history", map[string]any{
			"coin_type_id": coinTypeID,
			"error":        err.Error(),
		})
		return nil, r.errorClassifier.translate(err, nil)
	}

	samples := make([]*entity.ValueSample, 0, len(models))
	for i := range models {
		samples = append(samples, &entity.ValueSample{
			ID:         models[i].ID,
			CoinTypeID: models[i].CoinTypeID,
			Value:      models[i].Value,
			RecordedAt: models[i].RecordedAt,
		})
	}
	return samples, nil
}
