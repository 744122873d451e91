package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CoinTypeRepository implements CoinTypeRepository interface using GORM
type CoinTypeRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCoinTypeRepository creates a new CoinTypeRepository instance
func NewCoinTypeRepository(db *gorm.DB, logger coreport.Logger) *CoinTypeRepository {
	return &CoinTypeRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func coinTypeModelToEntity(m *model.CoinType) *entity.CoinType {
	return &entity.CoinType{
		ID:                m.ID,
		Name:              m.Name,
		Symbol:            m.Symbol,
		Kind:              entity.CoinKind(m.Kind),
		ArtistID:          m.ArtistID,
		InitialValue:      m.InitialValue,
		CurrentValue:      m.CurrentValue,
		ValuePerFan:       m.ValuePerFan,
		TotalSupply:       m.TotalSupply,
		CirculatingSupply: m.CirculatingSupply,
		MaxSupply:         m.MaxSupply,
		IsActive:          m.IsActive,
		IsTradeable:       m.IsTradeable,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func coinTypeEntityToModel(c *entity.CoinType) model.CoinType {
	return model.CoinType{
		ID:                c.ID,
		Name:              c.Name,
		Symbol:            c.Symbol,
		Kind:              string(c.Kind),
		ArtistID:          c.ArtistID,
		InitialValue:      c.InitialValue,
		CurrentValue:      c.CurrentValue,
		ValuePerFan:       c.ValuePerFan,
		TotalSupply:       c.TotalSupply,
		CirculatingSupply: c.CirculatingSupply,
		MaxSupply:         c.MaxSupply,
		IsActive:          c.IsActive,
		IsTradeable:       c.IsTradeable,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

// Create stores a new coin type
func (r *CoinTypeRepository) Create(ctx context.Context, coinType *entity.CoinType) error {
	r.logger.Debug("Creating coin type", map[string]any{
		"symbol": coinType.Symbol,
		"kind":   coinType.Kind,
	})

	m := coinTypeEntityToModel(coinType)
	result := r.db.WithContext(ctx).Create(&m)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Coin type symbol already exists", map[string]any{"symbol": coinType.Symbol})
			return fmt.Errorf("%w: %s", errs.ErrDuplicateCoinType, coinType.Symbol)
		}
		r.logger.Error("Failed to create coin type", map[string]any{
			"symbol": coinType.Symbol,
			"error":  result.Error.Error(),
		})
		return r.errorClassifier.translate(result.Error, nil)
	}

	coinType.ID = m.ID
	r.logger.Info("Coin type created", map[string]any{
		"coin_type_id": coinType.ID,
		"symbol":       coinType.Symbol,
	})
	return nil
}

// GetByID retrieves a coin type by id
func (r *CoinTypeRepository) GetByID(ctx context.Context, id uint64) (*entity.CoinType, error) {
	var m model.CoinType
	result := r.db.WithContext(ctx).First(&m, id)
	if result.Error != nil {
		return nil, r.errorClassifier.translate(result.Error, errs.ErrCoinTypeNotFound)
	}
	return coinTypeModelToEntity(&m), nil
}

// GetBySymbol retrieves a coin type by symbol
func (r *CoinTypeRepository) GetBySymbol(ctx context.Context, symbol string) (*entity.CoinType, error) {
	var m model.CoinType
	result := r.db.WithContext(ctx).Where("symbol = ?", symbol).First(&m)
	if result.Error != nil {
		return nil, r.errorClassifier.translate(result.Error, errs.ErrCoinTypeNotFound)
	}
	return coinTypeModelToEntity(&m), nil
}

// List returns coin types ordered by id
func (r *CoinTypeRepository) List(ctx context.Context, activeOnly bool) ([]*entity.CoinType, error) {
	query := r.db.WithContext(ctx).Order("id ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var models []model.CoinType
	if err := query.Find(&models).Error; err != nil {
		r.logger.Error("Failed to list coin types", map[string]any{"error": err.Error()})
		return nil, r.errorClassifier.translate(err, nil)
	}

	out := make([]*entity.CoinType, 0, len(models))
	for i := range models {
		out = append(out, coinTypeModelToEntity(&models[i]))
	}
	return out, nil
}

// RegisterMint grows the supply counters with a single guarded update
func (r *CoinTypeRepository) RegisterMint(ctx context.Context, id uint64, amount int64, now time.Time) error {
	r.logger.Debug("Registering mint", map[string]any{
		"coin_type_id": id,
		"amount":       entity.FormatCoinAmount(amount),
	})

	if amount <= 0 {
		return errs.ErrInvalidAmount
	}

	result := r.db.WithContext(ctx).Model(&model.CoinType{}).
		Where("id = ? AND is_active = ? AND (max_supply IS NULL OR circulating_supply + ? <= max_supply)", id, true, amount).
		Updates(map[string]any{
			"circulating_supply": gorm.Expr("circulating_supply + ?", amount),
			"total_supply":       gorm.Expr("total_supply + ?", amount),
			"updated_at":         now,
		})
	if result.Error != nil {
		r.logger.Error("Failed to register mint", map[string]any{
			"coin_type_id": id,
			"error":        result.Error.Error(),
		})
		return r.errorClassifier.translate(result.Error, nil)
	}
	if result.RowsAffected == 1 {
		return nil
	}

	// The guard did not match; re-read to report why
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := current.CanMint(amount); err != nil {
		r.logger.Warn("Mint rejected", map[string]any{
			"coin_type_id": id,
			"amount":       entity.FormatCoinAmount(amount),
			"error":        err.Error(),
		})
		return err
	}
	return errs.ErrWriteConflict
}

// UpdateValue sets current_value
func (r *CoinTypeRepository) UpdateValue(ctx context.Context, id uint64, value decimal.Decimal, now time.Time) error {
	result := r.db.WithContext(ctx).Model(&model.CoinType{}).
		Where("id = ?", id).
		Updates(map[string]any{"current_value": value, "updated_at": now})
	if result.Error != nil {
		r.logger.Error("Failed to update coin value", map[string]any{
			"coin_type_id": id,
			"error":        result.Error.Error(),
		})
		return r.errorClassifier.translate(result.Error, nil)
	}
	if result.RowsAffected == 0 {
		return errs.ErrCoinTypeNotFound
	}
	return nil
}

// SetActive flips is_active
func (r *CoinTypeRepository) SetActive(ctx context.Context, id uint64, active bool, now time.Time) error {
	result := r.db.WithContext(ctx).Model(&model.CoinType{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_active": active, "updated_at": now})
	if result.Error != nil {
		r.logger.Error("Failed to change coin type activation", map[string]any{
			"coin_type_id": id,
			"error":        result.Error.Error(),
		})
		return r.errorClassifier.translate(result.Error, nil)
	}
	if result.RowsAffected == 0 {
		return errs.ErrCoinTypeNotFound
	}
	return nil
}
