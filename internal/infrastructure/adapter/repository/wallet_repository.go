package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WalletRepository implements WalletRepository interface using GORM
type WalletRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewWalletRepository creates a new WalletRepository instance
func NewWalletRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *WalletRepository {
	return &WalletRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func walletModelToEntity(m *model.Wallet) *entity.Wallet {
	return &entity.Wallet{
		ID:            m.ID,
		UserID:        m.UserID,
		CoinTypeID:    m.CoinTypeID,
		Balance:       m.Balance,
		LockedBalance: m.LockedBalance,
		TotalReceived: m.TotalReceived,
		TotalSpent:    m.TotalSpent,
		Version:       m.Version,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *WalletRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	translated := r.errorClassifier.translate(err, errs.ErrWalletNotFound)
	if errors.Is(translated, errs.ErrWalletNotFound) || errors.Is(translated, errs.ErrWriteConflict) {
		r.logger.Debug(fmt.Sprintf("Wallet lookup failed when %s", operation), fields)
		return translated
	}

	fields["error"] = err.Error()
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	return translated
}

// GetOrCreate returns the wallet for the pair, inserting an empty one if none exists
func (r *WalletRepository) GetOrCreate(ctx context.Context, userID uuid.UUID, coinTypeID uint64) (*entity.Wallet, error) {
	r.logger.Debug("Getting or creating wallet", map[string]any{
		"user_id":      userID.String(),
		"coin_type_id": coinTypeID,
	})

	w, err := entity.NewWallet(userID, coinTypeID, r.timeProvider.Now())
	if err != nil {
		return nil, err
	}

	walletModel := model.Wallet{
		UserID:     w.UserID,
		CoinTypeID: w.CoinTypeID,
		CreatedAt:  w.CreatedAt,
		UpdatedAt:  w.UpdatedAt,
	}

	result := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "coin_type_id"}},
			DoNothing: true,
		}).
		Create(&walletModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("creating wallet", result.Error, map[string]any{
			"user_id":      userID.String(),
			"coin_type_id": coinTypeID,
		})
	}

	if result.RowsAffected == 1 && walletModel.ID != 0 {
		r.logger.Info("Wallet created", map[string]any{
			"wallet_id":    walletModel.ID,
			"user_id":      userID.String(),
			"coin_type_id": coinTypeID,
		})
		return walletModelToEntity(&walletModel), nil
	}

	return r.Get(ctx, userID, coinTypeID)
}

// Get retrieves the wallet for (userID, coinTypeID)
func (r *WalletRepository) Get(ctx context.Context, userID uuid.UUID, coinTypeID uint64) (*entity.Wallet, error) {
	var walletModel model.Wallet
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND coin_type_id = ?", userID, coinTypeID).
		First(&walletModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting wallet", result.Error, map[string]any{
			"user_id":      userID.String(),
			"coin_type_id": coinTypeID,
		})
	}
	return walletModelToEntity(&walletModel), nil
}

// GetByID retrieves a wallet by id
func (r *WalletRepository) GetByID(ctx context.Context, id uint64) (*entity.Wallet, error) {
	var walletModel model.Wallet
	result := r.db.WithContext(ctx).First(&walletModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting wallet by id", result.Error, map[string]any{
			"wallet_id": id,
		})
	}
	return walletModelToEntity(&walletModel), nil
}

// ListByUser returns all wallets of a user
func (r *WalletRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Wallet, error) {
	r.logger.Debug("Listing wallets", map[string]any{"user_id": userID.String()})

	var models []model.Wallet
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("coin_type_id ASC").
		Find(&models)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing wallets", result.Error, map[string]any{
			"user_id": userID.String(),
		})
	}

	wallets := make([]*entity.Wallet, 0, len(models))
	for i := range models {
		wallets = append(wallets, walletModelToEntity(&models[i]))
	}
	return wallets, nil
}

// LockForUpdate locks the wallets one at a time in ascending id order
func (r *WalletRepository) LockForUpdate(ctx context.Context, ids ...uint64) ([]*entity.Wallet, error) {
	ordered := slices.Clone(ids)
	slices.Sort(ordered)
	ordered = slices.Compact(ordered)

	r.logger.Debug("Locking wallets", map[string]any{"wallet_ids": ordered})

	wallets := make([]*entity.Wallet, 0, len(ordered))
	for _, id := range ordered {
		var walletModel model.Wallet
		result := forUpdate(r.db.WithContext(ctx)).Where("id = ?", id).First(&walletModel)
		if result.Error != nil {
			return nil, r.handleDatabaseError("locking wallet", result.Error, map[string]any{
				"wallet_id": id,
			})
		}
		wallets = append(wallets, walletModelToEntity(&walletModel))
	}
	return wallets, nil
}

// ApplyDelta performs the compare-and-set write of a wallet
func (r *WalletRepository) ApplyDelta(ctx context.Context, prev, next *entity.Wallet) error {
	if prev.ID == 0 || prev.ID != next.ID {
		return fmt.Errorf("%w: mismatched wallet snapshots", errs.ErrInvalidOperation)
	}
	if err := next.CheckInvariants(); err != nil {
		r.logger.Error("Refusing wallet write that breaks invariants", map[string]any{
			"wallet_id": next.ID,
			"error":     err.Error(),
		})
		return err
	}

	r.logger.Debug("Applying wallet delta", map[string]any{
		"wallet_id":    next.ID,
		"old_balance":  entity.FormatCoinAmount(prev.Balance),
		"new_balance":  entity.FormatCoinAmount(next.Balance),
		"locked":       entity.FormatCoinAmount(next.LockedBalance),
		"prev_version": prev.Version,
	})

	result := r.db.WithContext(ctx).Model(&model.Wallet{}).
		Where("id = ? AND balance = ? AND version = ?", prev.ID, prev.Balance, prev.Version).
		Updates(map[string]any{
			"balance":        next.Balance,
			"locked_balance": next.LockedBalance,
			"total_received": next.TotalReceived,
			"total_spent":    next.TotalSpent,
			"version":        gorm.Expr("version + 1"),
			"updated_at":     next.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("applying wallet delta", result.Error, map[string]any{
			"wallet_id": next.ID,
		})
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Wallet changed concurrently", map[string]any{
			"wallet_id":        next.ID,
			"expected_balance": entity.FormatCoinAmount(prev.Balance),
			"expected_version": prev.Version,
		})
		return errs.ErrWriteConflict
	}

	next.Version = prev.Version + 1
	return nil
}
