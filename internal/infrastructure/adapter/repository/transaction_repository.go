package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const userWalletsSubquery = "SELECT id FROM coin_wallets WHERE user_id = ?"

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(t *entity.Transaction) (model.Transaction, error) {
	m := model.Transaction{
		ID:              t.ID,
		CoinTypeID:      t.CoinTypeID,
		FromWalletID:    t.FromWalletID,
		ToWalletID:      t.ToWalletID,
		Amount:          t.Amount,
		TransactionType: string(t.Type),
		BookingID:       t.BookingID,
		Description:     t.Description,
		CreatedAt:       t.CreatedAt,
	}
	if t.ValueAtTransaction != nil {
		m.ValueAtTransaction = decimal.NewNullDecimal(*t.ValueAtTransaction)
	}
	if t.IdempotencyKey != "" {
		key := t.IdempotencyKey
		m.IdempotencyKey = &key
	}
	if t.InitiatedBy != uuid.Nil {
		initiator := t.InitiatedBy
		m.InitiatedBy = &initiator
	}
	if len(t.Metadata) > 0 {
		raw, err := json.Marshal(t.Metadata)
		if err != nil {
			return m, fmt.Errorf("%w: metadata is not serializable: %s", errs.ErrInvalidRequest, err.Error())
		}
		m.Metadata = string(raw)
	}
	return m, nil
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	t := &entity.Transaction{
		ID:           m.ID,
		CoinTypeID:   m.CoinTypeID,
		FromWalletID: m.FromWalletID,
		ToWalletID:   m.ToWalletID,
		Amount:       m.Amount,
		Type:         entity.TransactionType(m.TransactionType),
		BookingID:    m.BookingID,
		Description:  m.Description,
		CreatedAt:    m.CreatedAt,
	}
	if m.ValueAtTransaction.Valid {
		v := m.ValueAtTransaction.Decimal
		t.ValueAtTransaction = &v
	}
	if m.IdempotencyKey != nil {
		t.IdempotencyKey = *m.IdempotencyKey
	}
	if m.InitiatedBy != nil {
		t.InitiatedBy = *m.InitiatedBy
	}
	if m.Metadata != "" {
		if err := json.Unmarshal([]byte(m.Metadata), &t.Metadata); err != nil {
			r.logger.Warn("Ledger row has unreadable metadata", map[string]any{
				"transaction_id": m.ID,
				"error":          err.Error(),
			})
		}
	}
	return t
}

func (r *TransactionRepository) modelsToEntities(models []model.Transaction) []*entity.Transaction {
	out := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		out = append(out, r.modelToEntity(&models[i]))
	}
	return out
}

// Create appends a ledger row
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Creating ledger entry", map[string]any{
		"type":            transaction.Type,
		"coin_type_id":    transaction.CoinTypeID,
		"amount":          transaction.AmountString(),
		"idempotency_key": transaction.IdempotencyKey,
	})

	if err := transaction.Validate(); err != nil {
		return err
	}
	if transaction.CreatedAt.IsZero() {
		transaction.CreatedAt = r.timeProvider.Now()
	}

	transactionModel, err := r.entityToModel(transaction)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(&transactionModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate idempotency key", map[string]any{
				"idempotency_key": transaction.IdempotencyKey,
				"initiated_by":    transaction.InitiatedBy.String(),
			})
			return errs.ErrDuplicateTransaction
		}

		r.logger.Error("Failed to create ledger entry", map[string]any{
			"type":  transaction.Type,
			"error": result.Error.Error(),
		})
		return r.errorClassifier.translate(result.Error, nil)
	}

	transaction.ID = transactionModel.ID
	r.logger.Debug("Ledger entry created", map[string]any{
		"transaction_id": transaction.ID,
		"type":           transaction.Type,
	})
	return nil
}

// GetByID retrieves a ledger row by id
func (r *TransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	var transactionModel model.Transaction
	result := r.db.WithContext(ctx).First(&transactionModel, id)
	if result.Error != nil {
		return nil, r.errorClassifier.translate(result.Error, errs.ErrTransactionNotFound)
	}
	return r.modelToEntity(&transactionModel), nil
}

// GetByIdempotencyKey retrieves the row initiatedBy wrote under key
func (r *TransactionRepository) GetByIdempotencyKey(ctx context.Context, initiatedBy uuid.UUID, key string) (*entity.Transaction, error) {
	r.logger.Debug("Looking up idempotency key", map[string]any{
		"idempotency_key": key,
		"initiated_by":    initiatedBy.String(),
	})

	var transactionModel model.Transaction
	result := r.db.WithContext(ctx).
		Where("initiated_by = ? AND idempotency_key = ?", initiatedBy, key).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		r.logger.Error("Failed to look up idempotency key", map[string]any{
			"idempotency_key": key,
			"error":           result.Error.Error(),
		})
		return nil, r.errorClassifier.translate(result.Error, nil)
	}
	return r.modelToEntity(&transactionModel), nil
}

// ListForUser returns one page of the user's ledger, newest first
func (r *TransactionRepository) ListForUser(ctx context.Context, userID uuid.UUID, filter entity.TransactionFilter) ([]*entity.Transaction, int64, error) {
	filter = filter.Normalize()
	r.logger.Debug("Listing ledger entries", map[string]any{
		"user_id": userID.String(),
		"limit":   filter.Limit,
		"offset":  filter.Offset,
	})

	scoped := func() *gorm.DB {
		query := r.db.WithContext(ctx).Model(&model.Transaction{}).
			Where("(from_wallet_id IN ("+userWalletsSubquery+") OR to_wallet_id IN ("+userWalletsSubquery+"))", userID, userID)
		if filter.WalletID != nil {
			query = query.Where("(from_wallet_id = ? OR to_wallet_id = ?)", *filter.WalletID, *filter.WalletID)
		}
		if filter.Type != nil {
			query = query.Where("transaction_type = ?", string(*filter.Type))
		}
		return query
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		r.logger.Error("Failed to count ledger entries", map[string]any{
			"user_id": userID.String(),
			"error":   err.Error(),
		})
		return nil, 0, r.errorClassifier.translate(err, nil)
	}

	var models []model.Transaction
	if err := scoped().Order("id DESC").Limit(filter.Limit).Offset(filter.Offset).Find(&models).Error; err != nil {
		r.logger.Error("Failed to list ledger entries", map[string]any{
			"user_id": userID.String(),
			"error":   err.Error(),
		})
		return nil, 0, r.errorClassifier.translate(err, nil)
	}

	return r.modelsToEntities(models), total, nil
}

// ListForWallet returns every row touching walletID in application order
func (r *TransactionRepository) ListForWallet(ctx context.Context, walletID uint64) ([]*entity.Transaction, error) {
	var models []model.Transaction
	result := r.db.WithContext(ctx).
		Where("from_wallet_id = ? OR to_wallet_id = ?", walletID, walletID).
		Order("id ASC").
		Find(&models)
	if result.Error != nil {
		r.logger.Error("Failed to list wallet ledger", map[string]any{
			"wallet_id": walletID,
			"error":     result.Error.Error(),
		})
		return nil, r.errorClassifier.translate(result.Error, nil)
	}
	return r.modelsToEntities(models), nil
}

type ledgerTotalsRow struct {
	Received         int64
	Spent            int64
	TransactionCount int64
}

// TotalsForUser computes live totals over every ledger row touching the user's wallets
func (r *TransactionRepository) TotalsForUser(ctx context.Context, userID uuid.UUID) (entity.LedgerTotals, error) {
	var row ledgerTotalsRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			CAST(COALESCE(SUM(CASE WHEN to_wallet_id IN (`+userWalletsSubquery+`) THEN amount ELSE 0 END), 0) AS BIGINT) AS received,
			CAST(COALESCE(SUM(CASE WHEN from_wallet_id IN (`+userWalletsSubquery+`) THEN amount ELSE 0 END), 0) AS BIGINT) AS spent,
			COUNT(*) AS transaction_count
		FROM coin_transactions
		WHERE from_wallet_id IN (`+userWalletsSubquery+`) OR to_wallet_id IN (`+userWalletsSubquery+`)`,
		userID, userID, userID, userID,
	).Scan(&row).Error
	if err != nil {
		r.logger.Error("Failed to aggregate ledger", map[string]any{
			"user_id": userID.String(),
			"error":   err.Error(),
		})
		return entity.LedgerTotals{}, r.errorClassifier.translate(err, nil)
	}

	totals := entity.LedgerTotals{
		Received:         row.Received,
		Spent:            row.Spent,
		TransactionCount: row.TransactionCount,
	}
	if totals.TransactionCount == 0 {
		return totals, nil
	}

	var last []model.Transaction
	err = r.db.WithContext(ctx).
		Select("id", "created_at").
		Where("from_wallet_id IN ("+userWalletsSubquery+") OR to_wallet_id IN ("+userWalletsSubquery+")", userID, userID).
		Order("id DESC").
		Limit(1).
		Find(&last).Error
	if err != nil {
		return entity.LedgerTotals{}, r.errorClassifier.translate(err, nil)
	}
	if len(last) == 1 {
		at := last[0].CreatedAt
		totals.LastTransactionAt = &at
	}
	return totals, nil
}
