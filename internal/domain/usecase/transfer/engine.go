package transfer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/usecase/wallet"
	"github.com/google/uuid"
)

// Config holds the engine's retry and timeout settings
type Config struct {
	Retry            RetryPolicy
	OperationTimeout time.Duration
}

// DefaultConfig returns the default engine configuration
func DefaultConfig() Config {
	return Config{
		Retry:            DefaultRetryPolicy(),
		OperationTimeout: 5 * time.Second,
	}
}

// Engine is the only writer of wallets, ledger rows and coin supply.
// Each operation runs as one database transaction; lost write races are retried.
type Engine struct {
	uow          persistence.UnitOfWork
	cache        coreport.Cache
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	validator    *OperationValidator
	idempotency  *IdempotencyHandler
	config       Config
}

var _ usecase.TransferUseCase = (*Engine)(nil)

// NewEngine creates a new transfer engine
func NewEngine(
	uow persistence.UnitOfWork,
	cache coreport.Cache,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	config Config,
) *Engine {
	if config.OperationTimeout <= 0 {
		config.OperationTimeout = DefaultConfig().OperationTimeout
	}

	idempotency := NewIdempotencyHandler(
		uow.GetTransactionRepository(context.Background()),
		uow.GetWalletRepository(context.Background()),
	)

	return &Engine{
		uow:          uow,
		cache:        cache,
		timeProvider: timeProvider,
		logger:       logger,
		validator:    NewOperationValidator(),
		idempotency:  idempotency,
		config:       config,
	}
}

// Execute runs one operation:
// 1. Validates it without touching storage
// 2. Replays the initiator's earlier row for a reused idempotency key, or rejects a key that recorded another operation
// 3. Applies the wallet writes and the ledger append in one transaction, retrying lost races
// 4. Drops the cached views of every user involved
func (e *Engine) Execute(ctx context.Context, op entity.Operation) (*entity.Transaction, error) {
	if err := e.validator.Validate(op); err != nil {
		return nil, err
	}

	ctx, cancel := e.timeProvider.WithTimeout(ctx, coreport.Duration(e.config.OperationTimeout))
	defer cancel()

	d := op.Details()
	if existing, found, err := e.idempotency.CheckIdempotency(ctx, op); err != nil {
		e.logFailure("Idempotency check failed", err)
		return nil, err
	} else if found {
		e.logger.Info("Idempotent replay, returning existing transaction", map[string]any{
			"transaction_id":  existing.ID,
			"idempotency_key": d.IdempotencyKey,
			"initiated_by":    op.Initiator().String(),
		})
		return existing, nil
	}

	var txn *entity.Transaction
	attempts, err := e.config.Retry.run(ctx, e.logger, string(op.Type()), func() error {
		var applyErr error
		txn, applyErr = e.apply(ctx, op)
		return applyErr
	})

	if errors.Is(err, errs.ErrDuplicateTransaction) {
		// Lost the race on the idempotency key; the winner's row is the answer if it records op
		existing, found, lookupErr := e.idempotency.CheckIdempotency(ctx, op)
		if lookupErr != nil {
			err = lookupErr
		} else if found {
			return existing, nil
		}
	}

	if err != nil {
		transferErr := errs.NewTransferError(string(op.Type()), d.CoinTypeID,
			entity.FormatCoinAmount(d.Amount), d.IdempotencyKey, attempts, err)
		e.logFailure("Operation failed", transferErr)
		return nil, transferErr
	}

	e.invalidate(ctx, partiesOf(op)...)

	e.logger.Info("Operation applied", map[string]any{
		"transaction_id": txn.ID,
		"type":           txn.Type,
		"coin_type_id":   txn.CoinTypeID,
		"amount":         txn.AmountString(),
		"attempts":       attempts,
	})
	return txn, nil
}

// apply performs one attempt of op inside a fresh transaction
func (e *Engine) apply(ctx context.Context, op entity.Operation) (*entity.Transaction, error) {
	txCtx, err := e.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			e.rollback(txCtx)
		}
	}()

	d := op.Details()
	coinTypes := e.uow.GetCoinTypeRepository(txCtx)
	wallets := e.uow.GetWalletRepository(txCtx)
	ledger := e.uow.GetTransactionRepository(txCtx)

	coinType, err := e.checkCoinType(txCtx, coinTypes, op)
	if err != nil {
		return nil, err
	}
	valueAtTransaction := coinType.CurrentValue

	source, destination, err := e.resolveWallets(txCtx, wallets, op)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, 2)
	if source != nil {
		ids = append(ids, source.ID)
	}
	if destination != nil {
		ids = append(ids, destination.ID)
	}
	locked, err := wallets.LockForUpdate(txCtx, ids...)
	if err != nil {
		return nil, err
	}

	now := e.timeProvider.Now()
	next := make(map[uint64]*entity.Wallet, len(locked))
	for _, w := range locked {
		if err := w.CheckInvariants(); err != nil {
			e.logger.Error("Wallet projection drifted from its counters, repair required", map[string]any{
				"wallet_id": w.ID,
				"error":     err.Error(),
			})
			return nil, err
		}
		next[w.ID] = w.Clone()
	}

	if source != nil {
		if err := next[source.ID].Debit(d.Amount, now); err != nil {
			return nil, err
		}
	}
	if destination != nil {
		if err := next[destination.ID].Credit(d.Amount, now); err != nil {
			return nil, err
		}
	}

	// locked is ordered by id, so writes follow lock order
	for _, prev := range locked {
		if err := wallets.ApplyDelta(txCtx, prev, next[prev.ID]); err != nil {
			return nil, err
		}
	}

	if op.Type() == entity.TypeArtistMint {
		if err := coinTypes.RegisterMint(txCtx, coinType.ID, d.Amount, now); err != nil {
			return nil, err
		}
	}

	txn := &entity.Transaction{
		CoinTypeID:         coinType.ID,
		Amount:             d.Amount,
		ValueAtTransaction: &valueAtTransaction,
		Type:               op.Type(),
		BookingID:          d.BookingID,
		Description:        d.Description,
		Metadata:           d.Metadata,
		IdempotencyKey:     d.IdempotencyKey,
		InitiatedBy:        op.Initiator(),
		CreatedAt:          now,
	}
	if source != nil {
		txn.FromWalletID = &source.ID
	}
	if destination != nil {
		txn.ToWalletID = &destination.ID
	}
	if err := ledger.Create(txCtx, txn); err != nil {
		return nil, err
	}

	if err := e.uow.Commit(txCtx); err != nil {
		return nil, err
	}
	committed = true

	return txn, nil
}

// checkCoinType re-reads the coin type inside the transaction and applies the kind's rules
func (e *Engine) checkCoinType(
	ctx context.Context,
	coinTypes persistence.CoinTypeRepository,
	op entity.Operation,
) (*entity.CoinType, error) {
	d := op.Details()
	coinType, err := coinTypes.GetByID(ctx, d.CoinTypeID)
	if err != nil {
		return nil, err
	}
	if err := coinType.EnsureActive(); err != nil {
		return nil, err
	}

	switch op.Type() {
	case entity.TypeTransfer:
		if err := coinType.EnsureTradeable(); err != nil {
			return nil, err
		}
	case entity.TypePurchase, entity.TypeReward, entity.TypeRefund:
		if err := coinType.EnsureCreditableWithoutMint(); err != nil {
			return nil, err
		}
	case entity.TypeArtistMint:
		if err := coinType.CanMint(d.Amount); err != nil {
			return nil, err
		}
	}

	return coinType, nil
}

// resolveWallets loads the debited wallet, which must exist, and get-or-creates the credited one
func (e *Engine) resolveWallets(
	ctx context.Context,
	wallets persistence.WalletRepository,
	op entity.Operation,
) (source, destination *entity.Wallet, err error) {
	coinTypeID := op.Details().CoinTypeID

	if from, ok := op.Source(); ok {
		source, err = wallets.Get(ctx, from, coinTypeID)
		if err != nil {
			return nil, nil, err
		}
	}
	if to, ok := op.Destination(); ok {
		destination, err = wallets.GetOrCreate(ctx, to, coinTypeID)
		if err != nil {
			return nil, nil, err
		}
	}
	return source, destination, nil
}

func (e *Engine) rollback(txCtx context.Context) {
	if err := e.uow.Rollback(txCtx); err != nil {
		e.logger.Warn("Failed to roll back transaction", map[string]any{
			"error": err.Error(),
		})
	}
}

// invalidate drops cached views for users whose wallets just changed.
// A failure leaves a stale entry until its TTL expires.
func (e *Engine) invalidate(ctx context.Context, userIDs ...uuid.UUID) {
	if e.cache == nil || len(userIDs) == 0 {
		return
	}
	if err := e.cache.Delete(ctx, wallet.CacheKeys(userIDs...)...); err != nil {
		e.logger.Warn("Failed to invalidate cached wallet views", map[string]any{
			"error": err.Error(),
		})
	}
}

// logFailure logs client errors at warn and everything else at error
func (e *Engine) logFailure(msg string, err error) {
	fields := errs.LogFieldsOf(err)
	if errs.IsValidationError(err) || errs.IsBusinessRuleError(err) || errs.IsNotFoundError(err) ||
		errors.Is(err, errs.ErrDuplicateTransaction) {
		e.logger.Warn(msg, fields)
		return
	}
	e.logger.Error(msg, fields)
}

func partiesOf(op entity.Operation) []uuid.UUID {
	users := make([]uuid.UUID, 0, 2)
	if from, ok := op.Source(); ok {
		users = append(users, from)
	}
	if to, ok := op.Destination(); ok {
		users = append(users, to)
	}
	return users
}

// withRetry runs attempt under the operation timeout and retry policy
func (e *Engine) withRetry(ctx context.Context, operation string, attempt func(ctx context.Context) error) (int, error) {
	ctx, cancel := e.timeProvider.WithTimeout(ctx, coreport.Duration(e.config.OperationTimeout))
	defer cancel()

	return e.config.Retry.run(ctx, e.logger, operation, func() error {
		return attempt(ctx)
	})
}

func wrapAttempts(operation string, attempts int, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s failed after %d attempt(s): %w", operation, attempts, err)
}
