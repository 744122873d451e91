package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientBalance    = 4001
	CodeInvalidAmount          = 4002
	CodeInvalidUserID          = 4003
	CodeDuplicateTransaction   = 4004
	CodeConstraintViolation    = 4005
	CodeAmountOverflow         = 4006
	CodeSelfTransferNotAllowed = 4007
	CodeInvalidOperation       = 4008
	CodeInsufficientLocked     = 4009
	CodeCoinTypeNotTradeable   = 4010
	CodeInvalidCoinType        = 4011
	CodeInvalidRequest         = 4012
	CodeUnauthorized           = 4013
	CodeForbidden              = 4014
	CodeWalletNotFound         = 4041
	CodeCoinTypeNotFound       = 4042
	CodeTransactionNotFound    = 4043
	CodeConcurrencyConflict    = 4090
	CodeDuplicateCoinType      = 4091
	CodeCoinTypeInactive       = 4220
	CodeSupplyCapExceeded      = 4221

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInsufficientBalance is returned when available balance (balance - locked) is below the debit
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInsufficientLocked is returned when releasing more than is currently locked
	ErrInsufficientLocked = errors.New("insufficient locked balance")

	// ErrInvalidAmount is returned when an amount is zero, negative or not a number
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrAmountOverflow is returned when the amount is too large and would cause overflow
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrInvalidUserID is returned when a user ID is missing or malformed
	ErrInvalidUserID = errors.New("invalid user ID")

	// ErrSelfTransferNotAllowed is returned when source and destination are the same wallet owner
	ErrSelfTransferNotAllowed = errors.New("self transfer is not allowed")

	// ErrInvalidOperation is returned when an operation's parties don't match its kind
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrInvalidCoinType is returned when coin type attributes are invalid
	ErrInvalidCoinType = errors.New("invalid coin type")

	// ErrDuplicateTransaction is returned when an idempotency key was already used
	ErrDuplicateTransaction = errors.New("transaction with this idempotency key already exists")

	// ErrDuplicateCoinType is returned when a coin type symbol is already taken
	ErrDuplicateCoinType = errors.New("coin type with this symbol already exists")

	// ErrWalletNotFound is returned when debiting a wallet that was never credited
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrCoinTypeNotFound is returned when the requested coin type doesn't exist
	ErrCoinTypeNotFound = errors.New("coin type not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrCoinTypeInactive is returned when a coin type was deactivated
	ErrCoinTypeInactive = errors.New("coin type is inactive")

	// ErrCoinTypeNotTradeable is returned when transferring a coin type that can't change hands
	ErrCoinTypeNotTradeable = errors.New("coin type is not tradeable")

	// ErrSupplyCapExceeded is returned when a mint would push circulating supply past max supply
	ErrSupplyCapExceeded = errors.New("supply cap exceeded")

	// ErrConcurrencyConflict is returned when the engine gave up retrying a contended write.
	// Safe for the caller to retry the whole operation.
	ErrConcurrencyConflict = errors.New("concurrent modification, please retry")

	// ErrWriteConflict signals a lost compare-and-set inside a unit of work; the engine retries it
	ErrWriteConflict = errors.New("write conflict")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnauthorized is returned when a request carries no valid credentials
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the caller lacks the required role
	ErrForbidden = errors.New("forbidden")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInsufficientLocked):
		return CodeInsufficientLocked
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrSelfTransferNotAllowed):
		return CodeSelfTransferNotAllowed
	case errors.Is(err, ErrInvalidOperation):
		return CodeInvalidOperation
	case errors.Is(err, ErrInvalidCoinType):
		return CodeInvalidCoinType
	case errors.Is(err, ErrDuplicateTransaction):
		return CodeDuplicateTransaction
	case errors.Is(err, ErrDuplicateCoinType):
		return CodeDuplicateCoinType
	case errors.Is(err, ErrWalletNotFound):
		return CodeWalletNotFound
	case errors.Is(err, ErrCoinTypeNotFound):
		return CodeCoinTypeNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrCoinTypeInactive):
		return CodeCoinTypeInactive
	case errors.Is(err, ErrCoinTypeNotTradeable):
		return CodeCoinTypeNotTradeable
	case errors.Is(err, ErrSupplyCapExceeded):
		return CodeSupplyCapExceeded
	case errors.Is(err, ErrConcurrencyConflict):
		return CodeConcurrencyConflict
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	default:
		return CodeInternalServer
	}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	WalletID  uint64
	Requested string
	Available string
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance in wallet %d: requested %s, available %s",
		e.WalletID, e.Requested, e.Available)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_balance",
		"wallet_id":  e.WalletID,
		"requested":  e.Requested,
		"available":  e.Available,
		"error_code": CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(walletID uint64, requested, available string) error {
	return &InsufficientBalanceError{
		WalletID:  walletID,
		Requested: requested,
		Available: available,
	}
}

// SupplyCapExceededError describes a mint rejected by the coin type's max supply
type SupplyCapExceededError struct {
	CoinTypeID  uint64
	Requested   string
	Circulating string
	MaxSupply   string
}

// Error implements the error interface
func (e *SupplyCapExceededError) Error() string {
	return fmt.Sprintf("supply cap exceeded for coin type %d: minting %s on top of %s exceeds %s",
		e.CoinTypeID, e.Requested, e.Circulating, e.MaxSupply)
}

// Is checks if the target error is an ErrSupplyCapExceeded
func (e *SupplyCapExceededError) Is(target error) bool {
	return target == ErrSupplyCapExceeded
}

// LogFields returns a map of fields for structured logging
func (e *SupplyCapExceededError) LogFields() map[string]any {
	return map[string]any{
		"error_type":   "supply_cap_exceeded",
		"coin_type_id": e.CoinTypeID,
		"requested":    e.Requested,
		"circulating":  e.Circulating,
		"max_supply":   e.MaxSupply,
		"error_code":   CodeSupplyCapExceeded,
	}
}

// NewSupplyCapExceededError creates a new detailed supply cap error
func NewSupplyCapExceededError(coinTypeID uint64, requested, circulating, maxSupply string) error {
	return &SupplyCapExceededError{
		CoinTypeID:  coinTypeID,
		Requested:   requested,
		Circulating: circulating,
		MaxSupply:   maxSupply,
	}
}

// TransferError wraps a failed engine operation with its context
type TransferError struct {
	Kind           string
	CoinTypeID     uint64
	Amount         string
	IdempotencyKey string
	Attempts       int
	Err            error
}

// Error implements the error interface for TransferError
func (e *TransferError) Error() string {
	return fmt.Sprintf("%s of %s (coin type %d) failed after %d attempt(s): %v",
		e.Kind, e.Amount, e.CoinTypeID, e.Attempts, e.Err)
}

// Unwrap returns the underlying error
func (e *TransferError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TransferError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "transfer_error",
		"kind":            e.Kind,
		"coin_type_id":    e.CoinTypeID,
		"amount":          e.Amount,
		"idempotency_key": e.IdempotencyKey,
		"attempts":        e.Attempts,
		"error":           e.Err.Error(),
		"error_code":      ErrorCode(e.Err),
	}
}

// NewTransferError creates a detailed transfer error
func NewTransferError(kind string, coinTypeID uint64, amount, idempotencyKey string, attempts int, err error) error {
	return &TransferError{
		Kind:           kind,
		CoinTypeID:     coinTypeID,
		Amount:         amount,
		IdempotencyKey: idempotencyKey,
		Attempts:       attempts,
		Err:            err,
	}
}

// LogFielder is implemented by errors that carry structured logging context
type LogFielder interface {
	LogFields() map[string]any
}

// LogFieldsOf extracts structured fields from err, falling back to the message and code
func LogFieldsOf(err error) map[string]any {
	var lf LogFielder
	if errors.As(err, &lf) {
		return lf.LogFields()
	}
	return map[string]any{
		"error":      err.Error(),
		"error_code": ErrorCode(err),
	}
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsConcurrencyConflict checks if the error asks the caller to retry
func IsConcurrencyConflict(err error) bool {
	return errors.Is(err, ErrConcurrencyConflict)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrWalletNotFound) ||
		errors.Is(err, ErrCoinTypeNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsValidationError reports errors that are rejected before any lookup or mutation
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrAmountOverflow) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrSelfTransferNotAllowed) ||
		errors.Is(err, ErrInvalidOperation) ||
		errors.Is(err, ErrInvalidCoinType) ||
		errors.Is(err, ErrInvalidRequest)
}

// IsBusinessRuleError reports errors raised by ledger rules after lookups
func IsBusinessRuleError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance) ||
		errors.Is(err, ErrInsufficientLocked) ||
		errors.Is(err, ErrCoinTypeInactive) ||
		errors.Is(err, ErrCoinTypeNotTradeable) ||
		errors.Is(err, ErrSupplyCapExceeded)
}
