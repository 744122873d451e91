package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InsufficientBalance", ErrInsufficientBalance, 4001},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"InvalidUserID", ErrInvalidUserID, 4003},
		{"DuplicateTransaction", ErrDuplicateTransaction, 4004},
		{"SelfTransfer", ErrSelfTransferNotAllowed, 4007},
		{"InsufficientLocked", ErrInsufficientLocked, 4009},
		{"WalletNotFound", ErrWalletNotFound, 4041},
		{"CoinTypeNotFound", ErrCoinTypeNotFound, 4042},
		{"ConcurrencyConflict", ErrConcurrencyConflict, 4090},
		{"CoinTypeInactive", ErrCoinTypeInactive, 4220},
		{"SupplyCapExceeded", ErrSupplyCapExceeded, 4221},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WriteConflictIsInternal", ErrWriteConflict, 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrSelfTransferNotAllowed), 4007},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestInsufficientBalanceError(t *testing.T) {
	err := NewInsufficientBalanceError(7, "100.00", "50.00")

	expected := "insufficient balance in wallet 7: requested 100.00, available 50.00"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Error("expected errors.Is to match ErrInsufficientBalance")
	}
	if ErrorCode(err) != CodeInsufficientBalance {
		t.Errorf("ErrorCode() = %d, want %d", ErrorCode(err), CodeInsufficientBalance)
	}

	fields := LogFieldsOf(err)
	if fields["wallet_id"] != uint64(7) {
		t.Errorf("LogFields()[wallet_id] = %v, want 7", fields["wallet_id"])
	}
}

func TestSupplyCapExceededError(t *testing.T) {
	err := NewSupplyCapExceededError(3, "200.00", "9900.00", "10000.00")

	if !errors.Is(err, ErrSupplyCapExceeded) {
		t.Error("expected errors.Is to match ErrSupplyCapExceeded")
	}
	if errors.Is(err, ErrInsufficientBalance) {
		t.Error("supply cap error must not match ErrInsufficientBalance")
	}

	fields := err.(*SupplyCapExceededError).LogFields()
	if fields["max_supply"] != "10000.00" {
		t.Errorf("LogFields()[max_supply] = %v, want 10000.00", fields["max_supply"])
	}
}

func TestTransferError(t *testing.T) {
	err := NewTransferError("transfer", 1, "5.00", "key-1", 5, ErrConcurrencyConflict)

	if !errors.Is(err, ErrConcurrencyConflict) {
		t.Error("TransferError should unwrap to its cause")
	}
	if ErrorCode(err) != CodeConcurrencyConflict {
		t.Errorf("ErrorCode() = %d, want %d", ErrorCode(err), CodeConcurrencyConflict)
	}

	var te *TransferError
	if !errors.As(err, &te) {
		t.Fatal("errors.As should find *TransferError")
	}
	if te.Attempts != 5 {
		t.Errorf("Attempts = %d, want 5", te.Attempts)
	}
	if te.LogFields()["idempotency_key"] != "key-1" {
		t.Errorf("LogFields()[idempotency_key] = %v, want key-1", te.LogFields()["idempotency_key"])
	}
}

func TestLogFieldsOfPlainError(t *testing.T) {
	fields := LogFieldsOf(ErrWalletNotFound)
	if fields["error"] != "wallet not found" {
		t.Errorf("LogFieldsOf()[error] = %v", fields["error"])
	}
	if fields["error_code"] != CodeWalletNotFound {
		t.Errorf("LogFieldsOf()[error_code] = %v, want %d", fields["error_code"], CodeWalletNotFound)
	}
}

func TestErrorHelperFunctions(t *testing.T) {
	if !IsNotFoundError(fmt.Errorf("wrap: %w", ErrCoinTypeNotFound)) {
		t.Error("IsNotFoundError should match wrapped ErrCoinTypeNotFound")
	}
	if IsNotFoundError(ErrInsufficientBalance) {
		t.Error("IsNotFoundError should not match ErrInsufficientBalance")
	}
	if !IsValidationError(ErrSelfTransferNotAllowed) {
		t.Error("self transfer is a validation error")
	}
	if IsValidationError(ErrInsufficientBalance) {
		t.Error("insufficient balance is not a validation error")
	}
	if !IsBusinessRuleError(NewSupplyCapExceededError(1, "1", "1", "1")) {
		t.Error("supply cap is a business rule error")
	}
	if !IsConcurrencyConflict(NewTransferError("spend", 1, "1.00", "", 3, ErrConcurrencyConflict)) {
		t.Error("IsConcurrencyConflict should see through TransferError")
	}
}
