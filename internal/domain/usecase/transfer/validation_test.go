package transfer

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
)

func TestOperationValidator_Validate(t *testing.T) {
	v := NewOperationValidator()
	alice, bob := uuid.New(), uuid.New()
	valid := entity.OperationDetails{CoinTypeID: 1, Amount: 100}

	tests := []struct {
		name    string
		op      entity.Operation
		wantErr error
	}{
		{name: "valid transfer", op: entity.NewTransfer(alice, bob, valid)},
		{name: "valid burn", op: entity.NewSpend(alice, nil, valid)},
		{name: "valid spend to sink", op: entity.NewSpend(alice, &bob, valid)},
		{name: "valid mint", op: entity.NewMint(bob, valid)},
		{name: "nil operation", op: nil, wantErr: errs.ErrInvalidOperation},
		{
			name:    "zero amount",
			op:      entity.NewReward(alice, entity.OperationDetails{CoinTypeID: 1}),
			wantErr: errs.ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			op:      entity.NewPurchase(alice, entity.OperationDetails{CoinTypeID: 1, Amount: -5}),
			wantErr: errs.ErrInvalidAmount,
		},
		{
			name:    "missing coin type",
			op:      entity.NewRefund(alice, entity.OperationDetails{Amount: 5}),
			wantErr: errs.ErrInvalidCoinType,
		},
		{name: "self transfer", op: entity.NewTransfer(alice, alice, valid), wantErr: errs.ErrSelfTransferNotAllowed},
		{name: "spend into own wallet", op: entity.NewSpend(alice, &alice, valid), wantErr: errs.ErrSelfTransferNotAllowed},
		{name: "missing sender", op: entity.NewTransfer(uuid.Nil, bob, valid), wantErr: errs.ErrInvalidUserID},
		{name: "missing recipient", op: entity.NewMint(uuid.Nil, valid), wantErr: errs.ErrInvalidUserID},
		{
			name: "oversized idempotency key",
			op: entity.NewReward(alice, entity.OperationDetails{
				CoinTypeID:     1,
				Amount:         1,
				IdempotencyKey: strings.Repeat("k", MaxIdempotencyKeyLength+1),
			}),
			wantErr: errs.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.op)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOperationValidator_ValidateLockRequest(t *testing.T) {
	v := NewOperationValidator()

	assert.NoError(t, v.ValidateLockRequest(uuid.New(), 1, 10))
	assert.ErrorIs(t, v.ValidateLockRequest(uuid.Nil, 1, 10), errs.ErrInvalidUserID)
	assert.ErrorIs(t, v.ValidateLockRequest(uuid.New(), 0, 10), errs.ErrInvalidCoinType)
	assert.ErrorIs(t, v.ValidateLockRequest(uuid.New(), 1, 0), errs.ErrInvalidAmount)
}
