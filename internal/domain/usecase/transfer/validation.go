package transfer

import (
	"fmt"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	"github.com/google/uuid"
)

// MaxIdempotencyKeyLength matches the width of the idempotency_key column
const MaxIdempotencyKeyLength = 255

// OperationValidator checks operations before anything is read or written
type OperationValidator struct{}

// NewOperationValidator creates a new OperationValidator
func NewOperationValidator() *OperationValidator {
	return &OperationValidator{}
}

// Validate checks the common fields and the parties of op
func (v *OperationValidator) Validate(op entity.Operation) error {
	if op == nil {
		return fmt.Errorf("%w: no operation given", errs.ErrInvalidOperation)
	}

	if err := v.validateDetails(op.Details()); err != nil {
		return err
	}

	switch o := op.(type) {
	case entity.Transfer:
		if err := v.validateUser(o.From, "sender"); err != nil {
			return err
		}
		if err := v.validateUser(o.To, "recipient"); err != nil {
			return err
		}
		if o.From == o.To {
			return errs.ErrSelfTransferNotAllowed
		}
	case entity.Spend:
		if err := v.validateUser(o.From, "spender"); err != nil {
			return err
		}
		if o.Sink != nil {
			if err := v.validateUser(*o.Sink, "sink"); err != nil {
				return err
			}
			if *o.Sink == o.From {
				return errs.ErrSelfTransferNotAllowed
			}
		}
	case entity.Purchase:
		return v.validateUser(o.To, "buyer")
	case entity.Reward:
		return v.validateUser(o.To, "recipient")
	case entity.Refund:
		return v.validateUser(o.To, "recipient")
	case entity.Mint:
		return v.validateUser(o.To, "recipient")
	default:
		return fmt.Errorf("%w: unsupported operation %T", errs.ErrInvalidOperation, op)
	}

	return nil
}

// ValidateLockRequest checks the arguments of Reserve and Release
func (v *OperationValidator) ValidateLockRequest(userID uuid.UUID, coinTypeID uint64, amount int64) error {
	if err := v.validateUser(userID, "owner"); err != nil {
		return err
	}
	if coinTypeID == 0 {
		return fmt.Errorf("%w: coin type is required", errs.ErrInvalidCoinType)
	}
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	return nil
}

func (v *OperationValidator) validateDetails(d entity.OperationDetails) error {
	if d.CoinTypeID == 0 {
		return fmt.Errorf("%w: coin type is required", errs.ErrInvalidCoinType)
	}
	if d.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", errs.ErrInvalidAmount)
	}
	if len(d.IdempotencyKey) > MaxIdempotencyKeyLength {
		return fmt.Errorf("%w: idempotency key longer than %d characters", errs.ErrInvalidRequest, MaxIdempotencyKeyLength)
	}
	return nil
}

func (v *OperationValidator) validateUser(id uuid.UUID, role string) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: %s is required", errs.ErrInvalidUserID, role)
	}
	return nil
}
