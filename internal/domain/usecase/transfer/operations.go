package transfer

import (
	"context"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	"github.com/google/uuid"
)

// SendCoins moves coins between two users
func (e *Engine) SendCoins(ctx context.Context, from, to uuid.UUID, d entity.OperationDetails) (*entity.Transaction, error) {
	return e.Execute(ctx, entity.NewTransfer(from, to, d))
}

// ConfirmPurchase credits a buyer once payment was confirmed externally
func (e *Engine) ConfirmPurchase(ctx context.Context, to uuid.UUID, d entity.OperationDetails) (*entity.Transaction, error) {
	return e.Execute(ctx, entity.NewPurchase(to, d))
}

// IssueReward credits a user with no counter-party
func (e *Engine) IssueReward(ctx context.Context, to uuid.UUID, d entity.OperationDetails) (*entity.Transaction, error) {
	return e.Execute(ctx, entity.NewReward(to, d))
}

// IssueRefund returns coins to a user with no counter-party
func (e *Engine) IssueRefund(ctx context.Context, to uuid.UUID, d entity.OperationDetails) (*entity.Transaction, error) {
	return e.Execute(ctx, entity.NewRefund(to, d))
}

// Spend debits a user. With a sink the coins move to the sink's wallet, otherwise they are burned.
func (e *Engine) Spend(ctx context.Context, from uuid.UUID, sink *uuid.UUID, d entity.OperationDetails) (*entity.Transaction, error) {
	return e.Execute(ctx, entity.NewSpend(from, sink, d))
}

// Mint issues new coins to a user and grows the coin type's circulating supply
func (e *Engine) Mint(ctx context.Context, to uuid.UUID, d entity.OperationDetails) (*entity.Transaction, error) {
	return e.Execute(ctx, entity.NewMint(to, d))
}
