package entity

import (
	"github.com/google/uuid"
)

// OperationDetails holds the fields every engine operation carries
type OperationDetails struct {
	CoinTypeID     uint64
	Amount         int64 // minor units
	Description    string
	BookingID      *uuid.UUID
	Metadata       map[string]any
	IdempotencyKey string
}

// Details returns the common operation fields
func (d OperationDetails) Details() OperationDetails {
	return d
}

// Operation is a sealed sum of the balance-affecting events the engine executes.
// Each variant carries only the parties valid for its kind.
type Operation interface {
	Type() TransactionType
	Details() OperationDetails
	// Source is the user whose wallet is debited, if any
	Source() (uuid.UUID, bool)
	// Destination is the user whose wallet is credited, if any
	Destination() (uuid.UUID, bool)
	// Initiator is the user on whose behalf the operation runs. Idempotency keys are
	// scoped to it.
	Initiator() uuid.UUID
	sealed()
}

// Purchase credits a buyer after an externally confirmed payment
type Purchase struct {
	To uuid.UUID
	OperationDetails
}

// Transfer moves coins from one user to another
type Transfer struct {
	From uuid.UUID
	To   uuid.UUID
	OperationDetails
}

// Reward is a system- or admin-initiated credit
type Reward struct {
	To uuid.UUID
	OperationDetails
}

// Refund returns coins to a user with no counter-party debit
type Refund struct {
	To uuid.UUID
	OperationDetails
}

// Spend debits a user; Sink optionally names the system user that receives the coins
type Spend struct {
	From uuid.UUID
	Sink *uuid.UUID
	OperationDetails
}

// Mint issues new artist coins to a fan and grows circulating supply
type Mint struct {
	To uuid.UUID
	OperationDetails
}

// NewPurchase builds a purchase operation
func NewPurchase(to uuid.UUID, d OperationDetails) Purchase {
	return Purchase{To: to, OperationDetails: d}
}

// NewTransfer builds a transfer operation
func NewTransfer(from, to uuid.UUID, d OperationDetails) Transfer {
	return Transfer{From: from, To: to, OperationDetails: d}
}

// NewReward builds a reward operation
func NewReward(to uuid.UUID, d OperationDetails) Reward {
	return Reward{To: to, OperationDetails: d}
}

// NewRefund builds a refund operation
func NewRefund(to uuid.UUID, d OperationDetails) Refund {
	return Refund{To: to, OperationDetails: d}
}

// NewSpend builds a spend operation; sink may be nil to burn the coins
func NewSpend(from uuid.UUID, sink *uuid.UUID, d OperationDetails) Spend {
	return Spend{From: from, Sink: sink, OperationDetails: d}
}

// NewMint builds an artist mint operation
func NewMint(to uuid.UUID, d OperationDetails) Mint {
	return Mint{To: to, OperationDetails: d}
}

func (Purchase) Type() TransactionType { return TypePurchase }
func (Transfer) Type() TransactionType { return TypeTransfer }
func (Reward) Type() TransactionType   { return TypeReward }
func (Refund) Type() TransactionType   { return TypeRefund }
func (Spend) Type() TransactionType    { return TypeSpend }
func (Mint) Type() TransactionType     { return TypeArtistMint }

func (Purchase) Source() (uuid.UUID, bool)   { return uuid.Nil, false }
func (o Transfer) Source() (uuid.UUID, bool) { return o.From, true }
func (Reward) Source() (uuid.UUID, bool)     { return uuid.Nil, false }
func (Refund) Source() (uuid.UUID, bool)     { return uuid.Nil, false }
func (o Spend) Source() (uuid.UUID, bool)    { return o.From, true }
func (Mint) Source() (uuid.UUID, bool)       { return uuid.Nil, false }

func (o Purchase) Destination() (uuid.UUID, bool) { return o.To, true }
func (o Transfer) Destination() (uuid.UUID, bool) { return o.To, true }
func (o Reward) Destination() (uuid.UUID, bool)   { return o.To, true }
func (o Refund) Destination() (uuid.UUID, bool)   { return o.To, true }
func (o Mint) Destination() (uuid.UUID, bool)     { return o.To, true }

func (o Spend) Destination() (uuid.UUID, bool) {
	if o.Sink == nil {
		return uuid.Nil, false
	}
	return *o.Sink, true
}

func (o Purchase) Initiator() uuid.UUID { return o.To }
func (o Transfer) Initiator() uuid.UUID { return o.From }
func (o Reward) Initiator() uuid.UUID   { return o.To }
func (o Refund) Initiator() uuid.UUID   { return o.To }
func (o Spend) Initiator() uuid.UUID    { return o.From }
func (o Mint) Initiator() uuid.UUID     { return o.To }

func (Purchase) sealed() {}
func (Transfer) sealed() {}
func (Reward) sealed()   {}
func (Refund) sealed()   {}
func (Spend) sealed()    {}
func (Mint) sealed()     {}
