package dto

import (
	"fmt"
	"time"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/usecase"
	"github.com/google/uuid"
)

// OperationFields are the attributes shared by every ledger-writing request
type OperationFields struct {
	CoinTypeID  uint64         `json:"coinTypeId" binding:"required"`
	Amount      string         `json:"amount" binding:"required"`
	Description string         `json:"description" binding:"max=500"`
	BookingID   string         `json:"bookingId"`
	Metadata    map[string]any `json:"metadata"`
}

// Details converts the fields into operation details; amounts are decimal strings like "12.50"
func (f OperationFields) Details(idempotencyKey string) (entity.OperationDetails, error) {
	amount, err := entity.ParseCoinAmount(f.Amount)
	if err != nil {
		return entity.OperationDetails{}, err
	}

	d := entity.OperationDetails{
		CoinTypeID:     f.CoinTypeID,
		Amount:         amount,
		Description:    f.Description,
		Metadata:       f.Metadata,
		IdempotencyKey: idempotencyKey,
	}
	if f.BookingID != "" {
		bookingID, err := uuid.Parse(f.BookingID)
		if err != nil {
			return entity.OperationDetails{}, fmt.Errorf("%w: bookingId is not a UUID", errs.ErrInvalidRequest)
		}
		d.BookingID = &bookingID
	}
	return d, nil
}

// TransferRequest is the body of POST /wallets/transfer
type TransferRequest struct {
	ToUserID string `json:"toUserId" binding:"required"`
	OperationFields
}

// SpendRequest is the body of POST /wallets/spend. Without sinkUserId the coins are burned.
type SpendRequest struct {
	SinkUserID string `json:"sinkUserId"`
	OperationFields
}

// CreditRequest is the body of the administrative credit endpoints (mint, rewards, refunds, purchases)
type CreditRequest struct {
	UserID string `json:"userId" binding:"required"`
	OperationFields
}

// LockRequest is the body of POST /wallets/reserve and /wallets/release
type LockRequest struct {
	CoinTypeID uint64 `json:"coinTypeId" binding:"required"`
	Amount     string `json:"amount" binding:"required"`
}

// TransactionResponse is one ledger row
type TransactionResponse struct {
	ID                 uint64         `json:"id"`
	Type               string         `json:"type"`
	CoinTypeID         uint64         `json:"coinTypeId"`
	FromWalletID       *uint64        `json:"fromWalletId,omitempty"`
	ToWalletID         *uint64        `json:"toWalletId,omitempty"`
	Amount             string         `json:"amount"`
	ValueAtTransaction string         `json:"valueAtTransaction,omitempty"`
	BookingID          *uuid.UUID     `json:"bookingId,omitempty"`
	Description        string         `json:"description,omitempty"`
	Metadata           map[string]any `json:"metadata,omitempty"`
	IdempotencyKey     string         `json:"idempotencyKey,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
}

// TransactionPageResponse is one page of a user's ledger
type TransactionPageResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	TotalCount   int64                 `json:"totalCount"`
	Limit        int                   `json:"limit"`
	Offset       int                   `json:"offset"`
}

// NewTransactionResponse maps a ledger row
func NewTransactionResponse(t *entity.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:             t.ID,
		Type:           string(t.Type),
		CoinTypeID:     t.CoinTypeID,
		FromWalletID:   t.FromWalletID,
		ToWalletID:     t.ToWalletID,
		Amount:         t.AmountString(),
		BookingID:      t.BookingID,
		Description:    t.Description,
		Metadata:       t.Metadata,
		IdempotencyKey: t.IdempotencyKey,
		CreatedAt:      t.CreatedAt,
	}
	if t.ValueAtTransaction != nil {
		resp.ValueAtTransaction = t.ValueAtTransaction.String()
	}
	return resp
}

// NewTransactionPageResponse maps a ledger page
func NewTransactionPageResponse(page *usecase.TransactionPage) TransactionPageResponse {
	out := TransactionPageResponse{
		Transactions: make([]TransactionResponse, 0, len(page.Transactions)),
		TotalCount:   page.TotalCount,
		Limit:        page.Limit,
		Offset:       page.Offset,
	}
	for _, t := range page.Transactions {
		out.Transactions = append(out.Transactions, NewTransactionResponse(t))
	}
	return out
}
