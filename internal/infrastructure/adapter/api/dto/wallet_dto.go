package dto

import (
	"time"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
)

// WalletResponse is one wallet with amounts formatted to two decimals
type WalletResponse struct {
	ID            uint64    `json:"id"`
	CoinTypeID    uint64    `json:"coinTypeId"`
	Balance       string    `json:"balance"`
	LockedBalance string    `json:"lockedBalance"`
	Available     string    `json:"available"`
	TotalReceived string    `json:"totalReceived"`
	TotalSpent    string    `json:"totalSpent"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NewWalletResponse maps a wallet
func NewWalletResponse(w *entity.Wallet) WalletResponse {
	return WalletResponse{
		ID:            w.ID,
		CoinTypeID:    w.CoinTypeID,
		Balance:       entity.FormatCoinAmount(w.Balance),
		LockedBalance: entity.FormatCoinAmount(w.LockedBalance),
		Available:     entity.FormatCoinAmount(w.Available()),
		TotalReceived: entity.FormatCoinAmount(w.TotalReceived),
		TotalSpent:    entity.FormatCoinAmount(w.TotalSpent),
		UpdatedAt:     w.UpdatedAt,
	}
}

// NewWalletListResponse maps a user's wallets
func NewWalletListResponse(wallets []*entity.Wallet) []WalletResponse {
	out := make([]WalletResponse, 0, len(wallets))
	for _, w := range wallets {
		out = append(out, NewWalletResponse(w))
	}
	return out
}

// CoinStatsResponse is the per-coin slice of StatsResponse
type CoinStatsResponse struct {
	CoinTypeID    uint64 `json:"coinTypeId"`
	Symbol        string `json:"symbol"`
	Balance       string `json:"balance"`
	LockedBalance string `json:"lockedBalance"`
	UnitValue     string `json:"unitValue"`
	Valuation     string `json:"valuation"`
}

// StatsResponse is the body of GET /wallets/stats
type StatsResponse struct {
	TotalBalance      string              `json:"totalBalance"`
	TotalReceived     string              `json:"totalReceived"`
	TotalSpent        string              `json:"totalSpent"`
	LockedBalance     string              `json:"lockedBalance"`
	TransactionCount  int64               `json:"transactionCount"`
	LastTransactionAt *time.Time          `json:"lastTransactionAt"`
	TotalValuation    string              `json:"totalValuation"`
	Coins             []CoinStatsResponse `json:"coins"`
}

// NewStatsResponse maps derived statistics
func NewStatsResponse(s *entity.TransactionStats) StatsResponse {
	out := StatsResponse{
		TotalBalance:      entity.FormatCoinAmount(s.TotalBalance),
		TotalReceived:     entity.FormatCoinAmount(s.TotalReceived),
		TotalSpent:        entity.FormatCoinAmount(s.TotalSpent),
		LockedBalance:     entity.FormatCoinAmount(s.LockedBalance),
		TransactionCount:  s.TransactionCount,
		LastTransactionAt: s.LastTransactionAt,
		TotalValuation:    s.TotalValuation.StringFixed(2),
		Coins:             make([]CoinStatsResponse, 0, len(s.Coins)),
	}
	for _, c := range s.Coins {
		out.Coins = append(out.Coins, CoinStatsResponse{
			CoinTypeID:    c.CoinTypeID,
			Symbol:        c.Symbol,
			Balance:       entity.FormatCoinAmount(c.Balance),
			LockedBalance: entity.FormatCoinAmount(c.LockedBalance),
			UnitValue:     c.UnitValue.String(),
			Valuation:     c.Valuation.StringFixed(2),
		})
	}
	return out
}

// ReconciliationResponse reports stored counters against a ledger replay
type ReconciliationResponse struct {
	WalletID         uint64 `json:"walletId"`
	InSync           bool   `json:"inSync"`
	StoredBalance    string `json:"storedBalance"`
	ReplayedBalance  string `json:"replayedBalance"`
	StoredReceived   string `json:"storedReceived"`
	ReplayedReceived string `json:"replayedReceived"`
	StoredSpent      string `json:"storedSpent"`
	ReplayedSpent    string `json:"replayedSpent"`
	EntriesReplayed  int64  `json:"entriesReplayed"`
}

// NewReconciliationResponse maps a reconciliation report
func NewReconciliationResponse(r *entity.WalletReconciliation) ReconciliationResponse {
	return ReconciliationResponse{
		WalletID:         r.WalletID,
		InSync:           r.InSync(),
		StoredBalance:    entity.FormatCoinAmount(r.StoredBalance),
		ReplayedBalance:  entity.FormatCoinAmount(r.ReplayedBalance),
		StoredReceived:   entity.FormatCoinAmount(r.StoredReceived),
		ReplayedReceived: entity.FormatCoinAmount(r.ReplayedReceived),
		StoredSpent:      entity.FormatCoinAmount(r.StoredSpent),
		ReplayedSpent:    entity.FormatCoinAmount(r.ReplayedSpent),
		EntriesReplayed:  r.EntriesReplayed,
	}
}
