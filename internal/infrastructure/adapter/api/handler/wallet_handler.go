package handler

import (
	"context"
	"net/http"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WalletHandler serves the caller's own wallets and user-initiated movements
type WalletHandler struct {
	wallets   usecase.WalletUseCase
	transfers usecase.TransferUseCase
	logger    coreport.Logger
}

// NewWalletHandler creates a new wallet handler instance
func NewWalletHandler(
	wallets usecase.WalletUseCase,
	transfers usecase.TransferUseCase,
	logger coreport.Logger,
) *WalletHandler {
	return &WalletHandler{
		wallets:   wallets,
		transfers: transfers,
		logger:    logger,
	}
}

// GetWallets handles GET /wallets
func (h *WalletHandler) GetWallets(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		fail(c, err)
		return
	}

	wallets, err := h.wallets.GetWallets(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewWalletListResponse(wallets))
}

// GetTransactions handles GET /wallets/transactions
func (h *WalletHandler) GetTransactions(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		fail(c, err)
		return
	}
	filter, err := transactionFilter(c)
	if err != nil {
		fail(c, err)
		return
	}

	page, err := h.wallets.GetTransactions(c.Request.Context(), userID, filter)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionPageResponse(page))
}

// GetStats handles GET /wallets/stats
func (h *WalletHandler) GetStats(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		fail(c, err)
		return
	}

	stats, err := h.wallets.GetTransactionStats(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewStatsResponse(stats))
}

// Transfer handles POST /wallets/transfer. An Idempotency-Key header makes retries safe.
func (h *WalletHandler) Transfer(c *gin.Context) {
	from, err := callerID(c)
	if err != nil {
		fail(c, err)
		return
	}

	var req dto.TransferRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	to, err := parseUserID(req.ToUserID, "toUserId")
	if err != nil {
		fail(c, err)
		return
	}
	details, err := req.Details(c.GetHeader(middleware.IdempotencyKeyHeader))
	if err != nil {
		fail(c, err)
		return
	}

	txn, err := h.transfers.SendCoins(c.Request.Context(), from, to, details)
	if err != nil {
		fail(c, err)
		return
	}
	h.logger.Debug("Transfer accepted", map[string]any{
		"transaction_id": txn.ID,
		"request_id":     middleware.RequestIDFrom(c),
	})
	c.JSON(http.StatusOK, dto.NewTransactionResponse(txn))
}

// Spend handles POST /wallets/spend
func (h *WalletHandler) Spend(c *gin.Context) {
	from, err := callerID(c)
	if err != nil {
		fail(c, err)
		return
	}

	var req dto.SpendRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	var sink *uuid.UUID
	if req.SinkUserID != "" {
		id, err := parseUserID(req.SinkUserID, "sinkUserId")
		if err != nil {
			fail(c, err)
			return
		}
		sink = &id
	}
	details, err := req.Details(c.GetHeader(middleware.IdempotencyKeyHeader))
	if err != nil {
		fail(c, err)
		return
	}

	txn, err := h.transfers.Spend(c.Request.Context(), from, sink, details)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionResponse(txn))
}

// Reserve handles POST /wallets/reserve
func (h *WalletHandler) Reserve(c *gin.Context) {
	h.changeLock(c, h.transfers.Reserve)
}

// Release handles POST /wallets/release
func (h *WalletHandler) Release(c *gin.Context) {
	h.changeLock(c, h.transfers.Release)
}

type lockFunc = func(ctx context.Context, userID uuid.UUID, coinTypeID uint64, amount int64) (*entity.Wallet, error)

func (h *WalletHandler) changeLock(c *gin.Context, change lockFunc) {
	userID, err := callerID(c)
	if err != nil {
		fail(c, err)
		return
	}

	var req dto.LockRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	amount, err := entity.ParseCoinAmount(req.Amount)
	if err != nil {
		fail(c, err)
		return
	}

	w, err := change(c.Request.Context(), userID, req.CoinTypeID, amount)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewWalletResponse(w))
}
