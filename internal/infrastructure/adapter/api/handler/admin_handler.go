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

// AdminHandler serves the administrative surface: coin type management, credits and repairs
type AdminHandler struct {
	transfers usecase.TransferUseCase
	wallets   usecase.WalletUseCase
	coins     usecase.CoinTypeUseCase
	logger    coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(
	transfers usecase.TransferUseCase,
	wallets usecase.WalletUseCase,
	coins usecase.CoinTypeUseCase,
	logger coreport.Logger,
) *AdminHandler {
	return &AdminHandler{
		transfers: transfers,
		wallets:   wallets,
		coins:     coins,
		logger:    logger,
	}
}

// CreateCoinType handles POST /admin/coin-types
func (h *AdminHandler) CreateCoinType(c *gin.Context) {
	var req dto.CreateCoinTypeRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	params, err := req.Params()
	if err != nil {
		fail(c, err)
		return
	}

	coin, err := h.coins.CreateCoinType(c.Request.Context(), params)
	if err != nil {
		fail(c, err)
		return
	}
	h.audit(c, "coin_type.create", map[string]any{"coin_type_id": coin.ID, "symbol": coin.Symbol})
	c.JSON(http.StatusCreated, dto.NewCoinTypeResponse(coin))
}

// Deactivate handles POST /admin/coin-types/:id/deactivate
func (h *AdminHandler) Deactivate(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	coin, err := h.coins.Deactivate(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	h.audit(c, "coin_type.deactivate", map[string]any{"coin_type_id": id})
	c.JSON(http.StatusOK, dto.NewCoinTypeResponse(coin))
}

// SetValue handles PUT /admin/coin-types/:id/value
func (h *AdminHandler) SetValue(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	var req dto.SetValueRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	value, err := entity.ParseUnitValue(req.Value)
	if err != nil {
		fail(c, err)
		return
	}

	coin, err := h.coins.SetCurrentValue(c.Request.Context(), id, value)
	if err != nil {
		fail(c, err)
		return
	}
	h.audit(c, "coin_type.set_value", map[string]any{"coin_type_id": id, "value": value.String()})
	c.JSON(http.StatusOK, dto.NewCoinTypeResponse(coin))
}

// RevalueByFans handles PUT /admin/coin-types/:id/fans
func (h *AdminHandler) RevalueByFans(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	var req dto.FansRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	coin, err := h.coins.RevalueByFans(c.Request.Context(), id, req.FanCount)
	if err != nil {
		fail(c, err)
		return
	}
	h.audit(c, "coin_type.revalue_by_fans", map[string]any{"coin_type_id": id, "fan_count": req.FanCount})
	c.JSON(http.StatusOK, dto.NewCoinTypeResponse(coin))
}

type creditFunc = func(ctx context.Context, to uuid.UUID, d entity.OperationDetails) (*entity.Transaction, error)

// Mint handles POST /admin/mint
func (h *AdminHandler) Mint(c *gin.Context) { h.credit(c, "mint", h.transfers.Mint) }

// IssueReward handles POST /admin/rewards
func (h *AdminHandler) IssueReward(c *gin.Context) { h.credit(c, "reward", h.transfers.IssueReward) }

// IssueRefund handles POST /admin/refunds
func (h *AdminHandler) IssueRefund(c *gin.Context) { h.credit(c, "refund", h.transfers.IssueRefund) }

// ConfirmPurchase handles POST /admin/purchases
func (h *AdminHandler) ConfirmPurchase(c *gin.Context) {
	h.credit(c, "purchase", h.transfers.ConfirmPurchase)
}

func (h *AdminHandler) credit(c *gin.Context, action string, fn creditFunc) {
	var req dto.CreditRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	to, err := parseUserID(req.UserID, "userId")
	if err != nil {
		fail(c, err)
		return
	}
	details, err := req.Details(c.GetHeader(middleware.IdempotencyKeyHeader))
	if err != nil {
		fail(c, err)
		return
	}

	txn, err := fn(c.Request.Context(), to, details)
	if err != nil {
		fail(c, err)
		return
	}
	h.audit(c, action, map[string]any{
		"transaction_id": txn.ID,
		"user_id":        to.String(),
		"amount":         txn.AmountString(),
	})
	c.JSON(http.StatusOK, dto.NewTransactionResponse(txn))
}

// Reconcile handles GET /admin/wallets/:id/reconcile
func (h *AdminHandler) Reconcile(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	report, err := h.wallets.ReconcileWallet(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewReconciliationResponse(report))
}

// Repair handles POST /admin/wallets/:id/repair
func (h *AdminHandler) Repair(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	report, err := h.transfers.RepairWallet(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	h.audit(c, "wallet.repair", map[string]any{"wallet_id": id, "was_in_sync": report.InSync()})
	c.JSON(http.StatusOK, dto.NewReconciliationResponse(report))
}

// audit records which admin performed an action
func (h *AdminHandler) audit(c *gin.Context, action string, fields map[string]any) {
	fields["action"] = action
	fields["request_id"] = middleware.RequestIDFrom(c)
	if adminID, ok := middleware.UserIDFrom(c); ok {
		fields["admin_id"] = adminID.String()
	}
	h.logger.Info("Admin action", fields)
}
