package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// CoinTypeHandler serves the public coin type catalogue
type CoinTypeHandler struct {
	coins        usecase.CoinTypeUseCase
	timeProvider coreport.TimeProvider
}

// NewCoinTypeHandler creates a new coin type handler instance
func NewCoinTypeHandler(coins usecase.CoinTypeUseCase, timeProvider coreport.TimeProvider) *CoinTypeHandler {
	return &CoinTypeHandler{coins: coins, timeProvider: timeProvider}
}

// List handles GET /coin-types; ?active=false includes deactivated coins
func (h *CoinTypeHandler) List(c *gin.Context) {
	activeOnly := c.DefaultQuery("active", "true") != "false"

	coins, err := h.coins.ListCoinTypes(c.Request.Context(), activeOnly)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCoinTypeListResponse(coins))
}

// Get handles GET /coin-types/:id
func (h *CoinTypeHandler) Get(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	coin, err := h.coins.GetCoinType(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCoinTypeResponse(coin))
}

// History handles GET /coin-types/:id/history?from&to
func (h *CoinTypeHandler) History(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	from, to, err := timeRange(c, h.timeProvider.Now())
	if err != nil {
		fail(c, err)
		return
	}

	samples, err := h.coins.QueryRange(c.Request.Context(), id, from, to)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewValueHistoryResponse(samples))
}
