package routes

import (
	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups every handler mounted on the router
type Handlers struct {
	Wallets   *handler.WalletHandler
	CoinTypes *handler.CoinTypeHandler
	Admin     *handler.AdminHandler
	Health    *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, auth middleware.AuthOptions) {
	router.GET("/health", h.Health.Health)

	api := router.Group("/api/v1", middleware.JWTAuth(auth))

	wallets := api.Group("/wallets")
	{
		wallets.GET("", h.Wallets.GetWallets)
		wallets.GET("/transactions", h.Wallets.GetTransactions)
		wallets.GET("/stats", h.Wallets.GetStats)
		wallets.POST("/transfer", h.Wallets.Transfer)
		wallets.POST("/spend", h.Wallets.Spend)
		wallets.POST("/reserve", h.Wallets.Reserve)
		wallets.POST("/release", h.Wallets.Release)
	}

	coinTypes := api.Group("/coin-types")
	{
		coinTypes.GET("", h.CoinTypes.List)
		coinTypes.GET("/:id", h.CoinTypes.Get)
		coinTypes.GET("/:id/history", h.CoinTypes.History)
	}

	admin := api.Group("/admin", middleware.RequireAdmin())
	{
		admin.POST("/coin-types", h.Admin.CreateCoinType)
		admin.POST("/coin-types/:id/deactivate", h.Admin.Deactivate)
		admin.PUT("/coin-types/:id/value", h.Admin.SetValue)
		admin.PUT("/coin-types/:id/fans", h.Admin.RevalueByFans)

		admin.POST("/mint", h.Admin.Mint)
		admin.POST("/rewards", h.Admin.IssueReward)
		admin.POST("/refunds", h.Admin.IssueRefund)
		admin.POST("/purchases", h.Admin.ConfirmPurchase)

		admin.GET("/wallets/:id/reconcile", h.Admin.Reconcile)
		admin.POST("/wallets/:id/repair", h.Admin.Repair)
	}
}

// SetupMiddlewares configures global middlewares for the API.
// The request id comes first so every later middleware can log it.
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigins []string) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(allowedOrigins))
}
