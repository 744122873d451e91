package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/time"
	mockusecase "github.com/amirhossein-jamali/coin-ledger/mocks/port/usecase"
)

const (
	testSecret = "routes-test-secret"
	testIssuer = "bloghead-test"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

type apiFixture struct {
	router    *gin.Engine
	transfers *mockusecase.MockTransferUseCase
	wallets   *mockusecase.MockWalletUseCase
	coins     *mockusecase.MockCoinTypeUseCase
	dbHealthy bool
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &apiFixture{
		router:    gin.New(),
		transfers: mockusecase.NewMockTransferUseCase(t),
		wallets:   mockusecase.NewMockWalletUseCase(t),
		coins:     mockusecase.NewMockCoinTypeUseCase(t),
		dbHealthy: true,
	}
	log := logger.NewNoopLogger()

	health := handler.NewHealthHandler(map[string]handler.Pinger{
		"database": pingerFunc(func(context.Context) error {
			if !f.dbHealthy {
				return errors.New("connection refused")
			}
			return nil
		}),
	}, time.Second)

	routes.SetupMiddlewares(f.router, log, nil)
	routes.SetupRoutes(f.router, routes.Handlers{
		Wallets:   handler.NewWalletHandler(f.wallets, f.transfers, log),
		CoinTypes: handler.NewCoinTypeHandler(f.coins, timeprovider.NewRealTimeProvider()),
		Admin:     handler.NewAdminHandler(f.transfers, f.wallets, f.coins, log),
		Health:    health,
	}, middleware.AuthOptions{Secret: testSecret, Issuer: testIssuer})

	return f
}

func token(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()

	signed, err := middleware.SignToken(testSecret, testIssuer, userID, role, time.Hour)
	require.NoError(t, err)
	return signed
}

func (f *apiFixture) do(t *testing.T, method, path, bearer string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHealth(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

	f.dbHealthy = false
	rec = f.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")
}

func TestAuthentication(t *testing.T) {
	f := newAPIFixture(t)
	userID := uuid.New()

	tests := []struct {
		name   string
		bearer string
		status int
	}{
		{name: "missing token", bearer: "", status: http.StatusUnauthorized},
		{name: "garbage token", bearer: "not-a-jwt", status: http.StatusUnauthorized},
		{name: "wrong issuer", bearer: func() string {
			s, err := middleware.SignToken(testSecret, "someone-else", userID, "", time.Hour)
			require.NoError(t, err)
			return s
		}(), status: http.StatusUnauthorized},
		{name: "expired", bearer: func() string {
			s, err := middleware.SignToken(testSecret, testIssuer, userID, "", -time.Minute)
			require.NoError(t, err)
			return s
		}(), status: http.StatusUnauthorized},
		{name: "wrong secret", bearer: func() string {
			s, err := middleware.SignToken("other-secret", testIssuer, userID, "", time.Hour)
			require.NoError(t, err)
			return s
		}(), status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(t, http.MethodGet, "/api/v1/wallets", tt.bearer, nil)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, errs.CodeUnauthorized, decodeError(t, rec).Code)
		})
	}
}

func TestGetWallets(t *testing.T) {
	f := newAPIFixture(t)
	userID := uuid.New()

	f.wallets.EXPECT().GetWallets(mock.Anything, userID).Return([]*entity.Wallet{
		{ID: 4, UserID: userID, CoinTypeID: 1, Balance: 12550, LockedBalance: 550, TotalReceived: 20000, TotalSpent: 7450},
	}, nil)

	rec := f.do(t, http.MethodGet, "/api/v1/wallets", token(t, userID, ""), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body []dto.WalletResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "125.50", body[0].Balance)
	assert.Equal(t, "120.00", body[0].Available)
	assert.Equal(t, "5.50", body[0].LockedBalance)
}

func TestGetTransactions_Filter(t *testing.T) {
	f := newAPIFixture(t)
	userID := uuid.New()
	walletID := uint64(9)
	spend := entity.TypeSpend

	f.wallets.EXPECT().
		GetTransactions(mock.Anything, userID, entity.TransactionFilter{WalletID: &walletID, Type: &spend, Limit: 5, Offset: 10}).
		Return(&usecase.TransactionPage{
			Transactions: []*entity.Transaction{{ID: 77, Type: entity.TypeSpend, Amount: 300, FromWalletID: &walletID}},
			TotalCount:   11,
			Limit:        5,
			Offset:       10,
		}, nil)

	rec := f.do(t, http.MethodGet, "/api/v1/wallets/transactions?walletId=9&type=spend&limit=5&offset=10", token(t, userID, ""), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var page dto.TransactionPageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, int64(11), page.TotalCount)
	require.Len(t, page.Transactions, 1)
	assert.Equal(t, "3.00", page.Transactions[0].Amount)

	rec = f.do(t, http.MethodGet, "/api/v1/wallets/transactions?type=gift", token(t, userID, ""), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetStats(t *testing.T) {
	f := newAPIFixture(t)
	userID := uuid.New()

	f.wallets.EXPECT().GetTransactionStats(mock.Anything, userID).Return(&entity.TransactionStats{
		TotalBalance:     10000,
		TotalReceived:    15000,
		TotalSpent:       5000,
		TransactionCount: 3,
		TotalValuation:   decimal.RequireFromString("25"),
	}, nil)

	rec := f.do(t, http.MethodGet, "/api/v1/wallets/stats", token(t, userID, ""), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var stats dto.StatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, "100.00", stats.TotalBalance)
	assert.Equal(t, "25.00", stats.TotalValuation)
	assert.Equal(t, int64(3), stats.TransactionCount)
}

func TestTransfer(t *testing.T) {
	from, to := uuid.New(), uuid.New()
	fromWallet, toWallet := uint64(1), uint64(2)
	value := decimal.RequireFromString("0.25")

	tests := []struct {
		name       string
		body       map[string]any
		setupMocks func(f *apiFixture)
		status     int
		code       int
	}{
		{
			name: "success with idempotency key",
			body: map[string]any{"toUserId": to.String(), "coinTypeId": 1, "amount": "12.5", "description": "tip"},
			setupMocks: func(f *apiFixture) {
				f.transfers.EXPECT().SendCoins(mock.Anything, from, to, entity.OperationDetails{
					CoinTypeID:     1,
					Amount:         1250,
					Description:    "tip",
					IdempotencyKey: "tip-1",
				}).Return(&entity.Transaction{
					ID:                 5,
					Type:               entity.TypeTransfer,
					CoinTypeID:         1,
					FromWalletID:       &fromWallet,
					ToWalletID:         &toWallet,
					Amount:             1250,
					ValueAtTransaction: &value,
					IdempotencyKey:     "tip-1",
				}, nil)
			},
			status: http.StatusOK,
		},
		{
			name:       "invalid amount",
			body:       map[string]any{"toUserId": to.String(), "coinTypeId": 1, "amount": "1.234"},
			setupMocks: func(*apiFixture) {},
			status:     http.StatusBadRequest,
			code:       errs.CodeInvalidAmount,
		},
		{
			name:       "invalid recipient",
			body:       map[string]any{"toUserId": "bob", "coinTypeId": 1, "amount": "1"},
			setupMocks: func(*apiFixture) {},
			status:     http.StatusBadRequest,
			code:       errs.CodeInvalidUserID,
		},
		{
			name:       "missing fields",
			body:       map[string]any{"amount": "1"},
			setupMocks: func(*apiFixture) {},
			status:     http.StatusBadRequest,
			code:       errs.CodeInvalidRequest,
		},
		{
			name: "insufficient balance",
			body: map[string]any{"toUserId": to.String(), "coinTypeId": 1, "amount": "900"},
			setupMocks: func(f *apiFixture) {
				f.transfers.EXPECT().SendCoins(mock.Anything, from, to, mock.Anything).
					Return(nil, errs.NewTransferError("transfer", 1, "900.00", "", 1,
						errs.NewInsufficientBalanceError(1, "900.00", "10.00")))
			},
			status: http.StatusUnprocessableEntity,
			code:   errs.CodeInsufficientBalance,
		},
		{
			name: "concurrency conflict",
			body: map[string]any{"toUserId": to.String(), "coinTypeId": 1, "amount": "1"},
			setupMocks: func(f *apiFixture) {
				f.transfers.EXPECT().SendCoins(mock.Anything, from, to, mock.Anything).
					Return(nil, errs.ErrConcurrencyConflict)
			},
			status: http.StatusConflict,
			code:   errs.CodeConcurrencyConflict,
		},
		{
			name: "timeout",
			body: map[string]any{"toUserId": to.String(), "coinTypeId": 1, "amount": "1"},
			setupMocks: func(f *apiFixture) {
				f.transfers.EXPECT().SendCoins(mock.Anything, from, to, mock.Anything).
					Return(nil, context.DeadlineExceeded)
			},
			status: http.StatusGatewayTimeout,
			code:   errs.CodeInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			f := newAPIFixture(t)
			tt.setupMocks(f)

			// Act
			rec := f.do(t, http.MethodPost, "/api/v1/wallets/transfer", token(t, from, ""), tt.body,
				middleware.IdempotencyKeyHeader, "tip-1")

			// Assert
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			if tt.status != http.StatusOK {
				assert.Equal(t, tt.code, decodeError(t, rec).Code)
				return
			}
			var txn dto.TransactionResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &txn))
			assert.Equal(t, "12.50", txn.Amount)
			assert.Equal(t, "0.25", txn.ValueAtTransaction)
			assert.Equal(t, "transfer", txn.Type)
		})
	}
}

func TestSpend_Burn(t *testing.T) {
	f := newAPIFixture(t)
	userID := uuid.New()
	booking := uuid.New()

	f.transfers.EXPECT().Spend(mock.Anything, userID, (*uuid.UUID)(nil), mock.Anything).
		Run(func(_ context.Context, _ uuid.UUID, _ *uuid.UUID, d entity.OperationDetails) {
			require.NotNil(t, d.BookingID)
			assert.Equal(t, booking, *d.BookingID)
			assert.Equal(t, int64(4000), d.Amount)
		}).
		Return(&entity.Transaction{ID: 8, Type: entity.TypeSpend, Amount: 4000, BookingID: &booking}, nil)

	rec := f.do(t, http.MethodPost, "/api/v1/wallets/spend", token(t, userID, ""), map[string]any{
		"coinTypeId": 1,
		"amount":     "40",
		"bookingId":  booking.String(),
	})

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestReserve(t *testing.T) {
	f := newAPIFixture(t)
	userID := uuid.New()

	f.transfers.EXPECT().Reserve(mock.Anything, userID, uint64(1), int64(2500)).
		Return(&entity.Wallet{ID: 3, CoinTypeID: 1, Balance: 10000, LockedBalance: 2500}, nil)

	rec := f.do(t, http.MethodPost, "/api/v1/wallets/reserve", token(t, userID, ""), map[string]any{
		"coinTypeId": 1,
		"amount":     "25",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var w dto.WalletResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &w))
	assert.Equal(t, "75.00", w.Available)
}

func TestCoinTypes(t *testing.T) {
	f := newAPIFixture(t)
	userID := uuid.New()
	coin := &entity.CoinType{
		ID:           1,
		Name:         "Bloghead Coin",
		Symbol:       "BHC",
		Kind:         entity.KindPlatform,
		InitialValue: decimal.RequireFromString("0.10"),
		CurrentValue: decimal.RequireFromString("0.12"),
		IsActive:     true,
		IsTradeable:  true,
	}

	f.coins.EXPECT().ListCoinTypes(mock.Anything, true).Return([]*entity.CoinType{coin}, nil)
	f.coins.EXPECT().GetCoinType(mock.Anything, uint64(1)).Return(coin, nil)
	f.coins.EXPECT().GetCoinType(mock.Anything, uint64(2)).Return(nil, errs.ErrCoinTypeNotFound)

	rec := f.do(t, http.MethodGet, "/api/v1/coin-types", token(t, userID, ""), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"symbol":"BHC"`)

	rec = f.do(t, http.MethodGet, "/api/v1/coin-types/1", token(t, userID, ""), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"currentValue":"0.12"`)

	rec = f.do(t, http.MethodGet, "/api/v1/coin-types/2", token(t, userID, ""), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, errs.CodeCoinTypeNotFound, decodeError(t, rec).Code)

	rec = f.do(t, http.MethodGet, "/api/v1/coin-types/abc", token(t, userID, ""), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCoinTypeHistory(t *testing.T) {
	f := newAPIFixture(t)
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	f.coins.EXPECT().QueryRange(mock.Anything, uint64(1), from, to).Return([]*entity.ValueSample{
		{CoinTypeID: 1, Value: decimal.RequireFromString("0.11"), RecordedAt: from},
	}, nil)

	rec := f.do(t, http.MethodGet, "/api/v1/coin-types/1/history?from=2026-01-01T00:00:00Z&to=2026-02-01T00:00:00Z",
		token(t, uuid.New(), ""), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"value":"0.11"`)

	rec = f.do(t, http.MethodGet, "/api/v1/coin-types/1/history?from=yesterday", token(t, uuid.New(), ""), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminRoutes_RequireRole(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/admin/rewards", token(t, uuid.New(), ""), map[string]any{
		"userId": uuid.NewString(), "coinTypeId": 1, "amount": "5",
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, errs.CodeForbidden, decodeError(t, rec).Code)
}

func TestAdminMint(t *testing.T) {
	f := newAPIFixture(t)
	fan := uuid.New()
	toWallet := uint64(12)

	f.transfers.EXPECT().Mint(mock.Anything, fan, mock.MatchedBy(func(d entity.OperationDetails) bool {
		return d.CoinTypeID == 2 && d.Amount == 100000 && d.IdempotencyKey == "drop-7"
	})).Return(&entity.Transaction{ID: 40, Type: entity.TypeArtistMint, CoinTypeID: 2, ToWalletID: &toWallet, Amount: 100000}, nil)

	rec := f.do(t, http.MethodPost, "/api/v1/admin/mint", token(t, uuid.New(), middleware.RoleAdmin), map[string]any{
		"userId": fan.String(), "coinTypeId": 2, "amount": "1000",
	}, middleware.IdempotencyKeyHeader, "drop-7")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"type":"artist_mint"`)
}

func TestAdminMint_SupplyCap(t *testing.T) {
	f := newAPIFixture(t)

	f.transfers.EXPECT().Mint(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errs.NewSupplyCapExceededError(2, "200.00", "9900.00", "10000.00"))

	rec := f.do(t, http.MethodPost, "/api/v1/admin/mint", token(t, uuid.New(), middleware.RoleAdmin), map[string]any{
		"userId": uuid.NewString(), "coinTypeId": 2, "amount": "200",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, errs.CodeSupplyCapExceeded, decodeError(t, rec).Code)
}

func TestAdminCoinTypeManagement(t *testing.T) {
	f := newAPIFixture(t)
	admin := token(t, uuid.New(), middleware.RoleAdmin)
	artist := uuid.New()

	f.coins.EXPECT().CreateCoinType(mock.Anything, mock.MatchedBy(func(p entity.NewCoinTypeParams) bool {
		return p.Symbol == "JAZZ" && p.Kind == entity.KindArtistIssued && p.ArtistID != nil &&
			*p.ArtistID == artist && p.MaxSupply != nil && *p.MaxSupply == 1000000 && p.IsTradeable
	})).Return(&entity.CoinType{ID: 3, Symbol: "JAZZ", Kind: entity.KindArtistIssued, IsActive: true}, nil)
	f.coins.EXPECT().SetCurrentValue(mock.Anything, uint64(3), decimal.RequireFromString("1.5")).
		Return(&entity.CoinType{ID: 3, Symbol: "JAZZ", CurrentValue: decimal.RequireFromString("1.5")}, nil)
	f.coins.EXPECT().RevalueByFans(mock.Anything, uint64(3), int64(120)).
		Return(&entity.CoinType{ID: 3, Symbol: "JAZZ", CurrentValue: decimal.RequireFromString("2.2")}, nil)
	f.coins.EXPECT().Deactivate(mock.Anything, uint64(3)).
		Return(&entity.CoinType{ID: 3, Symbol: "JAZZ"}, nil)

	rec := f.do(t, http.MethodPost, "/api/v1/admin/coin-types", admin, map[string]any{
		"name":         "Jazz Coin",
		"symbol":       "JAZZ",
		"kind":         "artist_issued",
		"artistId":     artist.String(),
		"initialValue": "1.00",
		"valuePerFan":  "0.01",
		"maxSupply":    "10000",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodPut, "/api/v1/admin/coin-types/3/value", admin, map[string]any{"value": "1.5"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodPut, "/api/v1/admin/coin-types/3/value", admin, map[string]any{"value": "-1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPut, "/api/v1/admin/coin-types/3/fans", admin, map[string]any{"fanCount": 120})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodPost, "/api/v1/admin/coin-types/3/deactivate", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"isActive":false`)
}

func TestAdminReconcileAndRepair(t *testing.T) {
	f := newAPIFixture(t)
	admin := token(t, uuid.New(), middleware.RoleAdmin)
	drift := &entity.WalletReconciliation{
		WalletID:         6,
		StoredBalance:    90000,
		StoredReceived:   50000,
		ReplayedBalance:  40000,
		ReplayedReceived: 50000,
		ReplayedSpent:    10000,
		EntriesReplayed:  2,
	}

	f.wallets.EXPECT().ReconcileWallet(mock.Anything, uint64(6)).Return(drift, nil)
	f.transfers.EXPECT().RepairWallet(mock.Anything, uint64(6)).Return(drift, nil)

	rec := f.do(t, http.MethodGet, "/api/v1/admin/wallets/6/reconcile", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var report dto.ReconciliationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.False(t, report.InSync)
	assert.Equal(t, "400.00", report.ReplayedBalance)

	rec = f.do(t, http.MethodPost, "/api/v1/admin/wallets/6/repair", admin, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPanicRecovery(t *testing.T) {
	f := newAPIFixture(t)
	userID := uuid.New()

	f.wallets.EXPECT().GetWallets(mock.Anything, userID).
		RunAndReturn(func(context.Context, uuid.UUID) ([]*entity.Wallet, error) { panic("boom") })

	rec := f.do(t, http.MethodGet, "/api/v1/wallets", token(t, userID, ""), nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, errs.CodeInternalServer, decodeError(t, rec).Code)
}

func TestCORSPreflight(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodOptions, "/api/v1/wallets/transfer", "", nil, "Origin", "https://bloghead.example")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://bloghead.example", rec.Header().Get("Access-Control-Allow-Origin"))
}
