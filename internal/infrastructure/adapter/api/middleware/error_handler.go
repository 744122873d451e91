package middleware

import (
	"context"
	"errors"
	"net/http"

	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// statusRules is checked in order; the first match wins
var statusRules = []struct {
	target error
	status int
}{
	{errs.ErrUnauthorized, http.StatusUnauthorized},
	{errs.ErrForbidden, http.StatusForbidden},
	{errs.ErrInsufficientBalance, http.StatusUnprocessableEntity},
	{errs.ErrInsufficientLocked, http.StatusUnprocessableEntity},
	{errs.ErrCoinTypeInactive, http.StatusUnprocessableEntity},
	{errs.ErrCoinTypeNotTradeable, http.StatusUnprocessableEntity},
	{errs.ErrSupplyCapExceeded, http.StatusUnprocessableEntity},
	{errs.ErrWalletNotFound, http.StatusNotFound},
	{errs.ErrCoinTypeNotFound, http.StatusNotFound},
	{errs.ErrTransactionNotFound, http.StatusNotFound},
	{errs.ErrNotFound, http.StatusNotFound},
	{errs.ErrConcurrencyConflict, http.StatusConflict},
	{errs.ErrDuplicateTransaction, http.StatusConflict},
	{errs.ErrDuplicateCoinType, http.StatusConflict},
	{errs.ErrConstraintViolation, http.StatusConflict},
	{errs.ErrDatabaseConnection, http.StatusServiceUnavailable},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

// StatusFor maps an error onto its HTTP status
func StatusFor(err error) int {
	for _, rule := range statusRules {
		if errors.Is(err, rule.target) {
			return rule.status
		}
	}
	if errs.IsValidationError(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// ErrorHandler recovers from panics and renders the last error a handler attached with c.Error
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      rec,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": RequestIDFrom(c),
					"user_agent": c.Request.UserAgent(),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:      errs.CodeInternalServer,
					Message:   "Internal server error",
					RequestID: RequestIDFrom(c),
				})
			}
		}()

		c.Next()

		last := c.Errors.Last()
		if last == nil || c.Writer.Written() {
			return
		}
		writeError(c, logger, last.Err)
	}
}

func writeError(c *gin.Context, logger coreport.Logger, err error) {
	status := StatusFor(err)
	message := err.Error()

	fields := errs.LogFieldsOf(err)
	fields["path"] = c.FullPath()
	fields["status"] = status
	fields["request_id"] = RequestIDFrom(c)

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", fields)
		message = http.StatusText(status)
	} else {
		logger.Debug("Request rejected", fields)
	}

	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Code:      errs.ErrorCode(err),
		Message:   message,
		RequestID: RequestIDFrom(c),
	})
}
