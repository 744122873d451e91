package handler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// callerID returns the authenticated user; routes without JWTAuth never reach handlers that call it
func callerID(c *gin.Context) (uuid.UUID, error) {
	id, ok := middleware.UserIDFrom(c)
	if !ok {
		return uuid.Nil, errs.ErrUnauthorized
	}
	return id, nil
}

func bindJSON(c *gin.Context, dest any) error {
	if err := c.ShouldBindJSON(dest); err != nil {
		return fmt.Errorf("%w: %s", errs.ErrInvalidRequest, err.Error())
	}
	return nil
}

func uintParam(c *gin.Context, name string) (uint64, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", errs.ErrInvalidRequest, name)
	}
	return v, nil
}

func parseUserID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: %s is not a user id", errs.ErrInvalidUserID, field)
	}
	return id, nil
}

// transactionFilter reads ?walletId&type&limit&offset
func transactionFilter(c *gin.Context) (entity.TransactionFilter, error) {
	var filter entity.TransactionFilter

	if raw := c.Query("walletId"); raw != "" {
		walletID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("%w: walletId must be an integer", errs.ErrInvalidRequest)
		}
		filter.WalletID = &walletID
	}
	if raw := c.Query("type"); raw != "" {
		t, err := entity.ParseTransactionType(raw)
		if err != nil {
			return filter, err
		}
		filter.Type = &t
	}
	for name, dest := range map[string]*int{"limit": &filter.Limit, "offset": &filter.Offset} {
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return filter, fmt.Errorf("%w: %s must be an integer", errs.ErrInvalidRequest, name)
		}
		*dest = n
	}
	return filter, nil
}

// timeRange reads ?from&to as RFC3339, defaulting to the last 30 days
func timeRange(c *gin.Context, now time.Time) (from, to time.Time, err error) {
	to, from = now, now.AddDate(0, 0, -30)
	if raw := c.Query("to"); raw != "" {
		if to, err = time.Parse(time.RFC3339, raw); err != nil {
			return from, to, fmt.Errorf("%w: to must be RFC3339", errs.ErrInvalidRequest)
		}
	}
	if raw := c.Query("from"); raw != "" {
		if from, err = time.Parse(time.RFC3339, raw); err != nil {
			return from, to, fmt.Errorf("%w: from must be RFC3339", errs.ErrInvalidRequest)
		}
	}
	return from, to, nil
}

// fail hands err to the ErrorHandler middleware
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
