package transfer

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
)

// RetryPolicy controls how lost write races are retried
type RetryPolicy struct {
	MaxRetries    int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // 0.0-1.0
}

// DefaultRetryPolicy returns the default retry policy
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:    5,
		RetryInterval: 20 * time.Millisecond,
		MaxInterval:   500 * time.Millisecond,
		JitterFactor:  0.5,
	}
}

// run calls attempt until it succeeds, fails with something other than ErrWriteConflict,
// or the retries are used up. It returns the number of attempts made.
func (p RetryPolicy) run(
	ctx context.Context,
	logger coreport.Logger,
	operation string,
	attempt func() error,
) (int, error) {
	maxAttempts := p.MaxRetries + 1
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var err error
	for n := 1; n <= maxAttempts; n++ {
		err = attempt()
		if err == nil {
			return n, nil
		}
		if !errors.Is(err, errs.ErrWriteConflict) {
			return n, err
		}
		if n == maxAttempts {
			break
		}

		backoff := p.backoff(n - 1)
		logger.Debug("Write conflict, retrying operation", map[string]any{
			"operation":   operation,
			"attempt":     n,
			"max_retries": p.MaxRetries,
			"retry_after": backoff.String(),
			"error":       err.Error(),
		})

		timer := time.NewTimer(backoff)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return n, ctx.Err()
		}
	}

	logger.Warn("Retries exhausted", map[string]any{
		"operation": operation,
		"attempts":  maxAttempts,
		"error":     err.Error(),
	})
	return maxAttempts, fmt.Errorf("%w: %s", errs.ErrConcurrencyConflict, err.Error())
}

// backoff computes an exponentially growing delay with jitter
func (p RetryPolicy) backoff(retry int) time.Duration {
	backoff := p.RetryInterval * (1 << uint(min(retry, 30)))
	if backoff > p.MaxInterval || backoff <= 0 {
		backoff = p.MaxInterval
	}

	if p.JitterFactor > 0 && backoff > 0 {
		backoff += time.Duration(float64(backoff) * p.JitterFactor * rand.Float64())
	}

	return backoff
}
