package database

import (
	"context"
	"math/rand"
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
)

// connectPolicy bounds the attempts made to reach the database at startup
type connectPolicy struct {
	attempts  int
	baseDelay time.Duration
	maxDelay  time.Duration
	jitter    float64 // fraction of the delay added at random
}

// connectPolicyFor derives the policy from db_retry_attempts and db_retry_delay
func connectPolicyFor(c *Config) connectPolicy {
	p := connectPolicy{
		attempts:  max(c.RetryAttempts, 1),
		baseDelay: 250 * time.Millisecond,
		maxDelay:  5 * time.Second,
		jitter:    0.2,
	}
	if c.RetryDelay > 0 {
		p.baseDelay = c.RetryDelay
		p.maxDelay = 8 * c.RetryDelay
	}
	return p
}

// delay returns the wait after failed attempt n (zero based)
func (p connectPolicy) delay(n int) time.Duration {
	d := p.baseDelay << uint(n)
	if d > p.maxDelay || d <= 0 {
		d = p.maxDelay
	}
	if p.jitter > 0 {
		d += time.Duration(float64(d) * p.jitter * rand.Float64())
	}
	return d
}

// retryConnect calls dial until it succeeds, fails for a reason another attempt will not
// fix, or the policy is used up. The last error is returned.
func retryConnect(ctx context.Context, p connectPolicy, logger coreport.Logger, dial func() error) error {
	var err error
	for attempt := 0; attempt < p.attempts; attempt++ {
		if err = dial(); err == nil {
			return nil
		}
		if !isUnreachable(err) || attempt == p.attempts-1 {
			break
		}

		wait := p.delay(attempt)
		logger.Warn("Database unreachable, retrying", map[string]any{
			"attempt":     attempt + 1,
			"max_retries": p.attempts,
			"error":       err.Error(),
			"retry_after": wait.String(),
		})

		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}

	logger.Error("Giving up on database connection", map[string]any{
		"max_retries": p.attempts,
		"error":       err.Error(),
	})
	return err
}

// isUnreachable reports failures caused by a server that is down, starting or saturated.
// Authentication and configuration errors are not retried.
func isUnreachable(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, s := range []string{
		"connection reset",
		"connection refused",
		"timeout",
		"too many connections",
		"server closed",
		"broken pipe",
		"the database system is starting up",
		"no such host",
		"eof",
	} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
