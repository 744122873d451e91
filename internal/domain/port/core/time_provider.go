package core

import (
	"context"
	"time"
)

// Duration is time.Duration as seen by the domain
type Duration time.Duration

// Millisecond is the unit configured timeouts are expressed in
const Millisecond = Duration(time.Millisecond)

// Std converts d to time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// TimeProvider is the clock behind wallet, ledger and value history timestamps.
// Now must return UTC so stored rows compare the same way on every driver.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) Duration
	// WithTimeout bounds a single engine operation
	WithTimeout(ctx context.Context, timeout Duration) (context.Context, context.CancelFunc)
}
