package time

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
)

// UTCClock reads the system clock and normalizes to UTC
type UTCClock struct{}

// NewRealTimeProvider returns the production clock
func NewRealTimeProvider() core.TimeProvider {
	return UTCClock{}
}

// Now returns the current time in UTC
func (UTCClock) Now() time.Time {
	return time.Now().UTC()
}

// Since returns the time elapsed since t
func (UTCClock) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}

// WithTimeout derives a context canceled after timeout
func (UTCClock) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}
